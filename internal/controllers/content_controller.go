package controllers

import (
	"bytes"
	"folio/internal/models"
	"folio/internal/providers"
	"folio/internal/services"
	"net/http"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

type ContentController struct {
	logger  providers.Logger
	content services.ContentServiceInterface
	cache   providers.CacheProviderInterface
	md      goldmark.Markdown
}

type videoView struct {
	models.Video
	EmbedURL string `json:"embedUrl"`
}

type blockView struct {
	models.ContentBlock
	HTML string `json:"html,omitempty"`
}

type contentResponse struct {
	PersonalInfo    models.PersonalInfo    `json:"personalInfo"`
	Stats           []models.Stat          `json:"stats"`
	SkillCategories []models.SkillCategory `json:"skillCategories"`
	Projects        []models.Project       `json:"projects"`
	BuiltProjects   []models.BuiltProject  `json:"builtProjects"`
	Experiences     []models.Experience    `json:"experiences"`
	Education       []models.Education     `json:"education"`
	Certifications  []models.Certification `json:"certifications"`
	Testimonials    []models.Testimonial   `json:"testimonials"`
	NavLinks        []models.NavLink       `json:"navLinks"`
	Videos          []videoView            `json:"videos"`
	ContentBlocks   []blockView            `json:"contentBlocks"`
	Loading         bool                   `json:"loading"`
	Generation      uint64                 `json:"generation"`
}

func NewContentController(logger providers.Logger, content services.ContentServiceInterface, cache providers.CacheProviderInterface) *ContentController {
	return &ContentController{
		logger:  logger,
		content: content,
		cache:   cache,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
		),
	}
}

// serveFromCacheOrCompute answers from the response cache, filling it on a
// miss.
func (cc *ContentController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := cc.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	cc.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

// GetContent serves the committed read model. Responses are cached per
// generation so a commit invalidates them implicitly.
func (cc *ContentController) GetContent(w http.ResponseWriter, r *http.Request) {
	gen := cc.content.Generation()
	loading := cc.content.Loading()
	key := "content:" + strconv.FormatUint(gen, 10) + ":" + strconv.FormatBool(loading)

	cc.serveFromCacheOrCompute(w, key, func() (any, error) {
		return cc.build(cc.content.Snapshot(), gen, loading), nil
	})
}

func (cc *ContentController) build(c *models.Content, gen uint64, loading bool) contentResponse {
	resp := contentResponse{
		PersonalInfo:    c.PersonalInfo,
		Stats:           nonNil(c.Stats),
		SkillCategories: nonNil(c.SkillCategories),
		Projects:        nonNil(c.Projects),
		BuiltProjects:   nonNil(c.BuiltProjects),
		Experiences:     nonNil(c.Experiences),
		Education:       nonNil(c.Education),
		Certifications:  nonNil(c.Certifications),
		Testimonials:    nonNil(c.Testimonials),
		NavLinks:        nonNil(c.NavLinks),
		Videos:          make([]videoView, 0, len(c.Videos)),
		ContentBlocks:   []blockView{},
		Loading:         loading,
		Generation:      gen,
	}
	for _, v := range c.Videos {
		resp.Videos = append(resp.Videos, videoView{Video: v, EmbedURL: v.EmbedURL()})
	}
	for _, b := range c.VisibleBlocks() {
		view := blockView{ContentBlock: b}
		if b.Type == models.BlockText && b.Content != "" {
			view.HTML = cc.render(b.Content)
		}
		resp.ContentBlocks = append(resp.ContentBlocks, view)
	}
	return resp
}

func (cc *ContentController) render(markdown string) string {
	var buf bytes.Buffer
	if err := cc.md.Convert([]byte(markdown), &buf); err != nil {
		cc.logger.Warnf(providers.TypeGet, "Markdown rendering failed: %s", err)
		return ""
	}
	return buf.String()
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
