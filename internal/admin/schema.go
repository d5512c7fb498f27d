package admin

import (
	"errors"
	"fmt"
	"folio/internal/models"
	"strings"
)

var ErrUnknownCollection = errors.New("unknown collection")

// Schema describes the editable fields of one collection and which of them
// label a row in the list view.
type Schema struct {
	Collection    string
	Title         string
	TitleField    string
	SubtitleField string
	Fields        []Field
}

func (s *Schema) Field(key string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

var blockTypeChoices = func() []string {
	out := make([]string, len(models.BlockTypes))
	for i, t := range models.BlockTypes {
		out[i] = string(t)
	}
	return out
}()

var schemas = map[string]*Schema{
	models.CollectionProjects: {
		Collection: models.CollectionProjects, Title: "Projects",
		TitleField: "title", SubtitleField: "pillar",
		Fields: []Field{
			{Key: "title", Label: "Title", Kind: KindText},
			{Key: "description", Label: "Description", Kind: KindTextArea},
			{Key: "pillar", Label: "Pillar", Kind: KindText, Placeholder: "e.g. Consumer"},
			{Key: "tags", Label: "Tags", Kind: KindStringArray},
			{Key: "githubUrl", Label: "GitHub URL", Kind: KindText},
			{Key: "liveUrl", Label: "Live URL", Kind: KindText},
			{Key: "image", Label: "Image URL", Kind: KindText},
			{Key: "color", Label: "Color", Kind: KindText, Placeholder: "#7C3AED"},
		},
	},
	models.CollectionBuiltProjects: {
		Collection: models.CollectionBuiltProjects, Title: "Built Projects",
		TitleField: "title", SubtitleField: "icon",
		Fields: []Field{
			{Key: "title", Label: "Title", Kind: KindText},
			{Key: "description", Label: "Description", Kind: KindTextArea},
			{Key: "tags", Label: "Tags", Kind: KindStringArray},
			{Key: "githubUrl", Label: "GitHub URL", Kind: KindText},
			{Key: "color", Label: "Color", Kind: KindText, Placeholder: "#2563EB"},
			{Key: "icon", Label: "Icon", Kind: KindText},
		},
	},
	models.CollectionSkillCategories: {
		Collection: models.CollectionSkillCategories, Title: "Skills",
		TitleField: "title",
		Fields: []Field{
			{Key: "title", Label: "Category", Kind: KindText},
			{Key: "skills", Label: "Skills", Kind: KindSkillList},
		},
	},
	models.CollectionExperiences: {
		Collection: models.CollectionExperiences, Title: "Experience",
		TitleField: "role", SubtitleField: "company",
		Fields: []Field{
			{Key: "role", Label: "Role", Kind: KindText},
			{Key: "company", Label: "Company", Kind: KindText},
			{Key: "duration", Label: "Duration", Kind: KindText, Placeholder: "2022 - Present"},
			{Key: "description", Label: "Highlights", Kind: KindStringArray},
		},
	},
	models.CollectionEducation: {
		Collection: models.CollectionEducation, Title: "Education",
		TitleField: "degree", SubtitleField: "institution",
		Fields: []Field{
			{Key: "degree", Label: "Degree", Kind: KindText},
			{Key: "institution", Label: "Institution", Kind: KindText},
			{Key: "year", Label: "Year", Kind: KindText},
			{Key: "description", Label: "Description", Kind: KindTextArea},
		},
	},
	models.CollectionCertifications: {
		Collection: models.CollectionCertifications, Title: "Certifications",
		TitleField: "title", SubtitleField: "issuer",
		Fields: []Field{
			{Key: "title", Label: "Title", Kind: KindText},
			{Key: "issuer", Label: "Issuer", Kind: KindText},
			{Key: "verifyUrl", Label: "Verify URL", Kind: KindText},
			{Key: "icon", Label: "Icon", Kind: KindText},
		},
	},
	models.CollectionTestimonials: {
		Collection: models.CollectionTestimonials, Title: "Testimonials",
		TitleField: "name", SubtitleField: "company",
		Fields: []Field{
			{Key: "quote", Label: "Quote", Kind: KindTextArea},
			{Key: "name", Label: "Name", Kind: KindText},
			{Key: "role", Label: "Role", Kind: KindText},
			{Key: "company", Label: "Company", Kind: KindText},
		},
	},
	models.CollectionNavLinks: {
		Collection: models.CollectionNavLinks, Title: "Navigation",
		TitleField: "label", SubtitleField: "href",
		Fields: []Field{
			{Key: "label", Label: "Label", Kind: KindText},
			{Key: "sectionId", Label: "Section ID", Kind: KindText},
			{Key: "href", Label: "Link", Kind: KindText, Placeholder: "#about"},
		},
	},
	models.CollectionVideos: {
		Collection: models.CollectionVideos, Title: "Videos",
		TitleField: "title", SubtitleField: "url",
		Fields: []Field{
			{Key: "title", Label: "Title", Kind: KindText},
			{Key: "description", Label: "Description", Kind: KindTextArea},
			{Key: "url", Label: "YouTube or Vimeo URL", Kind: KindText},
		},
	},
	models.CollectionContentBlocks: {
		Collection: models.CollectionContentBlocks, Title: "Content Blocks",
		TitleField: "title", SubtitleField: "type",
		Fields: []Field{
			{Key: "title", Label: "Title", Kind: KindText},
			{Key: "type", Label: "Type", Kind: KindChoice, Choices: blockTypeChoices},
			{Key: "content", Label: "Content (Markdown)", Kind: KindTextArea},
			{Key: "imageUrl", Label: "Image URL", Kind: KindText},
			{Key: "videoUrl", Label: "Video URL", Kind: KindText},
			{Key: "links", Label: "Links", Kind: KindLinkList},
			{Key: "visible", Label: "Visible", Kind: KindToggle, Default: BoolValue(true)},
		},
	},
}

// SchemaFor returns the schema of an editable collection.
func SchemaFor(collection string) (*Schema, error) {
	s, ok := schemas[collection]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
	}
	return s, nil
}

// Collections lists the editable collections by name.
func Collections() []string {
	out := make([]string, 0, len(schemas))
	for _, name := range models.ContentCollections {
		if _, ok := schemas[name]; ok {
			out = append(out, name)
		}
	}
	return out
}

func splitLines(s string) []string {
	out := []string{}
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
