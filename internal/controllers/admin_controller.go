package controllers

import (
	"bytes"
	"context"
	"errors"
	"folio/internal/admin"
	"folio/internal/catalog"
	"folio/internal/models"
	"folio/internal/providers"
	"folio/internal/services"
	"folio/internal/store"
	"io"
	"net/http"
	"strconv"
	"time"
)

const maxUploadSize = 10 << 20 // 10 MB

type Seeder interface {
	SeedAll(ctx context.Context) (catalog.SeedReport, error)
}

type Exporter interface {
	Write(ctx context.Context, w io.Writer) error
}

type AdminController struct {
	logger   providers.Logger
	admin    admin.ServiceInterface
	content  services.ContentServiceInterface
	seeder   Seeder
	exporter Exporter
}

type collectionInfo struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

type listResponse struct {
	Collection string      `json:"collection"`
	Title      string      `json:"title"`
	Rows       []admin.Row `json:"rows"`
}

type formErrorResponse struct {
	Error string         `json:"error"`
	Form  admin.FormView `json:"form"`
}

type savedResponse struct {
	ID   string      `json:"id"`
	Rows []admin.Row `json:"rows"`
}

type personalInfoRequest struct {
	PersonalInfo models.PersonalInfo `json:"personalInfo"`
	Stats        []models.Stat       `json:"stats"`
}

type refetchResponse struct {
	State      string `json:"state"`
	Generation uint64 `json:"generation"`
}

func NewAdminController(logger providers.Logger, adminService admin.ServiceInterface, content services.ContentServiceInterface, seeder Seeder, exporter Exporter) *AdminController {
	return &AdminController{
		logger:   logger,
		admin:    adminService,
		content:  content,
		seeder:   seeder,
		exporter: exporter,
	}
}

// writeStoreError maps store and admin errors onto HTTP statuses.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotConfigured):
		writeError(w, http.StatusServiceUnavailable, err)
	case errors.Is(err, store.ErrNotFound), errors.Is(err, admin.ErrRecordNotFound), errors.Is(err, admin.ErrUnknownCollection):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, store.ErrInvalidObjectPath), errors.Is(err, admin.ErrUnsupportedFileType):
		writeError(w, http.StatusBadRequest, err)
	default:
		writeError(w, http.StatusBadGateway, err)
	}
}

func (ac *AdminController) scaffold(w http.ResponseWriter, r *http.Request) (*admin.Scaffold, bool) {
	s, err := ac.admin.Scaffold(r.PathValue("name"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return nil, false
	}
	return s, true
}

func (ac *AdminController) Collections(w http.ResponseWriter, r *http.Request) {
	out := make([]collectionInfo, 0)
	for _, name := range admin.Collections() {
		schema, _ := admin.SchemaFor(name)
		out = append(out, collectionInfo{Name: name, Title: schema.Title})
	}
	writeJSON(w, http.StatusOK, out)
}

func (ac *AdminController) List(w http.ResponseWriter, r *http.Request) {
	s, ok := ac.scaffold(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, listResponse{
		Collection: s.Schema().Collection,
		Title:      s.Schema().Title,
		Rows:       s.List(r.Context()),
	})
}

func (ac *AdminController) NewForm(w http.ResponseWriter, r *http.Request) {
	s, ok := ac.scaffold(w, r)
	if !ok {
		return
	}
	s.List(r.Context())
	writeJSON(w, http.StatusOK, admin.Render(s.Schema(), s.OpenCreate()))
}

func (ac *AdminController) EditForm(w http.ResponseWriter, r *http.Request) {
	s, ok := ac.scaffold(w, r)
	if !ok {
		return
	}
	s.List(r.Context())
	row, err := s.Find(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, admin.Render(s.Schema(), s.OpenEdit(row)))
}

func (ac *AdminController) Create(w http.ResponseWriter, r *http.Request) {
	s, ok := ac.scaffold(w, r)
	if !ok {
		return
	}
	s.List(r.Context())
	s.OpenCreate()
	ac.save(w, r, s, http.StatusCreated)
}

func (ac *AdminController) Update(w http.ResponseWriter, r *http.Request) {
	s, ok := ac.scaffold(w, r)
	if !ok {
		return
	}
	s.List(r.Context())
	row, err := s.Find(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	s.OpenEdit(row)
	ac.save(w, r, s, http.StatusOK)
}

// save applies the request body to the open form and writes it. Failures
// answer with the form as submitted.
func (ac *AdminController) save(w http.ResponseWriter, r *http.Request, s *admin.Scaffold, status int) {
	var input map[string]any
	if err := decodeBody(w, r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.SetValues(input); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, formErrorResponse{Error: err.Error(), Form: admin.Render(s.Schema(), s.Form())})
		return
	}

	id, err := s.Save(r.Context())
	if err != nil {
		code := http.StatusBadGateway
		if errors.Is(err, store.ErrNotConfigured) {
			code = http.StatusServiceUnavailable
		}
		writeJSON(w, code, formErrorResponse{Error: err.Error(), Form: admin.Render(s.Schema(), s.Form())})
		return
	}
	writeJSON(w, status, savedResponse{ID: id, Rows: s.Rows()})
}

func (ac *AdminController) Delete(w http.ResponseWriter, r *http.Request) {
	s, ok := ac.scaffold(w, r)
	if !ok {
		return
	}
	confirmed, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))
	err := s.Delete(r.Context(), r.PathValue("id"), confirmed)
	switch {
	case errors.Is(err, admin.ErrConfirmationRequired):
		writeError(w, http.StatusPreconditionRequired, err)
	case err != nil:
		writeStoreError(w, err)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

func (ac *AdminController) GetPersonalInfo(w http.ResponseWriter, r *http.Request) {
	if view, ok := ac.admin.PersonalInfo().Load(r.Context()); ok {
		writeJSON(w, http.StatusOK, view)
		return
	}
	snap := ac.content.Snapshot()
	writeJSON(w, http.StatusOK, admin.PersonalInfoView{PersonalInfo: snap.PersonalInfo, Stats: nonNil(snap.Stats)})
}

func (ac *AdminController) SavePersonalInfo(w http.ResponseWriter, r *http.Request) {
	var req personalInfoRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := ac.admin.PersonalInfo().Save(r.Context(), req.PersonalInfo, req.Stats); err != nil {
		ac.logger.Errorf(providers.TypeAdmin, "Saving personal info failed: %s", err)
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type uploadResponse struct {
	URL string `json:"url"`
}

func (ac *AdminController) upload(w http.ResponseWriter, r *http.Request, put func(ctx context.Context, filename string, f io.Reader) (string, error)) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	defer file.Close()

	url, err := put(r.Context(), header.Filename, file)
	if err != nil {
		ac.logger.Errorf(providers.TypeAdmin, "Upload of %s failed: %s", header.Filename, err)
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, uploadResponse{URL: url})
}

func (ac *AdminController) UploadResume(w http.ResponseWriter, r *http.Request) {
	ac.upload(w, r, func(ctx context.Context, _ string, f io.Reader) (string, error) {
		return ac.admin.Files().UploadResume(ctx, f)
	})
}

func (ac *AdminController) DeleteResume(w http.ResponseWriter, r *http.Request) {
	if err := ac.admin.Files().DeleteResume(r.Context()); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (ac *AdminController) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	ac.upload(w, r, ac.admin.Files().UploadPhoto)
}

// DeletePhoto removes the photo named by the file query parameter.
func (ac *AdminController) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("file")
	if name == "" {
		name = "profile.jpg"
	}
	if err := ac.admin.Files().DeletePhoto(r.Context(), name); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (ac *AdminController) Messages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.admin.Inbox().List(r.Context()))
}

func (ac *AdminController) MarkMessageRead(w http.ResponseWriter, r *http.Request) {
	if err := ac.admin.Inbox().MarkRead(r.Context(), r.PathValue("id")); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (ac *AdminController) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	if err := ac.admin.Inbox().Delete(r.Context(), r.PathValue("id")); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (ac *AdminController) Seed(w http.ResponseWriter, r *http.Request) {
	report, err := ac.seeder.SeedAll(r.Context())
	if err != nil {
		ac.logger.Errorf(providers.TypeAdmin, "Seeding failed: %s", err)
		writeStoreError(w, err)
		return
	}
	ac.content.Refetch(r.Context())
	writeJSON(w, http.StatusOK, report)
}

func (ac *AdminController) Refetch(w http.ResponseWriter, r *http.Request) {
	ac.content.Refetch(r.Context())
	writeJSON(w, http.StatusOK, refetchResponse{
		State:      ac.content.State().String(),
		Generation: ac.content.Generation(),
	})
}

// Export answers with a zstd compressed JSON dump of every collection.
func (ac *AdminController) Export(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/zstd")
	w.Header().Set("Content-Disposition",
		`attachment; filename="folio-`+time.Now().UTC().Format("20060102-150405")+`.json.zst"`)

	var buf bytes.Buffer
	if err := ac.exporter.Write(r.Context(), &buf); err != nil {
		ac.logger.Errorf(providers.TypeAdmin, "Export failed: %s", err)
		w.Header().Del("Content-Disposition")
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
