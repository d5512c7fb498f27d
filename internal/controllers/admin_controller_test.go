package controllers

import (
	"bytes"
	"context"
	"errors"
	"folio/internal/admin"
	"folio/internal/catalog"
	"folio/internal/models"
	"folio/internal/services"
	"folio/internal/store"
	"folio/internal/testutil"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type exporterFunc func(ctx context.Context, w io.Writer) error

func (f exporterFunc) Write(ctx context.Context, w io.Writer) error { return f(ctx, w) }

type adminFixture struct {
	ctrl    *AdminController
	client  *store.Client
	backend *testutil.FlakyBackend
	content stubContent
}

func newAdminFixture(t *testing.T) *adminFixture {
	t.Helper()
	backend := testutil.NewFlakyBackend(testutil.NewSQLiteBackend(t))
	client := testutil.NewStoreClient(t, backend)
	content := newStubContent(services.StateReady)
	cat, err := catalog.New()
	require.NoError(t, err)

	exporter := exporterFunc(func(ctx context.Context, w io.Writer) error {
		dump, err := client.Dump(ctx)
		if err != nil {
			return err
		}
		return json.NewEncoder(w).Encode(dump)
	})
	ctrl := NewAdminController(&testutil.MockLogger{},
		admin.NewService(client, content, &testutil.MockLogger{}),
		content,
		catalog.NewSeeder(client, cat, &testutil.MockLogger{}),
		exporter)
	return &adminFixture{ctrl: ctrl, client: client, backend: backend, content: content}
}

func adminRequest(method, target, body string, values map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	for k, v := range values {
		req.SetPathValue(k, v)
	}
	return req
}

func serve(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func TestAdminController_Collections(t *testing.T) {
	f := newAdminFixture(t)

	rr := serve(f.ctrl.Collections, adminRequest(http.MethodGet, "/admin/collections", "", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var out []collectionInfo
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	assert.Len(t, out, len(admin.Collections()))
}

func TestAdminController_CreateEditDelete(t *testing.T) {
	f := newAdminFixture(t)
	name := map[string]string{"name": models.CollectionTestimonials}

	rr := serve(f.ctrl.NewForm, adminRequest(http.MethodGet, "/admin/collections/testimonials/new", "", name))
	require.Equal(t, http.StatusOK, rr.Code)
	var form admin.FormView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &form))
	assert.Equal(t, "create", form.Mode)

	rr = serve(f.ctrl.Create, adminRequest(http.MethodPost, "/admin/collections/testimonials",
		`{"quote":"Great work","name":"Jo","company":"Acme"}`, name))
	require.Equal(t, http.StatusCreated, rr.Code)
	var saved savedResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &saved))
	require.Len(t, saved.Rows, 1)
	assert.Equal(t, "Jo", saved.Rows[0].Title)
	assert.Equal(t, 1, f.content.Refetches())

	idPath := map[string]string{"name": models.CollectionTestimonials, "id": saved.ID}
	rr = serve(f.ctrl.EditForm, adminRequest(http.MethodGet, "/admin/collections/testimonials/"+saved.ID, "", idPath))
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &form))
	assert.Equal(t, "edit", form.Mode)
	assert.Equal(t, "Great work", form.Fields[0].Value)

	rr = serve(f.ctrl.Update, adminRequest(http.MethodPut, "/admin/collections/testimonials/"+saved.ID, `{"name":"Jordan"}`, idPath))
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &saved))
	assert.Equal(t, "Jordan", saved.Rows[0].Title)
	assert.Equal(t, "Great work", saved.Rows[0].Record["quote"])

	rr = serve(f.ctrl.Delete, adminRequest(http.MethodDelete, "/admin/collections/testimonials/"+saved.ID, "", idPath))
	assert.Equal(t, http.StatusPreconditionRequired, rr.Code)

	rr = serve(f.ctrl.Delete, adminRequest(http.MethodDelete, "/admin/collections/testimonials/"+saved.ID+"?confirm=true", "", idPath))
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = serve(f.ctrl.List, adminRequest(http.MethodGet, "/admin/collections/testimonials", "", name))
	var list listResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Empty(t, list.Rows)
}

func TestAdminController_SaveFailureReturnsForm(t *testing.T) {
	f := newAdminFixture(t)
	f.backend.SetFailWrites(true)

	rr := serve(f.ctrl.Create, adminRequest(http.MethodPost, "/admin/collections/videos",
		`{"title":"Talk","url":"https://vimeo.com/123"}`, map[string]string{"name": models.CollectionVideos}))
	require.Equal(t, http.StatusBadGateway, rr.Code)

	var resp formErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, testutil.ErrInjected.Error())
	assert.Equal(t, resp.Error, resp.Form.Error)
	assert.Equal(t, "Talk", resp.Form.Fields[0].Value)
	assert.Zero(t, f.content.Refetches())
}

func TestAdminController_UnknownCollection(t *testing.T) {
	f := newAdminFixture(t)

	rr := serve(f.ctrl.List, adminRequest(http.MethodGet, "/admin/collections/messages", "", map[string]string{"name": "messages"}))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = serve(f.ctrl.EditForm, adminRequest(http.MethodGet, "/admin/collections/videos/x", "",
		map[string]string{"name": models.CollectionVideos, "id": "x"}))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAdminController_InvalidFieldValue(t *testing.T) {
	f := newAdminFixture(t)

	rr := serve(f.ctrl.Create, adminRequest(http.MethodPost, "/admin/collections/contentBlocks",
		`{"title":"X","type":"hologram"}`, map[string]string{"name": models.CollectionContentBlocks}))
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestAdminController_PersonalInfo(t *testing.T) {
	f := newAdminFixture(t)
	f.content.Content = &models.Content{PersonalInfo: models.PersonalInfo{Name: "From Catalog"}}

	rr := serve(f.ctrl.GetPersonalInfo, adminRequest(http.MethodGet, "/admin/personal-info", "", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "From Catalog")

	rr = serve(f.ctrl.SavePersonalInfo, adminRequest(http.MethodPut, "/admin/personal-info",
		`{"personalInfo":{"name":"Stored"},"stats":[{"label":"Years","value":"5"}]}`, nil))
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = serve(f.ctrl.GetPersonalInfo, adminRequest(http.MethodGet, "/admin/personal-info", "", nil))
	var view admin.PersonalInfoView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	assert.Equal(t, "Stored", view.PersonalInfo.Name)
	require.Len(t, view.Stats, 1)
	assert.Equal(t, "Years", view.Stats[0].Label)
}

func TestAdminController_Messages(t *testing.T) {
	f := newAdminFixture(t)
	id, err := f.client.AddDocument(context.Background(), models.CollectionMessages,
		models.Message{Name: "Sam", Email: "sam@example.com", Message: "Hi"})
	require.NoError(t, err)

	rr := serve(f.ctrl.Messages, adminRequest(http.MethodGet, "/admin/messages", "", nil))
	var inbox admin.InboxView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &inbox))
	assert.Equal(t, 1, inbox.Unread)

	rr = serve(f.ctrl.MarkMessageRead, adminRequest(http.MethodPost, "/admin/messages/"+id+"/read", "", map[string]string{"id": id}))
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = serve(f.ctrl.MarkMessageRead, adminRequest(http.MethodPost, "/admin/messages/nope/read", "", map[string]string{"id": "nope"}))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = serve(f.ctrl.DeleteMessage, adminRequest(http.MethodDelete, "/admin/messages/"+id, "", map[string]string{"id": id}))
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestAdminController_UploadPhoto(t *testing.T) {
	f := newAdminFixture(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "me.png")
	require.NoError(t, err)
	_, _ = part.Write([]byte("png"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/admin/files/photo", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rr := serve(f.ctrl.UploadPhoto, req)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), "/files/photos/profile.png")

	rr = serve(f.ctrl.DeletePhoto, adminRequest(http.MethodDelete, "/admin/files/photo?file=me.png", "", nil))
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = serve(f.ctrl.UploadResume, adminRequest(http.MethodPost, "/admin/files/resume", "", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAdminController_SeedAndExport(t *testing.T) {
	f := newAdminFixture(t)

	rr := serve(f.ctrl.Seed, adminRequest(http.MethodPost, "/admin/seed", "", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var report catalog.SeedReport
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
	assert.Positive(t, report[models.CollectionProjects])
	assert.Equal(t, 1, f.content.Refetches())

	rr = serve(f.ctrl.Export, adminRequest(http.MethodGet, "/admin/export", "", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Disposition"), ".json.zst")
	var dump store.Dump
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &dump))
	assert.Len(t, dump.Collections[models.CollectionProjects], report[models.CollectionProjects])
}

func TestAdminController_ExportFailure(t *testing.T) {
	f := newAdminFixture(t)
	f.ctrl.exporter = exporterFunc(func(context.Context, io.Writer) error { return errors.New("boom") })

	rr := serve(f.ctrl.Export, adminRequest(http.MethodGet, "/admin/export", "", nil))
	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Disposition"))
}

func TestAdminController_Refetch(t *testing.T) {
	f := newAdminFixture(t)

	rr := serve(f.ctrl.Refetch, adminRequest(http.MethodPost, "/admin/refetch", "", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"state":"ready"`)
	assert.Equal(t, 1, f.content.Refetches())
}
