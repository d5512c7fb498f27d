package controllers

import (
	"errors"
	"folio/internal/models"
	"folio/internal/providers"
	"folio/internal/services"
	"net/http"

	"github.com/gookit/validate"
)

var errUnknownHistoryEntry = errors.New("unknown theme history entry")

type ThemeController struct {
	logger providers.Logger
	theme  services.ThemeServiceInterface
}

type themeResponse struct {
	services.ThemeState
	Presets []models.ThemePreset `json:"presets"`
	Warning string               `json:"warning,omitempty"`
}

type restoreRequest struct {
	ID string `json:"id" validate:"required"`
}

func NewThemeController(logger providers.Logger, theme services.ThemeServiceInterface) *ThemeController {
	return &ThemeController{logger: logger, theme: theme}
}

func (tc *ThemeController) respond(w http.ResponseWriter, warning error) {
	resp := themeResponse{ThemeState: tc.theme.State(), Presets: tc.theme.Presets()}
	if warning != nil {
		tc.logger.Warnf(providers.TypeAdmin, "Theme change not fully persisted: %s", warning)
		resp.Warning = warning.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (tc *ThemeController) GetTheme(w http.ResponseWriter, r *http.Request) {
	tc.respond(w, nil)
}

// ApplyPreset switches to the posted preset. Persistence failures do not
// undo the switch and are reported as a warning.
func (tc *ThemeController) ApplyPreset(w http.ResponseWriter, r *http.Request) {
	var preset models.ThemePreset
	if err := decodeBody(w, r, &preset); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	v := validate.Struct(&preset)
	if !v.Validate() {
		writeError(w, http.StatusBadRequest, errors.New(v.Errors.One()))
		return
	}
	tc.respond(w, tc.theme.ApplyPreset(r.Context(), preset))
}

func (tc *ThemeController) RestoreHistorical(w http.ResponseWriter, r *http.Request) {
	var req restoreRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	v := validate.Struct(&req)
	if !v.Validate() {
		writeError(w, http.StatusBadRequest, errors.New(v.Errors.One()))
		return
	}

	for _, entry := range tc.theme.State().History {
		if entry.ID == req.ID {
			tc.respond(w, tc.theme.RestoreHistorical(r.Context(), entry))
			return
		}
	}
	writeError(w, http.StatusNotFound, errUnknownHistoryEntry)
}

func (tc *ThemeController) ToggleDark(w http.ResponseWriter, r *http.Request) {
	_, err := tc.theme.ToggleDark()
	tc.respond(w, err)
}
