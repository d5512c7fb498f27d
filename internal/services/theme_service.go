package services

import (
	"context"
	"errors"
	"fmt"
	"folio/internal/models"
	"folio/internal/providers"
	"folio/internal/store"
	"slices"
	"sync"
	"time"
)

const (
	ThemeModeKey    = "theme-mode"
	ThemeModeDark   = "dark"
	ThemeModeLight  = "light"
	MaxThemeHistory = 10
)

var ErrHistoryUnavailable = errors.New("theme history could not be read")

// ThemePresets are the built-in accent pairs. The first one is the default.
var ThemePresets = []models.ThemePreset{
	{Name: "Purple → Blue", Primary: "#7C3AED", Secondary: "#2563EB"},
	{Name: "Emerald → Cyan", Primary: "#059669", Secondary: "#0891B2"},
	{Name: "Rose → Orange", Primary: "#E11D48", Secondary: "#EA580C"},
	{Name: "Amber → Red", Primary: "#D97706", Secondary: "#DC2626"},
	{Name: "Pink → Purple", Primary: "#DB2777", Secondary: "#7C3AED"},
	{Name: "Teal → Green", Primary: "#0D9488", Secondary: "#16A34A"},
	{Name: "Indigo → Violet", Primary: "#4338CA", Secondary: "#7C3AED"},
	{Name: "Sky → Cyan", Primary: "#0284C7", Secondary: "#0891B2"},
}

var darkVariables = map[string]string{
	"--bg":              "#0a0118",
	"--bg-secondary":    "#1a0a2e",
	"--glass-bg":        "rgba(255,255,255,0.08)",
	"--glass-border":    "rgba(255,255,255,0.15)",
	"--glass-highlight": "rgba(255,255,255,0.12)",
	"--text-primary":    "#FFFFFF",
	"--text-secondary":  "rgba(255,255,255,0.7)",
	"--text-muted":      "rgba(255,255,255,0.5)",
	"--navbar-bg":       "rgba(10,1,24,0.85)",
}

var lightVariables = map[string]string{
	"--bg":              "#f8f6ff",
	"--bg-secondary":    "#ede8ff",
	"--glass-bg":        "rgba(0,0,0,0.04)",
	"--glass-border":    "rgba(0,0,0,0.12)",
	"--glass-highlight": "rgba(0,0,0,0.06)",
	"--text-primary":    "#1a0a2e",
	"--text-secondary":  "rgba(26,10,46,0.75)",
	"--text-muted":      "rgba(26,10,46,0.5)",
	"--navbar-bg":       "rgba(248,246,255,0.85)",
}

type ThemeState struct {
	IsDark        bool                       `json:"isDark"`
	CurrentPreset models.ThemePreset         `json:"currentPreset"`
	History       []models.ThemeHistoryEntry `json:"history"`
	Variables     map[string]string          `json:"variables"`
	Loading       bool                       `json:"loading"`
}

type ThemeServiceInterface interface {
	Initialize(ctx context.Context)
	ToggleDark() (bool, error)
	ApplyPreset(ctx context.Context, preset models.ThemePreset) error
	RestoreHistorical(ctx context.Context, entry models.ThemeHistoryEntry) error
	State() ThemeState
	Presets() []models.ThemePreset
}

type ThemeService struct {
	client store.ClientInterface
	prefs  store.PreferencesInterface
	logger providers.Logger
	now    func() time.Time

	applyMu sync.Mutex

	mu        sync.RWMutex
	isDark    bool
	current   models.ThemePreset
	history   []models.ThemeHistoryEntry
	lastOrder int64
	loading   bool
}

func NewThemeService(client store.ClientInterface, prefs store.PreferencesInterface, logger providers.Logger) ThemeServiceInterface {
	return newThemeService(client, prefs, logger, time.Now)
}

func newThemeService(client store.ClientInterface, prefs store.PreferencesInterface, logger providers.Logger, now func() time.Time) *ThemeService {
	return &ThemeService{
		client:  client,
		prefs:   prefs,
		logger:  logger,
		now:     now,
		isDark:  true,
		current: ThemePresets[0],
		history: []models.ThemeHistoryEntry{},
		loading: true,
	}
}

// Initialize loads mode, current preset and history. Anything that cannot
// be read keeps its default.
func (ts *ThemeService) Initialize(ctx context.Context) {
	isDark := true
	if mode, ok := ts.prefs.Get(ThemeModeKey); ok && mode == ThemeModeLight {
		isDark = false
	}

	current := ThemePresets[0]
	if doc, ok := ts.client.GetDocument(ctx, models.CollectionThemeSettings, models.ThemeSettingsDocID); ok && doc != nil {
		var preset models.ThemePreset
		if err := store.Decode(*doc, &preset); err != nil {
			ts.logger.Warnf(providers.TypeApp, "Ignoring stored theme: %s", err)
		} else if preset.Name != "" {
			current = preset
		}
	}

	history, _ := ts.readHistory(ctx)

	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.isDark = isDark
	ts.current = current
	if history != nil {
		ts.history = newestFirst(history)
		for _, e := range history {
			ts.lastOrder = max(ts.lastOrder, e.Order)
		}
	}
	ts.loading = false
}

// ToggleDark flips the mode and persists it locally. The flip stands even
// when persisting fails.
func (ts *ThemeService) ToggleDark() (bool, error) {
	ts.mu.Lock()
	ts.isDark = !ts.isDark
	isDark := ts.isDark
	ts.mu.Unlock()

	mode := ThemeModeLight
	if isDark {
		mode = ThemeModeDark
	}
	if err := ts.prefs.Set(ThemeModeKey, mode); err != nil {
		return isDark, fmt.Errorf("persist theme mode: %w", err)
	}
	return isDark, nil
}

// ApplyPreset makes preset current. The previous preset is pushed onto the
// history, which is trimmed to MaxThemeHistory. The in-memory change always
// happens; persistence problems come back as an error afterwards.
func (ts *ThemeService) ApplyPreset(ctx context.Context, preset models.ThemePreset) error {
	ts.applyMu.Lock()
	defer ts.applyMu.Unlock()

	ts.mu.RLock()
	previous := ts.current
	ts.mu.RUnlock()

	var errs []error
	if previous.Name != "" {
		if err := ts.pushHistory(ctx, previous); err != nil {
			errs = append(errs, err)
		}
	}
	if err := ts.client.SetDocument(ctx, models.CollectionThemeSettings, models.ThemeSettingsDocID, preset); err != nil {
		errs = append(errs, fmt.Errorf("save theme: %w", err))
	}

	ts.mu.Lock()
	ts.current = preset
	ts.mu.Unlock()

	return errors.Join(errs...)
}

func (ts *ThemeService) RestoreHistorical(ctx context.Context, entry models.ThemeHistoryEntry) error {
	return ts.ApplyPreset(ctx, entry.Preset())
}

func (ts *ThemeService) pushHistory(ctx context.Context, previous models.ThemePreset) error {
	entry := models.ThemeHistoryEntry{
		ThemePreset: previous,
		ChangedAt:   ts.now().UTC().Format(time.RFC3339),
	}
	entry.Order = ts.nextOrder()

	if _, err := ts.client.AddDocument(ctx, models.CollectionThemeHistory, entry); err != nil {
		return fmt.Errorf("push theme history: %w", err)
	}

	all, ok := ts.readHistory(ctx)
	if !ok {
		return ErrHistoryUnavailable
	}
	if excess := len(all) - MaxThemeHistory; excess > 0 {
		for _, old := range all[:excess] {
			if err := ts.client.DeleteDocument(ctx, models.CollectionThemeHistory, old.ID); err != nil {
				return fmt.Errorf("trim theme history: %w", err)
			}
		}
	}

	trimmed, ok := ts.readHistory(ctx)
	if !ok {
		return ErrHistoryUnavailable
	}
	ts.mu.Lock()
	ts.history = newestFirst(trimmed)
	ts.mu.Unlock()
	return nil
}

// nextOrder is max(now in ms, last+1) so entries pushed within the same
// millisecond still sort in push order.
func (ts *ThemeService) nextOrder() int64 {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	order := ts.now().UnixMilli()
	if order <= ts.lastOrder {
		order = ts.lastOrder + 1
	}
	ts.lastOrder = order
	return order
}

// readHistory returns history oldest first.
func (ts *ThemeService) readHistory(ctx context.Context) ([]models.ThemeHistoryEntry, bool) {
	docs, ok := ts.client.GetCollection(ctx, models.CollectionThemeHistory)
	if !ok {
		return nil, false
	}
	entries, err := store.DecodeAll[models.ThemeHistoryEntry](docs)
	if err != nil {
		ts.logger.Warnf(providers.TypeApp, "Ignoring unreadable theme history: %s", err)
		return nil, false
	}
	models.SortByOrder(entries)
	return entries, true
}

func newestFirst(entries []models.ThemeHistoryEntry) []models.ThemeHistoryEntry {
	out := slices.Clone(entries)
	slices.Reverse(out)
	return out
}

func (ts *ThemeService) State() ThemeState {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	return ThemeState{
		IsDark:        ts.isDark,
		CurrentPreset: ts.current,
		History:       slices.Clone(ts.history),
		Variables:     Variables(ts.isDark, ts.current),
		Loading:       ts.loading,
	}
}

func (ts *ThemeService) Presets() []models.ThemePreset {
	return slices.Clone(ThemePresets)
}

// Variables returns the CSS custom properties for a mode and accent pair.
func Variables(isDark bool, preset models.ThemePreset) map[string]string {
	base := lightVariables
	if isDark {
		base = darkVariables
	}
	vars := make(map[string]string, len(base)+2)
	for k, v := range base {
		vars[k] = v
	}
	vars["--accent-primary"] = preset.Primary
	vars["--accent-secondary"] = preset.Secondary
	return vars
}
