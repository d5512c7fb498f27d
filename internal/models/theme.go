package models

type ThemePreset struct {
	Name      string `json:"name" validate:"required"`
	Primary   string `json:"primary" validate:"required|regexp:^#[0-9A-Fa-f]{6}$"`
	Secondary string `json:"secondary" validate:"required|regexp:^#[0-9A-Fa-f]{6}$"`
}

type ThemeHistoryEntry struct {
	Meta
	ThemePreset
	ChangedAt string `json:"changedAt"`
}

func (e *ThemeHistoryEntry) Normalize() {}

func (e ThemeHistoryEntry) Preset() ThemePreset {
	return e.ThemePreset
}
