package model

// ThemeMode selects the colour scheme.
type ThemeMode string

const (
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
	ThemeSystem ThemeMode = "system"
)

// FontSize is the UI text size preference.
type FontSize string

const (
	FontSmall  FontSize = "small"
	FontMedium FontSize = "medium"
	FontLarge  FontSize = "large"
)

// Theme holds the persisted display preferences.
type Theme struct {
	Mode           ThemeMode `json:"mode"`
	PrimaryColor   string    `json:"primaryColor"`
	SecondaryColor string    `json:"secondaryColor"`
	FontSize       FontSize  `json:"fontSize"`
}

// DefaultTheme returns the preferences used before any have been saved.
func DefaultTheme() Theme {
	return Theme{
		Mode:           ThemeLight,
		PrimaryColor:   "#007bff",
		SecondaryColor: "#6c757d",
		FontSize:       FontMedium,
	}
}

// ThemeUpdate carries a partial preference change. Nil fields keep the
// current value. SecondaryColor is intentionally absent: the restore
// path only round-trips mode, primaryColor and fontSize.
type ThemeUpdate struct {
	Mode         *ThemeMode `json:"mode,omitempty"`
	PrimaryColor *string    `json:"primaryColor,omitempty"`
	FontSize     *FontSize  `json:"fontSize,omitempty"`
}

// Apply merges the non-nil fields of the update into the theme.
func (u *ThemeUpdate) Apply(t *Theme) {
	if u.Mode != nil {
		t.Mode = *u.Mode
	}
	if u.PrimaryColor != nil {
		t.PrimaryColor = *u.PrimaryColor
	}
	if u.FontSize != nil {
		t.FontSize = *u.FontSize
	}
}
