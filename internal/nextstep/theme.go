package nextstep

// Theme names as persisted.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ThemePreference is the persisted appearance setting. When Auto is set
// the presentation layer follows the system appearance and Theme records
// the last explicit choice.
type ThemePreference struct {
	Theme string
	Auto  bool
}

// ThemePreference returns the stored appearance setting.
// Nothing stored means light theme with auto enabled. Storage reads are
// best-effort: failures fall back to the default, logged.
func (s *Service) ThemePreference() ThemePreference {
	pref := ThemePreference{Theme: ThemeLight, Auto: true}

	theme, err := s.store.Get(KeyTheme)
	if err != nil {
		s.logger.Warn("reading theme preference failed", "error", err)
		return pref
	}
	if theme == ThemeDark {
		pref.Theme = ThemeDark
	}

	auto, err := s.store.Get(KeyThemeAuto)
	if err != nil {
		s.logger.Warn("reading auto-theme flag failed", "error", err)
		return pref
	}
	if auto == "false" {
		pref.Auto = false
	}
	return pref
}

// SetTheme stores an explicit theme choice and switches auto-theme off.
func (s *Service) SetTheme(theme string) (ThemePreference, error) {
	if theme != ThemeLight && theme != ThemeDark {
		return ThemePreference{}, &ValidationError{Field: "theme", Reason: "theme must be light or dark"}
	}
	s.persistTheme(theme, false)
	return ThemePreference{Theme: theme, Auto: false}, nil
}

// SetAutoTheme turns following the system appearance on or off.
func (s *Service) SetAutoTheme(auto bool) ThemePreference {
	pref := s.ThemePreference()
	pref.Auto = auto
	s.persistTheme(pref.Theme, auto)
	return pref
}

// ToggleTheme flips between light and dark. Toggling while auto-theme is
// active disables auto and makes the flipped value the explicit choice.
func (s *Service) ToggleTheme() ThemePreference {
	pref := s.ThemePreference()
	if pref.Theme == ThemeDark {
		pref.Theme = ThemeLight
	} else {
		pref.Theme = ThemeDark
	}
	pref.Auto = false
	s.persistTheme(pref.Theme, false)
	return pref
}

// persistTheme writes both keys best-effort; a failed write keeps the
// previous stored value and is only logged.
func (s *Service) persistTheme(theme string, auto bool) {
	if err := s.store.Set(KeyTheme, theme); err != nil {
		s.logger.Warn("persisting theme failed", "error", err)
	}
	value := "true"
	if !auto {
		value = "false"
	}
	if err := s.store.Set(KeyThemeAuto, value); err != nil {
		s.logger.Warn("persisting auto-theme flag failed", "error", err)
	}
}
