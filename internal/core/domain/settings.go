package domain

import "errors"

var (
	ErrUnknownTheme = errors.New("unknown theme")
	ErrNameRequired = errors.New("name is required")
)

// Theme keys selectable in the UI.
const (
	ThemeLavender = "lavender"
	ThemeOcean    = "ocean"
	ThemeEarth    = "earth"
	ThemeRose     = "rose"
	ThemeDark     = "dark"
	ThemeSunset   = "sunset"
	ThemeForest   = "forest"
	ThemeBerry    = "berry"
	ThemeMidnight = "midnight"
)

var validThemes = map[string]bool{
	ThemeLavender: true,
	ThemeOcean:    true,
	ThemeEarth:    true,
	ThemeRose:     true,
	ThemeDark:     true,
	ThemeSunset:   true,
	ThemeForest:   true,
	ThemeBerry:    true,
	ThemeMidnight: true,
}

func ValidTheme(theme string) bool {
	return validThemes[theme]
}

// UserProfile is the optional onboarding questionnaire data.
type UserProfile struct {
	Age         string   `json:"age"`
	Gender      string   `json:"gender"`
	Nationality string   `json:"nationality"`
	Diagnoses   []string `json:"diagnoses"`
	Goals       []string `json:"goals"`
	UseCase     string   `json:"useCase"`
}

// UserSettings is the single user's configuration. A non-empty Name means
// onboarding is complete.
type UserSettings struct {
	Name          string       `json:"name"`
	Notifications bool         `json:"notifications"`
	Theme         string       `json:"theme"`
	RestMode      bool         `json:"restMode"`
	Profile       *UserProfile `json:"profile,omitempty"`
}

// DefaultSettings is the fixed profile restored by clear-all.
func DefaultSettings() UserSettings {
	return UserSettings{
		Name:          "",
		Notifications: true,
		Theme:         ThemeLavender,
		RestMode:      false,
	}
}

func (s UserSettings) Onboarded() bool {
	return s.Name != ""
}

func (s UserSettings) Validate() error {
	if !ValidTheme(s.Theme) {
		return ErrUnknownTheme
	}
	return nil
}
