package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied to new projects
	DefaultBudget  float64 `json:"default_budget"` // 0 = no budget
	DefaultCountry Country `json:"default_country"`

	// Layout scale defaults
	UnitsPerFoot float64 `json:"units_per_foot"`
	Padding      float64 `json:"padding"`
	Margin       float64 `json:"margin"`
	SearchStep   float64 `json:"search_step"`
	MaxItems     int     `json:"max_items"`

	// Application preferences
	CatalogPath    string   `json:"catalog_path"` // empty = built-in catalog
	RecentProjects []string `json:"recent_projects"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	room := DefaultRoomConfig()
	return AppConfig{
		DefaultBudget:  room.Budget,
		DefaultCountry: room.Country,
		UnitsPerFoot:   defaults.UnitsPerFoot,
		Padding:        defaults.Padding,
		Margin:         defaults.Margin,
		SearchStep:     defaults.SearchStep,
		MaxItems:       defaults.MaxItems,
		RecentProjects: []string{},
	}
}

// ApplyToSettings copies the default values from AppConfig into a LayoutSettings struct.
// Scale, step and item limit must be positive to apply; padding and margin
// may be zero. Negative values are ignored.
func (c AppConfig) ApplyToSettings(s *LayoutSettings) {
	if c.UnitsPerFoot > 0 {
		s.UnitsPerFoot = c.UnitsPerFoot
	}
	if c.Padding >= 0 {
		s.Padding = c.Padding
	}
	if c.Margin >= 0 {
		s.Margin = c.Margin
	}
	if c.SearchStep > 0 {
		s.SearchStep = c.SearchStep
	}
	if c.MaxItems > 0 {
		s.MaxItems = c.MaxItems
	}
}

// ApplyToRoomConfig copies the budget and country defaults into a new room config.
func (c AppConfig) ApplyToRoomConfig(rc *RoomConfig) {
	rc.Budget = c.DefaultBudget
	if c.DefaultCountry != "" {
		rc.Country = c.DefaultCountry
	}
}

// AddRecentProject moves path to the front of the recent list, keeping at most limit entries.
func (c *AppConfig) AddRecentProject(path string, limit int) {
	recent := []string{path}
	for _, p := range c.RecentProjects {
		if p != path {
			recent = append(recent, p)
		}
	}
	if limit > 0 && len(recent) > limit {
		recent = recent[:limit]
	}
	c.RecentProjects = recent
}
