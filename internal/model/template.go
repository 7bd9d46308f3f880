package model

import (
	"time"

	"github.com/google/uuid"
)

// RoomTemplate is a saved room configuration (dimensions, type, style,
// budget) that can seed new projects. It never stores furniture.
type RoomTemplate struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	CreatedAt   string         `json:"created_at"`
	UpdatedAt   string         `json:"updated_at"`
	Config      RoomConfig     `json:"config"`
	Settings    LayoutSettings `json:"settings"`
}

// NewRoomTemplate captures config and settings under a fresh id.
func NewRoomTemplate(name, description string, config RoomConfig, settings LayoutSettings) RoomTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	return RoomTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Config:      config,
		Settings:    settings,
	}
}

// ToProject creates an empty project from this template.
func (t RoomTemplate) ToProject(projectName string) Project {
	return Project{
		Name:      projectName,
		Config:    t.Config,
		Furniture: []FurnitureItem{},
		Settings:  t.Settings,
	}
}

// TemplateStore holds a collection of room templates.
type TemplateStore struct {
	Templates []RoomTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{
		Templates: []RoomTemplate{},
	}
}

// Add adds a template to the store.
func (ts *TemplateStore) Add(t RoomTemplate) {
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByName returns a pointer to the first template with the given name, or nil.
func (ts *TemplateStore) FindByName(name string) *RoomTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

// Names returns the template names in store order.
func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}
