package model

import (
	"testing"
)

func TestNewRoomTemplate(t *testing.T) {
	cfg := RoomConfig{Type: RoomBedroom, Room: Room{WidthFt: 12, LengthFt: 14}, Style: StyleModern, Budget: 3000}
	tmpl := NewRoomTemplate("Guest room", "Small guest bedroom", cfg, DefaultSettings())

	if tmpl.Name != "Guest room" {
		t.Errorf("expected name 'Guest room', got %q", tmpl.Name)
	}
	if tmpl.ID == "" {
		t.Error("expected non-empty ID")
	}
	if tmpl.CreatedAt == "" {
		t.Error("expected non-empty CreatedAt")
	}
	if tmpl.Config.Room.WidthFt != 12 {
		t.Errorf("expected width 12, got %f", tmpl.Config.Room.WidthFt)
	}
}

func TestRoomTemplate_ToProject(t *testing.T) {
	settings := DefaultSettings()
	settings.Padding = 4
	cfg := RoomConfig{Type: RoomOffice, Room: Room{WidthFt: 10, LengthFt: 10}, Budget: 2000}

	proj := NewRoomTemplate("Office", "", cfg, settings).ToProject("My Office")

	if proj.Name != "My Office" {
		t.Errorf("expected project name 'My Office', got %q", proj.Name)
	}
	if proj.Config.Type != RoomOffice {
		t.Errorf("expected room type office, got %q", proj.Config.Type)
	}
	if proj.Settings.Padding != 4 {
		t.Errorf("expected padding 4, got %f", proj.Settings.Padding)
	}
	if proj.Furniture == nil || len(proj.Furniture) != 0 {
		t.Errorf("expected empty furniture, got %v", proj.Furniture)
	}
}

func TestTemplateStore_AddRemoveFind(t *testing.T) {
	store := NewTemplateStore()
	a := NewRoomTemplate("A", "", DefaultRoomConfig(), DefaultSettings())
	b := NewRoomTemplate("B", "", DefaultRoomConfig(), DefaultSettings())
	store.Add(a)
	store.Add(b)

	if names := store.Names(); len(names) != 2 || names[0] != "A" || names[1] != "B" {
		t.Errorf("unexpected names %v", names)
	}
	if got := store.FindByName("B"); got == nil || got.ID != b.ID {
		t.Error("expected to find template B")
	}
	if !store.Remove(a.ID) {
		t.Error("expected Remove to succeed")
	}
	if store.Remove(a.ID) {
		t.Error("expected second Remove to fail")
	}
	if store.FindByName("A") != nil {
		t.Error("template A should be gone")
	}
}
