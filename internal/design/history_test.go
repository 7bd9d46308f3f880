package design

import (
	"testing"

	"github.com/piwi3910/RoomFit/internal/model"
)

func chairItem(id string) model.FurnitureItem {
	return model.FurnitureItem{
		ID:      id,
		Product: model.Product{ID: "ikea-poang-chair", Name: "POÄNG Armchair", Category: model.CategoryChair, WidthIn: 27, DepthIn: 32},
	}
}

func TestNewHistory(t *testing.T) {
	h := NewHistory()
	if h.maxDepth != defaultMaxDepth {
		t.Errorf("expected maxDepth %d, got %d", defaultMaxDepth, h.maxDepth)
	}
	if h.CanUndo() {
		t.Error("new history should not be undoable")
	}
	if h.CanRedo() {
		t.Error("new history should not be redoable")
	}
}

func TestPushAndUndo(t *testing.T) {
	h := NewHistory()

	h.Push(MakeSnapshot(nil, "", "initial"))
	if !h.CanUndo() {
		t.Fatal("should be able to undo after push")
	}

	current := MakeSnapshot([]model.FurnitureItem{chairItem("c1")}, "c1", "current")

	restored, ok := h.Undo(current)
	if !ok {
		t.Fatal("undo should succeed")
	}
	if len(restored.Furniture) != 0 {
		t.Errorf("expected 0 items after undo, got %d", len(restored.Furniture))
	}
	if restored.Label != "initial" {
		t.Errorf("expected label 'initial', got %q", restored.Label)
	}
}

func TestUndoRedo(t *testing.T) {
	h := NewHistory()

	h.Push(MakeSnapshot(nil, "", "empty"))
	h.Push(MakeSnapshot([]model.FurnitureItem{chairItem("c1")}, "", "one chair"))

	current := MakeSnapshot([]model.FurnitureItem{chairItem("c1"), chairItem("c2")}, "", "two chairs")

	restored, ok := h.Undo(current)
	if !ok {
		t.Fatal("first undo should succeed")
	}
	if len(restored.Furniture) != 1 {
		t.Errorf("expected 1 item, got %d", len(restored.Furniture))
	}

	if !h.CanRedo() {
		t.Fatal("should be able to redo")
	}
	redone, ok := h.Redo(restored)
	if !ok {
		t.Fatal("redo should succeed")
	}
	if len(redone.Furniture) != 2 {
		t.Errorf("expected 2 items after redo, got %d", len(redone.Furniture))
	}
}

func TestPushClearsRedo(t *testing.T) {
	h := NewHistory()
	h.Push(MakeSnapshot(nil, "", "empty"))

	if _, ok := h.Undo(MakeSnapshot([]model.FurnitureItem{chairItem("c1")}, "", "one chair")); !ok {
		t.Fatal("undo should succeed")
	}
	if !h.CanRedo() {
		t.Fatal("should be able to redo after undo")
	}

	h.Push(MakeSnapshot(nil, "", "new action"))
	if h.CanRedo() {
		t.Error("redo stack should be cleared after push")
	}
}

func TestMaxDepth(t *testing.T) {
	h := &History{maxDepth: 3}

	for i := 0; i < 5; i++ {
		h.Push(MakeSnapshot(nil, "", ""))
	}

	if len(h.undoStack) != 3 {
		t.Errorf("expected undo stack length 3, got %d", len(h.undoStack))
	}
}

func TestUndoRedoEmpty(t *testing.T) {
	h := NewHistory()
	current := MakeSnapshot(nil, "", "current")
	if _, ok := h.Undo(current); ok {
		t.Error("undo on empty history should return false")
	}
	if _, ok := h.Redo(current); ok {
		t.Error("redo on empty history should return false")
	}
}

func TestClear(t *testing.T) {
	h := NewHistory()
	h.Push(MakeSnapshot(nil, "", "a"))
	h.Push(MakeSnapshot(nil, "", "b"))
	h.Undo(MakeSnapshot(nil, "", "current"))

	h.Clear()
	if h.CanUndo() || h.CanRedo() {
		t.Error("after clear, should not be able to undo or redo")
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	original := []model.FurnitureItem{chairItem("c1")}
	snap := MakeSnapshot(original, "c1", "test")

	original[0].X = 999

	if snap.Furniture[0].X != 0 {
		t.Error("snapshot should be independent of original slice")
	}
	if snap.SelectedID != "c1" {
		t.Errorf("expected selection c1, got %q", snap.SelectedID)
	}
}

func TestCopyNilFurniture(t *testing.T) {
	snap := MakeSnapshot(nil, "", "nil test")
	if snap.Furniture != nil {
		t.Error("nil furniture should stay nil")
	}
}
