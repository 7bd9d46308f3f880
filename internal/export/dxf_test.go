package export

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/piwi3910/RoomFit/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

func readLines(t *testing.T, path string) []*entity.Line {
	t.Helper()
	d, err := dxf.Open(path)
	require.NoError(t, err)

	var lines []*entity.Line
	for _, e := range d.Entities() {
		if l, ok := e.(*entity.Line); ok {
			lines = append(lines, l)
		}
	}
	return lines
}

func TestExportDXF_SingleItem(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.dxf")

	p := buildTestProject()
	p.Furniture = p.Furniture[:1]
	require.NoError(t, ExportDXF(path, p))

	lines := readLines(t, path)
	// Room outline plus one footprint.
	assert.Len(t, lines, 8)

	// Room is 12 x 14 ft = 144 x 168 in.
	var maxX, maxY float64
	for _, l := range lines {
		maxX = max(maxX, l.Start[0], l.End[0])
		maxY = max(maxY, l.Start[1], l.End[1])
	}
	assert.InDelta(t, 144, maxX, 1e-6)
	assert.InDelta(t, 168, maxY, 1e-6)

	// The bed sits 39 in from the left wall and 8 in from the top wall,
	// so its top edge is at 168-8 = 160 and its bottom at 160-80 = 80.
	bed := lines[4]
	assert.InDelta(t, 39, bed.Start[0], 1e-6)
	assert.InDelta(t, 80, bed.Start[1], 1e-6)
	assert.InDelta(t, 99, bed.End[0], 1e-6)
}

func TestExportDXF_AllItems(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.dxf")

	require.NoError(t, ExportDXF(path, buildTestProject()))

	lines := readLines(t, path)
	assert.Len(t, lines, 16)
}

func TestExportDXF_Empty(t *testing.T) {
	err := ExportDXF(filepath.Join(t.TempDir(), "empty.dxf"), model.NewProject())
	assert.True(t, errors.Is(err, ErrNothingToExport))
}
