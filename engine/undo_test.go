package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUndoEmptyStack(t *testing.T) {
	s := newTestSession(t)
	assert.False(t, s.Undo())
}

func TestUndoEdit(t *testing.T) {
	s := newTestSession(t)
	s.Snap.Rows = []Row{primeRow("R1", 1, "dune-2", "19:00")}

	_, changed := s.SetStart("R1:0", "19:20")
	require.True(t, changed)

	require.True(t, s.Undo())
	eff, ok := s.findShow("R1:0")
	require.True(t, ok)
	assert.Equal(t, at(s, "19:00"), eff.Start)
	assert.Empty(t, s.Snap.Undo)
	// Undo không đẩy thêm entry nào
}

func TestUndoHide(t *testing.T) {
	s := newTestSession(t)
	s.Snap.Rows = []Row{primeRow("R1", 1, "dune-2", "19:00")}

	s.SetStart("R1:0", "")
	require.True(t, s.Snap.Hidden["R1:0"])

	require.True(t, s.Undo())
	assert.False(t, s.Snap.Hidden["R1:0"])
	assert.Len(t, s.Resolve(), 6)
}

func TestUndoManualInsert(t *testing.T) {
	s := newTestSession(t)
	s.Snap.Rows = []Row{primeRow("R1", 1, "dune-2", "19:00")}

	ms, ok := s.AddManualShow("R1", "10:15")
	require.True(t, ok)
	require.Len(t, s.Snap.ManualShows, 1)

	require.True(t, s.Undo())
	assert.Empty(t, s.Snap.ManualShows)
	assert.Nil(t, s.manualShow(ms.ID))
}

// Undo chuyển phòng: phòng cũ trùng phòng gốc thì override bị xoá hẳn
func TestUndoMoveAuditoriumClearsOverride(t *testing.T) {
	s := newTestSession(t)
	s.Snap.Rows = []Row{primeRow("R1", 1, "dune-2", "19:00")}

	dest := uint(2)
	_, changed := s.SetAuditorium("R1:0", &dest)
	require.True(t, changed)
	require.Contains(t, s.Snap.Overrides, "R1:0")

	require.True(t, s.Undo())
	assert.NotContains(t, s.Snap.Overrides, "R1:0")

	eff, ok := s.findShow("R1:0")
	require.True(t, ok)
	assert.Equal(t, uint(1), eff.AudID)
	assert.Equal(t, SourcePrime, eff.Source)
}

// Phòng cũ khác phòng gốc (hai lần chuyển liên tiếp) thì undo ghi lại
// phòng cũ vào override thay vì xoá
func TestUndoMoveAuditoriumRestoresPrevious(t *testing.T) {
	s := newTestSession(t)
	cat := s.Catalog.(*MapCatalog)
	cat.Auditoriums[3] = cloneAud(cat.Auditoriums[2], 3, "P3")
	s.Snap.Rows = []Row{primeRow("R1", 1, "dune-2", "19:00")}

	two := uint(2)
	three := uint(3)
	s.SetAuditorium("R1:0", &two)
	s.SetAuditorium("R1:0", &three)

	require.True(t, s.Undo())
	ov := s.Snap.Overrides["R1:0"]
	require.NotNil(t, ov.AudID)
	assert.Equal(t, uint(2), *ov.AudID)

	eff, _ := s.findShow("R1:0")
	assert.Equal(t, uint(2), eff.AudID)
}

func TestUndoMoveAuditoriumManual(t *testing.T) {
	s := newTestSession(t)
	s.Snap.Rows = []Row{primeRow("R1", 1, "dune-2", "19:00")}
	ms, _ := s.AddManualShow("R1", "10:15")

	dest := uint(2)
	s.SetAuditorium(ms.ID, &dest)
	require.Equal(t, uint(2), s.manualShow(ms.ID).AudID)

	require.True(t, s.Undo())
	rec := s.manualShow(ms.ID)
	assert.Equal(t, uint(1), rec.AudID)
	assert.Equal(t, "P1", rec.AudName)
}

func TestUndoEditFilm(t *testing.T) {
	s := newTestSession(t)
	s.Snap.Rows = []Row{primeRow("R1", 1, "dune-2", "19:00")}

	film := "mai"
	s.SetFilm("R1:0", &film)
	require.Contains(t, s.Snap.Overrides, "R1:0")

	require.True(t, s.Undo())
	assert.NotContains(t, s.Snap.Overrides, "R1:0")

	eff, _ := s.findShow("R1:0")
	assert.Equal(t, "dune-2", eff.FilmID)
	assert.Equal(t, 150, eff.CycleMinutes)
}

func TestUndoEditFilmManual(t *testing.T) {
	s := newTestSession(t)
	s.Snap.Rows = []Row{primeRow("R1", 1, "dune-2", "19:00")}
	ms, _ := s.AddManualShow("R1", "10:15")

	film := "mai"
	s.SetFilm(ms.ID, &film)

	require.True(t, s.Undo())
	rec := s.manualShow(ms.ID)
	assert.Equal(t, "dune-2", rec.FilmID)
	assert.Equal(t, 150, rec.CycleMinutes)
	assert.Equal(t, rec.Start.Add(130*minute), rec.End)
}

// Gọi undo nhiều lần lùi dần qua cùng một stack
func TestUndoWalksBack(t *testing.T) {
	s := newTestSession(t)
	s.Snap.Rows = []Row{primeRow("R1", 1, "dune-2", "19:00")}

	s.SetStart("R1:0", "19:20")
	s.SetStart("R1:0", "19:40")
	require.Len(t, s.Snap.Undo, 2)

	s.Undo()
	eff, _ := s.findShow("R1:0")
	assert.Equal(t, at(s, "19:20"), eff.Start)

	s.Undo()
	eff, _ = s.findShow("R1:0")
	assert.Equal(t, at(s, "19:00"), eff.Start)

	assert.False(t, s.Undo())
}
