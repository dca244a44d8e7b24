package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwitchToPersistsAndLoads(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()

	s.Snap.Rows = []Row{primeRow("R1", 1, "dune-2", "19:00")}
	s.SetStart("R1:0", "19:20")

	require.NoError(t, s.SwitchTo(ctx, "2026-03-15"))
	// Ngày mới chưa ghé bao giờ: snapshot rỗng
	assert.Empty(t, s.Snap.Rows)
	assert.Empty(t, s.Snap.Overrides)

	require.NoError(t, s.SwitchTo(ctx, "2026-03-14"))
	require.Len(t, s.Snap.Rows, 1)
	assert.Equal(t, "R1", s.Snap.Rows[0].RowID)
	require.Contains(t, s.Snap.Overrides, "R1:0")

	// Instant phải được rehydrate đúng qua vòng JSON
	eff, ok := s.findShow("R1:0")
	require.True(t, ok)
	assert.True(t, eff.Start.Equal(at(s, "19:20")))
}

func TestSwitchToSameDateIsNoop(t *testing.T) {
	s := newTestSession(t)
	s.Snap.Rows = []Row{primeRow("R1", 1, "dune-2", "19:00")}
	require.NoError(t, s.SwitchTo(context.Background(), s.Date))
	assert.Len(t, s.Snap.Rows, 1)
}

func TestSwitchToSignalsDateChanged(t *testing.T) {
	s := newTestSession(t)
	var events []string
	s.Notify = func(e string) { events = append(events, e) }

	require.NoError(t, s.SwitchTo(context.Background(), "2026-03-20"))
	assert.Contains(t, events, "date:changed")
}

func TestCopyResetsUndo(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()

	s.Snap.Rows = []Row{primeRow("R1", 1, "dune-2", "19:00")}
	s.AddManualShow("R1", "10:15")
	s.SetStart("R1:0", "19:20")
	require.NotEmpty(t, s.Snap.Undo)

	require.NoError(t, s.Copy(ctx, "2026-03-14", []string{"2026-03-16", "2026-03-17"}))

	for _, date := range []string{"2026-03-16", "2026-03-17"} {
		require.NoError(t, s.SwitchTo(ctx, date))
		assert.Empty(t, s.Snap.Undo, "undo stack phải rỗng trên bản sao %s", date)
		assert.Len(t, s.Snap.Rows, 1)
		assert.Len(t, s.Snap.ManualShows, 1)
		assert.Contains(t, s.Snap.Overrides, "R1:0")
	}

	// Bản gốc giữ nguyên undo stack
	require.NoError(t, s.SwitchTo(ctx, "2026-03-14"))
	assert.NotEmpty(t, s.Snap.Undo)
}

func TestCopyIsDeepClone(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()

	s.Snap.Rows = []Row{primeRow("R1", 1, "dune-2", "19:00")}
	require.NoError(t, s.Copy(ctx, "2026-03-14", []string{"2026-03-16"}))

	// Sửa bản gốc sau khi copy không được lan sang bản sao
	s.Snap.Rows[0].PrimeHM = "20:00"
	require.NoError(t, s.SwitchTo(ctx, "2026-03-16"))
	assert.Equal(t, "19:00", s.Snap.Rows[0].PrimeHM)
}

func TestRetentionPrunesOldestDates(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()

	base := time.Date(2026, 4, 1, 0, 0, 0, 0, s.Loc)
	var lastDate string
	for i := 0; i < RetentionLimit+5; i++ {
		lastDate = base.AddDate(0, 0, i).Format("2006-01-02")
		require.NoError(t, s.SwitchTo(ctx, lastDate))
		s.Snap.Rows = []Row{primeRow("R1", 1, "dune-2", "19:00")}
		require.NoError(t, s.Save(ctx))
	}

	dates := s.StoredDates(ctx)
	assert.LessOrEqual(t, len(dates), RetentionLimit)
	// Các ngày cũ nhất bị xoá trước
	assert.NotContains(t, dates, "2026-04-01")
	assert.Contains(t, dates, lastDate)
}

func TestLoadCorruptSnapshotFallsBackToEmpty(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()

	require.NoError(t, s.Store.Save(ctx, snapshotKey("2026-05-01"), []byte("{not json")))
	require.NoError(t, s.SwitchTo(ctx, "2026-05-01"))
	assert.Empty(t, s.Snap.Rows)
	assert.NotNil(t, s.Snap.Overrides)
}

func TestClearDate(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()

	s.Snap.Rows = []Row{primeRow("R1", 1, "dune-2", "19:00")}
	require.NoError(t, s.Save(ctx))
	require.NoError(t, s.Clear(ctx, s.Date))
	assert.Empty(t, s.Snap.Rows)
	assert.NotContains(t, s.StoredDates(ctx), s.Date)
}

func TestSetWindowAndLoadState(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()

	require.True(t, s.SetWindow(ctx, Window{FirstHM: "08:00", LastHM: "00:30"}))
	assert.False(t, s.SetWindow(ctx, Window{FirstHM: "08:00", LastHM: "xx"}))

	s.Snap.Rows = []Row{primeRow("R1", 1, "dune-2", "19:00")}
	require.NoError(t, s.Save(ctx))
	require.NoError(t, s.SwitchTo(ctx, "2026-03-20"))

	// Phiên mới trên cùng kho phải khôi phục ngày và khung giờ
	fresh := NewSession(s.Catalog, s.Store, s.Loc)
	fresh.LoadState(ctx)
	assert.Equal(t, "2026-03-20", fresh.Date)
	assert.Equal(t, Window{FirstHM: "08:00", LastHM: "00:30"}, fresh.Window)
}

func TestMigrateFillsMissingPieces(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()

	// Snapshot cũ: thiếu map, row không id, suất thủ công chưa có giờ kết thúc
	legacy := []byte(`{
		"rows": [{"rowId":"R1","audId":1,"filmId":"dune-2","primeHM":"19:00"},{"rowId":""}],
		"manualShows": [{"id":"m:1","rowId":"R1","audId":1,"filmId":"dune-2","start":"2026-05-02T10:15:00+07:00"}]
	}`)
	require.NoError(t, s.Store.Save(ctx, snapshotKey("2026-05-02"), legacy))
	require.NoError(t, s.SwitchTo(ctx, "2026-05-02"))

	assert.Len(t, s.Snap.Rows, 1)
	assert.NotNil(t, s.Snap.Overrides)
	assert.NotNil(t, s.Snap.Hidden)
	require.Len(t, s.Snap.ManualShows, 1)
	ms := s.Snap.ManualShows[0]
	assert.Equal(t, SourceManual, ms.Source)
	assert.Equal(t, ms.Start.Add(130*minute), ms.End)
	assert.Equal(t, 150, ms.CycleMinutes)
}
