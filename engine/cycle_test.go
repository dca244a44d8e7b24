package engine

import (
	"fmt"
	"testing"
	"time"

	"cinema_planner/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBasicCycle(t *testing.T) {
	s := newTestSession(t)
	row := primeRow("R1", 1, "dune-2", "19:00")

	shows := GenerateRowShows(row, s.DayStart(), s.Window, s.Catalog)
	require.Len(t, shows, 6)

	wantStarts := []string{"09:00", "11:30", "14:00", "16:30", "19:00", "21:30"}
	wantIDs := []string{"R1:-4", "R1:-3", "R1:-2", "R1:-1", "R1:0", "R1:1"}
	for i, sh := range shows {
		assert.Equal(t, at(s, wantStarts[i]), sh.Start, "show %d", i)
		assert.Equal(t, wantIDs[i], sh.ID, "show %d", i)
		assert.Equal(t, SourcePrime, sh.Source)
		assert.Equal(t, "P1", sh.AudName)
		assert.Equal(t, "Dune 2 (2D)", sh.FilmTitle)
		// End chỉ gồm runtime + trailer, giờ dọn phòng nằm trong cycle
		assert.Equal(t, sh.Start.Add(130*time.Minute), sh.End)
		assert.Equal(t, 150, sh.CycleMinutes)
	}
}

// Số suất sinh ra phải khớp công thức floor((p-first)/c) + 1 + floor((last-p)/c)
// và mọi giờ bắt đầu đúng bội số cycle tính từ giờ neo
func TestGenerateMatchesRecurrenceFormula(t *testing.T) {
	s := newTestSession(t)
	cases := []struct {
		filmID  string
		primeHM string
	}{
		{"dune-2", "19:00"},
		{"dune-2", "07:00"},
		{"mai", "12:45"},
		{"mai", "22:55"},
	}
	for _, c := range cases {
		row := primeRow("R", 1, c.filmID, c.primeHM)
		film := s.Catalog.FilmByID(c.filmID)
		cycle := film.CycleMinutes()

		first := at(s, s.Window.FirstHM)
		last := at(s, s.Window.LastHM)
		prime := at(s, c.primeHM)

		want := MinutesBetween(first, prime)/cycle + 1 + MinutesBetween(prime, last)/cycle
		shows := GenerateRowShows(row, s.DayStart(), s.Window, s.Catalog)
		assert.Len(t, shows, want, "film %s prime %s", c.filmID, c.primeHM)

		for _, sh := range shows {
			diff := MinutesBetween(prime, sh.Start)
			assert.Zero(t, diff%cycle, "start %v không đúng bội số cycle", sh.Start)
		}
	}
}

func TestGenerateZeroCycleGuard(t *testing.T) {
	s := newTestSession(t)
	row := primeRow("R1", 1, "teaser", "19:00")
	assert.Empty(t, GenerateRowShows(row, s.DayStart(), s.Window, s.Catalog))
}

func TestGenerateIncompleteRow(t *testing.T) {
	s := newTestSession(t)
	cases := []Row{
		{RowID: "R1", AudID: 1, PrimeHM: "19:00"},               // thiếu phim
		{RowID: "R2", FilmID: "dune-2", PrimeHM: "19:00"},       // thiếu phòng
		{RowID: "R3", FilmID: "dune-2", AudID: 1},               // thiếu giờ neo
		{RowID: "R4", FilmID: "missing", AudID: 1, PrimeHM: "19:00"}, // phim không có trong danh mục
		{RowID: "R5", FilmID: "dune-2", AudID: 9, PrimeHM: "19:00"},  // phòng không có trong danh mục
	}
	for _, row := range cases {
		assert.Empty(t, GenerateRowShows(row, s.DayStart(), s.Window, s.Catalog), "row %s", row.RowID)
	}
}

// Suất neo luôn được sinh kể cả khi nằm ngoài khung giờ
func TestGeneratePrimeNeverDropped(t *testing.T) {
	s := newTestSession(t)
	row := primeRow("R1", 1, "dune-2", "23:30")

	shows := GenerateRowShows(row, s.DayStart(), s.Window, s.Catalog)
	require.NotEmpty(t, shows)

	prime := shows[len(shows)-1]
	assert.Equal(t, "R1:0", prime.ID)
	assert.Equal(t, at(s, "23:30"), prime.Start)
	assert.True(t, prime.Start.After(at(s, s.Window.LastHM)))
}

// Giờ đóng cửa trước 05:00 nghĩa là rạng sáng hôm sau
func TestGenerateWindowWrapsMidnight(t *testing.T) {
	s := newTestSession(t)
	s.Window.LastHM = "00:30"
	row := primeRow("R1", 1, "dune-2", "19:00")

	shows := GenerateRowShows(row, s.DayStart(), s.Window, s.Catalog)
	// post: 19:00 → 00:30 hôm sau là 330 phút, thêm được 2 suất 21:30 và 00:00
	var post []Show
	for _, sh := range shows {
		if sh.Start.After(at(s, "19:00")) {
			post = append(post, sh)
		}
	}
	require.Len(t, post, 2)
	assert.Equal(t, at(s, "21:30"), post[0].Start)
	assert.Equal(t, at(s, "00:00"), post[1].Start)
}

func TestGenerateInvertedWindow(t *testing.T) {
	s := newTestSession(t)
	s.Window = Window{FirstHM: "22:00", LastHM: "07:00"}
	row := primeRow("R1", 1, "dune-2", "23:00")
	assert.Empty(t, GenerateRowShows(row, s.DayStart(), s.Window, s.Catalog))
}

func TestGenerateIDStability(t *testing.T) {
	s := newTestSession(t)
	row := primeRow("R1", 1, "mai", "13:00")

	a := GenerateRowShows(row, s.DayStart(), s.Window, s.Catalog)
	b := GenerateRowShows(row, s.DayStart(), s.Window, s.Catalog)
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].ID, b[i].ID)
		assert.Equal(t, fmt.Sprintf("R1:%d", MinutesBetween(at(s, "13:00"), a[i].Start)/105), a[i].ID)
	}
}

func TestGenerateStepCapPerDirection(t *testing.T) {
	s := newTestSession(t)
	cat := testCatalog()
	// cycle = 3 + 1 + 1 = 5, khung giờ cả ngày thừa chỗ cho hơn 50 bước mỗi chiều
	cat.Films["filler"] = &model.Film{ID: "filler", Title: "Filler", RuntimeMin: 3, TrailerMin: 1, CleanMin: 1}

	shows := GenerateRowShows(primeRow("R1", 1, "filler", "15:00"), s.DayStart(), s.Window, cat)

	// 07:00–15:00 và 15:00–23:00 đều chứa 96 bước 5 phút, bị chặn còn 50
	require.Len(t, shows, 101)
	assert.Equal(t, "R1:-50", shows[0].ID)
	assert.Equal(t, at(s, "10:50"), shows[0].Start)
	assert.Equal(t, "R1:50", shows[100].ID)
	assert.Equal(t, at(s, "19:10"), shows[100].Start)
}
