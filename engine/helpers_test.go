package engine

import (
	"testing"
	"time"

	"cinema_planner/model"
)

const minute = time.Minute

func testCatalog() *MapCatalog {
	cat := NewMapCatalog()
	cat.Auditoriums[1] = &model.Auditorium{DTO: model.DTO{ID: 1}, Name: "P1", Format: "2D", Seats: 120}
	cat.Auditoriums[2] = &model.Auditorium{DTO: model.DTO{ID: 2}, Name: "P2", Format: "IMAX", Seats: 200}
	// cycle = 120 + 10 + 20 = 150
	cat.Films["dune-2"] = &model.Film{ID: "dune-2", Title: "Dune 2", RuntimeMin: 120, TrailerMin: 10, CleanMin: 20, Format: "2D"}
	// cycle = 90 + 5 + 10 = 105
	cat.Films["mai"] = &model.Film{ID: "mai", Title: "Mai", RuntimeMin: 90, TrailerMin: 5, CleanMin: 10, Format: "2D"}
	// cycle = 0
	cat.Films["teaser"] = &model.Film{ID: "teaser", Title: "Teaser", RuntimeMin: 0, TrailerMin: 0, CleanMin: 0}
	return cat
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	loc := time.FixedZone("ICT", 7*3600)
	s := NewSession(testCatalog(), NewMemStore(), loc)
	s.Date = "2026-03-14"
	s.Window = Window{FirstHM: "07:00", LastHM: "23:00"}
	return s
}

// at trả về instant của "HH:MM" trong ngày đang mở của session
func at(s *Session, hm string) time.Time {
	t, _ := AtTime(s.DayStart(), hm)
	return NormalizeOperatingDay(t)
}

func primeRow(id string, audID uint, filmID, primeHM string) Row {
	return Row{RowID: id, Kind: "prime", AudID: audID, FilmID: filmID, PrimeHM: primeHM}
}

func cloneAud(a *model.Auditorium, id uint, name string) *model.Auditorium {
	return &model.Auditorium{DTO: model.DTO{ID: id}, Name: name, Format: a.Format, Seats: a.Seats}
}
