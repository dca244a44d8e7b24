package engine

import (
	"time"

	"cinema_planner/model"
)

// Undo đảo ngược thao tác gần nhất. Gọi lặp lại sẽ lùi tiếp trên cùng một
// stack; stack rỗng là no-op. Undo không tự đẩy thêm UndoEntry.
func (s *Session) Undo() bool {
	n := len(s.Snap.Undo)
	if n == 0 {
		return false
	}
	e := s.Snap.Undo[n-1]
	s.Snap.Undo = s.Snap.Undo[:n-1]

	switch e.Kind {
	case UndoEdit:
		ov := s.Snap.Overrides[e.ShowID]
		if e.PrevStart != nil {
			prev := *e.PrevStart
			ov.Start = &prev
		} else {
			ov.Start = nil
		}
		s.setOrDropOverride(e.ShowID, ov)

	case UndoHide:
		if e.PrevHidden {
			s.Snap.Hidden[e.ShowID] = true
		} else {
			delete(s.Snap.Hidden, e.ShowID)
		}

	case UndoManualInsert:
		id := e.ShowID
		if e.Show != nil {
			id = e.Show.ID
		}
		for i := range s.Snap.ManualShows {
			if s.Snap.ManualShows[i].ID == id {
				s.Snap.ManualShows = append(s.Snap.ManualShows[:i], s.Snap.ManualShows[i+1:]...)
				break
			}
		}

	case UndoMoveAud:
		s.undoMoveAuditorium(e)

	case UndoEditFilm:
		s.undoEditFilm(e)
	}

	s.notify("schedule:changed")
	return true
}

// undoMoveAuditorium: nếu phòng trước đó trùng phòng gốc hiện tại của suất
// thì xoá hẳn field phòng trong override (và xoá override nếu rỗng),
// ngược lại ghi lại phòng cũ vào override. Suất thủ công sửa thẳng bản ghi.
func (s *Session) undoMoveAuditorium(e UndoEntry) {
	if e.PrevAudID == nil {
		return
	}
	if ms := s.manualShow(e.ShowID); ms != nil {
		ms.AudID = *e.PrevAudID
		if aud := s.Catalog.AuditoriumByID(*e.PrevAudID); aud != nil {
			ms.AudName = aud.Name
		}
		return
	}

	base, ok := s.baseShow(e.ShowID)
	ov, hasOv := s.Snap.Overrides[e.ShowID]
	if ok && *e.PrevAudID == base.AudID {
		if !hasOv {
			return
		}
		ov.AudID = nil
		s.setOrDropOverride(e.ShowID, ov)
		return
	}
	prev := *e.PrevAudID
	ov.AudID = &prev
	s.Snap.Overrides[e.ShowID] = ov
}

// undoEditFilm đối xứng với undoMoveAuditorium trên field phim
func (s *Session) undoEditFilm(e UndoEntry) {
	if e.PrevFilmID == nil {
		return
	}
	if ms := s.manualShow(e.ShowID); ms != nil {
		if film := s.Catalog.FilmByID(*e.PrevFilmID); film != nil {
			applyFilmToManual(ms, film)
		} else {
			ms.FilmID = *e.PrevFilmID
		}
		return
	}

	base, ok := s.baseShow(e.ShowID)
	ov, hasOv := s.Snap.Overrides[e.ShowID]
	if ok && *e.PrevFilmID == base.FilmID {
		if !hasOv {
			return
		}
		ov.FilmID = nil
		s.setOrDropOverride(e.ShowID, ov)
		return
	}
	prev := *e.PrevFilmID
	ov.FilmID = &prev
	s.Snap.Overrides[e.ShowID] = ov
}

// applyFilmToManual gán phim mới cho suất thủ công và tính lại giờ kết thúc
func applyFilmToManual(ms *Show, film *model.Film) {
	ms.FilmID = film.ID
	ms.FilmTitle = film.DisplayTitle()
	ms.RuntimeMin = film.RuntimeMin
	ms.TrailerMin = film.TrailerMin
	ms.CleanMin = film.CleanMin
	ms.CycleMinutes = film.CycleMinutes()
	ms.End = ms.Start.Add(time.Duration(film.RuntimeMin+film.TrailerMin) * time.Minute)
}
