package engine

import (
	"time"

	"github.com/google/uuid"
)

// Các entry point chỉnh sửa lịch. Nguyên tắc chung: showId không tồn tại
// hay giá trị không đổi là no-op im lặng (UI chịu trách nhiệm chỉ đưa ra
// thao tác hợp lệ); mỗi thao tác thành công đẩy đúng một UndoEntry.

// SetStart đổi giờ bắt đầu của một suất qua override; chuỗi rỗng thì ẩn suất.
// Trả về suất hiệu lực sau khi sửa và cờ có-thay-đổi.
func (s *Session) SetStart(showID, hm string) (Show, bool) {
	sh, ok := s.findShow(showID)
	if !ok {
		return Show{}, false
	}

	if hm == "" {
		s.pushUndo(UndoEntry{Kind: UndoHide, ShowID: showID, PrevHidden: s.Snap.Hidden[showID]})
		s.Snap.Hidden[showID] = true
		s.notify("schedule:changed")
		return sh, true
	}

	at, ok := AtTime(s.DayStart(), hm)
	if !ok {
		return Show{}, false
	}
	start := NormalizeOperatingDay(at)
	if sh.Start.Equal(start) {
		return sh, false
	}

	prev := sh.Start
	s.pushUndo(UndoEntry{Kind: UndoEdit, ShowID: showID, PrevStart: &prev})

	ov := s.Snap.Overrides[showID]
	ov.Start = &start
	s.Snap.Overrides[showID] = ov

	eff, _ := s.findShow(showID)
	s.notify("schedule:changed")
	return eff, true
}

// SetAuditorium chuyển suất sang phòng khác. Suất thủ công sửa thẳng bản ghi,
// suất sinh từ row đi qua override; audID nil xoá override phòng nếu có.
func (s *Session) SetAuditorium(showID string, audID *uint) (Show, bool) {
	if ms := s.manualShow(showID); ms != nil {
		if audID == nil || *audID == ms.AudID {
			return *ms, false
		}
		aud := s.Catalog.AuditoriumByID(*audID)
		if aud == nil {
			return *ms, false
		}
		prev := ms.AudID
		s.pushUndo(UndoEntry{Kind: UndoMoveAud, ShowID: showID, PrevAudID: &prev})
		ms.AudID = aud.ID
		ms.AudName = aud.Name
		s.notify("schedule:changed")
		return *ms, true
	}

	sh, ok := s.findShow(showID)
	if !ok {
		return Show{}, false
	}

	ov, hasOv := s.Snap.Overrides[showID]
	if audID == nil {
		// Xoá override phòng chưa từng tồn tại là no-op
		if !hasOv || ov.AudID == nil {
			return sh, false
		}
		prev := sh.AudID
		s.pushUndo(UndoEntry{Kind: UndoMoveAud, ShowID: showID, PrevAudID: &prev})
		ov.AudID = nil
		s.setOrDropOverride(showID, ov)
		eff, _ := s.findShow(showID)
		s.notify("schedule:changed")
		return eff, true
	}

	if *audID == sh.AudID {
		return sh, false
	}
	if s.Catalog.AuditoriumByID(*audID) == nil {
		return sh, false
	}
	prev := sh.AudID
	s.pushUndo(UndoEntry{Kind: UndoMoveAud, ShowID: showID, PrevAudID: &prev})
	dest := *audID
	ov.AudID = &dest
	s.Snap.Overrides[showID] = ov

	eff, _ := s.findShow(showID)
	s.notify("schedule:changed")
	return eff, true
}

// SetFilm đổi phim của suất, tính lại thời lượng và giờ kết thúc.
// Đối xứng với SetAuditorium: thủ công sửa tại chỗ, còn lại qua override.
func (s *Session) SetFilm(showID string, filmID *string) (Show, bool) {
	if ms := s.manualShow(showID); ms != nil {
		if filmID == nil || *filmID == ms.FilmID {
			return *ms, false
		}
		film := s.Catalog.FilmByID(*filmID)
		if film == nil {
			return *ms, false
		}
		prev := ms.FilmID
		s.pushUndo(UndoEntry{Kind: UndoEditFilm, ShowID: showID, PrevFilmID: &prev})
		applyFilmToManual(ms, film)
		s.notify("schedule:changed")
		return *ms, true
	}

	sh, ok := s.findShow(showID)
	if !ok {
		return Show{}, false
	}

	ov, hasOv := s.Snap.Overrides[showID]
	if filmID == nil {
		if !hasOv || ov.FilmID == nil {
			return sh, false
		}
		prev := sh.FilmID
		s.pushUndo(UndoEntry{Kind: UndoEditFilm, ShowID: showID, PrevFilmID: &prev})
		ov.FilmID = nil
		s.setOrDropOverride(showID, ov)
		eff, _ := s.findShow(showID)
		s.notify("schedule:changed")
		return eff, true
	}

	if *filmID == sh.FilmID {
		return sh, false
	}
	if s.Catalog.FilmByID(*filmID) == nil {
		return sh, false
	}
	prev := sh.FilmID
	s.pushUndo(UndoEntry{Kind: UndoEditFilm, ShowID: showID, PrevFilmID: &prev})
	dest := *filmID
	ov.FilmID = &dest
	s.Snap.Overrides[showID] = ov

	eff, _ := s.findShow(showID)
	s.notify("schedule:changed")
	return eff, true
}

// AddManualShow chèn một suất không có generator vào row đã có phim và phòng
func (s *Session) AddManualShow(rowID, hm string) (Show, bool) {
	var row *Row
	for i := range s.Snap.Rows {
		if s.Snap.Rows[i].RowID == rowID {
			row = &s.Snap.Rows[i]
			break
		}
	}
	if row == nil || row.FilmID == "" || row.AudID == 0 {
		return Show{}, false
	}
	film := s.Catalog.FilmByID(row.FilmID)
	aud := s.Catalog.AuditoriumByID(row.AudID)
	if film == nil || aud == nil {
		return Show{}, false
	}
	at, ok := AtTime(s.DayStart(), hm)
	if !ok {
		return Show{}, false
	}
	start := NormalizeOperatingDay(at)

	show := Show{
		ID:           "m:" + uuid.NewString()[:8],
		RowID:        rowID,
		Row:          StaticRow(rowID),
		AudID:        aud.ID,
		AudName:      aud.Name,
		FilmID:       film.ID,
		FilmTitle:    film.DisplayTitle(),
		Start:        start,
		End:          start.Add(time.Duration(film.RuntimeMin+film.TrailerMin) * time.Minute),
		RuntimeMin:   film.RuntimeMin,
		TrailerMin:   film.TrailerMin,
		CleanMin:     film.CleanMin,
		CycleMinutes: film.CycleMinutes(),
		Source:       SourceManual,
	}
	s.Snap.ManualShows = append(s.Snap.ManualShows, show)
	inserted := show
	s.pushUndo(UndoEntry{Kind: UndoManualInsert, ShowID: show.ID, Show: &inserted})
	s.notify("schedule:changed")
	return show, true
}

func (s *Session) pushUndo(e UndoEntry) {
	s.Snap.Undo = append(s.Snap.Undo, e)
}

// setOrDropOverride ghi lại override, xoá hẳn nếu bản vá đã rỗng
func (s *Session) setOrDropOverride(showID string, ov Override) {
	if ov.Empty() {
		delete(s.Snap.Overrides, showID)
		return
	}
	s.Snap.Overrides[showID] = ov
}
