package engine

import (
	"fmt"
	"sort"
	"time"
)

// Resolve trả về danh sách suất chiếu hiển thị của ngày đang mở:
// suất sinh từ row + suất thủ công, bỏ suất ẩn, áp override,
// rồi khử trùng lặp theo (start, phòng, phim).
func (s *Session) Resolve() []Show {
	raw := s.rawShows()

	resolved := make([]Show, 0, len(raw))
	for _, sh := range raw {
		if s.Snap.Hidden[sh.ID] {
			continue
		}
		resolved = append(resolved, s.applyOverride(sh))
	}

	return dedupe(resolved)
}

// rawShows dựng danh sách thô trước khi áp override: mọi row sinh suất
// cộng toàn bộ suất thủ công
func (s *Session) rawShows() []Show {
	day := s.DayStart()
	var raw []Show
	for _, row := range s.Snap.Rows {
		raw = append(raw, GenerateRowShows(row, day, s.Window, s.Catalog)...)
	}
	for _, ms := range s.Snap.ManualShows {
		ms.Source = SourceManual
		ms.Row = StaticRow(ms.RowID)
		raw = append(raw, ms)
	}
	return raw
}

// applyOverride áp bản vá thưa theo thứ tự start → phòng → phim.
// Đích đến khác row gốc thì suất được gom sang nhóm động.
func (s *Session) applyOverride(sh Show) Show {
	ov, ok := s.Snap.Overrides[sh.ID]
	if !ok {
		return sh
	}

	baseAud := sh.AudID
	baseFilm := sh.FilmID

	// Phim hiệu lực quyết định cách tính lại giờ kết thúc
	effFilm := s.Catalog.FilmByID(sh.FilmID)
	if ov.FilmID != nil {
		if f := s.Catalog.FilmByID(*ov.FilmID); f != nil {
			effFilm = f
		}
	}

	if ov.Start != nil {
		sh.Start = *ov.Start
		if effFilm != nil {
			sh.End = sh.Start.Add(time.Duration(effFilm.RuntimeMin+effFilm.TrailerMin) * time.Minute)
		}
	}
	if ov.AudID != nil {
		if aud := s.Catalog.AuditoriumByID(*ov.AudID); aud != nil {
			sh.AudID = aud.ID
			sh.AudName = aud.Name
		}
	}
	if ov.FilmID != nil && effFilm != nil && effFilm.ID == *ov.FilmID {
		sh.FilmID = effFilm.ID
		sh.FilmTitle = effFilm.DisplayTitle()
		sh.RuntimeMin = effFilm.RuntimeMin
		sh.TrailerMin = effFilm.TrailerMin
		sh.CleanMin = effFilm.CleanMin
		sh.CycleMinutes = effFilm.CycleMinutes()
		sh.End = sh.Start.Add(time.Duration(effFilm.RuntimeMin+effFilm.TrailerMin) * time.Minute)
	}

	if sh.AudID != baseAud || sh.FilmID != baseFilm {
		sh.Row = DynamicRow(sh.AudID, sh.FilmID)
		sh.RowID = sh.Row.Key()
		sh.Source = SourceOverride
	}
	return sh
}

// dedupe sắp theo giờ bắt đầu rồi bỏ suất trùng (start, phòng, phim);
// chặn trường hợp mép khung giờ sinh suất hai lần
func dedupe(shows []Show) []Show {
	sort.SliceStable(shows, func(i, j int) bool {
		return shows[i].Start.Before(shows[j].Start)
	})
	seen := make(map[string]bool, len(shows))
	out := shows[:0]
	for _, sh := range shows {
		key := fmt.Sprintf("%d|%d|%s", sh.Start.Unix(), sh.AudID, sh.FilmID)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, sh)
	}
	return out
}

// findShow tìm suất hiệu lực (sau override, kể cả suất ẩn) theo id
func (s *Session) findShow(showID string) (Show, bool) {
	for _, sh := range s.rawShows() {
		if sh.ID == showID {
			return s.applyOverride(sh), true
		}
	}
	return Show{}, false
}

// baseShow tìm suất gốc trước khi áp override
func (s *Session) baseShow(showID string) (Show, bool) {
	for _, sh := range s.rawShows() {
		if sh.ID == showID {
			return sh, true
		}
	}
	return Show{}, false
}

// manualShow trả về con trỏ tới bản ghi suất thủ công nếu showID là suất thủ công
func (s *Session) manualShow(showID string) *Show {
	for i := range s.Snap.ManualShows {
		if s.Snap.ManualShows[i].ID == showID {
			return &s.Snap.ManualShows[i]
		}
	}
	return nil
}
