package engine

import (
	"strings"

	"github.com/google/uuid"
)

// Quản lý Row trong snapshot đang mở. Row do collaborator phía trên
// (booking, nhập tay) tạo ra; engine chỉ giữ và sinh suất từ chúng.

func (s *Session) AddRow(row Row) Row {
	if row.RowID == "" {
		row.RowID = "r:" + uuid.NewString()[:8]
	}
	if row.Kind == "" {
		row.Kind = "prime"
	}
	s.Snap.Rows = append(s.Snap.Rows, row)
	s.notify("schedule:changed")
	return row
}

func (s *Session) FindRow(rowID string) *Row {
	for i := range s.Snap.Rows {
		if s.Snap.Rows[i].RowID == rowID {
			return &s.Snap.Rows[i]
		}
	}
	return nil
}

// UpdateRow vá từng field; trả về false nếu row không tồn tại
func (s *Session) UpdateRow(rowID string, slot *string, filmID *string, audID *uint, primeHM *string) bool {
	row := s.FindRow(rowID)
	if row == nil {
		return false
	}
	if slot != nil {
		row.Slot = *slot
	}
	if filmID != nil {
		row.FilmID = *filmID
	}
	if audID != nil {
		row.AudID = *audID
	}
	if primeHM != nil {
		if *primeHM != "" {
			if _, _, ok := ParseHM(*primeHM); !ok {
				return false
			}
		}
		row.PrimeHM = *primeHM
	}
	s.notify("schedule:changed")
	return true
}

// DeleteRow gỡ row kèm dọn dẹp dây chuyền: suất thủ công của row,
// override và cờ ẩn của các suất row đó sinh ra.
func (s *Session) DeleteRow(rowID string) bool {
	idx := -1
	for i := range s.Snap.Rows {
		if s.Snap.Rows[i].RowID == rowID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	s.Snap.Rows = append(s.Snap.Rows[:idx], s.Snap.Rows[idx+1:]...)

	manual := s.Snap.ManualShows[:0]
	for _, ms := range s.Snap.ManualShows {
		if ms.RowID != rowID {
			manual = append(manual, ms)
		}
	}
	s.Snap.ManualShows = manual

	prefix := rowID + ":"
	for id := range s.Snap.Overrides {
		if strings.HasPrefix(id, prefix) {
			delete(s.Snap.Overrides, id)
		}
	}
	for id := range s.Snap.Hidden {
		if strings.HasPrefix(id, prefix) {
			delete(s.Snap.Hidden, id)
		}
	}
	s.notify("schedule:changed")
	return true
}

// CleanupAuditorium gỡ mọi tham chiếu tới phòng vừa bị xoá khỏi danh mục
func (s *Session) CleanupAuditorium(audID uint) {
	for i := range s.Snap.Rows {
		if s.Snap.Rows[i].AudID == audID {
			s.Snap.Rows[i].AudID = 0
		}
	}
	manual := s.Snap.ManualShows[:0]
	for _, ms := range s.Snap.ManualShows {
		if ms.AudID != audID {
			manual = append(manual, ms)
		}
	}
	s.Snap.ManualShows = manual

	for id, ov := range s.Snap.Overrides {
		if ov.AudID != nil && *ov.AudID == audID {
			ov.AudID = nil
			s.setOrDropOverride(id, ov)
		}
	}
	s.notify("schedule:changed")
}

// CleanupFilm gỡ mọi tham chiếu tới phim vừa bị xoá khỏi danh mục
func (s *Session) CleanupFilm(filmID string) {
	for i := range s.Snap.Rows {
		if s.Snap.Rows[i].FilmID == filmID {
			s.Snap.Rows[i].FilmID = ""
		}
	}
	manual := s.Snap.ManualShows[:0]
	for _, ms := range s.Snap.ManualShows {
		if ms.FilmID != filmID {
			manual = append(manual, ms)
		}
	}
	s.Snap.ManualShows = manual

	for id, ov := range s.Snap.Overrides {
		if ov.FilmID != nil && *ov.FilmID == filmID {
			ov.FilmID = nil
			s.setOrDropOverride(id, ov)
		}
	}
	s.notify("schedule:changed")
}
