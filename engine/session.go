package engine

import (
	"time"
)

// Session giữ snapshot đang làm việc của một ngày chiếu cùng danh mục
// và kho lưu trữ. Mọi thao tác của engine đều đi qua Session; mô hình
// một người ghi tại một thời điểm, bên nhúng tự lo chuyện khoá.
type Session struct {
	Date    string // YYYY-MM-DD
	Window  Window
	Snap    *Snapshot
	Catalog Catalog
	Store   Store
	Loc     *time.Location

	// Notify báo cho collaborator (websocket, pubsub) là lịch đã đổi;
	// không bao giờ đẩy diff, bên nhận phải gọi Resolve lại.
	Notify func(event string)
}

var DefaultWindow = Window{FirstHM: "10:00", LastHM: "23:30"}

func NewSession(cat Catalog, store Store, loc *time.Location) *Session {
	if loc == nil {
		loc = time.Local
	}
	return &Session{
		Date:    time.Now().In(loc).Format("2006-01-02"),
		Window:  DefaultWindow,
		Snap:    NewSnapshot(),
		Catalog: cat,
		Store:   store,
		Loc:     loc,
	}
}

// DayStart trả về 00:00 của ngày đang mở
func (s *Session) DayStart() time.Time {
	day, err := time.ParseInLocation("2006-01-02", s.Date, s.Loc)
	if err != nil {
		return time.Now().In(s.Loc).Truncate(24 * time.Hour)
	}
	return day
}

func (s *Session) notify(event string) {
	if s.Notify != nil {
		s.Notify(event)
	}
}
