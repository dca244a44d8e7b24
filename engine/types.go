package engine

import (
	"fmt"
	"time"
)

// Nguồn gốc của một suất chiếu sau khi resolve
const (
	SourcePrime    = "PRIME"
	SourceManual   = "MANUAL"
	SourceOverride = "OVERRIDE"
)

// Row là một dòng xếp lịch: phòng + phim + giờ neo (prime).
// Row thiếu phim/phòng/giờ neo thì không sinh suất nào.
type Row struct {
	RowID     string `json:"rowId"`
	BookingID string `json:"bookingId,omitempty"`
	Slot      string `json:"slot,omitempty"`
	Kind      string `json:"kind,omitempty"` // prime | extra
	FilmID    string `json:"filmId,omitempty"`
	AudID     uint   `json:"audId,omitempty"`
	PrimeHM   string `json:"primeHM,omitempty"`
}

// RowRef phân biệt suất còn thuộc row gốc với suất đã bị override
// chuyển sang phòng/phim khác (gom nhóm động theo đích đến).
type RowRef struct {
	RowID  string `json:"rowId,omitempty"`
	AudID  uint   `json:"audId,omitempty"`
	FilmID string `json:"filmId,omitempty"`
}

func StaticRow(rowID string) RowRef {
	return RowRef{RowID: rowID}
}

func DynamicRow(audID uint, filmID string) RowRef {
	return RowRef{AudID: audID, FilmID: filmID}
}

func (r RowRef) IsDynamic() bool {
	return r.RowID == ""
}

func (r RowRef) Key() string {
	if r.RowID != "" {
		return r.RowID
	}
	return fmt.Sprintf("dyn:%d:%s", r.AudID, r.FilmID)
}

// Show là đơn vị hiển thị đã resolve. Show sinh từ Row được tính lại
// mỗi lần resolve, chỉ ManualShow và Override là có lưu trữ riêng.
type Show struct {
	ID           string    `json:"id"`
	RowID        string    `json:"rowId"`
	Row          RowRef    `json:"-"`
	AudID        uint      `json:"audId"`
	AudName      string    `json:"audName"`
	FilmID       string    `json:"filmId"`
	FilmTitle    string    `json:"filmTitle"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	RuntimeMin   int       `json:"runtimeMin"`
	TrailerMin   int       `json:"trailerMin"`
	CleanMin     int       `json:"cleanMin"`
	CycleMinutes int       `json:"cycleMinutes"`
	Source       string    `json:"source"`
}

// Override là bản vá thưa theo showId, không đụng vào Row sinh ra suất đó.
type Override struct {
	Start  *time.Time `json:"start,omitempty"`
	AudID  *uint      `json:"audId,omitempty"`
	FilmID *string    `json:"filmId,omitempty"`
}

func (o Override) Empty() bool {
	return o.Start == nil && o.AudID == nil && o.FilmID == nil
}

// Các loại thao tác có thể hoàn tác
const (
	UndoEdit         = "EDIT"
	UndoHide         = "HIDE"
	UndoManualInsert = "MANUAL_INSERT"
	UndoMoveAud      = "MOVE_AUD"
	UndoEditFilm     = "EDIT_FILM"
)

// UndoEntry ghi lại đúng một thao tác; chỉ field ứng với Kind được dùng.
type UndoEntry struct {
	Kind       string     `json:"kind"`
	ShowID     string     `json:"showId,omitempty"`
	PrevStart  *time.Time `json:"prevStart,omitempty"`
	PrevHidden bool       `json:"prevHidden,omitempty"`
	PrevAudID  *uint      `json:"prevAudId,omitempty"`
	PrevFilmID *string    `json:"prevFilmId,omitempty"`
	Show       *Show      `json:"show,omitempty"` // cho MANUAL_INSERT
}

// Window là khung giờ hoạt động [FirstHM, LastHM); LastHM trước 05:00
// nghĩa là rạng sáng ngày hôm sau.
type Window struct {
	FirstHM string `json:"firstHM"`
	LastHM  string `json:"lastHM"`
}

// Snapshot là toàn bộ trạng thái lịch của một ngày.
type Snapshot struct {
	Rows        []Row               `json:"rows"`
	ManualShows []Show              `json:"manualShows"`
	Overrides   map[string]Override `json:"overrides"`
	Hidden      map[string]bool     `json:"hidden"`
	Undo        []UndoEntry         `json:"undoStack"`
}

func NewSnapshot() *Snapshot {
	return &Snapshot{
		Rows:        []Row{},
		ManualShows: []Show{},
		Overrides:   map[string]Override{},
		Hidden:      map[string]bool{},
		Undo:        []UndoEntry{},
	}
}
