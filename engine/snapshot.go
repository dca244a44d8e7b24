package engine

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"time"

	"github.com/jinzhu/copier"
)

// Mỗi ngày một snapshot, key theo ngày ISO nên thứ tự từ điển
// chính là thứ tự thời gian.
const (
	snapshotKeyPrefix = "schedule:"
	currentDateKey    = "currentDate"
	windowKey         = "operatingWindow"
)

// RetentionLimit: số ngày được giữ lại trong kho
const RetentionLimit = 30

func snapshotKey(date string) string {
	return snapshotKeyPrefix + date
}

// Save lưu snapshot đang mở xuống kho rồi cắt bớt các ngày cũ.
// Lỗi lưu trữ chỉ ghi log, không làm hỏng trạng thái trong bộ nhớ.
func (s *Session) Save(ctx context.Context) error {
	data, err := json.Marshal(s.Snap)
	if err != nil {
		return err
	}
	if err := s.Store.Save(ctx, snapshotKey(s.Date), data); err != nil {
		log.Printf("Không lưu được lịch ngày %s: %v", s.Date, err)
		return err
	}
	s.pruneRetention(ctx)
	return nil
}

// SwitchTo lưu ngày đang mở rồi nạp snapshot của ngày đích
// (tạo rỗng nếu lần đầu ghé ngày đó) và báo "đổi ngày" cho collaborator.
func (s *Session) SwitchTo(ctx context.Context, date string) error {
	if date == s.Date {
		return nil
	}
	if err := s.Save(ctx); err != nil {
		log.Printf("Bỏ qua lỗi lưu khi đổi ngày: %v", err)
	}
	s.Date = date
	s.Snap = s.loadSnapshot(ctx, date)
	if err := s.Store.Save(ctx, currentDateKey, []byte(date)); err != nil {
		log.Printf("Không lưu được ngày hiện tại: %v", err)
	}
	s.notify("date:changed")
	return nil
}

// Copy nhân bản lịch của một ngày sang nhiều ngày khác. Undo stack luôn
// bị xoá trên bản sao: lịch sử hoàn tác là chuyện của một ngày, một phiên.
func (s *Session) Copy(ctx context.Context, from string, toDates []string) error {
	var src *Snapshot
	if from == s.Date {
		src = s.Snap
	} else {
		src = s.loadSnapshot(ctx, from)
	}

	for _, to := range toDates {
		if to == from {
			continue
		}
		clone := NewSnapshot()
		if err := copier.CopyWithOption(clone, src, copier.Option{DeepCopy: true}); err != nil {
			return err
		}
		clone.Undo = []UndoEntry{}
		s.migrate(clone)

		data, err := json.Marshal(clone)
		if err != nil {
			return err
		}
		if err := s.Store.Save(ctx, snapshotKey(to), data); err != nil {
			log.Printf("Không sao chép được lịch sang ngày %s: %v", to, err)
			continue
		}
		if to == s.Date {
			s.Snap = clone
		}
	}
	s.pruneRetention(ctx)
	s.notify("schedule:changed")
	return nil
}

// Clear xoá lịch một ngày; xoá ngày đang mở thì thay bằng snapshot rỗng
func (s *Session) Clear(ctx context.Context, date string) error {
	if err := s.Store.Delete(ctx, snapshotKey(date)); err != nil {
		return err
	}
	if date == s.Date {
		s.Snap = NewSnapshot()
		s.notify("schedule:changed")
	}
	return nil
}

// ClearAll xoá toàn bộ snapshot đã lưu và làm rỗng ngày đang mở
func (s *Session) ClearAll(ctx context.Context) error {
	keys, err := s.Store.Keys(ctx, snapshotKeyPrefix)
	if err != nil {
		return err
	}
	if len(keys) > 0 {
		if err := s.Store.Delete(ctx, keys...); err != nil {
			return err
		}
	}
	s.Snap = NewSnapshot()
	s.notify("schedule:changed")
	return nil
}

// StoredDates liệt kê các ngày đang có lịch trong kho, theo thứ tự tăng dần
func (s *Session) StoredDates(ctx context.Context) []string {
	keys, err := s.Store.Keys(ctx, snapshotKeyPrefix)
	if err != nil {
		return nil
	}
	dates := make([]string, 0, len(keys))
	for _, k := range keys {
		dates = append(dates, k[len(snapshotKeyPrefix):])
	}
	sort.Strings(dates)
	return dates
}

// loadSnapshot nạp snapshot một ngày; thiếu key hay dữ liệu hỏng
// đều trả về snapshot rỗng chứ không báo lỗi lên trên
func (s *Session) loadSnapshot(ctx context.Context, date string) *Snapshot {
	data, err := s.Store.Load(ctx, snapshotKey(date))
	if err != nil {
		log.Printf("Không đọc được lịch ngày %s: %v", date, err)
		return NewSnapshot()
	}
	if data == nil {
		return NewSnapshot()
	}
	snap := &Snapshot{}
	if err := json.Unmarshal(data, snap); err != nil {
		log.Printf("Dữ liệu lịch ngày %s hỏng, tạo lịch rỗng: %v", date, err)
		return NewSnapshot()
	}
	s.migrate(snap)
	return snap
}

// migrate vá snapshot cũ về dạng hiện tại ngay lần dùng đầu tiên:
// map/slice nil thành rỗng, bỏ row không có id, vật chất hoá giờ kết thúc
// của suất thủ công còn thiếu.
func (s *Session) migrate(snap *Snapshot) {
	if snap.Rows == nil {
		snap.Rows = []Row{}
	}
	if snap.ManualShows == nil {
		snap.ManualShows = []Show{}
	}
	if snap.Overrides == nil {
		snap.Overrides = map[string]Override{}
	}
	if snap.Hidden == nil {
		snap.Hidden = map[string]bool{}
	}
	if snap.Undo == nil {
		snap.Undo = []UndoEntry{}
	}

	rows := snap.Rows[:0]
	for _, r := range snap.Rows {
		if r.RowID == "" {
			continue
		}
		rows = append(rows, r)
	}
	snap.Rows = rows

	for i := range snap.ManualShows {
		ms := &snap.ManualShows[i]
		ms.Source = SourceManual
		if ms.End.IsZero() && !ms.Start.IsZero() {
			if film := s.Catalog.FilmByID(ms.FilmID); film != nil {
				applyFilmToManual(ms, film)
			} else {
				ms.End = ms.Start.Add(time.Duration(ms.RuntimeMin+ms.TrailerMin) * time.Minute)
			}
		}
	}
}

// PruneRetention dành cho job định kỳ gọi từ bên ngoài
func (s *Session) PruneRetention(ctx context.Context) {
	s.pruneRetention(ctx)
}

// pruneRetention giữ lại tối đa RetentionLimit ngày, xoá key cũ nhất trước
func (s *Session) pruneRetention(ctx context.Context) {
	keys, err := s.Store.Keys(ctx, snapshotKeyPrefix)
	if err != nil || len(keys) <= RetentionLimit {
		return
	}
	sort.Strings(keys)
	old := keys[:len(keys)-RetentionLimit]
	if err := s.Store.Delete(ctx, old...); err != nil {
		log.Printf("Không cắt bớt được lịch cũ: %v", err)
	}
}

// LoadState khôi phục ngày đang mở và khung giờ hoạt động lúc khởi động
func (s *Session) LoadState(ctx context.Context) {
	if data, err := s.Store.Load(ctx, currentDateKey); err == nil && len(data) > 0 {
		if _, perr := time.ParseInLocation("2006-01-02", string(data), s.Loc); perr == nil {
			s.Date = string(data)
		}
	}
	if data, err := s.Store.Load(ctx, windowKey); err == nil && len(data) > 0 {
		var w Window
		if json.Unmarshal(data, &w) == nil && w.FirstHM != "" && w.LastHM != "" {
			s.Window = w
		}
	}
	s.Snap = s.loadSnapshot(ctx, s.Date)
}

// SetWindow đổi khung giờ hoạt động và lưu lại best-effort
func (s *Session) SetWindow(ctx context.Context, w Window) bool {
	if _, _, ok := ParseHM(w.FirstHM); !ok {
		return false
	}
	if _, _, ok := ParseHM(w.LastHM); !ok {
		return false
	}
	s.Window = w
	if data, err := json.Marshal(w); err == nil {
		if err := s.Store.Save(ctx, windowKey, data); err != nil {
			log.Printf("Không lưu được khung giờ hoạt động: %v", err)
		}
	}
	s.notify("schedule:changed")
	return true
}
