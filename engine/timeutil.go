package engine

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Trước 05:00 vẫn tính là ngày chiếu hôm trước
const dayRolloverHour = 5

// ParseHM tách chuỗi "HH:MM"; trả về ok=false nếu sai định dạng
func ParseHM(s string) (int, int, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

// AtTime gắn giờ "HH:MM" vào ngày date (cùng múi giờ với date)
func AtTime(date time.Time, hm string) (time.Time, bool) {
	hour, minute, ok := ParseHM(hm)
	if !ok {
		return time.Time{}, false
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location()), true
}

// NormalizeOperatingDay đẩy mốc giờ trước 05:00 sang ngày hôm sau,
// để suất 01:00 xếp sau suất 23:00 của cùng ngày chiếu.
func NormalizeOperatingDay(t time.Time) time.Time {
	if t.Hour() < dayRolloverHour {
		return t.AddDate(0, 0, 1)
	}
	return t
}

// CeilToMultipleOf5 làm tròn số phút lên bội số 5
func CeilToMultipleOf5(min int) int {
	if min <= 0 {
		return min
	}
	if rem := min % 5; rem != 0 {
		return min + 5 - rem
	}
	return min
}

// MinutesBetween trả về số phút từ a đến b (âm nếu b trước a)
func MinutesBetween(a, b time.Time) int {
	return int(b.Sub(a) / time.Minute)
}

// FormatDurationMinutes định dạng "2h00m", "0h45m"
func FormatDurationMinutes(min int) string {
	if min < 0 {
		min = 0
	}
	return fmt.Sprintf("%dh%02dm", min/60, min%60)
}

// FormatClock12 định dạng 12 giờ cho thông báo, ví dụ "7:05PM"
func FormatClock12(t time.Time) string {
	return t.Format("3:04PM")
}
