package engine

import (
	"fmt"
	"sort"
	"time"
)

// Ngưỡng cảnh báo (phút)
const (
	LateThresholdMin    = 105
	GapThresholdMin     = 45
	HugeGapThresholdMin = 90
)

const (
	IssueLate    = "LATE"
	IssueGap     = "GAP"
	IssueHugeGap = "HUGE_GAP"
)

// Issue là một cảnh báo vận hành: phòng mở muộn hoặc trống giữa hai suất
type Issue struct {
	AuditoriumName string `json:"auditoriumName"`
	Kind           string `json:"kind"`
	Message        string `json:"message"`
	Minutes        int    `json:"minutes"`
	Duration       string `json:"duration"`
}

// AnalyzeDowntime quét danh sách suất đã resolve và báo các khoảng trống
// đáng chú ý theo từng phòng. Kết quả xếp theo thời lượng giảm dần,
// khoảng trống lớn nhất xử lý trước.
func AnalyzeDowntime(shows []Show, windowStart time.Time) []Issue {
	winStart := NormalizeOperatingDay(windowStart)

	byAud := map[uint][]Show{}
	for _, sh := range shows {
		byAud[sh.AudID] = append(byAud[sh.AudID], sh)
	}

	var issues []Issue
	for _, group := range byAud {
		// Chuẩn hoá mốc giờ về ngày chiếu trước khi sắp xếp,
		// để suất rạng sáng đứng sau suất tối cùng ngày
		type span struct {
			start, end time.Time
			name       string
		}
		spans := make([]span, 0, len(group))
		for _, sh := range group {
			spans = append(spans, span{
				start: NormalizeOperatingDay(sh.Start),
				end:   NormalizeOperatingDay(sh.End),
				name:  sh.AudName,
			})
		}
		sort.Slice(spans, func(i, j int) bool {
			return spans[i].start.Before(spans[j].start)
		})

		first := spans[0]
		if lateMin := MinutesBetween(winStart, first.start); lateMin >= LateThresholdMin {
			issues = append(issues, Issue{
				AuditoriumName: first.name,
				Kind:           IssueLate,
				Minutes:        lateMin,
				Duration:       FormatDurationMinutes(lateMin),
				Message: fmt.Sprintf("Phòng %s mở muộn: trống từ %s đến %s",
					first.name, FormatClock12(winStart), FormatClock12(first.start)),
			})
		}

		for i := 0; i+1 < len(spans); i++ {
			cur, next := spans[i], spans[i+1]
			gapMin := MinutesBetween(cur.end, next.start)
			if gapMin < GapThresholdMin {
				continue
			}
			kind := IssueGap
			if gapMin >= HugeGapThresholdMin {
				kind = IssueHugeGap
			}
			issues = append(issues, Issue{
				AuditoriumName: cur.name,
				Kind:           kind,
				Minutes:        gapMin,
				Duration:       FormatDurationMinutes(gapMin),
				Message: fmt.Sprintf("Phòng %s trống từ %s đến %s",
					cur.name, FormatClock12(cur.end), FormatClock12(next.start)),
			})
		}
	}

	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Minutes > issues[j].Minutes
	})
	return issues
}
