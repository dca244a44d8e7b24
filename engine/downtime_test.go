package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func show(s *Session, id string, audID uint, audName, startHM, endHM string) Show {
	return Show{
		ID:      id,
		AudID:   audID,
		AudName: audName,
		Start:   at(s, startHM),
		End:     at(s, endHM),
	}
}

func TestAnalyzeLateOpening(t *testing.T) {
	s := newTestSession(t)
	winStart, _ := AtTime(s.DayStart(), "07:00")

	shows := []Show{show(s, "a", 1, "P1", "09:00", "11:00")}
	issues := AnalyzeDowntime(shows, winStart)

	require.Len(t, issues, 1)
	assert.Equal(t, IssueLate, issues[0].Kind)
	assert.Equal(t, 120, issues[0].Minutes)
	assert.Equal(t, "2h00m", issues[0].Duration)
	assert.Equal(t, "P1", issues[0].AuditoriumName)
	assert.Contains(t, issues[0].Message, "P1")
	assert.Contains(t, issues[0].Message, "7:00AM")
	assert.Contains(t, issues[0].Message, "9:00AM")
}

func TestAnalyzeLateBelowThreshold(t *testing.T) {
	s := newTestSession(t)
	winStart, _ := AtTime(s.DayStart(), "07:00")

	// 100 phút < ngưỡng 105
	shows := []Show{show(s, "a", 1, "P1", "08:40", "10:40")}
	assert.Empty(t, AnalyzeDowntime(shows, winStart))
}

func TestAnalyzeGapNotHuge(t *testing.T) {
	s := newTestSession(t)
	winStart, _ := AtTime(s.DayStart(), "18:00")

	shows := []Show{
		show(s, "a", 1, "P1", "18:00", "20:00"),
		show(s, "b", 1, "P1", "21:00", "23:00"),
	}
	issues := AnalyzeDowntime(shows, winStart)

	require.Len(t, issues, 1)
	assert.Equal(t, IssueGap, issues[0].Kind)
	assert.Equal(t, 60, issues[0].Minutes)
	assert.Equal(t, "1h00m", issues[0].Duration)
}

func TestAnalyzeHugeGap(t *testing.T) {
	s := newTestSession(t)
	winStart, _ := AtTime(s.DayStart(), "10:00")

	shows := []Show{
		show(s, "a", 1, "P1", "10:00", "12:00"),
		show(s, "b", 1, "P1", "13:30", "15:30"),
	}
	issues := AnalyzeDowntime(shows, winStart)

	require.Len(t, issues, 1)
	assert.Equal(t, IssueHugeGap, issues[0].Kind)
	assert.Equal(t, 90, issues[0].Minutes)
}

func TestAnalyzeGapBelowThreshold(t *testing.T) {
	s := newTestSession(t)
	winStart, _ := AtTime(s.DayStart(), "10:00")

	shows := []Show{
		show(s, "a", 1, "P1", "10:00", "12:00"),
		show(s, "b", 1, "P1", "12:40", "14:40"),
	}
	assert.Empty(t, AnalyzeDowntime(shows, winStart))
}

// Suất rạng sáng phải xếp sau suất tối: khoảng trống tính qua nửa đêm
func TestAnalyzeCrossMidnight(t *testing.T) {
	s := newTestSession(t)
	winStart, _ := AtTime(s.DayStart(), "21:00")

	shows := []Show{
		show(s, "late", 1, "P1", "00:30", "02:30"), // rạng sáng hôm sau
		show(s, "evening", 1, "P1", "21:00", "23:00"),
	}
	issues := AnalyzeDowntime(shows, winStart)

	require.Len(t, issues, 1)
	assert.Equal(t, IssueHugeGap, issues[0].Kind)
	assert.Equal(t, 90, issues[0].Minutes)
	assert.Contains(t, issues[0].Message, "11:00PM")
	assert.Contains(t, issues[0].Message, "12:30AM")
}

// Kết quả xếp theo thời lượng giảm dần trên mọi phòng
func TestAnalyzeOrderedByDurationDesc(t *testing.T) {
	s := newTestSession(t)
	winStart, _ := AtTime(s.DayStart(), "07:00")

	shows := []Show{
		// P1: mở muộn 120 phút rồi trống 50 phút
		show(s, "a", 1, "P1", "09:00", "11:00"),
		show(s, "b", 1, "P1", "11:50", "13:50"),
		// P2: trống 95 phút
		show(s, "c", 2, "P2", "07:00", "09:00"),
		show(s, "d", 2, "P2", "10:35", "12:35"),
	}
	issues := AnalyzeDowntime(shows, winStart)

	require.Len(t, issues, 3)
	assert.Equal(t, 120, issues[0].Minutes)
	assert.Equal(t, IssueLate, issues[0].Kind)
	assert.Equal(t, 95, issues[1].Minutes)
	assert.Equal(t, IssueHugeGap, issues[1].Kind)
	assert.Equal(t, 50, issues[2].Minutes)
	assert.Equal(t, IssueGap, issues[2].Kind)
}

func TestAnalyzeNoShows(t *testing.T) {
	s := newTestSession(t)
	winStart, _ := AtTime(s.DayStart(), "07:00")
	assert.Empty(t, AnalyzeDowntime(nil, winStart))
}
