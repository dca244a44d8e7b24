package engine

import (
	"fmt"
	"time"

	"cinema_planner/model"
)

// Trần số bước lặp mỗi chiều, chặn vòng lặp chạy dài nếu cycle bất thường
const maxCycleSteps = 50

// GenerateRowShows sinh các suất chiếu của một row trong khung giờ hoạt động
// của ngày date: bước lùi/tiến từ giờ neo theo đúng bội số cycle. Suất neo
// luôn được giữ kể cả khi nằm ngoài khung giờ.
func GenerateRowShows(row Row, date time.Time, win Window, cat Catalog) []Show {
	if row.FilmID == "" || row.AudID == 0 || row.PrimeHM == "" {
		return nil
	}
	film := cat.FilmByID(row.FilmID)
	if film == nil {
		return nil
	}
	aud := cat.AuditoriumByID(row.AudID)
	if aud == nil {
		return nil
	}
	cycle := film.CycleMinutes()
	if cycle <= 0 {
		return nil
	}

	first, ok := AtTime(date, win.FirstHM)
	if !ok {
		return nil
	}
	last, ok := AtTime(date, win.LastHM)
	if !ok {
		return nil
	}
	// Giờ đóng cửa trước 05:00 là rạng sáng hôm sau
	last = NormalizeOperatingDay(last)
	if !last.After(first) {
		return nil
	}

	primeAt, ok := AtTime(date, row.PrimeHM)
	if !ok {
		return nil
	}
	prime := NormalizeOperatingDay(primeAt)

	preCount := MinutesBetween(first, prime) / cycle
	if preCount < 0 {
		preCount = 0
	} else if preCount > maxCycleSteps {
		preCount = maxCycleSteps
	}
	postCount := MinutesBetween(prime, last) / cycle
	if postCount < 0 {
		postCount = 0
	} else if postCount > maxCycleSteps {
		postCount = maxCycleSteps
	}

	shows := make([]Show, 0, preCount+postCount+1)
	for i := preCount; i >= 1; i-- {
		start := prime.Add(-time.Duration(i*cycle) * time.Minute)
		if start.Before(first) {
			continue
		}
		shows = append(shows, buildShow(row, film, aud, start, -i))
	}
	// Suất neo không bao giờ bị cắt
	shows = append(shows, buildShow(row, film, aud, prime, 0))
	for i := 1; i <= postCount; i++ {
		start := prime.Add(time.Duration(i*cycle) * time.Minute)
		if start.After(last) {
			break
		}
		shows = append(shows, buildShow(row, film, aud, start, i))
	}
	return shows
}

// buildShow dựng suất chiếu; offset có dấu giữ id ổn định qua các lần sinh lại
func buildShow(row Row, film *model.Film, aud *model.Auditorium, start time.Time, offset int) Show {
	return Show{
		ID:           fmt.Sprintf("%s:%d", row.RowID, offset),
		RowID:        row.RowID,
		Row:          StaticRow(row.RowID),
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
		Source:       SourcePrime,
	}
}
