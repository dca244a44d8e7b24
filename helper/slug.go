package helper

import (
	"cinema_planner/model"
	"fmt"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// GenerateUniqueFilmID sinh id phim từ tiêu đề, thêm hậu tố số nếu trùng
func GenerateUniqueFilmID(tx *gorm.DB, title string) string {
	base := slug.Make(title)
	result := base
	i := 1

	for {
		var count int64
		tx.Model(&model.Film{}).
			Where("id = ?", result).
			Count(&count)

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}
