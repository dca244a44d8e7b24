package model

import "time"

type Film struct {
	ID         string    `gorm:"primaryKey;size:80" json:"id"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	Title      string    `gorm:"size:200;not null" json:"title" validate:"required,min=1,max=200"`
	Rating     string    `gorm:"size:10" json:"rating" validate:"omitempty,max=10"`
	RuntimeMin int       `gorm:"not null;default:0" json:"runtimeMin" validate:"omitempty,min=0,max=600"`
	TrailerMin int       `gorm:"not null;default:0" json:"trailerMin" validate:"omitempty,min=0,max=60"`
	CleanMin   int       `gorm:"not null;default:0" json:"cleanMin" validate:"omitempty,min=0,max=120"`
	Priority   *float64  `json:"priority"`
	Format     string    `gorm:"size:10;default:2D" json:"format" validate:"omitempty,oneof=2D 3D IMAX 4DX"`
}

// CycleMinutes = runtime + trailer + dọn phòng, làm tròn lên bội số 5 phút
func (f *Film) CycleMinutes() int {
	total := f.RuntimeMin + f.TrailerMin + f.CleanMin
	if total <= 0 {
		return 0
	}
	if rem := total % 5; rem != 0 {
		total += 5 - rem
	}
	return total
}

// DisplayTitle ghép tên phim với định dạng để hiển thị trên bảng lịch
func (f *Film) DisplayTitle() string {
	if f.Format == "" {
		return f.Title
	}
	return f.Title + " (" + f.Format + ")"
}

type CreateFilmInput struct {
	Title      string   `json:"title" validate:"required,min=1,max=200"`
	Rating     string   `json:"rating" validate:"omitempty,max=10"`
	RuntimeMin int      `json:"runtimeMin" validate:"required,min=1,max=600"`
	TrailerMin int      `json:"trailerMin" validate:"omitempty,min=0,max=60"`
	CleanMin   int      `json:"cleanMin" validate:"omitempty,min=0,max=120"`
	Priority   *float64 `json:"priority"`
	Format     string   `json:"format" validate:"omitempty,oneof=2D 3D IMAX 4DX"`
}

type UpdateFilmInput struct {
	Title      *string  `json:"title" validate:"omitempty,min=1,max=200"`
	Rating     *string  `json:"rating" validate:"omitempty,max=10"`
	RuntimeMin *int     `json:"runtimeMin" validate:"omitempty,min=1,max=600"`
	TrailerMin *int     `json:"trailerMin" validate:"omitempty,min=0,max=60"`
	CleanMin   *int     `json:"cleanMin" validate:"omitempty,min=0,max=120"`
	Priority   *float64 `json:"priority"`
	Format     *string  `json:"format" validate:"omitempty,oneof=2D 3D IMAX 4DX"`
}
