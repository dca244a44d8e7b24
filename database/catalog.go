package database

import (
	"cinema_planner/model"

	"gorm.io/gorm"
)

// GormCatalog tra cứu phim và phòng chiếu từ database
type GormCatalog struct {
	db *gorm.DB
}

func NewGormCatalog(db *gorm.DB) *GormCatalog {
	return &GormCatalog{db: db}
}

func (c *GormCatalog) FilmByID(id string) *model.Film {
	var film model.Film
	if err := c.db.First(&film, "id = ?", id).Error; err != nil {
		return nil
	}
	return &film
}

func (c *GormCatalog) AuditoriumByID(id uint) *model.Auditorium {
	var aud model.Auditorium
	if err := c.db.First(&aud, "id = ?", id).Error; err != nil {
		return nil
	}
	return &aud
}
