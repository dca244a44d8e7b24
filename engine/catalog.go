package engine

import "cinema_planner/model"

// Catalog là cổng đọc danh mục phòng/phim. Tra cứu không thấy trả về nil,
// engine coi như "chưa gán" chứ không phải lỗi.
type Catalog interface {
	FilmByID(id string) *model.Film
	AuditoriumByID(id uint) *model.Auditorium
}

// MapCatalog giữ danh mục trong bộ nhớ, dùng cho test
type MapCatalog struct {
	Films       map[string]*model.Film
	Auditoriums map[uint]*model.Auditorium
}

func NewMapCatalog() *MapCatalog {
	return &MapCatalog{
		Films:       map[string]*model.Film{},
		Auditoriums: map[uint]*model.Auditorium{},
	}
}

func (c *MapCatalog) FilmByID(id string) *model.Film {
	return c.Films[id]
}

func (c *MapCatalog) AuditoriumByID(id uint) *model.Auditorium {
	return c.Auditoriums[id]
}
