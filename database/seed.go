package database

import (
	"cinema_planner/constants"
	"cinema_planner/model"
	"cinema_planner/utils"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("123456cn"), 10)
	HashPassword := string(bytes)
	if err != nil {
		HashPassword = "123456cn"
	}
	accounts := []model.Account{
		{Username: "Administration", Password: HashPassword, FullName: "Quản trị viên", IsActive: true, Role: constants.ROLE_ADMIN},
	}

	for _, account := range accounts {
		// Tạo mới nếu không tồn tại
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed data for account:", account.Username, "error:", err)
		}
	}

	auditoriums := []model.Auditorium{
		{Name: "P1", Format: "2D", Seats: 120},
		{Name: "P2", Format: "2D", Seats: 96},
		{Name: "P3", Format: "IMAX", Seats: 180},
		{Name: "P4", Format: "4DX", Seats: 64},
	}
	for _, aud := range auditoriums {
		if err := db.Where(model.Auditorium{Name: aud.Name}).FirstOrCreate(&aud).Error; err != nil {
			log.Println("failed to seed data for auditorium:", aud.Name, "error:", err)
		}
	}

	films := []model.Film{
		{ID: "dat-rung-phuong-nam", Title: "Đất Rừng Phương Nam", Rating: "K", RuntimeMin: 110, TrailerMin: 10, CleanMin: 15, Format: "2D"},
		{ID: "mai", Title: "Mai", Rating: "T18", RuntimeMin: 131, TrailerMin: 10, CleanMin: 15, Priority: utils.Ptr(2.0), Format: "2D"},
		{ID: "dune-part-two", Title: "Dune: Part Two", Rating: "T13", RuntimeMin: 166, TrailerMin: 10, CleanMin: 20, Priority: utils.Ptr(1.0), Format: "IMAX"},
	}
	for _, film := range films {
		if err := db.Where(model.Film{ID: film.ID}).FirstOrCreate(&film).Error; err != nil {
			log.Println("failed to seed data for film:", film.Title, "error:", err)
		}
	}
}
