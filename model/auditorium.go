package model

type Auditorium struct {
	DTO
	Name   string `gorm:"size:50;not null" json:"name" validate:"required,min=1,max=50"`
	Format string `gorm:"size:10;default:2D" json:"format" validate:"omitempty,oneof=2D 3D IMAX 4DX"`
	Seats  int    `gorm:"not null;default:0" json:"seats" validate:"omitempty,min=0,max=1000"`
}

type CreateAuditoriumInput struct {
	Name   string `json:"name" validate:"required,min=1,max=50"`
	Format string `json:"format" validate:"omitempty,oneof=2D 3D IMAX 4DX"`
	Seats  int    `json:"seats" validate:"omitempty,min=0,max=1000"`
}

type UpdateAuditoriumInput struct {
	Name   *string `json:"name" validate:"omitempty,min=1,max=50"`
	Format *string `json:"format" validate:"omitempty,oneof=2D 3D IMAX 4DX"`
	Seats  *int    `json:"seats" validate:"omitempty,min=0,max=1000"`
}
