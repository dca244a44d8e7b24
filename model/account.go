package model

type Account struct {
	DTO
	Username string `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Password string `gorm:"size:100;not null" json:"-"`
	FullName string `gorm:"size:100" json:"fullName"`
	Role     string `gorm:"size:20;default:staff" json:"role"` // admin | staff
	IsActive bool   `gorm:"default:true" json:"isActive"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}
