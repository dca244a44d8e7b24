package model

import (
	"cinema_planner/utils"
	"time"
)

// Booking gắn một phim vào slot đánh số cho một kỳ xếp lịch.
// Engine không đọc trực tiếp Booking, chỉ đọc Row sinh ra từ nó.
type Booking struct {
	ID          string           `gorm:"primaryKey;size:40" json:"id"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
	FilmID      string           `gorm:"size:80;index" json:"filmId"`
	Film        *Film            `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;foreignKey:FilmID" json:"film,omitempty"`
	Slot        int              `gorm:"not null;default:1" json:"slot" validate:"required,min=1,max=20"`
	PeriodStart utils.CustomDate `json:"periodStart"`
	PeriodEnd   utils.CustomDate `json:"periodEnd"`
}

type CreateBookingInput struct {
	FilmID      string `json:"filmId" validate:"required"`
	Slot        int    `json:"slot" validate:"required,min=1,max=20"`
	PeriodStart string `json:"periodStart" validate:"omitempty,isodate"`
	PeriodEnd   string `json:"periodEnd" validate:"omitempty,isodate"`
}

type UpdateBookingInput struct {
	FilmID      *string `json:"filmId"`
	Slot        *int    `json:"slot" validate:"omitempty,min=1,max=20"`
	PeriodStart *string `json:"periodStart" validate:"omitempty,isodate"`
	PeriodEnd   *string `json:"periodEnd" validate:"omitempty,isodate"`
}
