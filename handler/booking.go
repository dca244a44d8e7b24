package handler

import (
	"cinema_planner/constants"
	"cinema_planner/database"
	"cinema_planner/model"
	"cinema_planner/utils"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func GetBookings(c *fiber.Ctx) error {
	pagination := new(model.Pagination)
	if err := c.QueryParser(pagination); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	var bookings []model.Booking
	var totalCount int64

	query := db.Model(&model.Booking{}).Preload("Film").Order("slot ASC")
	query.Count(&totalCount)
	query = utils.ApplyPagination(query, pagination.Limit, pagination.Page)

	if err := query.Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       bookings,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: totalCount,
	})
}

func GetBookingById(c *fiber.Ctx) error {
	id := c.Locals("inputBookingId").(string)

	var booking model.Booking
	if err := database.DB.Preload("Film").First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

func CreateBooking(c *fiber.Ctx) error {
	input := c.Locals("createBookingInput").(model.CreateBookingInput)

	booking := model.Booking{
		ID:     "b:" + uuid.NewString()[:8],
		FilmID: input.FilmID,
		Slot:   input.Slot,
	}
	if input.PeriodStart != "" {
		t, _ := time.Parse("2006-01-02", input.PeriodStart)
		booking.PeriodStart = utils.CustomDate{Time: t}
	}
	if input.PeriodEnd != "" {
		t, _ := time.Parse("2006-01-02", input.PeriodEnd)
		booking.PeriodEnd = utils.CustomDate{Time: t}
	}

	if err := database.DB.Create(&booking).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	database.DB.Preload("Film").First(&booking, "id = ?", booking.ID)
	return utils.SuccessResponse(c, fiber.StatusCreated, booking)
}

func UpdateBooking(c *fiber.Ctx) error {
	id := c.Locals("inputBookingId").(string)
	input := c.Locals("updateBookingInput").(model.UpdateBookingInput)

	var booking model.Booking
	if err := database.DB.First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.FilmID != nil {
		booking.FilmID = *input.FilmID
	}
	if input.Slot != nil {
		booking.Slot = *input.Slot
	}
	if input.PeriodStart != nil {
		t, _ := time.Parse("2006-01-02", *input.PeriodStart)
		booking.PeriodStart = utils.CustomDate{Time: t}
	}
	if input.PeriodEnd != nil {
		t, _ := time.Parse("2006-01-02", *input.PeriodEnd)
		booking.PeriodEnd = utils.CustomDate{Time: t}
	}

	if err := database.DB.Save(&booking).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	database.DB.Preload("Film").First(&booking, "id = ?", booking.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

func DeleteBooking(c *fiber.Ctx) error {
	id := c.Locals("inputBookingId").(string)

	var booking model.Booking
	if err := database.DB.First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.DB.Delete(&booking).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": booking.ID})
}
