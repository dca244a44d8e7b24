package handler

import (
	"cinema_planner/constants"
	"cinema_planner/database"
	"cinema_planner/engine"
	"cinema_planner/helper"
	"cinema_planner/model"
	"cinema_planner/utils"
	"context"
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// saveSession lưu snapshot đang mở, caller phải đang giữ SessionMu
func saveSession() {
	if err := helper.Session.Save(context.Background()); err != nil {
		log.Println("không lưu được lịch:", err)
	}
}

func GetRows(c *fiber.Ctx) error {
	helper.SessionMu.Lock()
	defer helper.SessionMu.Unlock()

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"date": helper.Session.Date,
		"rows": helper.Session.Snap.Rows,
	})
}

func AddRow(c *fiber.Ctx) error {
	input := c.Locals("rowInput").(model.RowInput)

	row := engine.Row{
		BookingID: input.BookingID,
		Slot:      input.Slot,
		Kind:      input.Kind,
		FilmID:    input.FilmID,
		AudID:     input.AudID,
		PrimeHM:   input.PrimeHM,
	}

	// Có booking thì điền phim và slot từ booking
	if input.BookingID != "" {
		var booking model.Booking
		if err := database.DB.First(&booking, "id = ?", input.BookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, "Booking không tồn tại", err)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if row.FilmID == "" {
			row.FilmID = booking.FilmID
		}
		if row.Slot == "" {
			row.Slot = strconv.Itoa(booking.Slot)
		}
	}

	helper.SessionMu.Lock()
	defer helper.SessionMu.Unlock()

	created := helper.Session.AddRow(row)
	saveSession()

	return utils.SuccessResponse(c, fiber.StatusCreated, created)
}

func UpdateRow(c *fiber.Ctx) error {
	rowID := c.Locals("inputRowId").(string)
	input := c.Locals("updateRowInput").(model.UpdateRowInput)

	helper.SessionMu.Lock()
	defer helper.SessionMu.Unlock()

	if !helper.Session.UpdateRow(rowID, input.Slot, input.FilmID, input.AudID, input.PrimeHM) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, errors.New("row not found"))
	}
	saveSession()

	return utils.SuccessResponse(c, fiber.StatusOK, helper.Session.FindRow(rowID))
}

func DeleteRow(c *fiber.Ctx) error {
	rowID := c.Locals("inputRowId").(string)

	helper.SessionMu.Lock()
	defer helper.SessionMu.Unlock()

	if !helper.Session.DeleteRow(rowID) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, errors.New("row not found"))
	}
	saveSession()

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": rowID})
}
