package handler

import (
	"cinema_planner/constants"
	"cinema_planner/database"
	"cinema_planner/helper"
	"cinema_planner/model"
	"cinema_planner/utils"
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetAuditoriums(c *fiber.Ctx) error {
	pagination := new(model.Pagination)
	if err := c.QueryParser(pagination); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	var auditoriums []model.Auditorium
	var totalCount int64

	query := db.Model(&model.Auditorium{}).Order("name ASC")
	query.Count(&totalCount)
	query = utils.ApplyPagination(query, pagination.Limit, pagination.Page)

	if err := query.Find(&auditoriums).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       auditoriums,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: totalCount,
	})
}

func GetAuditoriumById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	var auditorium model.Auditorium
	if err := database.DB.First(&auditorium, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, auditorium)
}

func CreateAuditorium(c *fiber.Ctx) error {
	input := c.Locals("createAuditoriumInput").(model.CreateAuditoriumInput)

	auditorium := model.Auditorium{
		Name:   input.Name,
		Format: input.Format,
		Seats:  input.Seats,
	}
	if auditorium.Format == "" {
		auditorium.Format = "2D"
	}

	if err := database.DB.Create(&auditorium).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, auditorium)
}

func UpdateAuditorium(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)
	input := c.Locals("updateAuditoriumInput").(model.UpdateAuditoriumInput)

	var auditorium model.Auditorium
	if err := database.DB.First(&auditorium, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.Name != nil {
		auditorium.Name = *input.Name
	}
	if input.Format != nil {
		auditorium.Format = *input.Format
	}
	if input.Seats != nil {
		auditorium.Seats = *input.Seats
	}

	if err := database.DB.Save(&auditorium).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, auditorium)
}

func DeleteAuditorium(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	var auditorium model.Auditorium
	if err := database.DB.First(&auditorium, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.DB.Delete(&auditorium).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Gỡ phòng khỏi lịch đang mở
	helper.SessionMu.Lock()
	if helper.Session != nil {
		helper.Session.CleanupAuditorium(auditorium.ID)
		if err := helper.Session.Save(context.Background()); err != nil {
			log.Println("không lưu được lịch sau khi xoá phòng:", err)
		}
	}
	helper.SessionMu.Unlock()

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": auditorium.ID})
}
