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

func GetFilms(c *fiber.Ctx) error {
	pagination := new(model.Pagination)
	if err := c.QueryParser(pagination); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	var films []model.Film
	var totalCount int64

	query := db.Model(&model.Film{}).Order("title ASC")
	query.Count(&totalCount)
	query = utils.ApplyPagination(query, pagination.Limit, pagination.Page)

	if err := query.Find(&films).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       films,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: totalCount,
	})
}

func GetFilmById(c *fiber.Ctx) error {
	id := c.Locals("inputFilmId").(string)

	var film model.Film
	if err := database.DB.First(&film, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, film)
}

func CreateFilm(c *fiber.Ctx) error {
	input := c.Locals("createFilmInput").(model.CreateFilmInput)

	film := model.Film{
		ID:         helper.GenerateUniqueFilmID(database.DB, input.Title),
		Title:      input.Title,
		Rating:     input.Rating,
		RuntimeMin: input.RuntimeMin,
		TrailerMin: input.TrailerMin,
		CleanMin:   input.CleanMin,
		Priority:   input.Priority,
		Format:     input.Format,
	}
	if film.Format == "" {
		film.Format = "2D"
	}

	if err := database.DB.Create(&film).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, film)
}

func UpdateFilm(c *fiber.Ctx) error {
	id := c.Locals("inputFilmId").(string)
	input := c.Locals("updateFilmInput").(model.UpdateFilmInput)

	var film model.Film
	if err := database.DB.First(&film, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.Title != nil {
		film.Title = *input.Title
	}
	if input.Rating != nil {
		film.Rating = *input.Rating
	}
	if input.RuntimeMin != nil {
		film.RuntimeMin = *input.RuntimeMin
	}
	if input.TrailerMin != nil {
		film.TrailerMin = *input.TrailerMin
	}
	if input.CleanMin != nil {
		film.CleanMin = *input.CleanMin
	}
	if input.Priority != nil {
		film.Priority = input.Priority
	}
	if input.Format != nil {
		film.Format = *input.Format
	}

	if err := database.DB.Save(&film).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Thời lượng đổi thì các suất chiếu sinh lại mới đúng
	helper.SessionMu.Lock()
	if helper.Session != nil {
		helper.Session.Notify("schedule:changed")
	}
	helper.SessionMu.Unlock()

	return utils.SuccessResponse(c, fiber.StatusOK, film)
}

func DeleteFilm(c *fiber.Ctx) error {
	id := c.Locals("inputFilmId").(string)

	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	var film model.Film
	if err := database.DB.First(&film, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.DB.Delete(&film).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Gỡ phim khỏi lịch đang mở
	helper.SessionMu.Lock()
	if helper.Session != nil {
		helper.Session.CleanupFilm(film.ID)
		if err := helper.Session.Save(context.Background()); err != nil {
			log.Println("không lưu được lịch sau khi xoá phim:", err)
		}
	}
	helper.SessionMu.Unlock()

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": film.ID})
}
