package validate

import (
	"cinema_planner/constants"
	"cinema_planner/database"
	"cinema_planner/helper"
	"cinema_planner/model"
	"cinema_planner/utils"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CreateAuditorium() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateAuditoriumInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Không thể phân tích yêu cầu: %s", err.Error()),
			})
		}

		// Validate input
		if err := validate.Struct(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		_, isAdmin := helper.GetInfoAccountFromToken(c)
		if !isAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
		}

		// Kiểm tra trùng tên phòng
		var existing model.Auditorium
		if err := database.DB.Where("name = ?", input.Name).First(&existing).Error; err == nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Tên phòng chiếu đã tồn tại", fmt.Errorf("name already exists"))
		}

		c.Locals("createAuditoriumInput", input)
		return c.Next()
	}
}

func UpdateAuditorium() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateAuditoriumInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Không thể phân tích yêu cầu: %s", err.Error()),
			})
		}

		if err := validate.Struct(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		_, isAdmin := helper.GetInfoAccountFromToken(c)
		if !isAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
		}

		c.Locals("updateAuditoriumInput", input)
		return c.Next()
	}
}

func CreateFilm() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateFilmInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Không thể phân tích yêu cầu: %s", err.Error()),
			})
		}

		if err := validate.Struct(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		_, isAdmin := helper.GetInfoAccountFromToken(c)
		if !isAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
		}

		c.Locals("createFilmInput", input)
		return c.Next()
	}
}

func UpdateFilm() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateFilmInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Không thể phân tích yêu cầu: %s", err.Error()),
			})
		}

		if err := validate.Struct(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		_, isAdmin := helper.GetInfoAccountFromToken(c)
		if !isAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
		}

		c.Locals("updateFilmInput", input)
		return c.Next()
	}
}

// GetFilmById lấy param id dạng chuỗi (id phim là slug)
func GetFilmById() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if id == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("params invalid"))
		}
		c.Locals("inputFilmId", id)
		return c.Next()
	}
}

func CreateBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateBookingInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Không thể phân tích yêu cầu: %s", err.Error()),
			})
		}

		if err := validate.Struct(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		// Phim phải tồn tại
		var film model.Film
		if err := database.DB.First(&film, "id = ?", input.FilmID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, "Phim không tồn tại", fmt.Errorf("filmId not found"))
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		c.Locals("createBookingInput", input)
		return c.Next()
	}
}

func UpdateBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateBookingInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Không thể phân tích yêu cầu: %s", err.Error()),
			})
		}

		if err := validate.Struct(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		if input.FilmID != nil {
			var film model.Film
			if err := database.DB.First(&film, "id = ?", *input.FilmID).Error; err != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, "Phim không tồn tại", fmt.Errorf("filmId not found"))
			}
		}

		c.Locals("updateBookingInput", input)
		return c.Next()
	}
}

// GetBookingById lấy param id dạng chuỗi
func GetBookingById() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if id == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("params invalid"))
		}
		c.Locals("inputBookingId", id)
		return c.Next()
	}
}
