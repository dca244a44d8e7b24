package validate

import (
	"cinema_planner/constants"
	"cinema_planner/model"
	"cinema_planner/utils"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

func AddRow() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RowInput
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

		c.Locals("rowInput", input)
		return c.Next()
	}
}

func UpdateRow() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateRowInput
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

		c.Locals("updateRowInput", input)
		return c.Next()
	}
}

// GetRowById lấy param id dạng chuỗi (id hàng sinh bằng uuid)
func GetRowById() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if id == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Thiếu id hàng",
			})
		}
		c.Locals("inputRowId", id)
		return c.Next()
	}
}

func SetStart() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SetStartInput
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

		c.Locals("setStartInput", input)
		return c.Next()
	}
}

func SetAuditorium() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SetAuditoriumInput
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

		c.Locals("setAuditoriumInput", input)
		return c.Next()
	}
}

func SetFilm() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SetFilmInput
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

		c.Locals("setFilmInput", input)
		return c.Next()
	}
}

func AddManualShow() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ManualShowInput
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

		c.Locals("manualShowInput", input)
		return c.Next()
	}
}

func SwitchDate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SwitchDateInput
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

		c.Locals("switchDateInput", input)
		return c.Next()
	}
}

func CopySchedule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CopyScheduleInput
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

		c.Locals("copyScheduleInput", input)
		return c.Next()
	}
}

func SetOperatingWindow() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.OperatingWindowInput
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

		c.Locals("operatingWindowInput", input)
		return c.Next()
	}
}

// GetByDate lấy param date YYYY-MM-DD
func GetByDate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		date := c.Params("date")
		if err := validate.Var(date, "required,isodate"); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_DATE, err)
		}
		c.Locals("inputDate", date)
		return c.Next()
	}
}
