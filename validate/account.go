package validate

import (
	"cinema_planner/model"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.LoginInput
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

		c.Locals("loginInput", input)
		return c.Next()
	}
}

func RefreshToken() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RefreshTokenInput
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

		c.Locals("refreshTokenInput", input)
		return c.Next()
	}
}
