package validate

import (
	"cinema_planner/constants"
	"cinema_planner/engine"
	"cinema_planner/utils"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func init() {
	// "timehm": giờ dạng HH:MM 24h
	validate.RegisterValidation("timehm", func(fl validator.FieldLevel) bool {
		_, _, ok := engine.ParseHM(fl.Field().String())
		return ok
	})
	// "isodate": ngày dạng YYYY-MM-DD
	validate.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		return utils.IsValidISODate(fl.Field().String())
	})
}

func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		// Save input to context locals
		c.Locals("inputId", valueKey)

		// Continue to next handler
		return c.Next()
	}
}
