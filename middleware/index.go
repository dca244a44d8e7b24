package middleware

import (
	"cinema_planner/helper"
	"cinema_planner/utils"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")

		if token == "" {
			// check header Authorization: Bearer xxx
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.ErrorResponse(c, 401, "Missing token", errors.New("no token"))
		}

		jwtToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
			return helper.JwtSecret(), nil
		})
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, 401, "Invalid token", err)
		}

		c.Locals("user", jwtToken)
		return c.Next()
	}
}
