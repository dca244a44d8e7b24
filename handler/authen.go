package handler

import (
	"cinema_planner/constants"
	"cinema_planner/helper"
	"cinema_planner/model"
	"cinema_planner/utils"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func Login(c *fiber.Ctx) error {
	input := c.Locals("loginInput").(model.LoginInput)

	account, err := helper.GetAccountByUsername(input.Username)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if account == nil || !account.IsActive {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.LOGIN_FAILED, errors.New("account not found"))
	}
	if !helper.CheckPasswordHash(input.Password, account.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.LOGIN_FAILED, errors.New("wrong password"))
	}

	claim := model.TokenClaim{
		AccountId: account.ID,
		Username:  account.Username,
		Role:      account.Role,
	}

	accessToken, err := helper.GenerateAccessToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	refreshToken, err := helper.GenerateRefreshToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Đặt cookie để web client dùng luôn
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return utils.SuccessResponse(c, fiber.StatusOK, model.TokenData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

func RefreshToken(c *fiber.Ctx) error {
	input := c.Locals("refreshTokenInput").(model.RefreshTokenInput)

	token, err := helper.ParseToken(input.RefreshToken)
	if err != nil || !token.Valid {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Refresh token không hợp lệ", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Refresh token không hợp lệ", errors.New("invalid claims"))
	}

	username, _ := claims["username"].(string)
	account, err := helper.GetAccountByUsername(username)
	if err != nil || account == nil || !account.IsActive {
		log.Printf("refresh token rejected for username=%q", username)
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Refresh token không hợp lệ", errors.New("account not found"))
	}

	claim := model.TokenClaim{
		AccountId: account.ID,
		Username:  account.Username,
		Role:      account.Role,
	}

	accessToken, err := helper.GenerateAccessToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	refreshToken, err := helper.GenerateRefreshToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.TokenData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

func Me(c *fiber.Ctx) error {
	accountInfo, _ := helper.GetInfoAccountFromToken(c)
	if accountInfo.AccountId == 0 {
		// GetInfoAccountFromToken đã trả lỗi
		return nil
	}
	return utils.SuccessResponse(c, fiber.StatusOK, accountInfo)
}
