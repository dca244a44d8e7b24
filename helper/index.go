package helper

import (
	"cinema_planner/config"
	"cinema_planner/constants"
	"cinema_planner/database"
	"cinema_planner/model"
	"cinema_planner/utils"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// JwtSecret đọc khoá ký lúc dùng, sau khi config đã nạp .env
func JwtSecret() []byte {
	return []byte(config.Config("JWT_SECRET"))
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetAccountByUsername(u string) (*model.Account, error) {
	db := database.DB
	var account model.Account
	if err := db.Where(&model.Account{Username: u}).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = tokenClaim.Username
	claims["accountId"] = tokenClaim.AccountId
	claims["role"] = tokenClaim.Role
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()

	t, err := token.SignedString(JwtSecret())
	return t, err
}

func GenerateRefreshToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = tokenClaim.Username
	claims["accountId"] = tokenClaim.AccountId
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	t, err := token.SignedString(JwtSecret())
	return t, err
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Xác thực thuật toán ký là HMAC
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtSecret(), nil
	})

	return token, err
}

func GetInfoAccountFromToken(c *fiber.Ctx) (model.TokenClaim, bool) {
	token := c.Locals("user").(*jwt.Token)
	tokenClaim := token.Claims.(jwt.MapClaims)
	accountId := uint(tokenClaim["accountId"].(float64))
	username := tokenClaim["username"].(string)

	var account model.Account
	db := database.DB
	if err := db.First(&account, accountId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Account not found: id=%d", accountId)
			utils.ErrorResponse(c, fiber.StatusUnauthorized, "Tài khoản không tồn tại", err)
		} else {
			log.Printf("Database query error for account: id=%d, error=%v", accountId, err)
			utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		return model.TokenClaim{}, false
	}

	accountInfo := model.TokenClaim{
		AccountId: accountId,
		Username:  username,
		Role:      account.Role,
	}

	return accountInfo, account.Role == constants.ROLE_ADMIN
}
