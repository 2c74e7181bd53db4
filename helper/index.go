package helper

import (
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"restaurant_manager/config"
	"restaurant_manager/model"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func ValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func GenerateAccessToken(cfg *config.Config, tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = tokenClaim.Username
	claims["userId"] = tokenClaim.UserId
	claims["adminId"] = tokenClaim.AdminId
	claims["role"] = tokenClaim.Role
	claims["exp"] = time.Now().Add(cfg.TokenLifetime).Unix()

	t, err := token.SignedString([]byte(cfg.JWTSecret))
	return t, err
}

func GenerateRefreshToken(cfg *config.Config, tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = tokenClaim.Username
	claims["userId"] = tokenClaim.UserId
	claims["adminId"] = tokenClaim.AdminId
	claims["role"] = tokenClaim.Role
	claims["exp"] = time.Now().Add(cfg.RefreshLifetime).Unix()

	t, err := token.SignedString([]byte(cfg.JWTSecret))
	return t, err
}

func GenerateTokenPair(cfg *config.Config, tokenClaim model.TokenClaim) (model.TokenData, error) {
	access, err := GenerateAccessToken(cfg, tokenClaim)
	if err != nil {
		return model.TokenData{}, err
	}
	refresh, err := GenerateRefreshToken(cfg, tokenClaim)
	if err != nil {
		return model.TokenData{}, err
	}
	return model.TokenData{AccessToken: access, RefreshToken: refresh}, nil
}

func ParseToken(cfg *config.Config, tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.JWTSecret), nil
	})

	return token, err
}

func ClaimFromToken(token *jwt.Token) model.TokenClaim {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}
	}

	var out model.TokenClaim
	if v, ok := claims["userId"].(float64); ok {
		out.UserId = uint(v)
	}
	if v, ok := claims["adminId"].(float64); ok {
		out.AdminId = uint(v)
	}
	if v, ok := claims["username"].(string); ok {
		out.Username = v
	}
	if v, ok := claims["role"].(string); ok {
		out.Role = v
	}
	return out
}

// ClaimFromContext reads the claim the Protected middleware stored in Locals.
func ClaimFromContext(c *fiber.Ctx) model.TokenClaim {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}
	}
	return ClaimFromToken(token)
}

func GetUserByUsername(db *gorm.DB, u string) (*model.User, error) {
	var user model.User
	if err := db.Where(&model.User{Username: u}).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func GetUserByEmail(db *gorm.DB, e string) (*model.User, error) {
	var user model.User
	if err := db.Where(&model.User{Email: e}).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func GetAdminByUsername(db *gorm.DB, u string) (*model.Admin, error) {
	var admin model.Admin
	if err := db.Where(&model.Admin{Username: u}).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

func GetAdminByEmail(db *gorm.DB, e string) (*model.Admin, error) {
	var admin model.Admin
	if err := db.Where(&model.Admin{Email: e}).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

func GetUserById(db *gorm.DB, id uint) (*model.User, error) {
	var user model.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func GetAdminById(db *gorm.DB, id uint) (*model.Admin, error) {
	var admin model.Admin
	if err := db.First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}
