package dto

import (
	"github.com/SundayYogurt/jobboard_service/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

type StudentRegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=100"`
	Username string `json:"username" validate:"required,min=3,max=50"`
	Name     string `json:"name" validate:"required,min=1,max=100"`
}

type CompanyRegisterRequest struct {
	CompanyName string `json:"companyName" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6,max=100"`
	Domain      string `json:"domain" validate:"required,domain"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

// AuthClaims is the token payload. UserID and Role identify the caller,
// RegisteredClaims carries exp, iat and jti.
type AuthClaims struct {
	UserID uint        `json:"id"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

type StudentLoginResponse struct {
	Token   string          `json:"token"`
	Student *domain.Student `json:"student"`
}

type CompanyLoginResponse struct {
	Token   string          `json:"token"`
	Company *domain.Company `json:"company"`
}
