package auth

import (
	"fmt"
	"strings"

	"github.com/taskflow/storefront/internal/types"
)

type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe,omitempty"`
}

type SignupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type AuthResponse struct {
	Token        string           `json:"token"`
	RefreshToken string           `json:"refreshToken"`
	User         types.PublicUser `json:"user"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func ValidateLogin(r *LoginRequest) error {
	if strings.TrimSpace(r.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

func ValidateRefresh(r *RefreshRequest) error {
	if r.RefreshToken == "" {
		return fmt.Errorf("refreshToken is required")
	}
	return nil
}

func ValidateSignup(r *SignupRequest) error {
	if strings.TrimSpace(r.FirstName) == "" {
		return fmt.Errorf("firstName is required")
	}
	if strings.TrimSpace(r.LastName) == "" {
		return fmt.Errorf("lastName is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}
