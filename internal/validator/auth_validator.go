package validator

import (
	"net/http"
	"regexp"
	"strings"

	"swadwala/internal/usecase"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type authValidator struct{}

func NewAuthValidator() usecase.AuthValidator {
	return &authValidator{}
}

func (v *authValidator) ValidateSignup(fullName, email, password, mobile string) error {
	if strings.TrimSpace(fullName) == "" {
		return usecase.NewHTTPError(http.StatusBadRequest, "full name is required")
	}
	if !emailRe.MatchString(strings.TrimSpace(email)) {
		return usecase.NewHTTPError(http.StatusBadRequest, "valid email is required")
	}
	if len(password) < 6 {
		return usecase.NewHTTPError(http.StatusBadRequest, "password must be at least 6 characters")
	}
	if len(strings.TrimSpace(mobile)) < 10 {
		return usecase.NewHTTPError(http.StatusBadRequest, "mobile number must be at least 10 digits")
	}
	return nil
}

func (v *authValidator) ValidateSignin(email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return usecase.NewHTTPError(http.StatusBadRequest, "email and password are required")
	}
	return nil
}
