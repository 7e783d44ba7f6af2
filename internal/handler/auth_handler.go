package handler

import (
	"net/http"
	"time"

	"swadwala/internal/config"
	"swadwala/internal/middleware"
	"swadwala/internal/usecase"

	"github.com/labstack/echo/v4"
)

const sessionCookieMaxAge = 7 * 24 * time.Hour

type AuthHandler struct {
	uc           *usecase.AuthUsecase
	cookieSecure bool
}

func NewAuthHandler(uc *usecase.AuthUsecase, cfg config.Config) *AuthHandler {
	return &AuthHandler{uc: uc, cookieSecure: cfg.CookieSecure}
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/api/auth")
	g.POST("/signup", h.signup)
	g.POST("/signin", h.signin)
	g.POST("/signout", h.signout)
	g.POST("/send-otp", h.sendOTP)
	g.POST("/verify-otp", h.verifyOTP)
	g.POST("/reset-password", h.resetPassword)

	u := e.Group("/api/user")
	u.Use(middleware.AuthJWT(cfg))
	u.GET("/current", h.currentUser)
}

type authResponse struct {
	Message string      `json:"message"`
	User    interface{} `json:"user"`
}

func (h *AuthHandler) signup(c echo.Context) error {
	var req usecase.SignupInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid body"})
	}

	out, err := h.uc.Signup(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}

	h.setSessionCookie(c, out.Token)
	return c.JSON(http.StatusCreated, authResponse{Message: "Signup successful", User: out.User})
}

func (h *AuthHandler) signin(c echo.Context) error {
	var req usecase.SigninInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid body"})
	}

	out, err := h.uc.Signin(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}

	h.setSessionCookie(c, out.Token)
	return c.JSON(http.StatusOK, authResponse{Message: "Login successful", User: out.User})
}

func (h *AuthHandler) signout(c echo.Context) error {
	h.clearSessionCookie(c)
	return c.JSON(http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

type sendOTPRequest struct {
	Email string `json:"email"`
}

func (h *AuthHandler) sendOTP(c echo.Context) error {
	var req sendOTPRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid body"})
	}

	if err := h.uc.SendOTP(c.Request().Context(), req.Email); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "OTP sent successfully"})
}

type verifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

func (h *AuthHandler) verifyOTP(c echo.Context) error {
	var req verifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid body"})
	}

	out, err := h.uc.VerifyOTP(c.Request().Context(), req.Email, req.OTP)
	if err != nil {
		return writeError(c, err)
	}

	h.setSessionCookie(c, out.Token)
	return c.JSON(http.StatusOK, authResponse{Message: "OTP verified & login successful", User: out.User})
}

type resetPasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
}

func (h *AuthHandler) resetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid body"})
	}

	if err := h.uc.ResetPassword(c.Request().Context(), req.Email, req.NewPassword); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Password reset successful"})
}

func (h *AuthHandler) currentUser(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "unauthorized"})
	}

	out, err := h.uc.CurrentUser(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(sessionCookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
