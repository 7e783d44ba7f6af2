package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"time"

	"swadwala/internal/config"
	"swadwala/internal/domain/model"
	repo "swadwala/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	sessionTokenTTL = 7 * 24 * time.Hour
	otpTTL          = 5 * time.Minute
	bcryptCost      = 10
)

// AuthValidator checks signup / signin input before any repo work.
type AuthValidator interface {
	ValidateSignup(fullName, email, password, mobile string) error
	ValidateSignin(email, password string) error
}

// OTPMailer sends the password-reset code. Unlike the order confirmation,
// this send is awaited: the caller needs to know the code went out.
type OTPMailer interface {
	SendOTPMail(to string, otp string) error
}

type AuthUsecase struct {
	cfg       config.Config
	users     repo.UserRepository
	validator AuthValidator
	mailer    OTPMailer
}

func NewAuthUsecase(cfg config.Config, users repo.UserRepository, validator AuthValidator, mailer OTPMailer) *AuthUsecase {
	return &AuthUsecase{cfg: cfg, users: users, validator: validator, mailer: mailer}
}

type SignupInput struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Mobile   string `json:"mobile"`
	Role     string `json:"role"`
}

type AuthOutput struct {
	User  model.User `json:"user"`
	Token string     `json:"-"`
}

func (u *AuthUsecase) Signup(ctx context.Context, in SignupInput) (AuthOutput, error) {
	if err := u.validator.ValidateSignup(in.FullName, in.Email, in.Password, in.Mobile); err != nil {
		return AuthOutput{}, err
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))

	existing, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return AuthOutput{}, NewHTTPError(http.StatusInternalServerError, "server error")
	}
	if existing != nil {
		return AuthOutput{}, NewHTTPError(http.StatusBadRequest, "user already exists")
	}

	role := model.Role(in.Role)
	if role == "" {
		role = model.RoleUser
	}
	if !model.ValidRole(role) {
		return AuthOutput{}, NewHTTPError(http.StatusBadRequest, "invalid role")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return AuthOutput{}, NewHTTPError(http.StatusInternalServerError, "server error")
	}

	user := model.User{
		FullName:     strings.TrimSpace(in.FullName),
		Email:        email,
		PasswordHash: string(hash),
		Mobile:       strings.TrimSpace(in.Mobile),
		Role:         role,
	}
	if err := u.users.Create(ctx, &user); err != nil {
		if err == repo.ErrConflict {
			return AuthOutput{}, NewHTTPError(http.StatusBadRequest, "user already exists")
		}
		return AuthOutput{}, NewHTTPError(http.StatusInternalServerError, "server error")
	}

	token, err := u.issueSessionToken(user.ID)
	if err != nil {
		return AuthOutput{}, NewHTTPError(http.StatusInternalServerError, "server error")
	}
	return AuthOutput{User: user, Token: token}, nil
}

type SigninInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (u *AuthUsecase) Signin(ctx context.Context, in SigninInput) (AuthOutput, error) {
	if err := u.validator.ValidateSignin(in.Email, in.Password); err != nil {
		return AuthOutput{}, err
	}

	user, err := u.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return AuthOutput{}, NewHTTPError(http.StatusInternalServerError, "server error")
	}
	if user == nil {
		return AuthOutput{}, NewHTTPError(http.StatusBadRequest, "user does not exist")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return AuthOutput{}, NewHTTPError(http.StatusBadRequest, "incorrect password")
	}

	token, err := u.issueSessionToken(user.ID)
	if err != nil {
		return AuthOutput{}, NewHTTPError(http.StatusInternalServerError, "server error")
	}
	return AuthOutput{User: *user, Token: token}, nil
}

type CurrentUserOutput struct {
	User            model.User `json:"user"`
	ProfileComplete bool       `json:"profileComplete"`
}

func (u *AuthUsecase) CurrentUser(ctx context.Context, userID int64) (CurrentUserOutput, error) {
	if userID <= 0 {
		return CurrentUserOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return CurrentUserOutput{}, NewHTTPError(http.StatusInternalServerError, "server error")
	}
	if user == nil {
		return CurrentUserOutput{}, NewHTTPError(http.StatusNotFound, "user not found")
	}

	return CurrentUserOutput{
		User:            *user,
		ProfileComplete: user.Mobile != "",
	}, nil
}

// SendOTP stores a fresh 4-digit code on the user and mails it. The send is
// awaited so a broken mail setup surfaces as an error here, not silence.
func (u *AuthUsecase) SendOTP(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return NewHTTPError(http.StatusBadRequest, "email is required")
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "failed to send otp")
	}
	if user == nil {
		return NewHTTPError(http.StatusNotFound, "user not found")
	}

	otp, err := generateOTP()
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "failed to send otp")
	}

	expires := time.Now().Add(otpTTL)
	user.ResetOTP = otp
	user.OTPExpiresAt = &expires
	user.OTPVerified = false
	if err := u.users.Update(ctx, user); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "failed to send otp")
	}

	if err := u.mailer.SendOTPMail(email, otp); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "failed to send otp")
	}
	return nil
}

// VerifyOTP checks the code, marks the user verified for a reset, and signs
// the user in so the reset screen can proceed without another login.
func (u *AuthUsecase) VerifyOTP(ctx context.Context, email string, otp string) (AuthOutput, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || otp == "" {
		return AuthOutput{}, NewHTTPError(http.StatusBadRequest, "email and otp required")
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return AuthOutput{}, NewHTTPError(http.StatusInternalServerError, "otp verification failed")
	}
	if user == nil || user.ResetOTP == "" {
		return AuthOutput{}, NewHTTPError(http.StatusBadRequest, "invalid request")
	}
	if user.ResetOTP != otp {
		return AuthOutput{}, NewHTTPError(http.StatusBadRequest, "invalid otp")
	}
	if user.OTPExpiresAt == nil || user.OTPExpiresAt.Before(time.Now()) {
		return AuthOutput{}, NewHTTPError(http.StatusBadRequest, "otp expired")
	}

	user.OTPVerified = true
	user.ResetOTP = ""
	user.OTPExpiresAt = nil
	if err := u.users.Update(ctx, user); err != nil {
		return AuthOutput{}, NewHTTPError(http.StatusInternalServerError, "otp verification failed")
	}

	token, err := u.issueSessionToken(user.ID)
	if err != nil {
		return AuthOutput{}, NewHTTPError(http.StatusInternalServerError, "otp verification failed")
	}
	return AuthOutput{User: *user, Token: token}, nil
}

func (u *AuthUsecase) ResetPassword(ctx context.Context, email string, newPassword string) error {
	if len(newPassword) < 6 {
		return NewHTTPError(http.StatusBadRequest, "password must be at least 6 characters")
	}

	user, err := u.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "password reset failed")
	}
	if user == nil || !user.OTPVerified {
		return NewHTTPError(http.StatusBadRequest, "otp not verified")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "password reset failed")
	}

	user.PasswordHash = string(hash)
	user.ResetOTP = ""
	user.OTPExpiresAt = nil
	user.OTPVerified = false
	if err := u.users.Update(ctx, user); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "password reset failed")
	}
	return nil
}

func (u *AuthUsecase) issueSessionToken(userID int64) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":  userID,
		"iat": now.Unix(),
		"exp": now.Add(sessionTokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(u.cfg.JWTSecret))
}

// 4-digit code in [1000, 9999]
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", n.Int64()+1000), nil
}
