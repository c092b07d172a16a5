package devserver

import (
	"crypto/rand"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/plantdesk/portalctl/internal/core/domain"
)

// AuthHandler implements the /auth and /admin endpoints of the stub.
type AuthHandler struct {
	store     *Store
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthHandler(store *Store, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthHandler {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthHandler{store: store, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token                 string       `json:"token"`
	User                  *domain.User `json:"user"`
	RequirePasswordChange bool         `json:"requirePasswordChange"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, hash, err := h.store.FindUserByEmail(req.Email)
	if err != nil {
		return domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(hash, []byte(req.Password)) != nil {
		return domain.ErrInvalidCredentials
	}

	token, err := h.issueToken(c, user)
	if err != nil {
		return err
	}

	h.log.Info().Str("email", user.Email).Msg("login")
	return c.JSON(http.StatusOK, loginResponse{
		Token:                 token,
		User:                  user,
		RequirePasswordChange: user.RequirePasswordChange,
	})
}

// Logout handles POST /api/auth/logout: revokes the presented session only.
func (h *AuthHandler) Logout(c echo.Context) error {
	tokenID, _ := c.Get(ctxTokenID).(string)
	h.store.RevokeSession(tokenID)
	return c.NoContent(http.StatusNoContent)
}

// LogoutAll handles POST /api/auth/logout-all: revokes every session of
// the calling user.
func (h *AuthHandler) LogoutAll(c echo.Context) error {
	userID, _ := c.Get(ctxUserID).(string)
	h.store.RevokeUserSessions(userID)
	return c.NoContent(http.StatusNoContent)
}

// Sessions handles GET /api/auth/sessions.
func (h *AuthHandler) Sessions(c echo.Context) error {
	userID, _ := c.Get(ctxUserID).(string)
	tokenID, _ := c.Get(ctxTokenID).(string)
	return c.JSON(http.StatusOK, h.store.SessionsForUser(userID, tokenID))
}

// Profile handles GET /api/auth/profile.
func (h *AuthHandler) Profile(c echo.Context) error {
	userID, _ := c.Get(ctxUserID).(string)
	user, err := h.store.FindUser(userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

type registerRequest struct {
	FullName     string `json:"fullName" validate:"required"`
	TEID         string `json:"teid"     validate:"required"`
	Email        string `json:"email"    validate:"required,email"`
	Password     string `json:"password" validate:"omitempty,min=8"`
	PlantID      string `json:"plantId"`
	IsSuperAdmin bool   `json:"isSuperAdmin"`
}

// Register handles POST /api/auth/register (super admin only). A missing
// password gets generated and forces a change on first login.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	password := req.Password
	generated := password == ""
	if generated {
		password = randomPassword()
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	roles := []string{domain.RoleRegularAdmin}
	if req.IsSuperAdmin {
		roles = append(roles, domain.RoleSuperAdmin)
	}
	user, err := h.store.CreateUser(domain.User{
		Email:                 req.Email,
		FullName:              req.FullName,
		TEID:                  req.TEID,
		PlantID:               req.PlantID,
		IsSuperAdmin:          req.IsSuperAdmin,
		RequirePasswordChange: generated,
		Roles:                 roles,
	}, hash)
	if err != nil {
		return err
	}

	h.log.Info().Str("email", user.Email).Bool("super_admin", user.IsSuperAdmin).Msg("admin registered")
	return c.JSON(http.StatusCreated, user)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// ChangePassword handles POST /api/auth/change-password.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.NewPassword != req.ConfirmPassword {
		return domain.ErrPasswordMismatch
	}

	userID, _ := c.Get(ctxUserID).(string)
	user, err := h.store.FindUser(userID)
	if err != nil {
		return err
	}
	_, hash, err := h.store.FindUserByEmail(user.Email)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword(hash, []byte(req.CurrentPassword)) != nil {
		return domain.ErrInvalidCredentials
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return h.store.SetPassword(userID, newHash, false)
}

// Admins handles GET /api/admin/users.
func (h *AuthHandler) Admins(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.Users())
}

// AdminsByPlant handles GET /api/admin/users/plant/:id.
func (h *AuthHandler) AdminsByPlant(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.UsersByPlant(c.Param("id")))
}

// DeleteAdmin handles DELETE /api/admin/users/:id.
func (h *AuthHandler) DeleteAdmin(c echo.Context) error {
	if err := h.store.DeleteUser(c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

type resetPasswordResponse struct {
	NewPassword string `json:"newPassword"`
}

// ResetPassword handles POST /api/admin/reset-password/:id: generates a
// fresh password, revokes the user's sessions, and returns the password
// once so the super admin can hand it over.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	userID := c.Param("id")
	password := randomPassword()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := h.store.SetPassword(userID, hash, true); err != nil {
		return err
	}
	h.store.RevokeUserSessions(userID)
	return c.JSON(http.StatusOK, resetPasswordResponse{NewPassword: password})
}

func (h *AuthHandler) issueToken(c echo.Context, user *domain.User) (string, error) {
	now := time.Now().UTC()
	tokenID := uuid.NewString()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"jti":   tokenID,
		"email": user.Email,
		"roles": user.Roles,
		"exp":   now.Add(h.tokenTTL).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.jwtSecret))
	if err != nil {
		return "", err
	}

	h.store.AddSession(domain.UserToken{
		ID:        tokenID,
		UserID:    user.ID,
		Device:    c.Request().UserAgent(),
		CreatedAt: now,
		ExpiresAt: now.Add(h.tokenTTL),
	})
	return signed, nil
}

// randomPassword returns a 16-hex-character generated password.
func randomPassword() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return uuid.NewString()[:16]
	}
	return fmt.Sprintf("%x", b)
}
