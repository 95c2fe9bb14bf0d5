package handlers

import (
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/diewo77/go-billing/auth"
	"github.com/diewo77/go-billing/httpx"
	"github.com/diewo77/go-billing/internal/models"
	"github.com/diewo77/go-billing/validation"
)

type AuthHandler struct {
	db     *gorm.DB
	tokens *auth.Tokens
}

func NewAuthHandler(db *gorm.DB, tokens *auth.Tokens) *AuthHandler {
	return &AuthHandler{db: db, tokens: tokens}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

// Register creates an account and returns a bearer token.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}

	v := make(validation.Violations)
	validation.Required("email", req.Email, v)
	validation.Required("password", req.Password, v)
	if req.Password != "" && len(req.Password) < 6 {
		v["password"] = "too_short"
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", req.Email).Count(&count)
	if count > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "email_taken", nil)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
		return
	}

	user := models.User{
		Email:    req.Email,
		FullName: req.FullName,
		Password: string(hashed),
		Role:     "user",
	}
	if err := h.db.Create(&user).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_create_user", nil)
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"token": token, "user": user})
}

// Login verifies credentials and returns a bearer token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if req.Email == "" || req.Password == "" {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed",
			map[string]string{"email": "required", "password": "required"})
		return
	}

	var user models.User
	if err := h.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "invalid_credentials", nil)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "invalid_credentials", nil)
		return
	}

	now := time.Now()
	h.db.Model(&user).Update("last_login", now)

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"token": token, "user": user})
}

// Verify echoes the authenticated user, confirming the token is still valid.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"valid": true, "user": user})
}

// Logout is stateless: the client discards its token.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "logged_out"})
}
