package handlers

import (
	"net/http"
	"strconv"

	"gorm.io/gorm"

	"github.com/diewo77/go-billing/auth"
	"github.com/diewo77/go-billing/httpx"
	"github.com/diewo77/go-billing/internal/models"
	"github.com/diewo77/go-billing/validation"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

type clientRequest struct {
	CompanyName string `json:"company_name"`
	CompanyCode string `json:"company_code"`
	VATCode     string `json:"vat_code"`
	Address     string `json:"address"`
	City        string `json:"city"`
	PostalCode  string `json:"postal_code"`
	Country     string `json:"country"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
}

func (req clientRequest) apply(c *models.Client) {
	c.CompanyName = req.CompanyName
	c.CompanyCode = req.CompanyCode
	c.VATCode = req.VATCode
	c.Address = req.Address
	c.City = req.City
	c.PostalCode = req.PostalCode
	c.Country = req.Country
	if c.Country == "" {
		c.Country = "Lietuva"
	}
	c.Email = req.Email
	c.Phone = req.Phone
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	var clients []models.Client
	if err := h.db.Where("user_id = ?", userID).Order("id DESC").Find(&clients).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_clients", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, clients)
}

func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	var client models.Client
	if err := h.db.Where("id = ? AND user_id = ?", r.PathValue("id"), userID).First(&client).Error; err != nil {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, client)
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	var req clientRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}

	v := make(validation.Violations)
	validation.Required("company_name", req.CompanyName, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}

	client := models.Client{UserID: userID}
	req.apply(&client)

	if err := h.db.Create(&client).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_create_client", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, client)
}

func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	var client models.Client
	if err := h.db.Where("id = ? AND user_id = ?", r.PathValue("id"), userID).First(&client).Error; err != nil {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}

	var req clientRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}

	v := make(validation.Violations)
	validation.Required("company_name", req.CompanyName, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}

	req.apply(&client)
	if err := h.db.Save(&client).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_update_client", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, client)
}

func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}

	var client models.Client
	if err := h.db.Where("id = ? AND user_id = ?", id, userID).First(&client).Error; err != nil {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	if err := h.db.Delete(&client).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_delete_client", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"message": "client_deleted", "client": client})
}
