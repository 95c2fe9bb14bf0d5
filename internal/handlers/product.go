package handlers

import (
	"net/http"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/diewo77/go-billing/auth"
	"github.com/diewo77/go-billing/httpx"
	"github.com/diewo77/go-billing/internal/models"
	"github.com/diewo77/go-billing/validation"
)

type ProductHandler struct {
	db *gorm.DB
}

func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{db: db}
}

type productRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit"`
}

func (req productRequest) validate() validation.Violations {
	v := make(validation.Violations)
	validation.Required("name", req.Name, v)
	if req.Price.IsNegative() {
		v["price"] = "must_not_be_negative"
	}
	return v
}

func (req productRequest) apply(p *models.Product) {
	p.Name = req.Name
	p.Description = req.Description
	p.Price = req.Price
	p.Unit = req.Unit
	if p.Unit == "" {
		p.Unit = "vnt"
	}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	var products []models.Product
	if err := h.db.Where("user_id = ?", userID).Order("id DESC").Find(&products).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_products", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	var product models.Product
	if err := h.db.Where("id = ? AND user_id = ?", r.PathValue("id"), userID).First(&product).Error; err != nil {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	var req productRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if v := req.validate(); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}

	product := models.Product{UserID: userID}
	req.apply(&product)

	if err := h.db.Create(&product).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_create_product", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, product)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	var product models.Product
	if err := h.db.Where("id = ? AND user_id = ?", r.PathValue("id"), userID).First(&product).Error; err != nil {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}

	var req productRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if v := req.validate(); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}

	req.apply(&product)
	if err := h.db.Save(&product).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_update_product", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	var product models.Product
	if err := h.db.Where("id = ? AND user_id = ?", r.PathValue("id"), userID).First(&product).Error; err != nil {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	if err := h.db.Delete(&product).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_delete_product", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"message": "product_deleted", "product": product})
}
