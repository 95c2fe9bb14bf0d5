package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/diewo77/go-billing/auth"
	"github.com/diewo77/go-billing/httpx"
	"github.com/diewo77/go-billing/internal/models"
	"github.com/diewo77/go-billing/internal/services"
	"github.com/diewo77/go-billing/validation"
)

// InvoiceHandler is a thin JSON boundary over the invoice service: it
// decodes payloads, hands the trusted user id through, and maps the service
// error taxonomy onto status codes.
type InvoiceHandler struct {
	svc *services.InvoiceService
}

func NewInvoiceHandler(svc *services.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{svc: svc}
}

type invoiceItemRequest struct {
	ProductID     *uint           `json:"product_id"`
	Description   string          `json:"description"`
	Quantity      int             `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	DiscountType  string          `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
}

type invoiceRequest struct {
	Number        string               `json:"invoice_number"`
	ClientID      uint                 `json:"client_id"`
	InvoiceDate   string               `json:"invoice_date"` // YYYY-MM-DD
	DueDate       string               `json:"due_date"`
	ShippingPrice decimal.Decimal      `json:"shipping_price"`
	Status        string               `json:"status"`
	Items         []invoiceItemRequest `json:"items"`
}

// toInput converts the wire payload, flagging unparseable dates. Field-level
// validation beyond that belongs to the service.
func (req invoiceRequest) toInput() (services.InvoiceInput, validation.Violations) {
	v := make(validation.Violations)
	in := services.InvoiceInput{
		Number:        req.Number,
		ClientID:      req.ClientID,
		ShippingPrice: req.ShippingPrice,
		Status:        models.InvoiceStatus(req.Status),
	}
	in.InvoiceDate = parseDate("invoice_date", req.InvoiceDate, v)
	in.DueDate = parseDate("due_date", req.DueDate, v)
	if req.Items != nil {
		in.Items = make([]services.ItemInput, 0, len(req.Items))
		for _, it := range req.Items {
			in.Items = append(in.Items, services.ItemInput{
				ProductID:     it.ProductID,
				Description:   it.Description,
				Quantity:      it.Quantity,
				Price:         it.Price,
				DiscountType:  models.DiscountType(it.DiscountType),
				DiscountValue: it.DiscountValue,
			})
		}
	}
	return in, v
}

func parseDate(field, value string, v validation.Violations) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		v[field] = "invalid_date"
		return time.Time{}
	}
	return t
}

func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	invoices, err := h.svc.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, invoices)
}

func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}

	invoice, err := h.svc.Get(r.Context(), userID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, invoice)
}

func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	var req invoiceRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	in, v := req.toInput()
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}

	invoice, err := h.svc.Create(r.Context(), userID, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, invoice)
}

func (h *InvoiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}

	var req invoiceRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	in, v := req.toInput()
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}

	invoice, err := h.svc.Update(r.Context(), userID, id, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, invoice)
}

func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())
	id, ok := pathID(r)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}

	invoice, err := h.svc.Delete(r.Context(), userID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"message": "invoice_deleted", "invoice": invoice})
}

func pathID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
