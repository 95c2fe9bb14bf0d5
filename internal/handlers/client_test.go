package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diewo77/go-billing/internal/models"
)

func TestClientCRUD(t *testing.T) {
	db := setupTestDB(t)
	user := models.User{Email: "c@test", Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	h := NewClientHandler(db)

	body := `{"company_name": "UAB Naujas", "company_code": "304123456", "vat_code": "LT100001234567", "city": "Vilnius"}`
	w := httptest.NewRecorder()
	h.Create(w, authed(httptest.NewRequest(http.MethodPost, "/api/clients", strings.NewReader(body)), user.ID))
	require.Equal(t, http.StatusCreated, w.Code, "body=%s", w.Body.String())

	var created models.Client
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "UAB Naujas", created.CompanyName)
	assert.Equal(t, "Lietuva", created.Country, "country defaults when omitted")
	assert.Equal(t, user.ID, created.UserID)

	id := strconv.Itoa(int(created.ID))

	// Update
	update := `{"company_name": "UAB Atnaujintas", "country": "Latvija"}`
	upReq := authed(httptest.NewRequest(http.MethodPut, "/api/clients/"+id, strings.NewReader(update)), user.ID)
	upReq.SetPathValue("id", id)
	w = httptest.NewRecorder()
	h.Update(w, upReq)
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Client
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "UAB Atnaujintas", updated.CompanyName)
	assert.Equal(t, "Latvija", updated.Country)

	// Missing name is rejected
	w = httptest.NewRecorder()
	badReq := authed(httptest.NewRequest(http.MethodPut, "/api/clients/"+id, strings.NewReader(`{"company_name": ""}`)), user.ID)
	badReq.SetPathValue("id", id)
	h.Update(w, badReq)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Delete
	delReq := authed(httptest.NewRequest(http.MethodDelete, "/api/clients/"+id, nil), user.ID)
	delReq.SetPathValue("id", id)
	w = httptest.NewRecorder()
	h.Delete(w, delReq)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "client_deleted")

	var count int64
	db.Model(&models.Client{}).Count(&count)
	assert.Zero(t, count)
}

func TestClientOwnershipScoping(t *testing.T) {
	db := setupTestDB(t)
	owner := models.User{Email: "owner@test", Password: "x"}
	stranger := models.User{Email: "stranger@test", Password: "x"}
	require.NoError(t, db.Create(&owner).Error)
	require.NoError(t, db.Create(&stranger).Error)

	client := models.Client{UserID: owner.ID, CompanyName: "UAB Slaptas"}
	require.NoError(t, db.Create(&client).Error)
	h := NewClientHandler(db)
	id := strconv.Itoa(int(client.ID))

	getReq := authed(httptest.NewRequest(http.MethodGet, "/api/clients/"+id, nil), stranger.ID)
	getReq.SetPathValue("id", id)
	w := httptest.NewRecorder()
	h.Get(w, getReq)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotContains(t, w.Body.String(), "UAB Slaptas")

	listReq := authed(httptest.NewRequest(http.MethodGet, "/api/clients", nil), stranger.ID)
	w = httptest.NewRecorder()
	h.List(w, listReq)
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.Client
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Empty(t, list)
}

func TestProductCRUD(t *testing.T) {
	db := setupTestDB(t)
	user := models.User{Email: "p@test", Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	h := NewProductHandler(db)

	w := httptest.NewRecorder()
	h.Create(w, authed(httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(`{"name": "Valanda", "price": 45.50}`)), user.ID))
	require.Equal(t, http.StatusCreated, w.Code, "body=%s", w.Body.String())

	var created models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "45.50", created.Price.StringFixed(2))
	assert.Equal(t, "vnt", created.Unit, "unit defaults when omitted")

	// Negative price is rejected
	w = httptest.NewRecorder()
	h.Create(w, authed(httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(`{"name": "Broken", "price": -1}`)), user.ID))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "must_not_be_negative")
}
