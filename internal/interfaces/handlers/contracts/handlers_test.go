package contracts

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	contractsvc "funeraria-backend/internal/application/contracts"
	"funeraria-backend/internal/application/numbering"
	"funeraria-backend/internal/domain"
	"funeraria-backend/internal/middleware"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupContractsTest(t *testing.T) (*fiber.App, *gorm.DB, domain.ServiceItem, domain.Product) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.Client{}, &domain.Deceased{}, &domain.Agreement{},
		&domain.ServiceItem{}, &domain.Product{}, &domain.Contract{},
		&domain.ServiceLineItem{}, &domain.ProductLineItem{},
		&domain.Payment{}, &domain.Counter{}, &domain.ContractEvent{},
	))

	wake := domain.ServiceItem{Code: "SVC-WAKE", Name: "Wake service", Price: 300000}
	require.NoError(t, db.Create(&wake).Error)
	casket := domain.Product{Code: "PRD-CKT", Name: "Casket", Price: 100000, Stock: 2}
	require.NoError(t, db.Create(&casket).Error)

	svc := &contractsvc.Service{DB: db, Numbers: &numbering.Allocator{Prefix: "CTR"}}
	h := &Handlers{Service: svc}

	app := fiber.New()
	g := app.Group("/api/v1/contracts", middleware.RequireActor())
	g.Post("/", h.Create)
	g.Get("/:id", h.Get)
	g.Put("/:id", h.Update)
	g.Post("/:id/convert", h.Convert)
	g.Patch("/:id/status", h.ChangeStatus)
	g.Delete("/:id", h.Delete)

	return app, db, wake, casket
}

func contractPayload(wake domain.ServiceItem, casket domain.Product) map[string]interface{} {
	return map[string]interface{}{
		"client": map[string]interface{}{
			"tax_number": "12345678K",
			"full_name":  "Maria Perez",
		},
		"type": "immediate_need",
		"deceased": map[string]interface{}{
			"full_name":  "Jose Perez",
			"death_date": time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
		},
		"services":            []map[string]interface{}{{"id": wake.ServiceID, "quantity": 1, "unit_price": 300000}},
		"products":            []map[string]interface{}{{"id": casket.ProductID, "quantity": 1, "unit_price": 100000}},
		"discount_percentage": 10,
		"payment_method":      "cash",
	}
}

func postContract(t *testing.T, app *fiber.App, payload map[string]interface{}, withIdentity bool) (int, []byte) {
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/api/v1/contracts/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if withIdentity {
		req.Header.Set("X-User-Id", uuid.New().String())
		req.Header.Set("X-Branch-Id", uuid.New().String())
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, b
}

func TestCreate_MissingIdentity(t *testing.T) {
	app, _, wake, casket := setupContractsTest(t)
	code, _ := postContract(t, app, contractPayload(wake, casket), false)
	assert.Equal(t, 401, code)
}

func TestCreate_Finalizes(t *testing.T) {
	app, _, wake, casket := setupContractsTest(t)
	code, raw := postContract(t, app, contractPayload(wake, casket), true)
	require.Equal(t, 201, code)

	var body struct {
		Status string `json:"status"`
		Data   struct {
			Number string `json:"number"`
			Total  int64  `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, "CTR-000001", body.Data.Number)
	assert.Equal(t, int64(360000), body.Data.Total)
}

func TestCreate_ValidationErrorSurfacesFields(t *testing.T) {
	app, _, wake, casket := setupContractsTest(t)
	payload := contractPayload(wake, casket)
	payload["discount_percentage"] = 150

	code, raw := postContract(t, app, payload, true)
	require.Equal(t, 400, code)

	var body struct {
		Status string `json:"status"`
		Error  struct {
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "error", body.Status)
	assert.Contains(t, body.Error.Details, "discount_percentage")
}

func TestCreate_StockConflict(t *testing.T) {
	app, _, wake, casket := setupContractsTest(t)
	payload := contractPayload(wake, casket)
	payload["products"] = []map[string]interface{}{{"id": casket.ProductID, "quantity": 3, "unit_price": 100000}}

	code, _ := postContract(t, app, payload, true)
	assert.Equal(t, 409, code)
}

func TestGet_NotFound(t *testing.T) {
	app, _, _, _ := setupContractsTest(t)
	req := httptest.NewRequest("GET", "/api/v1/contracts/"+uuid.New().String(), nil)
	req.Header.Set("X-User-Id", uuid.New().String())
	req.Header.Set("X-Branch-Id", uuid.New().String())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestGet_InvalidID(t *testing.T) {
	app, _, _, _ := setupContractsTest(t)
	req := httptest.NewRequest("GET", "/api/v1/contracts/not-a-uuid", nil)
	req.Header.Set("X-User-Id", uuid.New().String())
	req.Header.Set("X-Branch-Id", uuid.New().String())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestChangeStatus_Cancel(t *testing.T) {
	app, db, wake, casket := setupContractsTest(t)
	code, _ := postContract(t, app, contractPayload(wake, casket), true)
	require.Equal(t, 201, code)

	var contract domain.Contract
	require.NoError(t, db.First(&contract).Error)

	body, _ := json.Marshal(map[string]string{"status": "cancelled"})
	req := httptest.NewRequest("PATCH", "/api/v1/contracts/"+contract.ContractID.String()+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", uuid.New().String())
	req.Header.Set("X-Branch-Id", uuid.New().String())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	require.NoError(t, db.First(&contract, "contract_id = ?", contract.ContractID).Error)
	assert.Equal(t, domain.StatusCancelled, contract.Status)
}

func TestDelete_SoftDeletes(t *testing.T) {
	app, db, wake, casket := setupContractsTest(t)
	code, _ := postContract(t, app, contractPayload(wake, casket), true)
	require.Equal(t, 201, code)

	var contract domain.Contract
	require.NoError(t, db.First(&contract).Error)

	req := httptest.NewRequest("DELETE", "/api/v1/contracts/"+contract.ContractID.String(), nil)
	req.Header.Set("X-User-Id", uuid.New().String())
	req.Header.Set("X-Branch-Id", uuid.New().String())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var visible, total int64
	db.Model(&domain.Contract{}).Count(&visible)
	db.Unscoped().Model(&domain.Contract{}).Count(&total)
	assert.Zero(t, visible)
	assert.Equal(t, int64(1), total)
}
