package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gestock/gestock-api/internal/application/alerts"
	"github.com/gestock/gestock-api/internal/application/analytics"
	"github.com/gestock/gestock-api/internal/application/auth"
	"github.com/gestock/gestock-api/internal/application/dto"
	"github.com/gestock/gestock-api/internal/application/inventory"
	"github.com/gestock/gestock-api/internal/domain/entity"
	"github.com/gestock/gestock-api/internal/infrastructure/blobstore"
	"github.com/gestock/gestock-api/internal/infrastructure/catalog"
	"github.com/gestock/gestock-api/internal/infrastructure/pdf"
	apphttp "github.com/gestock/gestock-api/internal/interfaces/http"
	"github.com/gestock/gestock-api/pkg/jwt"
	"github.com/gestock/gestock-api/pkg/logger"
)

const testPassword = "clave-secreta"

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo falso servido por httptest (habla el contrato HTTP real)
// ──────────────────────────────────────────────────────────────────────────────

type catalogServer struct {
	mu       sync.Mutex
	products map[int]entity.Product
}

func newCatalogServer(products ...entity.Product) (*catalogServer, *httptest.Server) {
	cs := &catalogServer{products: make(map[int]entity.Product)}
	for _, p := range products {
		cs.products[p.ID] = p
	}
	srv := httptest.NewServer(http.HandlerFunc(cs.handle))
	return cs, srv
}

func (cs *catalogServer) handle(w http.ResponseWriter, r *http.Request) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if r.URL.Path == "/products" {
		list := make([]entity.Product, 0, len(cs.products))
		for _, p := range cs.products {
			list = append(list, p)
		}
		json.NewEncoder(w).Encode(list)
		return
	}

	id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/products/"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	p, ok := cs.products[id]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	switch r.Method {
	case http.MethodGet:
		json.NewEncoder(w).Encode(p)
	case http.MethodPatch:
		var body map[string]int
		json.NewDecoder(r.Body).Decode(&body)
		p.Quantity = body["quantity"]
		cs.products[id] = p
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (cs *catalogServer) quantity(id int) int {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.products[id].Quantity
}

// buildApp levanta la aplicación completa contra un blobstore temporal y el
// catálogo falso, igual que el cableado de cmd/api.
func buildApp(t *testing.T, srvURL string) *fiber.App {
	t.Helper()

	store, err := blobstore.New(t.TempDir())
	require.NoError(t, err)
	gateway := catalog.New(srvURL, 0)
	log := logger.New(logger.Config{Env: "production", Level: "error"})

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	recorder := inventory.NewRecorder(store, gateway)
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Register:  inventory.NewRegisterService(recorder, store, gateway, log),
		Ledger:    inventory.NewLedgerUseCase(store),
		Summaries: analytics.NewSummaryUseCase(store),
		Alerts:    alerts.NewUseCase(gateway),
		Reports:   pdf.NewMarotoReportGenerator(),
		AuthUC: auth.NewAuthUseCase(
			auth.Credential{Username: testUsername, PasswordHash: string(hash)},
			auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer},
		),
		JWTSecret: testJWTSecret,
	})
	return app
}

func authedRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	token, err := jwt.Generate(testJWTSecret, testUsername, testIssuer, testExpMin)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func decodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_EndToEnd(t *testing.T) {
	_, srv := newCatalogServer()
	defer srv.Close()
	app := buildApp(t, srv.URL)

	req := httptest.NewRequest("POST", "/api/auth/login",
		strings.NewReader(`{"username":"`+testUsername+`","password":"`+testPassword+`"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeJSON[dto.LoginResponse](t, resp)
	assert.Equal(t, testUsername, body.Username)

	// El token emitido abre las rutas protegidas.
	listReq := httptest.NewRequest("GET", "/api/movements/", nil)
	listReq.Header.Set("Authorization", "Bearer "+body.Token)
	listResp, err := app.Test(listReq, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, listResp.StatusCode)
}

func TestLogin_PasswordIncorrectaDevuelve401(t *testing.T) {
	_, srv := newCatalogServer()
	defer srv.Close()
	app := buildApp(t, srv.URL)

	req := httptest.NewRequest("POST", "/api/auth/login",
		strings.NewReader(`{"username":"`+testUsername+`","password":"incorrecta"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestMovements_SinTokenDevuelve401(t *testing.T) {
	_, srv := newCatalogServer()
	defer srv.Close()
	app := buildApp(t, srv.URL)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/movements/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRecordEntry_EndToEnd(t *testing.T) {
	cs, srv := newCatalogServer(entity.Product{ID: 7, Name: "Bolt", Quantity: 5, StockAlertThreshold: 10})
	defer srv.Close()
	app := buildApp(t, srv.URL)

	resp, err := app.Test(authedRequest(t, "POST", "/api/movements/entries", dto.RecordEntryRequest{
		ProductID: 7, Quantity: 50, Supplier: "Acier Dupont",
	}), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	m := decodeJSON[dto.MovementResponse](t, resp)
	assert.Equal(t, "ENTREE", m.Type)
	assert.Equal(t, "Bolt", m.ProductName)
	assert.Equal(t, 50, m.Quantity)
	assert.Equal(t, 55, cs.quantity(7), "la entrada suma la cantidad en el catálogo")
}

func TestRecordExit_InsuficienteDevuelve409(t *testing.T) {
	cs, srv := newCatalogServer(entity.Product{ID: 7, Name: "Bolt", Quantity: 5})
	defer srv.Close()
	app := buildApp(t, srv.URL)

	resp, err := app.Test(authedRequest(t, "POST", "/api/movements/exits", dto.RecordExitRequest{
		ProductID: 7, Quantity: 100,
	}), -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	body := decodeJSON[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Code)
	assert.Equal(t, 5, cs.quantity(7), "el catálogo no se toca en un rechazo")

	// El libro tampoco registró nada.
	listResp, err := app.Test(authedRequest(t, "GET", "/api/movements/", nil), -1)
	require.NoError(t, err)
	assert.Empty(t, decodeJSON[[]dto.MovementResponse](t, listResp))
}

func TestRecordEntry_ProductoInexistenteDevuelve404(t *testing.T) {
	_, srv := newCatalogServer()
	defer srv.Close()
	app := buildApp(t, srv.URL)

	resp, err := app.Test(authedRequest(t, "POST", "/api/movements/entries", dto.RecordEntryRequest{
		ProductID: 99, Quantity: 1,
	}), -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestListMovements_FiltraPorTipo(t *testing.T) {
	_, srv := newCatalogServer(entity.Product{ID: 7, Name: "Bolt", Quantity: 100})
	defer srv.Close()
	app := buildApp(t, srv.URL)

	for _, target := range []string{"/api/movements/entries", "/api/movements/exits"} {
		resp, err := app.Test(authedRequest(t, "POST", target, map[string]int{
			"product_id": 7, "quantity": 10,
		}), -1)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp, err := app.Test(authedRequest(t, "GET", "/api/movements/?type=SORTIE", nil), -1)
	require.NoError(t, err)
	list := decodeJSON[[]dto.MovementResponse](t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, "SORTIE", list[0].Type)
}

func TestDailySummary_EndToEnd(t *testing.T) {
	_, srv := newCatalogServer(entity.Product{ID: 7, Name: "Bolt", Quantity: 5})
	defer srv.Close()
	app := buildApp(t, srv.URL)

	resp, err := app.Test(authedRequest(t, "POST", "/api/movements/entries", dto.RecordEntryRequest{
		ProductID: 7, Quantity: 50,
	}), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(authedRequest(t, "GET", "/api/summaries/daily", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	s := decodeJSON[dto.DailySummaryResponse](t, resp)
	require.Len(t, s.Entries, 1)
	assert.Equal(t, 50, s.TotalEntriesQuantity)
	assert.Equal(t, 50, s.NetChange)
}

func TestAlerts_EndToEnd(t *testing.T) {
	_, srv := newCatalogServer(
		entity.Product{ID: 7, Name: "Bolt", Quantity: 5, StockAlertThreshold: 10},
		entity.Product{ID: 8, Name: "Nut", Quantity: 50, StockAlertThreshold: 10},
	)
	defer srv.Close()
	app := buildApp(t, srv.URL)

	resp, err := app.Test(authedRequest(t, "GET", "/api/alerts", nil), -1)
	require.NoError(t, err)

	list := decodeJSON[[]dto.StockAlertResponse](t, resp)
	require.Len(t, list, 1, "solo los productos en o bajo el umbral alertan")
	assert.Equal(t, 7, list[0].ProductID)
	assert.Equal(t, entity.SeverityLow, list[0].Severity)
}

func TestClear_VaciaElLibro(t *testing.T) {
	_, srv := newCatalogServer(entity.Product{ID: 7, Name: "Bolt", Quantity: 100})
	defer srv.Close()
	app := buildApp(t, srv.URL)

	resp, err := app.Test(authedRequest(t, "POST", "/api/movements/entries", dto.RecordEntryRequest{
		ProductID: 7, Quantity: 10,
	}), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(authedRequest(t, "DELETE", "/api/movements/", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(authedRequest(t, "GET", "/api/movements/", nil), -1)
	require.NoError(t, err)
	assert.Empty(t, decodeJSON[[]dto.MovementResponse](t, resp))
}

func TestReportDaily_DevuelvePDF(t *testing.T) {
	_, srv := newCatalogServer()
	defer srv.Close()
	app := buildApp(t, srv.URL)

	resp, err := app.Test(authedRequest(t, "GET", "/api/reports/daily?date=2024-03-01", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")), "el cuerpo debe ser un documento PDF")
}
