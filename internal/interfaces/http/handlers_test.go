package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/orderdesk/po-backoffice/internal/application/port"
	"github.com/orderdesk/po-backoffice/internal/application/service"
	"github.com/orderdesk/po-backoffice/internal/domain/order"
	"github.com/orderdesk/po-backoffice/internal/store/memory"
)

type noopNotifier struct{}

func (noopNotifier) Notify(title, message string, severity port.Severity) {}

func newTestServer(t *testing.T, editorKeys ...string) (*Server, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	svc := service.NewOrderService(store, noopNotifier{}, service.Defaults{
		NumberPrefix:  "PO-",
		DueDays:       30,
		TaxPercentage: decimal.NewFromInt(18),
	}, zap.NewNop())

	config := DefaultServerConfig()
	config.EditorKeys = editorKeys
	return NewServer(config, svc, zap.NewNop()), store
}

func doJSON(t *testing.T, srv *Server, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func decodeOrder(t *testing.T, w *httptest.ResponseRecorder) order.PurchaseOrder {
	t.Helper()
	var resp struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)

	var po order.PurchaseOrder
	require.NoError(t, json.Unmarshal(resp.Data, &po))
	return po
}

func createRequest() CreateOrderRequest {
	return CreateOrderRequest{
		VendorName: "Acme Metals",
		Items: []CreateOrderItemRequest{
			{ProductName: "Steel Rods", Quantity: 2, UnitPrice: decimal.NewFromInt(100)},
		},
	}
}

func TestCreateOrder(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/api/v1/orders", createRequest(), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	po := decodeOrder(t, w)
	assert.Equal(t, "PO-0001", po.PONumber)
	assert.Equal(t, order.StatusDraft, po.Status)
	assert.True(t, po.Total.Equal(decimal.NewFromInt(236)), "total = %s", po.Total)
}

func TestCreateOrder_ValidationError(t *testing.T) {
	srv, store := newTestServer(t)

	req := createRequest()
	req.Items = nil

	w := doJSON(t, srv, http.MethodPost, "/api/v1/orders", req, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.Read(), "rejected order must not reach the store")
}

func TestListOrders_Search(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/api/v1/orders", createRequest(), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	other := createRequest()
	other.VendorName = "Brightline Office Supplies"
	w = doJSON(t, srv, http.MethodPost, "/api/v1/orders", other, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool                  `json:"success"`
		Data    []order.PurchaseOrder `json:"data"`
	}

	w = doJSON(t, srv, http.MethodGet, "/api/v1/orders?search=acme", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Acme Metals", resp.Data[0].VendorName)

	w = doJSON(t, srv, http.MethodGet, "/api/v1/orders", nil, nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
}

func TestGetOrder_NotFound(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodGet, "/api/v1/orders/missing", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateStatus(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/api/v1/orders", createRequest(), nil)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeOrder(t, w)

	w = doJSON(t, srv, http.MethodPost, "/api/v1/orders/"+created.ID+"/status",
		UpdateStatusRequest{Status: "Sent"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, order.StatusSent, decodeOrder(t, w).Status)
}

func TestUpdateStatus_InvalidTransition(t *testing.T) {
	srv, store := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/api/v1/orders", createRequest(), nil)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeOrder(t, w)

	w = doJSON(t, srv, http.MethodPost, "/api/v1/orders/"+created.ID+"/status",
		UpdateStatusRequest{Status: "Approved"}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	orders := store.Read()
	require.Len(t, orders, 1)
	assert.Equal(t, order.StatusDraft, orders[0].Status)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/api/v1/orders", createRequest(), nil)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeOrder(t, w)

	w = doJSON(t, srv, http.MethodPost, "/api/v1/orders/"+created.ID+"/status",
		UpdateStatusRequest{Status: "Shipped"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListTransitions(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/api/v1/orders", createRequest(), nil)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeOrder(t, w)

	w = doJSON(t, srv, http.MethodGet, "/api/v1/orders/"+created.ID+"/transitions", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                       `json:"success"`
		Data    []service.TransitionOption `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "Send to Vendor", resp.Data[0].ActionLabel)
	assert.Equal(t, "Cancel Order", resp.Data[1].ActionLabel)
}

func TestEditCapability(t *testing.T) {
	srv, store := newTestServer(t, "secret-key")

	// Without the key: read works, write is rejected.
	w := doJSON(t, srv, http.MethodGet, "/api/v1/orders", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, srv, http.MethodPost, "/api/v1/orders", createRequest(), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, store.Read())

	// With the key the write goes through.
	w = doJSON(t, srv, http.MethodPost, "/api/v1/orders", createRequest(),
		map[string]string{"X-API-Key": "secret-key"})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestOrderDocument(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/api/v1/orders", createRequest(), nil)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeOrder(t, w)

	w = doJSON(t, srv, http.MethodGet, "/api/v1/orders/"+created.ID+"/document", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}

func TestExportOrders(t *testing.T) {
	srv, _ := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/api/v1/orders", createRequest(), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, srv, http.MethodGet, "/api/v1/orders/export", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Body.Bytes())
	assert.Contains(t, w.Header().Get("Content-Disposition"), "purchase-orders.xlsx")
}
