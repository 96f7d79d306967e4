package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"shop-service/models"
	"shop-service/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeExporter struct {
	payload []byte
	err     *services.ServiceError
	calls   int
	lastID  uint
}

func (f *fakeExporter) ExportUserOrders(_ context.Context, userID uint) ([]byte, *services.ServiceError) {
	f.calls++
	f.lastID = userID
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}

type fakeOrderService struct {
	orders []models.Order
	err    *services.ServiceError
}

func (f *fakeOrderService) ListOrders(_ context.Context) ([]models.Order, *services.ServiceError) {
	return f.orders, f.err
}

func (f *fakeOrderService) GetOrder(_ context.Context, id uint) (*models.Order, *services.ServiceError) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.orders {
		if f.orders[i].ID == id {
			return &f.orders[i], nil
		}
	}
	return nil, &services.ServiceError{StatusCode: 404, Message: "Order not found"}
}

func (f *fakeOrderService) ListUserOrders(_ context.Context, _ uint) ([]models.Order, *services.ServiceError) {
	return f.orders, f.err
}

func (f *fakeOrderService) CreateOrder(_ context.Context, _ uint, _ *services.CreateOrderRequest) (*models.Order, *services.ServiceError) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Order{ID: 1}, nil
}

func newExportRouter(oc *OrderController) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/orders/export/:user_id", oc.ExportUserOrders)
	return r
}

func TestExportUserOrders_ServesPayloadVerbatim(t *testing.T) {
	payload := []byte(`[{"id":1,"delivery_address":"221B Baker Street","promocode":"SALE10","created_at":"2024-03-15T10:30:00Z","user":"alice","products":[{"id":5,"name":"Widget","price":"9.99"}]}]`)
	exporter := &fakeExporter{payload: payload}
	oc := NewOrderController(&fakeOrderService{}, exporter)
	r := newExportRouter(oc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders/export/42", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, string(payload), w.Body.String(), "export body is the exporter payload, untouched")
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.Equal(t, uint(42), exporter.lastID)
}

func TestExportUserOrders_UnknownUser(t *testing.T) {
	exporter := &fakeExporter{err: &services.ServiceError{StatusCode: 404, Message: "User not found"}}
	oc := NewOrderController(&fakeOrderService{}, exporter)
	r := newExportRouter(oc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders/export/99", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")
}

func TestExportUserOrders_InvalidUserID(t *testing.T) {
	exporter := &fakeExporter{}
	oc := NewOrderController(&fakeOrderService{}, exporter)
	r := newExportRouter(oc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders/export/not-a-number", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, exporter.calls, "invalid ids never reach the exporter")
}

func TestGetOrderByID_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	oc := NewOrderController(&fakeOrderService{}, &fakeExporter{})
	r := gin.New()
	r.GET("/orders/:id", oc.GetOrderByID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders/7", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
