package controllers

import (
	"net/http"
	"strconv"

	"shop-service/middleware"
	"shop-service/services"

	"github.com/gin-gonic/gin"
)

// OrderController handles HTTP requests for order operations.
type OrderController struct {
	orderService services.OrderService
	exporter     services.OrderExporter
}

// NewOrderController creates a new OrderController.
func NewOrderController(orderService services.OrderService, exporter services.OrderExporter) *OrderController {
	return &OrderController{orderService: orderService, exporter: exporter}
}

// ListOrders handles GET /orders.
func (oc *OrderController) ListOrders(ctx *gin.Context) {
	orders, svcErr := oc.orderService.ListOrders(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"orders": orders})
}

// GetOrderByID handles GET /orders/:id (staff only).
func (oc *OrderController) GetOrderByID(ctx *gin.Context) {
	id, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}

	order, svcErr := oc.orderService.GetOrder(ctx.Request.Context(), id)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"order": order})
}

// ListUserOrders handles GET /orders/user/:user_id.
func (oc *OrderController) ListUserOrders(ctx *gin.Context) {
	userID, ok := parseUintParam(ctx, "user_id")
	if !ok {
		return
	}

	orders, svcErr := oc.orderService.ListUserOrders(ctx.Request.Context(), userID)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"orders": orders})
}

// CreateOrder handles POST /orders for the authenticated caller.
func (oc *OrderController) CreateOrder(ctx *gin.Context) {
	userID, err := middleware.GetUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req services.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	order, svcErr := oc.orderService.CreateOrder(ctx.Request.Context(), userID, &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"order": order})
}

// ExportUserOrders handles GET /orders/export/:user_id. The payload is the
// exporter's raw JSON so cache hits are returned byte-for-byte.
func (oc *OrderController) ExportUserOrders(ctx *gin.Context) {
	userID, ok := parseUintParam(ctx, "user_id")
	if !ok {
		return
	}

	payload, svcErr := oc.exporter.ExportUserOrders(ctx.Request.Context(), userID)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}

// parseUintParam extracts a positive integer path parameter, answering 400
// itself when the value does not parse.
func parseUintParam(ctx *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(val), true
}
