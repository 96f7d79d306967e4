package services

import (
	"context"

	"shop-service/models"
	"shop-service/repository"

	"go.uber.org/zap"
)

// CreateOrderRequest is the payload for placing a new order.
type CreateOrderRequest struct {
	DeliveryAddress string `json:"delivery_address" binding:"required"`
	Promocode       string `json:"promocode"`
	ProductIDs      []uint `json:"product_ids" binding:"required,min=1"`
}

// OrderService defines the interface for order business logic.
type OrderService interface {
	ListOrders(ctx context.Context) ([]models.Order, *ServiceError)
	GetOrder(ctx context.Context, id uint) (*models.Order, *ServiceError)
	ListUserOrders(ctx context.Context, userID uint) ([]models.Order, *ServiceError)
	CreateOrder(ctx context.Context, userID uint, req *CreateOrderRequest) (*models.Order, *ServiceError)
}

type orderServiceImpl struct {
	orders   repository.OrderRepository
	users    repository.UserRepository
	products repository.ProductRepository
}

// NewOrderService creates a new OrderService.
func NewOrderService(orders repository.OrderRepository, users repository.UserRepository, products repository.ProductRepository) OrderService {
	return &orderServiceImpl{orders: orders, users: users, products: products}
}

// ListOrders retrieves every order with owner and products.
func (s *orderServiceImpl) ListOrders(ctx context.Context) ([]models.Order, *ServiceError) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		zap.L().Error("Failed to fetch orders", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch orders"}
	}
	return orders, nil
}

// GetOrder retrieves a single order by id.
func (s *orderServiceImpl) GetOrder(ctx context.Context, id uint) (*models.Order, *ServiceError) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, &ServiceError{StatusCode: 404, Message: "Order not found"}
		}
		zap.L().Error("Failed to fetch order", zap.Uint("order_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch order"}
	}
	return order, nil
}

// ListUserOrders retrieves a user's orders in primary-key order. The user
// must exist; an unknown id is a 404.
func (s *orderServiceImpl) ListUserOrders(ctx context.Context, userID uint) ([]models.Order, *ServiceError) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if isNotFound(err) {
			return nil, &ServiceError{StatusCode: 404, Message: "User not found"}
		}
		zap.L().Error("Failed to resolve user", zap.Uint("user_id", userID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch orders"}
	}

	orders, err := s.orders.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("Failed to fetch user orders", zap.Uint("user_id", userID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch orders"}
	}
	return orders, nil
}

// CreateOrder places an order for the given user over existing products.
func (s *orderServiceImpl) CreateOrder(ctx context.Context, userID uint, req *CreateOrderRequest) (*models.Order, *ServiceError) {
	products := make([]models.Product, 0, len(req.ProductIDs))
	for _, pid := range req.ProductIDs {
		product, err := s.products.FindByID(ctx, pid)
		if err != nil {
			if isNotFound(err) {
				return nil, &ServiceError{StatusCode: 400, Message: "Unknown product in order"}
			}
			zap.L().Error("Failed to resolve product", zap.Uint("product_id", pid), zap.Error(err))
			return nil, &ServiceError{StatusCode: 500, Message: "Failed to create order"}
		}
		products = append(products, *product)
	}

	order := &models.Order{
		DeliveryAddress: req.DeliveryAddress,
		Promocode:       req.Promocode,
		UserID:          userID,
		Products:        products,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		zap.L().Error("Failed to create order", zap.Uint("user_id", userID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create order"}
	}

	zap.L().Info("Order created", zap.Uint("order_id", order.ID), zap.Uint("user_id", userID))
	return order, nil
}
