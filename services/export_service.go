package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"shop-service/cache"
	"shop-service/models"
	"shop-service/repository"

	"go.uber.org/zap"
)

// ExportCacheTTL is how long a built export stays valid. Within this window
// changes to the underlying orders are not reflected.
const ExportCacheTTL = 300 * time.Second

const exportCacheKeyPrefix = "user_orders_export_"

// OrderExport is the projected shape of a single order in the export payload.
type OrderExport struct {
	ID              uint             `json:"id"`
	DeliveryAddress string           `json:"delivery_address"`
	Promocode       string           `json:"promocode"`
	CreatedAt       string           `json:"created_at"`
	User            string           `json:"user"`
	Products        []ProductSummary `json:"products"`
}

// ProductSummary is the nested product projection inside an order export.
type ProductSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

// OrderExporter is the capability consumed by the HTTP layer.
type OrderExporter interface {
	ExportUserOrders(ctx context.Context, userID uint) ([]byte, *ServiceError)
}

// OrderExportService serves a user's orders as a JSON payload through a
// cache-aside read path: resolve the user, check the cache, fall back to the
// store and write the result back with a fixed TTL.
type OrderExportService struct {
	orders repository.OrderRepository
	users  repository.UserRepository
	cache  cache.Cache
	ttl    time.Duration
}

// NewOrderExportService creates a new OrderExportService.
func NewOrderExportService(orders repository.OrderRepository, users repository.UserRepository, c cache.Cache) *OrderExportService {
	return &OrderExportService{
		orders: orders,
		users:  users,
		cache:  c,
		ttl:    ExportCacheTTL,
	}
}

// ExportCacheKey derives the cache key for a user's export from the user id
// alone. There is no version or invalidation token in the key.
func ExportCacheKey(userID uint) string {
	return fmt.Sprintf("%s%d", exportCacheKeyPrefix, userID)
}

// ExportUserOrders returns the JSON-encoded export for the given user. The
// returned bytes come verbatim from the cache on a hit, so repeated calls
// within the TTL are byte-for-byte identical. The user is resolved before
// any cache interaction: an unknown user id fails with 404 without touching
// the cache.
func (s *OrderExportService) ExportUserOrders(ctx context.Context, userID uint) ([]byte, *ServiceError) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, &ServiceError{StatusCode: 404, Message: "User not found"}
		}
		zap.L().Error("Failed to resolve user for export", zap.Uint("user_id", userID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to export orders"}
	}

	key := ExportCacheKey(userID)

	cached, err := s.cache.Get(ctx, key)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		// Cache backend trouble degrades to a miss, the store stays usable.
		zap.L().Warn("Export cache read failed", zap.String("key", key), zap.Error(err))
	}

	orders, err := s.orders.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("Failed to fetch orders for export", zap.Uint("user_id", userID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to export orders"}
	}

	payload, err := json.Marshal(buildExport(user, orders))
	if err != nil {
		zap.L().Error("Failed to marshal order export", zap.Uint("user_id", userID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to export orders"}
	}

	if err := s.cache.Set(ctx, key, payload, s.ttl); err != nil {
		zap.L().Warn("Failed to cache order export", zap.String("key", key), zap.Error(err))
	}

	return payload, nil
}

// buildExport projects orders into their export shape. The slice is never
// nil so a user without orders serializes as an empty JSON array.
func buildExport(user *models.User, orders []models.Order) []OrderExport {
	exports := make([]OrderExport, 0, len(orders))
	for _, order := range orders {
		products := make([]ProductSummary, 0, len(order.Products))
		for _, product := range order.Products {
			products = append(products, ProductSummary{
				ID:    product.ID,
				Name:  product.Name,
				Price: product.Price.String(),
			})
		}
		exports = append(exports, OrderExport{
			ID:              order.ID,
			DeliveryAddress: order.DeliveryAddress,
			Promocode:       order.Promocode,
			CreatedAt:       order.CreatedAt.Format(time.RFC3339Nano),
			User:            user.Username,
			Products:        products,
		})
	}
	return exports
}
