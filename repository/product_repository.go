package repository

import (
	"context"

	"shop-service/models"

	"gorm.io/gorm"
)

// ProductRepository defines the interface for product data access.
// Archive replaces deletion: rows are flagged, never removed.
type ProductRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Product, error)
	FindActive(ctx context.Context) ([]models.Product, error)
	FindAllOrderedByID(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id uint, updates map[string]interface{}) (int64, error)
	Archive(ctx context.Context, id uint) (int64, error)
	AddImage(ctx context.Context, image *models.ProductImage) error
}

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new instance of GormProductRepository
func NewGormProductRepository(db *gorm.DB) ProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID retrieves a product with its images. Archived products stay
// reachable by id, the archive filter applies to the listing only.
func (r *GormProductRepository) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).
		Preload("Images").
		First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// FindActive retrieves all non-archived products.
func (r *GormProductRepository) FindActive(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).
		Where("archived = ?", false).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindAllOrderedByID retrieves every product, archived included, in
// primary-key order.
func (r *GormProductRepository) FindAllOrderedByID(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormProductRepository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// Update applies the given column updates and reports affected rows.
func (r *GormProductRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		Updates(updates)
	return result.RowsAffected, result.Error
}

// Archive soft-deletes a product by setting archived = true.
func (r *GormProductRepository) Archive(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		Update("archived", true)
	return result.RowsAffected, result.Error
}

func (r *GormProductRepository) AddImage(ctx context.Context, image *models.ProductImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}
