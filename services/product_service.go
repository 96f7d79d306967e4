package services

import (
	"context"
	"mime/multipart"

	"shop-service/models"
	"shop-service/repository"
	"shop-service/storage"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ProductCreateRequest is the payload for creating a product.
type ProductCreateRequest struct {
	Name        string          `json:"name" binding:"required,max=100"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Discount    int             `json:"discount" binding:"gte=0,lte=100"`
}

// ProductUpdateRequest carries partial product updates. Pointer fields
// distinguish "not sent" from zero values.
type ProductUpdateRequest struct {
	Name        *string          `json:"name" binding:"omitempty,max=100"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Discount    *int             `json:"discount" binding:"omitempty,gte=0,lte=100"`
}

// ProductExportEntry mirrors the products data export row.
type ProductExportEntry struct {
	PK       uint   `json:"pk"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Archived bool   `json:"archived"`
}

// ProductService defines the interface for product business logic.
type ProductService interface {
	ListProducts(ctx context.Context) ([]models.Product, *ServiceError)
	GetProduct(ctx context.Context, id uint) (*models.Product, *ServiceError)
	CreateProduct(ctx context.Context, req *ProductCreateRequest) (*models.Product, *ServiceError)
	UpdateProduct(ctx context.Context, id uint, req *ProductUpdateRequest, images []*multipart.FileHeader) (*models.Product, *ServiceError)
	ArchiveProduct(ctx context.Context, id uint) *ServiceError
	ExportProducts(ctx context.Context) ([]ProductExportEntry, *ServiceError)
}

type productServiceImpl struct {
	repo     repository.ProductRepository
	uploader *storage.Uploader
}

// NewProductService creates a new ProductService. The uploader may be nil
// when object storage is not configured; image attachments then fail with a
// service error instead of a panic.
func NewProductService(repo repository.ProductRepository, uploader *storage.Uploader) ProductService {
	return &productServiceImpl{repo: repo, uploader: uploader}
}

// ListProducts returns the default catalog listing, archived rows excluded.
func (s *productServiceImpl) ListProducts(ctx context.Context) ([]models.Product, *ServiceError) {
	products, err := s.repo.FindActive(ctx)
	if err != nil {
		zap.L().Error("Failed to fetch products", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch products"}
	}
	return products, nil
}

// GetProduct returns a product by id, archived or not.
func (s *productServiceImpl) GetProduct(ctx context.Context, id uint) (*models.Product, *ServiceError) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, &ServiceError{StatusCode: 404, Message: "Product not found"}
		}
		zap.L().Error("Failed to fetch product", zap.Uint("product_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch product"}
	}
	return product, nil
}

func (s *productServiceImpl) CreateProduct(ctx context.Context, req *ProductCreateRequest) (*models.Product, *ServiceError) {
	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Discount:    req.Discount,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		zap.L().Error("Failed to create product", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create product"}
	}

	zap.L().Info("Product created", zap.Uint("product_id", product.ID), zap.String("name", product.Name))
	return product, nil
}

// UpdateProduct applies field updates, then uploads and attaches any
// provided images. Image attachment happens after the row update, matching
// the update-then-attach flow of the admin screen.
func (s *productServiceImpl) UpdateProduct(ctx context.Context, id uint, req *ProductUpdateRequest, images []*multipart.FileHeader) (*models.Product, *ServiceError) {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Discount != nil {
		updates["discount"] = *req.Discount
	}

	if len(updates) > 0 {
		affected, err := s.repo.Update(ctx, id, updates)
		if err != nil {
			zap.L().Error("Failed to update product", zap.Uint("product_id", id), zap.Error(err))
			return nil, &ServiceError{StatusCode: 500, Message: "Failed to update product"}
		}
		if affected == 0 {
			return nil, &ServiceError{StatusCode: 404, Message: "Product not found"}
		}
	} else if _, err := s.repo.FindByID(ctx, id); err != nil {
		if isNotFound(err) {
			return nil, &ServiceError{StatusCode: 404, Message: "Product not found"}
		}
		zap.L().Error("Failed to fetch product", zap.Uint("product_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to update product"}
	}

	for _, fh := range images {
		if svcErr := s.attachImage(ctx, id, fh); svcErr != nil {
			return nil, svcErr
		}
	}

	return s.GetProduct(ctx, id)
}

func (s *productServiceImpl) attachImage(ctx context.Context, productID uint, fh *multipart.FileHeader) *ServiceError {
	if s.uploader == nil {
		return &ServiceError{StatusCode: 503, Message: "Image storage not configured"}
	}

	file, err := fh.Open()
	if err != nil {
		zap.L().Error("Failed to open uploaded image", zap.String("filename", fh.Filename), zap.Error(err))
		return &ServiceError{StatusCode: 400, Message: "Invalid image upload"}
	}
	defer file.Close()

	key, err := s.uploader.Upload(ctx, fh.Filename, fh.Header.Get("Content-Type"), file)
	if err != nil {
		zap.L().Error("Failed to upload product image", zap.Uint("product_id", productID), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to store image"}
	}

	if err := s.repo.AddImage(ctx, &models.ProductImage{ProductID: productID, Image: key}); err != nil {
		zap.L().Error("Failed to attach product image", zap.Uint("product_id", productID), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to attach image"}
	}

	zap.L().Info("Product image attached", zap.Uint("product_id", productID), zap.String("key", key))
	return nil
}

// ArchiveProduct flags a product as archived instead of deleting the row.
func (s *productServiceImpl) ArchiveProduct(ctx context.Context, id uint) *ServiceError {
	affected, err := s.repo.Archive(ctx, id)
	if err != nil {
		zap.L().Error("Failed to archive product", zap.Uint("product_id", id), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to archive product"}
	}
	if affected == 0 {
		return &ServiceError{StatusCode: 404, Message: "Product not found"}
	}

	zap.L().Info("Product archived", zap.Uint("product_id", id))
	return nil
}

// ExportProducts returns every product, archived included, in pk order.
func (s *productServiceImpl) ExportProducts(ctx context.Context) ([]ProductExportEntry, *ServiceError) {
	products, err := s.repo.FindAllOrderedByID(ctx)
	if err != nil {
		zap.L().Error("Failed to export products", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to export products"}
	}

	entries := make([]ProductExportEntry, 0, len(products))
	for _, p := range products {
		entries = append(entries, ProductExportEntry{
			PK:       p.ID,
			Name:     p.Name,
			Price:    p.Price.String(),
			Archived: p.Archived,
		})
	}
	return entries, nil
}
