package controllers

import (
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"shop-service/models"
	"shop-service/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type fakeProductService struct {
	products      []models.Product
	archivedIDs   []uint
	archiveResult *services.ServiceError
}

func (f *fakeProductService) ListProducts(_ context.Context) ([]models.Product, *services.ServiceError) {
	active := make([]models.Product, 0, len(f.products))
	for _, p := range f.products {
		if !p.Archived {
			active = append(active, p)
		}
	}
	return active, nil
}

func (f *fakeProductService) GetProduct(_ context.Context, id uint) (*models.Product, *services.ServiceError) {
	for i := range f.products {
		if f.products[i].ID == id {
			return &f.products[i], nil
		}
	}
	return nil, &services.ServiceError{StatusCode: 404, Message: "Product not found"}
}

func (f *fakeProductService) CreateProduct(_ context.Context, req *services.ProductCreateRequest) (*models.Product, *services.ServiceError) {
	return &models.Product{ID: 1, Name: req.Name, Price: req.Price}, nil
}

func (f *fakeProductService) UpdateProduct(_ context.Context, id uint, _ *services.ProductUpdateRequest, _ []*multipart.FileHeader) (*models.Product, *services.ServiceError) {
	return f.GetProduct(context.Background(), id)
}

func (f *fakeProductService) ArchiveProduct(_ context.Context, id uint) *services.ServiceError {
	if f.archiveResult != nil {
		return f.archiveResult
	}
	f.archivedIDs = append(f.archivedIDs, id)
	return nil
}

func (f *fakeProductService) ExportProducts(_ context.Context) ([]services.ProductExportEntry, *services.ServiceError) {
	entries := make([]services.ProductExportEntry, 0, len(f.products))
	for _, p := range f.products {
		entries = append(entries, services.ProductExportEntry{
			PK:       p.ID,
			Name:     p.Name,
			Price:    p.Price.String(),
			Archived: p.Archived,
		})
	}
	return entries, nil
}

func newProductRouter(pc *ProductController) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/products", pc.GetProducts)
	r.GET("/products/export", pc.ExportProducts)
	r.GET("/products/:id", pc.GetProductByID)
	r.DELETE("/products/:id", pc.DeleteProduct)
	return r
}

func TestGetProducts_ExcludesArchived(t *testing.T) {
	svc := &fakeProductService{products: []models.Product{
		{ID: 1, Name: "Laptop", Price: decimal.RequireFromString("1999.00")},
		{ID: 2, Name: "Desktop", Price: decimal.RequireFromString("2999.00"), Archived: true},
	}}
	r := newProductRouter(NewProductController(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Laptop")
	assert.NotContains(t, w.Body.String(), "Desktop")
}

func TestDeleteProduct_Archives(t *testing.T) {
	svc := &fakeProductService{}
	r := newProductRouter(NewProductController(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/products/3", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "archived")
	assert.Equal(t, []uint{3}, svc.archivedIDs)
}

func TestExportProducts_IncludesArchivedWithStringPrices(t *testing.T) {
	svc := &fakeProductService{products: []models.Product{
		{ID: 1, Name: "Laptop", Price: decimal.RequireFromString("19.99"), Archived: true},
	}}
	r := newProductRouter(NewProductController(svc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products/export", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"price":"19.99"`)
	assert.Contains(t, w.Body.String(), `"archived":true`)
}

func TestGetProductByID_NotFound(t *testing.T) {
	r := newProductRouter(NewProductController(&fakeProductService{}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/products/9", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
