package controllers

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"shop-service/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ProductController handles HTTP requests for product operations.
type ProductController struct {
	productService services.ProductService
}

// NewProductController creates a new ProductController.
func NewProductController(productService services.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

// GetProducts handles GET /products.
func (pc *ProductController) GetProducts(ctx *gin.Context) {
	products, svcErr := pc.productService.ListProducts(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"products": products})
}

// GetProductByID handles GET /products/:id.
func (pc *ProductController) GetProductByID(ctx *gin.Context) {
	id, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}

	product, svcErr := pc.productService.GetProduct(ctx.Request.Context(), id)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"product": product})
}

// CreateProduct handles POST /products.
func (pc *ProductController) CreateProduct(ctx *gin.Context) {
	var req services.ProductCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	product, svcErr := pc.productService.CreateProduct(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"product": product})
}

// UpdateProduct handles PUT /products/:id. Fields arrive as multipart form
// values so that image files can ride along in the same request.
func (pc *ProductController) UpdateProduct(ctx *gin.Context) {
	id, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}

	req, err := bindProductUpdateForm(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	var images []*multipart.FileHeader
	if form, err := ctx.MultipartForm(); err == nil && form != nil {
		images = form.File["images"]
	}

	product, svcErr := pc.productService.UpdateProduct(ctx.Request.Context(), id, req, images)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"product": product})
}

// DeleteProduct handles DELETE /products/:id. The row is archived, not
// removed.
func (pc *ProductController) DeleteProduct(ctx *gin.Context) {
	id, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}

	if svcErr := pc.productService.ArchiveProduct(ctx.Request.Context(), id); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Product archived"})
}

// ExportProducts handles GET /products/export.
func (pc *ProductController) ExportProducts(ctx *gin.Context) {
	entries, svcErr := pc.productService.ExportProducts(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"products": entries})
}

func bindProductUpdateForm(ctx *gin.Context) (*services.ProductUpdateRequest, error) {
	req := &services.ProductUpdateRequest{}

	if name, ok := ctx.GetPostForm("name"); ok {
		req.Name = &name
	}
	if description, ok := ctx.GetPostForm("description"); ok {
		req.Description = &description
	}
	if priceStr, ok := ctx.GetPostForm("price"); ok {
		price, err := decimal.NewFromString(priceStr)
		if err != nil {
			return nil, err
		}
		req.Price = &price
	}
	if discountStr, ok := ctx.GetPostForm("discount"); ok {
		discount, err := strconv.Atoi(discountStr)
		if err != nil {
			return nil, err
		}
		req.Discount = &discount
	}
	return req, nil
}
