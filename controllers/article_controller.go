package controllers

import (
	"net/http"

	"shop-service/services"

	"github.com/gin-gonic/gin"
)

// ArticleController handles HTTP requests for blog articles.
type ArticleController struct {
	articleService services.ArticleService
}

// NewArticleController creates a new ArticleController.
func NewArticleController(articleService services.ArticleService) *ArticleController {
	return &ArticleController{articleService: articleService}
}

// GetArticles handles GET /articles.
func (ac *ArticleController) GetArticles(ctx *gin.Context) {
	articles, svcErr := ac.articleService.ListArticles(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"articles": articles})
}

// GetArticleByID handles GET /articles/:id.
func (ac *ArticleController) GetArticleByID(ctx *gin.Context) {
	id, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}

	article, svcErr := ac.articleService.GetArticle(ctx.Request.Context(), id)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"article": article})
}
