package services

import (
	"context"

	"shop-service/models"
	"shop-service/repository"

	"go.uber.org/zap"
)

// ArticleService defines the interface for blog article reads.
type ArticleService interface {
	ListArticles(ctx context.Context) ([]models.Article, *ServiceError)
	GetArticle(ctx context.Context, id uint) (*models.Article, *ServiceError)
}

type articleServiceImpl struct {
	repo repository.ArticleRepository
}

// NewArticleService creates a new ArticleService.
func NewArticleService(repo repository.ArticleRepository) ArticleService {
	return &articleServiceImpl{repo: repo}
}

func (s *articleServiceImpl) ListArticles(ctx context.Context) ([]models.Article, *ServiceError) {
	articles, err := s.repo.FindAll(ctx)
	if err != nil {
		zap.L().Error("Failed to fetch articles", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch articles"}
	}
	return articles, nil
}

func (s *articleServiceImpl) GetArticle(ctx context.Context, id uint) (*models.Article, *ServiceError) {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, &ServiceError{StatusCode: 404, Message: "Article not found"}
		}
		zap.L().Error("Failed to fetch article", zap.Uint("article_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch article"}
	}
	return article, nil
}
