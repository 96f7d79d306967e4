package services

import (
	"context"
	"strings"

	"shop-service/models"
	"shop-service/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=150"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the payload for authenticating.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthService defines the interface for account management.
type AuthService interface {
	Register(ctx context.Context, req *RegisterRequest) (*models.User, string, *ServiceError)
	Login(ctx context.Context, req *LoginRequest) (*models.User, string, *ServiceError)
	GetUser(ctx context.Context, id uint) (*models.User, *ServiceError)
}

type authServiceImpl struct {
	users  repository.UserRepository
	tokens *TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(users repository.UserRepository, tokens *TokenService) AuthService {
	return &authServiceImpl{users: users, tokens: tokens}
}

// Register creates a user with a hashed password and logs them straight in,
// returning a session token alongside the account.
func (s *authServiceImpl) Register(ctx context.Context, req *RegisterRequest) (*models.User, string, *ServiceError) {
	if _, err := s.users.FindByUsername(ctx, req.Username); err == nil {
		return nil, "", &ServiceError{StatusCode: 409, Message: "Username already taken"}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		zap.L().Error("Failed to hash password", zap.Error(err))
		return nil, "", &ServiceError{StatusCode: 500, Message: "Failed to create account"}
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
		Role:     models.RoleUser,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "unique") {
			return nil, "", &ServiceError{StatusCode: 409, Message: "Username already taken"}
		}
		zap.L().Error("Failed to create user", zap.Error(err))
		return nil, "", &ServiceError{StatusCode: 500, Message: "Failed to create account"}
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		zap.L().Error("Failed to generate token", zap.Error(err))
		return nil, "", &ServiceError{StatusCode: 500, Message: "Failed to create account"}
	}

	zap.L().Info("User registered", zap.Uint("user_id", user.ID), zap.String("username", user.Username))
	return user, token, nil
}

// Login verifies credentials and returns the user with a session token.
func (s *authServiceImpl) Login(ctx context.Context, req *LoginRequest) (*models.User, string, *ServiceError) {
	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		if isNotFound(err) {
			return nil, "", &ServiceError{StatusCode: 401, Message: "Invalid credentials"}
		}
		zap.L().Error("Failed to look up user", zap.Error(err))
		return nil, "", &ServiceError{StatusCode: 500, Message: "Failed to log in"}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, "", &ServiceError{StatusCode: 401, Message: "Invalid credentials"}
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		zap.L().Error("Failed to generate token", zap.Error(err))
		return nil, "", &ServiceError{StatusCode: 500, Message: "Failed to log in"}
	}

	return user, token, nil
}

// GetUser returns the account behind an authenticated session.
func (s *authServiceImpl) GetUser(ctx context.Context, id uint) (*models.User, *ServiceError) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, &ServiceError{StatusCode: 404, Message: "User not found"}
		}
		zap.L().Error("Failed to fetch user", zap.Uint("user_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch user"}
	}
	return user, nil
}
