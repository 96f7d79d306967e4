package controllers

import (
	"net/http"

	"shop-service/middleware"
	"shop-service/services"

	"github.com/gin-gonic/gin"
)

const tokenCookieMaxAge = 86400

// AuthController handles registration, login and session endpoints.
type AuthController struct {
	authService  services.AuthService
	cookieDomain string
}

// NewAuthController creates a new AuthController.
func NewAuthController(authService services.AuthService, cookieDomain string) *AuthController {
	return &AuthController{authService: authService, cookieDomain: cookieDomain}
}

// Register handles POST /auth/register. A fresh account is logged in
// immediately via the session cookie.
func (ac *AuthController) Register(ctx *gin.Context) {
	var req services.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	user, token, svcErr := ac.authService.Register(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ac.setTokenCookie(ctx, token)
	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

// Login handles POST /auth/login.
func (ac *AuthController) Login(ctx *gin.Context) {
	var req services.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	_, token, svcErr := ac.authService.Login(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ac.setTokenCookie(ctx, token)
	ctx.JSON(http.StatusOK, gin.H{"message": "Logged in"})
}

// Logout handles POST /auth/logout by expiring the session cookie.
func (ac *AuthController) Logout(ctx *gin.Context) {
	ctx.SetCookie("token", "", -1, "/", ac.cookieDomain, false, true)
	ctx.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// AboutMe handles GET /auth/about-me for the authenticated caller.
func (ac *AuthController) AboutMe(ctx *gin.Context) {
	userID, err := middleware.GetUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, svcErr := ac.authService.GetUser(ctx.Request.Context(), userID)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"user": user})
}

func (ac *AuthController) setTokenCookie(ctx *gin.Context, token string) {
	ctx.SetCookie("token", token, tokenCookieMaxAge, "/", ac.cookieDomain, false, true)
}
