package handler

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/souqin/souqin/internal/pkg/database"
	"github.com/souqin/souqin/internal/pkg/middleware"
	"github.com/souqin/souqin/internal/pkg/models"
	"github.com/souqin/souqin/services/auth/handler/http"
)

// Handler coordinates all protocol handlers for the auth service
type Handler struct {
	authHandler    *http.AuthHandler
	profileHandler *http.ProfileHandler
	redisClient    *database.RedisClient
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *http.AuthHandler,
	profileHandler *http.ProfileHandler,
	redisClient *database.RedisClient,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler:    authHandler,
		profileHandler: profileHandler,
		redisClient:    redisClient,
		cfg:            cfg,
	}
}

// GetJWTMiddleware returns the configured JWT middleware for HTTP requests
func (h *Handler) GetJWTMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(h.cfg.JWT.Secret),
		SuccessHandler: func(c echo.Context) {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader != "" && len(authHeader) > 7 && authHeader[:7] == "Bearer " {
				tokenString := authHeader[7:]
				token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
					return []byte(h.cfg.JWT.Secret), nil
				})
				if err == nil && token.Valid {
					if claims, ok := token.Claims.(jwt.MapClaims); ok {
						if userID, exists := claims["user_id"]; exists {
							c.Set("user_id", userID)
						}
						if role, exists := claims["role"]; exists {
							c.Set("role", role)
						}
					}
				}
			}
		},
	})
}

// RegisterRoutes registers all protocol handlers and their routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public verification flow, rate limited per client IP on top of the
	// per-phone resend cooldown
	authGroup := e.Group("/auth", middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RedisClient: h.redisClient.GetClient(),
		Key:         "rate:limit",
		Limit:       30,
		Period:      time.Minute,
	}))
	authGroup.POST("/phone", h.authHandler.SubmitPhone)
	authGroup.POST("/role", h.authHandler.ConfirmRole)
	authGroup.POST("/verify", h.authHandler.VerifyCode)
	authGroup.POST("/resend", h.authHandler.Resend)
	authGroup.POST("/back", h.authHandler.Back)
	authGroup.GET("/session/:phone", h.authHandler.SessionState)

	// Protected routes with JWT middleware
	protected := e.Group("", h.GetJWTMiddleware())
	profileGroup := protected.Group("/profiles")
	profileGroup.GET("/me", h.profileHandler.GetMe)

	// Internal service-to-service routes guarded by API key
	internal := e.Group("/internal", middleware.ValidateAPIKey("profiles-service", "admin-service"))
	internal.GET("/profiles/:id", h.profileHandler.GetByID)
}
