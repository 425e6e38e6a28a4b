package stubapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gerfey/offerhub/internal/auth"
	"github.com/gerfey/offerhub/internal/models"
	"github.com/gerfey/offerhub/pkg/logger"
)

const userIDKey = "user_id"

// Handler отдаёт те же эндпоинты, что и настоящий API, из памяти
type Handler struct {
	tokenManager auth.TokenManager
	store        *Store
	logger       logger.Logger
}

func NewHandler(
	tokenManager auth.TokenManager,
	store *Store,
	logger logger.Logger,
) *Handler {
	return &Handler{
		tokenManager: tokenManager,
		store:        store,
		logger:       logger,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(h.loggerMiddleware())

	api := router.Group("/api")
	{
		offers := api.Group("/offers")
		{
			offers.GET("", h.browseOffers)
			offers.GET("/:id", h.getOffer)
			offers.GET("/:id/reviews", h.getOfferReviews)
			offers.POST("/:id/click", h.clickOffer)
		}

		saved := api.Group("/saved-offers", h.authMiddleware())
		{
			saved.GET("", h.getSavedOffers)
			saved.POST("", h.saveOffer)
			saved.DELETE("/:offerId", h.removeSavedOffer)
		}
	}

	return router
}

func (h *Handler) loggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		h.logger.Infof("Request: %s %s", c.Request.Method, c.Request.URL.Path)
		c.Next()
		h.logger.Infof("Response: %d", c.Writer.Status())
	}
}

func (h *Handler) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")

		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(header, bearerPrefix) || len(header) == len(bearerPrefix) {
			fail(c, http.StatusUnauthorized, "Authentication required")

			return
		}

		claims, err := h.tokenManager.ValidateToken(header[len(bearerPrefix):])
		if err != nil {
			fail(c, http.StatusUnauthorized, err.Error())

			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Next()
	}
}

func respond(c *gin.Context, status int, message string, data any) {
	c.JSON(status, models.APIResponse[any]{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func fail(c *gin.Context, status int, message string, errs ...string) {
	c.AbortWithStatusJSON(status, models.ErrorResponse{
		Success: false,
		Message: message,
		Errors:  errs,
	})
}

func getUserID(c *gin.Context) (string, bool) {
	userID, ok := c.Get(userIDKey)
	if !ok {
		return "", false
	}

	id, ok := userID.(string)

	return id, ok
}
