package stubapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gerfey/offerhub/internal/models"
)

func (h *Handler) getSavedOffers(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "Authentication required")

		return
	}

	respond(c, http.StatusOK, "", models.SavedOffersResponse{Offers: h.store.Saved(userID)})
}

func (h *Handler) saveOffer(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "Authentication required")

		return
	}

	var req models.SaveOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Validation failed", "offerId is required")

		return
	}

	err := h.store.Save(userID, req.OfferID)
	switch {
	case errors.Is(err, ErrOfferNotFound):
		fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrAlreadySaved):
		// повторное сохранение отвечает 200 с success=false
		c.JSON(http.StatusOK, models.ErrorResponse{Success: false, Message: err.Error()})
	case err != nil:
		fail(c, http.StatusInternalServerError, err.Error())
	default:
		respond(c, http.StatusCreated, "Offer saved", nil)
	}
}

func (h *Handler) removeSavedOffer(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "Authentication required")

		return
	}

	if err := h.store.Remove(userID, c.Param("offerId")); err != nil {
		fail(c, http.StatusNotFound, err.Error())

		return
	}

	respond(c, http.StatusOK, "Offer removed", nil)
}
