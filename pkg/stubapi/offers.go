package stubapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gerfey/offerhub/internal/models"
)

func (h *Handler) browseOffers(c *gin.Context) {
	params := models.BrowseParams{
		Category: c.Query("category"),
		City:     c.Query("city"),
		Search:   c.Query("search"),
		SortBy:   c.Query("sortBy"),
	}

	var errs []string
	params.Page, errs = queryInt(c, "page", errs)
	params.Limit, errs = queryInt(c, "limit", errs)

	if len(errs) > 0 {
		fail(c, http.StatusBadRequest, "Validation failed", errs...)

		return
	}

	offers, pagination := h.store.Browse(params)

	respond(c, http.StatusOK, "", models.OfferBrowseResponse{
		Offers:     offers,
		Pagination: pagination,
	})
}

func queryInt(c *gin.Context, name string, errs []string) (int, []string) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return 0, errs
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return 0, append(errs, name+" must be a positive integer")
	}

	return value, errs
}

func (h *Handler) getOffer(c *gin.Context) {
	offer, err := h.store.Offer(c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound, err.Error())

		return
	}

	respond(c, http.StatusOK, "", models.OfferResponse{Offer: offer})
}

func (h *Handler) getOfferReviews(c *gin.Context) {
	reviews, err := h.store.Reviews(c.Param("id"))
	if err != nil {
		fail(c, http.StatusNotFound, err.Error())

		return
	}

	respond(c, http.StatusOK, "", models.ReviewsResponse{Reviews: reviews})
}

func (h *Handler) clickOffer(c *gin.Context) {
	if err := h.store.Click(c.Param("id")); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrOfferNotFound) {
			status = http.StatusNotFound
		}

		fail(c, status, err.Error())

		return
	}

	respond(c, http.StatusOK, "Click recorded", nil)
}
