package service

import (
	"context"
	"net/url"

	"github.com/gerfey/offerhub/internal/models"
)

// OfferService работает с каталогом через общий клиент.
// Ошибки транспорта и статусы 4xx/5xx возвращаются вызывающему коду как есть.
type OfferService struct {
	api Requester
}

func NewOfferService(api Requester) *OfferService {
	return &OfferService{api: api}
}

func (s *OfferService) BrowseOffers(ctx context.Context, params *models.BrowseParams) (*models.OfferBrowseResponse, error) {
	var resp models.APIResponse[models.OfferBrowseResponse]
	if err := s.api.Get(ctx, "/offers", params.Values(), &resp); err != nil {
		return nil, err
	}

	return &resp.Data, nil
}

func (s *OfferService) GetOffer(ctx context.Context, id string) (*models.OfferResponse, error) {
	var resp models.APIResponse[models.OfferResponse]
	if err := s.api.Get(ctx, offerPath(id), nil, &resp); err != nil {
		return nil, err
	}

	return &resp.Data, nil
}

func (s *OfferService) GetOfferReviews(ctx context.Context, offerID string) (*models.ReviewsResponse, error) {
	var resp models.APIResponse[models.ReviewsResponse]
	if err := s.api.Get(ctx, offerPath(offerID)+"/reviews", nil, &resp); err != nil {
		return nil, err
	}

	return &resp.Data, nil
}

// ClickOffer регистрирует переход по офферу, тело ответа не нужно
func (s *OfferService) ClickOffer(ctx context.Context, id string) error {
	return s.api.Post(ctx, offerPath(id)+"/click", nil, nil)
}

func offerPath(id string) string {
	return "/offers/" + url.PathEscape(id)
}
