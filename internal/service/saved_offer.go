package service

import (
	"context"
	"net/url"

	"github.com/gerfey/offerhub/internal/models"
)

// SavedOfferService в отличие от OfferService возвращает конверт целиком:
// ответ 200 с success=false ошибкой не считается, его проверяет вызывающий код.
type SavedOfferService struct {
	api Requester
}

func NewSavedOfferService(api Requester) *SavedOfferService {
	return &SavedOfferService{api: api}
}

func (s *SavedOfferService) GetSavedOffers(ctx context.Context) (*models.APIResponse[models.SavedOffersResponse], error) {
	var resp models.APIResponse[models.SavedOffersResponse]
	if err := s.api.Get(ctx, "/saved-offers", nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (s *SavedOfferService) SaveOffer(ctx context.Context, offerID string) (*models.APIResponse[any], error) {
	var resp models.APIResponse[any]
	if err := s.api.Post(ctx, "/saved-offers", models.SaveOfferRequest{OfferID: offerID}, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (s *SavedOfferService) RemoveSavedOffer(ctx context.Context, offerID string) (*models.APIResponse[any], error) {
	var resp models.APIResponse[any]
	if err := s.api.Delete(ctx, "/saved-offers/"+url.PathEscape(offerID), &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}
