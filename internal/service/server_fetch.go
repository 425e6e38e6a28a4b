package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gerfey/offerhub/internal/client"
	"github.com/gerfey/offerhub/internal/models"
	"github.com/gerfey/offerhub/pkg/config"
	"github.com/gerfey/offerhub/pkg/logger"
)

const (
	DefaultServerBaseURL = config.DefaultServerAPIURL
	DefaultServerLimit   = 10
)

// ServerFetcher обращается к API из серверного контекста в обход общего клиента:
// без токена и без кэша. Любая ошибка логируется и превращается в пустой результат,
// поэтому "данных нет" и "запрос упал" вызывающий код не различает.
type ServerFetcher struct {
	baseURL    string
	httpClient client.HTTPClient
	logger     logger.Logger
}

func NewServerFetcher(baseURL string, httpClient client.HTTPClient, log logger.Logger) *ServerFetcher {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultServerBaseURL
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	if log == nil {
		log = logger.Nop()
	}

	return &ServerFetcher{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     log,
	}
}

// FetchOffers возвращает первые limit офферов каталога или пустой список
func (f *ServerFetcher) FetchOffers(ctx context.Context, limit int) []models.Offer {
	if limit <= 0 {
		limit = DefaultServerLimit
	}

	query := url.Values{"limit": {strconv.Itoa(limit)}}

	var resp models.APIResponse[*models.OfferBrowseResponse]
	if err := f.fetch(ctx, "/offers", query, &resp); err != nil {
		f.logger.Errorf("Ошибка получения офферов: %v", err)

		return []models.Offer{}
	}

	if resp.Data == nil || resp.Data.Offers == nil {
		f.logger.Errorf("Ошибка получения офферов: %v", client.ErrInvalidResponse)

		return []models.Offer{}
	}

	return resp.Data.Offers
}

// FetchOffer возвращает оффер или nil
func (f *ServerFetcher) FetchOffer(ctx context.Context, id string) *models.Offer {
	var resp models.APIResponse[*models.OfferResponse]
	if err := f.fetch(ctx, offerPath(id), nil, &resp); err != nil {
		f.logger.Errorf("Ошибка получения оффера %s: %v", id, err)

		return nil
	}

	if resp.Data == nil {
		f.logger.Errorf("Ошибка получения оффера %s: %v", id, client.ErrInvalidResponse)

		return nil
	}

	return &resp.Data.Offer
}

// FetchOfferReviews возвращает отзывы к офферу или пустой список
func (f *ServerFetcher) FetchOfferReviews(ctx context.Context, offerID string) []models.Review {
	var resp models.APIResponse[*models.ReviewsResponse]
	if err := f.fetch(ctx, offerPath(offerID)+"/reviews", nil, &resp); err != nil {
		f.logger.Errorf("Ошибка получения отзывов к офферу %s: %v", offerID, err)

		return []models.Review{}
	}

	if resp.Data == nil || resp.Data.Reviews == nil {
		f.logger.Errorf("Ошибка получения отзывов к офферу %s: %v", offerID, client.ErrInvalidResponse)

		return []models.Review{}
	}

	return resp.Data.Reviews
}

func (f *ServerFetcher) fetch(ctx context.Context, path string, query url.Values, out any) error {
	u, err := url.Parse(f.baseURL + path)
	if err != nil {
		return err
	}

	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("ошибка HTTP: %s", resp.Status)
	}

	if errDecode := json.NewDecoder(resp.Body).Decode(out); errDecode != nil {
		return fmt.Errorf("%w: %w", client.ErrInvalidResponse, errDecode)
	}

	return nil
}
