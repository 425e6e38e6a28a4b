package stubapi

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/gerfey/offerhub/internal/models"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

var (
	ErrOfferNotFound = errors.New("Offer not found")
	ErrAlreadySaved  = errors.New("Offer already saved")
	ErrNotSaved      = errors.New("Saved offer not found")
)

// Store каталог и сохранённые офферы в памяти
type Store struct {
	mu      sync.RWMutex
	offers  []*models.Offer
	byID    map[string]*models.Offer
	reviews map[string][]models.Review
	saved   map[string][]string
}

func NewStore(offers []models.Offer, reviews []models.Review) *Store {
	s := &Store{
		byID:    make(map[string]*models.Offer, len(offers)),
		reviews: make(map[string][]models.Review),
		saved:   make(map[string][]string),
	}

	for i := range offers {
		offer := offers[i]
		s.offers = append(s.offers, &offer)
		s.byID[offer.ID] = &offer
	}

	for _, review := range reviews {
		s.reviews[review.OfferID] = append(s.reviews[review.OfferID], review)
	}

	for id, list := range s.reviews {
		if offer, ok := s.byID[id]; ok {
			offer.ReviewsCount = len(list)
		}
	}

	return s
}

func (s *Store) Browse(params models.BrowseParams) ([]models.Offer, models.Pagination) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search := strings.ToLower(params.Search)

	matched := make([]models.Offer, 0, len(s.offers))
	for _, offer := range s.offers {
		if params.Category != "" && !strings.EqualFold(offer.Category, params.Category) {
			continue
		}
		if params.City != "" && !strings.EqualFold(offer.City, params.City) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(offer.Title), search) &&
			!strings.Contains(strings.ToLower(offer.Description), search) {
			continue
		}

		matched = append(matched, *offer)
	}

	sortOffers(matched, params.SortBy)

	page, limit := params.Page, params.Limit
	if page <= 0 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	pagination := models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      len(matched),
		TotalPages: (len(matched) + limit - 1) / limit,
	}

	start := (page - 1) * limit
	if start >= len(matched) {
		return []models.Offer{}, pagination
	}

	end := min(start+limit, len(matched))

	return matched[start:end], pagination
}

func sortOffers(offers []models.Offer, sortBy string) {
	switch sortBy {
	case models.SortByPrice:
		sort.SliceStable(offers, func(i, j int) bool { return offers[i].Price < offers[j].Price })
	case models.SortByPriceDesc:
		sort.SliceStable(offers, func(i, j int) bool { return offers[i].Price > offers[j].Price })
	case models.SortByRating:
		sort.SliceStable(offers, func(i, j int) bool { return offers[i].Rating > offers[j].Rating })
	default:
		sort.SliceStable(offers, func(i, j int) bool { return offers[i].CreatedAt.After(offers[j].CreatedAt) })
	}
}

func (s *Store) Offer(id string) (models.Offer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	offer, ok := s.byID[id]
	if !ok {
		return models.Offer{}, ErrOfferNotFound
	}

	return *offer, nil
}

func (s *Store) Reviews(offerID string) ([]models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.byID[offerID]; !ok {
		return nil, ErrOfferNotFound
	}

	reviews := make([]models.Review, len(s.reviews[offerID]))
	copy(reviews, s.reviews[offerID])

	return reviews, nil
}

func (s *Store) Click(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	offer, ok := s.byID[id]
	if !ok {
		return ErrOfferNotFound
	}

	offer.Clicks++

	return nil
}

func (s *Store) Saved(userID string) []models.Offer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	offers := make([]models.Offer, 0, len(s.saved[userID]))
	for _, id := range s.saved[userID] {
		if offer, ok := s.byID[id]; ok {
			offers = append(offers, *offer)
		}
	}

	return offers
}

func (s *Store) Save(userID, offerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[offerID]; !ok {
		return ErrOfferNotFound
	}

	for _, id := range s.saved[userID] {
		if id == offerID {
			return ErrAlreadySaved
		}
	}

	s.saved[userID] = append(s.saved[userID], offerID)

	return nil
}

func (s *Store) Remove(userID, offerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.saved[userID]
	for i, id := range ids {
		if id == offerID {
			s.saved[userID] = append(ids[:i], ids[i+1:]...)

			return nil
		}
	}

	return ErrNotSaved
}
