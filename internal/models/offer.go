package models

import (
	"net/url"
	"strconv"
	"time"
)

type Offer struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Category     string    `json:"category,omitempty"`
	City         string    `json:"city,omitempty"`
	Price        float64   `json:"price"`
	Currency     string    `json:"currency,omitempty"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	Rating       float64   `json:"rating"`
	ReviewsCount int       `json:"reviewsCount"`
	Clicks       int64     `json:"clicks"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Review struct {
	ID        string    `json:"id"`
	OfferID   string    `json:"offerId"`
	UserID    string    `json:"userId,omitempty"`
	UserName  string    `json:"userName,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Порядок сортировки каталога
const (
	SortByPrice     = "price"
	SortByPriceDesc = "-price"
	SortByRating    = "rating"
	SortByNewest    = "newest"
)

// BrowseParams задаёт фильтры каталога. Пустые поля в запрос не попадают.
type BrowseParams struct {
	Category string
	City     string
	Search   string
	Page     int
	Limit    int
	SortBy   string
}

func (p *BrowseParams) Values() url.Values {
	values := url.Values{}
	if p == nil {
		return values
	}

	if p.Category != "" {
		values.Set("category", p.Category)
	}
	if p.City != "" {
		values.Set("city", p.City)
	}
	if p.Search != "" {
		values.Set("search", p.Search)
	}
	if p.Page > 0 {
		values.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		values.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.SortBy != "" {
		values.Set("sortBy", p.SortBy)
	}

	return values
}
