package stubapi

import (
	"time"

	"github.com/gerfey/offerhub/internal/models"
)

// SeedStore каталог для локальной разработки
func SeedStore() *Store {
	base := time.Date(2025, time.November, 1, 10, 0, 0, 0, time.UTC)

	offers := []models.Offer{
		{
			ID: "spa-day", Title: "Spa day for two", Description: "Sauna, pool and massage",
			Category: "wellness", City: "Kazan", Price: 4900, Currency: "RUB", Rating: 4.8,
			CreatedAt: base,
		},
		{
			ID: "pizza-class", Title: "Pizza master class", Description: "Cook three pizzas with a chef",
			Category: "food", City: "Moscow", Price: 2500, Currency: "RUB", Rating: 4.5,
			CreatedAt: base.Add(24 * time.Hour),
		},
		{
			ID: "kayak-tour", Title: "Evening kayak tour", Description: "Two hours on the river at sunset",
			Category: "outdoor", City: "Saint Petersburg", Price: 3200, Currency: "RUB", Rating: 4.9,
			CreatedAt: base.Add(48 * time.Hour),
		},
		{
			ID: "sushi-set", Title: "Sushi set -30%", Description: "Forty pieces with delivery",
			Category: "food", City: "Kazan", Price: 1900, Currency: "RUB", Rating: 4.2,
			CreatedAt: base.Add(72 * time.Hour),
		},
	}

	reviews := []models.Review{
		{ID: "r1", OfferID: "spa-day", UserName: "Anna", Rating: 5, Comment: "Great pool", CreatedAt: base.Add(96 * time.Hour)},
		{ID: "r2", OfferID: "spa-day", UserName: "Ilya", Rating: 4, Comment: "Crowded on Sunday", CreatedAt: base.Add(120 * time.Hour)},
		{ID: "r3", OfferID: "kayak-tour", UserName: "Olga", Rating: 5, Comment: "Beautiful views", CreatedAt: base.Add(100 * time.Hour)},
	}

	return NewStore(offers, reviews)
}
