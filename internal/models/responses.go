package models

import (
	"fmt"
	"strings"
)

// APIResponse конверт, в который API заворачивает каждый ответ.
// При success=true поле data заполнено, при success=false его нет.
type APIResponse[T any] struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Errors  []string `json:"errors,omitempty"`
	Data    T        `json:"data"`
}

// Err превращает неуспешный конверт в ошибку. Сервисы его не вызывают,
// проверка success остаётся за вызывающим кодом.
func (r *APIResponse[T]) Err() error {
	if r == nil || r.Success {
		return nil
	}

	return &APIError{Message: r.Message, Errors: r.Errors}
}

type APIError struct {
	Message string
	Errors  []string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "запрос не выполнен"
	}

	if len(e.Errors) == 0 {
		return msg
	}

	return fmt.Sprintf("%s: %s", msg, strings.Join(e.Errors, "; "))
}

type OfferBrowseResponse struct {
	Offers     []Offer    `json:"offers"`
	Pagination Pagination `json:"pagination"`
}

type OfferResponse struct {
	Offer Offer `json:"offer"`
}

type ReviewsResponse struct {
	Reviews []Review `json:"reviews"`
}

type SavedOffersResponse struct {
	Offers []Offer `json:"offers"`
}

type SaveOfferRequest struct {
	OfferID string `json:"offerId" binding:"required"`
}

// ErrorResponse тело ошибки, data в нём всегда null
type ErrorResponse = APIResponse[any]
