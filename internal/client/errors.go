package client

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gerfey/offerhub/internal/models"
)

var (
	ErrBaseURLRequired = errors.New("не задан базовый адрес API")
	ErrInvalidResponse = errors.New("неверный ответ сервера")
)

// HTTPError ответ сервера со статусом 4xx/5xx
type HTTPError struct {
	Method     string
	Path       string
	StatusCode int
	Status     string
	Body       []byte
	// Envelope заполнен, если тело ответа удалось разобрать как конверт API
	Envelope *models.ErrorResponse
}

func (e *HTTPError) Error() string {
	if e.Envelope != nil && e.Envelope.Message != "" {
		return fmt.Sprintf("ошибка HTTP: %s %s: %s: %s", e.Method, e.Path, e.Status, e.Envelope.Message)
	}

	return fmt.Sprintf("ошибка HTTP: %s %s: %s", e.Method, e.Path, e.Status)
}

func newHTTPError(method, path string, statusCode int, status string, body []byte) *HTTPError {
	httpErr := &HTTPError{
		Method:     method,
		Path:       path,
		StatusCode: statusCode,
		Status:     status,
		Body:       body,
	}

	var envelope models.ErrorResponse
	if len(body) > 0 && json.Unmarshal(body, &envelope) == nil {
		httpErr.Envelope = &envelope
	}

	return httpErr
}

// StatusCode возвращает HTTP-статус ошибки или 0, если ошибка не от сервера
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}

	return 0
}
