package service

import (
	"context"
	"net/url"

	"github.com/gerfey/offerhub/internal/client"
)

//go:generate mockgen -destination=mock_requester.go -package=service github.com/gerfey/offerhub/internal/service Requester

// Requester общий HTTP-клиент с токеном и обработкой 401
type Requester interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
}

var _ Requester = (*client.Client)(nil)
