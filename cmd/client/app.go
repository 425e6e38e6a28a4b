package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/gerfey/offerhub/internal/client"
	"github.com/gerfey/offerhub/internal/models"
	"github.com/gerfey/offerhub/internal/service"
	"github.com/gerfey/offerhub/internal/storage"
	"github.com/gerfey/offerhub/pkg/config"
	"github.com/gerfey/offerhub/pkg/logger"
)

const usage = `usage: offerhub <command> [flags] [args]

commands:
  browse [-category c] [-city c] [-search s] [-page n] [-limit n] [-sort price|-price|rating|newest]
  offer <id>              reviews <id>            click <id>
  saved                   save <id>               unsave <id>
  ssr-offers [-limit n]   ssr-offer <id>          ssr-reviews <id>
  login -token t [-user-id id] [-name n] [-email e]
  logout`

var errUsage = errors.New("неверные аргументы")

type app struct {
	offers  *service.OfferService
	saved   *service.SavedOfferService
	fetcher *service.ServerFetcher
	auth    *client.AuthInterceptor
	log     logger.Logger
	out     io.Writer
}

func newApp(ctx context.Context, cfg *config.Config, log logger.Logger, out io.Writer) (*app, func() error, error) {
	execCtx, err := client.ParseExecutionContext(cfg.Runtime.Context)
	if err != nil {
		return nil, nil, err
	}

	store, closeStore, err := storage.Open(ctx, storage.Options{
		Driver:   cfg.Storage.Driver,
		Path:     cfg.Storage.Path,
		RedisURL: cfg.Storage.RedisURL,
		Prefix:   cfg.Storage.Prefix,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("ошибка открытия хранилища: %w", err)
	}

	navigator := client.NavigatorFunc(func(path string) {
		log.Warnf("Сессия недействительна, переход на %s: выполните login заново", path)
	})

	auth := client.NewAuthInterceptor(store, navigator, execCtx, log)

	apiClient, err := client.NewClient(
		cfg.API.URL,
		client.WithTimeout(cfg.API.Timeout),
		client.WithInsecureSkipVerify(cfg.API.InsecureSkipVerify),
		client.WithLogger(log),
		client.WithAuth(auth),
	)
	if err != nil {
		_ = closeStore()

		return nil, nil, err
	}

	fetcher := service.NewServerFetcher(
		cfg.API.ServerAPIURL(),
		client.NewHTTPClient(cfg.API.Timeout, cfg.API.InsecureSkipVerify),
		log,
	)

	return &app{
		offers:  service.NewOfferService(apiClient),
		saved:   service.NewSavedOfferService(apiClient),
		fetcher: fetcher,
		auth:    auth,
		log:     log,
		out:     out,
	}, closeStore, nil
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	cmd, args := args[0], args[1:]

	switch cmd {
	case "browse":
		return a.browse(ctx, args)
	case "offer":
		return withID(args, func(id string) error {
			resp, err := a.offers.GetOffer(ctx, id)
			if err != nil {
				return err
			}

			return a.print(resp)
		})
	case "reviews":
		return withID(args, func(id string) error {
			resp, err := a.offers.GetOfferReviews(ctx, id)
			if err != nil {
				return err
			}

			return a.print(resp)
		})
	case "click":
		return withID(args, func(id string) error {
			return a.offers.ClickOffer(ctx, id)
		})
	case "saved":
		resp, err := a.saved.GetSavedOffers(ctx)
		if err != nil {
			return err
		}

		return a.print(resp)
	case "save":
		return withID(args, func(id string) error {
			resp, err := a.saved.SaveOffer(ctx, id)
			if err != nil {
				return err
			}

			return a.print(resp)
		})
	case "unsave":
		return withID(args, func(id string) error {
			resp, err := a.saved.RemoveSavedOffer(ctx, id)
			if err != nil {
				return err
			}

			return a.print(resp)
		})
	case "ssr-offers":
		fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		limit := fs.Int("limit", service.DefaultServerLimit, "")
		if err := fs.Parse(args); err != nil {
			return errUsage
		}

		return a.print(a.fetcher.FetchOffers(ctx, *limit))
	case "ssr-offer":
		return withID(args, func(id string) error {
			return a.print(a.fetcher.FetchOffer(ctx, id))
		})
	case "ssr-reviews":
		return withID(args, func(id string) error {
			return a.print(a.fetcher.FetchOfferReviews(ctx, id))
		})
	case "login":
		return a.login(ctx, args)
	case "logout":
		return a.auth.Logout(ctx)
	default:
		return errUsage
	}
}

func (a *app) browse(ctx context.Context, args []string) error {
	var params models.BrowseParams

	fs := flag.NewFlagSet("browse", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&params.Category, "category", "", "")
	fs.StringVar(&params.City, "city", "", "")
	fs.StringVar(&params.Search, "search", "", "")
	fs.IntVar(&params.Page, "page", 0, "")
	fs.IntVar(&params.Limit, "limit", 0, "")
	fs.StringVar(&params.SortBy, "sort", "", "")

	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	resp, err := a.offers.BrowseOffers(ctx, &params)
	if err != nil {
		return err
	}

	return a.print(resp)
}

func (a *app) login(ctx context.Context, args []string) error {
	var (
		token string
		user  models.User
	)

	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&token, "token", "", "")
	fs.StringVar(&user.ID, "user-id", "", "")
	fs.StringVar(&user.Name, "name", "", "")
	fs.StringVar(&user.Email, "email", "", "")

	if err := fs.Parse(args); err != nil || token == "" {
		return errUsage
	}

	var profile *models.User
	if user.ID != "" {
		profile = &user
	}

	if err := a.auth.SignIn(ctx, token, profile); err != nil {
		return err
	}

	a.log.Infof("Токен сохранён")

	return nil
}

func withID(args []string, fn func(id string) error) error {
	if len(args) != 1 || args[0] == "" {
		return errUsage
	}

	return fn(args[0])
}

func (a *app) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
