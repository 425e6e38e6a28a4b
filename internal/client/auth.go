package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gerfey/offerhub/internal/models"
	"github.com/gerfey/offerhub/internal/storage"
	"github.com/gerfey/offerhub/pkg/logger"
)

const (
	RootPath = "/"

	bearerPrefix = "Bearer "
)

// Navigator выполняет полный переход на страницу приложения
type Navigator interface {
	Navigate(path string)
}

type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) {
	f(path)
}

type noopNavigator struct{}

func (noopNavigator) Navigate(string) {}

// AuthInterceptor подставляет bearer-токен из хранилища и сбрасывает сессию на 401
type AuthInterceptor struct {
	store     storage.Storage
	navigator Navigator
	execCtx   ExecutionContext
	logger    logger.Logger
}

func NewAuthInterceptor(
	store storage.Storage,
	navigator Navigator,
	execCtx ExecutionContext,
	log logger.Logger,
) *AuthInterceptor {
	if navigator == nil {
		navigator = noopNavigator{}
	}

	if log == nil {
		log = logger.Nop()
	}

	return &AuthInterceptor{
		store:     store,
		navigator: navigator,
		execCtx:   execCtx,
		logger:    log,
	}
}

// Request добавляет Authorization, если токен есть. Запрос уходит в любом случае.
func (a *AuthInterceptor) Request(req *http.Request) error {
	if !a.execCtx.IsBrowser() || a.store == nil {
		return nil
	}

	token, err := a.store.Get(req.Context(), storage.TokenKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			a.logger.Warnf("Не удалось прочитать токен: %v", err)
		}

		return nil
	}

	if token != "" {
		req.Header.Set("Authorization", bearerPrefix+token)
	}

	return nil
}

// OnError на 401 в браузерном контексте удаляет токен и профиль и уводит на корень приложения
func (a *AuthInterceptor) OnError(ctx context.Context, err error) {
	if StatusCode(err) != http.StatusUnauthorized || !a.execCtx.IsBrowser() {
		return
	}

	a.logger.Infof("Сервер ответил 401, сессия сброшена")

	if errClear := a.clear(context.WithoutCancel(ctx)); errClear != nil {
		a.logger.Errorf("Ошибка очистки данных авторизации: %v", errClear)
	}

	a.navigator.Navigate(RootPath)
}

// SignIn сохраняет токен и профиль пользователя
func (a *AuthInterceptor) SignIn(ctx context.Context, token string, user *models.User) error {
	if a.store == nil {
		return errors.New("хранилище не настроено")
	}

	if err := a.store.Set(ctx, storage.TokenKey, token); err != nil {
		return fmt.Errorf("ошибка сохранения токена: %w", err)
	}

	if user == nil {
		return a.store.Remove(ctx, storage.UserKey)
	}

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	if errSet := a.store.Set(ctx, storage.UserKey, string(data)); errSet != nil {
		return fmt.Errorf("ошибка сохранения профиля: %w", errSet)
	}

	return nil
}

// Logout удаляет токен и профиль без перехода на другую страницу
func (a *AuthInterceptor) Logout(ctx context.Context) error {
	return a.clear(ctx)
}

// CurrentUser возвращает сохранённый профиль или nil, если пользователь не вошёл
func (a *AuthInterceptor) CurrentUser(ctx context.Context) (*models.User, error) {
	if a.store == nil {
		return nil, nil
	}

	data, err := a.store.Get(ctx, storage.UserKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}

		return nil, err
	}

	var user models.User
	if errUnmarshal := json.Unmarshal([]byte(data), &user); errUnmarshal != nil {
		return nil, fmt.Errorf("ошибка разбора профиля: %w", errUnmarshal)
	}

	return &user, nil
}

func (a *AuthInterceptor) clear(ctx context.Context) error {
	if a.store == nil {
		return nil
	}

	return errors.Join(
		a.store.Remove(ctx, storage.TokenKey),
		a.store.Remove(ctx, storage.UserKey),
	)
}
