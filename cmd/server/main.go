package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gerfey/offerhub/internal/auth"
	"github.com/gerfey/offerhub/pkg/config"
	"github.com/gerfey/offerhub/pkg/logger"
	"github.com/gerfey/offerhub/pkg/stubapi"
)

const (
	version = "v1.0.0"

	shutdownTimeoutSec = 5
	demoUserID         = "demo-user"
)

// Локальный stub API для разработки клиента
func main() {
	log := logger.DefaultLogger()
	log.Infof("Запуск stub API OfferHub версии %s", version)

	cfg, err := config.LoadServerConfig(".")
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	log = logger.NewLogger(os.Stderr, logger.ParseLevel(cfg.Log.Level), "offerhub-stub")

	secret := cfg.Auth.JWTSecret
	if secret == "" {
		key := make([]byte, 32)
		if _, randErr := rand.Read(key); randErr != nil {
			log.Fatalf("Ошибка генерации ключа подписи: %v", randErr)
		}
		secret = hex.EncodeToString(key)
		log.Warnf("auth.jwt_secret не задан, используется случайный ключ")
	}

	tokenManager := auth.NewJWTManager(secret)

	demoToken, err := tokenManager.GenerateToken(demoUserID, "Demo", cfg.Auth.TokenTTL)
	if err != nil {
		log.Fatalf("Ошибка выпуска demo-токена: %v", err)
	}
	log.Infof("Demo-токен для %s: %s", demoUserID, demoToken)

	handler := stubapi.NewHandler(tokenManager, stubapi.SeedStore(), log)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler.InitRoutes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Infof("Сервер запущен на %s", srv.Addr)

		if serverErr := srv.ListenAndServe(); serverErr != nil && !errors.Is(serverErr, http.ErrServerClosed) {
			log.Fatalf("Ошибка запуска сервера: %v", serverErr)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infof("Завершение работы сервера...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeoutSec*time.Second)
	defer cancel()

	if shutdownErr := srv.Shutdown(ctx); shutdownErr != nil {
		log.Errorf("Ошибка при завершении работы сервера: %v", shutdownErr)
	}

	log.Infof("Сервер остановлен")
}
