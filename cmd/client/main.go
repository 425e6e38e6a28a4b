package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gerfey/offerhub/pkg/config"
	"github.com/gerfey/offerhub/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка загрузки конфигурации: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(os.Stderr, logger.ParseLevel(cfg.Log.Level), "offerhub-client")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, closeApp, err := newApp(ctx, cfg, log, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка инициализации клиента: %v\n", err)
		os.Exit(1)
	}

	runErr := a.run(ctx, os.Args[1:])

	if errClose := closeApp(); errClose != nil {
		log.Warnf("Ошибка закрытия хранилища: %v", errClose)
	}

	if runErr != nil {
		if errors.Is(runErr, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(2)
		}

		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", runErr)
		os.Exit(1)
	}
}
