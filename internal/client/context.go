package client

import (
	"fmt"
	"strings"
)

// ExecutionContext определяет, где выполняется клиент. Он фиксируется при сборке
// клиента: в браузерном контексте доступны хранилище токена и навигация,
// в серверном нет.
type ExecutionContext int

const (
	Browser ExecutionContext = iota
	Server
)

func (c ExecutionContext) String() string {
	switch c {
	case Browser:
		return "browser"
	case Server:
		return "server"
	default:
		return "unknown"
	}
}

func (c ExecutionContext) IsBrowser() bool {
	return c == Browser
}

func ParseExecutionContext(s string) (ExecutionContext, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "browser", "":
		return Browser, nil
	case "server":
		return Server, nil
	default:
		return Browser, fmt.Errorf("неизвестный контекст выполнения: %s", s)
	}
}
