package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gerfey/offerhub/pkg/logger"
)

const (
	httpErrorCodeStart   = 400
	clientTimeoutSeconds = 10
	maxErrorBodyBytes    = 1 << 20

	contentTypeJSON = "application/json"
)

// RequestHook вызывается перед каждым запросом и может менять его заголовки.
// Ошибка хука отменяет запрос.
type RequestHook func(req *http.Request) error

// ErrorHook получает каждую транспортную ошибку и каждый ответ 4xx/5xx.
// Подменить или подавить ошибку хук не может: вызывающий код всегда получает исходную.
type ErrorHook func(ctx context.Context, err error)

// Client общий HTTP-клиент приложения. Создаётся один раз при старте и передаётся сервисам.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	logger     logger.Logger

	timeout            time.Duration
	insecureSkipVerify bool

	requestHooks []RequestHook
	errorHooks   []ErrorHook
}

type Option func(c *Client)

func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

func WithInsecureSkipVerify(skip bool) Option {
	return func(c *Client) {
		c.insecureSkipVerify = skip
	}
}

func WithLogger(log logger.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.logger = log
		}
	}
}

func WithRequestHook(hook RequestHook) Option {
	return func(c *Client) {
		c.requestHooks = append(c.requestHooks, hook)
	}
}

func WithErrorHook(hook ErrorHook) Option {
	return func(c *Client) {
		c.errorHooks = append(c.errorHooks, hook)
	}
}

// WithAuth подключает обе стороны AuthInterceptor
func WithAuth(auth *AuthInterceptor) Option {
	return func(c *Client) {
		c.requestHooks = append(c.requestHooks, auth.Request)
		c.errorHooks = append(c.errorHooks, auth.OnError)
	}
}

func NewClient(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrBaseURLRequired
	}

	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: некорректный адрес %q", ErrBaseURLRequired, baseURL)
	}

	c := &Client{
		baseURL:      baseURL,
		logger:       logger.Nop(),
		timeout:      clientTimeoutSeconds * time.Second,
		requestHooks: []RequestHook{RequestIDHook},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = NewHTTPClient(c.timeout, c.insecureSkipVerify)
	}

	return c, nil
}

// NewHTTPClient создаёт транспорт по умолчанию
func NewHTTPClient(timeout time.Duration, insecureSkipVerify bool) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:           http.ProxyFromEnvironment,
			TLSClientConfig: createTLSConfig(insecureSkipVerify),
		},
	}
}

func createTLSConfig(insecureSkipVerify bool) *tls.Config {
	config := &tls.Config{
		MinVersion: tls.VersionTLS12,
	}

	if insecureSkipVerify {
		config.InsecureSkipVerify = true // #nosec G402
	}

	return config
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, out)
}

// Do выполняет запрос и декодирует JSON-ответ в out. Ответы 4xx/5xx возвращаются как *HTTPError.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return err
	}

	for _, hook := range c.requestHooks {
		if errHook := hook(req); errHook != nil {
			return errHook
		}
	}

	c.logger.Debugf("%s %s", method, req.URL.Redacted())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.fail(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= httpErrorCodeStart {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

		return c.fail(ctx, newHTTPError(method, path, resp.StatusCode, resp.Status, data))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil
	}

	if errDecode := json.NewDecoder(resp.Body).Decode(out); errDecode != nil {
		return fmt.Errorf("%w: %w", ErrInvalidResponse, errDecode)
	}

	return nil
}

func (c *Client) newRequest(
	ctx context.Context,
	method, path string,
	query url.Values,
	body any,
) (*http.Request, error) {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, err
	}

	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		jsonData, errMarshal := json.Marshal(body)
		if errMarshal != nil {
			return nil, errMarshal
		}
		reader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", contentTypeJSON)
	req.Header.Set("Accept", contentTypeJSON)

	return req, nil
}

func (c *Client) fail(ctx context.Context, err error) error {
	for _, hook := range c.errorHooks {
		hook(ctx, err)
	}

	return err
}
