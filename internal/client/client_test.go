package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gerfey/offerhub/internal/models"
)

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     make(http.Header),
	}
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	testCases := []string{"", "   ", "/api", "localhost"}

	for _, baseURL := range testCases {
		_, err := NewClient(baseURL)
		require.ErrorIs(t, err, ErrBaseURLRequired, baseURL)
	}
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	c, err := NewClient("http://localhost:5000/api/")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000/api", c.BaseURL())
}

func TestClient_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := NewMockHTTPClient(ctrl)

	mockHTTP.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, http.MethodGet, req.Method)
			assert.Equal(t, "/api/offers", req.URL.Path)
			assert.Equal(t, "city=Kazan", req.URL.RawQuery)
			assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
			assert.NotEmpty(t, req.Header.Get(HeaderRequestID))
			assert.Empty(t, req.Header.Get("Authorization"))

			return jsonResponse(http.StatusOK, `{"success":true,"data":{"offers":[{"id":"o1"}]}}`), nil
		})

	c, err := NewClient("http://localhost:5000/api", WithHTTPClient(mockHTTP))
	require.NoError(t, err)

	var resp models.APIResponse[models.OfferBrowseResponse]
	err = c.Get(t.Context(), "/offers", url.Values{"city": {"Kazan"}}, &resp)

	require.NoError(t, err)
	assert.True(t, resp.Success)
	require.Len(t, resp.Data.Offers, 1)
	assert.Equal(t, "o1", resp.Data.Offers[0].ID)
}

func TestClient_PostBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := NewMockHTTPClient(ctrl)

	mockHTTP.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, http.MethodPost, req.Method)
			assert.Equal(t, "/api/saved-offers", req.URL.Path)

			var body models.SaveOfferRequest
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			assert.Equal(t, "abc", body.OfferID)

			return jsonResponse(http.StatusCreated, `{"success":true,"data":null}`), nil
		})

	c, err := NewClient("http://localhost:5000/api", WithHTTPClient(mockHTTP))
	require.NoError(t, err)

	var resp models.APIResponse[any]
	err = c.Post(t.Context(), "/saved-offers", models.SaveOfferRequest{OfferID: "abc"}, &resp)

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Data)
}

func TestClient_PostWithoutBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := NewMockHTTPClient(ctrl)

	mockHTTP.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			assert.Nil(t, req.Body)

			return jsonResponse(http.StatusOK, `{"success":true}`), nil
		})

	c, err := NewClient("http://localhost:5000/api", WithHTTPClient(mockHTTP))
	require.NoError(t, err)

	require.NoError(t, c.Post(t.Context(), "/offers/o1/click", nil, nil))
}

func TestClient_HTTPError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := NewMockHTTPClient(ctrl)

	mockHTTP.EXPECT().
		Do(gomock.Any()).
		Return(jsonResponse(http.StatusNotFound, `{"success":false,"message":"Offer not found"}`), nil)

	var hookErr error
	c, err := NewClient(
		"http://localhost:5000/api",
		WithHTTPClient(mockHTTP),
		WithErrorHook(func(_ context.Context, err error) { hookErr = err }),
	)
	require.NoError(t, err)

	var resp models.APIResponse[models.OfferResponse]
	err = c.Get(t.Context(), "/offers/missing", nil, &resp)

	require.Error(t, err)
	assert.Same(t, hookErr, err)
	assert.Equal(t, http.StatusNotFound, StatusCode(err))

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.MethodGet, httpErr.Method)
	assert.Equal(t, "/offers/missing", httpErr.Path)
	require.NotNil(t, httpErr.Envelope)
	assert.Equal(t, "Offer not found", httpErr.Envelope.Message)
	assert.Contains(t, err.Error(), "Offer not found")
}

func TestClient_TransportErrorUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := NewMockHTTPClient(ctrl)

	mockHTTP.EXPECT().
		Do(gomock.Any()).
		Return(nil, assert.AnError)

	hookCalls := 0
	c, err := NewClient(
		"http://localhost:5000/api",
		WithHTTPClient(mockHTTP),
		WithErrorHook(func(context.Context, error) { hookCalls++ }),
	)
	require.NoError(t, err)

	err = c.Get(t.Context(), "/offers", nil, nil)

	assert.Equal(t, assert.AnError, err)
	assert.Equal(t, 1, hookCalls)
	assert.Zero(t, StatusCode(err))
}

func TestClient_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := NewMockHTTPClient(ctrl)

	mockHTTP.EXPECT().
		Do(gomock.Any()).
		Return(jsonResponse(http.StatusOK, `<html>`), nil)

	c, err := NewClient("http://localhost:5000/api", WithHTTPClient(mockHTTP))
	require.NoError(t, err)

	var resp models.APIResponse[models.OfferResponse]
	err = c.Get(t.Context(), "/offers/o1", nil, &resp)

	require.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_RequestHookError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := NewMockHTTPClient(ctrl)

	hookErr := errors.New("bad request")
	c, err := NewClient(
		"http://localhost:5000/api",
		WithHTTPClient(mockHTTP),
		WithRequestHook(func(*http.Request) error { return hookErr }),
	)
	require.NoError(t, err)

	err = c.Delete(t.Context(), "/saved-offers/o1", nil)

	require.ErrorIs(t, err, hookErr)
}

func TestClient_RequestIDKept(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "fixed-id", r.Header.Get(HeaderRequestID))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c, err := NewClient(
		srv.URL,
		WithRequestHook(func(req *http.Request) error {
			req.Header.Set(HeaderRequestID, "fixed-id")

			return nil
		}),
	)
	require.NoError(t, err)

	// пользовательский хук идёт после RequestIDHook и перезаписывает значение
	require.NoError(t, c.Get(t.Context(), "/ping", nil, nil))
}

func TestClient_RealTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/offers/o1/reviews", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"reviews":[{"id":"r1","offerId":"o1","rating":5}]}}`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL + "/api")
	require.NoError(t, err)

	var resp models.APIResponse[models.ReviewsResponse]
	require.NoError(t, c.Get(t.Context(), "/offers/o1/reviews", nil, &resp))

	require.Len(t, resp.Data.Reviews, 1)
	assert.Equal(t, 5, resp.Data.Reviews[0].Rating)
}
