package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowseParams_Values(t *testing.T) {
	testCases := []struct {
		name   string
		params *BrowseParams
		want   string
	}{
		{name: "nil", params: nil, want: ""},
		{name: "empty", params: &BrowseParams{}, want: ""},
		{
			name:   "all fields",
			params: &BrowseParams{Category: "food", City: "Kazan", Search: "pizza", Page: 2, Limit: 20, SortBy: SortByPriceDesc},
			want:   "category=food&city=Kazan&limit=20&page=2&search=pizza&sortBy=-price",
		},
		{name: "zero page and limit omitted", params: &BrowseParams{City: "Omsk", Page: 0, Limit: -1}, want: "city=Omsk"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.params.Values().Encode())
		})
	}
}

func TestAPIResponse_Err(t *testing.T) {
	ok := &APIResponse[any]{Success: true}
	assert.NoError(t, ok.Err())

	var missing *APIResponse[any]
	assert.NoError(t, missing.Err())

	failed := &APIResponse[any]{Message: "Validation failed", Errors: []string{"offerId is required"}}
	err := failed.Err()
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Validation failed: offerId is required", err.Error())
}

func TestAPIResponse_NullDataOnFailure(t *testing.T) {
	var resp APIResponse[*OfferResponse]
	err := json.Unmarshal([]byte(`{"success":false,"message":"Offer not found","data":null}`), &resp)
	require.NoError(t, err)

	assert.False(t, resp.Success)
	assert.Nil(t, resp.Data)
	assert.Equal(t, "Offer not found", resp.Message)
}
