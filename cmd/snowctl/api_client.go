package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dom/snowseeker/internal/api/handlers"
)

// APIClient handles HTTP communication with the backend
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL + "/api/v1",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ListResorts fetches the filtered, sorted resort list
func (c *APIClient) ListResorts(query, sort string) (*handlers.ResortsResponse, error) {
	params := url.Values{}
	if query != "" {
		params.Set("q", query)
	}
	if sort != "" {
		params.Set("sort", sort)
	}

	path := "/resorts"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var result handlers.ResortsResponse
	if err := c.do(http.MethodGet, path, &result); err != nil {
		return nil, fmt.Errorf("list resorts: %w", err)
	}
	return &result, nil
}

// GetResort fetches one resort with its labels and facility details
func (c *APIClient) GetResort(id string) (*handlers.ResortDetailResponse, error) {
	var result handlers.ResortDetailResponse
	if err := c.do(http.MethodGet, "/resorts/"+url.PathEscape(id), &result); err != nil {
		return nil, fmt.Errorf("get resort: %w", err)
	}
	return &result, nil
}

// SetFavorite marks or unmarks a resort
func (c *APIClient) SetFavorite(id string, favorite bool) (*handlers.FavoriteStatusResponse, error) {
	method := http.MethodPut
	if !favorite {
		method = http.MethodDelete
	}

	var result handlers.FavoriteStatusResponse
	if err := c.do(method, "/resorts/"+url.PathEscape(id)+"/favorite", &result); err != nil {
		return nil, fmt.Errorf("set favorite: %w", err)
	}
	return &result, nil
}

// ListFavorites fetches the favorite ids and their catalog entries
func (c *APIClient) ListFavorites() (*handlers.FavoritesResponse, error) {
	var result handlers.FavoritesResponse
	if err := c.do(http.MethodGet, "/favorites", &result); err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return &result, nil
}

func (c *APIClient) do(method, path string, out interface{}) error {
	req, err := http.NewRequest(method, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
