package sellerclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"vitrine/pkg/catalog"
	"vitrine/pkg/domain"
)

// Client manages a seller's own product listings.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// APIError represents a seller API error response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// NewClient constructs a seller API client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// productPayload is the wire shape for create and update. Price and
// stock are numeric here; parsing from the draft's string fields happens
// before the client is reached.
type productPayload struct {
	Name        string  `json:"name"`
	Category    string  `json:"category,omitempty"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Description string  `json:"description,omitempty"`
	ImageURL    string  `json:"imageUrl"`
}

// MyProducts lists the seller's own products, tolerating both upstream
// response shapes.
func (c *Client) MyProducts(ctx context.Context, token string) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/ws/product/myproducts", nil)
	if err != nil {
		return nil, err
	}
	addAuthHeader(req, token)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return nil, apiError(resp)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return catalog.DecodeProducts(data)
}

// Create posts a new product listing.
func (c *Client) Create(ctx context.Context, token, name, category string, price float64, stock int, description, imageURL string) error {
	payload := productPayload{
		Name:        name,
		Category:    category,
		Price:       price,
		Stock:       stock,
		Description: description,
		ImageURL:    imageURL,
	}
	return c.doJSON(ctx, http.MethodPost, "/ws/product", token, payload)
}

// Update rewrites an existing listing.
func (c *Client) Update(ctx context.Context, token string, id int64, name, category string, price float64, stock int, description, imageURL string) error {
	payload := productPayload{
		Name:        name,
		Category:    category,
		Price:       price,
		Stock:       stock,
		Description: description,
		ImageURL:    imageURL,
	}
	return c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/ws/product/%d", id), token, payload)
}

// Delete removes a listing.
func (c *Client) Delete(ctx context.Context, token string, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/ws/product/%d", id), token, nil)
}

func (c *Client) doJSON(ctx context.Context, method, path, token string, payload any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	addAuthHeader(req, token)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return apiError(resp)
	}
	// Responses are drained so the connection can be reused; callers
	// refetch the list instead of trusting mutation bodies.
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func addAuthHeader(req *http.Request, token string) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func apiError(resp *http.Response) error {
	var errResp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&errResp)
	msg := errResp.Error
	if msg == "" {
		msg = errResp.Message
	}
	if msg == "" {
		msg = resp.Status
	}
	return &APIError{Status: resp.StatusCode, Message: msg}
}
