package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"vitrine/pkg/domain"
)

// PlaceholderImage is used when an upstream record carries no image at all.
const PlaceholderImage = "https://via.placeholder.com/150"

// FallbackTitle is used when neither title, name, brand nor model is present.
const FallbackTitle = "Produto sem nome"

// rawProduct is the union of the product shapes the upstream API has
// served across revisions. Every field is optional.
type rawProduct struct {
	ID             int64    `json:"id"`
	Title          string   `json:"title"`
	Name           string   `json:"name"`
	Brand          string   `json:"brand"`
	Model          string   `json:"model"`
	Price          float64  `json:"price"`
	ConvertedPrice *float64 `json:"convertedPrice"`
	Image          string   `json:"image"`
	ImageURL       string   `json:"imageUrl"`
	Picture        string   `json:"picture"`
	Description    string   `json:"description"`
	Category       string   `json:"category"`
	Stock          int      `json:"stock"`
}

type contentEnvelope struct {
	Content []rawProduct `json:"content"`
}

// DecodeProducts parses an upstream product payload, accepting both the
// flat-array shape and the paginated {"content":[...]} envelope, and
// returns canonical records. Shape detection happens here once; callers
// never see the difference.
func DecodeProducts(data []byte) ([]domain.Product, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("decode products: empty payload")
	}

	var raw []rawProduct
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil, fmt.Errorf("decode product list: %w", err)
		}
	case '{':
		var env contentEnvelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, fmt.Errorf("decode product envelope: %w", err)
		}
		raw = env.Content
	default:
		return nil, fmt.Errorf("decode products: unrecognized payload shape")
	}

	products := make([]domain.Product, 0, len(raw))
	for _, r := range raw {
		products = append(products, normalize(r))
	}
	return products, nil
}

// normalize maps one upstream record to the canonical shape. Missing
// optional fields get defaults; it never fails.
func normalize(r rawProduct) domain.Product {
	title := strings.TrimSpace(r.Title)
	if title == "" {
		title = strings.TrimSpace(r.Name)
	}
	if title == "" {
		title = strings.TrimSpace(strings.TrimSpace(r.Brand) + " " + strings.TrimSpace(r.Model))
	}
	if title == "" {
		title = FallbackTitle
	}

	price := r.Price
	if r.ConvertedPrice != nil {
		price = *r.ConvertedPrice
	}
	if price < 0 {
		price = 0
	}

	image := firstNonEmpty(r.Image, r.ImageURL, r.Picture)
	if image == "" {
		image = PlaceholderImage
	}

	return domain.Product{
		ID:          r.ID,
		Title:       title,
		Price:       price,
		Image:       image,
		Description: r.Description,
		Category:    r.Category,
		Brand:       r.Brand,
		Model:       r.Model,
		Stock:       r.Stock,
	}
}

// Filter returns the products whose title, brand or model contains the
// query, case-insensitively. An empty query returns the input unchanged.
// Linear scan; catalogs are tens of items.
func Filter(products []domain.Product, query string) []domain.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return products
	}
	matched := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), query) ||
			strings.Contains(strings.ToLower(p.Brand), query) ||
			strings.Contains(strings.ToLower(p.Model), query) {
			matched = append(matched, p)
		}
	}
	return matched
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
