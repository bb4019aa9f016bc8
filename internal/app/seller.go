package app

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"vitrine/pkg/catalog"
	"vitrine/pkg/domain"
)

// lowStockThreshold marks listings running out.
const lowStockThreshold = 5

// DashboardData is everything the seller overview renders.
type DashboardData struct {
	Stats     domain.SellerStats
	Inventory []domain.Product
	Catalog   []domain.Product
}

// SellerProducts lists the signed-in seller's own products. On failure
// it returns an empty list plus the classified error; nothing is thrown
// past this boundary.
func (a *App) SellerProducts(ctx context.Context) ([]domain.Product, error) {
	if !a.session.Signed() {
		return []domain.Product{}, ErrNotSignedIn
	}
	products, err := a.seller.MyProducts(ctx, a.session.Token())
	if err != nil {
		slog.Warn("seller list failed", "err", err)
		return []domain.Product{}, classify("list products", err)
	}
	return products, nil
}

// CreateProduct validates the draft locally, posts it, then refetches
// and returns the fresh list. The refetch is awaited and strictly
// sequenced after the mutation.
func (a *App) CreateProduct(ctx context.Context, draft domain.ProductDraft) ([]domain.Product, error) {
	if !a.session.Signed() {
		return nil, ErrNotSignedIn
	}
	price, stock, err := validateDraft(draft, true)
	if err != nil {
		return nil, err
	}
	err = a.seller.Create(ctx, a.session.Token(), draft.Name, draft.Category, price, stock, draft.Description, draft.ImageURL)
	if err != nil {
		slog.Warn("create product failed", "err", err)
		return nil, classify("create product", err)
	}
	return a.SellerProducts(ctx)
}

// UpdateProduct validates and rewrites an existing listing, then
// refetches the list. The image URL may stay empty on update; the
// server keeps the stored one.
func (a *App) UpdateProduct(ctx context.Context, id int64, draft domain.ProductDraft) ([]domain.Product, error) {
	if !a.session.Signed() {
		return nil, ErrNotSignedIn
	}
	price, stock, err := validateDraft(draft, false)
	if err != nil {
		return nil, err
	}
	err = a.seller.Update(ctx, a.session.Token(), id, draft.Name, draft.Category, price, stock, draft.Description, draft.ImageURL)
	if err != nil {
		slog.Warn("update product failed", "err", err)
		return nil, classify("update product", err)
	}
	return a.SellerProducts(ctx)
}

// DeleteProduct asks confirm before any network call; a refusal returns
// ErrDeleteDeclined without touching the wire. On success the fresh
// list is refetched and returned.
func (a *App) DeleteProduct(ctx context.Context, id int64, confirm func() bool) ([]domain.Product, error) {
	if !a.session.Signed() {
		return nil, ErrNotSignedIn
	}
	if confirm == nil || !confirm() {
		return nil, ErrDeleteDeclined
	}
	if err := a.seller.Delete(ctx, a.session.Token(), id); err != nil {
		slog.Warn("delete product failed", "err", err)
		return nil, classify("delete product", err)
	}
	return a.SellerProducts(ctx)
}

// UploadProductImage sends the local file to the asset host once and
// returns the durable URL. Drafts stay unpublishable until this URL is
// filled in.
func (a *App) UploadProductImage(ctx context.Context, localPath string) (string, error) {
	if strings.TrimSpace(localPath) == "" {
		return "", &ValidationError{Field: "image", Reason: "required"}
	}
	url, err := a.uploader.Upload(ctx, localPath)
	if err != nil {
		slog.Warn("image upload failed", "err", err)
		return "", err
	}
	return url, nil
}

// FilterInventory narrows a product list by a name search and a
// category. The search is the catalog's case-insensitive substring
// match; the category must match exactly (empty means all). Both must
// hold for an item to stay.
func FilterInventory(products []domain.Product, search, category string) []domain.Product {
	matched := catalog.Filter(products, search)
	category = strings.TrimSpace(category)
	if category == "" {
		return matched
	}
	filtered := make([]domain.Product, 0, len(matched))
	for _, p := range matched {
		if strings.EqualFold(p.Category, category) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Dashboard fetches the seller's inventory and the public catalog
// concurrently and computes the overview stats. The two fetches are
// independent; neither waits on the other. Stats always cover the whole
// inventory; search and category only narrow the listed items.
func (a *App) Dashboard(ctx context.Context, search, category string) (DashboardData, error) {
	if !a.session.Signed() {
		return DashboardData{}, ErrNotSignedIn
	}

	var data DashboardData
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		inventory, err := a.seller.MyProducts(gctx, a.session.Token())
		if err != nil {
			return classify("list products", err)
		}
		data.Inventory = inventory
		return nil
	})
	g.Go(func() error {
		products, err := a.catalog.Products(gctx, a.session.Token())
		if err != nil {
			return classify("fetch catalog", err)
		}
		data.Catalog = products
		return nil
	})
	if err := g.Wait(); err != nil {
		slog.Warn("dashboard fetch failed", "err", err)
		return DashboardData{}, err
	}

	data.Stats = computeStats(data.Inventory)
	data.Inventory = FilterInventory(data.Inventory, search, category)
	return data, nil
}

// computeStats mirrors the seller overview: product count, listings
// below the low-stock threshold, and total inventory value.
func computeStats(inventory []domain.Product) domain.SellerStats {
	stats := domain.SellerStats{TotalProducts: len(inventory)}
	for _, p := range inventory {
		if p.Stock < lowStockThreshold {
			stats.LowStock++
		}
		stats.TotalValue += p.Price * float64(p.Stock)
	}
	return stats
}

// validateDraft checks required fields and parses the numeric strings.
// A non-numeric price is a validation failure, never a silent zero.
func validateDraft(draft domain.ProductDraft, requireImage bool) (price float64, stock int, err error) {
	if strings.TrimSpace(draft.Name) == "" {
		return 0, 0, &ValidationError{Field: "name", Reason: "required"}
	}
	rawPrice := strings.TrimSpace(draft.Price)
	if rawPrice == "" {
		return 0, 0, &ValidationError{Field: "price", Reason: "required"}
	}
	price, parseErr := strconv.ParseFloat(rawPrice, 64)
	if parseErr != nil {
		return 0, 0, &ValidationError{Field: "price", Reason: "must be a number"}
	}
	if price <= 0 {
		return 0, 0, &ValidationError{Field: "price", Reason: "must be positive"}
	}
	if rawStock := strings.TrimSpace(draft.Stock); rawStock != "" {
		stock, parseErr = strconv.Atoi(rawStock)
		if parseErr != nil {
			return 0, 0, &ValidationError{Field: "stock", Reason: "must be an integer"}
		}
		if stock < 0 {
			return 0, 0, &ValidationError{Field: "stock", Reason: "must not be negative"}
		}
	}
	if requireImage && strings.TrimSpace(draft.ImageURL) == "" {
		return 0, 0, &ValidationError{Field: "imageUrl", Reason: "upload an image first"}
	}
	return price, stock, nil
}
