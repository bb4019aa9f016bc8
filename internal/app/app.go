// Package app wires the session and cart stores to the upstream APIs
// and implements the storefront operations the commands call.
package app

import (
	"context"
	"log/slog"

	"vitrine/internal/assets"
	"vitrine/internal/authclient"
	"vitrine/internal/catalogclient"
	"vitrine/internal/sellerclient"
	"vitrine/pkg/cart"
	"vitrine/pkg/catalog"
	"vitrine/pkg/domain"
	"vitrine/pkg/session"
)

// Config holds the collaborators the app is built from. Stores and
// clients are constructed once at startup and passed in.
type Config struct {
	Session  *session.Store
	Cart     *cart.Cart
	Auth     *authclient.Client
	Catalog  *catalogclient.Client
	Seller   *sellerclient.Client
	Uploader assets.Uploader
}

// App is the storefront core.
type App struct {
	session  *session.Store
	cart     *cart.Cart
	auth     *authclient.Client
	catalog  *catalogclient.Client
	seller   *sellerclient.Client
	uploader assets.Uploader
}

// New builds the app.
func New(cfg Config) *App {
	return &App{
		session:  cfg.Session,
		cart:     cfg.Cart,
		auth:     cfg.Auth,
		catalog:  cfg.Catalog,
		seller:   cfg.Seller,
		uploader: cfg.Uploader,
	}
}

// Session exposes the session store.
func (a *App) Session() *session.Store {
	return a.session
}

// Cart exposes the cart store.
func (a *App) Cart() *cart.Cart {
	return a.cart
}

// SignIn authenticates and persists the session.
func (a *App) SignIn(ctx context.Context, email, password string) error {
	if err := a.session.SignIn(ctx, email, password); err != nil {
		slog.Warn("sign in failed", "err", err)
		return classify("sign in", err)
	}
	return nil
}

// SignUp registers a new account. Required fields are validated locally
// before the request fires.
func (a *App) SignUp(ctx context.Context, input authclient.SignUpInput) error {
	if input.Name == "" {
		return &ValidationError{Field: "name", Reason: "required"}
	}
	if input.Email == "" {
		return &ValidationError{Field: "email", Reason: "required"}
	}
	if input.Password == "" {
		return &ValidationError{Field: "password", Reason: "required"}
	}
	if err := a.auth.SignUp(ctx, input); err != nil {
		slog.Warn("sign up failed", "err", err)
		return classify("sign up", err)
	}
	return nil
}

// SignOut clears the session and the cart.
func (a *App) SignOut() error {
	a.cart.Clear()
	return a.session.SignOut()
}

// Products fetches the catalog and applies the optional substring
// query. On failure it returns an empty list together with the
// classified error, so callers can show a notice over an empty screen.
func (a *App) Products(ctx context.Context, query string) ([]domain.Product, error) {
	products, err := a.catalog.Products(ctx, a.session.Token())
	if err != nil {
		slog.Warn("catalog fetch failed", "err", err)
		return []domain.Product{}, classify("fetch catalog", err)
	}
	return catalog.Filter(products, query), nil
}
