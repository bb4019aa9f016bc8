package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vitrine/internal/app"
	"vitrine/internal/assets"
	"vitrine/internal/authclient"
	"vitrine/internal/catalogclient"
	"vitrine/internal/config"
	"vitrine/internal/sellerclient"
	"vitrine/internal/util"
	"vitrine/pkg/cart"
	"vitrine/pkg/session"
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "vitrine",
		Short:         "Headless storefront client: catalog, cart, and seller listings",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&configPath, "config", config.ConfigPath, "path to config.yaml")

	root.AddCommand(
		newLoginCmd(&configPath),
		newRegisterCmd(&configPath),
		newLogoutCmd(&configPath),
		newMeCmd(&configPath),
		newProductsCmd(&configPath),
		newCartCmd(&configPath),
		newSellerCmd(&configPath),
	)
	return root
}

// buildApp loads config, initializes logging, and wires the stores and
// clients. Restore runs before the app is handed to a command, so every
// command sees a settled login decision.
func buildApp(configPath string) (*app.App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	util.InitLogger(cfg.LogLevel)

	storage, err := buildStorage(cfg)
	if err != nil {
		return nil, err
	}
	uploader, err := buildUploader(cfg)
	if err != nil {
		return nil, err
	}

	auth := authclient.NewClient(cfg.AuthBaseURL)
	sess := session.NewStore(storage, auth)
	if err := sess.Restore(); err != nil {
		return nil, err
	}

	return app.New(app.Config{
		Session:  sess,
		Cart:     cart.New(),
		Auth:     auth,
		Catalog:  catalogclient.NewClient(cfg.CatalogBaseURL),
		Seller:   sellerclient.NewClient(cfg.SellerBaseURL),
		Uploader: uploader,
	}), nil
}

func buildStorage(cfg config.FileConfig) (session.Storage, error) {
	switch cfg.SessionBackend {
	case config.BackendRedis:
		return session.NewRedisStorage(cfg.RedisAddr, cfg.RedisPassword, "vitrine:"), nil
	case config.BackendGorm:
		return session.NewGormStorage(cfg.SessionDBPath)
	default:
		return session.NewFileStorage(cfg.DataDir)
	}
}

func buildUploader(cfg config.FileConfig) (assets.Uploader, error) {
	if cfg.Uploader == config.UploaderMinio {
		return assets.NewMinioUploader(
			cfg.MinioEndpoint,
			cfg.MinioAccessKey,
			cfg.MinioSecretKey,
			cfg.MinioBucket,
			cfg.MinioFolder,
			cfg.MinioPublicURL,
			cfg.MinioUseSSL,
		)
	}
	return assets.NewCloudinaryUploader("", cfg.CloudinaryCloudName, cfg.CloudinaryUploadPreset, cfg.CloudinaryFolder), nil
}

func requireSession(a *app.App) error {
	if !a.Session().Signed() {
		return fmt.Errorf("%w; run `vitrine login` first", app.ErrNotSignedIn)
	}
	return nil
}
