package app

import (
	"net/http"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/intechds/storefront/internal/adapters/httpserver"
	"github.com/intechds/storefront/internal/adapters/kvstore"
	"github.com/intechds/storefront/internal/adapters/repo/kv"
	"github.com/intechds/storefront/internal/adapters/scraper"
	"github.com/intechds/storefront/internal/adapters/storage/localfs"
	"github.com/intechds/storefront/internal/config"
	"github.com/intechds/storefront/internal/domain"
	"github.com/intechds/storefront/internal/usecase"
)

type App struct {
	Store    domain.KVStore
	Catalog  *usecase.CatalogUC
	Orders   *usecase.OrderUC
	Quotes   *usecase.QuoteUC
	Reviews  *usecase.ReviewUC
	Auth     *usecase.AuthUC
	Users    domain.UserRepo
	Settings domain.SettingsRepo
	About    domain.AboutRepo
	Services domain.ServicesRepo
	Storage  domain.FileStorage

	cfg *config.Config
}

func NewApp(cfg *config.Config) (*App, error) {
	var store domain.KVStore
	if cfg.KVRestURL != "" {
		store = kvstore.NewUpstash(cfg.KVRestURL, cfg.KVRestToken)
	} else {
		log.Warn().Msg("KV_REST_API_URL not set, using in-memory store; data will not survive a restart")
		store = kvstore.NewMemory()
	}

	if err := os.MkdirAll(cfg.StorageDir, 0o755); err != nil {
		return nil, err
	}

	a := &App{
		Store:    store,
		Users:    kv.NewUserRepo(store),
		Settings: kv.NewSettingsRepo(store),
		About:    kv.NewAboutRepo(store),
		Services: kv.NewServicesRepo(store),
		Storage:  localfs.New(cfg.StorageDir),
		cfg:      cfg,
	}
	a.Catalog = &usecase.CatalogUC{Products: kv.NewProductRepo(store)}
	a.Orders = &usecase.OrderUC{Orders: kv.NewOrderRepo(store)}
	a.Quotes = &usecase.QuoteUC{Quotes: kv.NewQuoteRepo(store)}
	a.Reviews = &usecase.ReviewUC{Reviews: kv.NewReviewRepo(store)}
	a.Auth = &usecase.AuthUC{Users: a.Users, AdminUser: cfg.AdminUser, AdminPass: cfg.AdminPass}
	return a, nil
}

func (a *App) HTTPHandler() http.Handler {
	notifier := &httpserver.OrderNotifier{
		Host: a.cfg.SMTPHost,
		Port: a.cfg.SMTPPort,
		User: a.cfg.SMTPUser,
		Pass: a.cfg.SMTPPass,
		To:   a.cfg.OrderNotifyTo,
	}
	return httpserver.New(a.Catalog, a.Orders, a.Quotes, a.Reviews, a.Auth,
		a.Users, a.Settings, a.About, a.Services, a.Storage,
		scraper.NewImageScraper(), notifier, a.cfg.StorageDir)
}
