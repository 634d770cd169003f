package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	authAPI "medshare/internal/api/auth"
	contactAPI "medshare/internal/api/contact"
	healthAPI "medshare/internal/api/health"
	medicalAPI "medshare/internal/api/medical"
	"medshare/internal/api/middleware"
	authMW "medshare/internal/api/middleware/auth"
	loggerMW "medshare/internal/api/middleware/logger"
	profileAPI "medshare/internal/api/profile"
	publicAPI "medshare/internal/api/public"
	authsvc "medshare/internal/auth"
	"medshare/internal/config"
	"medshare/internal/crypto"
	"medshare/internal/domain/account"
	"medshare/internal/domain/contact"
	"medshare/internal/domain/medical"
	"medshare/internal/domain/public"
	"medshare/internal/domain/token"
	"medshare/internal/infrastructure/storage/postgres"
	"medshare/internal/notify"
)

type Handlers struct {
	Health  *healthAPI.Handler
	Auth    *authAPI.Handler
	Profile *profileAPI.Handler
	Medical *medicalAPI.Handler
	Contact *contactAPI.Handler
	Public  *publicAPI.Handler
}

// New builds the chi mux with every operation registered through huma.
func New(cfg *config.Config, storage *postgres.Storage, cipher *crypto.Cipher, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	humaConfig := huma.DefaultConfig("MedShare API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, humaConfig)

	h := handlers(cfg, storage, cipher, log)
	h.Health.SetupRoutes(API)
	h.Auth.SetupRoutes(API)
	h.Profile.SetupRoutes(API)
	h.Medical.SetupRoutes(API)
	h.Contact.SetupRoutes(API)
	h.Public.SetupRoutes(API)

	return mux
}

func handlers(cfg *config.Config, storage *postgres.Storage, cipher *crypto.Cipher, log *slog.Logger) *Handlers {
	pool := storage.Pool()

	accountRepo := postgres.NewAccountRepository(pool, log)
	medicalRepo := postgres.NewMedicalRepository(pool, log)
	contactRepo := postgres.NewContactRepository(pool, log)
	tokenRepo := postgres.NewTokenRepository(pool, log)

	mailer := notify.NewLogMailer(log)
	credential := authsvc.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	accountService := account.NewService(accountRepo, mailer, log)
	medicalService := medical.NewService(medicalRepo, cipher, log)
	contactService := contact.NewService(contactRepo, log)
	tokenService := token.NewService(tokenRepo, accountRepo, mailer, cfg.Server.PublicBaseURL, log)
	publicService := public.NewService(accountRepo, medicalService, contactService, log)

	guard := authMW.New(credential, accountRepo, log)
	requestLog := loggerMW.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(requestLog.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	middlewares.Add(requestLog.Middleware())
	authHandler := authAPI.NewHandler(accountService, tokenService, credential, log, middlewares.GetAllAndClear())

	middlewares.Add(requestLog.Middleware())
	middlewares.Add(guard.Middleware())
	profileHandler := profileAPI.NewHandler(accountService, cfg.Server.PublicBaseURL, log, middlewares.GetAllAndClear())

	middlewares.Add(requestLog.Middleware())
	middlewares.Add(guard.Middleware())
	medicalHandler := medicalAPI.NewHandler(medicalService, log, middlewares.GetAllAndClear())

	middlewares.Add(requestLog.Middleware())
	middlewares.Add(guard.Middleware())
	contactHandler := contactAPI.NewHandler(contactService, log, middlewares.GetAllAndClear())

	middlewares.Add(requestLog.Middleware())
	publicHandler := publicAPI.NewHandler(publicService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:  healthHandler,
		Auth:    authHandler,
		Profile: profileHandler,
		Medical: medicalHandler,
		Contact: contactHandler,
		Public:  publicHandler,
	}
}
