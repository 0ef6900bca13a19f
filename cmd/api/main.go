package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"stucode/internal/config"
	pgRepo "stucode/internal/infra/adapter/persistence/postgres"
	"stucode/internal/infra/db"
	"stucode/internal/observability/logging"
	"stucode/internal/resilience/circuitbreaker"
	"stucode/internal/service/credentials"

	accUC "stucode/internal/usecase/account"
	artUC "stucode/internal/usecase/article"
	authUC "stucode/internal/usecase/auth"
	likeUC "stucode/internal/usecase/like"
	userUC "stucode/internal/usecase/user"

	hhttp "stucode/internal/handler/http"
	haccount "stucode/internal/handler/http/account"
	harticle "stucode/internal/handler/http/article"
	hauth "stucode/internal/handler/http/auth"
	hlike "stucode/internal/handler/http/like"
	"stucode/internal/handler/http/requestid"
	huser "stucode/internal/handler/http/user"
	"stucode/internal/observability/tracing"

	_ "stucode/docs" // swagger docs
)

// @title           StuCode API
// @version         1.0
// @description     REST backend for the StuCode content sharing app.
// @description     Manages accounts, users, articles and likes with JWT bearer authentication.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT authentication. Provide the token as "Bearer {token}".

func main() {
	logger := initLogger()

	secCfg := loadSecurityConfig(logger)
	secret := loadJWTSecret(logger, secCfg)

	shutdownTracing := initTracing(logger)
	defer shutdownTracing()

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	version := getVersion()
	handler := setupServer(logger, database, secCfg, secret, version)

	runServer(logger, handler, version)
}

// initLogger initializes the process-wide structured logger.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// loadSecurityConfig reads the security configuration file. The path defaults
// to configs/security.yaml and can be overridden with SECURITY_CONFIG_PATH.
func loadSecurityConfig(logger *slog.Logger) *config.SecurityConfig {
	path := os.Getenv("SECURITY_CONFIG_PATH")
	if path == "" {
		path = "configs/security.yaml"
	}

	cfg, err := config.LoadSecurityConfig(path)
	if err != nil {
		logger.Error("failed to load security configuration",
			slog.String("path", path),
			slog.Any("error", err))
		os.Exit(1)
	}
	return cfg
}

// loadJWTSecret reads and validates the token signing secret.
func loadJWTSecret(logger *slog.Logger, cfg *config.SecurityConfig) []byte {
	envName := cfg.GetJWTSecretEnv()
	secret := os.Getenv(envName)
	if secret == "" {
		logger.Error("JWT secret must be set", slog.String("env", envName))
		os.Exit(1)
	}
	// Enforce at least 256 bits of secret material for HS256.
	if len(secret) < 32 {
		logger.Error("JWT secret must be at least 32 characters", slog.String("env", envName))
		os.Exit(1)
	}
	return []byte(secret)
}

// initTracing installs the global tracer provider and W3C trace propagation.
func initTracing(logger *slog.Logger) func() {
	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName("stucode"),
		semconv.ServiceVersion(getVersion()),
	))
	if err != nil {
		logger.Warn("failed to build tracing resource", slog.Any("error", err))
		res = resource.Default()
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithResource(res))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{}))

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			logger.Error("tracer provider shutdown failed", slog.Any("error", err))
		}
	}
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer wires repositories, services and handlers into the HTTP handler.
func setupServer(logger *slog.Logger, database *sql.DB, secCfg *config.SecurityConfig, secret []byte, version string) http.Handler {
	// All repository calls go through the circuit breaker so a struggling
	// database sheds load instead of piling up connections.
	breaker := circuitbreaker.NewDBCircuitBreaker(database)

	userRepo := pgRepo.NewUserRepo(breaker)
	articleRepo := pgRepo.NewArticleRepo(breaker)
	likeRepo := pgRepo.NewLikeRepo(breaker)
	accountRepo := pgRepo.NewAccountRepo(breaker)

	hasher := credentials.NewHasher(secCfg.GetBcryptCost())
	tokens := credentials.NewTokenIssuer(secret, secCfg.GetJWTExpiry())

	authSvc := &authUC.Service{Users: userRepo, Hasher: hasher, Tokens: tokens}
	userSvc := &userUC.Service{Repo: userRepo, Hasher: hasher}
	articleSvc := &artUC.Service{Repo: articleRepo, Users: userRepo}
	likeSvc := &likeUC.Service{Repo: likeRepo, Articles: articleRepo, Users: userRepo}
	accountSvc := &accUC.Service{Repo: accountRepo}

	limit, window := secCfg.GetRateLimit()
	authLimiter := hhttp.NewRateLimiter(limit, window)
	authz := hauth.Authz(tokens)

	mux := http.NewServeMux()
	hauth.Register(mux, authSvc, authLimiter)
	huser.Register(mux, userSvc, authz)
	harticle.Register(mux, articleSvc)
	hlike.Register(mux, likeSvc)
	haccount.Register(mux, accountSvc)

	mux.Handle("/health", &hhttp.HealthHandler{DB: database, Version: version})
	mux.Handle("/ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("/live", &hhttp.LiveHandler{})
	mux.Handle("/metrics", hhttp.MetricsHandler())
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	logger.Info("routes registered",
		slog.Int("auth_rate_limit", limit),
		slog.Duration("auth_rate_window", window),
		slog.Any("public_endpoints", secCfg.GetPublicEndpoints()))

	return applyMiddleware(logger, mux)
}

// applyMiddleware wraps the handler with the middleware chain.
// Order (outermost first): CORS, request ID, tracing, recovery, logging,
// input validation, body limit, timeout, metrics.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	corsConfig := hhttp.LoadCORSConfig()
	logger.Info("CORS enabled",
		slog.Any("allowed_origins", corsConfig.AllowedOrigins),
		slog.Any("allowed_methods", corsConfig.AllowedMethods),
		slog.Int("max_age", corsConfig.MaxAge))

	chain := handler
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.Timeout(30 * time.Second)(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain)
	chain = hhttp.InputValidation()(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)
	chain = hhttp.CORS(corsConfig)(chain)

	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
