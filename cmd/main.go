package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/gw-pokedex/docs"
	"github.com/sbilibin2017/gw-pokedex/internal/facades"
	"github.com/sbilibin2017/gw-pokedex/internal/handlers"
	"github.com/sbilibin2017/gw-pokedex/internal/health"
	"github.com/sbilibin2017/gw-pokedex/internal/jwt"
	"github.com/sbilibin2017/gw-pokedex/internal/logger"
	"github.com/sbilibin2017/gw-pokedex/internal/middlewares"
	"github.com/sbilibin2017/gw-pokedex/internal/models"
	"github.com/sbilibin2017/gw-pokedex/internal/repositories"
	"github.com/sbilibin2017/gw-pokedex/internal/services"
	"github.com/sbilibin2017/gw-pokedex/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config is the application configuration, read once at startup.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string
	MediaDir string

	PostgresDSN          string
	PostgresMaxOpenConns int
	PostgresMaxIdleConns int

	JWTSecretKey string
	JWTExp       time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	GRPCPort string
}

// @title gw-pokedex API
// @version 1.0.0
// @description Pokedex REST API with trainers, JWT authentication and roles
// @host localhost:3000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath, healthcheck := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if healthcheck {
		if err := checkHealth(context.Background(), cfg); err != nil {
			log.Fatalf("healthcheck failed: %v", err)
		}
		return
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path
// and whether the process should only check a running instance.
func parseFlags() (string, bool) {
	c := flag.String("c", "config.env", "Path to configuration file")
	h := flag.Bool("healthcheck", false, "Query the gRPC health service of a running instance and exit")
	flag.Parse()
	return *c, *h
}

// parseConfig loads environment variables from a file and returns the
// application, database, JWT, Kafka, and gRPC configuration.
func parseConfig(path string) (config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	var cfg config
	var err error

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "3000")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.MediaDir = getEnv("APP_MEDIA_DIR", "medias")

	// PostgreSQL config
	cfg.PostgresDSN = getEnv("POSTGRES_DSN", "")
	if cfg.PostgresDSN == "" {
		pgPort, err := strconv.Atoi(getEnv("POSTGRES_PORT", "5432"))
		if err != nil {
			return config{}, fmt.Errorf("POSTGRES_PORT: %w", err)
		}
		cfg.PostgresDSN = fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			getEnv("POSTGRES_USER", "user"),
			getEnv("POSTGRES_PASSWORD", "password"),
			getEnv("POSTGRES_HOST", "localhost"),
			pgPort,
			getEnv("POSTGRES_DB", "pokedex"),
		)
	}
	if cfg.PostgresMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return config{}, fmt.Errorf("POSTGRES_MAX_OPEN_CONNS: %w", err)
	}
	if cfg.PostgresMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return config{}, fmt.Errorf("POSTGRES_MAX_IDLE_CONNS: %w", err)
	}

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	jwtExpSecond, err := strconv.Atoi(getEnv("JWT_EXP_SECOND", "0"))
	if err != nil {
		return config{}, fmt.Errorf("JWT_EXP_SECOND: %w", err)
	}
	cfg.JWTExp = time.Duration(jwtExpSecond) * time.Second

	// Kafka config
	for _, broker := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, broker)
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "pokedex-events")

	// gRPC config
	cfg.GRPCPort = getEnv("GRPC_PORT", "")

	return cfg, nil
}

// run initializes the logger, database, Kafka writer, gRPC health server,
// and HTTP server. It sets up routes and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN)
	if err != nil {
		return fmt.Errorf("postgres connection: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PostgresMaxOpenConns)
	db.SetMaxIdleConns(cfg.PostgresMaxIdleConns)

	if err := migrations.Up(ctx, db.DB); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	// Kafka writer, skipped when no brokers are configured
	var writer services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		kw := &kafka.Writer{
			Addr:     kafka.TCP(cfg.KafkaBrokers...),
			Topic:    cfg.KafkaTopic,
			Balancer: &kafka.Hash{},
		}
		writer = kw
		logger.Log.Infow("Kafka publisher enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}
	publisher := services.NewEventPublisher(writer)
	defer publisher.Close()

	tokens := jwt.New(jwt.WithSecretKey(cfg.JWTSecretKey), jwt.WithExpiration(cfg.JWTExp))

	srv := &http.Server{
		Addr:    net.JoinHostPort(cfg.AppHost, cfg.AppPort),
		Handler: newRouter(cfg, db, tokens, publisher),
	}

	errChan := make(chan error, 2)

	// gRPC health server
	var healthSrv *health.Server
	if cfg.GRPCPort != "" {
		lis, err := net.Listen("tcp", net.JoinHostPort(cfg.AppHost, cfg.GRPCPort))
		if err != nil {
			return fmt.Errorf("gRPC listen: %w", err)
		}
		healthSrv = health.NewServer(db)
		if err := healthSrv.Refresh(ctx); err != nil {
			logger.Log.Warnw("database not ready for health service", "error", err)
		}
		go func() {
			if err := healthSrv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
				errChan <- fmt.Errorf("gRPC server failed: %w", err)
			}
		}()
	}

	// Graceful shutdown
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping servers...")
	case serveErr := <-errChan:
		return serveErr
	}

	if healthSrv != nil {
		healthSrv.Shutdown()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter wires repositories, services and handlers into the HTTP routes.
func newRouter(cfg config, db *sqlx.DB, tokens *jwt.JWT, publisher services.Publisher) http.Handler {
	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	pokemonReadRepo := repositories.NewPokemonReadRepository(db, middlewares.GetTxFromContext)
	pokemonWriteRepo := repositories.NewPokemonWriteRepository(db, middlewares.GetTxFromContext)
	trainerReadRepo := repositories.NewTrainerReadRepository(db, middlewares.GetTxFromContext)
	trainerWriteRepo := repositories.NewTrainerWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	pokemonService := services.NewPokemonService(pokemonReadRepo, pokemonWriteRepo, publisher)
	trainerService := services.NewTrainerService(trainerReadRepo, trainerWriteRepo, pokemonReadRepo, publisher)

	auth := middlewares.AuthMiddleware(tokens)
	admin := middlewares.RoleMiddleware(models.RoleAdmin)
	tx := middlewares.TxMiddleware(db)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Get("/", handlers.NewWelcomeHandler())
	r.Handle("/medias/*", http.StripPrefix("/medias/", http.FileServer(http.Dir(cfg.MediaDir))))
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s/swagger/doc.json", net.JoinHostPort(cfg.AppHost, cfg.AppPort))),
	))

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", handlers.NewRegisterHandler(authService))
			r.Post("/login", handlers.NewLoginHandler(authService))
			r.With(auth).Get("/checkUser", handlers.NewCheckUserHandler())
		})

		r.Route("/pkmn", func(r chi.Router) {
			// Public
			r.Get("/types", handlers.NewPokemonTypesHandler(pokemonService))

			r.Group(func(r chi.Router) {
				r.Use(auth)
				r.Get("/search", handlers.NewPokemonSearchHandler(pokemonService))
				r.Get("/", handlers.NewPokemonGetHandler(pokemonService))

				r.Group(func(r chi.Router) {
					r.Use(admin, tx)
					r.Post("/create", handlers.NewPokemonCreateHandler(pokemonService))
					r.Post("/region", handlers.NewRegionUpsertHandler(pokemonService))
					r.Delete("/region", handlers.NewRegionDeleteHandler(pokemonService))
					r.Put("/", handlers.NewPokemonUpdateHandler(pokemonService))
					r.Delete("/", handlers.NewPokemonDeleteHandler(pokemonService))
				})
			})
		})

		r.Route("/trainer", func(r chi.Router) {
			r.Use(auth)
			r.Get("/", handlers.NewTrainerGetHandler(trainerService))

			r.Group(func(r chi.Router) {
				r.Use(tx)
				r.Post("/", handlers.NewTrainerCreateHandler(trainerService))
				r.Put("/", handlers.NewTrainerUpdateHandler(trainerService))
				r.Delete("/", handlers.NewTrainerDeleteHandler(trainerService))
				r.Post("/mark", handlers.NewTrainerMarkHandler(trainerService))
			})
		})
	})

	return r
}

// checkHealth asks the gRPC health service of a running instance for its status.
func checkHealth(ctx context.Context, cfg config) error {
	if cfg.GRPCPort == "" {
		return errors.New("GRPC_PORT is not set")
	}

	conn, err := grpc.NewClient(net.JoinHostPort(cfg.AppHost, cfg.GRPCPort),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	serving, err := facades.NewHealthGRPCFacade(healthpb.NewHealthClient(conn)).IsServing(ctx, health.ServiceName)
	if err != nil {
		return err
	}
	if !serving {
		return errors.New("service is not serving")
	}
	fmt.Println("SERVING")
	return nil
}
