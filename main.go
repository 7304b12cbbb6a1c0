package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/davlindh/zeppelin-cloud-flight-sub002/api"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/assets"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/config"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/database"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/drafts"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/errs"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/fixtures"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/localstore"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/models"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/services"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/showcase"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/storage"
	"github.com/davlindh/zeppelin-cloud-flight-sub002/submissions"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	ctx := context.Background()
	cfg, err := loadConfig(ctx)
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	setupLogger(cfg)

	resolver := assets.New(cfg.Storage.PublicBaseURL, cfg.Storage.Placeholder)

	var currentDB database.Database
	if cfg.DataSource == "postgres" || cfg.DraftStore == "postgres" {
		log.Info().Msg("Connecting to Supabase database...")
		db, err := database.Open(cfg.Database)
		if err != nil {
			log.Fatal().Err(err).Msg("Error connecting to database")
		}
		currentDB = database.New(db)

		// If generating models, run generation and exit
		if strings.ToLower(os.Getenv("GENERATE_MODELS")) == "true" {
			log.Info().Msg("Generating models and query helpers...")
			if err := models.GenerateModels(db); err != nil {
				log.Fatal().Err(err).Msg("Error generating models")
			}
			return
		}

		// If generating column mismatch report, run report and exit
		if os.Getenv("GENERATE_COLUMN_REPORT") == "true" {
			log.Info().Msg("Generating column mismatch report...")
			models.GenerateColumnMismatchReport(db)
			return
		}

		if os.Getenv("SEED_FIXTURES") == "true" {
			seed, err := openFixtures(cfg.FixturesPath)
			if err != nil {
				log.Fatal().Err(err).Msg("Error loading fixtures")
			}
			if err := models.Migrate(db); err != nil {
				log.Fatal().Err(err).Msg("Error migrating schema")
			}
			if err := currentDB.Seed(ctx, seed.Document()); err != nil {
				log.Fatal().Err(err).Msg("Error seeding fixtures")
			}
			log.Info().Msg("Seeded database from fixtures")
		}
	}

	var local *localstore.Store
	if cfg.DraftStore == "sqlite" || cfg.DataSource == "fixtures" {
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0o755); err != nil {
			log.Fatal().Err(err).Msg("Error creating data directory")
		}
		local, err = localstore.Open(cfg.SQLitePath)
		if err != nil {
			log.Fatal().Err(err).Msg("Error opening local store")
		}
		defer local.Close()
	}

	// Entity store and submission store follow DATA_SOURCE
	var (
		entities   showcase.EntityStore
		subStore   submissions.Store
		admin      api.AdminStore
		health     api.Pinger
		extraCards []showcase.Card
	)
	switch cfg.DataSource {
	case "postgres":
		entities, subStore, admin, health = currentDB, currentDB.SubmissionRepo(), currentDB, currentDB
	case "fixtures":
		fx, err := openFixtures(cfg.FixturesPath)
		if err != nil {
			log.Fatal().Err(err).Msg("Error loading fixtures")
		}
		entities, subStore, admin = fx, local, fixtureAdmin{fixtures: fx, submissions: local}
		extraCards = fx.ExtraCards()
	default:
		log.Fatal().Str("dataSource", cfg.DataSource).Msg("Unsupported DATA_SOURCE. Exiting...")
	}

	// Draft persistence follows DRAFT_STORE
	var persistence drafts.Persistence
	switch cfg.DraftStore {
	case "postgres":
		persistence = currentDB.DraftRepo()
	case "sqlite":
		persistence = local
	case "memory":
		persistence = drafts.NewMemoryPersistence()
	default:
		log.Fatal().Str("draftStore", cfg.DraftStore).Msg("Unsupported DRAFT_STORE. Exiting...")
	}
	draftManager := drafts.NewManager(persistence, drafts.Options{Debounce: cfg.DraftDebounce})

	var files submissions.FileStorage
	if cfg.Storage.Endpoint != "" || cfg.Storage.AccessKeyID != "" {
		s3Storage, err := storage.NewS3Storage(ctx, cfg.Storage, resolver)
		if err != nil {
			log.Fatal().Err(err).Msg("Error configuring object storage")
		}
		files = s3Storage
	} else {
		log.Warn().Msg("No object storage configured, keeping uploads in memory")
		files = storage.NewMemoryStorage(cfg.Storage.UploadBucket, resolver)
	}

	subOpts := []submissions.Option{
		submissions.WithDrafts(draftManager),
		submissions.WithLimits(submissions.Limits{MaxFileBytes: cfg.MaxUploadBytes, MaxFiles: cfg.MaxUploadFiles}),
	}
	if notifier := services.NewNotifier(cfg.Notify); notifier.Enabled() {
		subOpts = append(subOpts, submissions.WithNotifier(notifier))
	}

	errChannel := make(chan error, 2)

	server, err := api.NewServer(api.Dependencies{
		Showcase:        showcase.NewService(entities, resolver, showcase.WithExtraCards(extraCards)),
		Drafts:          draftManager,
		Submissions:     submissions.NewService(subStore, files, subOpts...),
		Admin:           admin,
		Health:          health,
		AdminJWTSecret:  cfg.AdminJWTSecret,
		AcceptedOrigins: cfg.AcceptedOrigins,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing server")
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)

	flushCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	draftManager.FlushAll(flushCtx)
}

// loadConfig parses the environment, overlaid by SSM parameters when a prefix is set.
func loadConfig(ctx context.Context) (config.Config, error) {
	prefix := os.Getenv("SSM_PARAMETER_PREFIX")
	if prefix == "" {
		return config.Load()
	}
	params, err := config.LoadSSMParameters(ctx, prefix)
	if err != nil {
		return config.Config{}, err
	}
	return config.LoadFrom(config.Merge(config.New(), params))
}

func setupLogger(cfg config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

func openFixtures(path string) (*fixtures.Store, error) {
	if path == "" {
		return fixtures.Default()
	}
	return fixtures.Load(path)
}

// fixtureAdmin serves admin listings when the showcase runs from a fixture file.
type fixtureAdmin struct {
	fixtures    *fixtures.Store
	submissions *localstore.Store
}

func (a fixtureAdmin) ListTable(ctx context.Context, table string) (any, error) {
	doc := a.fixtures.Document()
	switch table {
	case "projects":
		return doc.Projects, nil
	case "participants":
		return doc.Participants, nil
	case "sponsors":
		return doc.Sponsors, nil
	case "submissions":
		return a.submissions.ListSubmissions(ctx)
	default:
		return nil, errs.NewNotFoundError(fmt.Sprintf("table %q", table))
	}
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
