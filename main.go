package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	api "github.com/rpupo63/sleeklegal-backend/api"
	"github.com/rpupo63/sleeklegal-backend/config"
	"github.com/rpupo63/sleeklegal-backend/content"
	"github.com/rpupo63/sleeklegal-backend/database"
	"github.com/rpupo63/sleeklegal-backend/errs"
	"github.com/rpupo63/sleeklegal-backend/models"
	"github.com/rpupo63/sleeklegal-backend/services"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	cfg := config.New()
	setupLogging(cfg)

	ctx := context.Background()
	if prefix := config.GetString(cfg, "CONFIG_SSM_PREFIX", ""); prefix != "" {
		cfg = loadParameterStore(ctx, cfg, prefix)
	}

	db := openDatabase(cfg)
	if db != nil {
		if config.GetBool(cfg, "GENERATE_MODELS", false) {
			log.Info().Msg("Generating models and query helpers...")
			if err := models.GenerateModels(db, config.GetString(cfg, "GENERATED_OUT_PATH", "./generated")); err != nil {
				log.Fatal().Err(err).Msg("model generation failed")
			}
			return
		}
		if config.GetBool(cfg, "AUTO_MIGRATE", false) {
			if err := models.Migrate(db); err != nil {
				log.Fatal().Err(err).Msg("migration failed")
			}
		}
	}
	store := database.New(db)
	defer store.Close()

	feed := services.NewFeed(config.GetInt(cfg, "NOTIFICATION_FEED_SIZE", 50))
	opts := []content.Option{
		content.WithNotifier(services.FanOut{services.NewLogNotifier(log.Logger), feed}),
		content.WithEmptyPolicy(content.ParseEmptyPolicy(config.GetString(cfg, "EMPTY_COLLECTION_POLICY", "seed"))),
	}
	attorneys := content.NewAttorneys(store.AttorneyRepo(), opts...)
	blogPosts := content.NewBlogPosts(store.BlogPostRepo(), opts...)
	testimonials := content.NewTestimonials(opts...)
	defer attorneys.Close()
	defer blogPosts.Close()
	defer testimonials.Close()

	warmUp(ctx, config.GetDuration(cfg, "WARMUP_TIMEOUT_SECONDS", 20*time.Second), attorneys, blogPosts, testimonials)

	server, err := api.NewServer(cfg, api.Dependencies{
		Attorneys:    attorneys,
		BlogPosts:    blogPosts,
		Testimonials: testimonials,
		Contact:      newContactService(cfg),
		Images:       newImageStore(ctx, cfg),
		Feed:         feed,
		Backend:      store,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing server")
	}

	// buffered so the server goroutine can still report ErrServerClosed after shutdown
	errChannel := make(chan error, 2)

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(config.GetDuration(cfg, "SHUTDOWN_TIMEOUT_SECONDS", 30*time.Second))
}

func setupLogging(cfg map[string]string) {
	level, err := zerolog.ParseLevel(config.GetString(cfg, "LOG_LEVEL", "info"))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if config.GetString(cfg, "LOG_FORMAT", "json") == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

// loadParameterStore overlays SSM parameters on the environment. Failure
// leaves the environment as it was.
func loadParameterStore(ctx context.Context, cfg map[string]string, prefix string) map[string]string {
	client, err := config.NewParameterStore(ctx, config.GetString(cfg, "AWS_REGION", ""))
	if err != nil {
		log.Error().Err(err).Msg("Parameter store unavailable, using environment only")
		return cfg
	}
	overlay, err := config.LoadSSM(ctx, client, prefix)
	if err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("Failed to read parameter store, using environment only")
		return cfg
	}
	log.Info().Int("count", len(overlay)).Str("prefix", prefix).Msg("Loaded parameters")
	return config.Merge(cfg, overlay)
}

// openDatabase returns nil when the backend is not configured or cannot be
// opened. The site then serves its bundled content.
func openDatabase(cfg map[string]string) *gorm.DB {
	db, err := database.Open(database.ConnectionConfigFromEnv(cfg))
	switch {
	case errs.IsConfigMissing(err):
		log.Warn().Msg("Database not configured, serving bundled content")
		return nil
	case err != nil:
		log.Error().Err(err).Msg("Error connecting to database, serving bundled content")
		return nil
	}
	log.Info().Msg("Database connection configured")
	return db
}

type refresher interface {
	Name() string
	Refresh(ctx context.Context) error
}

// warmUp loads every collection concurrently. A failed load leaves that
// collection degraded and is not fatal.
func warmUp(ctx context.Context, timeout time.Duration, collections ...refresher) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	for _, c := range collections {
		g.Go(func() error {
			if err := c.Refresh(gctx); err != nil {
				log.Warn().Err(err).Str("collection", c.Name()).Msg("initial load failed")
			}
			return nil
		})
	}
	_ = g.Wait()
}

func newContactService(cfg map[string]string) *services.ContactService {
	var email services.EmailSender
	if mailer, err := services.NewMailer(cfg); err != nil {
		log.Warn().Err(err).Msg("Contact email disabled")
	} else {
		email = mailer
	}

	var sms services.TextSender
	alertTo := config.GetString(cfg, "TWILIO_ALERT_TO", "")
	if alertTo != "" {
		if client, err := services.NewSMS(cfg); err != nil {
			log.Warn().Err(err).Msg("Contact SMS alerts disabled")
		} else {
			sms = client
		}
	}

	return services.NewContactService(email, sms, config.GetList(cfg, "CONTACT_INBOX"), alertTo)
}

func newImageStore(ctx context.Context, cfg map[string]string) *services.ImageStore {
	if config.GetString(cfg, "S3_BUCKET", "") == "" {
		return nil
	}
	store, err := services.NewImageStore(ctx, cfg)
	if err != nil {
		log.Warn().Err(err).Msg("Image uploads disabled")
		return nil
	}
	return store
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
