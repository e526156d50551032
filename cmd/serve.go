package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pranav244872/resumecoach/api"
	"github.com/pranav244872/resumecoach/archive"
	"github.com/pranav244872/resumecoach/classifier"
	"github.com/pranav244872/resumecoach/config"
	"github.com/pranav244872/resumecoach/events"
	"github.com/pranav244872/resumecoach/extract"
	"github.com/pranav244872/resumecoach/history"
	"github.com/pranav244872/resumecoach/logger"
	"github.com/pranav244872/resumecoach/screening"
	"github.com/pranav244872/resumecoach/similarity"
	"github.com/pranav244872/resumecoach/skillz"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("could not load configuration: %w", err)
		}

		log, err := logger.New(cfg.LogJSON, cfg.LogDebug)
		if err != nil {
			return err
		}
		defer log.Sync()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return serve(ctx, cfg, log)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	// Step 1: Load the trained vectorizer and classifier
	model, err := classifier.Load(cfg.ModelPath)
	if err != nil {
		return fmt.Errorf("could not load model: %w", err)
	}
	log.Info("model loaded", zap.String("path", cfg.ModelPath), zap.Int("features", model.Vectorizer.Features()))

	// Step 2: Open the answer history store
	store, err := openHistory(ctx, cfg)
	if err != nil {
		return fmt.Errorf("could not open history store: %w", err)
	}
	defer store.Close()
	log.Info("history store ready", zap.String("driver", cfg.HistoryDriver))

	// Step 3: Build the sentence embedder
	embedder, err := newEmbedder(ctx, cfg)
	if err != nil {
		return fmt.Errorf("could not create embedder: %w", err)
	}
	log.Info("embedder ready", zap.String("embedder", cfg.Embedder))

	// Step 4: Optional side channels
	archiver, err := newArchiver(ctx, cfg)
	if err != nil {
		return fmt.Errorf("could not create resume archive: %w", err)
	}
	publisher, err := newPublisher(cfg)
	if err != nil {
		return fmt.Errorf("could not connect event publisher: %w", err)
	}
	defer publisher.Close()
	log.Info("side channels ready",
		zap.Bool("archive", cfg.ArchiveBucket != ""),
		zap.Bool("events", cfg.AMQPURL != ""),
	)

	// Step 5: Compose the two flows
	scorer := screening.NewResumeScorer(screening.ResumeScorerDeps{
		Extractor:  extract.New(),
		Vectorizer: model.Vectorizer,
		Classifier: model.Classifier,
		Skills:     skillz.NewKeywordProcessor(skillz.DefaultVocabulary),
		Roles:      skillz.DefaultRoleProfiles(),
		Content:    skillz.DefaultContent(),
		Archiver:   archiver,
		Publisher:  publisher,
		Logger:     log,
	})
	evaluator := screening.NewAnswerEvaluator(
		similarity.NewScorer(skillz.DefaultIdealAnswers, embedder),
		store, publisher, log,
	)

	// Step 6: Create the API server
	server, err := api.NewServer(cfg, scorer, evaluator, log)
	if err != nil {
		return fmt.Errorf("could not create the server: %w", err)
	}

	// Step 7: Serve until a signal arrives
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting server", zap.String("address", cfg.ServerAddress))
		return server.Run(gCtx, cfg.ServerAddress, cfg.ShutdownTimeout)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	log.Info("server stopped")
	return nil
}

func openHistory(ctx context.Context, cfg config.Config) (history.Store, error) {
	switch cfg.HistoryDriver {
	case config.HistoryPostgres:
		return history.OpenPostgres(ctx, cfg.DBSource)
	case config.HistorySQLite:
		return history.OpenSQLite(cfg.SQLitePath)
	case config.HistoryMemory:
		return history.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown history driver %q", cfg.HistoryDriver)
	}
}

func newEmbedder(ctx context.Context, cfg config.Config) (similarity.Embedder, error) {
	if cfg.Embedder == config.EmbedderGemini {
		return similarity.NewGeminiEmbedder(ctx, cfg.GeminiAPIKey, cfg.GeminiEmbedModel)
	}
	return similarity.NewHashingEmbedder(), nil
}

func newArchiver(ctx context.Context, cfg config.Config) (archive.Archiver, error) {
	if cfg.ArchiveBucket == "" {
		return archive.Noop{}, nil
	}
	return archive.NewS3(ctx, archive.Options{
		Bucket:    cfg.ArchiveBucket,
		Endpoint:  cfg.ArchiveEndpoint,
		Region:    cfg.ArchiveRegion,
		AccessKey: cfg.ArchiveAccessKey,
		SecretKey: cfg.ArchiveSecretKey,
	})
}

func newPublisher(cfg config.Config) (events.Publisher, error) {
	if cfg.AMQPURL == "" {
		return events.Noop{}, nil
	}
	return events.DialAMQP(cfg.AMQPURL, cfg.AMQPExchange)
}
