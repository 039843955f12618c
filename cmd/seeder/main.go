package main

import (
	"context"
	"fmt"
	"os"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/2YH02/portfolio-be/internal/config"
	"github.com/2YH02/portfolio-be/internal/db"
	"github.com/2YH02/portfolio-be/internal/logs"
	"github.com/2YH02/portfolio-be/internal/models"
	"github.com/2YH02/portfolio-be/internal/service"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "seeder",
		Short:        "Fill the posts table with fake posts",
		SilenceUsage: true,
		RunE:         runSeed,
	}
	cmd.Flags().Int("count", 20, "number of posts to create")
	cmd.Flags().Int64("seed", 0, "random seed, 0 for a random one")
	return cmd
}

func runSeed(cmd *cobra.Command, _ []string) error {
	count, err := cmd.Flags().GetInt("count")
	if err != nil {
		return err
	}
	seed, err := cmd.Flags().GetInt64("seed")
	if err != nil {
		return err
	}
	if count <= 0 {
		return fmt.Errorf("count must be positive, got %d", count)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, err := logs.New(cfg.LogLevel, "console")
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	store, err := db.NewStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("db connect: %w", err)
	}
	defer store.Close()
	if err := store.Migrate(ctx); err != nil {
		return err
	}

	posts := service.NewPostService(store, logger, cfg.PageSize)
	return Seed(ctx, posts, gofakeit.New(seed), logger, count)
}

// Seed creates count posts through the service so validation applies.
func Seed(ctx context.Context, posts *service.PostService, faker *gofakeit.Faker, logger *zap.Logger, count int) error {
	logger.Info("seeding posts", zap.Int("count", count))
	for i := 0; i < count; i++ {
		input := FakePost(faker)
		created, err := posts.Create(ctx, input)
		if err != nil {
			return fmt.Errorf("create post %d/%d: %w", i+1, count, err)
		}
		logger.Debug("post seeded", zap.Int64("post_id", created.ID), zap.String("title", created.Title))
	}
	logger.Info("seeding done", zap.Int("count", count))
	return nil
}

func FakePost(faker *gofakeit.Faker) models.CreatePost {
	tags := make([]string, faker.Number(0, 4))
	for i := range tags {
		tags[i] = faker.HipsterWord()
	}
	return models.CreatePost{
		Title:       faker.Sentence(faker.Number(3, 8)),
		Description: faker.Sentence(faker.Number(8, 16)),
		Body:        faker.Paragraph(3, 5, 20, "\n\n"),
		Tags:        tags,
		Thumbnail:   faker.ImageURL(640, 360),
	}
}
