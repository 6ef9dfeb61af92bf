package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"blog-backend/internal/config"
	infraCache "blog-backend/internal/infrastructure/cache"
	"blog-backend/internal/infrastructure/database"
	"blog-backend/pkg/cache"

	"blog-backend/internal/domains/author"
	authorHandler "blog-backend/internal/domains/author/handler"
	authorRepo "blog-backend/internal/domains/author/repository"
	authorService "blog-backend/internal/domains/author/service"

	"blog-backend/internal/domains/post"
	postHandler "blog-backend/internal/domains/post/handler"
	postRepo "blog-backend/internal/domains/post/repository"
	postService "blog-backend/internal/domains/post/service"
)

// Container holds every application dependency.
// Build order: config, infrastructure, repositories, services, handlers.
type Container struct {
	// Infrastructure
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache // nil when Redis is disabled or unreachable

	redis *infraCache.RedisCache

	// Repositories
	AuthorRepo author.Repository
	PostRepo   post.Repository

	// Services
	AuthorService author.Service
	PostService   post.Service

	// Handlers
	AuthorHandler *authorHandler.AuthorHandler
	PostHandler   *postHandler.PostHandler
}

// NewContainer builds the whole dependency graph
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	if err := c.initDatabase(ctx); err != nil {
		return nil, err
	}

	c.initCache(ctx)

	c.AuthorRepo = authorRepo.NewPostgresRepository(c.DB.Pool, c.Cache)
	c.PostRepo = postRepo.NewPostgresRepository(c.DB.Pool, c.Cache)

	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.PostService = postService.NewPostService(c.PostRepo)

	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.PostHandler = postHandler.NewPostHandler(c.PostService)

	log.Info().Str("environment", cfg.App.Environment).Msg("container initialized")
	return c, nil
}

func (c *Container) initDatabase(ctx context.Context) error {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := db.Connect(connectCtx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.HealthCheck(ctx); err != nil {
		db.Close()
		return fmt.Errorf("database health check failed: %w", err)
	}

	if c.Config.Database.AutoMigrate {
		if err := database.Migrate(ctx, db.Pool, c.Config.Database.MigrationsTable); err != nil {
			db.Close()
			return err
		}
		log.Info().Str("component", "database").Msg("migrations applied")
	}

	c.DB = db
	return nil
}

// initCache connects Redis. A Redis failure is not fatal: repositories
// read straight from Postgres when Cache is nil.
func (c *Container) initCache(ctx context.Context) {
	if !c.Config.Redis.Enabled {
		log.Info().Str("component", "redis").Msg("cache disabled")
		return
	}

	rc := infraCache.NewRedisCache(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
	if err := rc.Connect(ctx); err != nil {
		log.Warn().Err(err).Str("component", "redis").Msg("redis unavailable, running without cache")
		_ = rc.Close()
		return
	}

	c.redis = rc
	c.Cache = rc
}

// Cleanup closes the database pool and the Redis client
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			log.Warn().Err(err).Str("component", "redis").Msg("failed to close redis")
		} else {
			log.Info().Str("component", "redis").Msg("redis connection closed")
		}
	}
}
