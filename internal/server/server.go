package server

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/pantrychef/backend/config"
	"github.com/pantrychef/backend/internal/corpus"
	"github.com/pantrychef/backend/internal/database"
	"github.com/pantrychef/backend/internal/middleware"
	"github.com/pantrychef/backend/internal/router"
	"github.com/pantrychef/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	http   *http.Server
}

// New wires the full recommendation pipeline from configuration: corpus and
// index for the selected backend, capability provider clients, services, and
// routes.
func New(cfg *config.Config) (*Server, error) {
	recipes, index, err := loadCorpus(cfg)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded corpus version %s (%d recipes, backend=%s)",
		recipes.Version(), recipes.Len(), cfg.CorpusBackend)

	encoder := service.NewEncoderClient(cfg.EncoderURL)
	searchService := service.NewSearchService(encoder, index, recipes)

	var generator service.TextGenerator
	if cfg.GeneratorURL != "" {
		generator = service.NewGenerationClient(cfg.GeneratorURL)
	} else {
		log.Printf("Warning: no generator configured, retrieval misses will return 503")
	}
	recommender := service.NewRecommendationService(searchService, generator, cfg.GenerationTimeout)

	// Redis backs the rate limiter and the nutrition cache. Both degrade
	// gracefully when it is unreachable.
	var redisClient *redis.Client
	if cfg.RedisHost != "" || cfg.RedisURL != "" {
		redisClient, err = database.NewRedisClient(cfg)
		if err != nil {
			log.Printf("Warning: failed to connect to Redis: %v", err)
			redisClient = nil
		}
	}

	var limiter *middleware.RateLimiter
	if redisClient != nil {
		limiter = middleware.NewRecommendationRateLimiter(redisClient)
	}

	var nutrition service.NutritionServiceInterface
	if cfg.NutritionAppID != "" && cfg.NutritionAppKey != "" {
		nutrition = service.NewNutritionService(cfg.NutritionAppID, cfg.NutritionAppKey, cfg.NutritionAPIURL, redisClient)
	} else {
		log.Printf("Warning: nutrition API credentials missing, /nutrition is disabled")
	}

	r := router.SetupRouter(recommender, nutrition, limiter)

	// With the postgres backend every search hits the database, so readiness
	// tracks its health. The bundle backend is ready once the corpus loaded.
	if cfg.CorpusBackend == config.CorpusBackendPostgres {
		sqlDB, err := database.New(cfg)
		if err != nil {
			return nil, err
		}
		r.GET("/ready", func(c *gin.Context) {
			if err := sqlDB.HealthCheck(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{"status": "ready"})
		})
	} else {
		r.GET("/ready", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ready"})
		})
	}

	return &Server{
		cfg:    cfg,
		router: r,
	}, nil
}

// loadCorpus builds the recipe source and nearest-neighbor index for the
// configured backend. The bundle backend keeps both in memory; the postgres
// backend searches the seeded pgvector table.
func loadCorpus(cfg *config.Config) (*corpus.Corpus, service.NearestNeighborIndex, error) {
	switch cfg.CorpusBackend {
	case config.CorpusBackendBundle:
		var bundle *corpus.Bundle
		var err error
		if cfg.CorpusS3Bucket != "" {
			bundle, err = corpus.FetchBundleFromS3(context.Background(), cfg.CorpusS3Bucket, cfg.CorpusS3Key)
		} else {
			bundle, err = corpus.LoadBundle(cfg.CorpusBundlePath)
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load corpus bundle: %w", err)
		}
		recipes, index, err := corpus.FromBundle(bundle)
		if err != nil {
			return nil, nil, err
		}
		return recipes, index, nil

	case config.CorpusBackendPostgres:
		db, err := database.NewGormDB(cfg)
		if err != nil {
			return nil, nil, err
		}
		recipes, err := corpus.LoadFromDB(db)
		if err != nil {
			return nil, nil, err
		}
		return recipes, corpus.NewPGVectorIndex(db), nil

	default:
		return nil, nil, fmt.Errorf("unknown corpus backend %q", cfg.CorpusBackend)
	}
}

// Start starts the server and blocks until it stops
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:    s.cfg.ServerHost + ":" + s.cfg.ServerPort,
		Handler: s.router,
	}

	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}
