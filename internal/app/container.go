package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"resume-screen/internal/catalog"
	"resume-screen/internal/config"
	"resume-screen/internal/database"
	dbpostgres "resume-screen/internal/database/postgres"
	"resume-screen/internal/database/seeder"
	"resume-screen/internal/delivery/http/handler"
	"resume-screen/internal/delivery/http/middleware"
	"resume-screen/internal/delivery/http/routes"
	"resume-screen/internal/domain/matching"
	"resume-screen/internal/extractor"
	"resume-screen/internal/fetcher"
	"resume-screen/internal/infrastructure/cache"
	"resume-screen/internal/infrastructure/embedding"
	"resume-screen/internal/pkg/jwt"
	"resume-screen/internal/repository"
	"resume-screen/internal/usecase"
	"resume-screen/internal/ws"
)

// Container owns every long-lived dependency and the route registry
// built on top of them.
type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	Routes *routes.Registry

	logger *log.Logger
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.Default()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	runner := seeder.Runner{Seeders: seeder.Defaults()}
	if err := runner.Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seed database: %w", err)
	}

	redisCache := cache.NewRedis(logger)

	cat, err := catalog.Default()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	syn, err := catalog.DefaultSynonyms()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	ext := extractor.New(cat)

	lexical := matching.NewLexicalMatcher(syn)
	var matcher matching.Matcher = lexical
	var fallback matching.Matcher
	if cfg.Matcher.Strategy == config.MatcherEmbedding {
		emb, err := embedding.NewGemini(ctx, cfg.Matcher.GeminiAPIKey, cfg.Matcher.EmbeddingModel)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		matcher = matching.NewEmbeddingMatcher(emb, cat, syn)
		fallback = lexical
	}

	userRepo := repository.NewPostgresUserRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)
	resumeRepo := repository.NewPostgresResumeRepository(db)

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	pf := fetcher.New(logger)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	jobUC := usecase.NewJobUsecase(jobRepo, ext, pf, logger)
	screeningUC := usecase.NewScreeningUsecase(jobUC, resumeRepo, ext, matcher, fallback, redisCache, logger)
	resultsUC := usecase.NewResultsUsecase(jobUC, resumeRepo, ext, redisCache, logger)

	hub := ws.NewHub(logger)
	go hub.Run()
	ws.SetDefaultHub(hub)

	registry := &routes.Registry{
		Health:    handler.NewHealthHandler(db, redisCache),
		Auth:      handler.NewAuthHandler(authUC),
		Jobs:      handler.NewJobHandler(jobUC),
		Screening: handler.NewScreeningHandler(screeningUC, cfg.Upload.MaxUploadMB),
		Results:   handler.NewResultsHandler(resultsUC),
		WS:        ws.NewHandler(hub, logger),
		AuthMw:    middleware.NewAuthMiddleware(jwtSvc),
	}

	return &Container{
		Config: cfg,
		DB:     db,
		Cache:  redisCache,
		Hub:    hub,
		Routes: registry,
		logger: logger,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
