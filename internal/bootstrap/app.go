package bootstrap

import (
	"context"
	"database/sql"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "careercoach-backend/internal/auth"
	"careercoach-backend/internal/coverletters"
	"careercoach-backend/internal/llm"
	"careercoach-backend/internal/llm/gemini"
	"careercoach-backend/internal/resumes"
	"careercoach-backend/internal/shared/config"
	"careercoach-backend/internal/shared/server"
	"careercoach-backend/internal/shared/storage/db"
	"careercoach-backend/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	LLM    llm.Client

	UsersRepo        users.Repo
	CoverLettersRepo coverletters.Repo
	ResumesRepo      resumes.Repo

	UsersService        *users.Service
	CoverLettersService *coverletters.Service
	ResumesService      *resumes.Service

	UsersHandler        *users.Handler
	CoverLettersHandler *coverletters.Handler
	ResumesHandler      *resumes.Handler
	GoogleAuth          *googleauth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	llmClient, err := buildLLM(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		LLM:    llmClient,
	}

	if sqlDB != nil {
		app.UsersRepo = &users.PGRepo{DB: sqlDB}
		app.CoverLettersRepo = &coverletters.PGRepo{DB: sqlDB}
		app.ResumesRepo = &resumes.PGRepo{DB: sqlDB}
	} else {
		app.UsersRepo = users.NewMemoryRepo()
		app.CoverLettersRepo = coverletters.NewMemoryRepo()
		app.ResumesRepo = resumes.NewMemoryRepo()
	}

	app.UsersService = users.NewService(app.UsersRepo)
	app.CoverLettersService = &coverletters.Service{
		Repo:  app.CoverLettersRepo,
		Users: app.UsersService,
		LLM:   app.LLM,
	}
	app.ResumesService = &resumes.Service{
		Repo:  app.ResumesRepo,
		Users: app.UsersService,
		LLM:   app.LLM,
	}

	app.UsersHandler = users.NewHandler(app.UsersService)
	app.CoverLettersHandler = coverletters.NewHandler(app.CoverLettersService)
	app.ResumesHandler = resumes.NewHandler(app.ResumesService)
	app.GoogleAuth = googleauth.NewGoogleService(
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		cfg.GoogleRedirectURL,
		cfg.UIRedirectURL,
		app.UsersService,
	)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:             cfg,
		CoverLetterHandler: app.CoverLettersHandler,
		ResumeHandler:      app.ResumesHandler,
		UserHandler:        app.UsersHandler,
		GoogleAuth:         app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, errDatabaseRequired
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return sqlDB, nil
}

// buildLLM returns the shared generator client. It is constructed once here
// and injected everywhere, so tests can swap it for a stub on the services.
func buildLLM(ctx context.Context, cfg config.Config) (llm.Client, error) {
	if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: GEMINI_API_KEY empty; generation endpoints will fail")
			return llm.PlaceholderClient{}, nil
		}
		return nil, errGeminiKeyRequired
	}
	return gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
