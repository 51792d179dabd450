package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	api "github.com/quiz-forge/quizforge/internal/api/http"
	"github.com/quiz-forge/quizforge/internal/catalog"
	"github.com/quiz-forge/quizforge/internal/config"
	"github.com/quiz-forge/quizforge/internal/db"
	"github.com/quiz-forge/quizforge/internal/logger"
	"github.com/quiz-forge/quizforge/internal/quiz"
	"github.com/quiz-forge/quizforge/internal/storage"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()

	log, err := logger.New(cfg)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatal("db open failed", zap.Error(err))
	}

	cat := catalog.NewSQLCatalog(dbh, cfg.DBDriver)
	loader := catalog.NewLoader(dbh, cfg.DBDriver)
	if cfg.ReloadOnStart {
		n, err := loader.LoadFile(ctx, cfg.QuestionsFile)
		if err != nil {
			log.Fatal("questions load failed", zap.String("file", cfg.QuestionsFile), zap.Error(err))
		}
		log.Info("questions loaded", zap.String("file", cfg.QuestionsFile), zap.Int("count", n))
	}

	var sessions quiz.SessionStore
	switch cfg.SessionBackend {
	case "sql":
		sessions = quiz.NewSQLSessionStore(dbh)
	default:
		sessions = quiz.NewMemoryStore()
	}
	svc := quiz.NewService(cat, sessions, log)

	imgs, err := storage.NewFSStore(cfg.BlobBasePath)
	if err != nil {
		log.Fatal("image store failed", zap.Error(err))
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         300,
	}))

	// Catalog / practice mode
	r.Get("/topics", api.ListTopicsHandler(cat))
	r.Get("/groups", api.ListGroupsHandler(cat))
	r.Get("/nav", api.NavigationHandler(svc))
	r.Get("/questions/{questionID}", api.GetQuestionHandler(svc))
	r.Post("/check", api.CheckAnswerHandler(svc))
	r.Post("/questions/import", api.ImportQuestionsHandler(loader, log))

	// Exam flow
	r.Post("/exams", api.StartExamHandler(svc))
	r.Get("/exams/{sessionID}", api.GetSessionHandler(svc))
	r.Post("/exams/{sessionID}/answers", api.SubmitAnswerHandler(svc))
	r.Post("/exams/{sessionID}/navigate", api.NavigateHandler(svc))
	r.Post("/exams/{sessionID}/finish", api.FinishExamHandler(svc))
	r.Delete("/exams/{sessionID}", api.DeleteSessionHandler(svc))

	r.Route("/images", func(ir chi.Router) {
		api.MountImages(ir, imgs)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Info("listening", zap.String("addr", cfg.HTTPAddr))
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
