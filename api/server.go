package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/pranav244872/resumecoach/config"
	"github.com/pranav244872/resumecoach/history"
	"github.com/pranav244872/resumecoach/screening"
	"go.uber.org/zap"
)

// ResumeScorer is the resume scoring flow the server exposes.
type ResumeScorer interface {
	Score(ctx context.Context, role, filename string, data []byte) (screening.ScoredResume, error)
}

// AnswerEvaluator is the answer coaching flow the server exposes.
type AnswerEvaluator interface {
	Evaluate(ctx context.Context, question, answer string) (screening.Evaluation, error)
	Tips(answer string) []string
	History(ctx context.Context) ([]history.Record, error)
}

// Server serves HTTP requests
type Server struct {
	config    config.Config
	scorer    ResumeScorer
	evaluator AnswerEvaluator
	logger    *zap.Logger
	router    *gin.Engine
}

// NewServer creates a new HTTP server and sets up routing.
func NewServer(cfg config.Config, scorer ResumeScorer, evaluator AnswerEvaluator, log *zap.Logger) (*Server, error) {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("notblank", notBlank); err != nil {
			return nil, fmt.Errorf("register notblank validator: %w", err)
		}
	}

	server := &Server{
		config:    cfg,
		scorer:    scorer,
		evaluator: evaluator,
		logger:    log,
	}
	server.setupRouter()
	return server, nil
}

// setupRouter defines all the routes for the application.
func (server *Server) setupRouter() {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(server.logger))
	router.MaxMultipartMemory = server.config.MaxUploadBytes

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{server.config.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.POST("/predict", server.predictResume)
	router.POST("/evaluate", server.evaluateAnswer)
	router.POST("/feedback/tips", server.answerTips)
	router.GET("/history", server.listHistory)
	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	server.router = router
}

// Handler exposes the router for an http.Server.
func (server *Server) Handler() http.Handler {
	return server.router
}

// Run serves on address until ctx is cancelled, then shuts down within timeout.
func (server *Server) Run(ctx context.Context, address string, timeout time.Duration) error {
	httpServer := &http.Server{
		Addr:              address,
		Handler:           server.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}

// errorResponse formats errors as JSON.
func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
