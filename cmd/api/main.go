package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/defnotwig/portfolio/backend/internal/config"
	"github.com/defnotwig/portfolio/backend/internal/handler"
	chatmodel "github.com/defnotwig/portfolio/backend/internal/model/chat"
	contentmodel "github.com/defnotwig/portfolio/backend/internal/model/content"
	"github.com/defnotwig/portfolio/backend/internal/model/kb"
	"github.com/defnotwig/portfolio/backend/internal/service/ai"
	"github.com/defnotwig/portfolio/backend/internal/service/chat"
	mongostore "github.com/defnotwig/portfolio/backend/internal/storage/mongo"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Durable stores, with an in-memory fallback for credential-less dev runs.
	var (
		transcript chatmodel.Store
		contents   contentmodel.Store
	)
	if cfg.Mongo.Enabled() {
		db, err := mongostore.Connect(ctx, cfg.Mongo)
		if err != nil {
			log.Fatalf("failed to connect to mongo: %v", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = mongostore.Disconnect(shutdownCtx, db)
		}()

		if err := mongostore.SeedContent(ctx, db, contentmodel.DefaultSeed()); err != nil {
			log.Fatalf("failed to seed content: %v", err)
		}

		transcript = mongostore.NewMessageStore(db)
		contents = mongostore.NewContentStore(db)
	} else {
		log.Println("MONGO_URI not set, using in-memory stores - transcripts will not survive a restart")
		transcript = chatmodel.NewMemoryStore()
		contents = contentmodel.NewMemoryStore(contentmodel.DefaultSeed())
	}

	// Editable FAQ source with hot-reload.
	faqs := kb.NewFileStore(cfg.KB.FAQPath)
	if err := faqs.Watch(ctx); err != nil {
		log.Printf("warning: faq watcher unavailable, falling back to per-request reads: %v", err)
	}

	// Gemini provider is optional; without a credential the pipeline
	// degrades to deterministic mock replies.
	var completer chat.Completer
	if cfg.AI.Enabled() {
		aiSvc, err := ai.NewService(ctx, cfg.AI)
		if err != nil {
			log.Printf("warning: failed to initialize gemini service: %v", err)
			log.Println("continuing without AI functionality")
		} else {
			log.Printf("gemini provider enabled with model %s", aiSvc.Model())
			completer = aiSvc
		}
	} else {
		log.Println("no GEMINI_API_KEY set, chat fallback tier will return echo replies")
	}

	chatSvc := chat.NewService(transcript, faqs, completer)
	router := handler.NewRouter(cfg, chatSvc, contents, faqs)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("portfolio backend listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
