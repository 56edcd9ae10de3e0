// Package main is the entry point for the Video Summarizer API server.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/Shimizu-Technology/video-summarizer-api/internal/config"
	"github.com/Shimizu-Technology/video-summarizer-api/internal/handlers"
	"github.com/Shimizu-Technology/video-summarizer-api/internal/pipeline"
	"github.com/Shimizu-Technology/video-summarizer-api/internal/router"
	"github.com/Shimizu-Technology/video-summarizer-api/internal/services/audio"
	"github.com/Shimizu-Technology/video-summarizer-api/internal/services/summary"
	"github.com/Shimizu-Technology/video-summarizer-api/internal/services/transcript"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("🚀 Video Summarizer API %s starting...", Version)

	// Step 1: Load Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}
	log.Printf("📋 Config loaded: port=%s, gin_mode=%s, model=%s", cfg.Port, cfg.GinMode, cfg.OpenAIModel)

	os.Setenv("GIN_MODE", cfg.GinMode)

	// Step 2: Create Services
	// One OpenAI client backs both Whisper transcription and summarization;
	// the API key is the single credential this service holds.
	openaiClient := openai.NewClient(cfg.OpenAIAPIKey)

	tokenizer, err := summary.NewTokenizer(cfg.OpenAIModel)
	if err != nil {
		log.Fatalf("❌ Failed to load tokenizer: %v", err)
	}

	fetcher := transcript.NewCaptionFetcher()
	extractor := audio.NewStreamExtractor(cfg.ScratchDir)
	transcriber := audio.NewWhisperTranscriber(openaiClient)
	summarizer := summary.New(openaiClient, cfg.OpenAIModel, tokenizer)

	if cfg.OpenAIAPIKey == "" {
		log.Println("⚠️  OPENAI_API_KEY not set — transcription fallback and summaries will fail")
	} else {
		log.Println("✅ OpenAI configured (Whisper fallback + summaries enabled)")
	}

	// Step 3: Wire the Pipeline
	runner := pipeline.NewRunner(fetcher, extractor, transcriber, summarizer)

	// Step 4: Setup HTTP Router
	handlers.Version = Version
	h := handlers.NewHandler(runner, cfg.OpenAIAPIKey != "")
	r := router.Setup(h, cfg.AllowedOrigins, "./static")

	// Step 5: Start the HTTP Server
	// The pipeline blocks the request for its full duration, so the write
	// timeout has to cover captions + download + Whisper + completion.
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 10 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("🌐 Server listening on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Server failed: %v", err)
		}
	}()

	// Step 6: Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	log.Printf("🛑 Received signal %v, shutting down gracefully...", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("⚠️  Server forced to shutdown: %v", err)
	}

	log.Println("👋 Server stopped. Goodbye!")
}
