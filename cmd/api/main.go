package main

import (
	"context"
	"os"
	"strconv"

	"github.com/halcyon-app/halcyon-api/internal/ai"
	"github.com/halcyon-app/halcyon-api/internal/database"
	"github.com/halcyon-app/halcyon-api/internal/handlers"
	"github.com/halcyon-app/halcyon-api/internal/routes"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const defaultMaxUploadBytes = 5 << 20 // 5 MiB

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file found, relying on system environment")
	}

	db, err := database.Open()
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	geminiKey := os.Getenv("GEMINI_API_KEY")
	if geminiKey == "" {
		logger.Fatal("GEMINI_API_KEY environment variable is not set")
	}
	aiService, err := ai.New(context.Background(), geminiKey)
	if err != nil {
		logger.Fatal("failed to initialize AI service", zap.Error(err))
	}
	defer aiService.Close()

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	maxUpload := int64(defaultMaxUploadBytes)
	if raw := os.Getenv("MAX_UPLOAD_BYTES"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 {
			maxUpload = parsed
		}
	}

	app := &handlers.Handlers{
		DB:             db,
		AI:             aiService,
		Log:            logger,
		UploadDir:      uploadDir,
		MaxUploadBytes: maxUpload,
	}

	router := routes.SetupRouter(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info("starting Halcyon API server", zap.String("port", port))
	if err := router.Run(":" + port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
