package main

import (
	"net/http"

	"go.uber.org/zap"

	"taskboard/internal/api/router"
	"taskboard/internal/cache"
	"taskboard/internal/config"
	"taskboard/internal/core/repository"
	"taskboard/internal/core/service"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg := config.Load()

	db, err := config.ConnectMongoDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}

	cache.Initialize(cfg.RedisURL)
	defer cache.Close()

	userRepo := repository.NewMongoUserRepository(db)
	boardRepo := repository.NewMongoBoardRepository(db)

	authService := service.NewAuthService(userRepo, []byte(cfg.JWTSecret))
	boardService := service.NewBoardService(boardRepo)

	r := router.NewRouter(authService, boardService, []byte(cfg.JWTSecret), logger)

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		logger.Fatal("server failed to start", zap.Error(err))
	}
}
