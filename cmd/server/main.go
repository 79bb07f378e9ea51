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

	"mergington_api/internal/api"
	"mergington_api/internal/app/service"
	"mergington_api/internal/common/security"
	"mergington_api/internal/domain/repository"
	"mergington_api/internal/platform/config"
	"mergington_api/internal/platform/seed"
)

func main() {
	// 1. Load Configuration
	config.Load()
	fmt.Println("Configuration loaded.")

	// 2. Initialize Token Service
	tokens := security.NewTokenService(config.AppConfig.JWTKey, config.AppConfig.JWTExp)

	// 3. Initialize Repositories
	teacherRepo, err := repository.NewFileTeacherRepository(config.AppConfig.TeachersFile)
	if err != nil {
		log.Fatalf("Could not load teacher credentials: %v", err)
	}
	activityRepo := repository.NewMemoryActivityRepository(seed.Activities(), config.AppConfig.EnforceCapacity)

	// 4. Initialize Services
	authService := service.NewAuthService(teacherRepo, tokens)
	activityService := service.NewActivityService(activityRepo)

	// 5. Initialize Router & HTTP Server
	router := api.NewRouter(tokens, authService, activityService, config.AppConfig.StaticDir)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 6. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", config.AppConfig.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", config.AppConfig.APIPort, err)
		}
	}()
	log.Println("Server started successfully.")

	<-stop // Wait for interrupt signal

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped gracefully.")
}
