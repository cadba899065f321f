package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"mapmarket/internal/adapter/api"
	"mapmarket/internal/adapter/api/handler"
	apimiddleware "mapmarket/internal/adapter/api/middleware"
	"mapmarket/internal/adapter/api/router"
	"mapmarket/internal/adapter/repository"
	"mapmarket/internal/infrastructure/firebase"
	"mapmarket/internal/infrastructure/storage"
	"mapmarket/internal/usecase"
	"mapmarket/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption
	if cfg.ServiceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opt = option.WithCredentialsJSON([]byte(cfg.ServiceAccountJSON))
	} else {
		serviceAccountPath := cfg.ServiceAccountPath
		if serviceAccountPath == "" {
			serviceAccountPath = "./service-account.json"
		}
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}
		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	settingsRepo := repository.NewFirestoreSettingsRepository(firestoreClient)
	sellerRepo := repository.NewFirestoreSellerRepository(firestoreClient)
	reviewRepo := repository.NewFirestoreReviewFeedbackRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient)

	userUseCase := usecase.NewUserUseCase(userRepo, settingsRepo, sellerRepo, firebaseAuthClient)
	settingsUseCase := usecase.NewUserSettingsUseCase(settingsRepo)
	sellerUseCase := usecase.NewSellerUseCase(sellerRepo, settingsRepo, userRepo)
	reviewUseCase := usecase.NewReviewFeedbackUseCase(reviewRepo)

	handler.Setup(userUseCase, settingsUseCase, sellerUseCase, reviewUseCase, firebaseAuthClient, storageClient)
	handler.SetupHealthHandler(firebaseAuthClient)

	e := echo.New()

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient, userRepo)

	router.Setup(e, authMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
