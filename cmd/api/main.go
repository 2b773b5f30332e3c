package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/delwerhossain/e-com/internal/adapter/api"
	"github.com/delwerhossain/e-com/internal/adapter/api/handler"
	apimiddleware "github.com/delwerhossain/e-com/internal/adapter/api/middleware"
	"github.com/delwerhossain/e-com/internal/adapter/api/router"
	"github.com/delwerhossain/e-com/internal/adapter/repository"
	"github.com/delwerhossain/e-com/internal/infrastructure/mongodb"
	"github.com/delwerhossain/e-com/internal/usecase"
	"github.com/delwerhossain/e-com/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	userRepo := repository.NewMongoUserRepository(db)
	vendorRepo := repository.NewMongoVendorRepository(db)
	adminRepo := repository.NewMongoAdminRepository(db)
	productRepo := repository.NewMongoProductRepository(db)
	reviewRepo := repository.NewMongoReviewRepository(db)
	categoryRepo := repository.NewMongoCategoryRepository(db)
	subCategoryRepo := repository.NewMongoSubCategoryRepository(db)

	authUseCase := usecase.NewAuthUseCase(userRepo, vendorRepo, adminRepo, cfg.JWTSecret, cfg.JWTExpiry)
	userUseCase := usecase.NewUserUseCase(userRepo, cfg.BcryptCost)
	vendorUseCase := usecase.NewVendorUseCase(vendorRepo, cfg.BcryptCost)
	adminUseCase := usecase.NewAdminUseCase(adminRepo, cfg.BcryptCost)
	productUseCase := usecase.NewProductUseCase(productRepo, vendorRepo, categoryRepo, subCategoryRepo, reviewRepo)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, productRepo)
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo, subCategoryRepo)

	handler.Setup(
		authUseCase,
		userUseCase,
		vendorUseCase,
		adminUseCase,
		productUseCase,
		reviewUseCase,
		categoryUseCase,
	)

	e := echo.New()
	e.HideBanner = true
	e.Validator = api.NewValidator()
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	authMiddleware := apimiddleware.NewAuthMiddleware(authUseCase)
	adminMiddleware := apimiddleware.NewAdminMiddleware()

	router.Setup(e, authMiddleware, adminMiddleware)

	log.Printf("Starting server on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
