package main

import (
	"database/sql"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"gamestoreBack/internal/config"
	"gamestoreBack/internal/handlers"
	"gamestoreBack/internal/repositories"
	"gamestoreBack/internal/services"
	"gamestoreBack/utils"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger

	signingKey string
	userRepo   *repositories.UserRepository

	catalogHandler  *handlers.CatalogHandler
	gameHandler     *handlers.GameHandler
	dlcHandler      *handlers.DLCHandler
	cartHandler     *handlers.CartHandler
	wishlistHandler *handlers.WishlistHandler
	orderHandler    *handlers.OrderHandler
	userHandler     *handlers.UserHandler
}

func initializeApp(db *sql.DB, rdb *redis.Client, cfg config.Config, errorLog, infoLog *log.Logger) (*application, error) {
	// Repositories
	gameRepo := repositories.GameRepository{DB: db}
	dlcRepo := repositories.DLCRepository{DB: db}
	purchaseRepo := repositories.PurchaseRepository{DB: db}
	userRepo := repositories.UserRepository{DB: db}
	cartRepo := repositories.CartRepository{RDB: rdb}
	wishlistRepo := repositories.WishlistRepository{RDB: rdb}

	tokens, err := utils.NewManager(cfg.Auth.SigningKey)
	if err != nil {
		return nil, err
	}

	// Services
	catalogService := &services.CatalogService{
		GameRepo:        &gameRepo,
		DLCRepo:         &dlcRepo,
		DefaultPageSize: cfg.Catalog.PageSize,
	}
	gameService := &services.GameService{GameRepo: &gameRepo}
	dlcService := &services.DLCService{DLCRepo: &dlcRepo, GameRepo: &gameRepo}
	promoService := &services.PromoService{Codes: cfg.Promo}
	cartService := &services.CartService{
		CartRepo:     &cartRepo,
		WishlistRepo: &wishlistRepo,
		PurchaseRepo: &purchaseRepo,
		Catalog:      catalogService,
	}
	orderService := &services.OrderService{
		CartRepo:     &cartRepo,
		PurchaseRepo: &purchaseRepo,
		Catalog:      catalogService,
		Promo:        promoService,
		InfoLog:      infoLog,
	}
	libraryService := &services.LibraryService{
		PurchaseRepo: &purchaseRepo,
		Catalog:      catalogService,
	}
	userService := &services.UserService{
		UserRepo:   &userRepo,
		Tokens:     tokens,
		AccessTTL:  time.Duration(cfg.Auth.AccessTTLHours) * time.Hour,
		RefreshTTL: time.Duration(cfg.Auth.RefreshTTLHours) * time.Hour,
	}

	return &application{
		errorLog:        errorLog,
		infoLog:         infoLog,
		signingKey:      cfg.Auth.SigningKey,
		userRepo:        &userRepo,
		catalogHandler:  &handlers.CatalogHandler{Service: catalogService},
		gameHandler:     &handlers.GameHandler{Service: gameService},
		dlcHandler:      &handlers.DLCHandler{Service: dlcService},
		cartHandler:     &handlers.CartHandler{Service: cartService},
		wishlistHandler: &handlers.WishlistHandler{Service: cartService},
		orderHandler:    &handlers.OrderHandler{OrderService: orderService, LibraryService: libraryService},
		userHandler:     &handlers.UserHandler{Service: userService},
	}, nil
}
