package main

import (
	"log"

	"swadwala/internal/config"
	"swadwala/internal/domain/model"
	"swadwala/internal/handler"
	"swadwala/internal/infra/db"
	infraRepo "swadwala/internal/infra/repository"
	"swadwala/internal/mail"
	"swadwala/internal/server"
	"swadwala/internal/upload"
	"swadwala/internal/usecase"
	"swadwala/internal/validator"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.Connect()
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Shop{},
		&model.Item{},
		&model.Order{},
		&model.ShopOrder{},
		&model.ShopOrderItem{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	userRepo := infraRepo.NewUserGormRepository(gormDB)
	shopRepo := infraRepo.NewShopGormRepository(gormDB)
	itemRepo := infraRepo.NewItemGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	mailer := mail.New(cfg)
	uploader := upload.New(cfg)

	authUC := usecase.NewAuthUsecase(cfg, userRepo, validator.NewAuthValidator(), mailer)
	shopUC := usecase.NewShopUsecase(shopRepo, itemRepo)
	itemUC := usecase.NewItemUsecase(itemRepo, shopRepo)
	orderUC := usecase.NewOrderUsecase(txManager, orderRepo, userRepo, mailer)

	e := server.New(cfg, server.Handlers{
		Auth:  handler.NewAuthHandler(authUC, cfg),
		Shop:  handler.NewShopHandler(shopUC, uploader),
		Item:  handler.NewItemHandler(itemUC, uploader),
		Order: handler.NewOrderHandler(orderUC),
	})

	addr := ":" + cfg.Port
	log.Printf("server running on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
