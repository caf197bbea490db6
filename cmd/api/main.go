package main

import (
	"log/slog"
	"os"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	// .envは無ければ環境変数だけで動かす
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config load failed", "error", err)
		os.Exit(1)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		logger.Error("db connect failed", "error", err)
		os.Exit(1)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Item{},
		&model.Cart{},
		&model.CartEntry{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		logger.Error("migrate failed", "error", err)
		os.Exit(1)
	}

	// カタログが空なら初期商品を入れる
	if err := db.SeedItems(gormDB); err != nil {
		logger.Error("seed failed", "error", err)
		os.Exit(1)
	}

	//Repository（GORM実装）生成
	txManager := infraRepo.NewTxManagerGorm(gormDB)
	itemRepo := infraRepo.NewItemGormRepository(gormDB)

	//Usecase生成
	hasher := usecase.NewBcryptPasswordHasher(cfg.BcryptCost)
	userUC := usecase.NewUserUsecase(txManager, hasher)
	itemUC := usecase.NewItemUsecase(itemRepo)
	cartUC := usecase.NewCartUsecase(txManager)
	orderUC := usecase.NewOrderUsecase(txManager)

	//Handler生成
	userH := handler.NewUserHandler(userUC)
	itemH := handler.NewItemHandler(itemUC)
	cartH := handler.NewCartHandler(cartUC)
	orderH := handler.NewOrderHandler(orderUC)

	//Server起動
	e := server.New(logger, userH, itemH, cartH, orderH)

	addr := ":" + cfg.Port
	logger.Info("server starting", "addr", addr, "env", cfg.GoEnv)

	if err := server.Start(e, addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
