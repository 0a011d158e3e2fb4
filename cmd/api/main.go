package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/shoply/ecommerce-api/app/api"
	"github.com/shoply/ecommerce-api/app/customers"
	"github.com/shoply/ecommerce-api/app/orders"
	"github.com/shoply/ecommerce-api/app/products"
	"github.com/shoply/ecommerce-api/app/router"
	"github.com/shoply/ecommerce-api/config"
	"github.com/shoply/ecommerce-api/models"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	cfg := config.Load()

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}

	if err := db.AutoMigrate(&models.Customer{}, &models.Product{}, &models.Order{}); err != nil {
		log.Fatal("failed to migrate schema", zap.Error(err))
	}

	customerHandler := customers.NewCustomerHandler(models.NewCustomersRepository(db))
	productHandler := products.NewProductHandler(models.NewProductsRepository(db))
	orderHandler := orders.NewOrderHandler(
		models.NewOrdersRepository(db),
		models.NewProductsRepository(db),
	)

	mux := router.New(customerHandler, productHandler, orderHandler)

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: api.AccessLog(log, mux),
	}

	go func() {
		log.Info("listening", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Warn("shutdown error", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	log.Info("stopped")
}
