package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/dkazarev/techstore-service/config"
	"github.com/dkazarev/techstore-service/internal/account"
	"github.com/dkazarev/techstore-service/internal/address"
	"github.com/dkazarev/techstore-service/internal/cart"
	"github.com/dkazarev/techstore-service/internal/catalog"
	"github.com/dkazarev/techstore-service/internal/order"
	"github.com/dkazarev/techstore-service/pkg/httpserver"
	"github.com/dkazarev/techstore-service/pkg/logger"
	"github.com/dkazarev/techstore-service/pkg/postgres"
)

func main() {
	log := logger.NewLogger("debug", &logger.MainLogHook{})

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configs: %v", err)
	}

	env, err := config.GetEnvironment()
	if err != nil {
		log.Fatalf(err.Error())
	}

	postgresConfig := postgres.Config{
		Host:     env.PgHost,
		Port:     env.PgPort,
		Username: env.PgUser,
		Password: env.PgPassword,
		DBName:   env.PgDbName,
		SSLMode:  env.SSLMode,
		TimeZone: env.TimeZone,
	}

	db, err := postgres.ConnectionToDb(postgresConfig)
	if err != nil {
		log.Fatalf("failed connection to db: %v", err)
	}

	if err := address.RunMigration(db); err != nil {
		log.Fatalf("failed address migration: %v", err)
	}
	if err := catalog.RunMigration(db); err != nil {
		log.Fatalf("failed catalog migration: %v", err)
	}
	if err := account.RunMigration(db); err != nil {
		log.Fatalf("failed account migration: %v", err)
	}
	if err := cart.RunMigration(db); err != nil {
		log.Fatalf("failed cart migration: %v", err)
	}
	if err := order.RunMigration(db); err != nil {
		log.Fatalf("failed order migration: %v", err)
	}

	sessionTTL := time.Duration(cfg.Session.TTLHours) * time.Hour

	addressLog := logger.NewLogger(env.LogLvl, &address.AddressLogHook{})
	addressStorage := address.NewStorage(db)
	addressService := address.NewService(addressStorage, addressLog)

	catalogLog := logger.NewLogger(env.LogLvl, &catalog.CatalogLogHook{})
	catalogStorage := catalog.NewStorage(db)
	catalogService := catalog.NewService(catalogStorage, catalogLog)

	accountLog := logger.NewLogger(env.LogLvl, &account.AccountLogHook{})
	accountStorage := account.NewStorage(db)
	accountService := account.NewService(accountStorage, accountLog, sessionTTL)

	cartLog := logger.NewLogger(env.LogLvl, &cart.CartLogHook{})
	cartStorage := cart.NewStorage(db)
	cartService := cart.NewService(cartStorage, cartLog)

	orderLog := logger.NewLogger(env.LogLvl, &order.OrderLogHook{})
	orderStorage := order.NewStorage(db)
	orderService := order.NewService(orderStorage, orderLog)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	accountHandler := account.NewHandler(accountService, accountLog, cfg.Session.CookieName, sessionTTL)
	accountHandler.Register(router)

	auth := accountHandler.RequireSession()

	addressHandler := address.NewHandler(addressService, addressLog)
	addressHandler.Register(router)

	catalogHandler := catalog.NewHandler(catalogService, catalogLog)
	catalogHandler.Register(router, auth)

	cartHandler := cart.NewHandler(cartService, cartLog)
	cartHandler.Register(router, auth)

	orderHandler := order.NewHandler(orderService, orderLog)
	orderHandler.Register(router, auth)

	server := new(httpserver.Server)

	go func() {
		if err := server.Run(cfg.Server.Port, router); err != nil {
			log.Fatalf("failed running server: %v", err)
		}
	}()

	log.Infof("server started on port %s", cfg.Server.Port)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	oscall := <-interrupt
	log.Infof("Shutdown server, %s", oscall)

	if err := server.Shutdown(context.Background()); err != nil {
		log.Errorf("Error occured on server shutting down: %v", err)
	}
}
