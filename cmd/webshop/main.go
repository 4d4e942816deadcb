package main

import (
	"context"
	"database/sql"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echo_middleware "github.com/labstack/echo/v4/middleware"
	_ "github.com/lib/pq"
	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/reform.v1"
	"gopkg.in/reform.v1/dialects/postgresql"

	"github.com/webshop-ext/webshop"
	"github.com/webshop-ext/webshop/api"
	"github.com/webshop-ext/webshop/events"
	"github.com/webshop-ext/webshop/provider/lnbits"
	"github.com/webshop-ext/webshop/services/orders"
	"github.com/webshop-ext/webshop/worker"
)

var VERSION = "dev"

var (
	onLoggerDev         = flag.Bool("logger-dev", false, "Enable development logger.")
	onLoggerDebugLevelF = flag.Bool("logger-debug-level", false, "Enable debug level logger.")
)

func main() {
	flag.Parse()
	setupLogger()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	zap.L().Info("Starting webshop extension...", zap.String("version", VERSION))
	defer func() { zap.L().Info("Done.") }()

	sqlDB := setupPostgres(os.Getenv("PG_CONN"), 0, 5, 5)
	if err := webshop.RunMigrations(sqlDB); err != nil {
		zap.L().Panic("Failed run migrations.", zap.Error(err))
	}
	db := reform.NewDB(sqlDB, postgresql.Dialect, reform.NewPrintfLogger(zap.L().Sugar().Debugf))

	natsURL := os.Getenv("NATS_URL")
	if natsURL == "" {
		natsURL = nats.DefaultURL
	}
	nc, err := nats.Connect(natsURL)
	if err != nil {
		zap.L().Panic("Failed to connect to NATS.", zap.Error(err))
	}
	defer nc.Close()
	zap.L().Info("NATS - Connected!")

	shops := webshop.NewShopPG(db)
	clientData := webshop.NewClientDataPG(db)

	walletProvider := lnbits.NewProvider(lnbits.Config{
		EntrypointURL: os.Getenv("WALLET_API_URL"),
		APIKey:        os.Getenv("WALLET_API_KEY"),
	}, &http.Client{Timeout: 30 * time.Second})

	orderService := orders.NewService(shops, clientData, walletProvider)

	var wg sync.WaitGroup

	listener := worker.NewListener(events.NewNATSSource(nc, "webshop"), orderService)
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := listener.Run(ctx); err != nil {
			zap.L().Error("Settlement listener failed.", zap.Error(err))
			cancel()
		}
	}()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echo_middleware.Recover())
	e.Use(echo_middleware.Logger())
	e.Use(echo_middleware.BodyLimit("64K"))
	e.Use(echo_middleware.CORSWithConfig(echo_middleware.CORSConfig{
		AllowOrigins: []string{"*"},
	}))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api.New(shops, clientData, orderService).Register(e)

	wg.Add(1)
	go func() {
		defer wg.Done()
		zap.L().Info("Start web server.", zap.String("address", ":"+port))
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			zap.L().Error("Failed run web server.", zap.Error(err))
			cancel()
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer shutdownCancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			zap.L().Error("Failed shutdown web server.", zap.Error(err))
		}
	}()

	wg.Wait()
}

// setupLogger configures the global zap logger.
func setupLogger() {
	level := zapcore.InfoLevel
	if *onLoggerDebugLevelF {
		level = zapcore.DebugLevel
	}
	config := zap.NewProductionConfig()
	if *onLoggerDev {
		config = zap.NewDevelopmentConfig()
	}
	config.Level.SetLevel(level)
	l, err := config.Build(zap.AddStacktrace(zap.ErrorLevel))
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(l)
	zap.RedirectStdLog(l.Named("stdlog"))
}

func setupPostgres(conn string, maxLifetime time.Duration, maxOpen, maxIdle int) *sql.DB {
	sqlDB, err := sql.Open("postgres", conn)
	if err != nil {
		zap.L().Panic("Failed to connect to PostgreSQL.", zap.Error(err))
	}
	sqlDB.SetConnMaxLifetime(maxLifetime)
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	if err = sqlDB.Ping(); err != nil {
		zap.L().Panic("Failed to connect ping PostgreSQL.", zap.Error(err))
	}
	zap.L().Info("Postgres - Connected!")

	return sqlDB
}
