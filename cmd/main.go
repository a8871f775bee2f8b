package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"artcurator/internal/handlers"
	"artcurator/internal/logger"
	"artcurator/internal/museum"
	"artcurator/internal/repository"
	"artcurator/internal/repository/db"
	"artcurator/internal/server"
	"artcurator/internal/service"

	"github.com/spf13/viper"
)

func main() {
	// init logger
	log := logger.Get(logger.InfoLevel)

	// load config.yml
	if err := loadConfig(); err != nil {
		log.Fatalw("error reading config", "err", err)
	}

	// open DB and apply migrations
	conn, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init postgres", "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close postgres", "err", cerr)
		}
	}()

	// wire dependencies
	catalog := museum.NewClient(
		viper.GetString("museum.base_url"),
		time.Duration(viper.GetInt("museum.timeout_seconds"))*time.Second,
	)
	repos := repository.NewRepository(conn)
	services := service.NewService(repos, catalog, service.AuthConfig{
		SigningKey: []byte(viper.GetString("token.secret")),
		TokenTTL:   time.Duration(viper.GetInt("token.ttl_hours")) * time.Hour,
	})
	apiHandler := handlers.NewHandler(services, log, viper.GetString("static_dir"))

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")

	// Secrets come from the environment in deployment.
	viper.AutomaticEnv()
	if err := viper.BindEnv("token.secret", "TOKEN_SECRET"); err != nil {
		return err
	}
	if err := viper.BindEnv("db.dsn", "DATABASE_URL"); err != nil {
		return err
	}

	return viper.ReadInConfig()
}

// openDB connects to PostgreSQL using configuration and runs migrations.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dsn := viper.GetString("db.dsn")
	if dsn == "" {
		log.Fatalw("db.dsn not set; configure configs/config.yml or DATABASE_URL")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return db.Open(ctx, dsn)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
