package main

import (
	"vidtube/internal/app"
	"vidtube/pkg/config"

	_ "vidtube/docs" // Swagger docs
)

// @title           vidtube API
// @version         1.0
// @description     Video sharing backend: accounts, sessions, channels and uploads

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		panic(err)
	}

	if err := application.Run(); err != nil {
		panic(err)
	}

	application.Wait()

	if err := application.Shutdown(); err != nil {
		panic(err)
	}
}
