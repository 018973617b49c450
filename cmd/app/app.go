package main

import (
	"os"

	"github.com/hothat-pawa/go-backend/internal/app"
	config "github.com/hothat-pawa/go-backend/internal/cfg"
	"github.com/hothat-pawa/go-backend/pkg/logger"
	"github.com/joho/godotenv"
)

//	@title			Hothat Pawa API
//	@version		1.0
//	@description	Бэкенд витрины "হঠাৎ পাওয়া": каталог, корзина и чат с ассистентом.
//	@BasePath		/api/v1
func main() {
	log := logger.NewSlogLogger()

	// .env опционален: в контейнере переменные приходят из окружения
	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %v", err)
	}

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
