package main

import (
	"log"

	"github.com/joho/godotenv"

	"sentag/internal/app"
)

// @title           Sentag Backend API
// @version         1.0
// @description     Бэкенд маркетингового сайта: заявки, аналитика, админ-панель.
// @BasePath        /

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-Authorization
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Файл .env не найден, используем окружение")
	}
	app.Run()
}
