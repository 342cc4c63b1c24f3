package app

import (
	"database/sql"
	"fmt"
	"log"

	"sentag/internal/config"
	"sentag/internal/handlers"
	"sentag/internal/pdf"
	"sentag/internal/repositories"
	"sentag/internal/routes"
	"sentag/internal/services"
	"sentag/migrations"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	_ "sentag/docs"
)

func Run() {
	cfg := config.LoadConfig()

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("Ошибка подключения к БД: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Ошибка закрытия БД: %v", err)
		}
	}()

	if err := migrations.Migrate(db); err != nil {
		log.Fatal("Ошибка миграции БД: ", err)
	}

	// === Repos ===
	userRepo := repositories.NewUserRepository(db)
	otpRepo := repositories.NewOTPRepository(db)
	sessionRepo := repositories.NewSessionRepository(db)
	requestRepo := repositories.NewRequestRepository(db)
	analyticsRepo := repositories.NewAnalyticsRepository(db)
	documentRepo := repositories.NewDocumentRepository(db)
	settingsRepo := repositories.NewSettingsRepository(db)

	// === Services ===
	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
	)
	authService := services.NewAuthService(userRepo, otpRepo, sessionRepo, emailService)
	userService := services.NewUserService(userRepo)

	telegramService := services.NewTelegramService(cfg.Telegram.BotToken, cfg.Telegram.ChatID)

	storageService, err := services.NewStorageService(cfg.Storage)
	if err != nil {
		log.Fatal("Ошибка инициализации хранилища: ", err)
	}

	// PDF сводки заявок; TTF с кириллицей лежит в assets/fonts
	pdfGen := pdf.NewRequestGenerator("assets/fonts/DejaVuSans.ttf")

	requestService := services.NewRequestService(requestRepo, analyticsRepo, pdfGen)
	analyticsService := services.NewAnalyticsService(analyticsRepo, telegramService, cfg.Site.Domain)
	documentService := services.NewDocumentService(documentRepo, storageService)
	settingsService := services.NewSettingsService(settingsRepo)
	uploadService := services.NewUploadService(storageService)
	seoService := services.NewSEOService(settingsRepo, storageService)
	pingService := services.NewSearchPingService(cfg.Site.SitemapURL)

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	requestHandler := handlers.NewRequestHandler(requestService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	documentHandler := handlers.NewDocumentHandler(documentService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	uploadHandler := handlers.NewUploadHandler(uploadService)
	seoHandler := handlers.NewSEOHandler(seoService, pingService)

	// === Gin ===
	router := gin.Default()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(
		router,
		authService,
		authHandler,
		userHandler,
		requestHandler,
		analyticsHandler,
		documentHandler,
		settingsHandler,
		uploadHandler,
		seoHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Сервер запущен на %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("Ошибка запуска сервера: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, X-Authorization, X-Auth-Token")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
