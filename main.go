package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"mindhaven/api"
	"mindhaven/config"
	"mindhaven/database"
	"mindhaven/middleware"
	"mindhaven/models"
	"mindhaven/repository"
	"mindhaven/retrieval"
	"mindhaven/services"

	"gorm.io/gorm"
)

func main() {
	// Load application configuration
	config.LoadConfig()

	// Initialize database connection
	db, err := database.Init()
	if err != nil {
		log.Fatalf("FATAL: [Main] Failed to initialize database: %v", err)
	}

	// Auto-migrate database schema and seed starter content
	runMigrations(db)
	if err := database.SeedKnowledgeBase(db); err != nil {
		log.Fatalf("FATAL: [Main] Failed to seed knowledge base: %v", err)
	}

	// Initialize Repositories
	knowledgeRepo := repository.NewKnowledgeRepository(db)
	userRepo := repository.NewUserRepository(db)
	journalRepo := repository.NewJournalRepository(db)
	chatRepo := repository.NewChatRepository()
	log.Println("INFO: [Main] Repositories initialized.")

	// Initialize the retrieval core shared by search and chat context
	retrievalCfg := config.AppConfig.Retrieval
	weights := retrieval.Weights{
		Base:    1,
		Title:   retrievalCfg.TitleWeight,
		Summary: retrievalCfg.SummaryWeight,
	}
	retrievalService := retrieval.NewService(knowledgeRepo, retrieval.DefaultSynonyms, weights)
	assembler := retrieval.NewAssembler(retrievalCfg.ExcerptBudget)

	// Initialize Services
	knowledgeService := services.NewKnowledgeService(knowledgeRepo, retrievalService)
	chatService := services.NewChatService(chatRepo, retrievalService, assembler, retrievalCfg.ContextLimit)
	journalImport := services.NewJournalImportService(knowledgeRepo, config.AppConfig.JournalDataPath)
	if err := journalImport.Sync(); err != nil {
		log.Printf("WARN: [Main] Journal import failed, continuing without imported journals: %v", err)
	}
	log.Println("INFO: [Main] Services initialized.")

	// Initialize API Handler with all dependencies
	apiHandler := api.NewAPIHandler(
		userRepo,
		journalRepo,
		chatService,
		knowledgeService,
		journalImport,
	)
	log.Println("INFO: [Main] API Handler initialized.")

	// Create Gin engine
	r := gin.Default()
	r.SetTrustedProxies(nil)

	// Register middlewares
	r.Use(middleware.Logger())
	r.Use(middleware.Cors())
	log.Println("INFO: [Main] Middlewares registered.")

	// Register routes
	registerRoutes(r, apiHandler)
	log.Println("INFO: [Main] Routes registered.")

	// Start the server
	serverPort := ":" + config.AppConfig.Server.Port
	if config.AppConfig.Server.Port == "" {
		log.Println("WARN: [Main] Server port not configured, using default :8080.")
		serverPort = ":8080"
	}
	log.Printf("INFO: [Main] Starting server on port %s", serverPort)
	if err := r.Run(serverPort); err != nil {
		log.Fatalf("FATAL: [Main] Server failed to start: %v", err)
	}
}

func runMigrations(db *gorm.DB) {
	log.Println("INFO: [Main] Running database migrations...")
	err := db.AutoMigrate(
		&models.KnowledgeContent{},
		&models.User{},
		&models.JournalEntry{},
	)
	if err != nil {
		log.Fatalf("FATAL: [Main] Failed to auto-migrate database: %v", err)
	}
	log.Println("INFO: [Main] Database migration completed.")
}

func registerRoutes(r *gin.Engine, handler *api.APIHandler) {
	apiGroup := r.Group("/api")
	{
		// Auth
		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/register", handler.RegisterHandler)
			authGroup.POST("/login", handler.LoginHandler)
		}

		// Chat (guests allowed; token enriches identity)
		apiGroup.POST("/chat", middleware.OptionalAuth(), handler.ChatHandler)
		apiGroup.GET("/chat/history", middleware.OptionalAuth(), handler.ChatHistoryHandler)

		// Knowledge base
		apiGroup.GET("/categories", handler.CategoriesHandler)
		apiGroup.GET("/knowledge", middleware.OptionalAuth(), handler.ListKnowledgeHandler)
		apiGroup.GET("/knowledge/search", handler.SearchKnowledgeHandler)
		apiGroup.POST("/knowledge", middleware.Auth(), handler.SubmitKnowledgeHandler)
		apiGroup.GET("/knowledge/mine", middleware.Auth(), handler.MyContentHandler)

		// Review workflow (admin only)
		adminGroup := apiGroup.Group("/knowledge", middleware.Auth(), middleware.RequireRole(models.RoleAdmin))
		{
			adminGroup.GET("/pending", handler.PendingKnowledgeHandler)
			adminGroup.POST("/:id/approve", handler.ApproveKnowledgeHandler)
			adminGroup.POST("/:id/reject", handler.RejectKnowledgeHandler)
			adminGroup.DELETE("/:id", handler.DeleteKnowledgeHandler)
		}

		// Imported research journals
		apiGroup.GET("/journals", handler.ImportedJournalsHandler)

		// Personal journal
		journalGroup := apiGroup.Group("/journal", middleware.Auth())
		{
			journalGroup.POST("", handler.CreateJournalEntryHandler)
			journalGroup.GET("", handler.ListJournalEntriesHandler)
			journalGroup.DELETE("/:id", handler.DeleteJournalEntryHandler)
		}
	}
}
