package main

import (
	"context"
	"log"
	"time"

	"snaplearn-service/internal/config"
	"snaplearn-service/internal/db"
	"snaplearn-service/internal/event"
	"snaplearn-service/internal/handlers"
	"snaplearn-service/internal/repository"
	"snaplearn-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.Load()

	// The store is optional: without it the service serves the embedded
	// fallback content and acknowledges progress updates without persisting.
	database := connectStore(cfg)
	defer db.Disconnect(database)

	// RabbitMQ event publisher
	var publisher *event.Publisher
	if cfg.RabbitURI != "" && cfg.RabbitExchange != "" {
		var err error
		publisher, err = event.NewPublisher(cfg.RabbitURI, cfg.RabbitExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, events will not be published")
	}

	contentService := service.NewContentService(nil)
	quizService := service.NewQuizService(nil)
	progressService := service.NewProgressService(nil)
	if database != nil {
		itemRepo := repository.NewItemRepository(database)
		progressRepo := repository.NewProgressRepository(database)
		contentService = service.NewContentService(itemRepo)
		quizService = service.NewQuizService(itemRepo)
		progressService = service.NewProgressService(progressRepo)

		seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		service.EnsureSeedContent(seedCtx, itemRepo)
		cancel()
	}

	contentHandler := handlers.NewContentHandler(contentService)
	quizHandler := handlers.NewQuizHandler(quizService)
	progressHandler := handlers.NewProgressHandler(progressService)
	diagHandler := handlers.NewDiagHandler(database)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	r.GET("/", diagHandler.Root)
	r.GET("/test", diagHandler.Report)

	api := r.Group("/api")
	{
		api.GET("/categories", contentHandler.ListCategories)
		api.GET("/items", contentHandler.ListItems)
		api.GET("/quiz", func(c *gin.Context) {
			quizHandler.GenerateQuiz(c)
			if publisher != nil {
				publisher.Publish("learn.quiz.generated", gin.H{
					"category":  c.Query("category"),
					"timestamp": time.Now(),
				})
			}
		})
		api.POST("/progress", func(c *gin.Context) {
			progressHandler.UpdateProgress(c)
			if publisher != nil {
				publisher.Publish("learn.progress.updated", gin.H{
					"timestamp": time.Now(),
				})
			}
		})
		api.GET("/progress", progressHandler.GetProgress)
	}

	r.Run(":" + cfg.Port)
}

// connectStore returns nil when no store is configured or reachable; the
// service starts either way.
func connectStore(cfg *config.Config) *mongo.Database {
	if cfg.DatabaseURL == "" {
		log.Println("DATABASE_URL not set, serving fallback content only")
		return nil
	}
	database, err := db.Connect(cfg.DatabaseURL, cfg.DatabaseName)
	if err != nil {
		log.Printf("MongoDB unavailable, serving fallback content: %v", err)
		return nil
	}
	return database
}
