package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/hireloop/backend/internal/config"
	"github.com/hireloop/backend/internal/domain/fiber/handler"
	"github.com/hireloop/backend/internal/middleware"
	"github.com/hireloop/backend/internal/model"
	"github.com/hireloop/backend/internal/repository"
	"github.com/hireloop/backend/internal/service"
	"github.com/hireloop/backend/internal/usecase"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}
			return ctx.Status(code).JSON(fiber.Map{"success": false, "message": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.Env == "production"
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	db := ConnectDB()

	interviewRepo := repository.NewInterviewRepository(db)
	questionRepo := repository.NewQuestionRepository(db)

	generatorConfig := config.LoadGeneratorConfig()
	var generator service.QuestionGeneratorInterface
	switch generatorConfig.Provider {
	case "gemini":
		gemini, err := service.NewGeminiService(ctx)
		if err != nil {
			log.Fatal(err)
		}
		generator = gemini
	default:
		generator = service.NewOllamaService()
	}
	source := service.NewQuestionSource(generator)

	questionConfig := config.LoadQuestionConfig()
	questionUC := usecase.NewQuestionUsecase(questionRepo, interviewRepo, source, questionConfig.Mode, questionConfig.TotalQuestions)
	interviewUC := usecase.NewInterviewUsecase(interviewRepo)

	handler.NewInterviewHandler(interviewUC).RegisterRoutes(app)
	handler.NewQuestionHandler(questionUC).RegisterRoutes(app)

	log.Printf("Question mode: %s (%d questions per session, provider %s)",
		questionConfig.Mode, questionConfig.TotalQuestions, generatorConfig.Provider)
	log.Println("Server running on", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	if err := db.AutoMigrate(&model.Interview{}, &model.InterviewQuestion{}); err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}
