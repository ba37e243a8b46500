package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/fadilmartias/recruit-track/internal/config"
	"github.com/fadilmartias/recruit-track/internal/domain/fiber/handler"
	"github.com/fadilmartias/recruit-track/internal/middleware"
	"github.com/fadilmartias/recruit-track/internal/model"
	"github.com/fadilmartias/recruit-track/internal/repository"
	"github.com/fadilmartias/recruit-track/internal/service"
	"github.com/fadilmartias/recruit-track/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	err := godotenv.Load()
	if err != nil {
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

			return ctx.Status(code).JSON(fiber.Map{"error": message})
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
	app.Use(middleware.RateLimiter(100, 1*time.Minute))

	db := ConnectDB()

	elastic := service.NewElasticService()
	// Search has no degraded mode, so an unreachable index is fatal here.
	if err := elastic.Ping(); err != nil {
		log.Fatalf("Could not reach elasticsearch: %v", err)
	}
	if err := elastic.EnsureIndex(); err != nil {
		log.Fatalf("Could not ensure search index: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	candidateRepo := repository.NewCandidateRepository(db)
	downloadRepo := repository.NewDownloadLogRepository(db)
	activityRepo := repository.NewActivityLogRepository(db)

	seedAdmin(userRepo)

	authUc := usecase.NewAuthUsecase(userRepo, activityRepo)
	candidateUc := usecase.NewCandidateUsecase(candidateRepo, activityRepo, elastic)
	downloadUc := usecase.NewDownloadUsecase(userRepo, candidateRepo, downloadRepo, activityRepo, appConfig.DefaultDailyLimit)
	searchUc := usecase.NewSearchUsecase(elastic, activityRepo)
	adminUc := usecase.NewAdminUsecase(userRepo, candidateRepo, downloadRepo, activityRepo)

	if os.Getenv("REINDEX_ON_BOOT") == "true" {
		synced, err := candidateUc.RebuildIndex()
		if err != nil {
			log.Fatalf("Could not rebuild search index: %v", err)
		}
		log.Printf("Rebuilt search index with %d candidates", synced)
	}

	handler.NewAuthHandler(authUc).RegisterRoutes(app)
	handler.NewCandidateHandler(candidateUc, downloadUc).RegisterRoutes(app)
	handler.NewSearchHandler(searchUc).RegisterRoutes(app)
	handler.NewAdminHandler(adminUc, candidateUc).RegisterRoutes(app)

	// Monitor goroutine count
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			log.Printf("Active goroutines: %d", runtime.NumGoroutine())
		}
	}()

	log.Println("Server running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
		dbConfig.TimeZone,
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

	err = db.AutoMigrate(&model.User{}, &model.Candidate{}, &model.DownloadLog{}, &model.ActivityLog{})
	if err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}

// seedAdmin bootstraps the first admin account from env when no user owns
// the configured email yet.
func seedAdmin(userRepo *repository.UserRepository) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}
	if _, err := userRepo.FindByEmail(email); err == nil {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Could not hash admin password: %v", err)
	}
	admin := &model.User{
		Name:         "Admin",
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
		Active:       true,
	}
	if err := userRepo.Create(admin); err != nil {
		log.Fatalf("Could not seed admin user: %v", err)
	}
	log.Printf("Seeded admin user %s", email)
}
