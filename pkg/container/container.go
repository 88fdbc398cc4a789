package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"recipeshare-backend/internal/config"
	"recipeshare-backend/internal/infrastructure/database"
	"recipeshare-backend/internal/infrastructure/storage"

	recipeHandler "recipeshare-backend/internal/domains/recipe/handler"
	recipeRepo "recipeshare-backend/internal/domains/recipe/repository"
	recipeService "recipeshare-backend/internal/domains/recipe/service"
	reviewHandler "recipeshare-backend/internal/domains/review/handler"
	reviewRepo "recipeshare-backend/internal/domains/review/repository"
	reviewService "recipeshare-backend/internal/domains/review/service"
	userHandler "recipeshare-backend/internal/domains/user/handler"
	userRepo "recipeshare-backend/internal/domains/user/repository"
	userService "recipeshare-backend/internal/domains/user/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của application
// Struct này là "root" của dependency graph
type Container struct {
	// Infrastructure components - shared across all domains
	// Lifecycle: Singleton (1 instance duy nhất trong app lifetime)
	Config  *config.Config
	DB      *database.PostgresDB
	Storage storage.ImageUploader // nil khi MinIO không available

	// Repository layer - domain data access
	RecipeRepo recipeRepo.RecipeRepository
	ReviewRepo reviewRepo.ReviewRepository
	UserRepo   userRepo.UserRepository

	// Service layer - domain business logic
	RecipeService recipeService.ServiceInterface
	ReviewService reviewService.ServiceInterface
	UserService   userService.ServiceInterface

	// Handler layer - thin HTTP layer delegates to services
	RecipeHandler *recipeHandler.RecipeHandler
	ReviewHandler *reviewHandler.ReviewHandler
	UserHandler   *userHandler.UserHandler
}

// NewContainer tạo và initialize toàn bộ dependency graph
//
// QUAN TRỌNG: Thứ tự initialization:
// 1. Config (không phụ thuộc gì)
// 2. Infrastructure (DB, Storage) - phụ thuộc Config
// 3. Repositories - phụ thuộc Infrastructure
// 4. Services - phụ thuộc Repositories
// 5. Handlers - phụ thuộc Services
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	log.Println("🗄️  Connecting to PostgreSQL...")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	// Connect với timeout 30s
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	log.Println("✅ Database connected")

	// Schema bootstrap: idempotent, failures are logged inside
	db.InitSchema(context.Background())

	// ========================================
	// STEP 3: INITIALIZE OBJECT STORAGE
	// ========================================
	log.Println("🪣 Connecting to MinIO...")

	// Storage failure không critical - recipe images degrade to empty
	// string, mọi thứ khác vẫn hoạt động
	if minioStorage, err := storage.NewMinIOStorage(cfg.MinIO); err != nil {
		log.Printf("⚠️  MinIO connection failed (non-critical): %v", err)
	} else {
		c.Storage = minioStorage
		log.Println("✅ MinIO connected")
	}

	// ========================================
	// STEP 4: INITIALIZE REPOSITORIES
	// ========================================
	log.Println("📦 Initializing repositories...")

	c.initRepositories()
	log.Println("✅ Repositories initialized")

	// ========================================
	// STEP 5: INITIALIZE SERVICES
	// ========================================
	log.Println("⚙️  Initializing services...")

	c.initServices()
	log.Println("✅ Services initialized")

	// ========================================
	// STEP 6: INITIALIZE HANDLERS
	// ========================================
	log.Println("🎯 Initializing handlers...")

	c.initHandlers()
	log.Println("✅ Handlers initialized")

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// initRepositories khởi tạo tất cả repositories
// Pattern: Constructor Injection
func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.RecipeRepo = recipeRepo.NewPostgresRepository(pool)
	c.ReviewRepo = reviewRepo.NewPostgresRepository(pool)
	c.UserRepo = userRepo.NewPostgresRepository(pool)
}

// initServices khởi tạo tất cả services
func (c *Container) initServices() {
	adminID := c.Config.Auth.AdminUserID

	c.RecipeService = recipeService.NewRecipeService(c.RecipeRepo, c.Storage, adminID)
	c.ReviewService = reviewService.NewReviewService(c.ReviewRepo)
	c.UserService = userService.NewUserService(c.UserRepo, adminID)
}

// initHandlers khởi tạo tất cả HTTP handlers
func (c *Container) initHandlers() {
	c.RecipeHandler = recipeHandler.NewRecipeHandler(c.RecipeService)
	c.ReviewHandler = reviewHandler.NewReviewHandler(c.ReviewService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
}

// Cleanup dọn dẹp resources khi shutdown
// Gọi trong graceful shutdown của server
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
		log.Println("✅ Database connections closed")
	}

	log.Println("✅ Container cleanup completed")
}
