package container

import (
	"context"
	"fmt"
	"time"

	"recipes-backend/internal/config"
	"recipes-backend/internal/infrastructure/database"
	"recipes-backend/internal/infrastructure/storage"

	categoryDomain "recipes-backend/internal/domains/category"
	categoryHandler "recipes-backend/internal/domains/category/handler"
	categoryRepo "recipes-backend/internal/domains/category/repository"
	categoryService "recipes-backend/internal/domains/category/service"

	imageDomain "recipes-backend/internal/domains/image"
	imageHandler "recipes-backend/internal/domains/image/handler"
	imageService "recipes-backend/internal/domains/image/service"

	ingredientDomain "recipes-backend/internal/domains/ingredient"
	ingredientHandler "recipes-backend/internal/domains/ingredient/handler"
	ingredientRepo "recipes-backend/internal/domains/ingredient/repository"
	ingredientService "recipes-backend/internal/domains/ingredient/service"

	recipeHandler "recipes-backend/internal/domains/recipe/handler"
	recipeRepo "recipes-backend/internal/domains/recipe/repository"
	recipeService "recipes-backend/internal/domains/recipe/service"

	tagDomain "recipes-backend/internal/domains/tag"
	tagHandler "recipes-backend/internal/domains/tag/handler"
	tagRepo "recipes-backend/internal/domains/tag/repository"
	tagService "recipes-backend/internal/domains/tag/service"
)

// Container is the root of the dependency graph. Everything is constructed
// here, in order: config, infrastructure, repositories, services, handlers.
// The pool is opened once at process start and closed by Cleanup; nothing
// holds ambient global state.
type Container struct {
	Config  *config.Config
	DB      *database.PostgresDB
	Storage *storage.MinIOStorage

	IngredientRepo ingredientDomain.Repository
	RecipeRepo     recipeRepo.RecipeRepository
	CategoryRepo   categoryDomain.CategoryRepository
	TagRepo        tagDomain.TagRepository

	IngredientService ingredientDomain.Service
	RecipeService     recipeService.RecipeService
	CategoryService   categoryDomain.CategoryService
	TagService        tagDomain.TagService
	ImageService      imageDomain.Service

	RecipeHandler     *recipeHandler.RecipeHandler
	CategoryHandler   *categoryHandler.CategoryHandler
	TagHandler        *tagHandler.TagHandler
	IngredientHandler *ingredientHandler.IngredientHandler
	ImageHandler      *imageHandler.ImageHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	db := database.NewPostgresDB(&cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	store, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize object storage: %w", err)
	}
	c.Storage = store

	// Repositories
	resolver := ingredientRepo.NewResolver()
	c.IngredientRepo = ingredientRepo.NewPostgresIngredientRepository(db.Pool)
	c.RecipeRepo = recipeRepo.NewPostgresRecipeRepository(db.Pool, resolver)
	c.CategoryRepo = categoryRepo.NewPostgresCategoryRepository(db.Pool)
	c.TagRepo = tagRepo.NewPostgresTagRepository(db.Pool)

	// Services
	c.IngredientService = ingredientService.NewIngredientService(c.IngredientRepo)
	c.RecipeService = recipeService.NewRecipeService(c.RecipeRepo)
	c.CategoryService = categoryService.NewCategoryService(c.CategoryRepo)
	c.TagService = tagService.NewTagService(c.TagRepo)
	c.ImageService = imageService.NewImageService(store)

	// Handlers
	c.RecipeHandler = recipeHandler.NewRecipeHandler(c.RecipeService)
	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.CategoryService)
	c.TagHandler = tagHandler.NewTagHandler(c.TagService)
	c.IngredientHandler = ingredientHandler.NewIngredientHandler(c.IngredientService)
	c.ImageHandler = imageHandler.NewImageHandler(c.ImageService)

	return c, nil
}

// Cleanup releases infrastructure resources; called on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
}
