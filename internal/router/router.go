package router

import (
	"time"

	"agrofield/internal/config"
	"agrofield/internal/handler"
	"agrofield/internal/middleware"
	"agrofield/internal/repository"
	"agrofield/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	producerRepo := repository.NewProducerRepository(db)
	soilTypeRepo := repository.NewSoilTypeRepository(db)
	irrigationTypeRepo := repository.NewIrrigationTypeRepository(db)
	areaRepo := repository.NewAreaRepository(db)
	productRepo := repository.NewProductRepository(db)
	harvestRepo := repository.NewHarvestRepository(db)
	plantingRepo := repository.NewPlantingRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	producerSvc := service.NewProducerService(producerRepo)
	soilTypeSvc := service.NewSoilTypeService(soilTypeRepo, areaRepo)
	irrigationTypeSvc := service.NewIrrigationTypeService(irrigationTypeRepo, areaRepo)
	areaSvc := service.NewAreaService(areaRepo, producerRepo, soilTypeRepo, irrigationTypeRepo)
	productSvc := service.NewProductService(productRepo)
	harvestSvc := service.NewHarvestService(harvestRepo, producerRepo)
	plantingSvc := service.NewPlantingService(plantingRepo, harvestRepo, productRepo, areaRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	producersH := handler.NewProducersHandler(producerSvc)
	soilTypesH := handler.NewSoilTypesHandler(soilTypeSvc)
	irrigationTypesH := handler.NewIrrigationTypesHandler(irrigationTypeSvc)
	areasH := handler.NewAreasHandler(areaSvc)
	productsH := handler.NewProductsHandler(productSvc)
	harvestsH := handler.NewHarvestsHandler(harvestSvc, rdb, cfg.TotalAreaCacheTTL())
	plantingsH := handler.NewPlantingsHandler(plantingSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		producers := v1.Group("/producers")
		{
			producers.POST("", producersH.Create)
			producers.GET("", producersH.List)
			producers.GET("/:id", producersH.GetByID)
			producers.PUT("/:id", producersH.Update)
			producers.DELETE("/:id", producersH.Delete)
			producers.GET("/:id/areas", areasH.ListByProducer)
		}

		soilTypes := v1.Group("/soil-types")
		{
			soilTypes.POST("", soilTypesH.Create)
			soilTypes.GET("", soilTypesH.List)
			soilTypes.PUT("/:id", soilTypesH.Update)
			soilTypes.DELETE("/:id", soilTypesH.Delete)
		}

		irrigationTypes := v1.Group("/irrigation-types")
		{
			irrigationTypes.POST("", irrigationTypesH.Create)
			irrigationTypes.GET("", irrigationTypesH.List)
			irrigationTypes.PUT("/:id", irrigationTypesH.Update)
			irrigationTypes.DELETE("/:id", irrigationTypesH.Delete)
		}

		areas := v1.Group("/areas")
		{
			areas.POST("", areasH.Create)
			areas.GET("", areasH.List)
			areas.GET("/:id", areasH.GetByID)
			areas.PUT("/:id", areasH.Update)
			areas.PATCH("/:id/status", areasH.UpdateStatus)
		}

		products := v1.Group("/products")
		{
			products.POST("", productsH.Create)
			products.GET("", productsH.List)
			products.PUT("/:id", productsH.Update)
			products.DELETE("/:id", productsH.Delete)
		}

		varieties := v1.Group("/varieties")
		{
			varieties.POST("", productsH.CreateVariety)
			varieties.GET("", productsH.ListVarieties)
			varieties.PUT("/:id", productsH.UpdateVariety)
			varieties.DELETE("/:id", productsH.DeleteVariety)
		}

		harvests := v1.Group("/harvests")
		{
			harvests.POST("", harvestsH.Create)
			harvests.GET("", harvestsH.List)
			harvests.GET("/:id", harvestsH.GetByID)
			harvests.PUT("/:id", harvestsH.Update)
			harvests.DELETE("/:id", harvestsH.Delete)
			harvests.GET("/:id/total-area", harvestsH.TotalArea)
			harvests.GET("/:id/total-area/direct", harvestsH.TotalAreaDirect)
		}

		plantings := v1.Group("/plantings")
		{
			plantings.POST("", plantingsH.Create)
			plantings.GET("", plantingsH.List)
			plantings.GET("/:id", plantingsH.GetByID)
			plantings.DELETE("/:id", plantingsH.Delete)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
