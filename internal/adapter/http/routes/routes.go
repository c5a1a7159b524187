package routes

import (
	"log"
	"os"
	"strconv"

	_ "lexintake/docs" // This will be auto-generated
	"lexintake/internal/adapter/http/handlers"
	"lexintake/internal/adapter/http/middleware"
	repository2 "lexintake/internal/adapter/persistence/repository"
	"lexintake/internal/infrastructure/database"
	"lexintake/internal/infrastructure/objectstore"
	"lexintake/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const PORT = 8080

// Run will start the server
func Run() {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(router)

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(router *gin.Engine) {
	ddb := database.ConnectDynamoDB()
	s3Client := objectstore.ConnectS3()

	leadRepo := repository2.NewLeadDynamoRepository(ddb)
	profileRepo := repository2.NewProfileDynamoRepository(ddb)
	attachmentStore := objectstore.NewS3AttachmentStore(s3Client)

	secret := []byte(os.Getenv("JWT_SECRET"))
	if len(secret) == 0 {
		log.Fatal("JWT_SECRET must be set")
	}

	leadUseCase := usecase.NewLeadUseCase(leadRepo, attachmentStore)
	profileUseCase := usecase.NewProfileUseCase(profileRepo)
	authUseCase := usecase.NewAuthUseCase(profileRepo, secret)

	leadHandler := handlers.NewLeadHandler(leadUseCase)
	profileHandler := handlers.NewProfileHandler(profileUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase)

	// Public surface
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addLeadRoutes(v1, leadHandler)
	addAuthRoutes(v1, authHandler)

	// Staff surface behind a session check
	admin := v1.Group("/admin", middleware.RequireSession(secret))
	addAdminRoutes(admin, leadHandler, profileHandler)
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
