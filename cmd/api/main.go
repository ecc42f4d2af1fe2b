package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/medicore/hospital-api/internal/appointment"
	"github.com/medicore/hospital-api/internal/config"
	"github.com/medicore/hospital-api/internal/directory"
	"github.com/medicore/hospital-api/internal/handlers"
	"github.com/medicore/hospital-api/internal/media"
	"github.com/medicore/hospital-api/internal/middleware"
	"github.com/medicore/hospital-api/internal/models"
	"github.com/medicore/hospital-api/internal/repository"
	"github.com/medicore/hospital-api/internal/user"
	"github.com/medicore/hospital-api/internal/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// --- Database Connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())
	db := client.Database(cfg.MongoDatabase)
	log.Println("Successfully connected to MongoDB!")

	// --- Repositories ---
	userRepo := repository.NewMongoUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}
	aptRepo := repository.NewMongoAppointmentRepository(db)

	// --- Services ---
	jwtManager := utils.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)

	var uploader media.Uploader
	if cfg.CloudinaryURL != "" {
		uploader, err = media.NewCloudinaryUploader(cfg.CloudinaryURL)
		if err != nil {
			log.Fatalf("Failed to init Cloudinary: %v", err)
		}
	} else {
		log.Println("CLOUDINARY_URL not set, doctor avatar uploads will fail.")
	}

	userSvc := user.NewService(userRepo, uploader, jwtManager)
	resolver := directory.NewResolver(userRepo)
	aptSvc := appointment.NewService(aptRepo, resolver)

	h := handlers.NewHandler(userSvc, aptSvc)

	// --- Gin Router ---
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.Origin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	admin := string(models.RoleAdmin)
	patient := string(models.RolePatient)

	// --- Routes ---
	userRoutes := r.Group("/api/v1/user")
	{
		userRoutes.POST("/patient/register", h.RegisterPatient)
		userRoutes.POST("/login", h.Login)
		userRoutes.GET("/doctors", h.ListDoctors)

		adminOnly := userRoutes.Group("")
		adminOnly.Use(middleware.Auth(jwtManager), middleware.RequireRoles(admin))
		{
			adminOnly.POST("/admin/addnew", h.AddAdmin)
			adminOnly.POST("/doctor/addnew", h.AddDoctor)
			adminOnly.GET("/admin/me", h.Me)
			adminOnly.GET("/admin/logout", h.LogoutAdmin)
		}

		patientOnly := userRoutes.Group("")
		patientOnly.Use(middleware.Auth(jwtManager), middleware.RequireRoles(patient))
		{
			patientOnly.GET("/patient/me", h.Me)
			patientOnly.GET("/patient/logout", h.LogoutPatient)
		}
	}

	aptRoutes := r.Group("/api/v1/appointment")
	aptRoutes.Use(middleware.Auth(jwtManager))
	{
		aptRoutes.POST("/post", middleware.RequireRoles(patient), h.BookAppointment)

		// The list/update/delete gates live here; the services below do
		// not re-check roles.
		aptRoutes.GET("/getall", middleware.RequireRoles(admin), h.GetAllAppointments)
		aptRoutes.PUT("/update/:id", middleware.RequireRoles(admin), h.UpdateAppointment)
		aptRoutes.DELETE("/delete/:id", middleware.RequireRoles(admin), h.DeleteAppointment)
	}

	log.Printf("Starting server on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
