package main

import (
	"log"
	"strings"
	"time"

	"anoa.com/kosthub/internal/bootstrap"
	"anoa.com/kosthub/internal/config"
	"anoa.com/kosthub/internal/guard"
	"anoa.com/kosthub/internal/handler"
	"anoa.com/kosthub/internal/middleware"
	"anoa.com/kosthub/internal/ratelimit"
	"anoa.com/kosthub/internal/repository"
	"anoa.com/kosthub/internal/service"
	"anoa.com/kosthub/pkg/database"
	"anoa.com/kosthub/pkg/storage"
	"anoa.com/kosthub/pkg/validation"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db := database.Connect()
	if err := bootstrap.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if cfg.AppEnv == "development" {
		if err := bootstrap.SeedAdminUser(db); err != nil {
			log.Fatalf("failed to seed admin user: %v", err)
		}
	}

	validation.RegisterBindings()

	userRepo := repository.NewUserRepository(db)
	hostelRepo := repository.NewHostelRepository(db)
	profileRepo := repository.NewStudentProfileRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	announcementRepo := repository.NewAnnouncementRepository(db)

	photoStorage, err := storage.NewCloudinaryStorage()
	if err != nil {
		log.Fatalf("failed to initialize cloudinary storage: %v", err)
	}

	meiliClient := meilisearch.New(cfg.MeiliSearchHost, meilisearch.WithAPIKey(cfg.MeiliMasterKey))
	searchService := service.NewMeiliSearchService(meiliClient)

	resolver := guard.NewResolver(userRepo, cfg.JWTSecret)
	ownership := guard.NewOwnership(hostelRepo, profileRepo, ticketRepo, paymentRepo)
	g := guard.NewGuard(ownership, profileRepo)

	// Rate limit pakai Redis kalau tersedia, kalau tidak fallback ke memori
	// proses. Dua-duanya advisory (lihat internal/ratelimit).
	var limiter ratelimit.Limiter
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		limiter = ratelimit.NewRedisLimiter(redis.NewClient(opts))
		log.Println("rate limiter: redis")
	} else {
		limiter = ratelimit.NewMemoryLimiter()
		log.Println("rate limiter: in-memory")
	}

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	hostelService := service.NewHostelService(hostelRepo, photoStorage, searchService)
	studentService := service.NewStudentService(profileRepo, hostelRepo)
	ticketService := service.NewTicketService(ticketRepo)
	paymentService := service.NewPaymentService(paymentRepo, profileRepo)
	announcementService := service.NewAnnouncementService(announcementRepo)
	adminService := service.NewAdminService(userRepo, hostelRepo, searchService)

	authHandler := handler.NewAuthHandler(authService)
	hostelHandler := handler.NewHostelHandler(hostelService, g)
	studentHandler := handler.NewStudentHandler(studentService, g)
	ticketHandler := handler.NewTicketHandler(ticketService, g)
	paymentHandler := handler.NewPaymentHandler(paymentService, g)
	announcementHandler := handler.NewAnnouncementHandler(announcementService, g)
	adminHandler := handler.NewAdminHandler(adminService)

	authMiddleware := middleware.NewAuthMiddleware(resolver)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(limiter)

	router := gin.Default()
	setupCORS(router, cfg.AllowedOrigins)

	api := router.Group("/api")

	// Public routes (tidak perlu auth)
	{
		auth := api.Group("/auth")
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)

		api.GET("/hostels/browse", hostelHandler.Browse)
	}

	// Protected routes (perlu auth)
	api.Use(authMiddleware.RequireAuth())
	{
		api.GET("/hostels/:hostel_id", hostelHandler.GetHostel)

		owner := api.Group("/owner")
		owner.Use(authMiddleware.RequireOwner())
		{
			owner.POST("/hostels", hostelHandler.CreateHostel)
			owner.GET("/hostels", hostelHandler.MyHostels)
			owner.PUT("/hostels/:hostel_id", hostelHandler.UpdateHostel)
			owner.DELETE("/hostels/:hostel_id", hostelHandler.DeleteHostel)
			owner.POST("/hostels/:hostel_id/photo", hostelHandler.UploadPhoto)
			owner.POST("/hostels/:hostel_id/invite-code", hostelHandler.RegenerateInviteCode)

			owner.GET("/hostels/:hostel_id/tickets", ticketHandler.HostelTickets)
			owner.POST("/tickets/:ticket_id/reply",
				rateLimitMiddleware.Limit("update_ticket", cfg.RateLimitTicketMax, cfg.RateLimitTicketWindow),
				ticketHandler.Reply)
			owner.PATCH("/tickets/:ticket_id/status",
				rateLimitMiddleware.Limit("update_ticket", cfg.RateLimitTicketMax, cfg.RateLimitTicketWindow),
				ticketHandler.UpdateStatus)

			owner.POST("/hostels/:hostel_id/dues",
				rateLimitMiddleware.Limit("generate_dues", cfg.RateLimitDuesMax, cfg.RateLimitDuesWindow),
				paymentHandler.GenerateDues)
			owner.GET("/hostels/:hostel_id/payments", paymentHandler.HostelPayments)
			owner.PATCH("/payments/:payment_id/paid", paymentHandler.MarkPaid)

			owner.POST("/hostels/:hostel_id/announcements", announcementHandler.Create)
			owner.DELETE("/hostels/:hostel_id/announcements/:announcement_id", announcementHandler.Delete)
		}

		student := api.Group("/student")
		student.Use(authMiddleware.RequireStudent())
		{
			student.POST("/join-hostel",
				rateLimitMiddleware.Limit("join_hostel", cfg.RateLimitJoinMax, cfg.RateLimitJoinWindow),
				studentHandler.JoinHostel)
			student.GET("/profile", studentHandler.MyProfile)
			student.DELETE("/profile", studentHandler.LeaveHostel)

			student.POST("/tickets",
				rateLimitMiddleware.Limit("create_ticket", cfg.RateLimitTicketMax, cfg.RateLimitTicketWindow),
				ticketHandler.CreateTicket)
			student.GET("/tickets", ticketHandler.MyTickets)

			student.GET("/payments", paymentHandler.MyPayments)
		}

		api.GET("/tickets/:ticket_id", ticketHandler.GetTicket)
		api.GET("/hostels/:hostel_id/announcements", announcementHandler.ListForHostel)

		admin := api.Group("/admin")
		admin.Use(authMiddleware.RequireAdmin())
		{
			admin.GET("/users", adminHandler.ListUsers)
			admin.PATCH("/users/:user_id/blocked", adminHandler.SetBlocked)
			admin.PATCH("/users/:user_id/role", adminHandler.SetRole)
			admin.DELETE("/users/:user_id", adminHandler.DeleteUser)

			admin.GET("/hostels", adminHandler.ListHostels)
			admin.PATCH("/hostels/:hostel_id/approve", adminHandler.ApproveHostel)

			admin.GET("/tickets", ticketHandler.ListAll)
			admin.PATCH("/tickets/:ticket_id/notes", ticketHandler.AddAdminNotes)
		}
	}

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
