package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"fitlife/internal/admin"
	"fitlife/internal/announcement"
	"fitlife/internal/auth"
	"fitlife/internal/config"
	"fitlife/internal/member"
	"fitlife/internal/payment"
	"fitlife/internal/reminder"
	"fitlife/internal/task"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Deps struct {
	DB     *sqlx.DB
	Config *config.Config

	// Revocations defaults to the no-op store.
	Revocations auth.RevocationStore
	// Credentials defaults to bcrypt at the default cost.
	Credentials auth.Credentials
	// Notifier is optional; reminders stay dashboard-only without it.
	Notifier reminder.Notifier
}

type Server struct {
	router  *gin.Engine
	http    *http.Server
	limiter *RateLimiter
}

func New(deps Deps) (*Server, error) {
	cfg := deps.Config
	if deps.Credentials == nil {
		deps.Credentials = auth.NewBcryptCredentials()
	}

	sessions, err := auth.NewSessionIssuer(cfg.JWTSecret, deps.Revocations)
	if err != nil {
		return nil, err
	}
	cookies := auth.CookieConfig{Secure: cfg.CookieSecure, SameSite: cfg.CookieSameSite}

	adminService := admin.NewService(admin.NewRepository(deps.DB, deps.Credentials), deps.Credentials)
	memberService := member.NewService(member.NewRepository(deps.DB, deps.Credentials), deps.Credentials)
	paymentService := payment.NewService(payment.NewRepository(deps.DB))
	reminderService := reminder.NewService(reminder.NewRepository(deps.DB), memberService, deps.Notifier)
	taskService := task.NewService(task.NewRepository(deps.DB))
	announcementService := announcement.NewService(announcement.NewRepository(deps.DB))

	adminHandler := admin.NewHandler(adminService, sessions, cookies)
	memberHandler := member.NewHandler(memberService, sessions, cookies)
	paymentHandler := payment.NewHandler(paymentService)
	reminderHandler := reminder.NewHandler(reminderService)
	taskHandler := task.NewHandler(taskService)
	announcementHandler := announcement.NewHandler(announcementService)

	adminGuard := auth.AdminGuard(sessions, adminService.ResolveScope)
	memberGuard := auth.MemberGuard(sessions, memberService.ResolveScope)
	limiter := NewRateLimiter(cfg.LoginRateLimitRPS, cfg.LoginRateLimitBurst, 3*time.Minute)
	loginLimit := RateLimitMiddleware(limiter)

	router := gin.New()
	router.Use(gin.Recovery(), RequestLoggingMiddleware(), MetricsMiddleware(), corsMiddleware(cfg.CORSOrigins))

	router.GET("/health", Health(deps.DB))
	router.GET("/metrics", Metrics())

	api := router.Group("/api")
	{
		api.POST("/admin/register", adminHandler.Register)
		api.POST("/admin/login", loginLimit, adminHandler.Login)
		api.POST("/admin/logout", adminHandler.Logout)
		api.GET("/admin/me", adminGuard, adminHandler.Me)
		api.GET("/admin/dashboard", adminGuard, adminHandler.Dashboard)
		api.GET("/auth/check-auth", adminGuard, adminHandler.CheckAuth)

		api.POST("/members/login", loginLimit, memberHandler.Login)
		api.POST("/members/auth/logout", memberHandler.Logout)
		api.GET("/members/me", memberGuard, memberHandler.Me)
		api.GET("/members", adminGuard, memberHandler.List)
		api.POST("/members", adminGuard, memberHandler.Create)
		api.PUT("/members/:id", adminGuard, memberHandler.Update)
		api.DELETE("/members/:id", adminGuard, memberHandler.Delete)

		api.GET("/payments", adminGuard, paymentHandler.List)
		api.POST("/payments", adminGuard, paymentHandler.Create)
		api.POST("/payments/pay", adminGuard, paymentHandler.Create)
		api.GET("/payments/receipt/:id", adminGuard, paymentHandler.Receipt)
		api.POST("/payments/remind/:id", adminGuard, memberHandler.SendPaymentReminder)

		api.POST("/reminders", adminGuard, reminderHandler.Create)
		api.GET("/reminders", memberGuard, reminderHandler.List)
		api.PATCH("/reminders/read/:id", memberGuard, reminderHandler.MarkRead)
		api.DELETE("/reminders/my/:id", memberGuard, reminderHandler.Delete)

		api.GET("/tasks", memberGuard, taskHandler.List)
		api.POST("/tasks", memberGuard, taskHandler.Create)
		api.PUT("/tasks/:id", memberGuard, taskHandler.Update)
		api.DELETE("/tasks/:id", memberGuard, taskHandler.Delete)

		api.GET("/announcements", adminGuard, announcementHandler.List)
		api.POST("/announcements", adminGuard, announcementHandler.Create)
		api.DELETE("/announcements/:id", adminGuard, announcementHandler.Delete)
		api.GET("/announcements/member", memberGuard, announcementHandler.ListForMember)
	}

	return &Server{
		router:  router,
		limiter: limiter,
		http: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Start blocks until the server stops. A graceful Shutdown returns nil.
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.limiter.Stop()
	return s.http.Shutdown(ctx)
}

var defaultOrigins = []string{"http://localhost:5173"}

func corsMiddleware(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		origins = defaultOrigins
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
