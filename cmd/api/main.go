package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "mis/api/swagger" // swagger docs
	"mis/internal/access"
	"mis/internal/config"
	"mis/internal/database"
	"mis/internal/handler"
	"mis/internal/logger"
	"mis/internal/middleware"
	"mis/internal/repository"
	"mis/internal/service"
	"mis/internal/session"
	"mis/internal/storage"
	"mis/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/sync/errgroup"
)

// @title           MIS API
// @version         1.0
// @description     Management information system: projects, tracking sheet, documents, pictures, reports and links.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name auth
func main() {
	cfg, err := config.Load()
	if err != nil {
		l := logger.New("info", "pretty")
		l.Fatal().Err(err).Msg("Configuration invalid")
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
	log.Info().Msg("Server stopped cleanly")
}

func run(cfg *config.Config, log zerolog.Logger) error {
	db, err := database.NewConnection(cfg.DatabaseURL, database.Options{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Error().Err(err).Msg("Database close failed")
		}
	}()
	log.Info().Msg("Connected to PostgreSQL successfully.")

	if err := database.Migrate(db); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	// Set up WebSocket Hub
	wsHub := websocket.NewHub(log, cfg.CORSOrigins)

	// Set up dependencies (Repository -> Service -> Handler)
	issuer := session.NewIssuer(cfg.SessionSecret, cfg.SessionTTL)
	userRepo := repository.NewUserRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	tables := repository.NewTables(db)
	txManager := repository.NewTransactionManager(db)

	gate := access.NewGate(issuer, userRepo)
	auth := middleware.NewAuth(gate)

	roots := map[string]string{}
	for _, kind := range []string{storage.KindPictures, storage.KindReports, storage.KindDocuments} {
		roots[kind] = cfg.UploadRoot(kind)
	}
	store := storage.NewStore(roots, cfg.UploadMaxBytes)

	auditService := service.NewAuditService(auditRepo, wsHub)
	userService := service.NewUserService(userRepo, issuer, auditService)
	projectService := service.NewProjectService(tables, auditService)
	trackingService := service.NewTrackingService(tables, auditService)
	libraryService := service.NewLibraryService(tables, auditService)
	mediaService := service.NewMediaService(tables, store, txManager, auditService, cfg.UploadBatchMode)

	if cfg.SeedAdminUsername != "" && cfg.SeedAdminPassword != "" {
		created, err := userService.SeedAdmin(ctx, service.SeedAdminRequest{
			Username: cfg.SeedAdminUsername,
			Password: cfg.SeedAdminPassword,
			Email:    cfg.SeedAdminEmail,
			Name:     "Administrator",
		})
		if err != nil {
			return err
		}
		if created {
			log.Info().Str("username", cfg.SeedAdminUsername).Msg("Seeded administrator")
		}
	}

	// Initialize Handlers
	cookie := session.CookieOptions{Secure: cfg.IsProduction()}
	userHandler := handler.NewUserHandler(userService, auth, issuer, cookie)
	auditHandler := handler.NewAuditHandler(auditService, auth)
	projectHandler := handler.NewProjectHandler(projectService, auth)
	trackingHandler := handler.NewTrackingHandler(trackingService, auth)
	mediaHandler := handler.NewMediaHandler(mediaService,
		service.NewResource(tables.Pictures, auditService),
		service.NewResource(tables.Reports, auditService),
		auth)
	libraryHandler := handler.NewLibraryHandler(libraryService, mediaService, auth)
	pageHandler := handler.NewPageHandler("MIS")

	// Set up Gin Router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(log), middleware.Secure(cfg.IsProduction()))

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	if err := handler.LoadTemplates(router); err != nil {
		return err
	}

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	// WebSocket endpoint
	router.GET("/ws", wsHub.Handler(gate))

	// Uploaded files, addressed by the relative path stored on each record
	for kind, root := range roots {
		router.Static("/uploads/"+kind, root)
	}

	// API Routing
	userHandler.RegisterRoutes(router.Group(""))
	auditHandler.RegisterRoutes(router.Group(""))
	projectHandler.RegisterRoutes(router.Group(""))
	trackingHandler.RegisterRoutes(router.Group(""))
	mediaHandler.RegisterRoutes(router.Group(""))
	libraryHandler.RegisterRoutes(router.Group(""))
	pageHandler.RegisterRoutes(router.Group(""), issuer)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return wsHub.Run(gctx)
	})
	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
