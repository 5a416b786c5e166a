package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"devblog"
	"devblog/config"
	"devblog/internal/application/usecase"
	"devblog/internal/infrastructure/auth"
	"devblog/internal/infrastructure/database"
	"devblog/internal/infrastructure/minio"
	"devblog/internal/presentation/handler"
	"devblog/internal/presentation/middleware"
	"devblog/pkg/logger"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running devblog", "version", devblog.StringVersion())

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}

	userWriter := database.NewUserWriter(db)
	userRetriever := database.NewUserRetriever(db)
	blogWriter := database.NewBlogWriter(db)
	blogRetriever := database.NewBlogRetriever(db)
	blogRemover := database.NewBlogRemover(db)
	blogLister := database.NewBlogLister(db)

	minIOClient, err := minio.New(&cfg.MinIOClient)
	if err != nil {
		ExitOnError(err)
	}
	minIOUploader := minio.NewUploader(minIOClient, &cfg.MinIOUploader)
	minIORemover := minio.NewRemover(minIOClient, &cfg.MinIORemover)

	tokens, err := auth.NewJWTService(cfg.Token.Secret, cfg.Token.Expiry())
	if err != nil {
		ExitOnError(err)
	}

	authUsecase := usecase.NewAuth(userRetriever, userWriter, auth.NewBcryptHasher(), tokens)
	mediaUsecase := usecase.NewMedia(minIOUploader, minIORemover)
	blogUsecase := usecase.NewBlog(blogWriter, blogRetriever, blogRemover, blogLister,
		userRetriever, mediaUsecase)

	verbose := !cfg.IsProd()
	authHandler := handler.NewAuthHandler(authUsecase, verbose)
	blogHandler := handler.NewBlogHandler(blogUsecase, verbose)
	requireAuth := middleware.AuthMiddleware(tokens)

	e := echo.New()
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost,
			http.MethodDelete, http.MethodHead, http.MethodOptions},
		MaxAge: 86400,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit("50M"))
	e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(20)))

	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	e.POST("/auth/register", authHandler.HandleRegister)
	e.POST("/auth/login", authHandler.HandleLogin)
	e.GET("/auth/me", authHandler.HandleMe, requireAuth)

	e.GET("/blogs", blogHandler.HandleList)
	e.GET("/blogs/:id", blogHandler.HandleGet)

	// /blogs/user/me is registered before /blogs/:id mutations so the
	// static segment wins over the id parameter.
	e.GET("/blogs/user/me", blogHandler.HandleMyBlogs, requireAuth)
	e.POST("/blogs", blogHandler.HandleCreate, requireAuth)
	e.PUT("/blogs/:id", blogHandler.HandleUpdate, requireAuth)
	e.DELETE("/blogs/:id", blogHandler.HandleDelete, requireAuth)
	e.POST("/blogs/:id/like", blogHandler.HandleToggleLike, requireAuth)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.Default.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		ExitOnError(err)
	}

	if err := db.Stop(); err != nil {
		ExitOnError(err)
	}
}
