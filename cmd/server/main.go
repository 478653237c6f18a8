package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"

	"github.com/martyacryl/the-daily-david-sub003/internal/config"
	"github.com/martyacryl/the-daily-david-sub003/internal/handler"
	"github.com/martyacryl/the-daily-david-sub003/internal/logger"
	"github.com/martyacryl/the-daily-david-sub003/internal/middleware"
	"github.com/martyacryl/the-daily-david-sub003/internal/model"
	"github.com/martyacryl/the-daily-david-sub003/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)
	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Entry{}, &model.SermonNote{}); err != nil {
		slog.Error("db migrate failed", "err", err)
		os.Exit(1)
	}

	authSvc := service.NewAuthService(db)
	entrySvc := service.NewEntryService(db)
	sermonSvc := service.NewSermonService(db)
	bibleSvc := service.NewBibleService(cfg.Bible.BaseURL)

	authH := handler.NewAuthHandler(authSvc)
	entryH := handler.NewEntryHandler(entrySvc)
	goalH := handler.NewGoalHandler(entrySvc)
	analyticsH := handler.NewAnalyticsHandler(entrySvc)
	sermonH := handler.NewSermonHandler(sermonSvc)
	bibleH := handler.NewBibleHandler(bibleSvc)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.POST("/api/auth/login", authH.Login)
	r.POST("/api/auth/signup", authH.Signup)

	api := r.Group("/api", middleware.JWTAuth())
	api.GET("/auth/verify", authH.Verify)

	api.GET("/entries", entryH.List)
	api.GET("/entries/:date", entryH.GetByDate)
	api.POST("/entries", entryH.Save)

	api.GET("/goals/current", goalH.Current)
	api.GET("/goals/:date", goalH.ForDate)
	api.POST("/goals/reconcile", goalH.Reconcile)

	api.GET("/analytics", analyticsH.Snapshot)

	api.GET("/sermon-notes", sermonH.List)
	api.POST("/sermon-notes", sermonH.Create)
	api.GET("/sermon-notes/churches", sermonH.Churches)
	api.GET("/sermon-notes/speakers", sermonH.Speakers)
	api.GET("/sermon-notes/:id", sermonH.Get)
	api.PUT("/sermon-notes/:id", sermonH.Update)
	api.DELETE("/sermon-notes/:id", sermonH.Delete)

	api.GET("/bible/verse", bibleH.Verse)

	slog.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
