// Package web 状态接口服务
package web

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/namhuunam/xxvn-crawler-go/internal/config"
	"github.com/namhuunam/xxvn-crawler-go/internal/crawler"
	"github.com/namhuunam/xxvn-crawler-go/internal/database"
	"github.com/namhuunam/xxvn-crawler-go/internal/database/repository"
)

// Server 状态接口服务器
type Server struct {
	app       *fiber.App
	cfg       *config.WebConfig
	stats     *crawler.Stats
	startTime time.Time
}

// New 创建状态接口服务器
func New(cfg *config.WebConfig, stats *crawler.Stats) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(recover.New())

	server := &Server{
		app:       app,
		cfg:       cfg,
		stats:     stats,
		startTime: time.Now(),
	}

	server.registerRoutes()

	return server
}

// registerRoutes 注册路由
func (s *Server) registerRoutes() {
	s.app.Get("/health", s.healthCheck)
	s.app.Get("/", s.healthCheck)
	s.app.Get("/status", s.status)
}

// healthCheck 健康检查
func (s *Server) healthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"uptime": time.Since(s.startTime).String(),
	})
}

// status 抓取状态与库内统计
func (s *Server) status(c *fiber.Ctx) error {
	snapshot := s.stats.Get()

	var movieCount int64
	if db := database.GetDB(); db != nil {
		movieCount, _ = repository.NewMovieRepository(db).Count()
	}

	return c.JSON(fiber.Map{
		"uptime":      time.Since(s.startTime).String(),
		"crawl":       snapshot,
		"movie_count": movieCount,
	})
}

// Start 启动服务
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	return s.app.Listen(addr)
}

// Stop 停止服务
func (s *Server) Stop() error {
	return s.app.Shutdown()
}
