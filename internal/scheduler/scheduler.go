// Package scheduler 定时抓取调度
package scheduler

import (
	"time"

	"github.com/go-co-op/gocron"

	"github.com/namhuunam/xxvn-crawler-go/internal/config"
	"github.com/namhuunam/xxvn-crawler-go/internal/crawler"
	"github.com/namhuunam/xxvn-crawler-go/pkg/logger"
)

// Scheduler 定时任务调度器
type Scheduler struct {
	cron *gocron.Scheduler
	cfg  *config.Config
	svc  *crawler.Service
}

// New 创建调度器
// 抓取严格串行，并发上限 1 且排队等待，保证定时任务不会与进行中的运行重叠
func New(cfg *config.Config, svc *crawler.Service) *Scheduler {
	loc, _ := time.LoadLocation("Asia/Ho_Chi_Minh")
	s := gocron.NewScheduler(loc)
	s.SetMaxConcurrentJobs(1, gocron.WaitMode)

	return &Scheduler{
		cron: s,
		cfg:  cfg,
		svc:  svc,
	}
}

// Start 启动调度器
func (s *Scheduler) Start() {
	if !s.cfg.Scheduler.Enabled {
		return
	}

	s.cron.Every(1).Day().At(s.cfg.Scheduler.CrawlAt).Do(s.runCrawl)
	logger.Info().Str("at", s.cfg.Scheduler.CrawlAt).Msg("已注册: 每日抓取任务")

	s.cron.StartAsync()
}

// Stop 停止调度器
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// runCrawl 执行配置页区间的完整抓取
func (s *Scheduler) runCrawl() {
	apiCfg := s.cfg.API
	s.svc.Run(apiCfg.PageFrom, apiCfg.PageTo, 0, apiCfg.Delay)
}
