// Xxvn Crawler - Go Version
// 从 xxvnapi.com 抓取电影并入库
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/namhuunam/xxvn-crawler-go/internal/api"
	"github.com/namhuunam/xxvn-crawler-go/internal/config"
	"github.com/namhuunam/xxvn-crawler-go/internal/crawler"
	"github.com/namhuunam/xxvn-crawler-go/internal/database"
	"github.com/namhuunam/xxvn-crawler-go/internal/image"
	"github.com/namhuunam/xxvn-crawler-go/internal/notify"
	"github.com/namhuunam/xxvn-crawler-go/internal/scheduler"
	"github.com/namhuunam/xxvn-crawler-go/internal/storage"
	"github.com/namhuunam/xxvn-crawler-go/internal/web"
	"github.com/namhuunam/xxvn-crawler-go/pkg/logger"
)

var (
	configPath = flag.String("config", "config.json", "配置文件路径")
	debug      = flag.Bool("debug", false, "调试模式")
	fromPage   = flag.Int("from", 0, "起始页（0 表示使用配置值）")
	toPage     = flag.Int("to", 0, "结束页（0 表示使用配置值）")
	limit      = flag.Int("limit", 0, "最多处理条数（0 表示不限制）")
	sleep      = flag.Int("sleep", 1, "条目之间的停顿秒数")
	daemon     = flag.Bool("daemon", false, "常驻模式，按调度配置定时抓取")
)

func main() {
	flag.Parse()

	// .env 可覆盖数据库凭据，文件不存在时忽略
	_ = godotenv.Load()

	// 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Init(*debug, false, "")
		logger.Fatal().Err(err).Msg("加载配置失败")
	}

	// 初始化日志
	logger.Init(*debug, cfg.Logging.Enabled, cfg.Logging.Channel)
	logger.Info().Msg("🎬 Xxvn Crawler 启动中...")

	// 初始化数据库
	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal().Err(err).Msg("初始化数据库失败")
	}
	defer database.Close()

	// 组装抓取管道
	store := storage.NewLocalDisk(cfg.Images.StoragePath)
	pipeline := image.NewPipeline(&cfg.Images, store)
	apiClient := api.NewClient(&cfg.API)
	svc := crawler.NewService(apiClient, pipeline, database.GetDB())
	notifier := notify.New(&cfg.Notify)

	// 状态接口
	if cfg.Web.Enabled {
		webServer := web.New(&cfg.Web, svc.Stats())
		go func() {
			if err := webServer.Start(); err != nil {
				logger.Error().Err(err).Msg("状态接口启动失败")
			}
		}()
		defer webServer.Stop()
	}

	if *daemon {
		runDaemon(cfg, svc)
		return
	}

	// 单次抓取
	from := *fromPage
	if from == 0 {
		from = cfg.API.PageFrom
	}
	to := *toPage
	if to == 0 {
		to = cfg.API.PageTo
	}

	summary := svc.Run(from, to, *limit, *sleep)
	notifier.SendSummary(summary)

	logger.Info().Msg("抓取结果:")
	logger.Info().Int("total", summary.Processed).Msg("- 总处理数")
	logger.Info().Int("succeeded", summary.Succeeded).Msg("- 新增入库")
	logger.Info().Int("failed", summary.Failed).Msg("- 失败/跳过")
	// 单条失败不影响退出码，main 正常返回即退出 0
}

// runDaemon 常驻运行，按配置定时抓取
func runDaemon(cfg *config.Config, svc *crawler.Service) {
	sched := scheduler.New(cfg, svc)
	sched.Start()
	defer sched.Stop()
	logger.Info().Msg("🚀 常驻模式启动，等待调度...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("👋 再见!")
}
