// Package notify 抓取结果通知
package notify

import (
	"fmt"
	"time"

	tele "gopkg.in/telebot.v3"

	"github.com/namhuunam/xxvn-crawler-go/internal/config"
	"github.com/namhuunam/xxvn-crawler-go/internal/crawler"
	"github.com/namhuunam/xxvn-crawler-go/pkg/logger"
)

// Notifier Telegram 通知器
type Notifier struct {
	bot    *tele.Bot
	chatID int64
}

// New 创建通知器，未启用时返回 nil
func New(cfg *config.NotifyConfig) *Notifier {
	if !cfg.Enabled || cfg.BotToken == "" || cfg.ChatID == 0 {
		return nil
	}

	bot, err := tele.NewBot(tele.Settings{Token: cfg.BotToken})
	if err != nil {
		logger.Warn().Err(err).Msg("Telegram 通知初始化失败")
		return nil
	}

	return &Notifier{
		bot:    bot,
		chatID: cfg.ChatID,
	}
}

// SendSummary 发送运行汇总
func (n *Notifier) SendSummary(summary crawler.Summary) {
	if n == nil {
		return
	}

	text := fmt.Sprintf(
		"🎬 抓取完成\n总数: %d\n新增: %d\n失败: %d\n耗时: %s",
		summary.Processed,
		summary.Succeeded,
		summary.Failed,
		summary.Duration.Round(time.Second),
	)

	if _, err := n.bot.Send(tele.ChatID(n.chatID), text); err != nil {
		logger.Warn().Err(err).Msg("发送 Telegram 通知失败")
	}
}
