package crawler

import (
	"sync"
	"time"
)

// Stats 抓取运行统计，供状态接口跨协程读取
type Stats struct {
	mu        sync.Mutex
	running   bool
	total     int
	processed int
	succeeded int
	failed    int
	lastRun   time.Time
}

// Snapshot 统计快照
type Snapshot struct {
	Running   bool      `json:"running"`
	Total     int       `json:"total"`
	Processed int       `json:"processed"`
	Succeeded int       `json:"succeeded"`
	Failed    int       `json:"failed"`
	LastRun   time.Time `json:"last_run"`
}

// StartRun 标记一次运行开始
func (s *Stats) StartRun(total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = true
	s.total = total
	s.processed = 0
	s.succeeded = 0
	s.failed = 0
}

// ItemDone 记录一个条目的处理结果
func (s *Stats) ItemDone(ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.processed++
	if ok {
		s.succeeded++
	} else {
		s.failed++
	}
}

// FinishRun 标记运行结束
func (s *Stats) FinishRun() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
	s.lastRun = time.Now()
}

// Get 读取统计快照
func (s *Stats) Get() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Running:   s.running,
		Total:     s.total,
		Processed: s.processed,
		Succeeded: s.succeeded,
		Failed:    s.failed,
		LastRun:   s.lastRun,
	}
}
