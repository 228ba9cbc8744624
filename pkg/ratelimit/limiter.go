// Package ratelimit 请求节流模块
package ratelimit

import "time"

// Limiter 请求节流器
// Wait 在每次成功调用后执行固定间隔等待，Backoff 在重试前执行线性退避
type Limiter interface {
	Wait()
	Backoff(attempt int)
}

// IntervalLimiter 基于固定间隔的阻塞式节流器
type IntervalLimiter struct {
	delay time.Duration
	sleep func(time.Duration)
}

// NewIntervalLimiter 创建节流器
func NewIntervalLimiter(delay time.Duration) *IntervalLimiter {
	return &IntervalLimiter{
		delay: delay,
		sleep: time.Sleep,
	}
}

// NewIntervalLimiterWithSleep 创建带自定义 sleep 的节流器（测试用）
func NewIntervalLimiterWithSleep(delay time.Duration, sleep func(time.Duration)) *IntervalLimiter {
	return &IntervalLimiter{
		delay: delay,
		sleep: sleep,
	}
}

// Wait 固定间隔等待
func (l *IntervalLimiter) Wait() {
	if l.delay > 0 {
		l.sleep(l.delay)
	}
}

// Backoff 线性退避：等待 delay * attempt
// attempt 为 0 时不等待（首次尝试不退避）
func (l *IntervalLimiter) Backoff(attempt int) {
	if attempt > 0 && l.delay > 0 {
		l.sleep(l.delay * time.Duration(attempt))
	}
}
