package ratelimiter

import (
	"context"
	"sync"
)

type FakeRateLimiter struct {
	IsAllowed bool
	Checked   []string
	lock      sync.Mutex
}

func NewFakeRateLimiter(isAllowed bool) *FakeRateLimiter {
	return &FakeRateLimiter{IsAllowed: isAllowed}
}

func (rl *FakeRateLimiter) CheckLimit(ctx context.Context, key string, limit Limit) Result {
	rl.lock.Lock()
	defer rl.lock.Unlock()
	rl.Checked = append(rl.Checked, key)
	if rl.IsAllowed {
		return Allowed()
	}
	return NotAllowed()
}

func (rl *FakeRateLimiter) CheckedCount() int {
	return len(rl.Checked)
}

func (rl *FakeRateLimiter) LastCheckedKey() string {
	l := len(rl.Checked)
	if l == 0 {
		panic("Checked count is 0.")
	}
	return rl.Checked[l-1]
}
