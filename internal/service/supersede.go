package service

import (
	"context"
	"errors"
	"sync"
)

// ErrSuperseded 同一客户端发起了更新的请求
var ErrSuperseded = errors.New("superseded by a newer request")

// Superseder 同一客户端键只保留最新的进行中请求，旧请求的 context 被取消
type Superseder struct {
	mu       sync.Mutex
	inflight map[string]*Ticket
}

func NewSuperseder() *Superseder {
	return &Superseder{inflight: make(map[string]*Ticket)}
}

// Ticket 一次进行中的请求
type Ticket struct {
	owner  *Superseder
	key    string
	ctx    context.Context
	cancel context.CancelCauseFunc
}

// Begin 派生出本次请求的 context；key 为空时不参与替代
func (s *Superseder) Begin(parent context.Context, key string) *Ticket {
	ctx, cancel := context.WithCancelCause(parent)
	t := &Ticket{owner: s, key: key, ctx: ctx, cancel: cancel}
	if key == "" {
		return t
	}

	s.mu.Lock()
	if prev, ok := s.inflight[key]; ok {
		prev.cancel(ErrSuperseded)
	}
	s.inflight[key] = t
	s.mu.Unlock()
	return t
}

// InFlight 当前进行中的客户端数量
func (s *Superseder) InFlight() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.inflight)
}

func (t *Ticket) Context() context.Context {
	return t.ctx
}

// Superseded 是否已被同一客户端的新请求替代
func (t *Ticket) Superseded() bool {
	return errors.Is(context.Cause(t.ctx), ErrSuperseded)
}

// Done 释放 context，并在自己仍是最新请求时移出登记表
func (t *Ticket) Done() {
	if t.key != "" {
		t.owner.mu.Lock()
		if cur, ok := t.owner.inflight[t.key]; ok && cur == t {
			delete(t.owner.inflight, t.key)
		}
		t.owner.mu.Unlock()
	}
	t.cancel(context.Canceled)
}
