package domain

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Session はビューア1接続の論理状態を表す構造体です。
type Session struct {
	id string

	lastRead  atomic.Int64
	lastWrite atomic.Int64

	closed atomic.Bool
}

func NewSession() *Session {
	s := &Session{id: uuid.NewString()}
	now := time.Now().UnixNano()
	s.lastRead.Store(now)
	s.lastWrite.Store(now)
	return s
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) TouchRead() {
	s.lastRead.Store(time.Now().UnixNano())
}

func (s *Session) TouchWrite() {
	s.lastWrite.Store(time.Now().UnixNano())
}

// IsIdle は読み書きの両方が timeout を超えて途絶えているかを返します。
func (s *Session) IsIdle(timeout time.Duration) bool {
	if timeout <= 0 {
		return false
	}
	return s.isIdleSince(s.lastRead.Load(), timeout) && s.isIdleSince(s.lastWrite.Load(), timeout)
}

func (s *Session) isIdleSince(nano int64, timeout time.Duration) bool {
	return time.Since(time.Unix(0, nano)) > timeout
}

func (s *Session) Close() bool {
	return s.closed.CompareAndSwap(false, true)
}

func (s *Session) IsClosed() bool {
	return s.closed.Load()
}
