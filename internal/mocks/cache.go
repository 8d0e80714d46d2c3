package mocks

import (
	"context"
	"time"

	"github.com/karta-lodzianina/ev-backend/internal/ports"
)

// MockCache is a mock implementation of Cache interface. Without overrides
// it behaves as a real in-memory store, which is what most tests want.
type MockCache struct {
	data           map[string]string
	sets           map[string]map[string]struct{}
	GetFunc        func(ctx context.Context, key string) (string, error)
	SetFunc        func(ctx context.Context, key string, value string, expiration time.Duration) error
	DeleteFunc     func(ctx context.Context, key string) error
	SetAddFunc     func(ctx context.Context, key string, member string) error
	SetRemoveFunc  func(ctx context.Context, key string, member string) error
	SetMembersFunc func(ctx context.Context, key string) ([]string, error)
	PingFunc       func() error
	CloseFunc      func() error
}

func NewMockCache() *MockCache {
	return &MockCache{
		data: make(map[string]string),
		sets: make(map[string]map[string]struct{}),
	}
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	if val, ok := m.data[key]; ok {
		return val, nil
	}
	return "", ports.ErrCacheMiss
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, expiration)
	}
	m.data[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	delete(m.data, key)
	return nil
}

func (m *MockCache) SetAdd(ctx context.Context, key string, member string) error {
	if m.SetAddFunc != nil {
		return m.SetAddFunc(ctx, key, member)
	}
	if m.sets[key] == nil {
		m.sets[key] = make(map[string]struct{})
	}
	m.sets[key][member] = struct{}{}
	return nil
}

func (m *MockCache) SetRemove(ctx context.Context, key string, member string) error {
	if m.SetRemoveFunc != nil {
		return m.SetRemoveFunc(ctx, key, member)
	}
	delete(m.sets[key], member)
	return nil
}

func (m *MockCache) SetMembers(ctx context.Context, key string) ([]string, error) {
	if m.SetMembersFunc != nil {
		return m.SetMembersFunc(ctx, key)
	}
	members := make([]string, 0, len(m.sets[key]))
	for member := range m.sets[key] {
		members = append(members, member)
	}
	return members, nil
}

func (m *MockCache) Ping() error {
	if m.PingFunc != nil {
		return m.PingFunc()
	}
	return nil
}

func (m *MockCache) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}
