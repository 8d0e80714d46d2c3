package health

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

func TestHealth_AlwaysHealthy(t *testing.T) {
	svc := NewService("v1.2.3", zap.NewNop())

	resp := svc.Health(context.Background())

	if resp.Status != StatusHealthy {
		t.Errorf("Health() status = %s, want healthy", resp.Status)
	}
	if resp.Version != "v1.2.3" {
		t.Errorf("Health() version = %s", resp.Version)
	}
}

func TestReady_NoCheckers(t *testing.T) {
	svc := NewService("test", zap.NewNop())

	resp := svc.Ready(context.Background())

	if !resp.Ready || resp.Status != StatusHealthy {
		t.Errorf("Ready() = %+v, want ready with no checks", resp)
	}
}

func TestReady_AllHealthy(t *testing.T) {
	svc := NewService("test", zap.NewNop())
	svc.RegisterChecker("database", func(ctx context.Context) error { return nil })
	svc.RegisterChecker("redis", func(ctx context.Context) error { return nil })

	resp := svc.Ready(context.Background())

	if !resp.Ready {
		t.Fatalf("Ready() = %+v, want ready", resp)
	}
	if len(resp.Checks) != 2 {
		t.Errorf("Checks = %v, want database and redis", resp.Checks)
	}
}

func TestReady_OneUnhealthy(t *testing.T) {
	svc := NewService("test", zap.NewNop())
	svc.RegisterChecker("database", func(ctx context.Context) error { return nil })
	svc.RegisterChecker("redis", func(ctx context.Context) error {
		return errors.New("connection refused")
	})

	resp := svc.Ready(context.Background())

	if resp.Ready || resp.Status != StatusUnhealthy {
		t.Fatalf("Ready() = %+v, want not ready", resp)
	}
	if resp.Checks["redis"].Status != StatusUnhealthy {
		t.Errorf("redis check = %+v, want unhealthy", resp.Checks["redis"])
	}
	if resp.Checks["redis"].Message == "" {
		t.Error("unhealthy check should carry the error message")
	}
	if resp.Checks["database"].Status != StatusHealthy {
		t.Errorf("database check = %+v, want healthy", resp.Checks["database"])
	}
}
