package lottery

import (
	"context"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/karta-lodzianina/ev-backend/internal/domain"
	"github.com/karta-lodzianina/ev-backend/internal/mocks"
)

const validSession = "kl-" +
	"0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func newTestService(repo *mocks.MockLotteryRepository, now time.Time) *Service {
	return &Service{
		repo: repo,
		log:  zap.NewNop(),
		now:  func() time.Time { return now },
	}
}

func TestDraw_RejectsInvalidSession(t *testing.T) {
	svc := newTestService(&mocks.MockLotteryRepository{}, time.Now())

	for _, sessionID := range []string{
		"",
		"session-12345",
		"kl-short",
		"KL-" + strings.Repeat("a", 64), // uppercase prefix
		"kl-" + strings.Repeat("g", 64), // non-hex
	} {
		if _, err := svc.Draw(context.Background(), sessionID); err != ErrInvalidSession {
			t.Errorf("Draw(%q) error = %v, want ErrInvalidSession", sessionID, err)
		}
	}
}

func TestDraw_CooldownActive(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo := &mocks.MockLotteryRepository{
		FindDrawFunc: func(ctx context.Context, sessionID string) (*domain.Draw, error) {
			return &domain.Draw{SessionID: sessionID, DrawnAt: now.Add(-2 * time.Hour)}, nil
		},
	}
	svc := newTestService(repo, now)

	_, err := svc.Draw(context.Background(), validSession)

	if err != ErrCooldownActive {
		t.Fatalf("Draw() error = %v, want ErrCooldownActive", err)
	}
}

func TestDraw_SavesPrizeAndDraw(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	var savedPrize *domain.Prize
	var savedDraw *domain.Draw
	repo := &mocks.MockLotteryRepository{
		FindDrawFunc: func(ctx context.Context, sessionID string) (*domain.Draw, error) {
			// Last draw is past the cooldown window.
			return &domain.Draw{SessionID: sessionID, DrawnAt: now.Add(-25 * time.Hour)}, nil
		},
		SavePrizeFunc: func(ctx context.Context, prize *domain.Prize) error {
			savedPrize = prize
			return nil
		},
		UpsertDrawFunc: func(ctx context.Context, draw *domain.Draw) error {
			savedDraw = draw
			return nil
		},
	}
	svc := newTestService(repo, now)

	prize, err := svc.Draw(context.Background(), validSession)
	if err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	if savedPrize == nil || savedPrize.ID != prize.ID {
		t.Fatal("prize was not persisted")
	}
	if prize.SessionID != validSession {
		t.Errorf("prize.SessionID = %q, want session", prize.SessionID)
	}
	if !strings.HasPrefix(prize.Code, "KL-") || len(prize.Code) != len("KL-")+8 {
		t.Errorf("prize.Code = %q, want KL- prefix and 8 characters", prize.Code)
	}
	for _, c := range prize.Code[len("KL-"):] {
		if !strings.ContainsRune(codeCharset, c) {
			t.Errorf("prize.Code contains %q outside the charset", c)
		}
	}
	if want := now.Add(30 * 24 * time.Hour); !prize.ExpiresAt.Equal(want) {
		t.Errorf("prize.ExpiresAt = %v, want %v", prize.ExpiresAt, want)
	}
	if prize.Used {
		t.Error("freshly drawn prize must not be used")
	}

	if savedDraw == nil {
		t.Fatal("draw record was not persisted")
	}
	if savedDraw.PrizeID != prize.ID || !savedDraw.DrawnAt.Equal(now) {
		t.Errorf("draw record = %+v, want prize %s at %v", savedDraw, prize.ID, now)
	}
}

func TestDraw_PrizeFromPool(t *testing.T) {
	now := time.Now()
	repo := &mocks.MockLotteryRepository{}
	svc := newTestService(repo, now)

	names := make(map[string]bool, len(prizePool))
	for _, p := range prizePool {
		names[p.Name] = true
	}

	// Draws are random but must always come from the pool.
	for i := 0; i < 50; i++ {
		prize, err := svc.Draw(context.Background(), validSession)
		if err != nil {
			t.Fatalf("Draw() error = %v", err)
		}
		if !names[prize.Name] {
			t.Fatalf("Draw() returned %q, not in the pool", prize.Name)
		}
	}
}

func TestDraw_DrawRecordFailureDoesNotFailDraw(t *testing.T) {
	now := time.Now()
	repo := &mocks.MockLotteryRepository{
		UpsertDrawFunc: func(ctx context.Context, draw *domain.Draw) error {
			return context.DeadlineExceeded
		},
	}
	svc := newTestService(repo, now)

	if _, err := svc.Draw(context.Background(), validSession); err != nil {
		t.Fatalf("Draw() error = %v, want nil when only the draw record fails", err)
	}
}

func TestUsePrize(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	valid := &domain.Prize{ID: "p1", SessionID: validSession, ExpiresAt: now.Add(time.Hour)}
	used := &domain.Prize{ID: "p2", SessionID: validSession, ExpiresAt: now.Add(time.Hour), Used: true}
	expired := &domain.Prize{ID: "p3", SessionID: validSession, ExpiresAt: now.Add(-time.Hour)}
	foreign := &domain.Prize{ID: "p4", SessionID: "kl-" + strings.Repeat("f", 64), ExpiresAt: now.Add(time.Hour)}

	prizes := map[string]*domain.Prize{"p1": valid, "p2": used, "p3": expired, "p4": foreign}
	var marked string
	repo := &mocks.MockLotteryRepository{
		FindPrizeByIDFunc: func(ctx context.Context, id string) (*domain.Prize, error) {
			return prizes[id], nil
		},
		MarkPrizeUsedFunc: func(ctx context.Context, id string) error {
			marked = id
			return nil
		},
	}
	svc := newTestService(repo, now)

	cases := []struct {
		name    string
		prizeID string
		wantErr error
	}{
		{"redeemable", "p1", nil},
		{"already used", "p2", ErrPrizeUsed},
		{"expired", "p3", ErrPrizeExpired},
		{"another session's prize", "p4", ErrPrizeNotFound},
		{"unknown", "missing", ErrPrizeNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.UsePrize(context.Background(), validSession, tc.prizeID)
			if err != tc.wantErr {
				t.Errorf("UsePrize(%s) error = %v, want %v", tc.prizeID, err, tc.wantErr)
			}
		})
	}
	if marked != "p1" {
		t.Errorf("MarkPrizeUsed called with %q, want p1", marked)
	}
}

func TestCooldown(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("no previous draw", func(t *testing.T) {
		svc := newTestService(&mocks.MockLotteryRepository{}, now)
		remaining, err := svc.Cooldown(context.Background(), validSession)
		if err != nil || remaining != 0 {
			t.Errorf("Cooldown() = %d, %v; want 0, nil", remaining, err)
		}
	})

	t.Run("active", func(t *testing.T) {
		repo := &mocks.MockLotteryRepository{
			FindDrawFunc: func(ctx context.Context, sessionID string) (*domain.Draw, error) {
				return &domain.Draw{DrawnAt: now.Add(-6 * time.Hour)}, nil
			},
		}
		svc := newTestService(repo, now)
		remaining, err := svc.Cooldown(context.Background(), validSession)
		if err != nil {
			t.Fatalf("Cooldown() error = %v", err)
		}
		if want := (18 * time.Hour).Milliseconds(); remaining != want {
			t.Errorf("Cooldown() = %d ms, want %d ms", remaining, want)
		}
	})

	t.Run("elapsed", func(t *testing.T) {
		repo := &mocks.MockLotteryRepository{
			FindDrawFunc: func(ctx context.Context, sessionID string) (*domain.Draw, error) {
				return &domain.Draw{DrawnAt: now.Add(-30 * time.Hour)}, nil
			},
		}
		svc := newTestService(repo, now)
		remaining, err := svc.Cooldown(context.Background(), validSession)
		if err != nil || remaining != 0 {
			t.Errorf("Cooldown() = %d, %v; want 0, nil", remaining, err)
		}
	})
}

func TestGenerateCode_Format(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := generateCode()
		if err != nil {
			t.Fatalf("generateCode() error = %v", err)
		}
		if !strings.HasPrefix(code, "KL-") || len(code) != 11 {
			t.Fatalf("generateCode() = %q, want KL-XXXXXXXX", code)
		}
		seen[code] = true
	}
	if len(seen) < 90 {
		t.Errorf("generateCode() produced %d distinct codes out of 100", len(seen))
	}
}
