package lottery

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/karta-lodzianina/ev-backend/internal/domain"
	"github.com/karta-lodzianina/ev-backend/internal/observability/telemetry"
	"github.com/karta-lodzianina/ev-backend/internal/ports"
)

var (
	ErrInvalidSession = errors.New("invalid session id format")
	ErrCooldownActive = errors.New("draw cooldown active")
	ErrPrizeNotFound  = errors.New("prize not found")
	ErrPrizeExpired   = errors.New("prize expired")
	ErrPrizeUsed      = errors.New("prize already used")
)

const (
	cooldown    = 24 * time.Hour
	prizeExpiry = 30 * 24 * time.Hour

	codePrefix  = "KL-"
	codeLength  = 8
	codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Only the secure session format is accepted; legacy identifiers are rejected.
var sessionPattern = regexp.MustCompile(`^kl-[a-f0-9]{64}$`)

// prizeTemplate is one weighted entry in the pool. The pool stays server-side
// so clients cannot inspect the odds.
type prizeTemplate struct {
	Name        string
	Description string
	Type        domain.PrizeType
	Value       float64
	Weight      int
	Partner     string
}

var prizePool = []prizeTemplate{
	{Name: "Zniżka 10%", Type: domain.PrizeTypePercent, Value: 10, Weight: 40, Partner: "MPK Łódź", Description: "Zniżka 10% na bilety komunikacji miejskiej"},
	{Name: "Zniżka 15%", Type: domain.PrizeTypePercent, Value: 15, Weight: 25, Partner: "Manufaktura", Description: "Zniżka 15% w wybranych sklepach Manufaktury"},
	{Name: "Zniżka 20%", Type: domain.PrizeTypePercent, Value: 20, Weight: 15, Partner: "Atlas Arena", Description: "Zniżka 20% na wybrane wydarzenia"},
	{Name: "Voucher 25 PLN", Type: domain.PrizeTypeVoucher, Value: 25, Weight: 10, Partner: "Kino Helios", Description: "Voucher do wykorzystania w kinie Helios"},
	{Name: "Voucher 50 PLN", Type: domain.PrizeTypeVoucher, Value: 50, Weight: 5, Partner: "Piotrkowska 217", Description: "Voucher gastronomiczny"},
	{Name: "Bilet wstępu", Type: domain.PrizeTypeTicket, Value: 1, Weight: 4, Partner: "Muzeum Miasta Łodzi", Description: "Darmowe wejście do muzeum"},
	{Name: "Nagroda specjalna", Type: domain.PrizeTypeOther, Value: 100, Weight: 1, Partner: "Karta Łodzianina", Description: "Niespodzianka od Karty Łodzianina!"},
}

type Service struct {
	repo ports.LotteryRepository
	log  *zap.Logger
	now  func() time.Time
}

func NewService(repo ports.LotteryRepository, log *zap.Logger) ports.LotteryService {
	return &Service{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

// Draw performs one weighted lottery draw for the session, enforcing the
// 24 hour cooldown server-side.
func (s *Service) Draw(ctx context.Context, sessionID string) (*domain.Prize, error) {
	if !sessionPattern.MatchString(sessionID) {
		telemetry.LotteryDrawsTotal.WithLabelValues("invalid_session").Inc()
		return nil, ErrInvalidSession
	}

	now := s.now()

	lastDraw, err := s.repo.FindDraw(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("checking last draw: %w", err)
	}
	if lastDraw != nil && now.Sub(lastDraw.DrawnAt) < cooldown {
		telemetry.LotteryDrawsTotal.WithLabelValues("cooldown").Inc()
		return nil, ErrCooldownActive
	}

	template, err := drawPrize()
	if err != nil {
		return nil, fmt.Errorf("drawing prize: %w", err)
	}
	code, err := generateCode()
	if err != nil {
		return nil, fmt.Errorf("generating prize code: %w", err)
	}

	prize := &domain.Prize{
		ID:          uuid.NewString(),
		SessionID:   sessionID,
		Name:        template.Name,
		Description: template.Description,
		Type:        template.Type,
		Value:       template.Value,
		Code:        code,
		Partner:     template.Partner,
		WonAt:       now,
		ExpiresAt:   now.Add(prizeExpiry),
		Used:        false,
	}

	if err := s.repo.SavePrize(ctx, prize); err != nil {
		return nil, fmt.Errorf("saving prize: %w", err)
	}

	// The prize is already persisted; a failed draw record only weakens the
	// cooldown, so it is logged rather than surfaced.
	draw := &domain.Draw{SessionID: sessionID, DrawnAt: now, PrizeID: prize.ID}
	if err := s.repo.UpsertDraw(ctx, draw); err != nil {
		s.log.Warn("Draw record update failed", zap.String("prize_id", prize.ID), zap.Error(err))
	}

	telemetry.LotteryDrawsTotal.WithLabelValues("win").Inc()
	s.log.Info("Lottery prize drawn",
		zap.String("prize_id", prize.ID),
		zap.String("prize", prize.Name),
	)

	return prize, nil
}

func (s *Service) Prizes(ctx context.Context, sessionID string) ([]domain.Prize, error) {
	if !sessionPattern.MatchString(sessionID) {
		return nil, ErrInvalidSession
	}
	return s.repo.FindPrizesBySession(ctx, sessionID)
}

// UsePrize marks a prize as redeemed. Prizes of other sessions are reported
// as not found rather than forbidden.
func (s *Service) UsePrize(ctx context.Context, sessionID, prizeID string) error {
	if !sessionPattern.MatchString(sessionID) {
		return ErrInvalidSession
	}

	prize, err := s.repo.FindPrizeByID(ctx, prizeID)
	if err != nil {
		return fmt.Errorf("loading prize: %w", err)
	}
	if prize == nil || prize.SessionID != sessionID {
		return ErrPrizeNotFound
	}
	if prize.Used {
		return ErrPrizeUsed
	}
	if prize.Expired(s.now()) {
		return ErrPrizeExpired
	}

	return s.repo.MarkPrizeUsed(ctx, prizeID)
}

// Cooldown returns the remaining wait in milliseconds before the session may
// draw again, zero when a draw is allowed.
func (s *Service) Cooldown(ctx context.Context, sessionID string) (int64, error) {
	if !sessionPattern.MatchString(sessionID) {
		return 0, ErrInvalidSession
	}

	lastDraw, err := s.repo.FindDraw(ctx, sessionID)
	if err != nil {
		return 0, fmt.Errorf("checking last draw: %w", err)
	}
	if lastDraw == nil {
		return 0, nil
	}

	remaining := cooldown - s.now().Sub(lastDraw.DrawnAt)
	if remaining <= 0 {
		return 0, nil
	}
	return remaining.Milliseconds(), nil
}

// drawPrize picks one template with probability proportional to its weight,
// using cryptographic randomness.
func drawPrize() (prizeTemplate, error) {
	totalWeight := 0
	for _, p := range prizePool {
		totalWeight += p.Weight
	}

	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return prizeTemplate{}, err
	}
	roll := float64(binary.BigEndian.Uint32(buf[:])) / float64(^uint32(0)) * float64(totalWeight)

	for _, p := range prizePool {
		roll -= float64(p.Weight)
		if roll <= 0 {
			return p, nil
		}
	}
	return prizePool[0], nil
}

func generateCode() (string, error) {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	code := make([]byte, codeLength)
	for i, b := range buf {
		code[i] = codeCharset[int(b)%len(codeCharset)]
	}
	return codePrefix + string(code), nil
}
