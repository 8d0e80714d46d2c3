package integration

import (
	"context"
	"testing"
	"time"

	"github.com/karta-lodzianina/ev-backend/internal/adapter/storage/postgres"
	"github.com/karta-lodzianina/ev-backend/internal/domain"
)

func TestStationRepository_SaveAndFind(t *testing.T) {
	env := SetupTestEnvironment(t)
	CleanDatabase(t, env.DB)

	repo := postgres.NewStationRepository(env.DB)
	ctx := context.Background()

	price := 1.89
	station := &domain.Station{
		ID:        "test-001",
		PoolID:    9001,
		Name:      "Testowa Stacja",
		Latitude:  51.7592,
		Longitude: 19.4560,
		Address:   domain.Address{Street: "ul. Testowa", City: "Łódź", Full: "ul. Testowa 1, Łódź"},
		Operator:  domain.Operator{ID: 1, Name: "Test Operator", ShortName: "Test"},
		ChargingPoints: []domain.ChargingPoint{
			{
				ID:           900101,
				Code:         "TST-001-01",
				PowerKW:      50,
				Connectors:   []domain.Connector{{Type: "CCS Combo 2", PowerKW: 50, CableAttached: true}},
				Availability: domain.AvailabilityAvailable,
				PricePerKwh:  &price,
				Currency:     "PLN",
			},
		},
		IsOpen24h: true,
		IsOpenNow: true,
	}
	station.Recompute()

	if err := repo.Save(ctx, station); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	found, err := repo.FindByID(ctx, "test-001")
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if found == nil {
		t.Fatal("expected station, got nil")
	}
	if found.Name != "Testowa Stacja" {
		t.Errorf("expected name Testowa Stacja, got %s", found.Name)
	}
	if len(found.ChargingPoints) != 1 {
		t.Fatalf("expected 1 charging point preloaded, got %d", len(found.ChargingPoints))
	}
	if found.ChargingPoints[0].Connectors[0].Type != "CCS Combo 2" {
		t.Errorf("connector did not round-trip: %+v", found.ChargingPoints[0].Connectors)
	}
	if found.MaxPower != 50 || found.AvailableChargers != 1 {
		t.Errorf("derived fields did not persist: max=%v available=%d", found.MaxPower, found.AvailableChargers)
	}
}

func TestStationRepository_FindMissing(t *testing.T) {
	env := SetupTestEnvironment(t)
	CleanDatabase(t, env.DB)

	repo := postgres.NewStationRepository(env.DB)

	found, err := repo.FindByID(context.Background(), "does-not-exist")
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if found != nil {
		t.Errorf("expected nil for missing station, got %+v", found)
	}
}

func TestStationRepository_FindNearby(t *testing.T) {
	env := SetupTestEnvironment(t)
	CleanDatabase(t, env.DB)

	repo := postgres.NewStationRepository(env.DB)
	ctx := context.Background()

	if err := postgres.Seed(ctx, repo, env.Logger); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	// Query from the Manufaktura parking lot itself.
	nearby, err := repo.FindNearby(ctx, 51.7948, 19.4442, 2.0)
	if err != nil {
		t.Fatalf("FindNearby failed: %v", err)
	}
	if len(nearby) == 0 {
		t.Fatal("expected stations within 2 km of Manufaktura")
	}
	if nearby[0].ID != "lodz-001" {
		t.Errorf("expected lodz-001 closest, got %s", nearby[0].ID)
	}
	if len(nearby[0].ChargingPoints) == 0 {
		t.Error("expected charging points preloaded on nearby results")
	}

	// Port Łódź is ~9 km south; it must not appear within 2 km.
	for _, s := range nearby {
		if s.ID == "lodz-006" {
			t.Error("lodz-006 should be outside the 2 km radius")
		}
	}
}

func TestStationRepository_FindByPointID(t *testing.T) {
	env := SetupTestEnvironment(t)
	CleanDatabase(t, env.DB)

	repo := postgres.NewStationRepository(env.DB)
	ctx := context.Background()

	if err := postgres.Seed(ctx, repo, env.Logger); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	station, err := repo.FindByPointID(ctx, 24501)
	if err != nil {
		t.Fatalf("FindByPointID failed: %v", err)
	}
	if station == nil || station.ID != "lodz-001" {
		t.Fatalf("expected lodz-001 for point 24501, got %+v", station)
	}

	missing, err := repo.FindByPointID(ctx, 999999)
	if err != nil {
		t.Fatalf("FindByPointID failed for missing point: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown point, got %+v", missing)
	}
}

func TestStationRepository_UpdatePointAvailability(t *testing.T) {
	env := SetupTestEnvironment(t)
	CleanDatabase(t, env.DB)

	repo := postgres.NewStationRepository(env.DB)
	ctx := context.Background()

	if err := postgres.Seed(ctx, repo, env.Logger); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	if err := repo.UpdatePointAvailability(ctx, 24501, domain.AvailabilityOccupied); err != nil {
		t.Fatalf("UpdatePointAvailability failed: %v", err)
	}

	station, err := repo.FindByID(ctx, "lodz-001")
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	for _, p := range station.ChargingPoints {
		if p.ID == 24501 && p.Availability != domain.AvailabilityOccupied {
			t.Errorf("expected point 24501 occupied, got %s", p.Availability)
		}
	}
}

func TestLotteryRepository_DrawAndPrizes(t *testing.T) {
	env := SetupTestEnvironment(t)
	CleanDatabase(t, env.DB)

	repo := postgres.NewLotteryRepository(env.DB)
	ctx := context.Background()

	sessionID := "kl-" + repeatHex(64)

	prize := &domain.Prize{
		ID:        "prize-1",
		SessionID: sessionID,
		Name:      "Zniżka 10%",
		Type:      domain.PrizeTypePercent,
		Value:     10,
		Code:      "KL-TEST0001",
		WonAt:     time.Now().UTC(),
		ExpiresAt: time.Now().UTC().Add(30 * 24 * time.Hour),
	}
	if err := repo.SavePrize(ctx, prize); err != nil {
		t.Fatalf("SavePrize failed: %v", err)
	}

	draw := &domain.Draw{SessionID: sessionID, DrawnAt: time.Now().UTC(), PrizeID: prize.ID}
	if err := repo.UpsertDraw(ctx, draw); err != nil {
		t.Fatalf("UpsertDraw failed: %v", err)
	}

	// Upsert again with a newer timestamp; must not violate the primary key.
	draw.DrawnAt = draw.DrawnAt.Add(time.Hour)
	if err := repo.UpsertDraw(ctx, draw); err != nil {
		t.Fatalf("second UpsertDraw failed: %v", err)
	}

	found, err := repo.FindDraw(ctx, sessionID)
	if err != nil {
		t.Fatalf("FindDraw failed: %v", err)
	}
	if found == nil {
		t.Fatal("expected draw record")
	}

	prizes, err := repo.FindPrizesBySession(ctx, sessionID)
	if err != nil {
		t.Fatalf("FindPrizesBySession failed: %v", err)
	}
	if len(prizes) != 1 || prizes[0].Code != "KL-TEST0001" {
		t.Errorf("unexpected prizes: %+v", prizes)
	}

	if err := repo.MarkPrizeUsed(ctx, prize.ID); err != nil {
		t.Fatalf("MarkPrizeUsed failed: %v", err)
	}
	used, err := repo.FindPrizeByID(ctx, prize.ID)
	if err != nil {
		t.Fatalf("FindPrizeByID failed: %v", err)
	}
	if !used.Used {
		t.Error("expected prize marked used")
	}
}

func TestTicketRepository_StatusFilter(t *testing.T) {
	env := SetupTestEnvironment(t)
	CleanDatabase(t, env.DB)

	repo := postgres.NewTicketRepository(env.DB)
	ctx := context.Background()

	sessionID := "kl-" + repeatHex(64)
	tickets := []domain.Ticket{
		{ID: "t1", SessionID: sessionID, Name: "Bilet 20-minutowy", Kind: domain.TicketKindTransit, Status: domain.TicketStatusActive, Date: time.Now().UTC()},
		{ID: "t2", SessionID: sessionID, Name: "Bilet do muzeum", Kind: domain.TicketKindCulture, Status: domain.TicketStatusUsed, Date: time.Now().UTC()},
		{ID: "t3", SessionID: sessionID, Name: "Basen", Kind: domain.TicketKindSport, Status: domain.TicketStatusReturned, Date: time.Now().UTC()},
	}
	for i := range tickets {
		if err := repo.Save(ctx, &tickets[i]); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	active, err := repo.FindBySession(ctx, sessionID, []domain.TicketStatus{domain.TicketStatusActive})
	if err != nil {
		t.Fatalf("FindBySession failed: %v", err)
	}
	if len(active) != 1 || active[0].ID != "t1" {
		t.Errorf("expected only t1 active, got %+v", active)
	}

	if err := repo.UpdateStatus(ctx, "t1", domain.TicketStatusUsed); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	active, err = repo.FindBySession(ctx, sessionID, []domain.TicketStatus{domain.TicketStatusActive})
	if err != nil {
		t.Fatalf("FindBySession failed: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("expected no active tickets after update, got %+v", active)
	}
}

func TestSubscriptionRepository_Lifecycle(t *testing.T) {
	env := SetupTestEnvironment(t)
	CleanDatabase(t, env.DB)

	repo := postgres.NewSubscriptionRepository(env.DB)
	ctx := context.Background()

	sessionID := "kl-" + repeatHex(64)
	sub := &domain.Subscription{
		ID:          "sub-1",
		SessionID:   sessionID,
		StationID:   "lodz-001",
		StationName: "Manufaktura - Parking Główny",
		Email:       "test@example.com",
		CreatedAt:   time.Now().UTC(),
	}
	if err := repo.Save(ctx, sub); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	byStation, err := repo.FindByStation(ctx, "lodz-001")
	if err != nil {
		t.Fatalf("FindByStation failed: %v", err)
	}
	if len(byStation) != 1 {
		t.Fatalf("expected one subscription, got %d", len(byStation))
	}

	if err := repo.Delete(ctx, sessionID, "lodz-001"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	bySession, err := repo.FindBySession(ctx, sessionID)
	if err != nil {
		t.Fatalf("FindBySession failed: %v", err)
	}
	if len(bySession) != 0 {
		t.Errorf("expected no subscriptions after delete, got %d", len(bySession))
	}
}

func repeatHex(n int) string {
	out := make([]byte, n)
	for i := range out {
		out[i] = "0123456789abcdef"[i%16]
	}
	return string(out)
}
