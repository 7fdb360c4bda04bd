package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/brandforge/brandforge/domain"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRunLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	run := &domain.Run{
		RunID:     "run_1",
		BrandName: "Zenith",
		Status:    domain.RunStatusCreated,
		StartedAt: time.Now(),
	}
	if err := s.CreateRun(ctx, run); err != nil {
		t.Fatalf("CreateRun failed: %v", err)
	}

	if err := s.UpdateRunStatus(ctx, "run_1", domain.RunStatusRunning); err != nil {
		t.Fatalf("UpdateRunStatus failed: %v", err)
	}

	got, err := s.GetRun(ctx, "run_1")
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if got == nil || got.Status != domain.RunStatusRunning || got.BrandName != "Zenith" {
		t.Fatalf("unexpected run: %+v", got)
	}
	if got.EndedAt != nil {
		t.Fatalf("run ended prematurely: %+v", got)
	}

	if err := s.UpdateRunCompleted(ctx, "run_1", domain.RunStatusFailed, "strategy failed"); err != nil {
		t.Fatalf("UpdateRunCompleted failed: %v", err)
	}
	got, err = s.GetRun(ctx, "run_1")
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if got.Status != domain.RunStatusFailed || got.Error != "strategy failed" || got.EndedAt == nil {
		t.Fatalf("unexpected completed run: %+v", got)
	}
}

func TestGetRunNotFound(t *testing.T) {
	s := newTestStore(t)
	run, err := s.GetRun(context.Background(), "nope")
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if run != nil {
		t.Fatalf("expected nil run, got %+v", run)
	}
}

func TestLatestRun(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	latest, err := s.LatestRun(ctx)
	if err != nil {
		t.Fatalf("LatestRun failed: %v", err)
	}
	if latest != nil {
		t.Fatalf("expected nil on empty store, got %+v", latest)
	}

	base := time.Now()
	for i, id := range []string{"run_a", "run_b", "run_c"} {
		run := &domain.Run{RunID: id, BrandName: "Z", Status: domain.RunStatusCreated, StartedAt: base.Add(time.Duration(i) * time.Second)}
		if err := s.CreateRun(ctx, run); err != nil {
			t.Fatalf("CreateRun failed: %v", err)
		}
	}

	latest, err = s.LatestRun(ctx)
	if err != nil {
		t.Fatalf("LatestRun failed: %v", err)
	}
	if latest == nil || latest.RunID != "run_c" {
		t.Fatalf("unexpected latest run: %+v", latest)
	}
}

func TestEventFiltering(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	run := &domain.Run{RunID: "run_1", BrandName: "Z", Status: domain.RunStatusRunning, StartedAt: time.Now()}
	if err := s.CreateRun(ctx, run); err != nil {
		t.Fatalf("CreateRun failed: %v", err)
	}

	events := []*domain.Event{
		{EventID: "e1", RunID: "run_1", Ts: 100, Type: domain.EventTypeRunStarted},
		{EventID: "e2", RunID: "run_1", Ts: 200, Type: domain.EventTypeStrategyDone, Payload: json.RawMessage(`{"tagline":"t"}`)},
		{EventID: "e3", RunID: "run_1", Ts: 300, Type: domain.EventTypeImageDone},
		{EventID: "e4", RunID: "run_1", Ts: 400, Type: domain.EventTypeRunDone},
	}
	for _, ev := range events {
		if err := s.CreateEvent(ctx, ev); err != nil {
			t.Fatalf("CreateEvent failed: %v", err)
		}
	}

	got, err := s.GetEvents(ctx, "run_1", 0, nil, 10)
	if err != nil {
		t.Fatalf("GetEvents failed: %v", err)
	}
	if len(got) != 4 || got[0].EventID != "e1" || got[3].EventID != "e4" {
		t.Fatalf("unexpected events: %+v", got)
	}

	got, err = s.GetEvents(ctx, "run_1", 150, nil, 10)
	if err != nil {
		t.Fatalf("GetEvents failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 events after ts filter, got %d", len(got))
	}

	got, err = s.GetEvents(ctx, "run_1", 0, []string{string(domain.EventTypeImageDone), string(domain.EventTypeRunDone)}, 10)
	if err != nil {
		t.Fatalf("GetEvents failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 events after type filter, got %d", len(got))
	}

	got, err = s.GetEvents(ctx, "run_1", 0, nil, 2)
	if err != nil {
		t.Fatalf("GetEvents failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected limit to apply, got %d", len(got))
	}
}

func TestBrandCacheRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	got, err := s.GetBrand(ctx, BrandCacheKey)
	if err != nil {
		t.Fatalf("GetBrand failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected empty cache, got %+v", got)
	}

	identity := &domain.BrandIdentity{
		BrandName:   "Zenith",
		Description: "A futuristic coffee shop serving robot-brewed espresso",
		Vibe:        "Minimalist",
		Tagline:     "Precision in every cup",
		Colors:      []string{"#111111", "#222222", "#333333", "#444444", "#555555"},
		SocialPosts: []domain.SocialPost{{Caption: "a"}, {Caption: "b"}, {Caption: "c"}},
	}
	if err := s.SaveBrand(ctx, BrandCacheKey, identity); err != nil {
		t.Fatalf("SaveBrand failed: %v", err)
	}

	got, err = s.GetBrand(ctx, BrandCacheKey)
	if err != nil {
		t.Fatalf("GetBrand failed: %v", err)
	}
	if got == nil || got.Tagline != identity.Tagline || len(got.SocialPosts) != 3 {
		t.Fatalf("unexpected cached identity: %+v", got)
	}

	// Upsert overwrites
	identity.Tagline = "Updated"
	if err := s.SaveBrand(ctx, BrandCacheKey, identity); err != nil {
		t.Fatalf("SaveBrand upsert failed: %v", err)
	}
	got, _ = s.GetBrand(ctx, BrandCacheKey)
	if got.Tagline != "Updated" {
		t.Fatalf("upsert did not overwrite: %+v", got)
	}

	if err := s.DeleteBrand(ctx, BrandCacheKey); err != nil {
		t.Fatalf("DeleteBrand failed: %v", err)
	}
	got, _ = s.GetBrand(ctx, BrandCacheKey)
	if got != nil {
		t.Fatalf("expected empty cache after delete, got %+v", got)
	}
}
