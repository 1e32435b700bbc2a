package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/sustainlite/sustainlite-api/internal/core/domain"
)

func newTestCache(t *testing.T, ttl time.Duration) (*DashboardCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	client, err := Connect(context.Background(), Config{Addr: mr.Addr()})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	return NewDashboardCache(client, ttl), mr
}

func TestDashboardCache_MissThenHit(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	gen, err := cache.Generation(ctx, 1)
	if err != nil || gen != 0 {
		t.Fatalf("expected generation 0, got %d err=%v", gen, err)
	}
	if _, ok, err := cache.Get(ctx, 1, gen); err != nil || ok {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}

	want := &domain.DashboardStats{TotalActivities: 1, EnergySaved: 2.5, RecentActivities: []*domain.Activity{}}
	if err := cache.Set(ctx, 1, gen, want); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, ok, err := cache.Get(ctx, 1, gen)
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if got.TotalActivities != 1 || got.EnergySaved != 2.5 {
		t.Errorf("unexpected stats: %+v", got)
	}

	if _, ok, _ := cache.Get(ctx, 2, gen); ok {
		t.Error("owners must not share cache entries")
	}
}

func TestDashboardCache_InvalidateAdvancesGeneration(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	_ = cache.Set(ctx, 7, 0, &domain.DashboardStats{TotalActivities: 3})
	if !mr.Exists("dashboard:7:0") {
		t.Fatal("expected key dashboard:7:0")
	}
	if err := cache.Invalidate(ctx, 7); err != nil {
		t.Fatalf("invalidate: %v", err)
	}

	gen, err := cache.Generation(ctx, 7)
	if err != nil || gen != 1 {
		t.Fatalf("expected generation 1, got %d err=%v", gen, err)
	}
	if _, ok, _ := cache.Get(ctx, 7, gen); ok {
		t.Error("expected miss after invalidate")
	}
	if other, _ := cache.Generation(ctx, 8); other != 0 {
		t.Errorf("invalidate must not touch other owners, got generation %d", other)
	}
}

func TestDashboardCache_SetUnderOldGenerationIsNotServed(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	before, _ := cache.Generation(ctx, 1)
	// A write lands between the reader's generation read and its Set.
	if err := cache.Invalidate(ctx, 1); err != nil {
		t.Fatal(err)
	}
	if err := cache.Set(ctx, 1, before, &domain.DashboardStats{TotalActivities: 0}); err != nil {
		t.Fatal(err)
	}

	now, _ := cache.Generation(ctx, 1)
	if _, ok, _ := cache.Get(ctx, 1, now); ok {
		t.Error("snapshot from an older generation must not be served")
	}
}

func TestDashboardCache_Expires(t *testing.T) {
	cache, mr := newTestCache(t, 30*time.Second)
	ctx := context.Background()

	_ = cache.Set(ctx, 1, 0, &domain.DashboardStats{TotalActivities: 3})
	mr.FastForward(31 * time.Second)

	if _, ok, _ := cache.Get(ctx, 1, 0); ok {
		t.Error("expected entry to expire")
	}
}

func TestDashboardCache_CorruptPayload(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	if err := mr.Set("dashboard:1:0", "not-json"); err != nil {
		t.Fatal(err)
	}

	if _, ok, err := cache.Get(context.Background(), 1, 0); err == nil || ok {
		t.Fatalf("expected decode error, got ok=%v err=%v", ok, err)
	}
}

func TestDashboardCache_CorruptGeneration(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	if err := mr.Set("dashboard:gen:1", "abc"); err != nil {
		t.Fatal(err)
	}

	if _, err := cache.Generation(context.Background(), 1); err == nil {
		t.Fatal("expected parse error for a non-numeric generation")
	}
}

func TestConnect_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	if _, err := Connect(context.Background(), Config{Addr: addr, Timeout: 200 * time.Millisecond}); err == nil {
		t.Fatal("expected ping failure")
	}
}

func TestConnect_Password(t *testing.T) {
	mr := miniredis.RunT(t)
	mr.RequireAuth("s3cret")

	if _, err := Connect(context.Background(), Config{Addr: mr.Addr()}); err == nil {
		t.Fatal("expected auth failure without a password")
	}
	client, err := Connect(context.Background(), Config{Addr: mr.Addr(), Password: "s3cret"})
	if err != nil {
		t.Fatalf("connect with password: %v", err)
	}
	_ = client.Close()
}

func TestPinger(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := Connect(context.Background(), Config{Addr: mr.Addr()})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer client.Close()

	ping := Pinger(client)
	if err := ping(context.Background()); err != nil {
		t.Fatalf("expected healthy ping, got %v", err)
	}
	mr.Close()
	if err := ping(context.Background()); err == nil {
		t.Fatal("expected ping to fail once redis is gone")
	}
}
