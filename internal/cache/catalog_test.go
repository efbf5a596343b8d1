package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bangohan/kondate/internal/metrics"
	"github.com/bangohan/kondate/internal/services/model"
)

func TestMain(m *testing.M) {
	if err := metrics.Init(); err != nil {
		panic(err)
	}
	m.Run()
}

type fakeSource struct {
	calls   int
	catalog []model.Descriptor
	err     error
}

func (f *fakeSource) ListModels(ctx context.Context) ([]model.Descriptor, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.catalog, nil
}

func TestCatalog_FetchesOnce(t *testing.T) {
	src := &fakeSource{catalog: []model.Descriptor{{ID: "gemini-2.5-flash", Methods: []string{"generateContent"}}}}
	c := NewCatalog(src, time.Minute)

	for i := 0; i < 3; i++ {
		got, err := c.Models(context.Background())
		if err != nil {
			t.Fatalf("Models() error = %v", err)
		}
		if len(got) != 1 || got[0].ID != "gemini-2.5-flash" {
			t.Fatalf("Models() = %v", got)
		}
	}

	if src.calls != 1 {
		t.Errorf("source called %d times, want 1", src.calls)
	}
}

func TestCatalog_InvalidateForcesRefetch(t *testing.T) {
	src := &fakeSource{catalog: []model.Descriptor{{ID: "gemini-pro-latest"}}}
	c := NewCatalog(src, time.Minute)

	if _, err := c.Models(context.Background()); err != nil {
		t.Fatalf("Models() error = %v", err)
	}
	c.Invalidate()
	if _, err := c.Models(context.Background()); err != nil {
		t.Fatalf("Models() error = %v", err)
	}

	if src.calls != 2 {
		t.Errorf("source called %d times, want 2", src.calls)
	}
}

func TestCatalog_FetchErrorPropagates(t *testing.T) {
	src := &fakeSource{err: errors.New("connection refused")}
	c := NewCatalog(src, time.Minute)

	if _, err := c.Models(context.Background()); err == nil {
		t.Fatal("Models() expected error, got nil")
	}

	// A failed fetch must not poison the cache; the next call retries.
	src.err = nil
	src.catalog = []model.Descriptor{{ID: "legacy-model"}}
	got, err := c.Models(context.Background())
	if err != nil {
		t.Fatalf("Models() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Models() = %v", got)
	}
	if src.calls != 2 {
		t.Errorf("source called %d times, want 2", src.calls)
	}
}

func TestCatalog_ZeroTTLNeverExpires(t *testing.T) {
	src := &fakeSource{catalog: []model.Descriptor{{ID: "m"}}}
	c := NewCatalog(src, 0)

	if _, err := c.Models(context.Background()); err != nil {
		t.Fatalf("Models() error = %v", err)
	}
	c.fetchedAt = time.Now().Add(-24 * time.Hour)
	if _, err := c.Models(context.Background()); err != nil {
		t.Fatalf("Models() error = %v", err)
	}

	if src.calls != 1 {
		t.Errorf("source called %d times, want 1", src.calls)
	}
}

func TestCatalog_TTLExpiryRefetches(t *testing.T) {
	src := &fakeSource{catalog: []model.Descriptor{{ID: "m"}}}
	c := NewCatalog(src, time.Minute)

	if _, err := c.Models(context.Background()); err != nil {
		t.Fatalf("Models() error = %v", err)
	}
	c.fetchedAt = time.Now().Add(-2 * time.Minute)
	if _, err := c.Models(context.Background()); err != nil {
		t.Fatalf("Models() error = %v", err)
	}

	if src.calls != 2 {
		t.Errorf("source called %d times, want 2", src.calls)
	}
}
