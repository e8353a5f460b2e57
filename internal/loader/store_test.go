package loader

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Ricardo-TDP/ruleta/internal/wheel"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStore(filepath.Join(t.TempDir(), "options.db"))
	if err != nil {
		t.Fatalf("OpenStore() = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_ImportAndList(t *testing.T) {
	t.Parallel()

	var (
		ctx   = context.Background()
		store = testStore(t)
	)

	want := []wheel.Option{
		{Label: "tacos", DisplayText: "Tacos", Color: "#E6194B"},
		{Label: "pizza", DisplayText: "Pizza", Color: "#3CB44B"},
		{Label: "sushi", DisplayText: "Sushi", Color: "#FFE119"},
	}
	if err := store.Import(ctx, want); err != nil {
		t.Fatalf("Import() = %v", err)
	}

	got, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_ImportReplacesWholesale(t *testing.T) {
	t.Parallel()

	var (
		ctx   = context.Background()
		store = testStore(t)
	)

	first := []wheel.Option{
		{Label: "a", DisplayText: "a", Color: "#111111"},
		{Label: "b", DisplayText: "b", Color: "#222222"},
	}
	if err := store.Import(ctx, first); err != nil {
		t.Fatalf("first Import() = %v", err)
	}

	second := []wheel.Option{
		{Label: "c", DisplayText: "c", Color: "#333333"},
	}
	if err := store.Import(ctx, second); err != nil {
		t.Fatalf("second Import() = %v", err)
	}

	got, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() = %v", err)
	}
	if diff := cmp.Diff(second, got); diff != "" {
		t.Errorf("List() after replace mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_ImportEmptyRejected(t *testing.T) {
	t.Parallel()

	var (
		ctx   = context.Background()
		store = testStore(t)
	)

	prior := []wheel.Option{{Label: "keep", DisplayText: "keep", Color: "#444444"}}
	if err := store.Import(ctx, prior); err != nil {
		t.Fatalf("Import() = %v", err)
	}

	if err := store.Import(ctx, nil); !errors.Is(err, wheel.ErrEmptyOptionSet) {
		t.Fatalf("Import(nil) = %v, want ErrEmptyOptionSet", err)
	}

	got, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() = %v", err)
	}
	if diff := cmp.Diff(prior, got); diff != "" {
		t.Errorf("prior options changed by rejected import (-want +got):\n%s", diff)
	}
}

func TestStore_ListEmpty(t *testing.T) {
	t.Parallel()

	store := testStore(t)
	if _, err := store.List(context.Background()); !errors.Is(err, wheel.ErrEmptyOptionSet) {
		t.Errorf("List() on empty store = %v, want ErrEmptyOptionSet", err)
	}
}
