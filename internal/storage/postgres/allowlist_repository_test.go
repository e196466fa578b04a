package postgres

import (
	"context"
	"testing"

	"github.com/MiguelPimienta19/mcc-web/internal/domain"
	"github.com/MiguelPimienta19/mcc-web/internal/testutil"
)

func TestAllowlistRepository_AddAndCheck(t *testing.T) {
	pool := testutil.NewTestPool(t)
	testutil.ApplyMigrations(t, context.Background(), pool)
	repo := NewAllowlistRepository(pool)

	ctx := context.Background()
	testutil.TruncateAll(t, ctx, pool)

	if err := repo.AddAdmin(ctx, "admin@example.com"); err != nil {
		t.Fatalf("add admin: %v", err)
	}

	ok, err := repo.IsAdmin(ctx, "admin@example.com")
	if err != nil {
		t.Fatalf("is admin: %v", err)
	}
	if !ok {
		t.Fatalf("expected admin present")
	}

	ok, err = repo.IsAdmin(ctx, "stranger@example.com")
	if err != nil {
		t.Fatalf("is admin: %v", err)
	}
	if ok {
		t.Fatalf("expected stranger absent")
	}
}

func TestAllowlistRepository_AddAdmin_Duplicate(t *testing.T) {
	pool := testutil.NewTestPool(t)
	testutil.ApplyMigrations(t, context.Background(), pool)
	repo := NewAllowlistRepository(pool)

	ctx := context.Background()
	testutil.TruncateAll(t, ctx, pool)

	if err := repo.AddAdmin(ctx, "dup@example.com"); err != nil {
		t.Fatalf("add admin: %v", err)
	}
	if err := repo.AddAdmin(ctx, "dup@example.com"); err != domain.ErrAdminAlreadyExists {
		t.Fatalf("expected ErrAdminAlreadyExists, got %v", err)
	}
}

func TestAllowlistRepository_RemoveAdmin(t *testing.T) {
	pool := testutil.NewTestPool(t)
	testutil.ApplyMigrations(t, context.Background(), pool)
	repo := NewAllowlistRepository(pool)

	ctx := context.Background()
	testutil.TruncateAll(t, ctx, pool)

	testutil.InsertAdmin(t, ctx, pool, "old@example.com")

	if err := repo.RemoveAdmin(ctx, "old@example.com"); err != nil {
		t.Fatalf("remove admin: %v", err)
	}

	ok, err := repo.IsAdmin(ctx, "old@example.com")
	if err != nil {
		t.Fatalf("is admin: %v", err)
	}
	if ok {
		t.Fatalf("expected admin removed")
	}

	if err := repo.RemoveAdmin(ctx, "old@example.com"); err != domain.ErrAdminNotFound {
		t.Fatalf("expected ErrAdminNotFound, got %v", err)
	}
}

func TestAllowlistRepository_ListAdmins_Sorted(t *testing.T) {
	pool := testutil.NewTestPool(t)
	testutil.ApplyMigrations(t, context.Background(), pool)
	repo := NewAllowlistRepository(pool)

	ctx := context.Background()
	testutil.TruncateAll(t, ctx, pool)

	for _, email := range []string{"charlie@example.com", "alice@example.com", "bob@example.com"} {
		testutil.InsertAdmin(t, ctx, pool, email)
	}

	admins, err := repo.ListAdmins(ctx)
	if err != nil {
		t.Fatalf("list admins: %v", err)
	}
	want := []string{"alice@example.com", "bob@example.com", "charlie@example.com"}
	if len(admins) != len(want) {
		t.Fatalf("expected %d admins, got %d", len(want), len(admins))
	}
	for i := range want {
		if admins[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, admins)
		}
	}
}
