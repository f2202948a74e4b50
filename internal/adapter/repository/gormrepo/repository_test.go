package gormrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "expman-backend/internal/domain/record"
	domuser "expman-backend/internal/domain/user"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&domain.Employee{}, &domain.Transaction{}, &domain.Project{},
		&domain.Customer{}, &domain.Asset{}, &domuser.User{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func TestEmployee_CreateAndGetByID(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepo[domain.Employee](db)
	ctx := context.Background()

	e := &domain.Employee{Name: "Jane Smith", Email: "jane@example.com", Position: "Manager", Department: "HR"}
	if err := repo.Create(ctx, e); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if e.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}
	if e.CreatedAt.IsZero() {
		t.Fatalf("Create did not set created_at")
	}

	got, err := repo.GetByID(ctx, e.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Jane Smith" || got.Email != "jane@example.com" || got.Position != "Manager" || got.Department != "HR" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestEmployee_GetMissingIsRecordNotFound(t *testing.T) {
	repo := NewRepo[domain.Employee](openTestDB(t))
	if _, err := repo.GetByID(context.Background(), 12345); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("want gorm.ErrRecordNotFound, got %v", err)
	}
}

func TestEmployee_ListOrderedByID(t *testing.T) {
	repo := NewRepo[domain.Employee](openTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		if err := repo.Create(ctx, &domain.Employee{Name: name, Email: name + "@x.com", Position: "p", Department: "d"}); err != nil {
			t.Fatalf("Create %s: %v", name, err)
		}
	}
	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 3 || got[0].Name != "a" || got[2].Name != "c" {
		t.Fatalf("list mismatch: %+v", got)
	}
}

func TestEmployee_SaveRewritesRow(t *testing.T) {
	repo := NewRepo[domain.Employee](openTestDB(t))
	ctx := context.Background()

	e := &domain.Employee{Name: "Jane", Email: "jane@example.com", Position: "Manager", Department: "HR"}
	if err := repo.Create(ctx, e); err != nil {
		t.Fatalf("Create: %v", err)
	}
	e.Department = "Finance"
	if err := repo.Save(ctx, e); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := repo.GetByID(ctx, e.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Department != "Finance" || got.Name != "Jane" {
		t.Fatalf("save mismatch: %+v", got)
	}
}

func TestEmployee_Delete(t *testing.T) {
	repo := NewRepo[domain.Employee](openTestDB(t))
	ctx := context.Background()

	e := &domain.Employee{Name: "Jane", Email: "jane@example.com", Position: "p", Department: "d"}
	if err := repo.Create(ctx, e); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Delete(ctx, e.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, e.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("want gorm.ErrRecordNotFound after delete, got %v", err)
	}
}

func TestTransaction_DateRoundTrip(t *testing.T) {
	repo := NewRepo[domain.Transaction](openTestDB(t))
	ctx := context.Background()

	day := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	tx := &domain.Transaction{Date: day, Description: "invoice", Amount: 1200.50, Type: domain.TypeIncome, Category: "sales"}
	if err := repo.Create(ctx, tx); err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := repo.GetByID(ctx, tx.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !got.Date.Equal(day) || got.Amount != 1200.50 || got.Type != domain.TypeIncome {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestProject_NullableDates(t *testing.T) {
	repo := NewRepo[domain.Project](openTestDB(t))
	ctx := context.Background()

	p := &domain.Project{Name: "website", Client: "acme", Status: domain.ProjectPlanning}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := repo.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.StartDate != nil || got.EndDate != nil {
		t.Fatalf("dates should stay null: %+v", got)
	}
}

func TestUserRepository_CreateAndLookup(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()

	u := &domuser.User{Username: "admin", Email: "admin@company.com", PasswordHash: []byte("hash"), IsStaff: true}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := repo.GetByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if got.Email != "admin@company.com" || !got.IsStaff {
		t.Fatalf("lookup mismatch: %+v", got)
	}
	if _, err := repo.GetByUsername(ctx, "ghost"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("want gorm.ErrRecordNotFound, got %v", err)
	}
}
