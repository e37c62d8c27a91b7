package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"dub-translator/internal/domain/entities"
	"dub-translator/internal/domain/repositories"
)

func TestInMemoryJobRepository(t *testing.T) {
	repo := NewInMemoryJobRepository()
	ctx := context.Background()

	job := &entities.DubbingJob{DubbingID: "j1", Status: "dubbing"}
	if err := repo.Save(ctx, job); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.Get(ctx, "j1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	got.Status = "mutated"
	if again, _ := repo.Get(ctx, "j1"); again.Status != "dubbing" {
		t.Fatal("Get must return a copy")
	}

	if _, terminal, _ := repo.UpdateStatus(ctx, "j1", "done"); !terminal {
		t.Fatal("first terminal status should be reported")
	}
	if _, terminal, _ := repo.UpdateStatus(ctx, "j1", "dubbed"); terminal {
		t.Fatal("terminal to terminal should not be reported again")
	}
	if _, _, err := repo.UpdateStatus(ctx, "nope", "done"); !errors.Is(err, repositories.ErrJobNotFound) {
		t.Fatalf("err = %v", err)
	}
}

func TestInMemoryHistoryRepository(t *testing.T) {
	repo := NewInMemoryHistoryRepository()
	ctx := context.Background()
	base := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	for i, id := range []string{"a", "b", "c"} {
		rec := &entities.DubbingRecord{DubbingID: id, CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		if err := repo.Create(ctx, rec); err != nil {
			t.Fatalf("Create: %v", err)
		}
		if rec.ID.String() == "00000000-0000-0000-0000-000000000000" {
			t.Fatal("Create should assign an id")
		}
	}

	list, err := repo.List(ctx, 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].DubbingID != "c" || list[1].DubbingID != "b" {
		t.Fatalf("list = %+v", list)
	}

	if _, err := repo.GetByDubbingID(ctx, "b"); err != nil {
		t.Fatalf("GetByDubbingID: %v", err)
	}
	if _, err := repo.GetByDubbingID(ctx, "zzz"); !errors.Is(err, repositories.ErrRecordNotFound) {
		t.Fatalf("missing record err = %v", err)
	}
}
