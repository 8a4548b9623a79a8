package repos

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sprintslides/sprintslides-backend/internal/platform/logger"
	"github.com/sprintslides/sprintslides-backend/internal/types"
)

func TestDeckRepoIntegrationAgainstLocalPostgres(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("set TEST_DATABASE_URL to run Postgres integration tests")
	}

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := gdb.AutoMigrate(&types.DeckRecord{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	t.Cleanup(func() { log.Sync() })

	repo := NewDeckRepo(gdb, log)
	ctx := context.Background()

	slides, err := json.Marshal([]types.Slide{{Type: "overview", Title: "T", Content: "C"}})
	if err != nil {
		t.Fatalf("marshal slides: %v", err)
	}
	record := &types.DeckRecord{
		Topic:      "integration-" + uuid.NewString(),
		SlideCount: 1,
		ModelUsed:  "test-model",
		Slides:     slides,
	}

	created, err := repo.Create(ctx, nil, record)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatalf("create must assign an id")
	}
	t.Cleanup(func() {
		gdb.Delete(&types.DeckRecord{}, "id = ?", created.ID)
	})

	got, err := repo.GetByID(ctx, nil, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Topic != record.Topic || got.SlideCount != 1 || got.ModelUsed != "test-model" {
		t.Fatalf("round trip mismatch: got=%+v", got)
	}
}
