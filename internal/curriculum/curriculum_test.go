package curriculum

import (
	"context"
	"fmt"
	"testing"

	"github.com/abhisek/opsdojo/internal/store"
)

func TestBankValidates(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("built-in bank failed validation: %v", err)
	}
}

func TestBankCoversFiveLevels(t *testing.T) {
	levels := Levels()
	if len(levels) != 5 {
		t.Fatalf("levels = %v, want 5 levels", levels)
	}
	for i, lvl := range levels {
		if lvl != i+1 {
			t.Errorf("levels[%d] = %d, want %d", i, lvl, i+1)
		}
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	s, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer s.Close()
	ctx := context.Background()

	n, err := Seed(ctx, s)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if n != len(Questions()) {
		t.Errorf("inserted = %d, want %d", n, len(Questions()))
	}

	n, err = Seed(ctx, s)
	if err != nil {
		t.Fatalf("re-seed: %v", err)
	}
	if n != 0 {
		t.Errorf("re-seed inserted = %d, want 0", n)
	}

	qs, err := s.QuestionRepo().ByLevel(ctx, Domain, 1)
	if err != nil {
		t.Fatalf("by level: %v", err)
	}
	if len(qs) != 3 {
		t.Errorf("level 1 questions = %d, want 3", len(qs))
	}
	if qs[0].ID != "monitoring-1-0" {
		t.Errorf("first id = %s, want monitoring-1-0", qs[0].ID)
	}
}
