package storage

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/chubbycorn/internal/core"
)

func TestSaveRunRoundTrip(t *testing.T) {
	store := openTestStore(t)

	rec := NewRunRecord("chubbycorn", "alice", core.RunSummary{
		Score:           420,
		LivesLeft:       2,
		EndReason:       "hazard",
		Duration:        83*time.Second + 250*time.Millisecond,
		PeakHazardSpeed: 10.3,
		GoodCollected:   7,
		BadCollected:    1,
	})

	id, err := store.SaveRun(rec)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id != rec.ID {
		t.Errorf("SaveRun() = %q, expected record ID %q", id, rec.ID)
	}

	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() = nil, expected the saved run")
	}

	got.CreatedAt = time.Time{}
	if *got != rec {
		t.Errorf("RunByID() = %+v\nexpected %+v", *got, rec)
	}

	// The score table sees the run too
	if high, _ := store.HighScore("chubbycorn"); high != 420 {
		t.Errorf("HighScore() = %d, expected 420", high)
	}
}

func TestSaveRunAssignsID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(RunRecord{GameID: "chubbycorn", Score: 1, EndReason: "boundary"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("SaveRun() id %q is not a UUID: %v", id, err)
	}

	if _, err := store.SaveRun(RunRecord{ID: "not-a-uuid", GameID: "chubbycorn"}); err == nil {
		t.Error("SaveRun() with malformed ID should fail")
	}
}

func TestRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.RunByID(uuid.NewString())
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got != nil {
		t.Errorf("RunByID() = %+v, expected nil", got)
	}
}

func TestTopAndRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i, score := range []int{30, 90, 60} {
		_, err := store.SaveRun(RunRecord{
			GameID:    "chubbycorn",
			Score:     score,
			EndReason: "lives",
			Duration:  time.Duration(i+1) * time.Second,
		})
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	store.SaveRun(RunRecord{GameID: "chubbycorn_classic", Score: 500, EndReason: "hazard"}) //nolint:errcheck

	top, err := store.TopRuns("chubbycorn", 2)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 2 || top[0].Score != 90 || top[1].Score != 60 {
		t.Errorf("TopRuns() = %+v, expected 90 then 60", top)
	}

	recent, err := store.RecentRuns(0)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 4 {
		t.Fatalf("RecentRuns() returned %d runs, expected 4", len(recent))
	}
	if recent[0].GameID != "chubbycorn_classic" {
		t.Errorf("RecentRuns()[0] = %q, expected the last saved run first", recent[0].GameID)
	}
}

func TestRunTotals(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetRunTotals("chubbycorn")
	if err != nil {
		t.Fatalf("GetRunTotals() failed: %v", err)
	}
	if empty != (RunTotals{}) {
		t.Errorf("GetRunTotals() = %+v on empty store, expected zero", empty)
	}

	store.SaveRun(RunRecord{GameID: "chubbycorn", GoodCollected: 3, BadCollected: 1, Duration: 20 * time.Second, PeakHazardSpeed: 4}) //nolint:errcheck
	store.SaveRun(RunRecord{GameID: "chubbycorn", GoodCollected: 5, BadCollected: 2, Duration: 45 * time.Second, PeakHazardSpeed: 6.5}) //nolint:errcheck

	got, err := store.GetRunTotals("chubbycorn")
	if err != nil {
		t.Fatalf("GetRunTotals() failed: %v", err)
	}
	want := RunTotals{Runs: 2, GoodCollected: 8, BadCollected: 3, LongestRun: 45 * time.Second, PeakHazardSpeed: 6.5}
	if got != want {
		t.Errorf("GetRunTotals() = %+v, expected %+v", got, want)
	}
}
