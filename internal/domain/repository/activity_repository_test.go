package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"mergington_api/internal/common"
	"mergington_api/internal/domain/model"
)

func seedActivities() map[string]*model.Activity {
	return map[string]*model.Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 2,
			Participants:    []string{"michael@mergington.edu"},
		},
	}
}

func TestMemoryActivityRepository_AddParticipant(t *testing.T) {
	repo := NewMemoryActivityRepository(seedActivities(), false)
	ctx := context.Background()

	if err := repo.AddParticipant(ctx, "Chess Club", "daniel@mergington.edu"); err != nil {
		t.Fatalf("first signup must succeed: %v", err)
	}

	activity, err := repo.FindByName(ctx, "Chess Club")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"michael@mergington.edu", "daniel@mergington.edu"}
	if len(activity.Participants) != len(want) {
		t.Fatalf("expected %d participants, got %d", len(want), len(activity.Participants))
	}
	for i, email := range want {
		if activity.Participants[i] != email {
			t.Errorf("signup order not preserved at %d: got %q, want %q", i, activity.Participants[i], email)
		}
	}
}

func TestMemoryActivityRepository_AddParticipant_Duplicate(t *testing.T) {
	repo := NewMemoryActivityRepository(seedActivities(), false)
	ctx := context.Background()

	err := repo.AddParticipant(ctx, "Chess Club", "michael@mergington.edu")
	if !errors.Is(err, common.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
	if err.Error() != "Student is already signed up" {
		t.Errorf("unexpected message %q", err.Error())
	}

	activity, _ := repo.FindByName(ctx, "Chess Club")
	if len(activity.Participants) != 1 {
		t.Errorf("duplicate signup must not append, got %v", activity.Participants)
	}
}

func TestMemoryActivityRepository_AddParticipant_UnknownActivity(t *testing.T) {
	repo := NewMemoryActivityRepository(seedActivities(), false)

	err := repo.AddParticipant(context.Background(), "Chess123", "new@mergington.edu")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err.Error() != "Activity not found" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestMemoryActivityRepository_CapacityNotEnforcedByDefault(t *testing.T) {
	repo := NewMemoryActivityRepository(seedActivities(), false)
	ctx := context.Background()

	// Seed has 1 of max 2; push past the limit.
	for i := 0; i < 5; i++ {
		email := fmt.Sprintf("student%d@mergington.edu", i)
		if err := repo.AddParticipant(ctx, "Chess Club", email); err != nil {
			t.Fatalf("signup %d must succeed with enforcement off: %v", i, err)
		}
	}

	activity, _ := repo.FindByName(ctx, "Chess Club")
	if len(activity.Participants) != 6 {
		t.Errorf("expected 6 participants, got %d", len(activity.Participants))
	}
}

func TestMemoryActivityRepository_CapacityEnforced(t *testing.T) {
	repo := NewMemoryActivityRepository(seedActivities(), true)
	ctx := context.Background()

	if err := repo.AddParticipant(ctx, "Chess Club", "daniel@mergington.edu"); err != nil {
		t.Fatalf("signup below capacity must succeed: %v", err)
	}

	err := repo.AddParticipant(ctx, "Chess Club", "late@mergington.edu")
	if !errors.Is(err, common.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest when full, got %v", err)
	}
	if err.Error() != "Activity is full" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestMemoryActivityRepository_RemoveParticipant(t *testing.T) {
	repo := NewMemoryActivityRepository(seedActivities(), false)
	ctx := context.Background()

	if err := repo.RemoveParticipant(ctx, "Chess Club", "michael@mergington.edu"); err != nil {
		t.Fatalf("unregister of existing participant must succeed: %v", err)
	}

	err := repo.RemoveParticipant(ctx, "Chess Club", "michael@mergington.edu")
	if !errors.Is(err, common.ErrBadRequest) {
		t.Fatalf("second unregister must fail, got %v", err)
	}
	if err.Error() != "Student is not signed up for this activity" {
		t.Errorf("unexpected message %q", err.Error())
	}

	if err := repo.RemoveParticipant(ctx, "Chess123", "michael@mergington.edu"); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("unknown activity must yield ErrNotFound, got %v", err)
	}
}

func TestMemoryActivityRepository_SnapshotsAreCopies(t *testing.T) {
	repo := NewMemoryActivityRepository(seedActivities(), false)
	ctx := context.Background()

	snapshot, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snapshot["Chess Club"].Participants[0] = "tampered@mergington.edu"

	activity, _ := repo.FindByName(ctx, "Chess Club")
	if activity.Participants[0] != "michael@mergington.edu" {
		t.Error("mutating a snapshot must not reach the roster")
	}
}

func TestMemoryActivityRepository_ConcurrentSignups(t *testing.T) {
	repo := NewMemoryActivityRepository(seedActivities(), false)
	ctx := context.Background()

	const workers = 50
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			email := fmt.Sprintf("student%d@mergington.edu", n)
			if err := repo.AddParticipant(ctx, "Chess Club", email); err != nil {
				t.Errorf("concurrent signup for %s failed: %v", email, err)
			}
		}(i)
	}
	wg.Wait()

	activity, _ := repo.FindByName(ctx, "Chess Club")
	if len(activity.Participants) != workers+1 {
		t.Fatalf("expected %d participants, got %d (lost update)", workers+1, len(activity.Participants))
	}
	seen := make(map[string]bool, len(activity.Participants))
	for _, email := range activity.Participants {
		if seen[email] {
			t.Errorf("duplicate participant %s", email)
		}
		seen[email] = true
	}
}

func TestMemoryActivityRepository_ConcurrentSameEmail(t *testing.T) {
	repo := NewMemoryActivityRepository(seedActivities(), false)
	ctx := context.Background()

	const workers = 20
	var wg sync.WaitGroup
	successes := make(chan struct{}, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := repo.AddParticipant(ctx, "Chess Club", "racer@mergington.edu"); err == nil {
				successes <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(successes)

	if n := len(successes); n != 1 {
		t.Errorf("exactly one concurrent signup for the same email must win, got %d", n)
	}
}
