package repository

import (
	"context"
	"sync"

	"mergington_api/internal/common"
	"mergington_api/internal/domain/model"
)

type ActivityRepository interface {
	List(ctx context.Context) (map[string]*model.Activity, error)
	FindByName(ctx context.Context, name string) (*model.Activity, error)
	AddParticipant(ctx context.Context, name, email string) error
	RemoveParticipant(ctx context.Context, name, email string) error
}

// memoryActivityRepository owns the activities map for the life of the
// process. Every read-modify-write runs under the mutex so concurrent
// signups for the same activity cannot race.
type memoryActivityRepository struct {
	mu              sync.Mutex
	activities      map[string]*model.Activity
	enforceCapacity bool
}

func NewMemoryActivityRepository(seed map[string]*model.Activity, enforceCapacity bool) ActivityRepository {
	activities := make(map[string]*model.Activity, len(seed))
	for name, activity := range seed {
		activities[name] = activity.Clone()
	}
	return &memoryActivityRepository{
		activities:      activities,
		enforceCapacity: enforceCapacity,
	}
}

func (r *memoryActivityRepository) List(ctx context.Context) (map[string]*model.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := make(map[string]*model.Activity, len(r.activities))
	for name, activity := range r.activities {
		snapshot[name] = activity.Clone()
	}
	return snapshot, nil
}

func (r *memoryActivityRepository) FindByName(ctx context.Context, name string) (*model.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return nil, common.WithMessage(common.ErrNotFound, "Activity not found")
	}
	return activity.Clone(), nil
}

func (r *memoryActivityRepository) AddParticipant(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return common.WithMessage(common.ErrNotFound, "Activity not found")
	}
	for _, participant := range activity.Participants {
		if participant == email {
			return common.WithMessage(common.ErrBadRequest, "Student is already signed up")
		}
	}
	if r.enforceCapacity && len(activity.Participants) >= activity.MaxParticipants {
		return common.WithMessage(common.ErrBadRequest, "Activity is full")
	}
	// Append preserves signup order.
	activity.Participants = append(activity.Participants, email)
	return nil
}

func (r *memoryActivityRepository) RemoveParticipant(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return common.WithMessage(common.ErrNotFound, "Activity not found")
	}
	for i, participant := range activity.Participants {
		if participant == email {
			activity.Participants = append(activity.Participants[:i], activity.Participants[i+1:]...)
			return nil
		}
	}
	return common.WithMessage(common.ErrBadRequest, "Student is not signed up for this activity")
}
