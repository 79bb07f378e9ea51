package service

import (
	"context"
	"fmt"
	"log"

	"mergington_api/internal/common"
	"mergington_api/internal/domain/model"
	"mergington_api/internal/domain/repository"
)

type ActivityService struct {
	activityRepo repository.ActivityRepository
}

func NewActivityService(activityRepo repository.ActivityRepository) *ActivityService {
	return &ActivityService{activityRepo: activityRepo}
}

func (s *ActivityService) List(ctx context.Context) (map[string]*model.Activity, error) {
	return s.activityRepo.List(ctx)
}

// Signup enrolls a student for an activity on behalf of an
// authenticated teacher and returns the confirmation message.
func (s *ActivityService) Signup(ctx context.Context, activityName, email, teacherUsername string) (string, error) {
	if email == "" {
		return "", common.WithMessage(common.ErrBadRequest, "Email is required")
	}
	if err := s.activityRepo.AddParticipant(ctx, activityName, email); err != nil {
		return "", err
	}
	log.Printf("teacher %s signed up %s for %s", teacherUsername, email, activityName)
	return fmt.Sprintf("Signed up %s for %s", email, activityName), nil
}

func (s *ActivityService) Unregister(ctx context.Context, activityName, email, teacherUsername string) (string, error) {
	if email == "" {
		return "", common.WithMessage(common.ErrBadRequest, "Email is required")
	}
	if err := s.activityRepo.RemoveParticipant(ctx, activityName, email); err != nil {
		return "", err
	}
	log.Printf("teacher %s unregistered %s from %s", teacherUsername, email, activityName)
	return fmt.Sprintf("Unregistered %s from %s", email, activityName), nil
}
