package service

import (
	"context"
	"fmt"

	"mergington_api/internal/common/security"
	"mergington_api/internal/domain/model"
	"mergington_api/internal/domain/repository"
)

type AuthService struct {
	teacherRepo repository.TeacherRepository
	tokens      *security.TokenService
}

func NewAuthService(teacherRepo repository.TeacherRepository, tokens *security.TokenService) *AuthService {
	return &AuthService{teacherRepo: teacherRepo, tokens: tokens}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	TeacherName string `json:"teacher_name"`
}

func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	teacher, err := s.teacherRepo.VerifyPassword(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(teacher.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		TeacherName: teacher.DisplayName,
	}, nil
}

// ResolveTeacher cross-checks that a username carried by a valid token
// still exists in the credential store. A teacher removed after token
// issuance loses access immediately.
func (s *AuthService) ResolveTeacher(ctx context.Context, username string) (*model.Teacher, error) {
	return s.teacherRepo.FindByUsername(ctx, username)
}
