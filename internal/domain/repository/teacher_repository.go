package repository

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"mergington_api/internal/common"
	"mergington_api/internal/domain/model"

	"golang.org/x/crypto/bcrypt"
)

type TeacherRepository interface {
	FindByUsername(ctx context.Context, username string) (*model.Teacher, error)
	VerifyPassword(ctx context.Context, username, password string) (*model.Teacher, error)
}

type teacherRecord struct {
	Password    string `json:"password"`
	DisplayName string `json:"name"`
}

type teachersFile struct {
	Teachers map[string]teacherRecord `json:"teachers"`
}

type fileTeacherRepository struct {
	teachers map[string]teacherRecord
}

// NewFileTeacherRepository loads the credential file once at startup.
// A missing file is not fatal: it yields an empty store, so every login
// fails with Unauthorized rather than crashing the process.
func NewFileTeacherRepository(path string) (TeacherRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("teachers file %s not found, starting with an empty credential store", path)
			return &fileTeacherRepository{teachers: map[string]teacherRecord{}}, nil
		}
		return nil, fmt.Errorf("fileTeacherRepository: read %s: %w", path, err)
	}

	var parsed teachersFile
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("fileTeacherRepository: parse %s: %w", path, err)
	}
	if parsed.Teachers == nil {
		parsed.Teachers = map[string]teacherRecord{}
	}
	return &fileTeacherRepository{teachers: parsed.Teachers}, nil
}

func (r *fileTeacherRepository) FindByUsername(ctx context.Context, username string) (*model.Teacher, error) {
	record, ok := r.teachers[username]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &model.Teacher{Username: username, DisplayName: record.DisplayName}, nil
}

func (r *fileTeacherRepository) VerifyPassword(ctx context.Context, username, password string) (*model.Teacher, error) {
	record, ok := r.teachers[username]
	if !ok || !passwordMatches(record.Password, password) {
		// Unknown user and wrong password must be indistinguishable.
		return nil, common.WithMessage(common.ErrUnauthorized, "Invalid username or password")
	}
	return &model.Teacher{Username: username, DisplayName: record.DisplayName}, nil
}

// passwordMatches accepts bcrypt hashes in the credential file and
// falls back to a constant-time comparison for plaintext entries.
func passwordMatches(stored, supplied string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}
