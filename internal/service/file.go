package service

import (
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/medtrack/medtrack/internal/model"
	"github.com/medtrack/medtrack/internal/repository"
	"github.com/medtrack/medtrack/internal/storage"
	"github.com/medtrack/medtrack/internal/validation"
)

// FileService manages avatar uploads backed by S3-compatible storage.
type FileService struct {
	files   repository.FileRepository
	storage storage.Storage
}

func NewFileService(files repository.FileRepository, store storage.Storage) *FileService {
	return &FileService{files: files, storage: store}
}

// UploadAvatar validates, stores, and records a new avatar image,
// replacing any previous one.
func (s *FileService) UploadAvatar(user *model.User, header *multipart.FileHeader) (*model.File, error) {
	err := validation.ValidateFile(header, validation.ImageConstraints)
	if err != nil {
		return nil, err
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	filename := uuid.New().String() + ext
	storagePath := fmt.Sprintf("avatars/%s/%s", user.ID, filename)

	err = s.storage.Save(storagePath, src)
	if err != nil {
		if errors.Is(err, storage.ErrNotConfigured) {
			return nil, errors.New("avatar uploads are not available")
		}
		return nil, fmt.Errorf("store avatar: %w", err)
	}

	// Replace the previous avatar if one exists
	err = s.DeleteAvatar(user)
	if err != nil {
		slog.Error("failed to remove previous avatar", "error", err, "user_id", user.ID)
	}

	file := &model.File{
		ID:           uuid.New().String(),
		UserID:       user.ID,
		OwnerType:    "user",
		OwnerID:      user.ID,
		Type:         model.FileTypeAvatar,
		Filename:     filename,
		OriginalName: header.Filename,
		MimeType:     header.Header.Get("Content-Type"),
		Size:         header.Size,
		StoragePath:  storagePath,
		Public:       true,
		CreatedAt:    time.Now(),
	}

	err = s.files.Create(file)
	if err != nil {
		return nil, err
	}

	return file, nil
}

// DeleteAvatar removes the user's avatar from storage and the database.
// No-op when the user has no avatar.
func (s *FileService) DeleteAvatar(user *model.User) error {
	file, err := s.files.FileByType("user", user.ID, model.FileTypeAvatar)
	if err != nil {
		if errors.Is(err, repository.ErrFileNotFound) {
			return nil
		}
		return err
	}

	err = s.storage.Delete(file.StoragePath)
	if err != nil {
		return fmt.Errorf("delete from storage: %w", err)
	}

	return s.files.Delete(file.ID)
}

// AvatarURL returns a presigned URL for the user's avatar, empty when none.
func (s *FileService) AvatarURL(userID string) string {
	file, err := s.files.FileByType("user", userID, model.FileTypeAvatar)
	if err != nil {
		return ""
	}
	return s.storage.URL(file.StoragePath)
}

// PopulateAvatar fills the computed AvatarURL field on the user.
func (s *FileService) PopulateAvatar(user *model.User) {
	if user == nil {
		return
	}
	user.AvatarURL = s.AvatarURL(user.ID)
}
