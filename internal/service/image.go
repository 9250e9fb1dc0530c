package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/plateful/recipebook-backend/config"
	"github.com/plateful/recipebook-backend/internal/models"
)

// ImageStore persists uploaded image bytes under a storage path and renders
// a stored path as a client-fetchable URL.
type ImageStore interface {
	Save(ctx context.Context, path string, data []byte, contentType string) error
	URL(ctx context.Context, path string) (string, error)
}

// S3Store writes images to the configured S3 bucket.
type S3Store struct {
	cfg *config.S3Config
}

func NewS3Store(cfg *config.S3Config) *S3Store {
	return &S3Store{cfg: cfg}
}

func (s *S3Store) Save(ctx context.Context, path string, data []byte, contentType string) error {
	_, err := s.cfg.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.BucketName),
		Key:         aws.String(path),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload image to S3: %w", err)
	}
	return nil
}

// URL returns a presigned GET URL so the bucket can stay private.
func (s *S3Store) URL(ctx context.Context, path string) (string, error) {
	return s.cfg.GeneratePresignedURL(ctx, path, 15*time.Minute)
}

// DiskStore writes images under a local media root, for development and
// single-host deployments.
type DiskStore struct {
	Root string
}

func NewDiskStore(root string) *DiskStore {
	return &DiskStore{Root: root}
}

func (s *DiskStore) Save(_ context.Context, path string, data []byte, _ string) error {
	full := filepath.Join(s.Root, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("failed to create media directory: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}
	return nil
}

// URL returns the path unchanged; files are served off the media root.
func (s *DiskStore) URL(_ context.Context, path string) (string, error) {
	return path, nil
}

// ImageService attaches uploaded images to owned recipes.
type ImageService struct {
	db    *gorm.DB
	store ImageStore
}

func NewImageService(db *gorm.DB, store ImageStore) *ImageService {
	return &ImageService{db: db, store: store}
}

// UploadRecipeImage stores the image bytes under a freshly derived path and
// records that path on the caller's recipe. The original filename only
// contributes its extension.
func (s *ImageService) UploadRecipeImage(ctx context.Context, userID uuid.UUID, recipeID uint, originalFilename string, data []byte, contentType string) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).Scopes(ownedBy(userID)).First(&recipe, recipeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	path := models.RecipeImagePath(recipeID, originalFilename)
	if err := s.store.Save(ctx, path, data, contentType); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(&recipe).Update("image_path", path).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// ImageURL renders a stored image path for API responses. Recipes without an
// image keep an empty string.
func (s *ImageService) ImageURL(ctx context.Context, path string) (string, error) {
	if path == "" {
		return "", nil
	}
	return s.store.URL(ctx, path)
}
