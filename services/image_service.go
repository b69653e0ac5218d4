package services

import (
	"errors"

	"gorm.io/gorm"

	"picstash/models"
)

// ErrNotFound is returned when a looked-up record does not exist.
var ErrNotFound = errors.New("record not found")

// ImageService persists images and their associations.
type ImageService struct {
	db *gorm.DB
}

func NewImageService(db *gorm.DB) *ImageService {
	return &ImageService{db: db}
}

// GetAllImages returns every image with its owner and tags, newest first.
func (s *ImageService) GetAllImages() ([]models.Image, error) {
	var images []models.Image
	if err := s.db.Preload("User").Preload("Tags").
		Order("date DESC, id DESC").
		Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

// GetImage loads a single image including owner, tags and comments.
func (s *ImageService) GetImage(id uint) (*models.Image, error) {
	var img models.Image
	err := s.db.Preload("User").Preload("Tags").
		Preload("Comments").Preload("Comments.User").
		First(&img, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (s *ImageService) UploadImage(img *models.Image) error {
	return s.db.Create(img).Error
}

// UpdateImage overwrites the stored image and replaces its tag association
// with the tags carried on img.
func (s *ImageService) UpdateImage(img *models.Image) error {
	if err := s.db.Omit("Tags").Save(img).Error; err != nil {
		return err
	}
	return s.db.Model(img).Association("Tags").Replace(img.Tags)
}

// DeleteImage removes the image, its comments and its tag links. The tags
// themselves are never deleted here.
func (s *ImageService) DeleteImage(id uint) error {
	var img models.Image
	if err := s.db.First(&img, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.db.Model(&img).Association("Tags").Clear(); err != nil {
		return err
	}
	if err := s.db.Where("image_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
		return err
	}
	return s.db.Delete(&img).Error
}
