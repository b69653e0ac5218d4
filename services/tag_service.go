package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"picstash/models"
)

// TagService persists tags and translates between the comma separated tag
// string used by the forms and the persisted tag rows.
type TagService struct {
	db *gorm.DB
}

func NewTagService(db *gorm.DB) *TagService {
	return &TagService{db: db}
}

// GetTagByName returns the tag with that exact name, or nil when absent.
func (s *TagService) GetTagByName(name string) (*models.Tag, error) {
	var tag models.Tag
	err := s.db.Where("name = ?", name).First(&tag).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (s *TagService) CreateTag(tag *models.Tag) error {
	return s.db.Create(tag).Error
}

// GetOrCreate returns the persisted tag with the given name, creating it if
// necessary. The unique index on name resolves concurrent creations.
func (s *TagService) GetOrCreate(name string) (models.Tag, error) {
	var tag models.Tag
	err := s.db.Where(models.Tag{Name: name}).FirstOrCreate(&tag).Error
	return tag, err
}

// Resolve maps a comma separated tag string to persisted tags. Tokens are
// trimmed, empty tokens are skipped and duplicate names are kept in input
// order, each resolving to the same row.
func (s *TagService) Resolve(tagNames string) ([]models.Tag, error) {
	tags := []models.Tag{}
	for _, token := range strings.Split(tagNames, ",") {
		name := strings.TrimSpace(token)
		if name == "" {
			continue
		}
		tag, err := s.GetOrCreate(name)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// Render joins tag names with commas, with no surrounding whitespace.
// An empty slice renders as the empty string.
func (s *TagService) Render(tags []models.Tag) string {
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return strings.Join(names, ",")
}
