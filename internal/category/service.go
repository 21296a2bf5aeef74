package category

import (
	"errors"
	"time"

	"github.com/cifpfbmoll/catalog-manager/internal/slugify"
)

var ErrSlugTaken = errors.New("slug already in use")

// Service owns category identity rules: slug derivation and uniqueness, and
// the id/timestamp fields the client is never allowed to set.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Category, error) {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Category, error) {
	return s.repo.GetByID(id)
}

// Exists reports whether the category id is known. Used by the product side
// to validate foreign references.
func (s *Service) Exists(id int) (bool, error) {
	_, err := s.repo.GetByID(id)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) Create(c Category) (Category, error) {
	if c.Slug == "" {
		c.Slug = slugify.Make(c.Name)
	}
	taken, err := s.repo.SlugExists(c.Slug, 0)
	if err != nil {
		return Category{}, err
	}
	if taken {
		return Category{}, ErrSlugTaken
	}

	now := time.Now().UTC().Format(time.RFC3339)
	c.ID = 0
	c.CreatedAt = &now
	c.UpdatedAt = &now
	return s.repo.Create(c)
}

// Update replaces the whole record. CreatedAt is carried over from the
// stored row; clients cannot rewrite it.
func (s *Service) Update(id int, c Category) (Category, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return Category{}, err
	}

	if c.Slug == "" {
		c.Slug = slugify.Make(c.Name)
	}
	taken, err := s.repo.SlugExists(c.Slug, id)
	if err != nil {
		return Category{}, err
	}
	if taken {
		return Category{}, ErrSlugTaken
	}

	now := time.Now().UTC().Format(time.RFC3339)
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = &now
	return s.repo.Update(id, c)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}
