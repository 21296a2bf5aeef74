package product

import (
	"time"
)

// Service owns product identity rules: the id and timestamp fields the
// client is never allowed to set.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() ([]Product, error) {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Product, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(p Product) (Product, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	p.ID = 0
	p.CreatedAt = &now
	p.UpdatedAt = &now
	return s.repo.Create(p)
}

// Update replaces the whole record. CreatedAt is carried over from the
// stored row; clients cannot rewrite it.
func (s *Service) Update(id int, p Product) (Product, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return Product{}, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = &now
	return s.repo.Update(id, p)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}
