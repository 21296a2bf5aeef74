package category

import (
	"errors"
	"testing"
)

func TestServiceCreateDerivesSlugAndStampsTimestamps(t *testing.T) {
	s := NewService(NewInMemoryRepository(nil))

	c := New()
	c.Name = "  Café & Co.  "
	c.ID = 99 // client-supplied ids are ignored

	created, err := s.Create(c)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Slug != "caf-co" {
		t.Errorf("derived slug = %q, want %q", created.Slug, "caf-co")
	}
	if created.ID != 1 {
		t.Errorf("server-assigned id = %d, want 1", created.ID)
	}
	if created.CreatedAt == nil || created.UpdatedAt == nil {
		t.Error("timestamps should be assigned by the server")
	}
}

func TestServiceCreateKeepsExplicitSlug(t *testing.T) {
	s := NewService(NewInMemoryRepository(nil))

	c := New()
	c.Name = "Health Clinics"
	c.Slug = "clinics"

	created, err := s.Create(c)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Slug != "clinics" {
		t.Errorf("slug = %q, want manually-set %q", created.Slug, "clinics")
	}
}

func TestServiceRejectsDuplicateSlug(t *testing.T) {
	s := NewService(NewInMemoryRepository(nil))

	first := New()
	first.Name = "Retail Stores"
	if _, err := s.Create(first); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	second := New()
	second.Name = "Retail Stores"
	if _, err := s.Create(second); !errors.Is(err, ErrSlugTaken) {
		t.Fatalf("expected ErrSlugTaken, got %v", err)
	}
}

func TestServiceUpdateKeepsOwnSlugAndCreatedAt(t *testing.T) {
	s := NewService(NewInMemoryRepository(nil))

	c := New()
	c.Name = "Education"
	created, err := s.Create(c)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Re-submitting the record unchanged must not trip the uniqueness check
	// against itself.
	updated, err := s.Update(created.ID, created)
	if err != nil {
		t.Fatalf("idempotent update failed: %v", err)
	}
	if updated.Slug != created.Slug {
		t.Errorf("slug changed on idempotent edit: %q -> %q", created.Slug, updated.Slug)
	}
	if updated.CreatedAt == nil || *updated.CreatedAt != *created.CreatedAt {
		t.Error("update must carry over the stored created_at")
	}
}

func TestServiceUpdateUnknownID(t *testing.T) {
	s := NewService(NewInMemoryRepository(nil))
	c := New()
	c.Name = "Ghost"
	if _, err := s.Update(42, c); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestServiceExists(t *testing.T) {
	repo := NewInMemoryRepository([]Category{{ID: 7, Name: "Food", Slug: "food"}})
	s := NewService(repo)

	ok, err := s.Exists(7)
	if err != nil || !ok {
		t.Fatalf("Exists(7) = %v, %v; want true, nil", ok, err)
	}
	ok, err = s.Exists(8)
	if err != nil || ok {
		t.Fatalf("Exists(8) = %v, %v; want false, nil", ok, err)
	}
}
