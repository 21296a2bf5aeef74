package category

import (
	"database/sql"
	"encoding/json"
	"errors"
)

// PostgresRepository implements Repository using Postgres. Timestamps are
// stored as RFC3339 text, attributes as jsonb.
type PostgresRepository struct {
	db *sql.DB
}

const (
	createCategoriesTable = `
		CREATE TABLE IF NOT EXISTS categories (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			slug TEXT NOT NULL UNIQUE,
			description TEXT,
			industry_type TEXT NOT NULL,
			color TEXT,
			icon TEXT,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			priority INT NOT NULL DEFAULT 0,
			attributes JSONB,
			created_at TEXT,
			updated_at TEXT
		)
	`
	listCategoriesQuery = `
		SELECT id, name, slug, description, industry_type, color, icon, active, priority, attributes, created_at, updated_at
		FROM categories
		ORDER BY id
	`
	getCategoryByIDQuery = `
		SELECT id, name, slug, description, industry_type, color, icon, active, priority, attributes, created_at, updated_at
		FROM categories
		WHERE id = $1
	`
	insertCategoryQuery = `
		INSERT INTO categories (name, slug, description, industry_type, color, icon, active, priority, attributes, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING id
	`
	updateCategoryQuery = `
		UPDATE categories
		SET name = $1,
			slug = $2,
			description = $3,
			industry_type = $4,
			color = $5,
			icon = $6,
			active = $7,
			priority = $8,
			attributes = $9,
			updated_at = $10
		WHERE id = $11
	`
	deleteCategoryQuery = `DELETE FROM categories WHERE id = $1`
	categorySlugQuery   = `SELECT EXISTS (SELECT 1 FROM categories WHERE slug = $1 AND id <> $2)`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// EnsureSchema creates the categories table when missing.
func (r *PostgresRepository) EnsureSchema() error {
	_, err := r.db.Exec(createCategoriesTable)
	return err
}

func (r *PostgresRepository) List() ([]Category, error) {
	rows, err := r.db.Query(listCategoriesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Category, error) {
	c, err := scanCategory(r.db.QueryRow(getCategoryByIDQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Category{}, ErrNotFound
	}
	return c, err
}

func (r *PostgresRepository) Create(c Category) (Category, error) {
	attrs, err := marshalAttributes(c.Attributes)
	if err != nil {
		return Category{}, err
	}
	err = r.db.QueryRow(insertCategoryQuery,
		c.Name, c.Slug, c.Description, c.IndustryType, c.Color, c.Icon,
		c.Active, c.Priority, attrs, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		return Category{}, err
	}
	return c, nil
}

func (r *PostgresRepository) Update(id int, c Category) (Category, error) {
	attrs, err := marshalAttributes(c.Attributes)
	if err != nil {
		return Category{}, err
	}
	res, err := r.db.Exec(updateCategoryQuery,
		c.Name, c.Slug, c.Description, c.IndustryType, c.Color, c.Icon,
		c.Active, c.Priority, attrs, c.UpdatedAt, id,
	)
	if err != nil {
		return Category{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return Category{}, err
	}
	if n == 0 {
		return Category{}, ErrNotFound
	}
	c.ID = id
	return c, nil
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(deleteCategoryQuery, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) SlugExists(slug string, excludeID int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(categorySlugQuery, slug, excludeID).Scan(&exists)
	return exists, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCategory(row rowScanner) (Category, error) {
	var (
		c         Category
		desc      sql.NullString
		icon      sql.NullString
		color     sql.NullString
		attrs     []byte
		createdAt sql.NullString
		updatedAt sql.NullString
	)
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &desc, &c.IndustryType, &color,
		&icon, &c.Active, &c.Priority, &attrs, &createdAt, &updatedAt)
	if err != nil {
		return Category{}, err
	}
	if desc.Valid {
		c.Description = &desc.String
	}
	if color.Valid {
		c.Color = color.String
	}
	if icon.Valid {
		c.Icon = &icon.String
	}
	if len(attrs) > 0 {
		if err := json.Unmarshal(attrs, &c.Attributes); err != nil {
			return Category{}, err
		}
	}
	if createdAt.Valid {
		c.CreatedAt = &createdAt.String
	}
	if updatedAt.Valid {
		c.UpdatedAt = &updatedAt.String
	}
	return c, nil
}

func marshalAttributes(attrs map[string]string) (any, error) {
	if len(attrs) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(attrs)
	if err != nil {
		return nil, err
	}
	return b, nil
}
