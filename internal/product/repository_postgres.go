package product

import (
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"
)

// PostgresRepository implements Repository using Postgres. Price maps to a
// NUMERIC column, timestamps are stored as RFC3339 text.
type PostgresRepository struct {
	db *sql.DB
}

const (
	createProductsTable = `
		CREATE TABLE IF NOT EXISTS products (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			price NUMERIC(10,2) NOT NULL DEFAULT 0,
			stock INT NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'active',
			category_id INT REFERENCES categories(id),
			created_at TEXT,
			updated_at TEXT
		)
	`
	listProductsQuery = `
		SELECT id, name, description, price, stock, status, category_id, created_at, updated_at
		FROM products
		ORDER BY id
	`
	getProductByIDQuery = `
		SELECT id, name, description, price, stock, status, category_id, created_at, updated_at
		FROM products
		WHERE id = $1
	`
	insertProductQuery = `
		INSERT INTO products (name, description, price, stock, status, category_id, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id
	`
	updateProductQuery = `
		UPDATE products
		SET name = $1,
			description = $2,
			price = $3,
			stock = $4,
			status = $5,
			category_id = $6,
			updated_at = $7
		WHERE id = $8
	`
	deleteProductQuery = `DELETE FROM products WHERE id = $1`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// EnsureSchema creates the products table when missing. The categories
// table must exist first because of the foreign key.
func (r *PostgresRepository) EnsureSchema() error {
	_, err := r.db.Exec(createProductsTable)
	return err
}

func (r *PostgresRepository) List() ([]Product, error) {
	rows, err := r.db.Query(listProductsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Product, error) {
	p, err := scanProduct(r.db.QueryRow(getProductByIDQuery, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Product{}, ErrNotFound
	}
	return p, err
}

func (r *PostgresRepository) Create(p Product) (Product, error) {
	err := r.db.QueryRow(insertProductQuery,
		p.Name, p.Description, p.Price, p.Stock, p.Status, p.CategoryID,
		p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Update(id int, p Product) (Product, error) {
	res, err := r.db.Exec(updateProductQuery,
		p.Name, p.Description, p.Price, p.Stock, p.Status, p.CategoryID,
		p.UpdatedAt, id,
	)
	if err != nil {
		return Product{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return Product{}, err
	}
	if n == 0 {
		return Product{}, ErrNotFound
	}
	p.ID = id
	return p, nil
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(deleteProductQuery, id)
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (Product, error) {
	var (
		p         Product
		desc      sql.NullString
		price     decimal.NullDecimal
		catID     sql.NullInt64
		createdAt sql.NullString
		updatedAt sql.NullString
	)
	err := row.Scan(&p.ID, &p.Name, &desc, &price, &p.Stock, &p.Status,
		&catID, &createdAt, &updatedAt)
	if err != nil {
		return Product{}, err
	}
	if desc.Valid {
		p.Description = &desc.String
	}
	if price.Valid {
		p.Price = price.Decimal
	}
	if catID.Valid {
		id := int(catID.Int64)
		p.CategoryID = &id
	}
	if createdAt.Valid {
		p.CreatedAt = &createdAt.String
	}
	if updatedAt.Valid {
		p.UpdatedAt = &updatedAt.String
	}
	return p, nil
}
