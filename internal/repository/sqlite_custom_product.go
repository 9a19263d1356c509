package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/cotiza/internal/db"
	"github.com/alexanderramin/cotiza/internal/domain"
)

const customProductColumns = `id, name, category, yield, price, brand`

// SQLiteCustomProductRepo implements CustomProductRepo using a SQLite database.
type SQLiteCustomProductRepo struct {
	db db.DBTX
}

func NewSQLiteCustomProductRepo(conn db.DBTX) *SQLiteCustomProductRepo {
	return &SQLiteCustomProductRepo{db: conn}
}

func (r *SQLiteCustomProductRepo) Upsert(ctx context.Context, p domain.Product) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("upserting custom product: %w", err)
	}
	now := nowUTC()
	query := `INSERT INTO custom_products (id, name, category, yield, price, brand, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			category = excluded.category,
			yield = excluded.yield,
			price = excluded.price,
			brand = excluded.brand,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Name, string(p.Category), p.Yield, p.Price, p.Brand, now, now,
	)
	if err != nil {
		return fmt.Errorf("upserting custom product %s: %w", p.ID, err)
	}
	return nil
}

func (r *SQLiteCustomProductRepo) GetByID(ctx context.Context, id string) (domain.Product, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+customProductColumns+` FROM custom_products WHERE id = ?`, id)
	p, err := scanCustomProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, fmt.Errorf("custom product %s: %w", id, ErrNotFound)
		}
		return domain.Product{}, fmt.Errorf("scanning custom product: %w", err)
	}
	return p, nil
}

func (r *SQLiteCustomProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+customProductColumns+` FROM custom_products ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("listing custom products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanCustomProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning custom product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating custom products: %w", err)
	}
	return products, nil
}

func (r *SQLiteCustomProductRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM custom_products`); err != nil {
		return fmt.Errorf("deleting custom products: %w", err)
	}
	return nil
}

func scanCustomProduct(s rowScanner) (domain.Product, error) {
	var (
		p        domain.Product
		category string
	)
	if err := s.Scan(&p.ID, &p.Name, &category, &p.Yield, &p.Price, &p.Brand); err != nil {
		return domain.Product{}, err
	}
	p.Category = domain.Category(category)
	return p, nil
}
