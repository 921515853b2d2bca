package postgres

import (
	"database/sql"
	"fmt"

	"github.com/habbdfhfxxsjhk/Xmaxstro-telegram/internal/domain"
)

// CatalogRepo implements repository.CatalogRepository
type CatalogRepo struct {
	db *sql.DB
}

// NewCatalogRepo creates a new catalog repository
func NewCatalogRepo(db *sql.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

// CreateSection inserts a section at the next free position
func (r *CatalogRepo) CreateSection(name string) (int64, error) {
	var id int64
	query := `
		INSERT INTO sections (name, position)
		VALUES ($1, (SELECT COALESCE(MAX(position), 0) + 1 FROM sections))
		RETURNING id
	`
	err := r.db.QueryRow(query, name).Scan(&id)
	return id, err
}

// ListSections returns sections ordered by position
func (r *CatalogRepo) ListSections(onlyVisible bool) ([]domain.Section, error) {
	query := `SELECT id, name, visible, position FROM sections ORDER BY position`
	if onlyVisible {
		query = `SELECT id, name, visible, position FROM sections WHERE visible = TRUE ORDER BY position`
	}

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []domain.Section
	for rows.Next() {
		var s domain.Section
		if err := rows.Scan(&s.ID, &s.Name, &s.Visible, &s.Position); err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}

	return sections, rows.Err()
}

// GetSection returns the section or nil if the row does not exist
func (r *CatalogRepo) GetSection(sectionID int64) (*domain.Section, error) {
	var s domain.Section
	query := `SELECT id, name, visible, position FROM sections WHERE id = $1`
	err := r.db.QueryRow(query, sectionID).Scan(&s.ID, &s.Name, &s.Visible, &s.Position)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// DeleteSection deletes the section and all its products in one
// transaction. The cascade is intentional.
func (r *CatalogRepo) DeleteSection(sectionID int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM products WHERE section_id = $1`, sectionID); err != nil {
		return fmt.Errorf("delete section products: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM sections WHERE id = $1`, sectionID); err != nil {
		return fmt.Errorf("delete section: %w", err)
	}

	return tx.Commit()
}

// CreateProduct inserts a product at the next free position within its section
func (r *CatalogRepo) CreateProduct(p domain.Product) (int64, error) {
	var id int64
	query := `
		INSERT INTO products (section_id, name, price, description, buttons_json, image_url, position)
		VALUES ($1, $2, $3, $4, $5, $6,
			(SELECT COALESCE(MAX(position), 0) + 1 FROM products WHERE section_id = $1))
		RETURNING id
	`
	err := r.db.QueryRow(query, p.SectionID, p.Name, p.Price, p.Description, p.ButtonsJSON, p.ImageURL).Scan(&id)
	return id, err
}

// ListProducts returns a section's products ordered by position
func (r *CatalogRepo) ListProducts(sectionID int64, onlyVisible bool) ([]domain.Product, error) {
	query := `
		SELECT id, section_id, name, price, description, buttons_json, visible, image_url, position
		FROM products
		WHERE section_id = $1
		ORDER BY position
	`
	if onlyVisible {
		query = `
			SELECT id, section_id, name, price, description, buttons_json, visible, image_url, position
			FROM products
			WHERE section_id = $1 AND visible = TRUE
			ORDER BY position
		`
	}

	rows, err := r.db.Query(query, sectionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.SectionID, &p.Name, &p.Price, &p.Description,
			&p.ButtonsJSON, &p.Visible, &p.ImageURL, &p.Position); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

// GetProduct returns the product or nil if the row does not exist
func (r *CatalogRepo) GetProduct(productID int64) (*domain.Product, error) {
	var p domain.Product
	query := `
		SELECT id, section_id, name, price, description, buttons_json, visible, image_url, position
		FROM products
		WHERE id = $1
	`
	err := r.db.QueryRow(query, productID).Scan(&p.ID, &p.SectionID, &p.Name, &p.Price,
		&p.Description, &p.ButtonsJSON, &p.Visible, &p.ImageURL, &p.Position)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// DeleteProduct removes the product
func (r *CatalogRepo) DeleteProduct(productID int64) error {
	_, err := r.db.Exec(`DELETE FROM products WHERE id = $1`, productID)
	return err
}

// UpdateProductName renames the product
func (r *CatalogRepo) UpdateProductName(productID int64, name string) error {
	_, err := r.db.Exec(`UPDATE products SET name = $1 WHERE id = $2`, name, productID)
	return err
}

// UpdateProductPrice changes the product price
func (r *CatalogRepo) UpdateProductPrice(productID int64, price int64) error {
	_, err := r.db.Exec(`UPDATE products SET price = $1 WHERE id = $2`, price, productID)
	return err
}
