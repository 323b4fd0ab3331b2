package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cordilleraweaves/marketplace-api/internal/models"
	"github.com/cordilleraweaves/marketplace-api/internal/utils"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	ListAvailableProducts(ctx context.Context, page, size int) ([]*models.Product, int, error)
	ListAllProducts(ctx context.Context, page, size int) ([]*models.Product, int, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

const productColumns = `id, name, price, description, image, weaver, community, status, is_archived, created_at, updated_at`

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO products (name, price, description, image, weaver, community, status, is_archived)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`

	return r.DB.QueryRowContext(dbCtx, query,
		product.Name, product.Price, product.Description, product.Image,
		product.Weaver, product.Community, product.Status, product.IsArchived).
		Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

func (r *productRepository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	product := &models.Product{}

	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(
		&product.ID, &product.Name, &product.Price, &product.Description, &product.Image,
		&product.Weaver, &product.Community, &product.Status, &product.IsArchived,
		&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	return product, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE products
		SET name = $1, price = $2, description = $3, image = $4, weaver = $5,
		    community = $6, status = $7, is_archived = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING updated_at`

	return r.DB.QueryRowContext(dbCtx, query,
		product.Name, product.Price, product.Description, product.Image,
		product.Weaver, product.Community, product.Status, product.IsArchived, product.ID).
		Scan(&product.UpdatedAt)
}

// ListAvailableProducts is the public catalog: archived products stay out.
func (r *productRepository) ListAvailableProducts(ctx context.Context, page, size int) ([]*models.Product, int, error) {
	return r.listProducts(ctx, page, size, true)
}

// ListAllProducts backs the admin products tab, archived rows included.
func (r *productRepository) ListAllProducts(ctx context.Context, page, size int) ([]*models.Product, int, error) {
	return r.listProducts(ctx, page, size, false)
}

func (r *productRepository) listProducts(ctx context.Context, page, size int, availableOnly bool) ([]*models.Product, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	filter := ""
	if availableOnly {
		filter = " WHERE is_archived = FALSE"
	}

	var total int

	countQuery := `SELECT COUNT(*) FROM products` + filter

	if err := r.DB.QueryRowContext(dbCtx, countQuery).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * size

	query := `SELECT ` + productColumns + ` FROM products` + filter + `
		ORDER BY id
		LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(dbCtx, query, size, offset)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()

	var products []*models.Product

	for rows.Next() {
		product := &models.Product{}

		err := rows.Scan(
			&product.ID, &product.Name, &product.Price, &product.Description, &product.Image,
			&product.Weaver, &product.Community, &product.Status, &product.IsArchived,
			&product.CreatedAt, &product.UpdatedAt)
		if err != nil {
			return nil, 0, err
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return products, total, nil
}
