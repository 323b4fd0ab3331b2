package repository_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cordilleraweaves/marketplace-api/internal/models"
	repository "github.com/cordilleraweaves/marketplace-api/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductRepo(t *testing.T) (repository.ProductRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return repository.NewProductRepo(db), mock
}

func productRows(products ...*models.Product) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "name", "price", "description", "image", "weaver", "community",
		"status", "is_archived", "created_at", "updated_at",
	})

	for _, p := range products {
		rows.AddRow(p.ID, p.Name, p.Price, p.Description, p.Image, p.Weaver, p.Community,
			p.Status, p.IsArchived, time.Now(), time.Now())
	}

	return rows
}

func TestGetProductByIDRepo(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		repo, mock := newProductRepo(t)

		blanket := &models.Product{
			ID: 7, Name: "Inabel Blanket", Price: 1200,
			Weaver: "Lola Carmen", Community: "Paoay",
			Status: models.ProductStatusAvailable,
		}

		mock.ExpectQuery(regexp.QuoteMeta("FROM products WHERE id = $1")).
			WithArgs(int64(7)).
			WillReturnRows(productRows(blanket))

		// Act
		product, err := repo.GetProductByID(ctx, 7)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "Inabel Blanket", product.Name)
		assert.Equal(t, "Lola Carmen", product.Weaver)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		repo, mock := newProductRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("FROM products WHERE id = $1")).
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		// Act
		product, err := repo.GetProductByID(ctx, 99)

		// Assert
		assert.Equal(t, sql.ErrNoRows, err)
		assert.Nil(t, product)
	})
}

func TestListAvailableProductsRepo(t *testing.T) {
	ctx := context.Background()

	// Arrange
	repo, mock := newProductRepo(t)

	available := &models.Product{ID: 1, Name: "Inabel Blanket", Price: 1200, Status: models.ProductStatusAvailable}

	// The public catalog filters archived rows in SQL.
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM products WHERE is_archived = FALSE")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE is_archived = FALSE")).
		WithArgs(20, 0).
		WillReturnRows(productRows(available))

	// Act
	products, total, err := repo.ListAvailableProducts(ctx, 1, 20)

	// Assert
	require.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, 1, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAllProductsRepo(t *testing.T) {
	ctx := context.Background()

	// Arrange
	repo, mock := newProductRepo(t)

	live := &models.Product{ID: 1, Name: "Inabel Blanket", Status: models.ProductStatusAvailable}
	archived := &models.Product{ID: 2, Name: "Retired Runner", Status: models.ProductStatusArchived, IsArchived: true}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM products")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(regexp.QuoteMeta("FROM products")).
		WithArgs(20, 0).
		WillReturnRows(productRows(live, archived))

	// Act
	products, total, err := repo.ListAllProducts(ctx, 1, 20)

	// Assert
	require.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, 2, total)
	assert.True(t, products[1].IsArchived)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProductRepo(t *testing.T) {
	ctx := context.Background()

	// Arrange
	repo, mock := newProductRepo(t)

	product := &models.Product{
		ID: 7, Name: "Inabel Blanket", Price: 1200,
		Status: models.ProductStatusArchived, IsArchived: true,
	}

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE products")).
		WithArgs(product.Name, product.Price, product.Description, product.Image,
			product.Weaver, product.Community, product.Status, product.IsArchived, product.ID).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(time.Now()))

	// Act
	err := repo.UpdateProduct(ctx, product)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
