package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/cordilleraweaves/marketplace-api/internal/api/middleware"
	"github.com/cordilleraweaves/marketplace-api/internal/cache"
	"github.com/cordilleraweaves/marketplace-api/internal/config"
	"github.com/cordilleraweaves/marketplace-api/internal/errors"
	"github.com/cordilleraweaves/marketplace-api/internal/models"
	repository "github.com/cordilleraweaves/marketplace-api/internal/repositories"
)

type ProductService interface {
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error)
	// ArchiveProduct is the delete operation for the catalog: the row stays
	// so past orders keep resolving, the storefront stops listing it.
	ArchiveProduct(ctx context.Context, id int64) (*models.Product, error)
	ListAvailableProducts(ctx context.Context, page, pageSize int) ([]*models.Product, int, error)
	ListAllProducts(ctx context.Context, page, pageSize int) ([]*models.Product, int, error)
}

type productService struct {
	repo  repository.ProductRepository
	cache cache.Cache
	cfg   *config.CacheConfig
}

// productPage is the cached shape of one catalog page.
type productPage struct {
	Products []*models.Product `json:"products"`
	Total    int               `json:"total"`
}

func NewProductService(repo repository.ProductRepository, productCache cache.Cache, cfg *config.CacheConfig) ProductService {
	return &productService{repo: repo, cache: productCache, cfg: cfg}
}

func (s *productService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {

	product := &models.Product{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
		Weaver:      req.Weaver,
		Community:   req.Community,
		Status:      models.ProductStatusAvailable,
	}

	err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		return nil, errors.DatabaseError("Failed to create product").WithError(err)
	}

	s.invalidateCatalog(ctx)

	return product, nil
}

func (s *productService) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {

	key := cache.Key(cache.ProductKeyPrefix, strconv.FormatInt(id, 10))

	cached := &models.Product{}

	found, err := s.cache.Get(ctx, key, cached)
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Product cache lookup failed", slog.String("key", key), slog.Any("error", err))
	}

	if found {
		return cached, nil
	}

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	if err := s.cache.Set(ctx, key, product, s.cfg.CatalogTTL); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Product cache store failed", slog.String("key", key), slog.Any("error", err))
	}

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error) {

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Image != nil {
		product.Image = *req.Image
	}
	if req.Weaver != nil {
		product.Weaver = *req.Weaver
	}
	if req.Community != nil {
		product.Community = *req.Community
	}
	if req.IsArchived != nil {
		product.IsArchived = *req.IsArchived
		if product.IsArchived {
			product.Status = models.ProductStatusArchived
		} else {
			product.Status = models.ProductStatusAvailable
		}
	}

	err = s.repo.UpdateProduct(ctx, product)
	if err != nil {
		return nil, errors.DatabaseError("Failed to update product").WithError(err)
	}

	s.invalidateProduct(ctx, id)

	return product, err
}

func (s *productService) ArchiveProduct(ctx context.Context, id int64) (*models.Product, error) {

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	product.IsArchived = true
	product.Status = models.ProductStatusArchived

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, errors.DatabaseError("Failed to archive product").WithError(err)
	}

	s.invalidateProduct(ctx, id)

	return product, nil
}

// page means "page number requested"
// pageSize means "number of products to be displayed per page"
func (s *productService) ListAvailableProducts(ctx context.Context, page, pageSize int) ([]*models.Product, int, error) {

	key := cache.Key(cache.CatalogListKey, fmt.Sprintf("%d:%d", page, pageSize))

	cached := &productPage{}

	found, err := s.cache.Get(ctx, key, cached)
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Catalog cache lookup failed", slog.String("key", key), slog.Any("error", err))
	}

	if found {
		return cached.Products, cached.Total, nil
	}

	products, total, err := s.repo.ListAvailableProducts(ctx, page, pageSize)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	if err := s.cache.Set(ctx, key, &productPage{Products: products, Total: total}, s.cfg.CatalogTTL); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Catalog cache store failed", slog.String("key", key), slog.Any("error", err))
	}

	return products, total, nil
}

// ListAllProducts backs the admin tab and is never cached: an admin editing a
// row expects to see the edit on the next fetch.
func (s *productService) ListAllProducts(ctx context.Context, page, pageSize int) ([]*models.Product, int, error) {

	products, total, err := s.repo.ListAllProducts(ctx, page, pageSize)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return products, total, nil
}

func (s *productService) invalidateProduct(ctx context.Context, id int64) {
	if err := s.cache.Delete(ctx, cache.Key(cache.ProductKeyPrefix, strconv.FormatInt(id, 10))); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Product cache invalidation failed", slog.Int64("productId", id), slog.Any("error", err))
	}

	s.invalidateCatalog(ctx)
}

// invalidateCatalog drops the first catalog page, which is what the
// storefront grid requests. Deeper pages age out on the TTL.
func (s *productService) invalidateCatalog(ctx context.Context) {
	key := cache.Key(cache.CatalogListKey, "1:20")

	if err := s.cache.Delete(ctx, key); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Catalog cache invalidation failed", slog.Any("error", err))
	}
}
