package service

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/cordilleraweaves/marketplace-api/internal/config"
	"github.com/cordilleraweaves/marketplace-api/internal/errors"
	"github.com/cordilleraweaves/marketplace-api/internal/models"
	repository "github.com/cordilleraweaves/marketplace-api/internal/repositories"
	"github.com/google/uuid"
)

type CartService interface {
	GetCart(ctx context.Context, customerID uuid.UUID) (*models.Cart, error)
	AddItem(ctx context.Context, customerID uuid.UUID, req *models.AddItemRequest) (*models.Cart, error)
	UpdateQuantity(ctx context.Context, customerID uuid.UUID, req *models.UpdateQuantityRequest) (*models.Cart, error)
	RemoveItem(ctx context.Context, customerID uuid.UUID, productID int64) (*models.Cart, error)
	ClearCart(ctx context.Context, customerID uuid.UUID) (*models.Cart, error)
}

type cartService struct {
	repo        repository.CartRepository
	productRepo repository.ProductRepository
	shipping    *config.Shipping
}

func NewCartService(repo repository.CartRepository, productRepo repository.ProductRepository, shipping *config.Shipping) CartService {
	return &cartService{repo: repo, productRepo: productRepo, shipping: shipping}
}

// GetCart returns the customer's cart, creating an empty one on first use.
func (s *cartService) GetCart(ctx context.Context, customerID uuid.UUID) (*models.Cart, error) {

	cart, err := s.repo.GetCartByCustomerID(ctx, customerID)

	if err == nil {
		return cart, nil
	}

	if err != sql.ErrNoRows {
		return nil, errors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	cart = &models.Cart{
		ID:     uuid.New(),
		UserID: customerID,
		Items:  make(map[string]models.CartItem),
	}

	if err := s.repo.CreateCart(ctx, cart); err != nil {
		return nil, errors.DatabaseError("Failed to create cart").WithError(err)
	}

	return cart, nil
}

// AddItem puts one unit of the product into the cart. A repeat add for a
// product already in the cart bumps that line's quantity instead of creating
// a second line.
func (s *cartService) AddItem(ctx context.Context, customerID uuid.UUID, req *models.AddItemRequest) (*models.Cart, error) {

	product, err := s.productRepo.GetProductByID(ctx, req.ProductID)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	if product.IsArchived {
		return nil, errors.BadRequestError("Product is no longer available")
	}

	cart, err := s.GetCart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	key := strconv.FormatInt(req.ProductID, 10)

	item, exists := cart.Items[key]
	if exists {
		item.Quantity++
	} else {
		item = models.CartItem{
			ProductID: req.ProductID,
			Quantity:  1,
			UnitPrice: product.Price,
		}
	}

	item.TotalPrice = float64(item.Quantity) * item.UnitPrice
	cart.Items[key] = item

	return s.save(ctx, cart)
}

// UpdateQuantity sets a line's quantity directly. Quantity zero or below
// removes the line, matching the stepper hitting its floor.
func (s *cartService) UpdateQuantity(ctx context.Context, customerID uuid.UUID, req *models.UpdateQuantityRequest) (*models.Cart, error) {

	cart, err := s.GetCart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	key := strconv.FormatInt(req.ProductID, 10)

	item, exists := cart.Items[key]
	if !exists {
		return nil, errors.NotFoundError("Product not in cart")
	}

	if req.Quantity <= 0 {
		delete(cart.Items, key)

		return s.save(ctx, cart)
	}

	item.Quantity = req.Quantity
	item.TotalPrice = float64(item.Quantity) * item.UnitPrice
	cart.Items[key] = item

	return s.save(ctx, cart)
}

func (s *cartService) RemoveItem(ctx context.Context, customerID uuid.UUID, productID int64) (*models.Cart, error) {

	cart, err := s.GetCart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	key := strconv.FormatInt(productID, 10)

	if _, exists := cart.Items[key]; !exists {
		return nil, errors.NotFoundError("Product not in cart")
	}

	delete(cart.Items, key)

	return s.save(ctx, cart)
}

func (s *cartService) ClearCart(ctx context.Context, customerID uuid.UUID) (*models.Cart, error) {

	cart, err := s.GetCart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	cart.Items = make(map[string]models.CartItem)

	return s.save(ctx, cart)
}

func (s *cartService) save(ctx context.Context, cart *models.Cart) (*models.Cart, error) {

	totals := ComputeTotals(cart.Items, s.shipping)
	cart.Subtotal = totals.Subtotal
	cart.Shipping = totals.Shipping
	cart.Total = totals.Total

	if err := s.repo.UpdateCart(ctx, cart); err != nil {
		return nil, errors.DatabaseError("Failed to update cart").WithError(err)
	}

	return cart, nil
}

// ComputeTotals derives the money view of a set of cart lines. An empty cart
// ships free; a subtotal above the threshold ships free; everything else pays
// the flat fee.
func ComputeTotals(items map[string]models.CartItem, shipping *config.Shipping) models.Totals {

	var subtotal float64

	for _, item := range items {
		subtotal += item.TotalPrice
	}

	var fee float64

	if subtotal > 0 && subtotal <= shipping.FreeThreshold {
		fee = shipping.FlatFee
	}

	return models.Totals{
		Subtotal: subtotal,
		Shipping: fee,
		Total:    subtotal + fee,
	}
}
