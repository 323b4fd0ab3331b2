package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/cordilleraweaves/marketplace-api/internal/api/middleware"
	"github.com/cordilleraweaves/marketplace-api/internal/config"
	"github.com/cordilleraweaves/marketplace-api/internal/errors"
	"github.com/cordilleraweaves/marketplace-api/internal/models"
	repository "github.com/cordilleraweaves/marketplace-api/internal/repositories"
	"github.com/google/uuid"
)

type OrderService interface {
	Checkout(ctx context.Context, customerID uuid.UUID, req *models.CheckoutRequest) (*models.Order, error)
	GetOrderByID(ctx context.Context, id uuid.UUID, claims *models.Claims) (*models.Order, error)
	ListOrders(ctx context.Context, page, size int) ([]*models.Order, int, error)
	ListOrderItems(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error)
	DeleteOrder(ctx context.Context, id uuid.UUID) error
}

type orderService struct {
	repo          repository.OrderRepository
	cartRepo      repository.CartRepository
	productRepo   repository.ProductRepository
	userRepo      repository.UserRepository
	shipping      *config.Shipping
	notifications NotificationService
}

func NewOrderService(repo repository.OrderRepository, cartRepo repository.CartRepository, productRepo repository.ProductRepository, userRepo repository.UserRepository, shipping *config.Shipping, notifications NotificationService) OrderService {
	return &orderService{
		repo:          repo,
		cartRepo:      cartRepo,
		productRepo:   productRepo,
		userRepo:      userRepo,
		shipping:      shipping,
		notifications: notifications,
	}
}

// Checkout turns the customer's cart into a pending order. Totals are
// recomputed from the stored cart lines, never taken from the client.
func (s *orderService) Checkout(ctx context.Context, customerID uuid.UUID, req *models.CheckoutRequest) (*models.Order, error) {

	cart, err := s.cartRepo.GetCartByCustomerID(ctx, customerID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.BadRequestError("Cart is empty")
		}

		return nil, errors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	if len(cart.Items) == 0 {
		return nil, errors.BadRequestError("Cart is empty")
	}

	user, err := s.userRepo.GetUserById(ctx, customerID)
	if err != nil {
		return nil, errors.NotFoundError("User not found").WithError(err)
	}

	totals := ComputeTotals(cart.Items, s.shipping)

	order := &models.Order{
		ID:            uuid.New(),
		CustomerID:    customerID,
		CustomerName:  user.Name,
		Status:        models.OrderStatusPending,
		Subtotal:      totals.Subtotal,
		Shipping:      totals.Shipping,
		Total:         totals.Total,
		PaymentMethod: req.PaymentMethod,
		ShippingInfo:  req.ShippingInfo,
	}

	for _, item := range cart.Items {

		product, err := s.productRepo.GetProductByID(ctx, item.ProductID)
		if err != nil {
			return nil, errors.NotFoundError("Product in cart no longer exists").WithError(err)
		}

		order.Items = append(order.Items, models.OrderItem{
			ID:          uuid.New(),
			OrderID:     order.ID,
			ProductID:   item.ProductID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return nil, errors.DatabaseError("Failed to create order").WithError(err)
	}

	// Empty the cart now that its lines live on the order.
	cart.Items = make(map[string]models.CartItem)
	cart.Subtotal, cart.Shipping, cart.Total = 0, 0, 0

	if err := s.cartRepo.UpdateCart(ctx, cart); err != nil {
		middleware.LoggerFromContext(ctx).Error("Failed to clear cart after checkout",
			slog.String("orderId", order.ID.String()), slog.Any("error", err))
	}

	s.sendConfirmation(ctx, order)

	return order, nil
}

// GetOrderByID enforces ownership: customers see only their own orders,
// admins see everything.
func (s *orderService) GetOrderByID(ctx context.Context, id uuid.UUID, claims *models.Claims) (*models.Order, error) {

	order, err := s.repo.GetOrderById(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Order not found").WithError(err)
	}

	if !claims.IsAdmin && order.CustomerID != claims.UserID {
		return nil, errors.ForbiddenError("You do not have access to this order")
	}

	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, page, size int) ([]*models.Order, int, error) {

	orders, total, err := s.repo.ListOrders(ctx, page, size)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch orders").WithError(err)
	}

	return orders, total, nil
}

func (s *orderService) ListOrderItems(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error) {

	if _, err := s.repo.GetOrderById(ctx, orderID); err != nil {
		return nil, errors.NotFoundError("Order not found").WithError(err)
	}

	items, err := s.repo.ListOrderItems(ctx, orderID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch order items").WithError(err)
	}

	return items, nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error) {

	order, err := s.repo.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundError("Order not found").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to update order status").WithError(err)
	}

	return order, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {

	if err := s.repo.DeleteOrder(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return errors.NotFoundError("Order not found").WithError(err)
		}

		return errors.DatabaseError("Failed to delete order").WithError(err)
	}

	return nil
}

func (s *orderService) sendConfirmation(ctx context.Context, order *models.Order) {

	if order.ShippingInfo.Email == "" {
		return
	}

	_, err := s.notifications.SendEmail(ctx, &models.EmailNotificationRequest{
		To:      order.ShippingInfo.Email,
		Subject: "Your Cordillera Weaves order",
		Content: fmt.Sprintf("Hi %s, we received your order for PHP %.2f. We will let you know once it ships.", order.ShippingInfo.Name, order.Total),
		Metadata: map[string]any{
			"order_id": order.ID.String(),
		},
	})
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Order confirmation email failed",
			slog.String("orderId", order.ID.String()), slog.Any("error", err))
	}
}
