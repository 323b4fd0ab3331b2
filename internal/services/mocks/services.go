// Package mocks holds testify mocks for the service interfaces, used by the
// handler tests.
package mocks

import (
	"context"

	"github.com/cordilleraweaves/marketplace-api/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type UserService struct {
	mock.Mock
}

func (m *UserService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	args := m.Called(ctx, req)

	var user *models.User
	if args.Get(0) != nil {
		user = args.Get(0).(*models.User)
	}

	return user, args.Error(1)
}

func (m *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	args := m.Called(ctx, req)

	var resp *models.LoginResponse
	if args.Get(0) != nil {
		resp = args.Get(0).(*models.LoginResponse)
	}

	return resp, args.Error(1)
}

func (m *UserService) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)

	var user *models.User
	if args.Get(0) != nil {
		user = args.Get(0).(*models.User)
	}

	return user, args.Error(1)
}

func (m *UserService) ListUsers(ctx context.Context, page, size int) ([]*models.User, int, error) {
	args := m.Called(ctx, page, size)

	var users []*models.User
	if args.Get(0) != nil {
		users = args.Get(0).([]*models.User)
	}

	return users, args.Int(1), args.Error(2)
}

func (m *UserService) CreateUser(ctx context.Context, req *models.AdminCreateUserRequest) (*models.User, error) {
	args := m.Called(ctx, req)

	var user *models.User
	if args.Get(0) != nil {
		user = args.Get(0).(*models.User)
	}

	return user, args.Error(1)
}

func (m *UserService) UpdateUser(ctx context.Context, id uuid.UUID, req *models.AdminUpdateUserRequest) (*models.User, error) {
	args := m.Called(ctx, id, req)

	var user *models.User
	if args.Get(0) != nil {
		user = args.Get(0).(*models.User)
	}

	return user, args.Error(1)
}

func (m *UserService) DeleteUser(ctx context.Context, id, actorID uuid.UUID) error {
	args := m.Called(ctx, id, actorID)

	return args.Error(0)
}

type CartService struct {
	mock.Mock
}

func (m *CartService) GetCart(ctx context.Context, customerID uuid.UUID) (*models.Cart, error) {
	args := m.Called(ctx, customerID)

	var cart *models.Cart
	if args.Get(0) != nil {
		cart = args.Get(0).(*models.Cart)
	}

	return cart, args.Error(1)
}

func (m *CartService) AddItem(ctx context.Context, customerID uuid.UUID, req *models.AddItemRequest) (*models.Cart, error) {
	args := m.Called(ctx, customerID, req)

	var cart *models.Cart
	if args.Get(0) != nil {
		cart = args.Get(0).(*models.Cart)
	}

	return cart, args.Error(1)
}

func (m *CartService) UpdateQuantity(ctx context.Context, customerID uuid.UUID, req *models.UpdateQuantityRequest) (*models.Cart, error) {
	args := m.Called(ctx, customerID, req)

	var cart *models.Cart
	if args.Get(0) != nil {
		cart = args.Get(0).(*models.Cart)
	}

	return cart, args.Error(1)
}

func (m *CartService) RemoveItem(ctx context.Context, customerID uuid.UUID, productID int64) (*models.Cart, error) {
	args := m.Called(ctx, customerID, productID)

	var cart *models.Cart
	if args.Get(0) != nil {
		cart = args.Get(0).(*models.Cart)
	}

	return cart, args.Error(1)
}

func (m *CartService) ClearCart(ctx context.Context, customerID uuid.UUID) (*models.Cart, error) {
	args := m.Called(ctx, customerID)

	var cart *models.Cart
	if args.Get(0) != nil {
		cart = args.Get(0).(*models.Cart)
	}

	return cart, args.Error(1)
}

type DonationService struct {
	mock.Mock
}

func (m *DonationService) Submit(ctx context.Context, customerID uuid.UUID, customerEmail string, req *models.DonationRequest) (*models.Donation, error) {
	args := m.Called(ctx, customerID, customerEmail, req)

	var donation *models.Donation
	if args.Get(0) != nil {
		donation = args.Get(0).(*models.Donation)
	}

	return donation, args.Error(1)
}

func (m *DonationService) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*models.Donation, error) {
	args := m.Called(ctx, customerID)

	var donations []*models.Donation
	if args.Get(0) != nil {
		donations = args.Get(0).([]*models.Donation)
	}

	return donations, args.Error(1)
}

func (m *DonationService) ListDonations(ctx context.Context, page, size int) ([]*models.Donation, int, error) {
	args := m.Called(ctx, page, size)

	var donations []*models.Donation
	if args.Get(0) != nil {
		donations = args.Get(0).([]*models.Donation)
	}

	return donations, args.Int(1), args.Error(2)
}

func (m *DonationService) DeleteDonation(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

type ProductService struct {
	mock.Mock
}

func (m *ProductService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, req)

	var product *models.Product
	if args.Get(0) != nil {
		product = args.Get(0).(*models.Product)
	}

	return product, args.Error(1)
}

func (m *ProductService) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	args := m.Called(ctx, id)

	var product *models.Product
	if args.Get(0) != nil {
		product = args.Get(0).(*models.Product)
	}

	return product, args.Error(1)
}

func (m *ProductService) UpdateProduct(ctx context.Context, id int64, req *models.UpdateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, id, req)

	var product *models.Product
	if args.Get(0) != nil {
		product = args.Get(0).(*models.Product)
	}

	return product, args.Error(1)
}

func (m *ProductService) ArchiveProduct(ctx context.Context, id int64) (*models.Product, error) {
	args := m.Called(ctx, id)

	var product *models.Product
	if args.Get(0) != nil {
		product = args.Get(0).(*models.Product)
	}

	return product, args.Error(1)
}

func (m *ProductService) ListAvailableProducts(ctx context.Context, page, pageSize int) ([]*models.Product, int, error) {
	args := m.Called(ctx, page, pageSize)

	var products []*models.Product
	if args.Get(0) != nil {
		products = args.Get(0).([]*models.Product)
	}

	return products, args.Int(1), args.Error(2)
}

func (m *ProductService) ListAllProducts(ctx context.Context, page, pageSize int) ([]*models.Product, int, error) {
	args := m.Called(ctx, page, pageSize)

	var products []*models.Product
	if args.Get(0) != nil {
		products = args.Get(0).([]*models.Product)
	}

	return products, args.Int(1), args.Error(2)
}

type NotificationService struct {
	mock.Mock
}

func (m *NotificationService) SendEmail(ctx context.Context, req *models.EmailNotificationRequest) (*models.NotificationResponse, error) {
	args := m.Called(ctx, req)

	var resp *models.NotificationResponse
	if args.Get(0) != nil {
		resp = args.Get(0).(*models.NotificationResponse)
	}

	return resp, args.Error(1)
}

func (m *NotificationService) GetNotification(ctx context.Context, id uuid.UUID) (*models.Notification, error) {
	args := m.Called(ctx, id)

	var notification *models.Notification
	if args.Get(0) != nil {
		notification = args.Get(0).(*models.Notification)
	}

	return notification, args.Error(1)
}

func (m *NotificationService) ListNotifications(ctx context.Context, page int, size int) ([]*models.Notification, error) {
	args := m.Called(ctx, page, size)

	var notifications []*models.Notification
	if args.Get(0) != nil {
		notifications = args.Get(0).([]*models.Notification)
	}

	return notifications, args.Error(1)
}
