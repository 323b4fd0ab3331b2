package mocks

import (
	"context"

	"github.com/cordilleraweaves/marketplace-api/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type NotificationRepository struct {
	mock.Mock
}

func (m *NotificationRepository) CreateNotification(ctx context.Context, notification *models.Notification) error {
	args := m.Called(ctx, notification)

	return args.Error(0)
}

func (m *NotificationRepository) GetNotificationById(ctx context.Context, id uuid.UUID) (*models.Notification, error) {
	args := m.Called(ctx, id)

	var notification *models.Notification
	if args.Get(0) != nil {
		notification = args.Get(0).(*models.Notification)
	}

	return notification, args.Error(1)
}

func (m *NotificationRepository) UpdateNotificationStatus(ctx context.Context, id uuid.UUID, status models.NotificationStatus, errorMessage string) error {
	args := m.Called(ctx, id, status, errorMessage)

	return args.Error(0)
}

func (m *NotificationRepository) ListNotifications(ctx context.Context, page, size int) ([]*models.Notification, error) {
	args := m.Called(ctx, page, size)

	var notifications []*models.Notification
	if args.Get(0) != nil {
		notifications = args.Get(0).([]*models.Notification)
	}

	return notifications, args.Error(1)
}
