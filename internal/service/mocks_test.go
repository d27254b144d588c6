package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gameshelf-backend/internal/domain"
)

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Schedule(ctx context.Context, intent domain.ReminderIntent) error {
	args := m.Called(ctx, intent)
	return args.Error(0)
}

type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendRentalConfirmation(ctx context.Context, to string, rental domain.Rental) error {
	args := m.Called(ctx, to, rental)
	return args.Error(0)
}

func (m *MockEmailService) SendReminder(ctx context.Context, to, title, body string) error {
	args := m.Called(ctx, to, title, body)
	return args.Error(0)
}
