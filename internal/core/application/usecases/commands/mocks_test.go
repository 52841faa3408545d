package commands_test

import (
	"context"
	"io"
	"log/slog"

	"cakery/internal/core/domain/model/order"
	"cakery/internal/core/domain/model/staff"
	"cakery/internal/core/ports"
	"cakery/internal/pkg/token"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ApplyUpdate(ctx context.Context, id int64, doc order.UpdateDocument) error {
	args := m.Called(ctx, id, doc)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id int64, status order.Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockStaffRepository struct{ mock.Mock }

func (m *MockStaffRepository) GetByUsername(ctx context.Context, username string) (*staff.Staff, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.Staff), args.Error(1)
}

type MockEventNotifier struct{ mock.Mock }

func (m *MockEventNotifier) Notify(ctx context.Context, event ports.NotificationEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(identity token.Identity) (string, error) {
	args := m.Called(identity)
	return args.String(0), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
