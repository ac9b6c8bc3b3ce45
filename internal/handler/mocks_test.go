package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/thj-dnt/clockwork-banker/internal/domain"
	"github.com/thj-dnt/clockwork-banker/internal/inventory"
)

// MockDBPool implements database.Pool
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

// MockInventoryService implements inventory.Service
type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) Search(ctx context.Context, query string) []domain.Item {
	args := m.Called(ctx, query)
	if v := args.Get(0); v != nil {
		return v.([]domain.Item)
	}
	return nil
}

func (m *MockInventoryService) Lookup(ctx context.Context, name string) (domain.Item, bool) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.Item), args.Bool(1)
}

func (m *MockInventoryService) ResolveName(ctx context.Context, name string) (domain.Item, domain.LineStatus) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.Item), args.Get(1).(domain.LineStatus)
}

func (m *MockInventoryService) Refresh(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockInventoryService) Snapshot() *inventory.Index {
	args := m.Called()
	return args.Get(0).(*inventory.Index)
}

// MockCartService implements cart.Service
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) Add(ctx context.Context, userID string, line domain.CartLine) (domain.Cart, error) {
	args := m.Called(ctx, userID, line)
	return args.Get(0).(domain.Cart), args.Error(1)
}

func (m *MockCartService) Get(ctx context.Context, userID string) domain.Cart {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Cart)
}

func (m *MockCartService) Clear(ctx context.Context, userID string) {
	m.Called(ctx, userID)
}

// MockRequestService implements request.Service
type MockRequestService struct {
	mock.Mock
}

func (m *MockRequestService) SubmitCart(ctx context.Context, userID, characterName string) (domain.Request, error) {
	args := m.Called(ctx, userID, characterName)
	return args.Get(0).(domain.Request), args.Error(1)
}

func (m *MockRequestService) SubmitFreeText(ctx context.Context, userID, characterName, itemsText, notes string) (domain.Request, error) {
	args := m.Called(ctx, userID, characterName, itemsText, notes)
	return args.Get(0).(domain.Request), args.Error(1)
}

func (m *MockRequestService) Get(ctx context.Context, id int) (domain.Request, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Request), args.Error(1)
}

func (m *MockRequestService) Active(ctx context.Context) []domain.Request {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]domain.Request)
	}
	return nil
}

func (m *MockRequestService) Fulfill(ctx context.Context, id int, staff string) (domain.Request, error) {
	args := m.Called(ctx, id, staff)
	return args.Get(0).(domain.Request), args.Error(1)
}

func (m *MockRequestService) Deny(ctx context.Context, id int, staff, reason, staffNotes string) (domain.Request, error) {
	args := m.Called(ctx, id, staff, reason, staffNotes)
	return args.Get(0).(domain.Request), args.Error(1)
}

func (m *MockRequestService) Partial(ctx context.Context, id int, staff, sentItems, unavailableItems, staffNotes string) (domain.Request, error) {
	args := m.Called(ctx, id, staff, sentItems, unavailableItems, staffNotes)
	return args.Get(0).(domain.Request), args.Error(1)
}

func (m *MockRequestService) SetMessageRef(ctx context.Context, id int, messageID, threadID string) error {
	args := m.Called(ctx, id, messageID, threadID)
	return args.Error(0)
}

// MockFileRepo implements repository.InventoryFiles
type MockFileRepo struct {
	mock.Mock
}

func (m *MockFileRepo) Upsert(ctx context.Context, name, content string) error {
	args := m.Called(ctx, name, content)
	return args.Error(0)
}

func (m *MockFileRepo) GetAll(ctx context.Context) ([]domain.InventoryFile, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]domain.InventoryFile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFileRepo) Delete(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}
