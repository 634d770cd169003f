package contact

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListByAccount(ctx context.Context, accountID int) ([]Contact, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).([]Contact), args.Error(1)
}

func (m *MockRepository) CountByAccount(ctx context.Context, accountID int) (int, error) {
	args := m.Called(ctx, accountID)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, accountID, contactID int) (Contact, error) {
	args := m.Called(ctx, accountID, contactID)
	return args.Get(0).(Contact), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, c *Contact) (int, error) {
	args := m.Called(ctx, c)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, c *Contact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, accountID, contactID int) error {
	args := m.Called(ctx, accountID, contactID)
	return args.Error(0)
}

func validInput() Input {
	return Input{Name: "John Doe", Relationship: "spouse", Phone: "+1-555-0100"}
}

func TestService_Create(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("CountByAccount", mock.Anything, 42).Return(2, nil)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *Contact) bool {
		return c.AccountID == 42 && c.Name == "John Doe"
	})).Return(9, nil)

	c, err := service.Create(context.Background(), 42, validInput())
	assert.NoError(t, err)
	assert.Equal(t, 9, c.ID)
	mockRepo.AssertExpectations(t)
}

func TestService_Create_LimitReached(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("CountByAccount", mock.Anything, 42).Return(MaxPerAccount, nil)

	_, err := service.Create(context.Background(), 42, validInput())
	assert.ErrorIs(t, err, ErrLimitReached)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestService_Create_MissingFields(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	tests := []struct {
		name string
		in   Input
	}{
		{"no name", Input{Relationship: "spouse", Phone: "+1-555-0100"}},
		{"no relationship", Input{Name: "John Doe", Phone: "+1-555-0100"}},
		{"no phone", Input{Name: "John Doe", Relationship: "spouse"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(context.Background(), 42, tt.in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
	mockRepo.AssertNotCalled(t, "CountByAccount")
}

func TestService_Update(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	existing := Contact{ID: 9, AccountID: 42, Name: "John Doe", Relationship: "spouse", Phone: "+1-555-0100"}
	mockRepo.On("Get", mock.Anything, 42, 9).Return(existing, nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(c *Contact) bool {
		return c.ID == 9 && c.Phone == "+1-555-0199"
	})).Return(nil)

	in := validInput()
	in.Phone = "+1-555-0199"

	c, err := service.Update(context.Background(), 42, 9, in)
	assert.NoError(t, err)
	assert.Equal(t, "+1-555-0199", c.Phone)
	mockRepo.AssertExpectations(t)
}

func TestService_Update_OtherOwnersContact(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	// Repository scopes by account, so a foreign contact id is simply not found.
	mockRepo.On("Get", mock.Anything, 42, 13).Return(Contact{}, ErrNotFound)

	_, err := service.Update(context.Background(), 42, 13, validInput())
	assert.ErrorIs(t, err, ErrNotFound)
	mockRepo.AssertNotCalled(t, "Update")
}

func TestService_Count(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("CountByAccount", mock.Anything, 42).Return(3, nil)

	n, err := service.Count(context.Background(), 42)
	assert.NoError(t, err)
	assert.Equal(t, 3, n)
}
