package account

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"

	"medshare/internal/crypto"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, acc *Account) (int, error) {
	args := m.Called(ctx, acc)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id int) (Account, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Account), args.Error(1)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (Account, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(Account), args.Error(1)
}

func (m *MockRepository) FindByPublicID(ctx context.Context, publicID string) (Account, error) {
	args := m.Called(ctx, publicID)
	return args.Get(0).(Account), args.Error(1)
}

func (m *MockRepository) UpdateProfile(ctx context.Context, acc *Account) error {
	args := m.Called(ctx, acc)
	return args.Error(0)
}

func (m *MockRepository) UpdatePasswordHash(ctx context.Context, id int, hash string) error {
	args := m.Called(ctx, id, hash)
	return args.Error(0)
}

func (m *MockRepository) SetPublicAccess(ctx context.Context, id int, publicID, passwordHash string) error {
	args := m.Called(ctx, id, publicID, passwordHash)
	return args.Error(0)
}

func (m *MockRepository) ClearPublicAccess(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) Deactivate(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMailer is a mock implementation of the notify.Mailer interface
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendWelcome(ctx context.Context, email, name string) error {
	args := m.Called(ctx, email, name)
	return args.Error(0)
}

func (m *MockMailer) SendPasswordReset(ctx context.Context, email, name, resetURL string) error {
	args := m.Called(ctx, email, name, resetURL)
	return args.Error(0)
}

func newTestService(repo Repository, mailer *MockMailer) *Service {
	return NewService(repo, mailer, slog.Default())
}

func strPtr(s string) *string { return &s }

func TestService_Register(t *testing.T) {
	mockRepo := new(MockRepository)
	mockMailer := new(MockMailer)
	service := newTestService(mockRepo, mockMailer)

	req := RegisterRequest{
		Email:     "jane@example.com",
		Password:  "secret123",
		FirstName: "Jane",
		LastName:  "Doe",
	}

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(acc *Account) bool {
		// The hash is unpredictable, so check it verifies instead.
		return acc.Email == req.Email &&
			acc.Active &&
			acc.PasswordHash != req.Password &&
			crypto.VerifySecret(req.Password, acc.PasswordHash)
	})).Return(42, nil)
	mockMailer.On("SendWelcome", mock.Anything, req.Email, "Jane Doe").Return(nil)

	id, err := service.Register(context.Background(), req)
	assert.NoError(t, err)
	assert.Equal(t, 42, id)

	mockRepo.AssertExpectations(t)
	mockMailer.AssertExpectations(t)
}

func TestService_Register_InvalidInput(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo, new(MockMailer))

	tests := []struct {
		name string
		req  RegisterRequest
	}{
		{"bad email", RegisterRequest{Email: "not-an-email", Password: "secret123", FirstName: "Jane"}},
		{"short password", RegisterRequest{Email: "jane@example.com", Password: "123", FirstName: "Jane"}},
		{"missing first name", RegisterRequest{Email: "jane@example.com", Password: "secret123"}},
		{"unknown gender", RegisterRequest{Email: "jane@example.com", Password: "secret123", FirstName: "Jane", Gender: strPtr("unicorn")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Register(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
	mockRepo.AssertNotCalled(t, "Create")
}

func TestService_Register_MailFailureDoesNotFail(t *testing.T) {
	mockRepo := new(MockRepository)
	mockMailer := new(MockMailer)
	service := newTestService(mockRepo, mockMailer)

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(7, nil)
	mockMailer.On("SendWelcome", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	id, err := service.Register(context.Background(), RegisterRequest{
		Email:     "jane@example.com",
		Password:  "secret123",
		FirstName: "Jane",
	})
	assert.NoError(t, err)
	assert.Equal(t, 7, id)
}

func TestService_Authenticate_Success(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo, new(MockMailer))

	password := "secret123"
	hash, err := crypto.HashSecret(password)
	assert.NoError(t, err)

	acc := Account{ID: 42, Email: "jane@example.com", PasswordHash: hash, Active: true}
	mockRepo.On("FindByEmail", mock.Anything, acc.Email).Return(acc, nil)

	got, err := service.Authenticate(context.Background(), acc.Email, password)
	assert.NoError(t, err)
	assert.Equal(t, acc, got)
}

func TestService_Authenticate_WrongPassword(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo, new(MockMailer))

	hash, err := crypto.HashSecret("correct-password")
	assert.NoError(t, err)

	acc := Account{ID: 42, Email: "jane@example.com", PasswordHash: hash, Active: true}
	mockRepo.On("FindByEmail", mock.Anything, acc.Email).Return(acc, nil)

	_, err = service.Authenticate(context.Background(), acc.Email, "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidAuth)
}

func TestService_Authenticate_UnknownEmail(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo, new(MockMailer))

	mockRepo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(Account{}, ErrNotFound)

	// Unknown email and wrong password look the same to the caller.
	_, err := service.Authenticate(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidAuth)
}

func TestService_Authenticate_StorageFailure(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo, new(MockMailer))

	dbErr := errors.New("connection refused")
	mockRepo.On("FindByEmail", mock.Anything, "jane@example.com").Return(Account{}, dbErr)

	// A storage outage must not masquerade as bad credentials.
	_, err := service.Authenticate(context.Background(), "jane@example.com", "secret123")
	assert.NotErrorIs(t, err, ErrInvalidAuth)
	assert.ErrorIs(t, err, dbErr)
}

func TestService_Authenticate_Inactive(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo, new(MockMailer))

	hash, err := crypto.HashSecret("secret123")
	assert.NoError(t, err)

	acc := Account{ID: 42, Email: "jane@example.com", PasswordHash: hash, Active: false}
	mockRepo.On("FindByEmail", mock.Anything, acc.Email).Return(acc, nil)

	_, err = service.Authenticate(context.Background(), acc.Email, "secret123")
	assert.ErrorIs(t, err, ErrInactive)
}

func TestService_ChangePassword(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo, new(MockMailer))

	current := "old-password"
	hash, err := crypto.HashSecret(current)
	assert.NoError(t, err)

	acc := Account{ID: 42, PasswordHash: hash, Active: true}
	mockRepo.On("FindByID", mock.Anything, 42).Return(acc, nil)
	mockRepo.On("UpdatePasswordHash", mock.Anything, 42, mock.MatchedBy(func(newHash string) bool {
		return crypto.VerifySecret("new-password", newHash)
	})).Return(nil)

	err = service.ChangePassword(context.Background(), 42, current, "new-password")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestService_ChangePassword_WrongCurrent(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo, new(MockMailer))

	hash, err := crypto.HashSecret("old-password")
	assert.NoError(t, err)

	mockRepo.On("FindByID", mock.Anything, 42).Return(Account{ID: 42, PasswordHash: hash}, nil)

	err = service.ChangePassword(context.Background(), 42, "not-the-password", "new-password")
	assert.ErrorIs(t, err, ErrInvalidAuth)
	mockRepo.AssertNotCalled(t, "UpdatePasswordHash")
}

func TestService_EnablePublicAccess_GeneratesID(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo, new(MockMailer))

	mockRepo.On("FindByID", mock.Anything, 42).Return(Account{ID: 42, Active: true}, nil)
	mockRepo.On("SetPublicAccess", mock.Anything, 42, mock.AnythingOfType("string"), mock.MatchedBy(func(hash string) bool {
		return crypto.VerifySecret("public-pass", hash)
	})).Return(nil)

	publicID, err := service.EnablePublicAccess(context.Background(), 42, "public-pass")
	assert.NoError(t, err)
	assert.NotEmpty(t, publicID)
	mockRepo.AssertExpectations(t)
}

func TestService_EnablePublicAccess_KeepsExistingID(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo, new(MockMailer))

	existing := "4f1c9a2e-1111-2222-3333-444455556666"
	oldHash := "old-hash"
	acc := Account{ID: 42, Active: true, PublicID: &existing, PublicPasswordHash: &oldHash}

	mockRepo.On("FindByID", mock.Anything, 42).Return(acc, nil)
	mockRepo.On("SetPublicAccess", mock.Anything, 42, existing, mock.AnythingOfType("string")).Return(nil)

	// Changing the public password must not invalidate printed links.
	publicID, err := service.EnablePublicAccess(context.Background(), 42, "new-public-pass")
	assert.NoError(t, err)
	assert.Equal(t, existing, publicID)
	mockRepo.AssertExpectations(t)
}

func TestService_EnablePublicAccess_ShortPassword(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo, new(MockMailer))

	_, err := service.EnablePublicAccess(context.Background(), 42, "abc")
	assert.ErrorIs(t, err, ErrInvalidInput)
	mockRepo.AssertNotCalled(t, "SetPublicAccess")
}

func TestService_UpdateProfile(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo, new(MockMailer))

	acc := Account{ID: 42, Email: "jane@example.com", FirstName: "Jane", Active: true}
	mockRepo.On("FindByID", mock.Anything, 42).Return(acc, nil)
	mockRepo.On("UpdateProfile", mock.Anything, mock.MatchedBy(func(got *Account) bool {
		return got.FirstName == "Janet" && got.Phone == "+1-555-0100" &&
			got.Gender != nil && *got.Gender == "female"
	})).Return(nil)

	updated, err := service.UpdateProfile(context.Background(), 42, ProfileUpdate{
		FirstName: "Janet",
		LastName:  "Doe",
		Gender:    strPtr("female"),
		Phone:     "+1-555-0100",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Janet", updated.FirstName)
	mockRepo.AssertExpectations(t)
}

func TestService_UpdateProfile_UnknownGender(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo, new(MockMailer))

	mockRepo.On("FindByID", mock.Anything, 42).Return(Account{ID: 42, FirstName: "Jane", Active: true}, nil)

	_, err := service.UpdateProfile(context.Background(), 42, ProfileUpdate{
		FirstName: "Jane",
		Gender:    strPtr("unicorn"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	mockRepo.AssertNotCalled(t, "UpdateProfile")
}

func TestValidGender(t *testing.T) {
	for _, g := range []string{"male", "female", "other"} {
		v := g
		assert.True(t, ValidGender(&v), g)
	}
	bad := "unicorn"
	assert.False(t, ValidGender(&bad))
	assert.True(t, ValidGender(nil))
}

func TestAccount_FullName(t *testing.T) {
	assert.Equal(t, "Jane Doe", Account{FirstName: "Jane", LastName: "Doe"}.FullName())
	assert.Equal(t, "Jane", Account{FirstName: "Jane"}.FullName())
}
