package medical

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"medshare/internal/crypto"
)

const testKeyHex = "6b79452d32303234206d65645368617265206669656c64206b65792e2e2e2e21"

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Get(ctx context.Context, accountID int) (Record, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(Record), args.Error(1)
}

func (m *MockRepository) CreateEmpty(ctx context.Context, accountID int) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, rec *Record) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRepository) Clear(ctx context.Context, accountID int) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func newTestService(t *testing.T, repo Repository) *Service {
	t.Helper()
	cipher, err := crypto.NewCipher(testKeyHex, slog.Default())
	require.NoError(t, err)
	return NewService(repo, cipher, slog.Default())
}

func TestService_Get_CreatesEmptyRecordOnFirstRead(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(t, mockRepo)

	mockRepo.On("Get", mock.Anything, 42).Return(Record{}, ErrNotFound)
	mockRepo.On("CreateEmpty", mock.Anything, 42).Return(nil)

	info, err := service.Get(context.Background(), 42)
	assert.NoError(t, err)
	assert.Nil(t, info.BloodType)
	assert.Equal(t, []string{}, info.Allergies)
	assert.Equal(t, []string{}, info.Medications)
	mockRepo.AssertExpectations(t)
}

func TestService_Update_RoundTrip(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(t, mockRepo)

	var stored *Record
	mockRepo.On("Update", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*Record)
	}).Return(nil)

	bt := "O-"
	upd := Update{
		BloodType:   &bt,
		Allergies:   []string{"peanuts", "penicillin"},
		Medications: []string{"metformin 500mg"},
		Conditions:  []string{"type 2 diabetes"},
	}

	info, err := service.Update(context.Background(), 42, upd)
	require.NoError(t, err)
	assert.Equal(t, upd.Allergies, info.Allergies)
	assert.Equal(t, upd.Medications, info.Medications)
	assert.Equal(t, upd.Conditions, info.Conditions)
	assert.Equal(t, []string{}, info.Surgeries)
	assert.Equal(t, "O-", *info.BloodType)

	// What went to storage is ciphertext, not the submitted lists.
	require.NotNil(t, stored)
	require.False(t, stored.Allergies.Empty())
	assert.NotContains(t, *stored.Allergies.Ciphertext, "peanuts")
	require.NotNil(t, stored.BloodType)
	assert.Equal(t, "O-", *stored.BloodType)
}

func TestService_Update_RejectsUnknownBloodType(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(t, mockRepo)

	bt := "Q+"
	_, err := service.Update(context.Background(), 42, Update{BloodType: &bt})
	assert.ErrorIs(t, err, ErrInvalidInput)
	mockRepo.AssertNotCalled(t, "Update")
}

func TestService_Get_DecryptsStoredRecord(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(t, mockRepo)

	cipher, err := crypto.NewCipher(testKeyHex, slog.Default())
	require.NoError(t, err)

	allergies, err := cipher.EncryptJSON([]string{"latex"})
	require.NoError(t, err)

	bt := "AB+"
	mockRepo.On("Get", mock.Anything, 42).Return(Record{
		AccountID: 42,
		BloodType: &bt,
		Allergies: allergies,
	}, nil)

	info, err := service.Get(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, []string{"latex"}, info.Allergies)
	assert.Equal(t, []string{}, info.Medications)
	assert.Equal(t, "AB+", *info.BloodType)
}

func TestService_Get_UnreadableFieldIsHardFailure(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(t, mockRepo)

	// Encrypted under a different key, so decryption must fail loudly
	// instead of returning an empty list.
	otherCipher, err := crypto.NewCipher("000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f", slog.Default())
	require.NoError(t, err)
	foreign, err := otherCipher.EncryptJSON([]string{"latex"})
	require.NoError(t, err)

	mockRepo.On("Get", mock.Anything, 42).Return(Record{AccountID: 42, Allergies: foreign}, nil)

	_, err = service.Get(context.Background(), 42)
	assert.ErrorIs(t, err, crypto.ErrDecrypt)
}

func TestService_GetForViewer_MissingRecordIsEmpty(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(t, mockRepo)

	mockRepo.On("Get", mock.Anything, 42).Return(Record{}, ErrNotFound)

	info, err := service.GetForViewer(context.Background(), 42)
	assert.NoError(t, err)
	assert.Equal(t, []string{}, info.Allergies)
	// The viewer path never writes.
	mockRepo.AssertNotCalled(t, "CreateEmpty")
}

func TestService_HasData(t *testing.T) {
	bt := "O-"
	ct := "deadbeef"
	iv := "00112233445566778899aabbccddeeff"

	tests := []struct {
		name string
		rec  Record
		err  error
		want bool
	}{
		{"no row", Record{}, ErrNotFound, false},
		{"empty row", Record{AccountID: 42}, nil, false},
		{"blood type only", Record{AccountID: 42, BloodType: &bt}, nil, true},
		{"encrypted field only", Record{AccountID: 42, Allergies: crypto.Field{Ciphertext: &ct, IV: &iv}}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := newTestService(t, mockRepo)
			mockRepo.On("Get", mock.Anything, 42).Return(tt.rec, tt.err)

			got, err := service.HasData(context.Background(), 42)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidBloodType(t *testing.T) {
	for _, bt := range []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"} {
		v := bt
		assert.True(t, ValidBloodType(&v), bt)
	}
	bad := "C+"
	assert.False(t, ValidBloodType(&bad))
	assert.True(t, ValidBloodType(nil))
}
