package user

import (
	"context"
	"errors"
	"testing"

	"doctorsportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Upsert(ctx context.Context, email string, fields bson.M) (*models.UpsertResult, error) {
	args := m.Called(ctx, email, fields)
	if res := args.Get(0); res != nil {
		return res.(*models.UpsertResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepo) SetRole(ctx context.Context, email, role string) (*models.UpsertResult, error) {
	args := m.Called(ctx, email, role)
	if res := args.Get(0); res != nil {
		return res.(*models.UpsertResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if res := args.Get(0); res != nil {
		return res.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepo) EnsureIndexes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func TestUpsert_StripsProtectedFields(t *testing.T) {
	repo := new(MockUserRepo)
	svc := &DefaultUserService{Repo: repo}

	repo.On("Upsert", mock.Anything, "ada@example.com", bson.M{"name": "Ada"}).
		Return(&models.UpsertResult{UpsertedCount: 1}, nil)

	res, err := svc.Upsert(context.Background(), "ada@example.com", map[string]interface{}{
		"name":  "Ada",
		"role":  "admin",
		"email": "mallory@example.com",
		"_id":   "forged",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.UpsertedCount)
	repo.AssertExpectations(t)
}

func TestUpsert_RequiresEmail(t *testing.T) {
	svc := &DefaultUserService{Repo: new(MockUserRepo)}

	_, err := svc.Upsert(context.Background(), "  ", nil)
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestMakeAdmin(t *testing.T) {
	repo := new(MockUserRepo)
	svc := &DefaultUserService{Repo: repo}

	repo.On("SetRole", mock.Anything, "ada@example.com", "admin").
		Return(&models.UpsertResult{MatchedCount: 1, ModifiedCount: 1}, nil)
	repo.On("SetRole", mock.Anything, "ghost@example.com", "admin").
		Return(nil, ErrUserNotFound)

	res, err := svc.MakeAdmin(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.ModifiedCount)

	_, err = svc.MakeAdmin(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestIsAdmin(t *testing.T) {
	repo := new(MockUserRepo)
	svc := &DefaultUserService{Repo: repo}

	repo.On("GetByEmail", mock.Anything, "admin@example.com").
		Return(&models.User{Email: "admin@example.com", Role: "admin"}, nil)
	repo.On("GetByEmail", mock.Anything, "patient@example.com").
		Return(&models.User{Email: "patient@example.com"}, nil)
	repo.On("GetByEmail", mock.Anything, "ghost@example.com").
		Return(nil, ErrUserNotFound)
	repo.On("GetByEmail", mock.Anything, "broken@example.com").
		Return(nil, errors.New("socket closed"))

	ctx := context.Background()

	ok, err := svc.IsAdmin(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.IsAdmin(ctx, "patient@example.com")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.IsAdmin(ctx, "ghost@example.com")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = svc.IsAdmin(ctx, "broken@example.com")
	assert.Error(t, err)
}
