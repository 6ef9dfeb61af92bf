package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domains/author"
	"blog-backend/internal/domains/author/service"
	"blog-backend/internal/shared/validator"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepository) LockName(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}

func (m *mockRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*author.Author), args.Error(1)
}

func (m *mockRepository) GetByID(ctx context.Context, id int64) (*author.Author, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*author.Author), args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, a *author.Author) (*author.Author, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*author.Author), args.Error(1)
}

func (m *mockRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// RunInTx runs fn against the mock itself
func (m *mockRepository) RunInTx(_ context.Context, fn func(repo author.Repository) error) error {
	return fn(m)
}

func strPtr(s string) *string { return &s }

func TestAuthorService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := new(mockRepository)
		svc := service.NewAuthorService(repo)

		repo.On("LockName", ctx, "Jane").Return(nil)
		repo.On("ExistsByName", ctx, "Jane", int64(0)).Return(false, nil)
		repo.On("Create", ctx, mock.MatchedBy(func(a *author.Author) bool {
			return a.Name == "Jane" && *a.PhoneNumber == "(555) 123-4567"
		})).Return(&author.Author{ID: 1, Name: "Jane", PhoneNumber: strPtr("(555) 123-4567")}, nil)

		created, err := svc.Create(ctx, &author.CreateAuthorRequest{
			Name:        "Jane",
			PhoneNumber: strPtr("(555) 123-4567"),
		})

		require.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate name is rejected without insert", func(t *testing.T) {
		repo := new(mockRepository)
		svc := service.NewAuthorService(repo)

		repo.On("LockName", ctx, "Jane").Return(nil)
		repo.On("ExistsByName", ctx, "Jane", int64(0)).Return(true, nil)

		_, err := svc.Create(ctx, &author.CreateAuthorRequest{Name: "Jane"})

		ve, ok := validator.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "Name must be unique.", ve.Message)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing name", func(t *testing.T) {
		repo := new(mockRepository)
		svc := service.NewAuthorService(repo)

		_, err := svc.Create(ctx, &author.CreateAuthorRequest{})

		ve, ok := validator.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, author.MsgNameRequired, ve.Message)
		repo.AssertNotCalled(t, "LockName", mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "ExistsByName", mock.Anything, mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("bad phone skips the name lock", func(t *testing.T) {
		repo := new(mockRepository)
		svc := service.NewAuthorService(repo)

		_, err := svc.Create(ctx, &author.CreateAuthorRequest{Name: "Jane", PhoneNumber: strPtr("555-1234")})

		ve, ok := validator.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, author.MsgPhoneDigits, ve.Message)
		repo.AssertNotCalled(t, "LockName", mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "ExistsByName", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unique constraint backstop", func(t *testing.T) {
		repo := new(mockRepository)
		svc := service.NewAuthorService(repo)

		repo.On("LockName", ctx, "Jane").Return(nil)
		repo.On("ExistsByName", ctx, "Jane", int64(0)).Return(false, nil)
		repo.On("Create", ctx, mock.Anything).Return(nil, author.ErrDuplicateName())

		_, err := svc.Create(ctx, &author.CreateAuthorRequest{Name: "Jane"})

		assert.True(t, validator.IsValidationError(err))
	})
}

func TestAuthorService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("rename to a free name", func(t *testing.T) {
		repo := new(mockRepository)
		svc := service.NewAuthorService(repo)

		current := &author.Author{ID: 3, Name: "Jane", PhoneNumber: strPtr("5551234567")}
		repo.On("GetByID", ctx, int64(3)).Return(current, nil)
		repo.On("LockName", ctx, "Janet").Return(nil)
		repo.On("ExistsByName", ctx, "Janet", int64(3)).Return(false, nil)
		repo.On("Update", ctx, mock.MatchedBy(func(a *author.Author) bool {
			return a.ID == 3 && a.Name == "Janet" && *a.PhoneNumber == "5551234567"
		})).Return(&author.Author{ID: 3, Name: "Janet", PhoneNumber: strPtr("5551234567")}, nil)

		updated, err := svc.Update(ctx, 3, &author.UpdateAuthorRequest{Name: strPtr("Janet")})

		require.NoError(t, err)
		assert.Equal(t, "Janet", updated.Name)
		assert.Equal(t, "Jane", current.Name, "stored entity must not be mutated in place")
		repo.AssertExpectations(t)
	})

	t.Run("bad phone leaves the author untouched", func(t *testing.T) {
		repo := new(mockRepository)
		svc := service.NewAuthorService(repo)

		repo.On("GetByID", ctx, int64(3)).Return(&author.Author{ID: 3, Name: "Jane"}, nil)

		_, err := svc.Update(ctx, 3, &author.UpdateAuthorRequest{PhoneNumber: strPtr("12345")})

		ve, ok := validator.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, author.FieldPhoneNumber, ve.Field)
		repo.AssertNotCalled(t, "LockName", mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(mockRepository)
		svc := service.NewAuthorService(repo)

		repo.On("GetByID", ctx, int64(9)).Return(nil, author.ErrAuthorNotFound)

		_, err := svc.Update(ctx, 9, &author.UpdateAuthorRequest{Name: strPtr("X")})
		assert.ErrorIs(t, err, author.ErrAuthorNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		svc := service.NewAuthorService(new(mockRepository))

		_, err := svc.Update(ctx, 0, &author.UpdateAuthorRequest{})
		assert.ErrorIs(t, err, author.ErrInvalidID)
	})
}

func TestAuthorService_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	svc := service.NewAuthorService(repo)

	repo.On("GetByID", ctx, int64(1)).Return(&author.Author{ID: 1, Name: "Jane"}, nil)

	a, err := svc.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Jane", a.Name)

	_, err = svc.GetByID(ctx, -1)
	assert.ErrorIs(t, err, author.ErrInvalidID)
}

func TestAuthorService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	svc := service.NewAuthorService(repo)

	repo.On("Delete", ctx, int64(1)).Return(nil)
	repo.On("Delete", ctx, int64(2)).Return(author.ErrAuthorNotFound)

	assert.NoError(t, svc.Delete(ctx, 1))
	assert.ErrorIs(t, svc.Delete(ctx, 2), author.ErrAuthorNotFound)
}
