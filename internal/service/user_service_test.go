package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"shipmatrix/internal/domain"
	"shipmatrix/internal/service"
	"shipmatrix/mocks"
)

func strPtr(s string) *string                    { return &s }
func rolePtr(r domain.UserRole) *domain.UserRole { return &r }
func boolPtr(b bool) *bool                       { return &b }

func TestUserService_Create_HashesPassword(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewUserService(repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Create(context.Background(), service.CreateUserInput{
		Email:    "ops@example.com",
		Password: "correct horse battery",
		FullName: "Ops User",
		Role:     domain.RoleMember,
	})
	require.NoError(t, err)

	assert.Equal(t, "ops@example.com", user.Email)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "correct horse battery", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct horse battery")))
	repo.AssertExpectations(t)
}

func TestUserService_Create_RejectsUnknownRole(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewUserService(repo)

	_, err := svc.Create(context.Background(), service.CreateUserInput{
		Email:    "ops@example.com",
		Password: "correct horse battery",
		FullName: "Ops User",
		Role:     domain.UserRole("superuser"),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Create_DuplicateEmailPropagates(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewUserService(repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateEmail)

	_, err := svc.Create(context.Background(), service.CreateUserInput{
		Email:    "ops@example.com",
		Password: "correct horse battery",
		FullName: "Ops User",
		Role:     domain.RoleMember,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestUserService_Update_PartialFields(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewUserService(repo)
	userID := uuid.New()
	existing := &domain.User{
		ID:       userID,
		Email:    "ops@example.com",
		FullName: "Ops User",
		Role:     domain.RoleMember,
		IsActive: true,
	}

	repo.On("GetByID", mock.Anything, userID).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	updated, err := svc.Update(context.Background(), userID, service.UpdateUserInput{
		FullName: strPtr("Renamed User"),
		IsActive: boolPtr(false),
	})
	require.NoError(t, err)

	assert.Equal(t, "Renamed User", updated.FullName)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "ops@example.com", updated.Email)
	assert.Equal(t, domain.RoleMember, updated.Role)
}

func TestUserService_Update_RejectsUnknownRole(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewUserService(repo)
	userID := uuid.New()

	repo.On("GetByID", mock.Anything, userID).Return(&domain.User{ID: userID}, nil)

	_, err := svc.Update(context.Background(), userID, service.UpdateUserInput{
		Role: rolePtr(domain.UserRole("superuser")),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserService_Update_NotFound(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewUserService(repo)
	userID := uuid.New()

	repo.On("GetByID", mock.Anything, userID).Return(nil, domain.ErrNotFound)

	_, err := svc.Update(context.Background(), userID, service.UpdateUserInput{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserService_Delete(t *testing.T) {
	repo := new(mocks.MockUserRepo)
	svc := service.NewUserService(repo)
	userID := uuid.New()

	repo.On("Delete", mock.Anything, userID).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), userID))
	repo.AssertExpectations(t)
}
