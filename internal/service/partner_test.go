package service

import (
	"context"
	"errors"
	"testing"

	"github.com/myysophia/poa-backend/internal/db/models"
	"github.com/myysophia/poa-backend/internal/repository"
	"github.com/myysophia/poa-backend/internal/tests/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPartnerService_ListPermissions(t *testing.T) {
	partnerRepo := &mocks.MockPartnerRepository{}
	svc := NewPartnerService(partnerRepo, &mocks.MockPermissionRepository{})

	partnerRepo.On("FindByID", mock.Anything, uint(5)).Return(&models.Partner{Model: models.Model{ID: 5}}, nil)
	partnerRepo.On("ListPermissions", mock.Anything, uint(5)).Return([]models.Permission{
		{Model: models.Model{ID: 1}, NameEN: "Board Member", DescriptionEN: "Member", DescriptionAR: "عضو"},
	}, nil)

	permissions, err := svc.ListPermissions(context.Background(), 5, "ar")
	require.NoError(t, err)
	assert.Equal(t, "عضو", permissions[0].DisplayName)

	permissions, err = svc.ListPermissions(context.Background(), 5, "en")
	require.NoError(t, err)
	assert.Equal(t, "Board Member", permissions[0].DisplayName)
}

func TestPartnerService_ListPermissions_NotFound(t *testing.T) {
	partnerRepo := &mocks.MockPartnerRepository{}
	svc := NewPartnerService(partnerRepo, &mocks.MockPermissionRepository{})

	partnerRepo.On("FindByID", mock.Anything, uint(5)).Return(nil, repository.ErrNotFound)

	_, err := svc.ListPermissions(context.Background(), 5, "en")

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, ResourcePartner, nf.Resource)
}

func TestPartnerService_ReplacePermissions(t *testing.T) {
	partnerRepo := &mocks.MockPartnerRepository{}
	permRepo := &mocks.MockPermissionRepository{}
	svc := NewPartnerService(partnerRepo, permRepo)

	partner := &models.Partner{Model: models.Model{ID: 5}}
	permissions := []models.Permission{
		{Model: models.Model{ID: 1}, NameEN: "Agent"},
		{Model: models.Model{ID: 2}, NameEN: "Signer"},
	}

	partnerRepo.On("FindByID", mock.Anything, uint(5)).Return(partner, nil)
	permRepo.On("FindByIDs", mock.Anything, []uint{1, 2}).Return(permissions, nil)
	partnerRepo.On("ReplacePermissions", mock.Anything, partner, permissions).Return(nil)

	result, err := svc.ReplacePermissions(context.Background(), 5, []uint{1, 2, 1}, "en")
	require.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "Agent", result[0].DisplayName)
	partnerRepo.AssertExpectations(t)
}

func TestPartnerService_ReplacePermissions_Missing(t *testing.T) {
	partnerRepo := &mocks.MockPartnerRepository{}
	permRepo := &mocks.MockPermissionRepository{}
	svc := NewPartnerService(partnerRepo, permRepo)

	partnerRepo.On("FindByID", mock.Anything, uint(5)).Return(&models.Partner{Model: models.Model{ID: 5}}, nil)
	permRepo.On("FindByIDs", mock.Anything, []uint{1, 3}).Return([]models.Permission{{Model: models.Model{ID: 1}}}, nil)

	_, err := svc.ReplacePermissions(context.Background(), 5, []uint{1, 3}, "en")

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, ResourcePermission, nf.Resource)
	assert.Equal(t, []uint{3}, nf.IDs)
	partnerRepo.AssertNotCalled(t, "ReplacePermissions", mock.Anything, mock.Anything, mock.Anything)
}
