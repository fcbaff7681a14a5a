package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/myysophia/poa-backend/internal/db/models"
	"github.com/myysophia/poa-backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPartnerRouter(t *testing.T, lang string) (*MockPartnerService, http.Handler) {
	ctrl := gomock.NewController(t)
	svc := NewMockPartnerService(ctrl)
	handler := NewPartnerHandler(svc)

	r := newTestRouter(lang)
	r.GET("/api/v1/partners/:id/permissions", handler.ListPermissions)
	r.PUT("/api/v1/partners/:id/permissions", handler.ReplacePermissions)
	return svc, r
}

func TestPartnerHandler_ListPermissions(t *testing.T) {
	svc, r := setupPartnerRouter(t, "ar")

	p := boardMember()
	p.DisplayName = "عضو مجلس"
	svc.EXPECT().ListPermissions(gomock.Any(), uint(2), "ar").Return([]models.Permission{*p}, nil)

	w := doRequest(r, http.MethodGet, "/api/v1/partners/2/permissions", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var data struct {
		Total int                 `json:"total"`
		Items []models.Permission `json:"items"`
	}
	require.NoError(t, json.Unmarshal(decodeResponse(t, w).Data, &data))
	assert.Equal(t, 1, data.Total)
	assert.Equal(t, "عضو مجلس", data.Items[0].DisplayName)
}

func TestPartnerHandler_ListPermissions_NotFound(t *testing.T) {
	svc, r := setupPartnerRouter(t, "ar")

	svc.EXPECT().
		ListPermissions(gomock.Any(), uint(2), "ar").
		Return(nil, &service.NotFoundError{Resource: service.ResourcePartner, IDs: []uint{2}})

	w := doRequest(r, http.MethodGet, "/api/v1/partners/2/permissions", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "العميل 2 غير موجود.", decodeResponse(t, w).Message)
}

func TestPartnerHandler_ReplacePermissions(t *testing.T) {
	svc, r := setupPartnerRouter(t, "en")

	svc.EXPECT().
		ReplacePermissions(gomock.Any(), uint(2), []uint{1, 3}, "en").
		Return([]models.Permission{*boardMember()}, nil)

	w := doRequest(r, http.MethodPut, "/api/v1/partners/2/permissions", map[string]interface{}{
		"permission_ids": []uint{1, 3},
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPartnerHandler_ReplacePermissions_Clear(t *testing.T) {
	svc, r := setupPartnerRouter(t, "en")

	svc.EXPECT().
		ReplacePermissions(gomock.Any(), uint(2), []uint{}, "en").
		Return([]models.Permission{}, nil)

	w := doRequest(r, http.MethodPut, "/api/v1/partners/2/permissions", map[string]interface{}{
		"permission_ids": []uint{},
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPartnerHandler_InvalidID(t *testing.T) {
	_, r := setupPartnerRouter(t, "en")

	w := doRequest(r, http.MethodGet, "/api/v1/partners/x/permissions", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
