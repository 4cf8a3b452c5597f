package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"hms-backend/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func doRoleRequest(t *testing.T, mw func(http.Handler) http.Handler, roleID int, withRole bool) *httptest.ResponseRecorder {
	t.Helper()

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if withRole {
		req = req.WithContext(context.WithValue(req.Context(), RoleIDKey, roleID))
	}

	rec := httptest.NewRecorder()
	mw(next).ServeHTTP(rec, req)

	if rec.Code == http.StatusOK {
		assert.True(t, called)
	} else {
		assert.False(t, called)
	}
	return rec
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	rec := doRoleRequest(t, RequireAdmin, entity.RoleIDAdmin, true)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleRejectsOtherRole(t *testing.T) {
	rec := doRoleRequest(t, RequireAdmin, entity.RoleIDDoctor, true)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoleRejectsMissingRole(t *testing.T) {
	rec := doRoleRequest(t, RequireAdmin, 0, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireBillingAllowsAdminAndStaff(t *testing.T) {
	assert.Equal(t, http.StatusOK, doRoleRequest(t, RequireBilling, entity.RoleIDAdmin, true).Code)
	assert.Equal(t, http.StatusOK, doRoleRequest(t, RequireBilling, entity.RoleIDStaff, true).Code)
	assert.Equal(t, http.StatusForbidden, doRoleRequest(t, RequireBilling, entity.RoleIDPatient, true).Code)
}

func TestContextHelpers(t *testing.T) {
	ctx := context.WithValue(context.Background(), RoleIDKey, entity.RoleIDLab)

	roleID, ok := GetRoleIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, entity.RoleIDLab, roleID)

	_, ok = GetUserIDFromContext(ctx)
	assert.False(t, ok)
}
