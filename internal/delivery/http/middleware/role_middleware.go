package middleware

import (
	"net/http"

	"hms-backend/internal/domain/entity"
	"hms-backend/pkg/response"
)

// RequireRole creates a middleware that checks if the user has any of the
// required roles. Role is read from context (set by AuthMiddleware from JWT
// claims).
func RequireRole(allowedRoleIDs ...int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			roleID, ok := GetRoleIDFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, allowedRoleID := range allowedRoleIDs {
				if roleID == allowedRoleID {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDAdmin)(next)
}

// RequireDoctor is a convenience middleware for doctor-only endpoints
func RequireDoctor(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDDoctor)(next)
}

// RequireStaff is a convenience middleware for front-desk staff endpoints
func RequireStaff(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDStaff)(next)
}

// RequirePharmacy is a convenience middleware for pharmacy endpoints
func RequirePharmacy(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDPharmacy)(next)
}

// RequireLab is a convenience middleware for laboratory endpoints
func RequireLab(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDLab)(next)
}

// RequirePatient is a convenience middleware for patient-only endpoints
func RequirePatient(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDPatient)(next)
}

// RequireBilling allows the roles that can raise invoices and expenses
func RequireBilling(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDAdmin, entity.RoleIDStaff)(next)
}
