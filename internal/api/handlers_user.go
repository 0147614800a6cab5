package api

import (
	"encoding/json"
	"net/http"

	"github.com/aws11/account-api/internal/auth"
	"github.com/aws11/account-api/internal/service/user"
)

// GetProfile returns the caller's full profile, provisioning the account row
// from token claims on first contact.
//
//	GET /api/user/profile
func (h *Handlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "AuthenticationError", "unauthorized")
		return
	}

	p, err := h.users.GetOrProvision(r.Context(), user.ProvisionInput{
		UserID:   claims.UserID,
		Email:    claims.Email,
		Nickname: claims.Nickname,
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// UpdateProfile applies the supplied profile fields; absent fields are left
// untouched.
//
//	PUT /api/user/profile
func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "AuthenticationError", "unauthorized")
		return
	}

	var f user.UpdateFields
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		respondError(w, http.StatusBadRequest, "ValidationError", "invalid request body")
		return
	}

	p, err := h.users.UpdateProfile(r.Context(), claims.UserID, f)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}
