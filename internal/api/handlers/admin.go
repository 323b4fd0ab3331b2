package handlers

import (
	"net/http"

	"github.com/cordilleraweaves/marketplace-api/internal/admin"
	"github.com/cordilleraweaves/marketplace-api/internal/utils/response"
)

type AdminHandler struct{}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

// Dashboard returns the tab registry the management SPA renders from:
// columns, form fields and the removal policy for every resource.
func (h *AdminHandler) Dashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, map[string]any{
			"tabs": admin.Tabs(),
		})
	}
}
