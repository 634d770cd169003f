package profile

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "profile-get",
		Method:      http.MethodGet,
		Path:        "/api/profile",
		Summary:     "Get the authenticated profile",
		Tags:        []string{"profile"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "profile-update",
		Method:      http.MethodPut,
		Path:        "/api/profile",
		Summary:     "Update profile fields",
		Tags:        []string{"profile"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) changePasswordOp() huma.Operation {
	return huma.Operation{
		OperationID: "profile-change-password",
		Method:      http.MethodPut,
		Path:        "/api/profile/password",
		Summary:     "Change the login password",
		Tags:        []string{"profile"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) enablePublicAccessOp() huma.Operation {
	return huma.Operation{
		OperationID: "profile-enable-public-access",
		Method:      http.MethodPost,
		Path:        "/api/profile/public-access",
		Summary:     "Enable or re-key the public emergency link",
		Tags:        []string{"profile"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) disablePublicAccessOp() huma.Operation {
	return huma.Operation{
		OperationID: "profile-disable-public-access",
		Method:      http.MethodDelete,
		Path:        "/api/profile/public-access",
		Summary:     "Disable the public emergency link",
		Tags:        []string{"profile"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deactivateOp() huma.Operation {
	return huma.Operation{
		OperationID: "profile-deactivate",
		Method:      http.MethodDelete,
		Path:        "/api/profile",
		Summary:     "Deactivate the account",
		Tags:        []string{"profile"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
