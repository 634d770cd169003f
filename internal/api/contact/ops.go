package contact

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "contacts-list",
		Method:      http.MethodGet,
		Path:        "/api/contacts",
		Summary:     "List emergency contacts",
		Tags:        []string{"contacts"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "contacts-get",
		Method:      http.MethodGet,
		Path:        "/api/contacts/{id}",
		Summary:     "Get one emergency contact",
		Tags:        []string{"contacts"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "contacts-create",
		Method:      http.MethodPost,
		Path:        "/api/contacts",
		Summary:     "Add an emergency contact",
		Tags:        []string{"contacts"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "contacts-update",
		Method:      http.MethodPut,
		Path:        "/api/contacts/{id}",
		Summary:     "Update an emergency contact",
		Tags:        []string{"contacts"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "contacts-delete",
		Method:      http.MethodDelete,
		Path:        "/api/contacts/{id}",
		Summary:     "Delete an emergency contact",
		Tags:        []string{"contacts"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
