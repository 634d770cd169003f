package medical

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "medical-get",
		Method:      http.MethodGet,
		Path:        "/api/medical",
		Summary:     "Get the decrypted medical record",
		Tags:        []string{"medical"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "medical-update",
		Method:      http.MethodPut,
		Path:        "/api/medical",
		Summary:     "Replace the medical record",
		Tags:        []string{"medical"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) clearOp() huma.Operation {
	return huma.Operation{
		OperationID: "medical-clear",
		Method:      http.MethodDelete,
		Path:        "/api/medical",
		Summary:     "Clear all medical fields",
		Tags:        []string{"medical"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
