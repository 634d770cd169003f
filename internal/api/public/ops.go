package public

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) checkLinkOp() huma.Operation {
	return huma.Operation{
		OperationID: "public-check-link",
		Method:      http.MethodGet,
		Path:        "/public/{uuid}",
		Summary:     "Check whether a public link exists and needs a password",
		Tags:        []string{"public"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) getStatsOp() huma.Operation {
	return huma.Operation{
		OperationID: "public-get-stats",
		Method:      http.MethodGet,
		Path:        "/public/stats/{uuid}",
		Summary:     "Preview a public link without the access password",
		Tags:        []string{"public"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) getProfileOp() huma.Operation {
	return huma.Operation{
		OperationID: "public-get-profile",
		Method:      http.MethodPost,
		Path:        "/public/{uuid}",
		Summary:     "Retrieve the emergency profile with the access password",
		Tags:        []string{"public"},
		Middlewares: h.middleware,
	}
}
