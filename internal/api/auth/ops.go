package auth

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) registerOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-register",
		Method:      http.MethodPost,
		Path:        "/auth/register",
		Summary:     "Register a new account",
		Tags:        []string{"auth"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) loginOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-login",
		Method:      http.MethodPost,
		Path:        "/auth/login",
		Summary:     "Authenticate and receive a bearer token",
		Tags:        []string{"auth"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) forgotPasswordOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-forgot-password",
		Method:      http.MethodPost,
		Path:        "/auth/forgot-password",
		Summary:     "Request a password reset token",
		Tags:        []string{"auth"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) resetPasswordOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-reset-password",
		Method:      http.MethodPost,
		Path:        "/auth/reset-password",
		Summary:     "Redeem a reset token and set a new password",
		Tags:        []string{"auth"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) verifyTokenOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-verify-reset-token",
		Method:      http.MethodGet,
		Path:        "/auth/reset-password/{token}",
		Summary:     "Check whether a reset token is still redeemable",
		Tags:        []string{"auth"},
		Middlewares: h.middleware,
	}
}
