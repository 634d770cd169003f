package auth

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"medshare/internal/api/httperr"
	authsvc "medshare/internal/auth"
	"medshare/internal/domain/account"
	"medshare/internal/domain/token"
)

type Handler struct {
	accounts   account.Servicer
	tokens     token.Servicer
	credential *authsvc.TokenManager
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(accounts account.Servicer, tokens token.Servicer, credential *authsvc.TokenManager, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		accounts:   accounts,
		tokens:     tokens,
		credential: credential,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.forgotPasswordOp(), h.forgotPassword)
	huma.Register(api, h.resetPasswordOp(), h.resetPassword)
	huma.Register(api, h.verifyTokenOp(), h.verifyToken)
}

func (h *Handler) register(ctx context.Context, input *registerInput) (*registerOutput, error) {
	id, err := h.accounts.Register(ctx, account.RegisterRequest{
		Email:     input.Body.Email,
		Password:  input.Body.Password,
		FirstName: input.Body.FirstName,
		LastName:  input.Body.LastName,
		Gender:    input.Body.Gender,
		Phone:     input.Body.Phone,
		BirthDate: input.Body.BirthDate,
	})
	if err != nil {
		return nil, httperr.Domain(err)
	}

	tok, err := h.credential.Issue(id)
	if err != nil {
		h.log.Error("issue token after register", "account_id", id, "error", err)
		return nil, huma.Error500InternalServerError("internal error")
	}

	return &registerOutput{Body: AuthResponse{AccountID: id, Token: tok}}, nil
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	acc, err := h.accounts.Authenticate(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, httperr.Domain(err)
	}

	tok, err := h.credential.Issue(acc.ID)
	if err != nil {
		h.log.Error("issue token after login", "account_id", acc.ID, "error", err)
		return nil, huma.Error500InternalServerError("internal error")
	}

	return &loginOutput{Body: AuthResponse{AccountID: acc.ID, Token: tok}}, nil
}

// forgotPassword always reports success so the endpoint does not reveal
// which emails are registered.
func (h *Handler) forgotPassword(ctx context.Context, input *forgotPasswordInput) (*forgotPasswordOutput, error) {
	if err := h.tokens.Request(ctx, input.Body.Email); err != nil {
		h.log.Error("reset request failed", "error", err)
		return nil, huma.Error500InternalServerError("internal error")
	}

	return &forgotPasswordOutput{Body: MessageResponse{
		Message: "If the email is registered, a reset link has been sent",
	}}, nil
}

func (h *Handler) resetPassword(ctx context.Context, input *resetPasswordInput) (*resetPasswordOutput, error) {
	if err := h.tokens.Redeem(ctx, input.Body.Token, input.Body.NewPassword); err != nil {
		return nil, mapTokenErr(err)
	}

	return &resetPasswordOutput{Body: MessageResponse{Message: "Password updated"}}, nil
}

func (h *Handler) verifyToken(ctx context.Context, input *verifyTokenInput) (*verifyTokenOutput, error) {
	err := h.tokens.Verify(ctx, input.Token)
	switch {
	case err == nil:
		return &verifyTokenOutput{Body: VerifyTokenResponse{Valid: true}}, nil
	case errors.Is(err, token.ErrInvalidToken),
		errors.Is(err, token.ErrAlreadyUsed),
		errors.Is(err, token.ErrExpired),
		errors.Is(err, token.ErrAccountInactive):
		return &verifyTokenOutput{Body: VerifyTokenResponse{Valid: false}}, nil
	default:
		h.log.Error("verify token failed", "error", err)
		return nil, huma.Error500InternalServerError("internal error")
	}
}

func mapTokenErr(err error) error {
	switch {
	case errors.Is(err, token.ErrInvalidToken):
		return huma.Error400BadRequest("invalid reset token")
	case errors.Is(err, token.ErrAlreadyUsed):
		return huma.Error400BadRequest("reset token was already used")
	case errors.Is(err, token.ErrExpired):
		return huma.Error400BadRequest("reset token has expired")
	case errors.Is(err, token.ErrAccountInactive):
		return huma.Error403Forbidden("account is inactive")
	default:
		return httperr.Domain(err)
	}
}
