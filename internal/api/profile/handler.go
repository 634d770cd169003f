package profile

import (
	"context"
	"fmt"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"medshare/internal/api/httperr"
	"medshare/internal/api/middleware/auth"
	"medshare/internal/domain/account"
)

type Handler struct {
	accounts      account.Servicer
	publicBaseURL string
	log           *slog.Logger
	middleware    huma.Middlewares
}

func NewHandler(accounts account.Servicer, publicBaseURL string, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		accounts:      accounts,
		publicBaseURL: publicBaseURL,
		log:           log,
		middleware:    middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.changePasswordOp(), h.changePassword)
	huma.Register(api, h.enablePublicAccessOp(), h.enablePublicAccess)
	huma.Register(api, h.disablePublicAccessOp(), h.disablePublicAccess)
	huma.Register(api, h.deactivateOp(), h.deactivate)
}

func (h *Handler) get(ctx context.Context, _ *getInput) (*getOutput, error) {
	accountID, ok := auth.AccountID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("authorization required")
	}

	acc, err := h.accounts.Get(ctx, accountID)
	if err != nil {
		return nil, httperr.Domain(err)
	}

	return &getOutput{Body: h.toResponse(acc)}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*updateOutput, error) {
	accountID, ok := auth.AccountID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("authorization required")
	}

	acc, err := h.accounts.UpdateProfile(ctx, accountID, account.ProfileUpdate{
		FirstName: input.Body.FirstName,
		LastName:  input.Body.LastName,
		Gender:    input.Body.Gender,
		Phone:     input.Body.Phone,
		BirthDate: input.Body.BirthDate,
	})
	if err != nil {
		return nil, httperr.Domain(err)
	}

	return &updateOutput{Body: h.toResponse(acc)}, nil
}

func (h *Handler) changePassword(ctx context.Context, input *changePasswordInput) (*changePasswordOutput, error) {
	accountID, ok := auth.AccountID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("authorization required")
	}

	if err := h.accounts.ChangePassword(ctx, accountID, input.Body.CurrentPassword, input.Body.NewPassword); err != nil {
		return nil, httperr.Domain(err)
	}

	return &changePasswordOutput{Body: MessageResponse{Message: "Password updated"}}, nil
}

func (h *Handler) enablePublicAccess(ctx context.Context, input *enablePublicAccessInput) (*enablePublicAccessOutput, error) {
	accountID, ok := auth.AccountID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("authorization required")
	}

	publicID, err := h.accounts.EnablePublicAccess(ctx, accountID, input.Body.PublicPassword)
	if err != nil {
		return nil, httperr.Domain(err)
	}

	return &enablePublicAccessOutput{Body: PublicAccessResponse{
		PublicID:  publicID,
		PublicURL: h.publicURL(publicID),
	}}, nil
}

func (h *Handler) disablePublicAccess(ctx context.Context, _ *disablePublicAccessInput) (*disablePublicAccessOutput, error) {
	accountID, ok := auth.AccountID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("authorization required")
	}

	if err := h.accounts.DisablePublicAccess(ctx, accountID); err != nil {
		return nil, httperr.Domain(err)
	}

	return &disablePublicAccessOutput{Body: MessageResponse{Message: "Public access disabled"}}, nil
}

func (h *Handler) deactivate(ctx context.Context, input *deactivateInput) (*deactivateOutput, error) {
	accountID, ok := auth.AccountID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("authorization required")
	}

	acc, err := h.accounts.Get(ctx, accountID)
	if err != nil {
		return nil, httperr.Domain(err)
	}
	if _, err := h.accounts.Authenticate(ctx, acc.Email, input.Body.Password); err != nil {
		return nil, httperr.Domain(err)
	}

	if err := h.accounts.Deactivate(ctx, accountID); err != nil {
		return nil, httperr.Domain(err)
	}

	return &deactivateOutput{Body: MessageResponse{Message: "Account deactivated"}}, nil
}

func (h *Handler) toResponse(acc account.Account) ProfileResponse {
	resp := ProfileResponse{
		ID:           acc.ID,
		Email:        acc.Email,
		FirstName:    acc.FirstName,
		LastName:     acc.LastName,
		Gender:       acc.Gender,
		Phone:        acc.Phone,
		BirthDate:    acc.BirthDate,
		PublicAccess: acc.PublicAccessConfigured(),
		CreatedAt:    acc.CreatedAt,
		UpdatedAt:    acc.UpdatedAt,
	}
	if acc.PublicAccessConfigured() {
		url := h.publicURL(*acc.PublicID)
		resp.PublicURL = &url
	}
	return resp
}

func (h *Handler) publicURL(publicID string) string {
	return fmt.Sprintf("%s/public/%s", h.publicBaseURL, publicID)
}
