package medical

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"medshare/internal/api/httperr"
	"medshare/internal/api/middleware/auth"
	"medshare/internal/domain/medical"
)

type Handler struct {
	service    medical.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service medical.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.clearOp(), h.clear)
}

func (h *Handler) get(ctx context.Context, _ *getInput) (*getOutput, error) {
	accountID, ok := auth.AccountID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("authorization required")
	}

	info, err := h.service.Get(ctx, accountID)
	if err != nil {
		return nil, httperr.Domain(err)
	}

	return &getOutput{Body: toResponse(info)}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*updateOutput, error) {
	accountID, ok := auth.AccountID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("authorization required")
	}

	info, err := h.service.Update(ctx, accountID, medical.Update{
		BloodType:   input.Body.BloodType,
		Allergies:   input.Body.Allergies,
		Medications: input.Body.Medications,
		Conditions:  input.Body.Conditions,
		Surgeries:   input.Body.Surgeries,
	})
	if err != nil {
		return nil, httperr.Domain(err)
	}

	return &updateOutput{Body: toResponse(info)}, nil
}

func (h *Handler) clear(ctx context.Context, _ *clearInput) (*clearOutput, error) {
	accountID, ok := auth.AccountID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("authorization required")
	}

	if err := h.service.Clear(ctx, accountID); err != nil {
		return nil, httperr.Domain(err)
	}

	return &clearOutput{Body: MessageResponse{Message: "Medical record cleared"}}, nil
}

func toResponse(info medical.Info) InfoResponse {
	return InfoResponse{
		BloodType:   info.BloodType,
		Allergies:   info.Allergies,
		Medications: info.Medications,
		Conditions:  info.Conditions,
		Surgeries:   info.Surgeries,
		UpdatedAt:   info.UpdatedAt,
	}
}
