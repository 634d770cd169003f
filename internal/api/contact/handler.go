package contact

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"medshare/internal/api/httperr"
	"medshare/internal/api/middleware/auth"
	"medshare/internal/domain/contact"
)

type Handler struct {
	service    contact.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service contact.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *listInput) (*listOutput, error) {
	accountID, ok := auth.AccountID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("authorization required")
	}

	contacts, err := h.service.List(ctx, accountID)
	if err != nil {
		return nil, httperr.Domain(err)
	}

	items := make([]ContactResponse, len(contacts))
	for i, c := range contacts {
		items[i] = toResponse(c)
	}

	return &listOutput{Body: ListResponse{Contacts: items, Total: len(items)}}, nil
}

func (h *Handler) get(ctx context.Context, input *getInput) (*getOutput, error) {
	accountID, ok := auth.AccountID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("authorization required")
	}

	c, err := h.service.Get(ctx, accountID, input.ID)
	if err != nil {
		return nil, httperr.Domain(err)
	}

	return &getOutput{Body: toResponse(c)}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	accountID, ok := auth.AccountID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("authorization required")
	}

	c, err := h.service.Create(ctx, accountID, toInput(input.Body))
	if err != nil {
		return nil, httperr.Domain(err)
	}

	return &createOutput{Body: toResponse(c)}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*updateOutput, error) {
	accountID, ok := auth.AccountID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("authorization required")
	}

	c, err := h.service.Update(ctx, accountID, input.ID, toInput(input.Body))
	if err != nil {
		return nil, httperr.Domain(err)
	}

	return &updateOutput{Body: toResponse(c)}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	accountID, ok := auth.AccountID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("authorization required")
	}

	if err := h.service.Delete(ctx, accountID, input.ID); err != nil {
		return nil, httperr.Domain(err)
	}

	return &deleteOutput{Body: MessageResponse{Message: "Contact deleted"}}, nil
}

func toInput(req ContactRequest) contact.Input {
	return contact.Input{
		Name:         req.Name,
		Relationship: req.Relationship,
		Phone:        req.Phone,
		Email:        req.Email,
	}
}

func toResponse(c contact.Contact) ContactResponse {
	return ContactResponse{
		ID:           c.ID,
		Name:         c.Name,
		Relationship: c.Relationship,
		Phone:        c.Phone,
		Email:        c.Email,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
