package public

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"medshare/internal/domain/public"
)

type Handler struct {
	service    public.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service public.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.checkLinkOp(), h.checkLink)
	huma.Register(api, h.getStatsOp(), h.getStats)
	huma.Register(api, h.getProfileOp(), h.getProfile)
}

func (h *Handler) checkLink(ctx context.Context, input *checkLinkInput) (*checkLinkOutput, error) {
	info, err := h.service.CheckLink(ctx, input.PublicID)
	if err != nil {
		return nil, mapPublicErr(err)
	}

	return &checkLinkOutput{Body: CheckLinkResponse{
		Exists:      true,
		OwnerName:   info.OwnerName,
		HasPassword: info.HasPassword,
	}}, nil
}

func (h *Handler) getStats(ctx context.Context, input *getStatsInput) (*getStatsOutput, error) {
	stats, err := h.service.GetStats(ctx, input.PublicID)
	if err != nil {
		return nil, mapPublicErr(err)
	}

	return &getStatsOutput{Body: StatsResponse{
		FirstName:        stats.FirstName,
		LastName:         stats.LastName,
		FullName:         stats.FullName,
		Age:              stats.Age,
		ContactCount:     stats.ContactCount,
		HasMedicalInfo:   stats.HasMedicalInfo,
		RequiresPassword: stats.RequiresPassword,
	}}, nil
}

func (h *Handler) getProfile(ctx context.Context, input *getProfileInput) (*getProfileOutput, error) {
	viewer, err := h.service.Authorize(ctx, input.PublicID, input.Body.Password)
	if err != nil {
		return nil, mapPublicErr(err)
	}

	prof, err := h.service.GetProfile(ctx, viewer)
	if err != nil {
		h.log.Error("public profile assembly failed", "error", err)
		return nil, huma.Error500InternalServerError("internal error")
	}

	contacts := make([]ContactView, len(prof.Contacts))
	for i, c := range prof.Contacts {
		contacts[i] = ContactView{
			Name:         c.Name,
			Relationship: c.Relationship,
			Phone:        c.Phone,
		}
	}

	return &getProfileOutput{Body: ProfileResponse{
		FirstName: prof.FirstName,
		LastName:  prof.LastName,
		FullName:  prof.FullName,
		Gender:    prof.Gender,
		Phone:     prof.Phone,
		BirthDate: prof.BirthDate,
		Age:       prof.Age,
		Medical: MedicalView{
			BloodType:   prof.Medical.BloodType,
			Allergies:   prof.Medical.Allergies,
			Medications: prof.Medical.Medications,
			Conditions:  prof.Medical.Conditions,
			Surgeries:   prof.Medical.Surgeries,
		},
		Contacts:   contacts,
		AccessedAt: prof.AccessedAt,
	}}, nil
}

// mapPublicErr keeps unknown and deactivated identifiers indistinguishable
// to callers: both answer 404 with the same message, so the endpoint cannot
// be used to tell dead accounts from ones that never existed. The internal
// distinction survives only in the guard's logs.
func mapPublicErr(err error) error {
	switch {
	case errors.Is(err, public.ErrNotFound), errors.Is(err, public.ErrGone):
		return huma.Error404NotFound("public link not found or unavailable")
	case errors.Is(err, public.ErrNotConfigured):
		return huma.Error403Forbidden("public link not configured")
	case errors.Is(err, public.ErrUnauthorized):
		return huma.Error401Unauthorized("public access password incorrect")
	default:
		return huma.Error500InternalServerError("internal error")
	}
}
