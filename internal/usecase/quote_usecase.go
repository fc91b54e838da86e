package usecase

import (
	"context"
	"errors"
	"sort"

	"decormitra/internal/domain/entities"
	"decormitra/internal/domain/pricing"
	"decormitra/internal/logging"

	"go.uber.org/zap"
)

// ErrEstimateUnavailable signals an internal engine fault. Handlers respond
// with the static fallback range instead of a hard failure, since pricing is
// user-facing and mid-conversation.
var ErrEstimateUnavailable = errors.New("estimate unavailable")

type IQuoteUseCase interface {
	EstimateQuote(ctx context.Context, resp entities.QuestionnaireResponse, personaID string) (entities.PriceEstimate, error)
	ListPersonas(ctx context.Context) []entities.Persona
	GetPersona(ctx context.Context, id string) (entities.Persona, bool)
}

type QuoteUseCase struct {
	engine *pricing.Engine
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(engine *pricing.Engine) *QuoteUseCase {
	return &QuoteUseCase{engine: engine}
}

func (u *QuoteUseCase) EstimateQuote(ctx context.Context, resp entities.QuestionnaireResponse, personaID string) (entities.PriceEstimate, error) {
	estimate, err := u.engine.Estimate(resp, personaID)
	if err != nil {
		logging.Logger.Error("pricing engine fault",
			zap.Error(err),
			zap.String("persona", personaID),
		)
		return entities.PriceEstimate{}, ErrEstimateUnavailable
	}
	return estimate, nil
}

func (u *QuoteUseCase) ListPersonas(ctx context.Context) []entities.Persona {
	catalog := u.engine.Personas()
	personas := make([]entities.Persona, 0, len(catalog))
	for _, p := range catalog {
		personas = append(personas, p)
	}
	sort.Slice(personas, func(i, j int) bool { return personas[i].ID < personas[j].ID })
	return personas
}

func (u *QuoteUseCase) GetPersona(ctx context.Context, id string) (entities.Persona, bool) {
	p, ok := u.engine.Personas()[entities.PersonaID(id)]
	return p, ok
}
