package usecase

import (
	"context"
	"errors"

	"decormitra/internal/domain/entities"
	"decormitra/internal/domain/serviceability"
)

var ErrInvalidPincode = errors.New("invalid pincode")

type IServiceabilityUseCase interface {
	CheckServiceability(ctx context.Context, pincode, serviceCategory string) (entities.ServiceAreaResult, error)
}

type ServiceabilityUseCase struct {
	classifier *serviceability.Classifier
}

var _ IServiceabilityUseCase = (*ServiceabilityUseCase)(nil)

func NewServiceabilityUseCase(classifier *serviceability.Classifier) *ServiceabilityUseCase {
	return &ServiceabilityUseCase{classifier: classifier}
}

// CheckServiceability validates the pincode shape here because the classifier
// assumes well-formed input; format defense sits on this side of the boundary.
func (u *ServiceabilityUseCase) CheckServiceability(ctx context.Context, pincode, serviceCategory string) (entities.ServiceAreaResult, error) {
	if !isValidPincode(pincode) {
		return entities.ServiceAreaResult{}, ErrInvalidPincode
	}
	return u.classifier.Classify(pincode, serviceCategory), nil
}

func isValidPincode(pincode string) bool {
	if len(pincode) != 6 {
		return false
	}
	for _, r := range pincode {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
