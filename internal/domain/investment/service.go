package investment

import (
	"context"
	"strings"

	appErrors "github.com/reimbazz/GF-Innovation-service/internal/errors"
	"github.com/reimbazz/GF-Innovation-service/internal/pkg"
)

type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

func (s *Service) CreateInvestment(ctx context.Context, form FormData) (*Investment, error) {
	form.Name = strings.TrimSpace(form.Name)
	if errs := ValidateForm(form); len(errs) > 0 {
		return nil, validationError(errs)
	}

	now := pkg.SetTimestamps()
	entity := &Investment{
		Id:        pkg.GenerateULID(),
		Name:      form.Name,
		Type:      form.Type,
		Amount:    form.Amount,
		Date:      form.Date,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Repository.Create(ctx, entity); err != nil {
		return nil, err
	}

	return entity, nil
}

func (s *Service) ListInvestments(ctx context.Context) ([]*Investment, error) {
	return s.Repository.List(ctx)
}

func (s *Service) GetInvestment(ctx context.Context, id string) (*Investment, error) {
	return s.Repository.GetByID(ctx, id)
}

// UpdateInvestment substitui todos os campos mutáveis do registro
// identificado, com UpdatedAt renovado.
func (s *Service) UpdateInvestment(ctx context.Context, id string, form FormData) (*Investment, error) {
	form.Name = strings.TrimSpace(form.Name)
	if errs := ValidateForm(form); len(errs) > 0 {
		return nil, validationError(errs)
	}

	entity, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	entity.Name = form.Name
	entity.Type = form.Type
	entity.Amount = form.Amount
	entity.Date = form.Date
	entity.UpdatedAt = pkg.SetTimestamps()

	if err := s.Repository.Update(ctx, entity); err != nil {
		return nil, err
	}

	return entity, nil
}

func (s *Service) DeleteInvestment(ctx context.Context, id string) error {
	if _, err := s.Repository.GetByID(ctx, id); err != nil {
		return err
	}
	return s.Repository.Delete(ctx, id)
}

func validationError(errs []FieldError) *appErrors.AppError {
	messages := Messages(errs)
	return appErrors.ErrValidation.
		WithMessage(strings.Join(messages, ", ")).
		WithDetails(map[string]interface{}{
			"errors": messages,
			"fields": errs,
		})
}
