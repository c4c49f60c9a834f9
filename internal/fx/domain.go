package fx

import (
	"go.uber.org/fx"

	"github.com/reimbazz/GF-Innovation-service/internal/domain/investment"
)

// DomainModule fornece os services do domínio
var DomainModule = fx.Module("domain",
	fx.Provide(
		newInvestmentService,
	),
)

func newInvestmentService(repo investment.Repository) *investment.Service {
	return investment.NewService(repo)
}
