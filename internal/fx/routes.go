package fx

import (
	"go.uber.org/fx"

	"github.com/reimbazz/GF-Innovation-service/internal/domain/investment"
	"github.com/reimbazz/GF-Innovation-service/internal/routes"
)

// RoutesModule fornece os handlers HTTP
var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
	),
)

func newHandler(investmentSvc *investment.Service) *routes.Handler {
	return routes.NewHandler(investmentSvc)
}
