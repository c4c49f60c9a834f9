package fx

import (
	"time"

	"go.uber.org/fx"

	"github.com/reimbazz/GF-Innovation-service/internal/middleware"
)

var MiddlewareModule = fx.Module("middleware",
	fx.Provide(
		newAPIRateLimiter,
	),
)

func newAPIRateLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(100, time.Minute)
}
