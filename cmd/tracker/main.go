package main

import (
	"context"
	"time"

	"go.uber.org/fx"

	appfx "github.com/reimbazz/GF-Innovation-service/internal/fx"
	"github.com/reimbazz/GF-Innovation-service/internal/logger"
	"github.com/reimbazz/GF-Innovation-service/internal/tracker"
)

// Carrega a carteira pelo adaptador configurado (STORAGE_MODE) e registra o
// resumo agregado antes de encerrar.
func main() {
	fx.New(
		appfx.ConfigModule,
		appfx.TrackerModule,
		fx.Invoke(run),
	).Run()
}

func run(lc fx.Lifecycle, store *tracker.Store, shutdowner fx.Shutdowner) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer func() { _ = shutdowner.Shutdown() }()

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := store.Load(ctx); err != nil {
					return
				}

				summary := store.Summary()
				event := logger.Info().
					Float64("total", summary.TotalAmount).
					Int("investimentos", summary.TotalInvestments)
				for tipo, amount := range summary.DistributionByType {
					event = event.Float64(string(tipo), amount)
				}
				event.Msg("Resumo da carteira")
			}()
			return nil
		},
	})
}
