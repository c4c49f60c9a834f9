package fx

import (
	"go.uber.org/fx"

	"github.com/reimbazz/GF-Innovation-service/config"
	"github.com/reimbazz/GF-Innovation-service/internal/infrastructure"
	"github.com/reimbazz/GF-Innovation-service/internal/notify"
	"github.com/reimbazz/GF-Innovation-service/internal/tracker"
)

// TrackerModule monta o lado cliente: adaptador de persistência conforme
// STORAGE_MODE, notificador e o Store da sessão.
var TrackerModule = fx.Module("tracker",
	fx.Provide(
		newBackend,
		newNotifier,
		newStore,
	),
)

func newBackend(cfg *config.Config) (tracker.Backend, error) {
	return infrastructure.NewBackend(cfg)
}

func newNotifier() notify.Notifier {
	return notify.LogNotifier{}
}

func newStore(backend tracker.Backend, notifier notify.Notifier) *tracker.Store {
	return tracker.NewStore(backend, notifier)
}
