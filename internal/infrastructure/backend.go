package infrastructure

import (
	"fmt"

	"github.com/reimbazz/GF-Innovation-service/config"
	"github.com/reimbazz/GF-Innovation-service/internal/logger"
	"github.com/reimbazz/GF-Innovation-service/internal/tracker"
)

// NewBackend seleciona o adaptador de persistência do tracker conforme a
// configuração. Exatamente um adaptador fica ativo por instância.
func NewBackend(cfg *config.Config) (tracker.Backend, error) {
	switch cfg.Storage.Mode {
	case "remote":
		logger.Info().
			Str("mode", "remote").
			Str("base_url", cfg.Storage.BaseURL).
			Msg("Adaptador de persistência selecionado")
		return NewRemoteStore(cfg.Storage.BaseURL), nil
	case "local":
		logger.Info().
			Str("mode", "local").
			Str("path", cfg.Storage.LocalPath).
			Msg("Adaptador de persistência selecionado")
		return NewLocalStore(cfg.Storage.LocalPath, cfg.Storage.LocalLatency), nil
	default:
		return nil, fmt.Errorf("modo de armazenamento não suportado: %q", cfg.Storage.Mode)
	}
}
