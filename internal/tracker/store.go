package tracker

import (
	"context"
	"fmt"
	"sync"

	"github.com/reimbazz/GF-Innovation-service/internal/domain/investment"
	appErrors "github.com/reimbazz/GF-Innovation-service/internal/errors"
	"github.com/reimbazz/GF-Innovation-service/internal/notify"
)

type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
)

// Backend é o contrato do adaptador de persistência: quatro operações
// assíncronas contra o armazenamento de origem (API remota ou arquivo
// local). Nenhuma operação é repetida automaticamente.
type Backend interface {
	List(ctx context.Context) ([]investment.Investment, error)
	Create(ctx context.Context, form investment.FormData) (*investment.Investment, error)
	Update(ctx context.Context, id string, form investment.FormData) (*investment.Investment, error)
	Delete(ctx context.Context, id string) error
}

// Store é o dono exclusivo da lista de investimentos da sessão. Mutações só
// são aplicadas depois que o Backend confirma sucesso; em falha a lista fica
// intocada e uma única notificação é emitida. Erros de validação local são
// devolvidos por campo, sem notificação e sem tocar o Backend.
type Store struct {
	mu       sync.RWMutex
	backend  Backend
	notifier notify.Notifier

	status      Status
	investments []investment.Investment
}

func NewStore(backend Backend, notifier notify.Notifier) *Store {
	return &Store{
		backend:  backend,
		notifier: notifier,
		status:   StatusIdle,
	}
}

func (s *Store) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Investments devolve uma cópia da lista corrente.
func (s *Store) Investments() []investment.Investment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]investment.Investment, len(s.investments))
	copy(out, s.investments)
	return out
}

// Summary recalcula o resumo a partir da lista corrente a cada chamada.
func (s *Store) Summary() investment.Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return investment.Summarize(s.investments)
}

// Load busca todos os registros do Backend. O estado termina em ready mesmo
// em falha; nesse caso a lista permanece vazia e a falha já foi notificada.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	s.status = StatusLoading
	s.mu.Unlock()

	list, err := s.backend.List(ctx)

	s.mu.Lock()
	s.status = StatusReady
	if err == nil {
		s.investments = list
	}
	s.mu.Unlock()

	if err != nil {
		s.notifier.Notify(notify.Notification{
			Title:   "Erro ao carregar investimentos",
			Variant: notify.VariantDestructive,
		})
		return err
	}
	return nil
}

func (s *Store) Create(ctx context.Context, form investment.FormData) (*investment.Investment, []investment.FieldError, error) {
	if errs := investment.ValidateForm(form); len(errs) > 0 {
		return nil, errs, nil
	}

	created, err := s.backend.Create(ctx, form)
	if err != nil {
		s.notifyFailure(err)
		return nil, nil, err
	}

	s.mu.Lock()
	s.investments = append(s.investments, *created)
	s.mu.Unlock()

	s.notifier.Notify(notify.Notification{
		Title:       "Investimento cadastrado!",
		Description: fmt.Sprintf("%s foi adicionado com sucesso.", form.Name),
		Variant:     notify.VariantDefault,
	})
	return created, nil, nil
}

func (s *Store) Update(ctx context.Context, id string, form investment.FormData) (*investment.Investment, []investment.FieldError, error) {
	if errs := investment.ValidateForm(form); len(errs) > 0 {
		return nil, errs, nil
	}

	updated, err := s.backend.Update(ctx, id, form)
	if err != nil {
		s.notifyFailure(err)
		return nil, nil, err
	}

	s.mu.Lock()
	replaced := false
	for i := range s.investments {
		if s.investments[i].Id == id {
			s.investments[i] = *updated
			replaced = true
			break
		}
	}
	s.mu.Unlock()

	// Id confirmado pelo Backend mas ausente da lista local: cliente
	// divergiu do armazenamento. Sinalizado em vez de ignorado.
	if !replaced {
		err := appErrors.ErrInvestmentNotFound
		s.notifyFailure(err)
		return nil, nil, err
	}

	s.notifier.Notify(notify.Notification{
		Title:       "Investimento atualizado!",
		Description: fmt.Sprintf("%s foi atualizado com sucesso.", form.Name),
		Variant:     notify.VariantDefault,
	})
	return updated, nil, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.backend.Delete(ctx, id); err != nil {
		s.notifyFailure(err)
		return err
	}

	s.mu.Lock()
	for i := range s.investments {
		if s.investments[i].Id == id {
			s.investments = append(s.investments[:i], s.investments[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.notifier.Notify(notify.Notification{
		Title:       "Investimento excluído!",
		Description: "Investimento removido com sucesso.",
		Variant:     notify.VariantDestructive,
	})
	return nil
}

func (s *Store) notifyFailure(err error) {
	s.notifier.Notify(notify.Notification{
		Title:   appErrors.FromError(err).Message,
		Variant: notify.VariantDestructive,
	})
}
