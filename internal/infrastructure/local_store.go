package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"math/rand/v2"
	"os"
	"sync"
	"time"

	"github.com/reimbazz/GF-Innovation-service/internal/domain/investment"
	appErrors "github.com/reimbazz/GF-Innovation-service/internal/errors"
	"github.com/reimbazz/GF-Innovation-service/internal/pkg"
	"github.com/reimbazz/GF-Innovation-service/internal/tracker"
)

const localIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// LocalStore é o adaptador de persistência local: um único documento JSON em
// disco guarda a lista inteira, reescrita por completo a cada mutação. Na
// primeira leitura sem arquivo, um conjunto de exemplo é semeado. Ids são
// strings aleatórias curtas, únicas apenas dentro do conjunto local.
type LocalStore struct {
	mu      sync.Mutex
	path    string
	latency time.Duration
}

var _ tracker.Backend = (*LocalStore)(nil)

func NewLocalStore(path string, latency time.Duration) *LocalStore {
	return &LocalStore{path: path, latency: latency}
}

func seedInvestments() []investment.Investment {
	date := func(value string) investment.Date {
		parsed, _ := investment.ParseDate(value)
		return parsed
	}
	return []investment.Investment{
		{Id: "k2j9x4m1a", Name: "Tesouro Selic 2029", Type: investment.TypeTitulo, Amount: 5000, Date: date("2024-01-15")},
		{Id: "p7q3w8n5b", Name: "PETR4", Type: investment.TypeAcao, Amount: 2500, Date: date("2024-02-10")},
		{Id: "z4t6v1c8d", Name: "IVVB11", Type: investment.TypeETF, Amount: 1800, Date: date("2024-03-05")},
	}
}

func (s *LocalStore) List(ctx context.Context) ([]investment.Investment, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *LocalStore) Create(ctx context.Context, form investment.FormData) (*investment.Investment, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load()
	if err != nil {
		return nil, err
	}

	now := pkg.SetTimestamps()
	created := investment.Investment{
		Id:        newLocalID(list),
		Name:      form.Name,
		Type:      form.Type,
		Amount:    form.Amount,
		Date:      form.Date,
		CreatedAt: now,
		UpdatedAt: now,
	}

	list = append(list, created)
	if err := s.save(list); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *LocalStore) Update(ctx context.Context, id string, form investment.FormData) (*investment.Investment, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range list {
		if list[i].Id != id {
			continue
		}
		list[i].Name = form.Name
		list[i].Type = form.Type
		list[i].Amount = form.Amount
		list[i].Date = form.Date
		list[i].UpdatedAt = pkg.SetTimestamps()

		if err := s.save(list); err != nil {
			return nil, err
		}
		updated := list[i]
		return &updated, nil
	}

	return nil, appErrors.ErrInvestmentNotFound
}

func (s *LocalStore) Delete(ctx context.Context, id string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load()
	if err != nil {
		return err
	}

	for i := range list {
		if list[i].Id != id {
			continue
		}
		list = append(list[:i], list[i+1:]...)
		return s.save(list)
	}

	return appErrors.ErrInvestmentNotFound
}

// wait simula a latência assíncrona do armazenamento original, respeitando
// cancelamento do contexto.
func (s *LocalStore) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *LocalStore) load() ([]investment.Investment, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		seeds := seedInvestments()
		if err := s.save(seeds); err != nil {
			return nil, err
		}
		return seeds, nil
	}
	if err != nil {
		return nil, appErrors.ErrTransport.WithError(err)
	}

	var list []investment.Investment
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, appErrors.ErrSerialization.WithError(err)
	}
	return list, nil
}

func (s *LocalStore) save(list []investment.Investment) error {
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return appErrors.ErrSerialization.WithError(err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return appErrors.ErrTransport.WithError(err)
	}
	return nil
}

// newLocalID sorteia um id curto e repete o sorteio enquanto houver colisão
// dentro do conjunto local.
func newLocalID(list []investment.Investment) string {
	existing := make(map[string]bool, len(list))
	for _, inv := range list {
		existing[inv.Id] = true
	}

	for {
		id := make([]byte, 9)
		for i := range id {
			id[i] = localIDAlphabet[rand.IntN(len(localIDAlphabet))]
		}
		if !existing[string(id)] {
			return string(id)
		}
	}
}
