package tracker_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/reimbazz/GF-Innovation-service/internal/domain/investment"
	appErrors "github.com/reimbazz/GF-Innovation-service/internal/errors"
	"github.com/reimbazz/GF-Innovation-service/internal/notify"
	"github.com/reimbazz/GF-Innovation-service/internal/tracker"
)

type fakeBackend struct {
	listFn   func(ctx context.Context) ([]investment.Investment, error)
	createFn func(ctx context.Context, form investment.FormData) (*investment.Investment, error)
	updateFn func(ctx context.Context, id string, form investment.FormData) (*investment.Investment, error)
	deleteFn func(ctx context.Context, id string) error
}

func (f *fakeBackend) List(ctx context.Context) ([]investment.Investment, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return nil, nil
}

func (f *fakeBackend) Create(ctx context.Context, form investment.FormData) (*investment.Investment, error) {
	if f.createFn != nil {
		return f.createFn(ctx, form)
	}
	return nil, nil
}

func (f *fakeBackend) Update(ctx context.Context, id string, form investment.FormData) (*investment.Investment, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, id, form)
	}
	return nil, nil
}

func (f *fakeBackend) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type recordingNotifier struct {
	mu            sync.Mutex
	notifications []notify.Notification
}

func (r *recordingNotifier) Notify(n notify.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, n)
}

func (r *recordingNotifier) all() []notify.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]notify.Notification, len(r.notifications))
	copy(out, r.notifications)
	return out
}

func mustDate(t *testing.T, value string) investment.Date {
	t.Helper()
	date, err := investment.ParseDate(value)
	if err != nil {
		t.Fatalf("unexpected error parsing date: %v", err)
	}
	return date
}

func fundAForm(t *testing.T) investment.FormData {
	t.Helper()
	return investment.FormData{
		Name:   "Fund A",
		Type:   investment.TypeFundo,
		Amount: 1000,
		Date:   mustDate(t, "2024-01-01"),
	}
}

func echoBackend(nextID string) *fakeBackend {
	return &fakeBackend{
		createFn: func(ctx context.Context, form investment.FormData) (*investment.Investment, error) {
			now := time.Now()
			return &investment.Investment{
				Id:        nextID,
				Name:      form.Name,
				Type:      form.Type,
				Amount:    form.Amount,
				Date:      form.Date,
				CreatedAt: now,
				UpdatedAt: now,
			}, nil
		},
		updateFn: func(ctx context.Context, id string, form investment.FormData) (*investment.Investment, error) {
			return &investment.Investment{
				Id:        id,
				Name:      form.Name,
				Type:      form.Type,
				Amount:    form.Amount,
				Date:      form.Date,
				UpdatedAt: time.Now(),
			}, nil
		},
	}
}

func TestStoreLoad(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("success fills the list and ends ready", func(t *testing.T) {
		t.Parallel()

		backend := &fakeBackend{
			listFn: func(ctx context.Context) ([]investment.Investment, error) {
				return []investment.Investment{
					{Id: "a", Name: "PETR4", Type: investment.TypeAcao, Amount: 2500},
				}, nil
			},
		}
		notifier := &recordingNotifier{}
		store := tracker.NewStore(backend, notifier)

		if store.Status() != tracker.StatusIdle {
			t.Fatalf("expected idle before load, got %s", store.Status())
		}

		if err := store.Load(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if store.Status() != tracker.StatusReady {
			t.Fatalf("expected ready, got %s", store.Status())
		}
		if len(store.Investments()) != 1 {
			t.Fatalf("expected 1 investment, got %d", len(store.Investments()))
		}
		if len(notifier.all()) != 0 {
			t.Fatalf("expected no notification on success, got %v", notifier.all())
		}
	})

	t.Run("failure keeps list empty, ends ready and notifies", func(t *testing.T) {
		t.Parallel()

		backend := &fakeBackend{
			listFn: func(ctx context.Context) ([]investment.Investment, error) {
				return nil, appErrors.ErrTransport
			},
		}
		notifier := &recordingNotifier{}
		store := tracker.NewStore(backend, notifier)

		if err := store.Load(ctx); err == nil {
			t.Fatalf("expected error")
		}
		if store.Status() != tracker.StatusReady {
			t.Fatalf("expected ready even on failure, got %s", store.Status())
		}
		if len(store.Investments()) != 0 {
			t.Fatalf("expected empty list, got %v", store.Investments())
		}

		notifications := notifier.all()
		if len(notifications) != 1 {
			t.Fatalf("expected exactly one notification, got %d", len(notifications))
		}
		if notifications[0].Variant != notify.VariantDestructive {
			t.Fatalf("expected destructive notification, got %v", notifications[0])
		}
	})
}

func TestStoreCreate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("validation failure never reaches the backend", func(t *testing.T) {
		t.Parallel()

		called := false
		backend := &fakeBackend{
			createFn: func(ctx context.Context, form investment.FormData) (*investment.Investment, error) {
				called = true
				return nil, nil
			},
		}
		notifier := &recordingNotifier{}
		store := tracker.NewStore(backend, notifier)

		form := fundAForm(t)
		form.Amount = 0

		created, fieldErrs, err := store.Create(ctx, form)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created != nil {
			t.Fatalf("expected no record, got %+v", created)
		}
		if len(fieldErrs) == 0 {
			t.Fatalf("expected field errors")
		}
		if called {
			t.Fatalf("backend must not be called on validation failure")
		}
		if len(notifier.all()) != 0 {
			t.Fatalf("validation failure must not notify, got %v", notifier.all())
		}
	})

	t.Run("success appends returned record and notifies once", func(t *testing.T) {
		t.Parallel()

		notifier := &recordingNotifier{}
		store := tracker.NewStore(echoBackend("srv-1"), notifier)

		created, fieldErrs, err := store.Create(ctx, fundAForm(t))
		if err != nil || len(fieldErrs) != 0 {
			t.Fatalf("unexpected failure: %v %v", err, fieldErrs)
		}
		if created.Id != "srv-1" {
			t.Fatalf("expected backend-assigned id, got %q", created.Id)
		}

		list := store.Investments()
		if len(list) != 1 || list[0].Id != "srv-1" {
			t.Fatalf("expected record in store, got %v", list)
		}

		notifications := notifier.all()
		if len(notifications) != 1 {
			t.Fatalf("expected exactly one notification, got %d", len(notifications))
		}
		if notifications[0].Title != "Investimento cadastrado!" {
			t.Fatalf("unexpected notification: %+v", notifications[0])
		}
	})

	t.Run("backend failure leaves the store untouched", func(t *testing.T) {
		t.Parallel()

		backend := &fakeBackend{
			createFn: func(ctx context.Context, form investment.FormData) (*investment.Investment, error) {
				return nil, appErrors.ErrValidation.WithMessage("nome já cadastrado")
			},
		}
		notifier := &recordingNotifier{}
		store := tracker.NewStore(backend, notifier)

		_, _, err := store.Create(ctx, fundAForm(t))
		if err == nil {
			t.Fatalf("expected error")
		}
		if len(store.Investments()) != 0 {
			t.Fatalf("store must not change on failure")
		}

		notifications := notifier.all()
		if len(notifications) != 1 {
			t.Fatalf("expected exactly one notification, got %d", len(notifications))
		}
		if notifications[0].Title != "nome já cadastrado" || notifications[0].Variant != notify.VariantDestructive {
			t.Fatalf("expected failure message in notification, got %+v", notifications[0])
		}
	})
}

func TestStoreUpdate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("stale id after confirmed success surfaces not found", func(t *testing.T) {
		t.Parallel()

		notifier := &recordingNotifier{}
		store := tracker.NewStore(echoBackend(""), notifier)

		_, _, err := store.Update(ctx, "ghost", fundAForm(t))
		if err == nil {
			t.Fatalf("expected error for stale id")
		}
		appErr, _ := appErrors.AsAppError(err)
		if appErr.Code != appErrors.ErrInvestmentNotFound.Code {
			t.Fatalf("expected not found, got %s", appErr.Code)
		}

		notifications := notifier.all()
		if len(notifications) != 1 || notifications[0].Variant != notify.VariantDestructive {
			t.Fatalf("expected one destructive notification, got %v", notifications)
		}
	})
}

func TestStoreScenarios(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("create Fund A then summarize", func(t *testing.T) {
		t.Parallel()

		store := tracker.NewStore(echoBackend("id-1"), &recordingNotifier{})

		if _, _, err := store.Create(ctx, fundAForm(t)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		summary := store.Summary()
		if summary.TotalAmount != 1000 || summary.TotalInvestments != 1 {
			t.Fatalf("unexpected summary: %+v", summary)
		}
		if summary.DistributionByType[investment.TypeFundo] != 1000 {
			t.Fatalf("expected Fundo=1000, got %v", summary.DistributionByType)
		}
	})

	t.Run("delete the only record zeroes the summary", func(t *testing.T) {
		t.Parallel()

		store := tracker.NewStore(echoBackend("id-1"), &recordingNotifier{})

		created, _, err := store.Create(ctx, fundAForm(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := store.Delete(ctx, created.Id); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		summary := store.Summary()
		if summary.TotalAmount != 0 || summary.TotalInvestments != 0 || len(summary.DistributionByType) != 0 {
			t.Fatalf("expected zeroed summary, got %+v", summary)
		}
	})

	t.Run("update amount from 1000 to 500 adjusts the distribution", func(t *testing.T) {
		t.Parallel()

		store := tracker.NewStore(echoBackend("id-1"), &recordingNotifier{})

		created, _, err := store.Create(ctx, fundAForm(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		before := store.Summary()

		form := fundAForm(t)
		form.Amount = 500
		if _, _, err := store.Update(ctx, created.Id, form); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		after := store.Summary()
		if before.TotalAmount-after.TotalAmount != 500 {
			t.Fatalf("expected total to drop by 500, got %f -> %f", before.TotalAmount, after.TotalAmount)
		}
		drop := before.DistributionByType[investment.TypeFundo] - after.DistributionByType[investment.TypeFundo]
		if drop != 500 {
			t.Fatalf("expected Fundo distribution to drop by 500, got %f", drop)
		}
	})

	t.Run("delete failure keeps the record and notifies", func(t *testing.T) {
		t.Parallel()

		backend := echoBackend("id-1")
		backend.deleteFn = func(ctx context.Context, id string) error {
			return appErrors.ErrInvestmentNotFound
		}
		notifier := &recordingNotifier{}
		store := tracker.NewStore(backend, notifier)

		created, _, err := store.Create(ctx, fundAForm(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := store.Delete(ctx, created.Id); err == nil {
			t.Fatalf("expected error")
		}
		if len(store.Investments()) != 1 {
			t.Fatalf("store must keep the record on failure")
		}
		// uma notificação da criação e uma da falha de exclusão
		if len(notifier.all()) != 2 {
			t.Fatalf("expected two notifications, got %v", notifier.all())
		}
	})
}
