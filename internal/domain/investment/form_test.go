package investment_test

import (
	"testing"
	"time"

	"github.com/reimbazz/GF-Innovation-service/internal/domain/investment"
)

func validForm() investment.FormData {
	return investment.FormData{
		Name:   "Tesouro Selic 2029",
		Type:   investment.TypeTitulo,
		Amount: 5000,
		Date:   investment.NewDate(time.Now().AddDate(0, 0, -1)),
	}
}

func TestValidateForm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(form *investment.FormData)
		wantField string
	}{
		{
			name:   "valid form",
			mutate: func(form *investment.FormData) {},
		},
		{
			name: "date equal to today is accepted",
			mutate: func(form *investment.FormData) {
				form.Date = investment.Today()
			},
		},
		{
			name: "empty name",
			mutate: func(form *investment.FormData) {
				form.Name = ""
			},
			wantField: "name",
		},
		{
			name: "whitespace only name",
			mutate: func(form *investment.FormData) {
				form.Name = "   "
			},
			wantField: "name",
		},
		{
			name: "unknown type",
			mutate: func(form *investment.FormData) {
				form.Type = investment.Types("Imóvel")
			},
			wantField: "type",
		},
		{
			name: "zero amount",
			mutate: func(form *investment.FormData) {
				form.Amount = 0
			},
			wantField: "amount",
		},
		{
			name: "negative amount",
			mutate: func(form *investment.FormData) {
				form.Amount = -10
			},
			wantField: "amount",
		},
		{
			name: "missing date",
			mutate: func(form *investment.FormData) {
				form.Date = investment.Date{}
			},
			wantField: "date",
		},
		{
			name: "date one day in the future",
			mutate: func(form *investment.FormData) {
				form.Date = investment.NewDate(time.Now().AddDate(0, 0, 1))
			},
			wantField: "date",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			form := validForm()
			tt.mutate(&form)

			errs := investment.ValidateForm(form)
			if tt.wantField == "" {
				if len(errs) != 0 {
					t.Fatalf("expected no errors, got %v", errs)
				}
				return
			}

			if len(errs) == 0 {
				t.Fatalf("expected error on field %s", tt.wantField)
			}
			found := false
			for _, fieldErr := range errs {
				if fieldErr.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Fatalf("expected error on field %s, got %v", tt.wantField, errs)
			}
		})
	}
}

func TestValidateFormRecomputesErrors(t *testing.T) {
	t.Parallel()

	form := validForm()
	form.Name = ""
	if errs := investment.ValidateForm(form); len(errs) == 0 {
		t.Fatalf("expected error for empty name")
	}

	// corrigir o campo limpa o erro na próxima validação
	form.Name = "PETR4"
	if errs := investment.ValidateForm(form); len(errs) != 0 {
		t.Fatalf("expected no errors after fix, got %v", errs)
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	date, err := investment.ParseDate("2024-01-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if date.String() != "2024-01-01" {
		t.Fatalf("expected 2024-01-01, got %s", date.String())
	}

	if _, err := investment.ParseDate("01/01/2024"); err == nil {
		t.Fatalf("expected error for invalid format")
	}
}
