package contracts

import (
	"time"

	"github.com/reimbazz/GF-Innovation-service/internal/domain/investment"
)

// InvestmentPayload é o corpo de criação/atualização da API. No contrato de
// rede o campo de montante se chama "value"; o domínio só conhece "amount" e
// a tradução acontece exclusivamente nesta fronteira.
type InvestmentPayload struct {
	Name  string  `json:"name" binding:"required,max=100"`
	Type  string  `json:"type" binding:"required,oneof=Ação Fundo Título ETF Crypto"`
	Value float64 `json:"value" binding:"required,gt=0"`
	Date  string  `json:"date" binding:"required,datetime=2006-01-02"`
}

func (p InvestmentPayload) FormData() (investment.FormData, error) {
	date, err := investment.ParseDate(p.Date)
	if err != nil {
		return investment.FormData{}, err
	}
	return investment.FormData{
		Name:   p.Name,
		Type:   investment.Types(p.Type),
		Amount: p.Value,
		Date:   date,
	}, nil
}

func PayloadFromForm(form investment.FormData) InvestmentPayload {
	return InvestmentPayload{
		Name:  form.Name,
		Type:  string(form.Type),
		Value: form.Amount,
		Date:  form.Date.String(),
	}
}

type InvestmentResponse struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Value     float64   `json:"value"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ResponseFromInvestment(inv *investment.Investment) InvestmentResponse {
	return InvestmentResponse{
		Id:        inv.Id,
		Name:      inv.Name,
		Type:      string(inv.Type),
		Value:     inv.Amount,
		Date:      inv.Date.String(),
		CreatedAt: inv.CreatedAt,
		UpdatedAt: inv.UpdatedAt,
	}
}

func (r InvestmentResponse) Investment() (investment.Investment, error) {
	date, err := investment.ParseDate(r.Date)
	if err != nil {
		return investment.Investment{}, err
	}
	return investment.Investment{
		Id:        r.Id,
		Name:      r.Name,
		Type:      investment.Types(r.Type),
		Amount:    r.Value,
		Date:      date,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}, nil
}

// ErrorsResponse é o envelope de falha de criação/atualização ({errors: []}).
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

// ErrorResponse é o envelope de falha de exclusão ({error: "..."}).
type ErrorResponse struct {
	Error string `json:"error"`
}
