package investment

import "strings"

// FormData carrega os campos editáveis de um investimento, como preenchidos
// no formulário. A validação acontece antes de qualquer chamada ao adaptador
// de persistência.
type FormData struct {
	Name   string
	Type   Types
	Amount float64
	Date   Date
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateForm revalida todos os campos a cada tentativa de submissão; erros
// anteriores nunca são reaproveitados. A comparação de data usa o momento da
// validação: hoje é aceito, amanhã não.
func ValidateForm(form FormData) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(form.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "nome é obrigatório"})
	}

	if !form.Type.IsValid() {
		errs = append(errs, FieldError{Field: "type", Message: "tipo de investimento inválido"})
	}

	if form.Amount <= 0 {
		errs = append(errs, FieldError{Field: "amount", Message: "valor deve ser maior que zero"})
	}

	if form.Date.IsZero() {
		errs = append(errs, FieldError{Field: "date", Message: "data é obrigatória"})
	} else if form.Date.After(Today()) {
		errs = append(errs, FieldError{Field: "date", Message: "data não pode ser futura"})
	}

	return errs
}

// Messages converte erros de campo nas mensagens planas usadas pela API.
func Messages(errs []FieldError) []string {
	messages := make([]string, 0, len(errs))
	for _, fieldErr := range errs {
		messages = append(messages, fieldErr.Message)
	}
	return messages
}
