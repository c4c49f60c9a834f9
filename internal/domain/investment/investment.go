package investment

import (
	"fmt"
	"time"
)

// Types enumera as categorias de investimento aceitas pela aplicação.
// Os valores são os rótulos exibidos no frontend e gravados na persistência.
type Types string

const (
	TypeAcao   Types = "Ação"
	TypeFundo  Types = "Fundo"
	TypeTitulo Types = "Título"
	TypeETF    Types = "ETF"
	TypeCrypto Types = "Crypto"
)

func ValidTypes() []Types {
	return []Types{TypeAcao, TypeFundo, TypeTitulo, TypeETF, TypeCrypto}
}

func (t Types) IsValid() bool {
	switch t {
	case TypeAcao, TypeFundo, TypeTitulo, TypeETF, TypeCrypto:
		return true
	}
	return false
}

type Investment struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Type      Types     `json:"type"`
	Amount    float64   `json:"amount"`
	Date      Date      `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Date é uma data de calendário sem componente de hora, serializada em JSON
// no formato "2006-01-02".
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	year, month, day := t.Date()
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(value string) (Date, error) {
	parsed, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return Date{}, fmt.Errorf("data inválida %q: %w", value, err)
	}
	return Date{parsed}, nil
}

func Today() Date {
	return NewDate(time.Now())
}

func (d Date) String() string {
	return d.Format(time.DateOnly)
}

func (d Date) After(other Date) bool {
	return d.Time.After(other.Time)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" || string(data) == `""` {
		*d = Date{}
		return nil
	}
	parsed, err := time.Parse(`"`+time.DateOnly+`"`, string(data))
	if err != nil {
		return err
	}
	*d = Date{parsed}
	return nil
}
