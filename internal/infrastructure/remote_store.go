package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/reimbazz/GF-Innovation-service/internal/contracts"
	"github.com/reimbazz/GF-Innovation-service/internal/domain/investment"
	appErrors "github.com/reimbazz/GF-Innovation-service/internal/errors"
	"github.com/reimbazz/GF-Innovation-service/internal/tracker"
)

// RemoteStore é o adaptador de persistência remoto: fala com a API de
// investimentos via HTTP/JSON. A tradução value<->amount acontece no pacote
// contracts em ambas as direções, em toda operação.
type RemoteStore struct {
	baseURL string
	client  *http.Client
}

var _ tracker.Backend = (*RemoteStore)(nil)

func NewRemoteStore(baseURL string) *RemoteStore {
	return &RemoteStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *RemoteStore) List(ctx context.Context) ([]investment.Investment, error) {
	resp, err := s.do(ctx, http.MethodGet, s.baseURL, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, s.failure(resp, "Erro ao carregar investimentos")
	}

	var records []contracts.InvestmentResponse
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, appErrors.ErrSerialization.WithError(err)
	}

	out := make([]investment.Investment, 0, len(records))
	for _, record := range records {
		inv, err := record.Investment()
		if err != nil {
			return nil, appErrors.ErrSerialization.WithError(err)
		}
		out = append(out, inv)
	}
	return out, nil
}

func (s *RemoteStore) Create(ctx context.Context, form investment.FormData) (*investment.Investment, error) {
	resp, err := s.do(ctx, http.MethodPost, s.baseURL, contracts.PayloadFromForm(form))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, s.failure(resp, "Erro ao cadastrar")
	}

	return decodeRecord(resp)
}

func (s *RemoteStore) Update(ctx context.Context, id string, form investment.FormData) (*investment.Investment, error) {
	url := fmt.Sprintf("%s/%s", s.baseURL, id)
	resp, err := s.do(ctx, http.MethodPut, url, contracts.PayloadFromForm(form))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, s.failure(resp, "Erro ao atualizar")
	}

	return decodeRecord(resp)
}

func (s *RemoteStore) Delete(ctx context.Context, id string) error {
	url := fmt.Sprintf("%s/%s", s.baseURL, id)
	resp, err := s.do(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return s.failure(resp, "Erro ao excluir")
	}
	return nil
}

func (s *RemoteStore) do(ctx context.Context, method, url string, body interface{}) (*http.Response, error) {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, appErrors.ErrSerialization.WithError(err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, appErrors.ErrTransport.WithError(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, appErrors.ErrTransport.WithError(err)
	}
	return resp, nil
}

// failure converte uma resposta não-2xx no erro da taxonomia da aplicação,
// preservando a primeira mensagem disponível do corpo.
func (s *RemoteStore) failure(resp *http.Response, fallback string) error {
	var body struct {
		Errors []string `json:"errors"`
		Error  string   `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)

	messages := body.Errors
	if len(messages) == 0 && body.Error != "" {
		messages = []string{body.Error}
	}
	joined := strings.Join(messages, ", ")
	if joined == "" {
		joined = fallback
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return appErrors.ErrInvestmentNotFound.WithMessage(joined)
	case resp.StatusCode >= http.StatusInternalServerError:
		return appErrors.ErrTransport.WithMessage(joined)
	default:
		return appErrors.ErrValidation.
			WithMessage(joined).
			WithDetails(map[string]interface{}{"errors": messages})
	}
}

func decodeRecord(resp *http.Response) (*investment.Investment, error) {
	var record contracts.InvestmentResponse
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, appErrors.ErrSerialization.WithError(err)
	}
	inv, err := record.Investment()
	if err != nil {
		return nil, appErrors.ErrSerialization.WithError(err)
	}
	return &inv, nil
}
