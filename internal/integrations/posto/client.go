package posto

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Logger interface de logging usada pelo cliente
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client cliente HTTP do gateway de planilhas do posto de saúde.
// A planilha geral é de outro sistema: este cliente só lê a grade e
// altera células pontuais, nunca a estrutura.
type Client struct {
	baseURL    string
	planilhaID string
	httpClient *http.Client
	log        Logger
}

// NewClient cria o cliente do gateway do posto
func NewClient(baseURL, planilhaID string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		planilhaID: planilhaID,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ListAbas devolve os nomes de todas as abas da planilha do posto
func (c *Client) ListAbas(ctx context.Context) ([]string, error) {
	endpoint := fmt.Sprintf("%s/planilhas/%s/abas", c.baseURL, url.PathEscape(c.planilhaID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var out abasResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return out.Abas, nil
}

// GetValores devolve a grade de valores exibidos de uma aba.
// Aba inexistente resulta em ErrAbaNotFound.
func (c *Client) GetValores(ctx context.Context, aba string) ([][]string, error) {
	endpoint := fmt.Sprintf("%s/planilhas/%s/abas/%s/valores",
		c.baseURL, url.PathEscape(c.planilhaID), url.PathEscape(aba))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// segue para o decode
	case http.StatusNotFound:
		return nil, ErrAbaNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var out valoresResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return out.Valores, nil
}

// UpdateLinha grava células pontuais de uma linha da aba
// (linha 1-based, chave do mapa = número da coluna 1-based)
func (c *Client) UpdateLinha(ctx context.Context, aba string, linha int, celulas map[int]string) error {
	endpoint := fmt.Sprintf("%s/planilhas/%s/abas/%s/linhas/%d",
		c.baseURL, url.PathEscape(c.planilhaID), url.PathEscape(aba), linha)

	payload, err := json.Marshal(atualizarLinhaRequest{Celulas: celulas})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrAbaNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}
