package metaclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	metadomain "github.com/vfg2006/page-audit-api/infrastructure/integrator/meta/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxErrorBody limita o corpo copiado para mensagens de erro
const maxErrorBody = 512

// get monta a URL do objeto e executa a requisição autenticada
func (c *MetaClient) get(ctx context.Context, endpoint, path, token string, params url.Values) ([]byte, error) {
	if params == nil {
		params = url.Values{}
	}
	rawURL := fmt.Sprintf("%s/%s?%s", c.Cfg.Meta.URL, strings.TrimPrefix(path, "/"), params.Encode())

	return c.getURL(ctx, endpoint, rawURL, token)
}

// getURL executa a requisição para uma URL completa (usado também em paging.next)
func (c *MetaClient) getURL(ctx context.Context, endpoint, rawURL, token string) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("metaclient: url inválida: %w", err)
	}

	q := u.Query()
	if q.Get("access_token") == "" {
		q.Set("access_token", token)
	}
	if proof := AppSecretProof(token, c.Cfg.Meta.AppSecret); proof != "" {
		q.Set("appsecret_proof", proof)
	}
	u.RawQuery = q.Encode()

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("metaclient: aguardando rate limit: %w", err)
	}

	started := time.Now()
	result, err := c.breaker.Execute(func() (any, error) {
		return c.do(ctx, u.String())
	})
	if err != nil {
		c.metrics.ObserveGraphRequest(endpoint, outcome(err), started)
		return nil, err
	}

	c.metrics.ObserveGraphRequest(endpoint, "ok", started)

	return result.([]byte), nil
}

func (c *MetaClient) do(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("metaclient: erro ao fazer a requisição: %w", err)
	}
	defer resp.Body.Close()

	return HandleResponse(resp)
}

// HandleResponse lê o corpo e converte payloads de erro do Graph em *GraphError
func HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("metaclient: erro ao ler resposta: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	var errorResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err == nil && (errorResp.Error.Code != 0 || errorResp.Error.Message != "") {
		return nil, &metadomain.GraphError{StatusCode: resp.StatusCode, Response: errorResp}
	}

	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}

	return nil, fmt.Errorf("metaclient: erro na resposta da API. Status: %d, Corpo: %s", resp.StatusCode, string(body))
}

func outcome(err error) string {
	var graphErr *metadomain.GraphError
	switch {
	case errors.As(err, &graphErr) && graphErr.IsPermissionDenied():
		return "permission_denied"
	case errors.As(err, &graphErr) && graphErr.IsTokenExpired():
		return "token_expired"
	case errors.As(err, &graphErr):
		return "graph_error"
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "breaker_open"
	default:
		return "error"
	}
}
