package config

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const renderBaseURL = "https://api.render.com/v1"

// Nomes dos secret files que sobrescrevem a configuração
const (
	SecretMetaAppSecret = "meta_app_secret"
	SecretAuthSecret    = "auth_secret"
)

// SecretProvider fornece os segredos dos provedores, resolvidos uma única vez na inicialização
type SecretProvider interface {
	ListSecrets(ctx context.Context, serviceID string) (map[string]string, error)
}

type RenderClient struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

func NewRenderClient(config *Config) *RenderClient {
	return &RenderClient{
		APIKey:     config.Render.APIKey,
		BaseURL:    renderBaseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *RenderClient) ListSecrets(ctx context.Context, serviceID string) (map[string]string, error) {
	url := fmt.Sprintf("%s/services/%s/secret-files?limit=100", c.BaseURL, serviceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("config: error list secrets: %s", body)
	}

	var response []struct {
		SecretFile struct {
			Content string `json:"content"`
			Name    string `json:"name"`
		} `json:"secretFile"`
		Cursor string `json:"cursor"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, err
	}

	secretsMap := make(map[string]string)
	for _, sf := range response {
		secretsMap[sf.SecretFile.Name] = strings.TrimSpace(sf.SecretFile.Content)
	}

	return secretsMap, nil
}

// LoadSecrets sobrescreve os segredos do config com os valores do provedor.
// Sem service id configurado, mantém os valores vindos do ambiente.
func LoadSecrets(ctx context.Context, cfg *Config, provider SecretProvider) error {
	if cfg.Render.ServiceID == "" || provider == nil {
		logrus.Debug("config: nenhum provedor de segredos configurado, usando variáveis de ambiente")
		return nil
	}

	secrets, err := provider.ListSecrets(ctx, cfg.Render.ServiceID)
	if err != nil {
		return fmt.Errorf("config: erro ao carregar segredos: %w", err)
	}

	if v, ok := secrets[SecretMetaAppSecret]; ok && v != "" {
		cfg.Meta.AppSecret = v
	}
	if v, ok := secrets[SecretAuthSecret]; ok && v != "" {
		cfg.Auth.Secret = v
	}

	logrus.WithField("count", len(secrets)).Info("config: segredos carregados do provedor")

	return nil
}
