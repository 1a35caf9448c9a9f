package config

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	secrets map[string]string
	err     error
	calls   int
}

func (s *stubProvider) ListSecrets(_ context.Context, _ string) (map[string]string, error) {
	s.calls++
	return s.secrets, s.err
}

func TestRenderClient_ListSecrets(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/services/srv-1/secret-files", r.URL.Path)
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"secretFile":{"name":"meta_app_secret","content":"abc\n"}},{"secretFile":{"name":"auth_secret","content":"jwt"}}]`))
	}))
	defer server.Close()

	client := &RenderClient{APIKey: "key", BaseURL: server.URL, HTTPClient: server.Client()}

	secrets, err := client.ListSecrets(context.Background(), "srv-1")
	require.NoError(t, err)
	assert.Equal(t, "abc", secrets[SecretMetaAppSecret])
	assert.Equal(t, "jwt", secrets[SecretAuthSecret])
}

func TestRenderClient_ListSecrets_Error(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`unauthorized`))
	}))
	defer server.Close()

	client := &RenderClient{APIKey: "key", BaseURL: server.URL, HTTPClient: server.Client()}

	_, err := client.ListSecrets(context.Background(), "srv-1")
	assert.ErrorContains(t, err, "unauthorized")
}

func TestLoadSecrets(t *testing.T) {
	t.Run("sem service id não consulta o provedor", func(t *testing.T) {
		cfg := &Config{Meta: Meta{AppSecret: "env"}}
		provider := &stubProvider{}

		require.NoError(t, LoadSecrets(context.Background(), cfg, provider))
		assert.Equal(t, 0, provider.calls)
		assert.Equal(t, "env", cfg.Meta.AppSecret)
	})

	t.Run("sobrescreve segredos presentes", func(t *testing.T) {
		cfg := &Config{Render: Render{ServiceID: "srv"}, Meta: Meta{AppSecret: "env"}, Auth: Auth{Secret: "env-auth"}}
		provider := &stubProvider{secrets: map[string]string{SecretMetaAppSecret: "remote"}}

		require.NoError(t, LoadSecrets(context.Background(), cfg, provider))
		assert.Equal(t, "remote", cfg.Meta.AppSecret)
		assert.Equal(t, "env-auth", cfg.Auth.Secret)
	})

	t.Run("erro do provedor", func(t *testing.T) {
		cfg := &Config{Render: Render{ServiceID: "srv"}}
		provider := &stubProvider{err: errors.New("boom")}

		assert.Error(t, LoadSecrets(context.Background(), cfg, provider))
	})
}
