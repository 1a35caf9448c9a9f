package metaclient

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// AppSecretProof calcula o appsecret_proof exigido pelo Graph quando o app
// tem "Require App Secret" habilitado: HMAC-SHA256 do token com o segredo do app.
// Sem segredo configurado retorna string vazia e o parâmetro não é enviado.
func AppSecretProof(token, appSecret string) string {
	if token == "" || appSecret == "" {
		return ""
	}

	mac := hmac.New(sha256.New, []byte(appSecret))
	mac.Write([]byte(token))

	return hex.EncodeToString(mac.Sum(nil))
}
