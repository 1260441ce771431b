package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Damandeep1313/Kling2.0/internal/domain"
)

// Claims carried by a provider bearer token. The provider authenticates the
// caller by the access key in `iss` and the HMAC signature made with the
// matching secret key.
type Claims struct {
	Issuer    string `json:"iss"`
	ExpiresAt int64  `json:"exp"`
	NotBefore int64  `json:"nbf"`
}

const (
	// tokenTTL is the provider-mandated token lifetime.
	tokenTTL = 1800 * time.Second
	// clockSkew backdates nbf to tolerate small clock drift.
	clockSkew = 5 * time.Second
)

// Sign issues a compact HS256 JWT from caller-supplied key material. A fresh
// token is issued per inbound request and reused for every remote call
// belonging to that request.
func Sign(accessKey, secretKey string) (string, error) {
	return signAt(accessKey, secretKey, time.Now())
}

func signAt(accessKey, secretKey string, at time.Time) (string, error) {
	if accessKey == "" || secretKey == "" {
		return "", domain.ErrMissingCredentials
	}
	claims := Claims{
		Issuer:    accessKey,
		ExpiresAt: at.Unix() + int64(tokenTTL/time.Second),
		NotBefore: at.Unix() - int64(clockSkew/time.Second),
	}
	header := map[string]string{"alg": "HS256", "typ": "JWT"}
	headerJSON, err := json.Marshal(header)
	if err != nil {
		return "", fmt.Errorf("auth: encode header: %w", err)
	}
	payloadJSON, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("auth: encode claims: %w", err)
	}
	headerEnc := base64.RawURLEncoding.EncodeToString(headerJSON)
	payloadEnc := base64.RawURLEncoding.EncodeToString(payloadJSON)
	data := headerEnc + "." + payloadEnc
	return data + "." + hmacSign(secretKey, data), nil
}

func hmacSign(secret, data string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(data))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
