package livecoin

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strings"
)

// canonicalQuery renders params as the exchange's canonical query encoding:
// keys sorted lexically, values URL-encoded. The same encoding is used in
// GET URLs, POST bodies and as the signing payload.
func canonicalQuery(params url.Values) string {
	if len(params) == 0 {
		return ""
	}
	return params.Encode()
}

// signQuery computes the uppercase hex HMAC-SHA256 of the canonical query
// string using the account secret. The signature always covers the canonical
// encoding, never a raw request body.
func signQuery(query, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(query))
	return strings.ToUpper(hex.EncodeToString(mac.Sum(nil)))
}
