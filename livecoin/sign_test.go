package livecoin

import (
	"net/url"
	"testing"
)

func TestCanonicalQuery(t *testing.T) {
	params := url.Values{}
	params.Set("orderId", "42")
	params.Set("currencyPair", "BTC/USD")

	got := canonicalQuery(params)
	want := "currencyPair=BTC%2FUSD&orderId=42"
	if got != want {
		t.Errorf("canonicalQuery = %q, want %q", got, want)
	}

	if got := canonicalQuery(nil); got != "" {
		t.Errorf("canonicalQuery(nil) = %q, want empty", got)
	}
}

func TestSignQuery(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		secret string
		want   string
	}{
		{
			name:   "sorted encoded query",
			query:  "currencyPair=BTC%2FUSD&orderId=42",
			secret: "topsecret",
			want:   "BC4301BBE8E67E25E7DDD0F9852E26C6D5C3974B66E9E9AF3CE44706B1A4A344",
		},
		{
			name:   "empty query",
			query:  "",
			secret: "topsecret",
			want:   "818F9CB88315AC08B5EF83F96650CA6F4E3DDDCB4548E4879B746F56B57FA2B0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := signQuery(tt.query, tt.secret)
			if got != tt.want {
				t.Errorf("signQuery(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}
