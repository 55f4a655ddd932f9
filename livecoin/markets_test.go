package livecoin

import (
	"context"
	"math"
	"net/http"
	"sync/atomic"
	"testing"

	"liveflow/exchange"
)

func TestLoadMarkets(t *testing.T) {
	e := newTestExchange(t, marketMux(nil))

	catalog, err := e.LoadMarkets(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if catalog.Len() != 2 {
		t.Fatalf("Len = %d, want 2", catalog.Len())
	}

	// BTC/USD carries restriction overrides.
	btc, err := catalog.BySymbol("BTC/USD")
	if err != nil {
		t.Fatal(err)
	}
	if btc.Precision.Price != 2 {
		t.Errorf("BTC/USD price precision = %d, want 2", btc.Precision.Price)
	}
	if btc.Precision.Amount != 8 || btc.Precision.Cost != 8 {
		t.Errorf("BTC/USD amount/cost precision = %d/%d, want 8/8", btc.Precision.Amount, btc.Precision.Cost)
	}
	if btc.Limits.Amount.Min != 0.01 {
		t.Errorf("BTC/USD amount min = %v, want 0.01", btc.Limits.Amount.Min)
	}
	if got, want := btc.Limits.Price.Min, math.Pow(10, -2); got != want {
		t.Errorf("BTC/USD price min = %v, want %v", got, want)
	}
	if got, want := btc.Limits.Price.Max, math.Pow(10, 2); got != want {
		t.Errorf("BTC/USD price max = %v, want %v", got, want)
	}
	if btc.Base != "BTC" || btc.Quote != "USD" {
		t.Errorf("BTC/USD base/quote = %s/%s", btc.Base, btc.Quote)
	}

	// ETH/BTC has no restriction entry and keeps the exchange defaults.
	eth, err := catalog.BySymbol("ETH/BTC")
	if err != nil {
		t.Fatal(err)
	}
	if eth.Precision.Price != 5 {
		t.Errorf("ETH/BTC price precision = %d, want 5", eth.Precision.Price)
	}
	if got, want := eth.Limits.Amount.Min, math.Pow(10, -8); got != want {
		t.Errorf("ETH/BTC amount min = %v, want %v", got, want)
	}
	if got, want := eth.Limits.Amount.Max, math.Pow(10, 8); got != want {
		t.Errorf("ETH/BTC amount max = %v, want %v", got, want)
	}
	if got, want := eth.Limits.Price.Min, math.Pow(10, -5); got != want {
		t.Errorf("ETH/BTC price min = %v, want %v", got, want)
	}
	if eth.Maker != 0.18/100 || eth.Taker != 0.18/100 {
		t.Errorf("ETH/BTC fees = %v/%v", eth.Maker, eth.Taker)
	}
	if eth.TierBased || !eth.Percentage {
		t.Errorf("fee flags = tierBased %v percentage %v", eth.TierBased, eth.Percentage)
	}

	// Symbol and id lookups resolve to the same market.
	byID, err := catalog.ByID(btc.ID)
	if err != nil {
		t.Fatal(err)
	}
	if byID != btc {
		t.Error("ByID and BySymbol returned different markets")
	}
}

func TestLoadMarketsCached(t *testing.T) {
	var calls int64
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		http.NotFound(w, r)
	})
	e := newTestExchange(t, marketMux(handler))

	first, err := e.LoadMarkets(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	second, err := e.LoadMarkets(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("second load returned a different catalog")
	}
	if n := atomic.LoadInt64(&calls); n != 0 {
		t.Errorf("unexpected extra requests: %d", n)
	}
}

func TestMarketsBeforeLoad(t *testing.T) {
	e := newTestExchange(t, nil)
	_, err := e.Markets()
	if got := exchange.KindOf(err); got != exchange.KindExchange {
		t.Fatalf("kind = %v, want exchange", got)
	}
}

func TestLoadMarketsSkipsMalformedSymbols(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/exchange/ticker":
			w.Write([]byte(`[{"symbol":"BTC/USD"},{"symbol":"BROKEN"},{"symbol":""}]`))
		case "/exchange/restrictions":
			w.Write([]byte(`{"success":true,"restrictions":[]}`))
		}
	})
	e := newTestExchange(t, handler)

	catalog, err := e.LoadMarkets(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if catalog.Len() != 1 {
		t.Fatalf("Len = %d, want 1", catalog.Len())
	}
	if _, err := catalog.BySymbol("BROKEN"); err == nil {
		t.Error("malformed symbol made it into the catalog")
	}
}

func TestSplitSymbol(t *testing.T) {
	tests := []struct {
		in          string
		base, quote string
		ok          bool
	}{
		{"BTC/USD", "BTC", "USD", true},
		{"ETH/BTC", "ETH", "BTC", true},
		{"BROKEN", "", "", false},
		{"/USD", "", "", false},
		{"BTC/", "", "", false},
	}
	for _, tt := range tests {
		base, quote, ok := splitSymbol(tt.in)
		if base != tt.base || quote != tt.quote || ok != tt.ok {
			t.Errorf("splitSymbol(%q) = %q, %q, %v", tt.in, base, quote, ok)
		}
	}
}
