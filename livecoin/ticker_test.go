package livecoin

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"liveflow/exchange"
)

func TestFetchTicker(t *testing.T) {
	var gotPair string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPair = r.URL.Query().Get("currencyPair")
		w.Write([]byte(`{"symbol":"BTC/USD","last":"100","high":"110","low":"90","volume":"10","vwap":"2","best_bid":"99","best_ask":"101"}`))
	})
	e := newTestExchange(t, marketMux(handler))

	before := exchange.Milliseconds()
	ticker, err := e.FetchTicker(context.Background(), "BTC/USD")
	if err != nil {
		t.Fatal(err)
	}
	after := exchange.Milliseconds()

	if gotPair != "BTC/USD" {
		t.Errorf("currencyPair = %q, want BTC/USD", gotPair)
	}
	if ticker.Symbol != "BTC/USD" {
		t.Errorf("Symbol = %q", ticker.Symbol)
	}
	if ticker.Last != 100 || ticker.High != 110 || ticker.Low != 90 {
		t.Errorf("ohlc = %v/%v/%v", ticker.Last, ticker.High, ticker.Low)
	}
	if ticker.Bid != 99 || ticker.Ask != 101 {
		t.Errorf("bid/ask = %v/%v", ticker.Bid, ticker.Ask)
	}
	if ticker.BaseVolume != 10 || ticker.VWAP != 2 {
		t.Errorf("volume/vwap = %v/%v", ticker.BaseVolume, ticker.VWAP)
	}
	// Quote volume is derived, not reported.
	if ticker.QuoteVolume != 20 {
		t.Errorf("QuoteVolume = %v, want 20", ticker.QuoteVolume)
	}
	if ticker.Timestamp < before || ticker.Timestamp > after {
		t.Errorf("Timestamp = %d outside [%d, %d]", ticker.Timestamp, before, after)
	}
	if ticker.Datetime == "" {
		t.Error("Datetime empty")
	}
	if len(ticker.Info) == 0 {
		t.Error("Info not retained")
	}
}

func TestFetchTickers(t *testing.T) {
	e := newTestExchange(t, marketMux(nil))

	tickers, err := e.FetchTickers(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(tickers) != 2 {
		t.Fatalf("len = %d, want 2", len(tickers))
	}
	btc, ok := tickers["BTC/USD"]
	if !ok {
		t.Fatal("BTC/USD missing from result")
	}
	if btc.Last != 100 || btc.QuoteVolume != 20 {
		t.Errorf("BTC/USD last/quoteVolume = %v/%v", btc.Last, btc.QuoteVolume)
	}
	if _, ok := tickers["ETH/BTC"]; !ok {
		t.Error("ETH/BTC missing from result")
	}
}

func TestFetchTickersUnknownMarket(t *testing.T) {
	// After the catalog is frozen, the listing grows a pair the catalog
	// cannot resolve.
	var mu sync.Mutex
	grown := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/exchange/restrictions":
			w.Write([]byte(restrictionsListing))
		case "/exchange/ticker":
			mu.Lock()
			g := grown
			mu.Unlock()
			if g {
				w.Write([]byte(`[{"symbol":"NEW/USD","last":"1"}]`))
			} else {
				w.Write([]byte(tickerListing))
			}
		}
	})
	e := newTestExchange(t, handler)

	if _, err := e.LoadMarkets(context.Background()); err != nil {
		t.Fatal(err)
	}
	mu.Lock()
	grown = true
	mu.Unlock()

	_, err := e.FetchTickers(context.Background())
	if got := exchange.KindOf(err); got != exchange.KindExchange {
		t.Fatalf("kind = %v, want exchange", got)
	}
}

func TestFetchTickerUnknownSymbol(t *testing.T) {
	e := newTestExchange(t, marketMux(nil))
	_, err := e.FetchTicker(context.Background(), "XMR/EUR")
	if got := exchange.KindOf(err); got != exchange.KindExchange {
		t.Fatalf("kind = %v, want exchange", got)
	}
}
