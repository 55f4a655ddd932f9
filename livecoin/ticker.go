package livecoin

import (
	"context"
	"encoding/json"
	"net/url"

	"liveflow/exchange"
)

type tickerPayload struct {
	Symbol  string   `json:"symbol"`
	Last    apiFloat `json:"last"`
	High    apiFloat `json:"high"`
	Low     apiFloat `json:"low"`
	Volume  apiFloat `json:"volume"`
	VWAP    apiFloat `json:"vwap"`
	BestBid apiFloat `json:"best_bid"`
	BestAsk apiFloat `json:"best_ask"`
}

// FetchTicker returns the current ticker for one symbol.
func (e *Exchange) FetchTicker(ctx context.Context, symbol string) (*exchange.Ticker, error) {
	catalog, err := e.LoadMarkets(ctx)
	if err != nil {
		return nil, err
	}
	market, err := catalog.BySymbol(symbol)
	if err != nil {
		return nil, err
	}

	body, err := e.publicGet(ctx, "exchange/ticker", url.Values{"currencyPair": {market.ID}})
	if err != nil {
		return nil, err
	}
	var payload tickerPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, exchange.NewError(e.id, exchange.KindExchange, "unexpected ticker shape", string(body))
	}
	ticker := parseTicker(body, payload, market)
	return &ticker, nil
}

// FetchTickers returns tickers for all markets, keyed by unified symbol.
// The market catalog must resolve every listed id; an unknown id is a
// lookup error.
func (e *Exchange) FetchTickers(ctx context.Context) (map[string]exchange.Ticker, error) {
	catalog, err := e.LoadMarkets(ctx)
	if err != nil {
		return nil, err
	}

	body, err := e.publicGet(ctx, "exchange/ticker", nil)
	if err != nil {
		return nil, err
	}
	var rows []json.RawMessage
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, exchange.NewError(e.id, exchange.KindExchange, "unexpected ticker listing shape", string(body))
	}

	result := make(map[string]exchange.Ticker, len(rows))
	for _, row := range rows {
		var payload tickerPayload
		if err := json.Unmarshal(row, &payload); err != nil {
			return nil, exchange.NewError(e.id, exchange.KindExchange, "unexpected ticker shape", string(row))
		}
		market, err := catalog.ByID(payload.Symbol)
		if err != nil {
			return nil, err
		}
		result[market.Symbol] = parseTicker(row, payload, market)
	}
	return result, nil
}

// parseTicker normalizes a raw ticker. The exchange reports no timestamp, so
// the snapshot carries wall-clock generation time. Quote volume is derived
// as baseVolume*vwap rather than exchange-supplied.
func parseTicker(raw json.RawMessage, t tickerPayload, market *exchange.Market) exchange.Ticker {
	now := exchange.Milliseconds()
	baseVolume := float64(t.Volume)
	vwap := float64(t.VWAP)
	return exchange.Ticker{
		Symbol:      market.Symbol,
		Timestamp:   now,
		Datetime:    exchange.ISO8601(now),
		High:        float64(t.High),
		Low:         float64(t.Low),
		Bid:         float64(t.BestBid),
		Ask:         float64(t.BestAsk),
		VWAP:        vwap,
		Last:        float64(t.Last),
		BaseVolume:  baseVolume,
		QuoteVolume: baseVolume * vwap,
		Info:        raw,
	}
}
