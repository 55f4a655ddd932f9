package livecoin

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"liveflow/exchange"
)

type tradePayload struct {
	ID       int64    `json:"id"`
	Time     int64    `json:"time"`
	Price    apiFloat `json:"price"`
	Quantity apiFloat `json:"quantity"`
	Type     string   `json:"type"`
}

// FetchTrades returns recent public trades for a symbol. The exchange
// reports seconds and no pagination; since (milliseconds, inclusive) and
// limit are applied client-side after the fetch.
func (e *Exchange) FetchTrades(ctx context.Context, symbol string, since int64, limit int, params url.Values) ([]exchange.Trade, error) {
	catalog, err := e.LoadMarkets(ctx)
	if err != nil {
		return nil, err
	}
	market, err := catalog.BySymbol(symbol)
	if err != nil {
		return nil, err
	}

	query := url.Values{"currencyPair": {market.ID}}
	mergeValues(query, params)

	body, err := e.publicGet(ctx, "exchange/last_trades", query)
	if err != nil {
		return nil, err
	}
	var rows []json.RawMessage
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, exchange.NewError(e.id, exchange.KindExchange, "unexpected trades shape", string(body))
	}

	trades := make([]exchange.Trade, 0, len(rows))
	for _, row := range rows {
		var payload tradePayload
		if err := json.Unmarshal(row, &payload); err != nil {
			return nil, exchange.NewError(e.id, exchange.KindExchange, "unexpected trade shape", string(row))
		}
		trades = append(trades, parseTrade(row, payload, market))
	}
	return exchange.TrimTrades(trades, since, limit), nil
}

func parseTrade(raw json.RawMessage, t tradePayload, market *exchange.Market) exchange.Trade {
	ts := t.Time * 1000
	side := exchange.SideBuy
	if strings.EqualFold(t.Type, "sell") {
		side = exchange.SideSell
	}
	return exchange.Trade{
		ID:        strconv.FormatInt(t.ID, 10),
		Timestamp: ts,
		Datetime:  exchange.ISO8601(ts),
		Symbol:    market.Symbol,
		Side:      side,
		Price:     float64(t.Price),
		Amount:    float64(t.Quantity),
		Info:      raw,
	}
}
