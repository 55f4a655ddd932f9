package livecoin

import (
	"context"
	"encoding/json"
	"net/url"

	"liveflow/exchange"
)

const defaultBookDepth = "100"

type orderBookPayload struct {
	Timestamp int64        `json:"timestamp"`
	Bids      [][]apiFloat `json:"bids"`
	Asks      [][]apiFloat `json:"asks"`
}

// FetchOrderBook returns the aggregated order book for a symbol. By default
// the request asks for 100 ungrouped levels; params may override either
// setting. The snapshot timestamp comes from the exchange response.
func (e *Exchange) FetchOrderBook(ctx context.Context, symbol string, params url.Values) (*exchange.OrderBook, error) {
	catalog, err := e.LoadMarkets(ctx)
	if err != nil {
		return nil, err
	}
	market, err := catalog.BySymbol(symbol)
	if err != nil {
		return nil, err
	}

	query := url.Values{
		"currencyPair": {market.ID},
		"groupByPrice": {"false"},
		"depth":        {defaultBookDepth},
	}
	mergeValues(query, params)

	body, err := e.publicGet(ctx, "exchange/order_book", query)
	if err != nil {
		return nil, err
	}
	var payload orderBookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, exchange.NewError(e.id, exchange.KindExchange, "unexpected order book shape", string(body))
	}

	return &exchange.OrderBook{
		Symbol:    market.Symbol,
		Timestamp: payload.Timestamp,
		Datetime:  exchange.ISO8601(payload.Timestamp),
		Bids:      parseBookSide(payload.Bids),
		Asks:      parseBookSide(payload.Asks),
		Info:      body,
	}, nil
}

func parseBookSide(rows [][]apiFloat) []exchange.BookLevel {
	levels := make([]exchange.BookLevel, 0, len(rows))
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		levels = append(levels, exchange.BookLevel{
			Price:  float64(row[0]),
			Amount: float64(row[1]),
		})
	}
	return levels
}

// mergeValues overlays src on dst, replacing existing keys.
func mergeValues(dst, src url.Values) {
	for k, vs := range src {
		dst[k] = append([]string(nil), vs...)
	}
}
