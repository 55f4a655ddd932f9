package livecoin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"liveflow/exchange"
)

// orderRoute keys the endpoint lookup for order creation. The exchange
// exposes one endpoint per (side, type) pair instead of a single order
// endpoint.
type orderRoute struct {
	side exchange.OrderSide
	typ  exchange.OrderType
}

var orderEndpoints = map[orderRoute]string{
	{exchange.SideBuy, exchange.TypeLimit}:   "exchange/buylimit",
	{exchange.SideBuy, exchange.TypeMarket}:  "exchange/buymarket",
	{exchange.SideSell, exchange.TypeLimit}:  "exchange/selllimit",
	{exchange.SideSell, exchange.TypeMarket}: "exchange/sellmarket",
}

// CreateOrder submits a new order. Amount and price are quantized to the
// market's precision before submission; price is sent only for limit orders.
// The exchange does not echo full order state on creation, so the result
// carries only the assigned id plus the raw response.
func (e *Exchange) CreateOrder(ctx context.Context, symbol string, typ exchange.OrderType, side exchange.OrderSide, amount, price float64, params url.Values) (*exchange.OrderAck, error) {
	endpoint, ok := orderEndpoints[orderRoute{side, typ}]
	if !ok {
		return nil, exchange.NewError(e.id, exchange.KindParameter,
			fmt.Sprintf("unsupported order side/type %q/%q", side, typ), "")
	}

	catalog, err := e.LoadMarkets(ctx)
	if err != nil {
		return nil, err
	}
	market, err := catalog.BySymbol(symbol)
	if err != nil {
		return nil, err
	}

	query := url.Values{
		"quantity":     {exchange.AmountToPrecision(market, amount)},
		"currencyPair": {market.ID},
	}
	if typ == exchange.TypeLimit {
		query.Set("price", exchange.PriceToPrecision(market, price))
	}
	mergeValues(query, params)

	body, err := e.privatePost(ctx, endpoint, query)
	if err != nil {
		return nil, err
	}
	var ack struct {
		OrderID int64 `json:"orderId"`
	}
	if err := json.Unmarshal(body, &ack); err != nil {
		return nil, exchange.NewError(e.id, exchange.KindExchange, "unexpected order response shape", string(body))
	}
	return &exchange.OrderAck{
		ID:   strconv.FormatInt(ack.OrderID, 10),
		Info: body,
	}, nil
}

// CancelOrder cancels an order. The exchange's cancel endpoint needs the
// market pair, not just the order id, so symbol is mandatory; omitting it
// fails before any network call. On success the raw response is returned.
func (e *Exchange) CancelOrder(ctx context.Context, id, symbol string, params url.Values) (json.RawMessage, error) {
	if symbol == "" {
		return nil, exchange.NewError(e.id, exchange.KindParameter, "cancelOrder requires a symbol argument", "")
	}
	catalog, err := e.LoadMarkets(ctx)
	if err != nil {
		return nil, err
	}
	market, err := catalog.BySymbol(symbol)
	if err != nil {
		return nil, err
	}

	query := url.Values{
		"orderId":      {id},
		"currencyPair": {market.ID},
	}
	mergeValues(query, params)

	body, err := e.privatePostRaw(ctx, "exchange/cancellimit", query)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Success   *bool  `json:"success"`
		Cancelled *bool  `json:"cancelled"`
		Message   string `json:"message"`
	}
	if err := json.Unmarshal(body, &resp); err == nil && resp.Success != nil {
		message := resp.Message
		if message == "" {
			message = string(body)
		}
		if !*resp.Success {
			return nil, exchange.NewError(e.id, exchange.KindInvalidOrder, message, string(body))
		}
		if resp.Cancelled != nil {
			if *resp.Cancelled {
				return body, nil
			}
			return nil, exchange.NewError(e.id, exchange.KindOrderNotFound, message, string(body))
		}
	}
	return nil, exchange.NewError(e.id, exchange.KindExchange, "cancelOrder failed", string(body))
}

// FetchOrders returns the account's orders. symbol, since and limit are all
// optional; since is an inclusive millisecond lower bound sent as issuedFrom
// and limit maps onto the endpoint's zero-based endRow index.
func (e *Exchange) FetchOrders(ctx context.Context, symbol string, since int64, limit int, params url.Values) ([]exchange.Order, error) {
	catalog, err := e.LoadMarkets(ctx)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	if symbol != "" {
		market, err := catalog.BySymbol(symbol)
		if err != nil {
			return nil, err
		}
		query.Set("currencyPair", market.ID)
	}
	if since > 0 {
		query.Set("issuedFrom", strconv.FormatInt(since, 10))
	}
	if limit > 0 {
		query.Set("endRow", strconv.Itoa(limit-1))
	}
	mergeValues(query, params)

	body, err := e.privateGet(ctx, "exchange/client_orders", query)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, exchange.NewError(e.id, exchange.KindExchange, "unexpected client orders shape", string(body))
	}

	orders := make([]exchange.Order, 0, len(resp.Data))
	for _, row := range resp.Data {
		order, err := e.parseOrder(row)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// FetchOpenOrders returns only orders the exchange still considers open.
func (e *Exchange) FetchOpenOrders(ctx context.Context, symbol string, since int64, limit int, params url.Values) ([]exchange.Order, error) {
	return e.fetchOrdersFiltered(ctx, symbol, since, limit, "OPEN", params)
}

// FetchClosedOrders returns only orders the exchange considers closed.
func (e *Exchange) FetchClosedOrders(ctx context.Context, symbol string, since int64, limit int, params url.Values) ([]exchange.Order, error) {
	return e.fetchOrdersFiltered(ctx, symbol, since, limit, "CLOSED", params)
}

func (e *Exchange) fetchOrdersFiltered(ctx context.Context, symbol string, since int64, limit int, openClosed string, params url.Values) ([]exchange.Order, error) {
	query := url.Values{"openClosed": {openClosed}}
	mergeValues(query, params)
	return e.FetchOrders(ctx, symbol, since, limit, query)
}

type orderPayload struct {
	ID                   json.Number     `json:"id"`
	CurrencyPair         string          `json:"currencyPair"`
	Type                 string          `json:"type"`
	OrderStatus          string          `json:"orderStatus"`
	LastModificationTime json.RawMessage `json:"lastModificationTime"`
	Price                *apiFloat       `json:"price"`
	Quantity             *apiFloat       `json:"quantity"`
	RemainingQuantity    *apiFloat       `json:"remainingQuantity"`
	CommissionByTrade    *apiFloat       `json:"commissionByTrade"`
}

func (e *Exchange) parseOrder(raw json.RawMessage) (exchange.Order, error) {
	var row orderPayload
	if err := json.Unmarshal(raw, &row); err != nil {
		return exchange.Order{}, exchange.NewError(e.id, exchange.KindExchange, "unexpected order shape", string(raw))
	}

	ts := parseOrderTimestamp(row.LastModificationTime)
	_, quote, _ := splitSymbol(row.CurrencyPair)

	remaining := orZero(row.RemainingQuantity, 0)
	amount := orZero(row.Quantity, remaining)
	cost := orZero(row.CommissionByTrade, 0)

	return exchange.Order{
		ID:        row.ID.String(),
		Timestamp: ts,
		Datetime:  exchange.ISO8601(ts),
		Status:    parseOrderStatus(row.OrderStatus),
		Symbol:    row.CurrencyPair,
		Type:      inferOrderType(row.Type),
		Side:      inferOrderSide(row.Type),
		Price:     orZero(row.Price, 0),
		Cost:      cost,
		Amount:    amount,
		Filled:    amount - remaining,
		Remaining: remaining,
		Fee: exchange.Fee{
			Cost:     cost,
			Currency: quote,
		},
		Info: raw,
	}, nil
}

// parseOrderTimestamp accepts the endpoint's two encodings of
// lastModificationTime: integer milliseconds or an ISO 8601 string.
func parseOrderTimestamp(raw json.RawMessage) int64 {
	if len(raw) == 0 {
		return 0
	}
	var ms int64
	if err := json.Unmarshal(raw, &ms); err == nil {
		return ms
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if ms, ok := exchange.ParseISO8601(s); ok {
			return ms
		}
	}
	return 0
}

// parseOrderStatus maps exchange-native states onto the normalized enum.
// Anything unrecognized deliberately collapses into canceled; the mapping is
// a fallback, not an exhaustive whitelist.
func parseOrderStatus(s string) exchange.OrderStatus {
	switch s {
	case "OPEN", "PARTIALLY_FILLED":
		return exchange.StatusOpen
	case "EXECUTED", "PARTIALLY_FILLED_AND_CANCELLED":
		return exchange.StatusClosed
	default:
		return exchange.StatusCanceled
	}
}

// inferOrderType derives the order type from the exchange's free-text type
// field, e.g. "MARKET_SELL". Absence of the MARKET marker means limit.
func inferOrderType(s string) exchange.OrderType {
	if strings.Contains(s, "MARKET") {
		return exchange.TypeMarket
	}
	return exchange.TypeLimit
}

// inferOrderSide derives the order side the same way; absence of the SELL
// marker means buy.
func inferOrderSide(s string) exchange.OrderSide {
	if strings.Contains(s, "SELL") {
		return exchange.SideSell
	}
	return exchange.SideBuy
}
