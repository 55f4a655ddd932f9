package exchange

import "encoding/json"

// OrderStatus is the normalized lifecycle state of an order.
type OrderStatus string

const (
	StatusOpen     OrderStatus = "open"
	StatusClosed   OrderStatus = "closed"
	StatusCanceled OrderStatus = "canceled"
)

// OrderSide is the normalized direction of an order or trade.
type OrderSide string

const (
	SideBuy  OrderSide = "buy"
	SideSell OrderSide = "sell"
)

// OrderType is the normalized execution type of an order.
type OrderType string

const (
	TypeLimit  OrderType = "limit"
	TypeMarket OrderType = "market"
)

// Precision holds the number of decimal digits accepted per field.
type Precision struct {
	Price  int `json:"price"`
	Amount int `json:"amount"`
	Cost   int `json:"cost"`
}

// MinMax bounds a numeric order field.
type MinMax struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Limits bounds order amount and price for a market.
type Limits struct {
	Amount MinMax `json:"amount"`
	Price  MinMax `json:"price"`
}

// Market is a tradable currency-pair instrument. Markets are built once
// during catalog load and must not be mutated afterwards.
type Market struct {
	ID         string          `json:"id"`
	Symbol     string          `json:"symbol"`
	Base       string          `json:"base"`
	Quote      string          `json:"quote"`
	Precision  Precision       `json:"precision"`
	Limits     Limits          `json:"limits"`
	Maker      float64         `json:"maker"`
	Taker      float64         `json:"taker"`
	TierBased  bool            `json:"tierBased"`
	Percentage bool            `json:"percentage"`
	Info       json.RawMessage `json:"info"`
}

// Ticker is a snapshot of best bid/ask/last price and volume for a market.
type Ticker struct {
	Symbol      string          `json:"symbol"`
	Timestamp   int64           `json:"timestamp"`
	Datetime    string          `json:"datetime"`
	High        float64         `json:"high"`
	Low         float64         `json:"low"`
	Bid         float64         `json:"bid"`
	Ask         float64         `json:"ask"`
	VWAP        float64         `json:"vwap"`
	Last        float64         `json:"last"`
	BaseVolume  float64         `json:"baseVolume"`
	QuoteVolume float64         `json:"quoteVolume"`
	Info        json.RawMessage `json:"info"`
}

// BookLevel is a single price level in an order book.
type BookLevel struct {
	Price  float64 `json:"price"`
	Amount float64 `json:"amount"`
}

// OrderBook holds the aggregated outstanding orders for a market.
type OrderBook struct {
	Symbol    string          `json:"symbol"`
	Timestamp int64           `json:"timestamp"`
	Datetime  string          `json:"datetime"`
	Bids      []BookLevel     `json:"bids"`
	Asks      []BookLevel     `json:"asks"`
	Info      json.RawMessage `json:"info"`
}

// Trade is a single public execution record.
type Trade struct {
	ID        string          `json:"id"`
	Timestamp int64           `json:"timestamp"`
	Datetime  string          `json:"datetime"`
	Symbol    string          `json:"symbol"`
	Side      OrderSide       `json:"side"`
	Price     float64         `json:"price"`
	Amount    float64         `json:"amount"`
	Info      json.RawMessage `json:"info"`
}

// Fee is the commission charged on an order.
type Fee struct {
	Cost     float64 `json:"cost"`
	Currency string  `json:"currency"`
}

// Order is the normalized view of an exchange order.
type Order struct {
	ID        string          `json:"id"`
	Timestamp int64           `json:"timestamp"`
	Datetime  string          `json:"datetime"`
	Status    OrderStatus     `json:"status"`
	Symbol    string          `json:"symbol"`
	Type      OrderType       `json:"type"`
	Side      OrderSide       `json:"side"`
	Price     float64         `json:"price"`
	Cost      float64         `json:"cost"`
	Amount    float64         `json:"amount"`
	Filled    float64         `json:"filled"`
	Remaining float64         `json:"remaining"`
	Fee       Fee             `json:"fee"`
	Info      json.RawMessage `json:"info"`
}

// OrderAck is the result of order creation. Exchanges that do not echo the
// full order state on creation return only the assigned id plus the raw
// response.
type OrderAck struct {
	ID   string          `json:"id"`
	Info json.RawMessage `json:"info"`
}

// Account is the per-currency balance breakdown.
type Account struct {
	Free  float64 `json:"free"`
	Used  float64 `json:"used"`
	Total float64 `json:"total"`
}

// Balance maps currency codes to accounts.
type Balance struct {
	Accounts map[string]Account `json:"accounts"`
	Info     json.RawMessage    `json:"info"`
}

// DepositAddress is a funding address for a currency.
type DepositAddress struct {
	Currency string          `json:"currency"`
	Address  string          `json:"address"`
	Status   string          `json:"status"`
	Info     json.RawMessage `json:"info"`
}

// TradingFees is the account-wide commission schedule.
type TradingFees struct {
	Maker    float64         `json:"maker"`
	Taker    float64         `json:"taker"`
	Withdraw float64         `json:"withdraw"`
	Info     json.RawMessage `json:"info"`
}
