package exchange

import (
	"fmt"
	"sort"
)

// MarketCatalog indexes loaded markets by symbol and by exchange-native id.
// It is built once after a market load and is read-only afterwards, so it is
// safe for concurrent lookups.
type MarketCatalog struct {
	exchange string
	bySymbol map[string]*Market
	byID     map[string]*Market
}

// NewMarketCatalog indexes markets for the named exchange. When the same
// symbol appears twice the last entry wins.
func NewMarketCatalog(exchange string, markets []*Market) *MarketCatalog {
	c := &MarketCatalog{
		exchange: exchange,
		bySymbol: make(map[string]*Market, len(markets)),
		byID:     make(map[string]*Market, len(markets)),
	}
	for _, m := range markets {
		c.bySymbol[m.Symbol] = m
		c.byID[m.ID] = m
	}
	return c
}

// BySymbol returns the market for a unified symbol such as "BTC/USD".
func (c *MarketCatalog) BySymbol(symbol string) (*Market, error) {
	if m, ok := c.bySymbol[symbol]; ok {
		return m, nil
	}
	return nil, NewError(c.exchange, KindExchange, fmt.Sprintf("no market for symbol %q", symbol), "")
}

// ByID returns the market for an exchange-native market id.
func (c *MarketCatalog) ByID(id string) (*Market, error) {
	if m, ok := c.byID[id]; ok {
		return m, nil
	}
	return nil, NewError(c.exchange, KindExchange, fmt.Sprintf("no market with id %q", id), "")
}

// Symbols lists all known unified symbols in lexical order.
func (c *MarketCatalog) Symbols() []string {
	out := make([]string, 0, len(c.bySymbol))
	for s := range c.bySymbol {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Len reports the number of markets in the catalog.
func (c *MarketCatalog) Len() int {
	return len(c.bySymbol)
}
