package livecoin

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"liveflow/exchange"
	"liveflow/logger"
)

const (
	defaultPricePrecision  = 5
	defaultAmountPrecision = 8
	defaultCostPrecision   = 8
)

type restrictionsResponse struct {
	Success      bool `json:"success"`
	Restrictions []struct {
		CurrencyPair     string    `json:"currencyPair"`
		PriceScale       *int      `json:"priceScale"`
		MinLimitQuantity *apiFloat `json:"minLimitQuantity"`
	} `json:"restrictions"`
}

// LoadMarkets fetches the market catalog and freezes it on the adapter. The
// first successful load wins; later calls return the cached catalog. The
// ticker listing provides the market list; the restrictions endpoint refines
// per-market precision and minimum order size.
func (e *Exchange) LoadMarkets(ctx context.Context) (*exchange.MarketCatalog, error) {
	e.mu.RLock()
	cached := e.catalog
	e.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	catalog, err := e.fetchMarkets(ctx)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	if e.catalog == nil {
		e.catalog = catalog
	}
	catalog = e.catalog
	e.mu.Unlock()

	e.log.WithFields(logger.Fields{"markets": catalog.Len()}).Info("market catalog loaded")
	return catalog, nil
}

// Markets returns the loaded catalog without triggering a load.
func (e *Exchange) Markets() (*exchange.MarketCatalog, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.catalog == nil {
		return nil, exchange.NewError(e.id, exchange.KindExchange, "markets not loaded", "")
	}
	return e.catalog, nil
}

func (e *Exchange) fetchMarkets(ctx context.Context) (*exchange.MarketCatalog, error) {
	listing, err := e.publicGet(ctx, "exchange/ticker", nil)
	if err != nil {
		return nil, fmt.Errorf("fetch market listing: %w", err)
	}
	var rows []json.RawMessage
	if err := json.Unmarshal(listing, &rows); err != nil {
		return nil, exchange.NewError(e.id, exchange.KindExchange, "unexpected ticker listing shape", string(listing))
	}

	restrictionsBody, err := e.publicGet(ctx, "exchange/restrictions", nil)
	if err != nil {
		return nil, fmt.Errorf("fetch restrictions: %w", err)
	}
	var restrictions restrictionsResponse
	if err := json.Unmarshal(restrictionsBody, &restrictions); err != nil {
		return nil, exchange.NewError(e.id, exchange.KindExchange, "unexpected restrictions shape", string(restrictionsBody))
	}
	byPair := make(map[string]int, len(restrictions.Restrictions))
	for i, r := range restrictions.Restrictions {
		byPair[r.CurrencyPair] = i
	}

	markets := make([]*exchange.Market, 0, len(rows))
	for _, row := range rows {
		var entry struct {
			Symbol string `json:"symbol"`
		}
		if err := json.Unmarshal(row, &entry); err != nil || entry.Symbol == "" {
			continue
		}
		base, quote, ok := splitSymbol(entry.Symbol)
		if !ok {
			e.log.WithFields(logger.Fields{"symbol": entry.Symbol}).Warn("skipping market with malformed symbol")
			continue
		}

		precision := exchange.Precision{
			Price:  defaultPricePrecision,
			Amount: defaultAmountPrecision,
			Cost:   defaultCostPrecision,
		}
		limits := exchange.Limits{
			Amount: exchange.MinMax{
				Min: math.Pow(10, -float64(precision.Amount)),
				Max: math.Pow(10, float64(precision.Amount)),
			},
		}
		if i, ok := byPair[entry.Symbol]; ok {
			r := restrictions.Restrictions[i]
			if r.PriceScale != nil {
				precision.Price = *r.PriceScale
			}
			if r.MinLimitQuantity != nil {
				limits.Amount.Min = float64(*r.MinLimitQuantity)
			}
		}
		limits.Price = exchange.MinMax{
			Min: math.Pow(10, -float64(precision.Price)),
			Max: math.Pow(10, float64(precision.Price)),
		}

		markets = append(markets, &exchange.Market{
			ID:         entry.Symbol,
			Symbol:     entry.Symbol,
			Base:       base,
			Quote:      quote,
			Precision:  precision,
			Limits:     limits,
			Maker:      makerFee,
			Taker:      takerFee,
			TierBased:  false,
			Percentage: true,
			Info:       row,
		})
	}

	return exchange.NewMarketCatalog(e.id, markets), nil
}

// splitSymbol derives base and quote from a "BASE/QUOTE" pair string.
func splitSymbol(symbol string) (base, quote string, ok bool) {
	parts := strings.SplitN(symbol, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
