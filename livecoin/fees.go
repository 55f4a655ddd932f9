package livecoin

import (
	"context"
	"encoding/json"

	"liveflow/exchange"
)

// FetchTradingFees returns the account's current commission rate. The
// exchange reports a single rate applied to both maker and taker sides.
func (e *Exchange) FetchTradingFees(ctx context.Context) (*exchange.TradingFees, error) {
	if _, err := e.LoadMarkets(ctx); err != nil {
		return nil, err
	}

	body, err := e.privateGet(ctx, "exchange/commissionCommonInfo", nil)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Commission apiFloat `json:"commission"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, exchange.NewError(e.id, exchange.KindExchange, "unexpected commission shape", string(body))
	}

	return &exchange.TradingFees{
		Maker:    float64(resp.Commission),
		Taker:    float64(resp.Commission),
		Withdraw: 0,
		Info:     body,
	}, nil
}
