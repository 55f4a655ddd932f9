package livecoin

import (
	"context"
	"encoding/json"
	"net/url"

	"liveflow/exchange"
)

// FetchDepositAddress returns the funding address for a currency.
func (e *Exchange) FetchDepositAddress(ctx context.Context, currency string, params url.Values) (*exchange.DepositAddress, error) {
	query := url.Values{"currency": {currency}}
	mergeValues(query, params)

	body, err := e.privateGet(ctx, "payment/get/address", query)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Wallet string `json:"wallet"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, exchange.NewError(e.id, exchange.KindExchange, "unexpected address shape", string(body))
	}

	return &exchange.DepositAddress{
		Currency: currency,
		Address:  resp.Wallet,
		Status:   "ok",
		Info:     body,
	}, nil
}
