package livecoin

import (
	"context"
	"encoding/json"

	"liveflow/exchange"
)

type balancePayload struct {
	Type     string   `json:"type"`
	Currency string   `json:"currency"`
	Value    apiFloat `json:"value"`
}

// FetchBalance aggregates the exchange's flat list of typed balance records
// into per-currency accounts. Each record type populates one field; a later
// record for the same currency and type overwrites, it does not merge.
func (e *Exchange) FetchBalance(ctx context.Context) (*exchange.Balance, error) {
	if _, err := e.LoadMarkets(ctx); err != nil {
		return nil, err
	}

	body, err := e.privateGet(ctx, "payment/balances", nil)
	if err != nil {
		return nil, err
	}
	var rows []balancePayload
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, exchange.NewError(e.id, exchange.KindExchange, "unexpected balances shape", string(body))
	}

	accounts := make(map[string]exchange.Account, len(rows))
	for _, row := range rows {
		account := accounts[row.Currency]
		switch row.Type {
		case "total":
			account.Total = float64(row.Value)
		case "available":
			account.Free = float64(row.Value)
		case "trade":
			account.Used = float64(row.Value)
		}
		accounts[row.Currency] = account
	}

	return &exchange.Balance{Accounts: accounts, Info: body}, nil
}
