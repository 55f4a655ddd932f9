package livecoin

import "net/http"

// Endpoint tables for api.livecoin.net, grouped by access level and verb.
// The request layer rejects paths outside these tables so that a typo in an
// endpoint name surfaces as a not-supported error instead of an opaque 404.
var (
	publicGetEndpoints = []string{
		"exchange/all/order_book",
		"exchange/last_trades",
		"exchange/maxbid_minask",
		"exchange/order_book",
		"exchange/restrictions",
		"exchange/ticker",
		"info/coinInfo",
	}

	privateGetEndpoints = []string{
		"exchange/client_orders",
		"exchange/order",
		"exchange/trades",
		"exchange/commission",
		"exchange/commissionCommonInfo",
		"payment/balances",
		"payment/balance",
		"payment/get/address",
		"payment/history/size",
		"payment/history/transactions",
	}

	privatePostEndpoints = []string{
		"exchange/buylimit",
		"exchange/buymarket",
		"exchange/cancellimit",
		"exchange/selllimit",
		"exchange/sellmarket",
		"payment/out/capitalist",
		"payment/out/card",
		"payment/out/coin",
		"payment/out/okpay",
		"payment/out/payeer",
		"payment/out/perfectmoney",
		"payment/voucher/amount",
		"payment/voucher/make",
		"payment/voucher/redeem",
	}
)

type endpointKey struct {
	method  string
	path    string
	private bool
}

var endpoints = buildEndpointSet()

func buildEndpointSet() map[endpointKey]struct{} {
	set := make(map[endpointKey]struct{})
	for _, p := range publicGetEndpoints {
		set[endpointKey{http.MethodGet, p, false}] = struct{}{}
	}
	for _, p := range privateGetEndpoints {
		set[endpointKey{http.MethodGet, p, true}] = struct{}{}
	}
	for _, p := range privatePostEndpoints {
		set[endpointKey{http.MethodPost, p, true}] = struct{}{}
	}
	return set
}

func endpointKnown(method, path string, private bool) bool {
	_, ok := endpoints[endpointKey{method, path, private}]
	return ok
}
