package exchange

// TrimTrades applies client-side pagination to trades already fetched from
// an exchange. since is an inclusive lower bound in milliseconds; limit caps
// the number of returned records. Zero values disable either filter.
func TrimTrades(trades []Trade, since int64, limit int) []Trade {
	out := trades
	if since > 0 {
		out = make([]Trade, 0, len(trades))
		for _, t := range trades {
			if t.Timestamp >= since {
				out = append(out, t)
			}
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
