package livecoin

import (
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"liveflow/config"
	"liveflow/exchange"
	"liveflow/logger"
)

const (
	// ID is the exchange identifier used in unified symbols and errors.
	ID   = "livecoin"
	Name = "LiveCoin"

	// DefaultBaseURL is the production REST endpoint.
	DefaultBaseURL = "https://api.livecoin.net"

	// rateLimit is the minimum spacing between requests accepted by the
	// exchange.
	rateLimit = 1000 * time.Millisecond

	// Flat non-tiered percentage fee charged on both sides.
	makerFee = 0.18 / 100
	takerFee = 0.18 / 100

	defaultTimeout = 10 * time.Second
)

// Description is the static exchange metadata.
type Description struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Countries []string      `json:"countries"`
	RateLimit time.Duration `json:"rateLimit"`
	API       string        `json:"api"`
	WWW       string        `json:"www"`
	Doc       string        `json:"doc"`
	Maker     float64       `json:"maker"`
	Taker     float64       `json:"taker"`
}

// Exchange is a REST adapter for the LiveCoin exchange. It translates the
// exchange's endpoints, request signing and response shapes into the
// normalized trading interface of the exchange package.
//
// The market catalog is loaded once and read-only afterwards; apart from
// that the adapter holds no per-call mutable state, so concurrent use is
// safe once LoadMarkets has completed.
type Exchange struct {
	id      string
	baseURL string
	apiKey  string
	secret  string

	client  *resty.Client
	limiter *rate.Limiter
	log     *logger.Entry

	mu      sync.RWMutex
	catalog *exchange.MarketCatalog
}

// New builds an adapter from configuration. Credentials may be empty when
// only public endpoints are used.
func New(cfg *config.Config) *Exchange {
	baseURL := strings.TrimRight(cfg.API.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.API.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)
	if cfg.API.UserAgent != "" {
		client.SetHeader("User-Agent", cfg.API.UserAgent)
	}

	return &Exchange{
		id:      ID,
		baseURL: baseURL,
		apiKey:  cfg.API.Key,
		secret:  cfg.API.Secret,
		client:  client,
		limiter: rate.NewLimiter(rate.Every(rateLimit), 1),
		log:     logger.GetLogger().WithComponent("livecoin"),
	}
}

// Describe returns the static exchange metadata.
func (e *Exchange) Describe() Description {
	return Description{
		ID:        ID,
		Name:      Name,
		Countries: []string{"US", "UK", "RU"},
		RateLimit: rateLimit,
		API:       e.baseURL,
		WWW:       "https://www.livecoin.net",
		Doc:       "https://www.livecoin.net/api?lang=en",
		Maker:     makerFee,
		Taker:     takerFee,
	}
}

// ID returns the exchange identifier.
func (e *Exchange) ID() string { return e.id }
