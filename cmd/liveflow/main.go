package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"liveflow/config"
	"liveflow/livecoin"
	"liveflow/logger"
)

func main() {
	log := logger.GetLogger()

	// Load environment variables from .env if present
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("Error loading .env file")
	}

	configPath := flag.String("config", config.DefaultConfigPath, "Path to configuration file")
	symbol := flag.String("symbol", "BTC/USD", "Market symbol to watch")
	interval := flag.Duration("interval", 10*time.Second, "Polling interval")
	flag.Parse()

	cfg, err := config.LoadConfig(config.ResolveConfigPath(*configPath))
	if err != nil {
		log.WithError(err).Error("Failed to load configuration")
		os.Exit(1)
	}

	if err := log.Configure(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output, cfg.Logging.MaxAge); err != nil {
		log.WithError(err).Error("Failed to configure logger")
		os.Exit(1)
	}

	env := config.AppEnvironment()
	if config.IsProductionLike(env) && (cfg.API.Key == "" || cfg.API.Secret == "") {
		log.WithFields(logger.Fields{"environment": env}).Error("API credentials are required in this environment")
		os.Exit(1)
	}

	log.WithFields(logger.Fields{
		"service":     cfg.Liveflow.Name,
		"version":     cfg.Liveflow.Version,
		"environment": env,
	}).Info("starting liveflow")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleShutdown(cancel, log)

	if strings.ToLower(cfg.Logging.Level) == "report" {
		logger.StartReport(ctx, log, 30*time.Second)
	}

	ex := livecoin.New(cfg)

	catalog, err := ex.LoadMarkets(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load markets")
		os.Exit(1)
	}
	log.WithFields(logger.Fields{
		"exchange": ex.ID(),
		"markets":  catalog.Len(),
	}).Info("connected")

	if _, err := catalog.BySymbol(*symbol); err != nil {
		log.WithError(err).WithFields(logger.Fields{"symbol": *symbol}).Error("Unknown market symbol")
		os.Exit(1)
	}

	tickers, err := ex.FetchTickers(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to fetch tickers")
		os.Exit(1)
	}
	log.WithFields(logger.Fields{"tickers": len(tickers)}).Info("initial ticker snapshot")

	watch(ctx, ex, *symbol, *interval, log)
	log.Info("liveflow stopped")
}

// watch polls the ticker and order book for one market until the context is
// cancelled.
func watch(ctx context.Context, ex *livecoin.Exchange, symbol string, interval time.Duration, log *logger.Log) {
	t := time.NewTicker(interval)
	defer t.Stop()

	poll := func() {
		ticker, err := ex.FetchTicker(ctx, symbol)
		if err != nil {
			log.WithError(err).WithFields(logger.Fields{"symbol": symbol}).Error("ticker fetch failed")
			return
		}
		book, err := ex.FetchOrderBook(ctx, symbol, nil)
		if err != nil {
			log.WithError(err).WithFields(logger.Fields{"symbol": symbol}).Error("order book fetch failed")
			return
		}
		log.WithFields(logger.Fields{
			"symbol": symbol,
			"last":   ticker.Last,
			"bid":    ticker.Bid,
			"ask":    ticker.Ask,
			"bids":   len(book.Bids),
			"asks":   len(book.Asks),
		}).Info("market snapshot")
	}

	poll()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			poll()
		}
	}
}

func handleShutdown(cancel context.CancelFunc, log *logger.Log) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	s := <-sig
	log.WithFields(logger.Fields{"signal": s.String()}).Info("shutdown signal received")
	cancel()
}
