// Copyright (c) 2023 BVK Chaitanya

package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bvk/sbeerest/subcmds"
	"github.com/bvk/sbeerest/subcmds/account"
	"github.com/bvk/sbeerest/subcmds/batch"
	"github.com/bvk/sbeerest/subcmds/cmdutil"
	"github.com/bvk/sbeerest/subcmds/info"
	"github.com/bvk/sbeerest/subcmds/market"
	"github.com/bvk/sbeerest/subcmds/multi"
	"github.com/bvk/sbeerest/subcmds/order"
	"github.com/joho/godotenv"
	"github.com/visvasity/cli"
	"github.com/visvasity/sglog"
)

// parseLogLevel returns the log level named by v. Empty and invalid values
// select the warning level.
func parseLogLevel(v string) slog.Level {
	level := slog.LevelWarn
	if len(v) == 0 {
		return level
	}
	if err := level.UnmarshalText([]byte(strings.ToUpper(v))); err != nil {
		log.Printf("ignoring invalid SBEE_LOG_LEVEL value %q: %v", v, err)
		return slog.LevelWarn
	}
	return level
}

// setupLogging installs the default slog handler. Log records go to the
// SBEE_LOG_DIR directory when it is set and to the standard error otherwise.
func setupLogging() func() {
	level := new(slog.LevelVar)
	level.Set(parseLogLevel(os.Getenv("SBEE_LOG_LEVEL")))

	dir := os.Getenv("SBEE_LOG_DIR")
	if len(dir) == 0 {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
		return func() {}
	}

	backend := sglog.NewBackend(&sglog.Options{
		LogDirs: []string{dir},
	})
	backend.SetLevel(level.Level())
	slog.SetDefault(slog.New(backend.Handler()))
	return backend.Close
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("could not load .env file: %v", err)
	}

	closeLogs := setupLogging()
	defer closeLogs()

	marketCmds := []cli.Command{
		new(market.SystemTime),
		new(market.RecentTrades),
		new(market.Currencies),
		new(market.KLine),
		new(market.KlineFormation),
		new(market.OrderBook),
		new(market.Tickers),
	}

	infoCmds := []cli.Command{
		new(info.Markets),
		new(info.MoneyPairs),
		new(info.News),
		new(info.Countries),
	}

	accountCmds := []cli.Command{
		new(account.Balances),
		new(account.OrderHistory),
	}

	orderCmds := []cli.Command{
		new(order.Limit),
		new(order.Market),
		new(order.StopLoss),
		new(order.TakeProfit),
		new(order.Cancel),
		new(order.CancelSymbol),
		new(order.SetLeverage),
	}

	cmds := []cli.Command{
		new(subcmds.ClientIDs),
		cli.NewGroup("market", "Query exchange market data", marketCmds...),
		cli.NewGroup("info", "Query gateway wide information", infoCmds...),
		cli.NewGroup("account", "Query exchange account data", accountCmds...),
		cli.NewGroup("order", "Place and cancel orders", orderCmds...),
		cli.NewGroup("batch", "Run batch order operations from payload files", batch.Commands()...),
		cli.NewGroup("multi", "Query market data across exchanges", multi.Commands()...),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.Run(ctx, cmds, os.Args[1:])
	stop()
	if err != nil {
		closeLogs()
		if errors.Is(err, cmdutil.ErrFailed) {
			os.Exit(1)
		}
		log.Fatal(err)
	}
}
