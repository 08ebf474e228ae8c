// Copyright (c) 2025 BVK Chaitanya

package market

import (
	"context"
	"flag"
	"fmt"

	"github.com/bvk/sbeerest/sbee"
	"github.com/bvk/sbeerest/subcmds/cmdutil"
	"github.com/visvasity/cli"
)

type KLine struct {
	cmdutil.ClientFlags
	cmdutil.MarketFlags

	interval   string
	start, end int64
	limit      int
}

func (c *KLine) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("kline", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	c.MarketFlags.SetFlags(fset)
	fset.StringVar(&c.interval, "interval", "1h", "candle interval (1m, 5m, 15m, 30m, 1h, 4h, 1d, 1M)")
	fset.Int64Var(&c.start, "start-time", 0, "start time in unix milliseconds")
	fset.Int64Var(&c.end, "end-time", 0, "end time in unix milliseconds")
	fset.IntVar(&c.limit, "limit", 100, "maximum number of candles")
	return "kline", fset, cli.CmdFunc(c.run)
}

func (c *KLine) Purpose() string {
	return "Prints candles for a symbol."
}

func (c *KLine) run(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("this command takes one (symbol) argument")
	}
	trade, err := c.TradeType()
	if err != nil {
		return err
	}
	client, err := c.Client()
	if err != nil {
		return err
	}
	defer client.Close()

	q := &sbee.KLineQuery{
		Symbol:    args[0],
		Interval:  c.interval,
		StartTime: c.start,
		EndTime:   c.end,
		Limit:     c.limit,
	}
	return cmdutil.PrintResult(client.KLine(ctx, c.Exchange, trade, q))
}
