// Copyright (c) 2025 BVK Chaitanya

package market

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bvk/sbeerest/sbee"
	"github.com/bvk/sbeerest/subcmds/cmdutil"
	"github.com/visvasity/cli"
)

type KlineFormation struct {
	cmdutil.ClientFlags
	cmdutil.MarketFlags

	interval   string
	start, end int64
	limit      int

	formationsFile string
}

func (c *KlineFormation) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("kline-formation", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	c.MarketFlags.SetFlags(fset)
	fset.StringVar(&c.interval, "interval", "1h", "candle interval (1m, 5m, 15m, 30m, 1h, 4h, 1d, 1M)")
	fset.Int64Var(&c.start, "start-time", 0, "start time in unix milliseconds")
	fset.Int64Var(&c.end, "end-time", 0, "end time in unix milliseconds")
	fset.IntVar(&c.limit, "limit", 100, "maximum number of candles")
	fset.StringVar(&c.formationsFile, "formations-file", "", "path to a json file with the formations array")
	return "kline-formation", fset, cli.CmdFunc(c.run)
}

func (c *KlineFormation) Purpose() string {
	return "Prints technical analysis formations computed over candles."
}

func (c *KlineFormation) Description() string {
	return `
Formations file holds a JSON array of formation objects, which is sent to the
gateway as is. For example:

  [{"Formation": "MAX", "TimePeriod": 30, "Source": "close"},
   {"Formation": "MACD", "FastPeriod": 12, "SlowPeriod": 26, "SignalPeriod": 9}]

Start and end times are sent only when both are given.
`
}

func (c *KlineFormation) run(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("this command takes one (symbol) argument")
	}
	if len(c.formationsFile) == 0 {
		return fmt.Errorf("formations file flag is required")
	}
	data, err := os.ReadFile(c.formationsFile)
	if err != nil {
		return err
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

	q := &sbee.KlineFormationQuery{
		Symbol:     args[0],
		Interval:   c.interval,
		Limit:      c.limit,
		Formations: sbee.RawJSON(data),
	}
	if c.start != 0 {
		q.StartTime = &c.start
	}
	if c.end != 0 {
		q.EndTime = &c.end
	}
	return cmdutil.PrintResult(client.KlineFormation(ctx, c.Exchange, trade, q))
}
