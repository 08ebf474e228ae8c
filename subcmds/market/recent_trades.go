// Copyright (c) 2025 BVK Chaitanya

package market

import (
	"context"
	"flag"
	"fmt"

	"github.com/bvk/sbeerest/subcmds/cmdutil"
	"github.com/visvasity/cli"
)

type RecentTrades struct {
	cmdutil.ClientFlags
	cmdutil.MarketFlags

	depth int
}

func (c *RecentTrades) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("recent-trades", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	c.MarketFlags.SetFlags(fset)
	fset.IntVar(&c.depth, "depth", 10, "number of trades")
	return "recent-trades", fset, cli.CmdFunc(c.run)
}

func (c *RecentTrades) Purpose() string {
	return "Prints the most recent trades for a symbol."
}

func (c *RecentTrades) run(ctx context.Context, args []string) error {
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

	return cmdutil.PrintResult(client.RecentTrades(ctx, c.Exchange, trade, args[0], c.depth))
}
