// Copyright (c) 2025 BVK Chaitanya

package market

import (
	"context"
	"flag"
	"fmt"

	"github.com/bvk/sbeerest/subcmds/cmdutil"
	"github.com/visvasity/cli"
)

type Tickers struct {
	cmdutil.ClientFlags
	cmdutil.MarketFlags
}

func (c *Tickers) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("tickers", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	c.MarketFlags.SetFlags(fset)
	return "tickers", fset, cli.CmdFunc(c.run)
}

func (c *Tickers) Purpose() string {
	return "Prints the ticker for a symbol."
}

func (c *Tickers) run(ctx context.Context, args []string) error {
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

	return cmdutil.PrintResult(client.Tickers(ctx, c.Exchange, trade, args[0]))
}
