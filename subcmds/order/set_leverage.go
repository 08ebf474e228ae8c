// Copyright (c) 2025 BVK Chaitanya

package order

import (
	"context"
	"flag"
	"fmt"

	"github.com/bvk/sbeerest/subcmds/cmdutil"
	"github.com/visvasity/cli"
)

type SetLeverage struct {
	cmdutil.ClientFlags
	cmdutil.MarketFlags

	leverage int
}

func (c *SetLeverage) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("set-leverage", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	c.MarketFlags.SetFlags(fset)
	fset.IntVar(&c.leverage, "leverage", 1, "leverage multiplier")
	return "set-leverage", fset, cli.CmdFunc(c.run)
}

func (c *SetLeverage) Purpose() string {
	return "Sets the leverage of a futures symbol."
}

func (c *SetLeverage) run(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("this command takes one (symbol) argument")
	}
	trade, err := c.TradeType()
	if err != nil {
		return err
	}
	creds, err := c.Credentials(c.Exchange)
	if err != nil {
		return err
	}
	client, err := c.Client()
	if err != nil {
		return err
	}
	defer client.Close()

	return cmdutil.PrintResult(client.SetLeverage(ctx, c.Exchange, trade, args[0], c.leverage, creds))
}
