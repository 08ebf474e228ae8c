// Copyright (c) 2025 BVK Chaitanya

package order

import (
	"context"
	"flag"
	"fmt"

	"github.com/bvk/sbeerest/subcmds/cmdutil"
	"github.com/visvasity/cli"
)

type CancelSymbol struct {
	cmdutil.ClientFlags
	cmdutil.MarketFlags
}

func (c *CancelSymbol) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("cancel-symbol", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	c.MarketFlags.SetFlags(fset)
	return "cancel-symbol", fset, cli.CmdFunc(c.run)
}

func (c *CancelSymbol) Purpose() string {
	return "Cancels all open orders of a symbol."
}

func (c *CancelSymbol) run(ctx context.Context, args []string) error {
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

	return cmdutil.PrintResult(client.CancelOrdersBySymbol(ctx, c.Exchange, trade, args[0], creds))
}
