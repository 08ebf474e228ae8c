// Copyright (c) 2025 BVK Chaitanya

package account

import (
	"context"
	"flag"
	"fmt"

	"github.com/bvk/sbeerest/subcmds/cmdutil"
	"github.com/visvasity/cli"
)

type Balances struct {
	cmdutil.ClientFlags
	cmdutil.MarketFlags
}

func (c *Balances) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("balances", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	c.MarketFlags.SetFlags(fset)
	return "balances", fset, cli.CmdFunc(c.run)
}

func (c *Balances) Purpose() string {
	return "Prints the account balances for the assets of a symbol."
}

func (c *Balances) run(ctx context.Context, args []string) error {
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

	return cmdutil.PrintResult(client.TradingBalances(ctx, c.Exchange, trade, args[0], creds))
}
