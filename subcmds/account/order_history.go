// Copyright (c) 2025 BVK Chaitanya

package account

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/bvk/sbeerest/sbee"
	"github.com/bvk/sbeerest/subcmds/cmdutil"
	"github.com/visvasity/cli"
)

type OrderHistory struct {
	cmdutil.ClientFlags
	cmdutil.MarketFlags

	state string
}

func (c *OrderHistory) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("order-history", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	c.MarketFlags.SetFlags(fset)
	fset.StringVar(&c.state, "state", "ALL", "order state filter (ALL, NEW, FILLED or CANCELED)")
	return "order-history", fset, cli.CmdFunc(c.run)
}

func (c *OrderHistory) Purpose() string {
	return "Prints the orders of a symbol."
}

func (c *OrderHistory) run(ctx context.Context, args []string) error {
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

	state := sbee.OrderState(strings.ToUpper(c.state))
	return cmdutil.PrintResult(client.OrderHistory(ctx, c.Exchange, trade, args[0], state, creds))
}
