// Copyright (c) 2025 BVK Chaitanya

package order

import (
	"context"
	"flag"
	"fmt"

	"github.com/bvk/sbeerest/subcmds/cmdutil"
	"github.com/visvasity/cli"
)

type Cancel struct {
	cmdutil.ClientFlags
	cmdutil.MarketFlags

	orderID       string
	clientOrderID string
}

func (c *Cancel) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("cancel", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	c.MarketFlags.SetFlags(fset)
	fset.StringVar(&c.orderID, "order-id", "", "exchange order id")
	fset.StringVar(&c.clientOrderID, "client-order-id", "", "client order id")
	return "cancel", fset, cli.CmdFunc(c.run)
}

func (c *Cancel) Purpose() string {
	return "Cancels an order by its order id or client order id."
}

func (c *Cancel) run(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("this command takes one (symbol) argument")
	}
	if len(c.orderID) == 0 && len(c.clientOrderID) == 0 {
		return fmt.Errorf("one of order-id or client-order-id flags is required")
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

	return cmdutil.PrintResult(client.CancelOrder(ctx, c.Exchange, trade, args[0], c.orderID, c.clientOrderID, creds))
}
