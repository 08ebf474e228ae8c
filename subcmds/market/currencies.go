// Copyright (c) 2025 BVK Chaitanya

package market

import (
	"context"
	"flag"
	"fmt"

	"github.com/bvk/sbeerest/subcmds/cmdutil"
	"github.com/visvasity/cli"
)

type Currencies struct {
	cmdutil.ClientFlags
	cmdutil.MarketFlags
}

func (c *Currencies) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("currencies", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	c.MarketFlags.SetFlags(fset)
	return "currencies", fset, cli.CmdFunc(c.run)
}

func (c *Currencies) Purpose() string {
	return "Prints the currencies listed on an exchange."
}

func (c *Currencies) run(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("this command takes no arguments")
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

	return cmdutil.PrintResult(client.Currencies(ctx, c.Exchange, trade))
}
