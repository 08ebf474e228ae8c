// Copyright (c) 2025 BVK Chaitanya

package order

import (
	"context"
	"flag"
	"fmt"

	"github.com/bvk/sbeerest/sbee"
	"github.com/bvk/sbeerest/subcmds/cmdutil"
	"github.com/shopspring/decimal"
	"github.com/visvasity/cli"
)

type Limit struct {
	cmdutil.ClientFlags
	cmdutil.MarketFlags
	idFlags

	side string

	price         decimal.Decimal
	quoteQuantity decimal.Decimal
	baseQuantity  decimal.Decimal

	leverage int
	contract int
}

func (c *Limit) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("limit", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	c.MarketFlags.SetFlags(fset)
	c.idFlags.setFlags(fset)
	fset.StringVar(&c.side, "side", "", "order side (BUY or SELL)")
	cmdutil.DecimalVar(fset, &c.price, "price", "limit price")
	cmdutil.DecimalVar(fset, &c.quoteQuantity, "quote-quantity", "order size in the quote currency")
	cmdutil.DecimalVar(fset, &c.baseQuantity, "base-quantity", "order size in the base currency")
	fset.IntVar(&c.leverage, "leverage", 0, "leverage for futures orders")
	fset.IntVar(&c.contract, "contract", 0, "number of contracts for futures orders")
	return "limit", fset, cli.CmdFunc(c.run)
}

func (c *Limit) Purpose() string {
	return "Places a limit order."
}

func (c *Limit) run(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("this command takes one (symbol) argument")
	}
	side, err := cmdutil.ParseSide(c.side)
	if err != nil {
		return err
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

	order := &sbee.LimitOrder{
		Symbol:        args[0],
		ClientOrderID: c.id(),
		Price:         c.price,
		QuoteQuantity: c.quoteQuantity,
		BaseQuantity:  c.baseQuantity,
		Leverage:      c.leverage,
		Contract:      c.contract,
		Side:          side,
	}
	return cmdutil.PrintResult(client.PlaceLimitOrder(ctx, c.Exchange, trade, order, creds))
}
