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

type stopOrder struct {
	cmdutil.ClientFlags
	cmdutil.MarketFlags
	idFlags

	side string

	quantity      decimal.Decimal
	stopPrice     decimal.Decimal
	orderPrice    decimal.Decimal
	price         decimal.Decimal
	trailingDelta decimal.Decimal
}

func (c *stopOrder) command(name string, run cli.CmdFunc) (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet(name, flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	c.MarketFlags.SetFlags(fset)
	c.idFlags.setFlags(fset)
	fset.StringVar(&c.side, "side", "", "order side (BUY or SELL)")
	cmdutil.DecimalVar(fset, &c.quantity, "quantity", "order size in the base currency")
	cmdutil.DecimalVar(fset, &c.stopPrice, "stop-price", "trigger price")
	cmdutil.DecimalVar(fset, &c.orderPrice, "order-price", "limit price of the order placed when triggered")
	cmdutil.DecimalVar(fset, &c.price, "price", "reference price")
	cmdutil.DecimalVar(fset, &c.trailingDelta, "trailing-delta", "trailing delta for trailing stops")
	return name, fset, run
}

func (c *stopOrder) order(args []string) (*sbee.StopOrder, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("this command takes one (symbol) argument")
	}
	side, err := cmdutil.ParseSide(c.side)
	if err != nil {
		return nil, err
	}
	order := &sbee.StopOrder{
		Symbol:        args[0],
		Quantity:      c.quantity,
		ClientOrderID: c.id(),
		StopPrice:     c.stopPrice,
		OrderPrice:    c.orderPrice,
		Price:         c.price,
		TrailingDelta: c.trailingDelta,
		Side:          side,
	}
	return order, nil
}

type placeStopFunc func(*sbee.Client, context.Context, string, sbee.TradeType, *sbee.StopOrder, *sbee.Credentials) *sbee.Result

func (c *stopOrder) place(ctx context.Context, args []string, placeFunc placeStopFunc) error {
	order, err := c.order(args)
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

	return cmdutil.PrintResult(placeFunc(client, ctx, c.Exchange, trade, order, creds))
}

type StopLoss struct {
	stopOrder
}

func (c *StopLoss) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	return c.command("stop-loss", cli.CmdFunc(c.run))
}

func (c *StopLoss) Purpose() string {
	return "Places a limit stop-loss order."
}

func (c *StopLoss) run(ctx context.Context, args []string) error {
	return c.place(ctx, args, (*sbee.Client).PlaceLimitStopLossOrder)
}

type TakeProfit struct {
	stopOrder
}

func (c *TakeProfit) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	return c.command("take-profit", cli.CmdFunc(c.run))
}

func (c *TakeProfit) Purpose() string {
	return "Places a limit take-profit order."
}

func (c *TakeProfit) run(ctx context.Context, args []string) error {
	return c.place(ctx, args, (*sbee.Client).PlaceLimitTakeProfitOrder)
}
