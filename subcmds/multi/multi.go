// Copyright (c) 2025 BVK Chaitanya

package multi

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/bvk/sbeerest/sbee"
	"github.com/bvk/sbeerest/subcmds/cmdutil"
	"github.com/visvasity/cli"
)

type callFunc func(*sbee.Client, context.Context, sbee.TradeType, any) *sbee.Result

// Query runs one of the cross-exchange market data operations. The query is
// built from the flags or read as is from a JSON file.
type Query struct {
	cmdutil.ClientFlags

	name    string
	purpose string
	call    callFunc

	trade     string
	file      string
	exchanges string
	depth     int
	precision int
}

// Commands returns the multi-market commands.
func Commands() []cli.Command {
	return []cli.Command{
		&Query{
			name:    "order-book",
			purpose: "Prints the order book of a symbol across exchanges.",
			call:    (*sbee.Client).MultiOrderBook,
		},
		&Query{
			name:    "recent-trades",
			purpose: "Prints recent trades of a symbol across exchanges.",
			call:    (*sbee.Client).MultiRecentTrades,
		},
		&Query{
			name:    "stepped-order-book",
			purpose: "Prints the order book of a symbol across exchanges grouped into price steps.",
			call:    (*sbee.Client).SteppedOrderBook,
		},
	}
}

func (c *Query) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet(c.name, flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	fset.StringVar(&c.trade, "trade", "Spot", "trade type (Spot or Futures)")
	fset.StringVar(&c.file, "file", "", "path to a json query file; overrides other query flags")
	fset.StringVar(&c.exchanges, "exchanges", "Binance", "comma separated list of exchanges")
	fset.IntVar(&c.depth, "depth", 10, "number of price levels or trades")
	fset.IntVar(&c.precision, "precision", 0, "price precision for the order book")
	return c.name, fset, cli.CmdFunc(c.run)
}

func (c *Query) Purpose() string {
	return c.purpose
}

func (c *Query) query(args []string) (any, error) {
	if len(c.file) != 0 {
		if len(args) != 0 {
			return nil, fmt.Errorf("symbol argument cannot be used with a query file")
		}
		data, err := os.ReadFile(c.file)
		if err != nil {
			return nil, err
		}
		return sbee.RawJSON(data), nil
	}
	if len(args) != 1 {
		return nil, fmt.Errorf("this command takes one (symbol) argument")
	}
	var exchanges []string
	for _, ex := range strings.Split(c.exchanges, ",") {
		if ex = strings.TrimSpace(ex); len(ex) != 0 {
			exchanges = append(exchanges, ex)
		}
	}
	q := &sbee.MultiMarketQuery{
		Symbol:    args[0],
		Depth:     c.depth,
		Precision: c.precision,
		Exchanges: exchanges,
	}
	return q, nil
}

func (c *Query) run(ctx context.Context, args []string) error {
	q, err := c.query(args)
	if err != nil {
		return err
	}
	trade, err := cmdutil.ParseTradeType(c.trade)
	if err != nil {
		return err
	}
	client, err := c.Client()
	if err != nil {
		return err
	}
	defer client.Close()

	return cmdutil.PrintResult(c.call(client, ctx, trade, q))
}
