// Copyright (c) 2025 BVK Chaitanya

package info

import (
	"context"
	"flag"
	"fmt"

	"github.com/bvk/sbeerest/subcmds/cmdutil"
	"github.com/visvasity/cli"
)

type MoneyPairs struct {
	cmdutil.ClientFlags
}

func (c *MoneyPairs) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("money-pairs", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	return "money-pairs", fset, cli.CmdFunc(c.run)
}

func (c *MoneyPairs) Purpose() string {
	return "Prints fiat money pair values."
}

func (c *MoneyPairs) run(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("this command takes no arguments")
	}
	client, err := c.Client()
	if err != nil {
		return err
	}
	defer client.Close()

	return cmdutil.PrintResult(client.MoneyPairValues(ctx))
}
