// Copyright (c) 2025 BVK Chaitanya

package market

import (
	"context"
	"flag"
	"fmt"

	"github.com/bvk/sbeerest/subcmds/cmdutil"
	"github.com/visvasity/cli"
)

type SystemTime struct {
	cmdutil.ClientFlags

	exchange string
}

func (c *SystemTime) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("system-time", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	fset.StringVar(&c.exchange, "exchange", "Binance", "name of the exchange")
	return "system-time", fset, cli.CmdFunc(c.run)
}

func (c *SystemTime) Purpose() string {
	return "Prints the exchange server time."
}

func (c *SystemTime) run(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("this command takes no arguments")
	}
	client, err := c.Client()
	if err != nil {
		return err
	}
	defer client.Close()

	return cmdutil.PrintResult(client.SystemTime(ctx, c.exchange))
}
