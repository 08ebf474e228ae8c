// Copyright (c) 2025 BVK Chaitanya

package info

import (
	"context"
	"flag"
	"fmt"

	"github.com/bvk/sbeerest/subcmds/cmdutil"
	"github.com/visvasity/cli"
)

type Markets struct {
	cmdutil.ClientFlags
}

func (c *Markets) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("markets", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	return "markets", fset, cli.CmdFunc(c.run)
}

func (c *Markets) Purpose() string {
	return "Prints the markets supported by the gateway."
}

func (c *Markets) run(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("this command takes no arguments")
	}
	client, err := c.Client()
	if err != nil {
		return err
	}
	defer client.Close()

	return cmdutil.PrintResult(client.Markets(ctx))
}
