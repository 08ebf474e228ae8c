// Copyright (c) 2025 BVK Chaitanya

package info

import (
	"context"
	"flag"
	"fmt"

	"github.com/bvk/sbeerest/subcmds/cmdutil"
	"github.com/visvasity/cli"
)

type Countries struct {
	cmdutil.ClientFlags
}

func (c *Countries) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("countries", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	return "countries", fset, cli.CmdFunc(c.run)
}

func (c *Countries) Purpose() string {
	return "Prints the country list."
}

func (c *Countries) run(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("this command takes no arguments")
	}
	client, err := c.Client()
	if err != nil {
		return err
	}
	defer client.Close()

	return cmdutil.PrintResult(client.Country(ctx))
}
