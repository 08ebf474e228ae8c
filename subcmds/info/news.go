// Copyright (c) 2025 BVK Chaitanya

package info

import (
	"context"
	"flag"
	"fmt"

	"github.com/bvk/sbeerest/subcmds/cmdutil"
	"github.com/visvasity/cli"
)

type News struct {
	cmdutil.ClientFlags

	language   string
	pageSize   int
	pageNumber int
}

func (c *News) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("news", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	fset.StringVar(&c.language, "language", "en", "language of the news articles")
	fset.IntVar(&c.pageSize, "page-size", 10, "number of articles per page")
	fset.IntVar(&c.pageNumber, "page", 1, "page number starting from one")
	return "news", fset, cli.CmdFunc(c.run)
}

func (c *News) Purpose() string {
	return "Prints a page of crypto news."
}

func (c *News) run(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("this command takes no arguments")
	}
	client, err := c.Client()
	if err != nil {
		return err
	}
	defer client.Close()

	return cmdutil.PrintResult(client.News(ctx, c.language, c.pageSize, c.pageNumber))
}
