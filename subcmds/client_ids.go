// Copyright (c) 2025 BVK Chaitanya

package subcmds

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/bvk/sbeerest/clientid"
	"github.com/google/uuid"
	"github.com/visvasity/cli"
)

// ClientIDs prints the client order ids that the order and batch commands
// derive with the -client-order-id-seed and -client-order-id-offset flags.
type ClientIDs struct {
	offset uint64
	count  uint64

	find string
}

func (c *ClientIDs) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("client-ids", flag.ContinueOnError)
	fset.Uint64Var(&c.offset, "client-order-id-offset", 0, "offset of the first id")
	fset.Uint64Var(&c.count, "count", 10, "number of ids to print or search")
	fset.StringVar(&c.find, "find", "", "print the offset that derives this id")
	return "client-ids", fset, cli.CmdFunc(c.run)
}

func (c *ClientIDs) Purpose() string {
	return "Prints the client order ids derived from a seed"
}

func (c *ClientIDs) Description() string {
	return `
Command "client-ids <seed>" prints one line per client order id with the
order command flags that reproduce it. An order placed with
"-client-order-id-seed=<seed> -client-order-id-offset=N" uses the id printed
for offset N. Batch commands assign consecutive offsets, starting at the
given offset, to the records without a client order id.

With the -find flag, the offsets in the range are searched for the given id
instead, which maps an order reported by the exchange back to its offset.
`
}

func (c *ClientIDs) run(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("this command takes one (seed) argument")
	}
	seq := clientid.New(args[0], c.offset)

	if len(c.find) != 0 {
		id, err := uuid.Parse(c.find)
		if err != nil {
			return fmt.Errorf("could not parse client order id %q: %w", c.find, err)
		}
		n, ok := findOffset(seq, id, c.offset, c.count)
		if !ok {
			return fmt.Errorf("id %s is not derived from the seed in offsets [%d, %d)", id, c.offset, c.offset+c.count)
		}
		fmt.Printf("-client-order-id-offset=%d\n", n)
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "OFFSET\tCLIENT-ORDER-ID\n")
	for i := uint64(0); i < c.count; i++ {
		n := seq.Offset()
		fmt.Fprintf(tw, "%d\t%s\n", n, seq.Next())
	}
	return tw.Flush()
}

// findOffset returns the offset in [from, from+count) at which the sequence
// derives the id.
func findOffset(seq *clientid.Sequence, id uuid.UUID, from, count uint64) (uint64, bool) {
	for n := from; n-from < count; n++ {
		if seq.At(n) == id {
			return n, true
		}
	}
	return 0, false
}
