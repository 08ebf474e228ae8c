// Copyright (c) 2025 BVK Chaitanya

package batch

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/bvk/sbeerest/clientid"
	"github.com/bvk/sbeerest/sbee"
	"github.com/bvk/sbeerest/subcmds/cmdutil"
	"github.com/visvasity/cli"
)

type callFunc func(*sbee.Client, context.Context, string, sbee.TradeType, any) *sbee.Result

// fillFunc decodes a payload and assigns client order ids to the records
// that have none. All other payload fields are kept.
type fillFunc func(data []byte, seq *clientid.Sequence) (any, error)

// Batch runs one of the batch operations with a payload read from a JSON
// file. The payload is sent as is unless client order ids are derived from a
// seed.
type Batch struct {
	cmdutil.ClientFlags
	cmdutil.MarketFlags

	name    string
	purpose string
	call    callFunc
	fill    fillFunc

	file   string
	seed   string
	offset uint64
}

// Commands returns the batch commands.
func Commands() []cli.Command {
	return []cli.Command{
		&Batch{
			name:    "cancel",
			purpose: "Cancels multiple orders of a single account.",
			call:    (*sbee.Client).CancelBatchOrders,
		},
		&Batch{
			name:    "cancel-for-people",
			purpose: "Cancels orders of multiple accounts.",
			call:    (*sbee.Client).CancelBatchOrdersForPeople,
		},
		&Batch{
			name:    "market",
			purpose: "Places multiple market orders from a single account.",
			call:    (*sbee.Client).PlaceBatchMarketOrders,
			fill:    fillOrders("clientOrderId"),
		},
		&Batch{
			name:    "limit",
			purpose: "Places multiple limit orders from a single account.",
			call:    (*sbee.Client).PlaceBatchLimitOrders,
			fill:    fillOrders("clientOrderId"),
		},
		&Batch{
			name:    "balances-for-people",
			purpose: "Prints balances of multiple accounts.",
			call:    (*sbee.Client).TradingBalancesForPeople,
		},
		&Batch{
			name:    "limit-for-people",
			purpose: "Places limit orders from multiple accounts.",
			call:    (*sbee.Client).PlaceLimitOrderForPeople,
			fill:    fillItems("cliOrId"),
		},
		&Batch{
			name:    "market-for-people",
			purpose: "Places market orders from multiple accounts.",
			call:    (*sbee.Client).PlaceMarketOrderForPeople,
			fill:    fillItems("ClientOrderId"),
		},
	}
}

func (c *Batch) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet(c.name, flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	c.MarketFlags.SetFlags(fset)
	fset.StringVar(&c.file, "file", "", "path to the json payload file")
	if c.fill != nil {
		fset.StringVar(&c.seed, "client-order-id-seed", "", "derive missing client order ids from this seed")
		fset.Uint64Var(&c.offset, "client-order-id-offset", 0, "offset of the first derived client order id")
	}
	return c.name, fset, cli.CmdFunc(c.run)
}

func (c *Batch) Purpose() string {
	return c.purpose
}

func (c *Batch) run(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("this command takes no arguments")
	}
	if len(c.file) == 0 {
		return fmt.Errorf("payload file flag is required")
	}
	data, err := os.ReadFile(c.file)
	if err != nil {
		return err
	}
	var payload any = sbee.RawJSON(data)
	if c.fill != nil && len(c.seed) != 0 {
		v, err := c.fill(data, clientid.New(c.seed, c.offset))
		if err != nil {
			return fmt.Errorf("could not prepare the payload: %w", err)
		}
		payload = v
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

	return cmdutil.PrintResult(c.call(client, ctx, c.Exchange, trade, payload))
}

// fillOrders returns a fillFunc for payloads with an "orders" list of order
// records that keep their client order id under the key.
func fillOrders(key string) fillFunc {
	return func(data []byte, seq *clientid.Sequence) (any, error) {
		v, err := decodeJSON(data)
		if err != nil {
			return nil, err
		}
		m, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("payload must be a json object")
		}
		orders, ok := m["orders"].([]any)
		if !ok {
			return nil, fmt.Errorf("payload must have an orders list")
		}
		fillIDs(orders, key, seq)
		return m, nil
	}
}

// fillItems returns a fillFunc for payloads that are lists of order records
// that keep their client order id under the key.
func fillItems(key string) fillFunc {
	return func(data []byte, seq *clientid.Sequence) (any, error) {
		v, err := decodeJSON(data)
		if err != nil {
			return nil, err
		}
		items, ok := v.([]any)
		if !ok {
			return nil, fmt.Errorf("payload must be a json list")
		}
		fillIDs(items, key, seq)
		return items, nil
	}
}

// fillIDs assigns the next id to the records with a missing or empty id.
// Other fields are left untouched.
func fillIDs(records []any, key string, seq *clientid.Sequence) {
	for _, r := range records {
		m, ok := r.(map[string]any)
		if !ok {
			continue
		}
		switch id := m[key].(type) {
		case nil:
			m[key] = seq.Next()
		case string:
			if id == "" {
				m[key] = seq.Next()
			}
		}
	}
}

// decodeJSON decodes data keeping numbers in their original text.
func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after the json payload")
	}
	return v, nil
}
