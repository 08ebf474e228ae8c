// Copyright (c) 2025 BVK Chaitanya

package order

import (
	"flag"

	"github.com/bvk/sbeerest/clientid"
	"github.com/bvk/sbeerest/sbee"
)

type idFlags struct {
	clientOrderID string

	seed   string
	offset uint64
}

func (f *idFlags) setFlags(fset *flag.FlagSet) {
	fset.StringVar(&f.clientOrderID, "client-order-id", "", "client order id (default=random uuid)")
	fset.StringVar(&f.seed, "client-order-id-seed", "", "derive the client order id from this seed")
	fset.Uint64Var(&f.offset, "client-order-id-offset", 0, "offset of the derived client order id")
}

func (f *idFlags) id() string {
	id := f.clientOrderID
	if len(f.seed) != 0 {
		clientid.New(f.seed, f.offset).Fill(&id)
	}
	if len(id) == 0 {
		id = sbee.NewClientOrderID()
	}
	return id
}
