// Copyright (c) 2025 BVK Chaitanya

package cmdutil

import (
	"flag"

	"github.com/shopspring/decimal"
)

type decimalValue struct {
	p *decimal.Decimal
}

func (v decimalValue) String() string {
	if v.p == nil {
		return "0"
	}
	return v.p.String()
}

func (v decimalValue) Set(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return err
	}
	*v.p = d
	return nil
}

// DecimalVar defines a decimal flag with zero default value.
func DecimalVar(fset *flag.FlagSet, p *decimal.Decimal, name, usage string) {
	fset.Var(decimalValue{p}, name, usage)
}
