// Copyright (c) 2025 BVK Chaitanya

package sbee

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// TradeType selects the market segment on an exchange.
type TradeType string

const (
	Spot    TradeType = "Spot"
	Futures TradeType = "Futures"
)

type Side string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

// OrderState filters the OrderHistory results.
type OrderState string

const (
	AllOrders      OrderState = "ALL"
	NewOrders      OrderState = "NEW"
	FilledOrders   OrderState = "FILLED"
	CanceledOrders OrderState = "CANCELED"
)

// Credentials hold the exchange account keys that are forwarded to the
// gateway. They are copied verbatim into the request bodies, so they must be
// valid UTF-8; bodies with invalid credentials fail to encode.
type Credentials struct {
	APIKey    string `json:"apiKey" yaml:"apiKey"`
	APISecret string `json:"apiSecret" yaml:"apiSecret"`
	APIPass   string `json:"apiPass" yaml:"apiPass"`
}

func (c Credentials) checkUTF8() error {
	for _, v := range []string{c.APIKey, c.APISecret, c.APIPass} {
		if !utf8.ValidString(v) {
			return fmt.Errorf("credentials must be valid utf-8")
		}
	}
	return nil
}

// RawJSON holds pre-serialized JSON that is sent to the gateway as is.
type RawJSON string

// Number is a decimal that is encoded as a bare JSON number instead of a
// quoted string. Batch payloads use numbers where single-order payloads use
// strings.
type Number struct {
	Decimal decimal.Decimal
}

func NewNumber(s string) (Number, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Number{}, err
	}
	return Number{Decimal: d}, nil
}

func (v *Number) UnmarshalJSON(raw []byte) error {
	if s := string(raw); s == "" || s == `""` || s == "null" {
		v.Decimal = decimal.Zero
		return nil
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(raw); err != nil {
		return err
	}
	v.Decimal = d
	return nil
}

func (v Number) MarshalJSON() ([]byte, error) {
	return []byte(v.Decimal.String()), nil
}

func (v Number) String() string {
	return v.Decimal.String()
}

// LimitOrder describes a single limit order. Leverage and Contract are used
// only by futures markets.
type LimitOrder struct {
	Symbol        string          `json:"symbol"`
	ClientOrderID string          `json:"ClientOrderId"`
	Price         decimal.Decimal `json:"price"`
	QuoteQuantity decimal.Decimal `json:"quoteQuantity"`
	BaseQuantity  decimal.Decimal `json:"baseQuantity"`
	Leverage      int             `json:"leverage,omitempty"`
	Contract      int             `json:"contract,omitempty"`
	Side          Side            `json:"side"`
}

type MarketOrder struct {
	Symbol        string          `json:"symbol"`
	ClientOrderID string          `json:"ClientOrderId"`
	Price         decimal.Decimal `json:"price"`
	QuoteQuantity decimal.Decimal `json:"quoteQuantity"`
	BaseQuantity  decimal.Decimal `json:"baseQuantity"`
	Leverage      int             `json:"leverage"`
	Contract      int             `json:"contract"`
	Side          Side            `json:"side"`
}

// StopOrder describes a limit stop-loss or a limit take-profit order.
type StopOrder struct {
	Symbol        string          `json:"symbol"`
	Quantity      decimal.Decimal `json:"quantity"`
	ClientOrderID string          `json:"ClientOrderId"`
	StopPrice     decimal.Decimal `json:"stopPrice"`
	OrderPrice    decimal.Decimal `json:"orderPrice"`
	Price         decimal.Decimal `json:"price"`
	TrailingDelta decimal.Decimal `json:"trailingDelta"`
	Side          Side            `json:"side"`
}

// KLineQuery selects the candles returned by the KLine operation. Zero
// StartTime and EndTime values are left out of the query.
type KLineQuery struct {
	Symbol    string
	Interval  string
	StartTime int64
	EndTime   int64
	Limit     int
}

// Formation is one technical-analysis formation requested from the
// KlineFormation operation.
type Formation struct {
	Formation    string `json:"Formation"`
	TimePeriod   int    `json:"TimePeriod,omitempty"`
	Source       string `json:"Source,omitempty"`
	FastPeriod   int    `json:"FastPeriod,omitempty"`
	SlowPeriod   int    `json:"SlowPeriod,omitempty"`
	SignalPeriod int    `json:"SignalPeriod,omitempty"`
}

// KlineFormationQuery is the request for KlineFormation operation.
//
// Formations is either a []Formation, or a RawJSON (or json.RawMessage) array
// that is embedded without modification. StartTime and EndTime are used only
// when both are set.
type KlineFormationQuery struct {
	Symbol     string
	Interval   string
	Limit      int
	Formations any
	StartTime  *int64
	EndTime    *int64
}

// MultiMarketQuery is the request body for the cross-exchange market data
// operations.
type MultiMarketQuery struct {
	Symbol    string   `json:"symbol"`
	Depth     int      `json:"depth"`
	Precision int      `json:"precision,omitempty"`
	Exchanges []string `json:"exchanges"`
}

// CancelBatchItem identifies one order in a CancelBatchRequest.
type CancelBatchItem struct {
	Symbol        string `json:"symbol"`
	ClientOrderID string `json:"clientOrderId"`
	OrderID       string `json:"orderId"`
}

// CancelBatchRequest cancels multiple orders from a single account.
type CancelBatchRequest struct {
	Credentials
	Orders []*CancelBatchItem `json:"orders"`
}

// CancelForPeopleItem cancels one order from its own account.
type CancelForPeopleItem struct {
	Symbol        string `json:"symbol"`
	OrderID       string `json:"orderId"`
	ClientOrderID string `json:"clientOrderId"`
	Credentials
}

type MarketBatchItem struct {
	Symbol        string `json:"symbol"`
	QuoteQuantity Number `json:"quoteQuantity"`
	BaseQuantity  Number `json:"baseQuantity"`
	ClientOrderID string `json:"clientOrderId"`
	Side          Side   `json:"side"`
}

// MarketBatchRequest places multiple market orders from a single account.
type MarketBatchRequest struct {
	Credentials
	Orders []*MarketBatchItem `json:"orders"`
}

type LimitBatchItem struct {
	Symbol        string `json:"symbol"`
	ClientOrderID string `json:"clientOrderId"`
	Price         Number `json:"price"`
	QuoteQuantity Number `json:"quoteQuantity"`
	BaseQuantity  Number `json:"baseQuantity"`
	Side          Side   `json:"side"`
}

// LimitBatchRequest places multiple limit orders from a single account.
type LimitBatchRequest struct {
	Credentials
	Orders []*LimitBatchItem `json:"orders"`
}

// BalanceForPeopleItem queries balances of one account.
type BalanceForPeopleItem struct {
	Symbol string `json:"symbol"`
	Credentials
}

// LimitForPeopleItem places one limit order from its own account.
type LimitForPeopleItem struct {
	Credentials
	Side          Side   `json:"side"`
	Price         Number `json:"price"`
	BaseQuantity  Number `json:"baseQuantity"`
	QuoteQuantity Number `json:"quoteQuantity"`
	ClientOrderID string `json:"cliOrId"`
	Symbol        string `json:"symbol"`
}

// MarketForPeopleItem places one market order from its own account.
type MarketForPeopleItem struct {
	Symbol        string `json:"symbol"`
	QuoteQuantity Number `json:"quoteQuantity"`
	BaseQuantity  Number `json:"baseQuantity"`
	ClientOrderID string `json:"ClientOrderId"`
	Side          Side   `json:"side"`
	Credentials
}

// isRaw reports whether v holds pre-serialized JSON and returns it.
func isRaw(v any) (string, bool) {
	switch x := v.(type) {
	case RawJSON:
		return string(x), true
	case *RawJSON:
		if x == nil {
			return "", true
		}
		return string(*x), true
	case json.RawMessage:
		return string(x), true
	}
	return "", false
}
