// Copyright (c) 2025 BVK Chaitanya

package sbee

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
)

func marketPath(exchange string, trade TradeType, op string) string {
	return pathOf("Crypto", exchange, string(trade), op)
}

func orZero[T any](v *T) *T {
	if v == nil {
		return new(T)
	}
	return v
}

func SystemTimeEndpoint(exchange string) *Endpoint {
	return getEndpoint("SystemTime", pathOf("Crypto", exchange, "SystemTime"))
}

func RecentTradesEndpoint(exchange string, trade TradeType, symbol string, depth int) *Endpoint {
	return getEndpoint("RecentTrades", marketPath(exchange, trade, "RecentTrades"),
		QueryParam{"symbol", symbol},
		QueryParam{"depth", strconv.Itoa(depth)})
}

func CurrenciesEndpoint(exchange string, trade TradeType) *Endpoint {
	return getEndpoint("Currencies", marketPath(exchange, trade, "Currencies"))
}

func OrderBookEndpoint(exchange string, trade TradeType, symbol string, depth int) *Endpoint {
	return getEndpoint("OrderBook", marketPath(exchange, trade, "OrderBook"),
		QueryParam{"symbol", symbol},
		QueryParam{"depth", strconv.Itoa(depth)})
}

func TickersEndpoint(exchange string, trade TradeType, symbol string) *Endpoint {
	return getEndpoint("Tickers", marketPath(exchange, trade, "Tickers"),
		QueryParam{"symbol", symbol})
}

// KLineEndpoint returns the candles endpoint. Zero start and end times are
// not sent.
func KLineEndpoint(exchange string, trade TradeType, q *KLineQuery) *Endpoint {
	q = orZero(q)
	params := []QueryParam{
		{"symbol", q.Symbol},
		{"interval", q.Interval},
	}
	if q.StartTime != 0 {
		params = append(params, QueryParam{"startTime", strconv.FormatInt(q.StartTime, 10)})
	}
	if q.EndTime != 0 {
		params = append(params, QueryParam{"endTime", strconv.FormatInt(q.EndTime, 10)})
	}
	params = append(params, QueryParam{"limit", strconv.Itoa(q.Limit)})
	return getEndpoint("KLine", marketPath(exchange, trade, "KLine"), params...)
}

type klineFormationBody struct {
	Symbol     string `json:"symbol"`
	Interval   string `json:"interval"`
	Limit      int    `json:"limit"`
	StartTime  *int64 `json:"startTime,omitempty"`
	EndTime    *int64 `json:"endTime,omitempty"`
	Formations any    `json:"formations,omitempty"`
}

// KlineFormationEndpoint returns the formation analysis endpoint. Start and
// end times are dropped together when either one of them is missing. Raw
// formations are spliced into the body without re-encoding.
func KlineFormationEndpoint(exchange string, trade TradeType, q *KlineFormationQuery) *Endpoint {
	q = orZero(q)
	body := &klineFormationBody{
		Symbol:   q.Symbol,
		Interval: q.Interval,
		Limit:    q.Limit,
	}
	if q.StartTime != nil && q.EndTime != nil {
		body.StartTime, body.EndTime = q.StartTime, q.EndTime
	}
	path := marketPath(exchange, trade, "KlineFormation")

	raw, ok := isRaw(q.Formations)
	if !ok {
		if !isEmpty(q.Formations) {
			body.Formations = q.Formations
		}
		return postEndpoint("KlineFormation", path, body)
	}
	if len(raw) == 0 {
		return postEndpoint("KlineFormation", path, body)
	}
	prefix, err := encodeJSON(body)
	if err != nil {
		// Only strings and numbers are encoded above.
		panic(err)
	}
	spliced := string(prefix[:len(prefix)-1]) + `,"formations":` + raw + "}"
	return postEndpoint("KlineFormation", path, RawJSON(spliced))
}

type symbolBody struct {
	Symbol string `json:"symbol"`
	Credentials
}

func TradingBalancesEndpoint(exchange string, trade TradeType, symbol string, creds *Credentials) *Endpoint {
	body := &symbolBody{Symbol: symbol, Credentials: *orZero(creds)}
	return postEndpoint("TradingBalances", marketPath(exchange, trade, "TradingBalances"), body)
}

type orderHistoryBody struct {
	Symbol string     `json:"symbol"`
	State  OrderState `json:"state"`
	Credentials
}

func OrderHistoryEndpoint(exchange string, trade TradeType, symbol string, state OrderState, creds *Credentials) *Endpoint {
	body := &orderHistoryBody{Symbol: symbol, State: state, Credentials: *orZero(creds)}
	return postEndpoint("OrderHistory", marketPath(exchange, trade, "OrderHistory"), body)
}

type limitOrderBody struct {
	*LimitOrder
	Credentials
}

func PlaceLimitOrderEndpoint(exchange string, trade TradeType, order *LimitOrder, creds *Credentials) *Endpoint {
	body := &limitOrderBody{LimitOrder: orZero(order), Credentials: *orZero(creds)}
	return postEndpoint("PlaceLimitOrder", marketPath(exchange, trade, "PlaceLimitOrder"), body)
}

type marketOrderBody struct {
	*MarketOrder
	Credentials
}

func PlaceMarketOrderEndpoint(exchange string, trade TradeType, order *MarketOrder, creds *Credentials) *Endpoint {
	body := &marketOrderBody{MarketOrder: orZero(order), Credentials: *orZero(creds)}
	return postEndpoint("PlaceMarketOrder", marketPath(exchange, trade, "PlaceMarketOrder"), body)
}

type stopOrderBody struct {
	*StopOrder
	Credentials
}

func PlaceLimitStopLossOrderEndpoint(exchange string, trade TradeType, order *StopOrder, creds *Credentials) *Endpoint {
	body := &stopOrderBody{StopOrder: orZero(order), Credentials: *orZero(creds)}
	return postEndpoint("PlaceLimitStopLossOrder", marketPath(exchange, trade, "PlaceLimitStopLossOrder"), body)
}

func PlaceLimitTakeProfitOrderEndpoint(exchange string, trade TradeType, order *StopOrder, creds *Credentials) *Endpoint {
	body := &stopOrderBody{StopOrder: orZero(order), Credentials: *orZero(creds)}
	return postEndpoint("PlaceLimitTakeProfitOrder", marketPath(exchange, trade, "PlaceLimitTakeProfitOrder"), body)
}

type leverageBody struct {
	Symbol   string `json:"symbol"`
	Leverage int    `json:"leverage,string"`
	Credentials
}

func SetLeverageEndpoint(exchange string, trade TradeType, symbol string, leverage int, creds *Credentials) *Endpoint {
	body := &leverageBody{Symbol: symbol, Leverage: leverage, Credentials: *orZero(creds)}
	return postEndpoint("SetLeverage", marketPath(exchange, trade, "SetLeverage"), body)
}

type cancelOrderBody struct {
	Symbol        string `json:"symbol"`
	OrderID       string `json:"orderId"`
	ClientOrderID string `json:"clientOrderId"`
	Credentials
}

// CancelOrderEndpoint returns the single order cancel endpoint. Order ids
// can be strings or numbers; they are always sent as JSON strings.
func CancelOrderEndpoint(exchange string, trade TradeType, symbol string, orderID, clientOrderID any, creds *Credentials) *Endpoint {
	body := &cancelOrderBody{
		Symbol:        symbol,
		OrderID:       textOf(orderID),
		ClientOrderID: textOf(clientOrderID),
		Credentials:   *orZero(creds),
	}
	return postEndpoint("CancelOrder", marketPath(exchange, trade, "CancelOrder"), body)
}

func CancelOrdersBySymbolEndpoint(exchange string, trade TradeType, symbol string, creds *Credentials) *Endpoint {
	body := &symbolBody{Symbol: symbol, Credentials: *orZero(creds)}
	return postEndpoint("CancelOrdersBySymbol", marketPath(exchange, trade, "CancelOrdersBySymbol"), body)
}

// CancelBatchOrdersEndpoint takes a *CancelBatchRequest or pre-serialized
// JSON. Other batch endpoints below follow the same convention with their
// respective record types.
func CancelBatchOrdersEndpoint(exchange string, trade TradeType, payload any) *Endpoint {
	return postEndpoint("CancelBatchOrders", marketPath(exchange, trade, "CancelBatchOrders"), payload)
}

// CancelBatchOrdersForPeopleEndpoint takes []*CancelForPeopleItem.
func CancelBatchOrdersForPeopleEndpoint(exchange string, trade TradeType, payload any) *Endpoint {
	return postEndpoint("CancelBatchOrdersForPeople", marketPath(exchange, trade, "CancelBatchOrdersForPeople"), payload)
}

// PlaceBatchMarketOrdersEndpoint takes a *MarketBatchRequest.
func PlaceBatchMarketOrdersEndpoint(exchange string, trade TradeType, payload any) *Endpoint {
	return postEndpoint("PlaceBatchMarketOrders", marketPath(exchange, trade, "PlaceBatchMarketOrders"), payload)
}

// PlaceBatchLimitOrdersEndpoint takes a *LimitBatchRequest.
func PlaceBatchLimitOrdersEndpoint(exchange string, trade TradeType, payload any) *Endpoint {
	return postEndpoint("PlaceBatchLimitOrders", marketPath(exchange, trade, "PlaceBatchLimitOrders"), payload)
}

// TradingBalancesForPeopleEndpoint takes []*BalanceForPeopleItem.
func TradingBalancesForPeopleEndpoint(exchange string, trade TradeType, payload any) *Endpoint {
	return postEndpoint("TradingBalancesForPeople", marketPath(exchange, trade, "TradingBalancesForPeople"), payload)
}

// PlaceLimitOrderForPeopleEndpoint takes []*LimitForPeopleItem.
func PlaceLimitOrderForPeopleEndpoint(exchange string, trade TradeType, payload any) *Endpoint {
	return postEndpoint("PlaceLimitOrderForPeople", marketPath(exchange, trade, "PlaceLimitOrderForPeople"), payload)
}

// PlaceMarketOrderForPeopleEndpoint takes []*MarketForPeopleItem.
func PlaceMarketOrderForPeopleEndpoint(exchange string, trade TradeType, payload any) *Endpoint {
	return postEndpoint("PlaceMarketOrderForPeople", marketPath(exchange, trade, "PlaceMarketOrderForPeople"), payload)
}

func MarketsEndpoint() *Endpoint {
	return getEndpoint("Markets", pathOf("Crypto", "Info", "Markets"))
}

func MoneyPairValuesEndpoint() *Endpoint {
	return getEndpoint("MoneyPairValues", pathOf("Fintech", "MoneyPairValues"))
}

// MultiOrderBookEndpoint takes a *MultiMarketQuery or pre-serialized JSON.
func MultiOrderBookEndpoint(trade TradeType, query any) *Endpoint {
	return postEndpoint("MultiOrderBook", pathOf("Crypto", "MultiMarket", string(trade), "OrderBook"), query)
}

func MultiRecentTradesEndpoint(trade TradeType, query any) *Endpoint {
	return postEndpoint("MultiRecentTrades", pathOf("Crypto", "MultiMarket", string(trade), "RecentTrades"), query)
}

func SteppedOrderBookEndpoint(trade TradeType, query any) *Endpoint {
	return postEndpoint("SteppedOrderBook", pathOf("Crypto", "MultiMarket", string(trade), "SteppedOrderBook"), query)
}

func NewsEndpoint(language string, pageSize, pageNumber int) *Endpoint {
	return getEndpoint("News", pathOf("Crypto", "News", "List"),
		QueryParam{"language", language},
		QueryParam{"pageSize", strconv.Itoa(pageSize)},
		QueryParam{"pageNumber", strconv.Itoa(pageNumber)})
}

func CountryEndpoint() *Endpoint {
	return getEndpoint("Country", pathOf("Crypto", "Country", "List"))
}

// textOf formats order ids as text. Integer and floating point numbers are
// formatted in base 10 without exponents.
func textOf(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case int:
		return strconv.Itoa(x)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}

// isEmpty reports whether v is nil, a nil pointer or an empty list.
func isEmpty(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	}
	return false
}
