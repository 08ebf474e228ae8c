// Copyright (c) 2025 BVK Chaitanya

package sbee

import (
	"encoding/json"
	"net/http"
	"slices"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

const base = "https://api.sbee.io/api"

func decodeBody(t *testing.T, ep *Endpoint) map[string]any {
	t.Helper()
	body, err := ep.EncodeBody()
	if err != nil {
		t.Fatal(err)
	}
	m := make(map[string]any)
	if err := json.Unmarshal([]byte(body), &m); err != nil {
		t.Fatalf("body %q is not a json object: %v", body, err)
	}
	return m
}

func TestEndpointURLs(t *testing.T) {
	creds := &Credentials{APIKey: "k", APISecret: "s", APIPass: "p"}

	testCases := []struct {
		ep     *Endpoint
		name   string
		method string
		url    string
	}{
		{SystemTimeEndpoint("Binance"), "SystemTime", http.MethodGet, base + "/Crypto/Binance/SystemTime"},
		{RecentTradesEndpoint("Binance", Spot, "BTC-USDT", 5), "RecentTrades", http.MethodGet, base + "/Crypto/Binance/Spot/RecentTrades?symbol=BTC-USDT&depth=5"},
		{CurrenciesEndpoint("Kucoin", Spot), "Currencies", http.MethodGet, base + "/Crypto/Kucoin/Spot/Currencies"},
		{OrderBookEndpoint("Binance", Futures, "BTC-USDT", 20), "OrderBook", http.MethodGet, base + "/Crypto/Binance/Futures/OrderBook?symbol=BTC-USDT&depth=20"},
		{TickersEndpoint("Binance", Spot, "BTC/USDT"), "Tickers", http.MethodGet, base + "/Crypto/Binance/Spot/Tickers?symbol=BTC%2FUSDT"},
		{KLineEndpoint("Binance", Spot, &KLineQuery{Symbol: "BTC-USDT", Interval: "1m", StartTime: 1689170400000, EndTime: 1689970459999, Limit: 100}), "KLine", http.MethodGet,
			base + "/Crypto/Binance/Spot/KLine?symbol=BTC-USDT&interval=1m&startTime=1689170400000&endTime=1689970459999&limit=100"},
		{KLineEndpoint("Binance", Spot, &KLineQuery{Symbol: "BTC-USDT", Interval: "1h", Limit: 10}), "KLine", http.MethodGet,
			base + "/Crypto/Binance/Spot/KLine?symbol=BTC-USDT&interval=1h&limit=10"},
		{TradingBalancesEndpoint("Okx", Spot, "BTC-USDT", creds), "TradingBalances", http.MethodPost, base + "/Crypto/Okx/Spot/TradingBalances"},
		{OrderHistoryEndpoint("Okx", Spot, "BTC-USDT", AllOrders, creds), "OrderHistory", http.MethodPost, base + "/Crypto/Okx/Spot/OrderHistory"},
		{KlineFormationEndpoint("Binance", Spot, nil), "KlineFormation", http.MethodPost, base + "/Crypto/Binance/Spot/KlineFormation"},
		{PlaceLimitOrderEndpoint("Binance", Spot, nil, creds), "PlaceLimitOrder", http.MethodPost, base + "/Crypto/Binance/Spot/PlaceLimitOrder"},
		{PlaceMarketOrderEndpoint("Binance", Spot, nil, creds), "PlaceMarketOrder", http.MethodPost, base + "/Crypto/Binance/Spot/PlaceMarketOrder"},
		{PlaceLimitStopLossOrderEndpoint("Binance", Spot, nil, creds), "PlaceLimitStopLossOrder", http.MethodPost, base + "/Crypto/Binance/Spot/PlaceLimitStopLossOrder"},
		{PlaceLimitTakeProfitOrderEndpoint("Binance", Spot, nil, creds), "PlaceLimitTakeProfitOrder", http.MethodPost, base + "/Crypto/Binance/Spot/PlaceLimitTakeProfitOrder"},
		{SetLeverageEndpoint("Binance", Futures, "BTC-USDT", 5, creds), "SetLeverage", http.MethodPost, base + "/Crypto/Binance/Futures/SetLeverage"},
		{CancelOrderEndpoint("Binance", Spot, "BTC-USDT", "1", "", creds), "CancelOrder", http.MethodPost, base + "/Crypto/Binance/Spot/CancelOrder"},
		{CancelOrdersBySymbolEndpoint("Binance", Spot, "BTC-USDT", creds), "CancelOrdersBySymbol", http.MethodPost, base + "/Crypto/Binance/Spot/CancelOrdersBySymbol"},
		{CancelBatchOrdersEndpoint("Binance", Spot, RawJSON("{}")), "CancelBatchOrders", http.MethodPost, base + "/Crypto/Binance/Spot/CancelBatchOrders"},
		{CancelBatchOrdersForPeopleEndpoint("Binance", Spot, RawJSON("[]")), "CancelBatchOrdersForPeople", http.MethodPost, base + "/Crypto/Binance/Spot/CancelBatchOrdersForPeople"},
		{PlaceBatchMarketOrdersEndpoint("Binance", Spot, RawJSON("{}")), "PlaceBatchMarketOrders", http.MethodPost, base + "/Crypto/Binance/Spot/PlaceBatchMarketOrders"},
		{PlaceBatchLimitOrdersEndpoint("Binance", Spot, RawJSON("{}")), "PlaceBatchLimitOrders", http.MethodPost, base + "/Crypto/Binance/Spot/PlaceBatchLimitOrders"},
		{TradingBalancesForPeopleEndpoint("Binance", Spot, RawJSON("[]")), "TradingBalancesForPeople", http.MethodPost, base + "/Crypto/Binance/Spot/TradingBalancesForPeople"},
		{PlaceLimitOrderForPeopleEndpoint("Binance", Spot, RawJSON("[]")), "PlaceLimitOrderForPeople", http.MethodPost, base + "/Crypto/Binance/Spot/PlaceLimitOrderForPeople"},
		{PlaceMarketOrderForPeopleEndpoint("Binance", Spot, RawJSON("[]")), "PlaceMarketOrderForPeople", http.MethodPost, base + "/Crypto/Binance/Spot/PlaceMarketOrderForPeople"},
		{MarketsEndpoint(), "Markets", http.MethodGet, base + "/Crypto/Info/Markets"},
		{MoneyPairValuesEndpoint(), "MoneyPairValues", http.MethodGet, base + "/Fintech/MoneyPairValues"},
		{MultiOrderBookEndpoint(Spot, &MultiMarketQuery{}), "MultiOrderBook", http.MethodPost, base + "/Crypto/MultiMarket/Spot/OrderBook"},
		{MultiRecentTradesEndpoint(Spot, &MultiMarketQuery{}), "MultiRecentTrades", http.MethodPost, base + "/Crypto/MultiMarket/Spot/RecentTrades"},
		{SteppedOrderBookEndpoint(Spot, &MultiMarketQuery{}), "SteppedOrderBook", http.MethodPost, base + "/Crypto/MultiMarket/Spot/SteppedOrderBook"},
		{NewsEndpoint("en", 10, 1), "News", http.MethodGet, base + "/Crypto/News/List?language=en&pageSize=10&pageNumber=1"},
		{CountryEndpoint(), "Country", http.MethodGet, base + "/Crypto/Country/List"},
	}

	for _, tc := range testCases {
		if tc.ep.Name != tc.name {
			t.Errorf("want name %s, got %s", tc.name, tc.ep.Name)
		}
		if tc.ep.Method != tc.method {
			t.Errorf("%s: want method %s, got %s", tc.name, tc.method, tc.ep.Method)
		}
		if !tc.ep.RequiresAuth {
			t.Errorf("%s: all endpoints must require authentication", tc.name)
		}
		if got := tc.ep.URL(base + "/"); got != tc.url {
			t.Errorf("%s: want url %s, got %s", tc.name, tc.url, got)
		}
		if tc.method == http.MethodGet {
			if body, err := tc.ep.EncodeBody(); err != nil || body != "" {
				t.Errorf("%s: GET endpoints must have an empty body, got %q (%v)", tc.name, body, err)
			}
		}
	}
}

func TestEndpointHeaders(t *testing.T) {
	get := SystemTimeEndpoint("Binance").Headers("T")
	if want := []string{"accept: text/plain", "Authorization: Bearer T"}; !slices.Equal(get, want) {
		t.Fatalf("want %q, got %q", want, get)
	}
	post := CancelOrdersBySymbolEndpoint("Binance", Spot, "BTC-USDT", nil).Headers("T")
	if want := []string{"accept: text/plain", "Authorization: Bearer T", "contentType: application/json"}; !slices.Equal(post, want) {
		t.Fatalf("want %q, got %q", want, post)
	}
}

func TestCredentialsVerbatim(t *testing.T) {
	creds := &Credentials{
		APIKey:    `key-"quoted"-<&>`,
		APISecret: "sécret/with\\slash",
		APIPass:   "pass phrase 🐝",
	}
	ep := TradingBalancesEndpoint("Binance", Spot, "BTC-USDT", creds)
	body, err := ep.EncodeBody()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(body, `<&>`) {
		t.Fatalf("html characters must not be escaped: %s", body)
	}

	var got struct {
		Symbol string `json:"symbol"`
		Credentials
	}
	if err := json.Unmarshal([]byte(body), &got); err != nil {
		t.Fatal(err)
	}
	if got.Credentials != *creds || got.Symbol != "BTC-USDT" {
		t.Fatalf("want %#v, got %#v", *creds, got)
	}
}

func TestCredentialsInvalidUTF8(t *testing.T) {
	creds := &Credentials{APIKey: "key", APISecret: "a\xffb"}
	for _, ep := range []*Endpoint{
		TradingBalancesEndpoint("Binance", Spot, "BTC-USDT", creds),
		CancelOrdersBySymbolEndpoint("Binance", Spot, "BTC-USDT", creds),
		PlaceBatchMarketOrdersEndpoint("Binance", Spot, &MarketBatchRequest{Credentials: *creds}),
	} {
		if body, err := ep.EncodeBody(); err == nil {
			t.Fatalf("%s: want error for invalid utf-8 credentials, got body %q", ep.Name, body)
		}
	}
}

func TestCancelOrderIDsAreText(t *testing.T) {
	testCases := []struct {
		orderID, clientOrderID any
		wantOrder, wantClient  string
	}{
		{int64(43523123123), "ID3421", "43523123123", "ID3421"},
		{43523123123.0, 17, "43523123123", "17"},
		{json.Number("98765432109876543210"), nil, "98765432109876543210", ""},
		{"", uint64(5), "", "5"},
	}
	for _, tc := range testCases {
		m := decodeBody(t, CancelOrderEndpoint("Binance", Spot, "BTC-USDT", tc.orderID, tc.clientOrderID, nil))
		if v, ok := m["orderId"].(string); !ok || v != tc.wantOrder {
			t.Errorf("want orderId %q, got %#v", tc.wantOrder, m["orderId"])
		}
		if v, ok := m["clientOrderId"].(string); !ok || v != tc.wantClient {
			t.Errorf("want clientOrderId %q, got %#v", tc.wantClient, m["clientOrderId"])
		}
	}
}

func TestKlineFormationTimes(t *testing.T) {
	start, end := int64(1689170400000), int64(1689970459999)
	formations := []*Formation{{Formation: "MAX", TimePeriod: 30, Source: "close"}}

	both := decodeBody(t, KlineFormationEndpoint("Binance", Spot, &KlineFormationQuery{
		Symbol: "BTC-USDT", Interval: "1m", Limit: 100, Formations: formations,
		StartTime: &start, EndTime: &end,
	}))
	if _, ok := both["startTime"]; !ok {
		t.Fatalf("want startTime when both times are set: %v", both)
	}
	if _, ok := both["endTime"]; !ok {
		t.Fatalf("want endTime when both times are set: %v", both)
	}

	for _, q := range []*KlineFormationQuery{
		{Symbol: "BTC-USDT", Interval: "1m", Limit: 100, StartTime: &start},
		{Symbol: "BTC-USDT", Interval: "1m", Limit: 100, EndTime: &end},
		{Symbol: "BTC-USDT", Interval: "1m", Limit: 100},
	} {
		m := decodeBody(t, KlineFormationEndpoint("Binance", Spot, q))
		_, hasStart := m["startTime"]
		_, hasEnd := m["endTime"]
		if hasStart || hasEnd {
			t.Fatalf("want both times dropped when one is missing: %v", m)
		}
	}
}

func TestKlineFormationEmptyFormations(t *testing.T) {
	for _, formations := range []any{nil, []Formation(nil), []*Formation{}, (*[]Formation)(nil), RawJSON("")} {
		m := decodeBody(t, KlineFormationEndpoint("Binance", Spot, &KlineFormationQuery{
			Symbol: "BTC-USDT", Interval: "1m", Limit: 10, Formations: formations,
		}))
		if v, ok := m["formations"]; ok {
			t.Fatalf("%T: want no formations key, got %#v", formations, v)
		}
	}
}

func TestKlineFormationRawFormations(t *testing.T) {
	raw := `[ {"Formation": "DX", "TimePeriod": 14} ]`
	ep := KlineFormationEndpoint("Binance", Spot, &KlineFormationQuery{
		Symbol: "BTC-USDT", Interval: "5m", Limit: 50, Formations: RawJSON(raw),
	})
	body, err := ep.EncodeBody()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(body, `"formations":`+raw) {
		t.Fatalf("raw formations must be embedded as is: %s", body)
	}
	m := decodeBody(t, ep)
	if m["limit"] != float64(50) || m["symbol"] != "BTC-USDT" {
		t.Fatalf("unexpected body %v", m)
	}
}

func TestBatchPayloadPassThrough(t *testing.T) {
	raw := `{"apiKey":"k","apiSecret":"s","apiPass":"","orders":[{"symbol":"BTC-USDT","clientOrderId":"ID123","orderId":"ID124"}]}`
	body, err := CancelBatchOrdersEndpoint("Binance", Spot, RawJSON(raw)).EncodeBody()
	if err != nil {
		t.Fatal(err)
	}
	if body != raw {
		t.Fatalf("want raw payload %s, got %s", raw, body)
	}

	body, err = PlaceBatchMarketOrdersEndpoint("Binance", Spot, json.RawMessage(raw)).EncodeBody()
	if err != nil {
		t.Fatal(err)
	}
	if body != raw {
		t.Fatalf("want raw payload %s, got %s", raw, body)
	}

	quote, _ := NewNumber("1")
	items := []*MarketForPeopleItem{
		{Symbol: "BTC-USDT", QuoteQuantity: quote, ClientOrderID: "UD01", Side: Buy, Credentials: Credentials{APIKey: "a"}},
	}
	body, err = PlaceMarketOrderForPeopleEndpoint("Binance", Spot, items).EncodeBody()
	if err != nil {
		t.Fatal(err)
	}
	want := `[{"symbol":"BTC-USDT","quoteQuantity":1,"baseQuantity":0,"ClientOrderId":"UD01","side":"BUY","apiKey":"a","apiSecret":"","apiPass":""}]`
	if body != want {
		t.Fatalf("want %s, got %s", want, body)
	}
}

func TestOrderBodies(t *testing.T) {
	creds := &Credentials{APIKey: "k", APISecret: "s", APIPass: "p"}

	limit := decodeBody(t, PlaceLimitOrderEndpoint("Binance", Spot, &LimitOrder{
		Symbol:        "BTC-USDT",
		ClientOrderID: "ID1",
		Price:         decimal.RequireFromString("16000"),
		BaseQuantity:  decimal.RequireFromString("0.001"),
		Side:          Buy,
	}, creds))
	for key, want := range map[string]any{
		"symbol": "BTC-USDT", "ClientOrderId": "ID1", "price": "16000",
		"quoteQuantity": "0", "baseQuantity": "0.001", "side": "BUY",
		"apiKey": "k", "apiSecret": "s", "apiPass": "p",
	} {
		if limit[key] != want {
			t.Errorf("limit order: want %s=%v, got %v", key, want, limit[key])
		}
	}
	if _, ok := limit["leverage"]; ok {
		t.Errorf("limit order: spot orders must not carry a leverage")
	}

	market := decodeBody(t, PlaceMarketOrderEndpoint("Binance", Futures, &MarketOrder{
		Symbol: "BTC-USDT", Leverage: 5, Contract: 2, Side: Sell,
	}, creds))
	if market["leverage"] != float64(5) || market["contract"] != float64(2) || market["side"] != "SELL" {
		t.Errorf("market order: unexpected body %v", market)
	}

	stop := decodeBody(t, PlaceLimitStopLossOrderEndpoint("Binance", Spot, &StopOrder{
		Symbol:        "BTC-USDT",
		Quantity:      decimal.RequireFromString("0.5"),
		StopPrice:     decimal.RequireFromString("15000"),
		OrderPrice:    decimal.RequireFromString("14900"),
		TrailingDelta: decimal.RequireFromString("10"),
		Side:          Sell,
	}, creds))
	for key, want := range map[string]any{
		"quantity": "0.5", "stopPrice": "15000", "orderPrice": "14900", "trailingDelta": "10",
	} {
		if stop[key] != want {
			t.Errorf("stop order: want %s=%v, got %v", key, want, stop[key])
		}
	}

	leverage := decodeBody(t, SetLeverageEndpoint("Binance", Futures, "BTC-USDT", 10, creds))
	if leverage["leverage"] != "10" {
		t.Errorf("set leverage: want leverage as text, got %#v", leverage["leverage"])
	}

	history := decodeBody(t, OrderHistoryEndpoint("Binance", Spot, "BTC-USDT", FilledOrders, creds))
	if history["state"] != "FILLED" {
		t.Errorf("order history: want state FILLED, got %v", history["state"])
	}
}

func TestMultiMarketBody(t *testing.T) {
	m := decodeBody(t, MultiOrderBookEndpoint(Spot, &MultiMarketQuery{
		Symbol: "BTC-USDT", Depth: 5, Precision: 2, Exchanges: []string{"Binance", "Kucoin"},
	}))
	exchanges, ok := m["exchanges"].([]any)
	if !ok || len(exchanges) != 2 || exchanges[0] != "Binance" {
		t.Fatalf("unexpected exchanges %#v", m["exchanges"])
	}
	if m["depth"] != float64(5) || m["precision"] != float64(2) {
		t.Fatalf("unexpected body %v", m)
	}
}
