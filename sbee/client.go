// Copyright (c) 2025 BVK Chaitanya

package sbee

import (
	"context"
	"errors"
	"fmt"

	"github.com/bvk/sbeerest/sbee/internal"
	"github.com/google/uuid"
)

// ErrNoToken is returned for authenticated endpoints when the client has no
// bearer token.
var ErrNoToken = errors.New("bearer token is required")

// ErrNoAuth is returned for endpoints that do not require authentication.
// Every gateway operation takes the bearer token.
var ErrNoAuth = errors.New("endpoint must require authentication")

// Client is a gateway client. It holds only immutable configuration and is
// safe for concurrent use.
type Client struct {
	opts Options

	token string

	client *internal.Client
}

// New returns a client that authenticates with the given bearer token.
func New(token string, opts *Options) (*Client, error) {
	if opts == nil {
		opts = new(Options)
	}
	opts.setDefaults()
	if err := opts.Check(); err != nil {
		return nil, err
	}
	if token == "" {
		return nil, ErrNoToken
	}

	client, err := internal.New(&internal.Options{
		HttpClientTimeout: opts.HttpClientTimeout,
	})
	if err != nil {
		return nil, err
	}
	c := &Client{
		opts:   *opts,
		token:  token,
		client: client,
	}
	return c, nil
}

// Close releases resources and destroys the client instance.
func (c *Client) Close() error {
	return c.client.Close()
}

// RestURL returns the gateway base url used by the client.
func (c *Client) RestURL() string {
	return c.opts.RestURL
}

// Do executes the endpoint and translates the response. A non-nil error is
// returned only for malformed endpoints, before any network activity; all
// other failures are reported in the result.
func (c *Client) Do(ctx context.Context, ep *Endpoint) (*Result, error) {
	if ep == nil {
		return nil, fmt.Errorf("endpoint cannot be nil")
	}
	if !ep.RequiresAuth {
		return nil, fmt.Errorf("%s: %w", ep.Name, ErrNoAuth)
	}
	if c.token == "" {
		return nil, fmt.Errorf("%s: %w", ep.Name, ErrNoToken)
	}

	body, err := ep.EncodeBody()
	if err != nil {
		return errResult(ep.Name, err.Error()), nil
	}
	out, err := c.client.Invoke(ctx, ep.Method, ep.URL(c.opts.RestURL), ep.Headers(c.token), body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ep.Name, err)
	}
	return Translate(out, ep.Name), nil
}

// call executes endpoints built by this package, which are always well-formed.
func (c *Client) call(ctx context.Context, ep *Endpoint) *Result {
	r, err := c.Do(ctx, ep)
	if err != nil {
		panic(err)
	}
	return r
}

// NewClientOrderID returns a fresh random client order id.
func NewClientOrderID() string {
	return uuid.New().String()
}

// SystemTime returns the exchange server time.
func (c *Client) SystemTime(ctx context.Context, exchange string) *Result {
	return c.call(ctx, SystemTimeEndpoint(exchange))
}

func (c *Client) RecentTrades(ctx context.Context, exchange string, trade TradeType, symbol string, depth int) *Result {
	return c.call(ctx, RecentTradesEndpoint(exchange, trade, symbol, depth))
}

func (c *Client) Currencies(ctx context.Context, exchange string, trade TradeType) *Result {
	return c.call(ctx, CurrenciesEndpoint(exchange, trade))
}

func (c *Client) TradingBalances(ctx context.Context, exchange string, trade TradeType, symbol string, creds *Credentials) *Result {
	return c.call(ctx, TradingBalancesEndpoint(exchange, trade, symbol, creds))
}

func (c *Client) OrderHistory(ctx context.Context, exchange string, trade TradeType, symbol string, state OrderState, creds *Credentials) *Result {
	return c.call(ctx, OrderHistoryEndpoint(exchange, trade, symbol, state, creds))
}

func (c *Client) KLine(ctx context.Context, exchange string, trade TradeType, q *KLineQuery) *Result {
	return c.call(ctx, KLineEndpoint(exchange, trade, q))
}

func (c *Client) KlineFormation(ctx context.Context, exchange string, trade TradeType, q *KlineFormationQuery) *Result {
	return c.call(ctx, KlineFormationEndpoint(exchange, trade, q))
}

func (c *Client) OrderBook(ctx context.Context, exchange string, trade TradeType, symbol string, depth int) *Result {
	return c.call(ctx, OrderBookEndpoint(exchange, trade, symbol, depth))
}

func (c *Client) Tickers(ctx context.Context, exchange string, trade TradeType, symbol string) *Result {
	return c.call(ctx, TickersEndpoint(exchange, trade, symbol))
}

func (c *Client) PlaceLimitOrder(ctx context.Context, exchange string, trade TradeType, order *LimitOrder, creds *Credentials) *Result {
	return c.call(ctx, PlaceLimitOrderEndpoint(exchange, trade, order, creds))
}

func (c *Client) PlaceMarketOrder(ctx context.Context, exchange string, trade TradeType, order *MarketOrder, creds *Credentials) *Result {
	return c.call(ctx, PlaceMarketOrderEndpoint(exchange, trade, order, creds))
}

func (c *Client) PlaceLimitStopLossOrder(ctx context.Context, exchange string, trade TradeType, order *StopOrder, creds *Credentials) *Result {
	return c.call(ctx, PlaceLimitStopLossOrderEndpoint(exchange, trade, order, creds))
}

func (c *Client) PlaceLimitTakeProfitOrder(ctx context.Context, exchange string, trade TradeType, order *StopOrder, creds *Credentials) *Result {
	return c.call(ctx, PlaceLimitTakeProfitOrderEndpoint(exchange, trade, order, creds))
}

func (c *Client) SetLeverage(ctx context.Context, exchange string, trade TradeType, symbol string, leverage int, creds *Credentials) *Result {
	return c.call(ctx, SetLeverageEndpoint(exchange, trade, symbol, leverage, creds))
}

// CancelOrder cancels an order by its exchange order id or by its client
// order id. Ids can be passed as strings or as numbers.
func (c *Client) CancelOrder(ctx context.Context, exchange string, trade TradeType, symbol string, orderID, clientOrderID any, creds *Credentials) *Result {
	return c.call(ctx, CancelOrderEndpoint(exchange, trade, symbol, orderID, clientOrderID, creds))
}

func (c *Client) CancelOrdersBySymbol(ctx context.Context, exchange string, trade TradeType, symbol string, creds *Credentials) *Result {
	return c.call(ctx, CancelOrdersBySymbolEndpoint(exchange, trade, symbol, creds))
}

// CancelBatchOrders accepts a *CancelBatchRequest or pre-serialized RawJSON.
func (c *Client) CancelBatchOrders(ctx context.Context, exchange string, trade TradeType, payload any) *Result {
	return c.call(ctx, CancelBatchOrdersEndpoint(exchange, trade, payload))
}

// CancelBatchOrdersForPeople accepts []*CancelForPeopleItem or RawJSON.
func (c *Client) CancelBatchOrdersForPeople(ctx context.Context, exchange string, trade TradeType, payload any) *Result {
	return c.call(ctx, CancelBatchOrdersForPeopleEndpoint(exchange, trade, payload))
}

// PlaceBatchMarketOrders accepts a *MarketBatchRequest or RawJSON.
func (c *Client) PlaceBatchMarketOrders(ctx context.Context, exchange string, trade TradeType, payload any) *Result {
	return c.call(ctx, PlaceBatchMarketOrdersEndpoint(exchange, trade, payload))
}

// PlaceBatchLimitOrders accepts a *LimitBatchRequest or RawJSON.
func (c *Client) PlaceBatchLimitOrders(ctx context.Context, exchange string, trade TradeType, payload any) *Result {
	return c.call(ctx, PlaceBatchLimitOrdersEndpoint(exchange, trade, payload))
}

// TradingBalancesForPeople accepts []*BalanceForPeopleItem or RawJSON.
func (c *Client) TradingBalancesForPeople(ctx context.Context, exchange string, trade TradeType, payload any) *Result {
	return c.call(ctx, TradingBalancesForPeopleEndpoint(exchange, trade, payload))
}

// PlaceLimitOrderForPeople accepts []*LimitForPeopleItem or RawJSON.
func (c *Client) PlaceLimitOrderForPeople(ctx context.Context, exchange string, trade TradeType, payload any) *Result {
	return c.call(ctx, PlaceLimitOrderForPeopleEndpoint(exchange, trade, payload))
}

// PlaceMarketOrderForPeople accepts []*MarketForPeopleItem or RawJSON.
func (c *Client) PlaceMarketOrderForPeople(ctx context.Context, exchange string, trade TradeType, payload any) *Result {
	return c.call(ctx, PlaceMarketOrderForPeopleEndpoint(exchange, trade, payload))
}

func (c *Client) Markets(ctx context.Context) *Result {
	return c.call(ctx, MarketsEndpoint())
}

func (c *Client) MoneyPairValues(ctx context.Context) *Result {
	return c.call(ctx, MoneyPairValuesEndpoint())
}

// MultiOrderBook accepts a *MultiMarketQuery or RawJSON.
func (c *Client) MultiOrderBook(ctx context.Context, trade TradeType, query any) *Result {
	return c.call(ctx, MultiOrderBookEndpoint(trade, query))
}

func (c *Client) MultiRecentTrades(ctx context.Context, trade TradeType, query any) *Result {
	return c.call(ctx, MultiRecentTradesEndpoint(trade, query))
}

func (c *Client) SteppedOrderBook(ctx context.Context, trade TradeType, query any) *Result {
	return c.call(ctx, SteppedOrderBookEndpoint(trade, query))
}

func (c *Client) News(ctx context.Context, language string, pageSize, pageNumber int) *Result {
	return c.call(ctx, NewsEndpoint(language, pageSize, pageNumber))
}

func (c *Client) Country(ctx context.Context) *Result {
	return c.call(ctx, CountryEndpoint())
}
