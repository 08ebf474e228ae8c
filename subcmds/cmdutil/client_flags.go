// Copyright (c) 2023 BVK Chaitanya

package cmdutil

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bvk/sbeerest/sbee"
	"github.com/logrusorgru/aurora"
	"golang.org/x/term"
)

type ClientFlags struct {
	secretsFile string
	restURL     string
	account     string

	HTTPTimeout time.Duration

	secrets *Secrets
}

func (cf *ClientFlags) SetFlags(fset *flag.FlagSet) {
	fset.StringVar(&cf.secretsFile, "secrets-file", "", "path to the secrets file (default=SBEE_SECRETS_FILE value)")
	fset.StringVar(&cf.restURL, "rest-url", "", "base url for the gateway api (default=SBEE_REST_URL value or the public gateway)")
	fset.StringVar(&cf.account, "account", "", "name of the account in the secrets file (default=exchange name)")
	fset.DurationVar(&cf.HTTPTimeout, "http-timeout", time.Minute, "http client timeout")
}

func (cf *ClientFlags) SecretsFile() string {
	if len(cf.secretsFile) != 0 {
		return cf.secretsFile
	}
	return os.Getenv("SBEE_SECRETS_FILE")
}

// Secrets returns the secrets file contents or an empty Secrets when no file
// is configured.
func (cf *ClientFlags) Secrets() (*Secrets, error) {
	if cf.secrets != nil {
		return cf.secrets, nil
	}
	s := new(Secrets)
	if fpath := cf.SecretsFile(); len(fpath) != 0 {
		v, err := SecretsFromFile(fpath)
		if err != nil {
			return nil, err
		}
		s = v
	}
	if len(s.Token) == 0 {
		s.Token = os.Getenv("SBEE_TOKEN")
	}
	if len(s.Token) == 0 && term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprint(os.Stderr, "Gateway token: ")
		data, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return nil, fmt.Errorf("could not read the gateway token: %w", err)
		}
		s.Token = strings.TrimSpace(string(data))
	}
	if err := s.Check(); err != nil {
		return nil, err
	}
	cf.secrets = s
	return s, nil
}

func (cf *ClientFlags) RestURL() string {
	if len(cf.restURL) != 0 {
		return cf.restURL
	}
	if s := cf.secrets; s != nil && len(s.RestURL) != 0 {
		return s.RestURL
	}
	return os.Getenv("SBEE_REST_URL")
}

func (cf *ClientFlags) Client() (*sbee.Client, error) {
	secrets, err := cf.Secrets()
	if err != nil {
		return nil, err
	}
	opts := &sbee.Options{
		RestURL:           cf.RestURL(),
		HttpClientTimeout: cf.HTTPTimeout,
	}
	return sbee.New(secrets.Token, opts)
}

// Credentials returns the account credentials for the exchange.
func (cf *ClientFlags) Credentials(exchange string) (*sbee.Credentials, error) {
	secrets, err := cf.Secrets()
	if err != nil {
		return nil, err
	}
	name := cf.account
	if len(name) == 0 {
		name = exchange
	}
	return secrets.Account(name)
}

type MarketFlags struct {
	Exchange string
	trade    string
}

func (mf *MarketFlags) SetFlags(fset *flag.FlagSet) {
	fset.StringVar(&mf.Exchange, "exchange", "Binance", "name of the exchange")
	fset.StringVar(&mf.trade, "trade", "Spot", "trade type (Spot or Futures)")
}

func (mf *MarketFlags) TradeType() (sbee.TradeType, error) {
	return ParseTradeType(mf.trade)
}

func ParseTradeType(s string) (sbee.TradeType, error) {
	switch {
	case strings.EqualFold(s, string(sbee.Spot)):
		return sbee.Spot, nil
	case strings.EqualFold(s, string(sbee.Futures)):
		return sbee.Futures, nil
	}
	return "", fmt.Errorf("invalid trade type %q: must be Spot or Futures", s)
}

func ParseSide(s string) (sbee.Side, error) {
	switch {
	case strings.EqualFold(s, string(sbee.Buy)):
		return sbee.Buy, nil
	case strings.EqualFold(s, string(sbee.Sell)):
		return sbee.Sell, nil
	}
	return "", fmt.Errorf("invalid order side %q: must be BUY or SELL", s)
}

// ErrFailed is returned by commands whose gateway operation failed, after the
// failure is printed.
var ErrFailed = errors.New("operation failed")

// PrintResult prints the result as indented JSON. Failed results are printed
// in red to the standard error.
func PrintResult(r *sbee.Result) error {
	js, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	if !r.OK() {
		fmt.Fprintf(os.Stderr, "%s\n", aurora.Red(string(js)))
		return fmt.Errorf("%s: %w", r.Operation(), ErrFailed)
	}
	fmt.Printf("%s\n", js)
	return nil
}
