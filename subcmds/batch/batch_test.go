// Copyright (c) 2025 BVK Chaitanya

package batch

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/bvk/sbeerest/clientid"
	"github.com/bvk/sbeerest/sbee"
)

// encodeBody returns the request body the payload would be sent as.
func encodeBody(t *testing.T, payload any) string {
	ep := sbee.PlaceBatchMarketOrdersEndpoint("Binance", sbee.Spot, payload)
	body, err := ep.EncodeBody()
	if err != nil {
		t.Fatal(err)
	}
	return body
}

func TestFillOrdersKeepsPayload(t *testing.T) {
	data := []byte(`{"apiKey":"k","apiSecret":"s","apiPass":"","note":"x","orders":[
		{"symbol":"BTC-USDT","quoteQuantity":"15","clientOrderId":"","side":"BUY","leverage":5,"extra":"keep"},
		{"symbol":"BTC-USDT","quoteQuantity":2.50,"clientOrderId":"ID124","side":"BUY"},
		{"symbol":"ETH-USDT","baseQuantity":0.1,"side":"SELL"}]}`)

	v, err := fillOrders("clientOrderId")(data, clientid.New(t.Name(), 0))
	if err != nil {
		t.Fatal(err)
	}
	body := encodeBody(t, v)

	var got struct {
		APIKey string           `json:"apiKey"`
		Note   string           `json:"note"`
		Orders []map[string]any `json:"orders"`
	}
	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.APIKey != "k" || got.Note != "x" || len(got.Orders) != 3 {
		t.Fatalf("unexpected payload %s", body)
	}

	first := got.Orders[0]
	if first["quoteQuantity"] != "15" {
		t.Fatalf("want quoted quantity kept as text, got %#v", first["quoteQuantity"])
	}
	if first["leverage"] != json.Number("5") || first["extra"] != "keep" {
		t.Fatalf("want unknown fields kept, got %v", first)
	}
	if !strings.Contains(body, `"quoteQuantity":2.50`) {
		t.Fatalf("want number text kept, got %s", body)
	}

	seq := clientid.New(t.Name(), 0)
	if want := seq.Next(); first["clientOrderId"] != want {
		t.Fatalf("want derived id %s, got %v", want, first["clientOrderId"])
	}
	if got.Orders[1]["clientOrderId"] != "ID124" {
		t.Fatalf("want given id kept, got %v", got.Orders[1]["clientOrderId"])
	}
	if want := seq.Next(); got.Orders[2]["clientOrderId"] != want {
		t.Fatalf("want derived id %s for a missing id, got %v", want, got.Orders[2]["clientOrderId"])
	}
}

func TestFillItems(t *testing.T) {
	data := []byte(`[
		{"apiKey":"a","apiSecret":"b","apiPass":"","side":"BUY","price":10000,"baseQuantity":0.001,"cliOrId":"","symbol":"BTC-USDT"},
		null]`)

	v, err := fillItems("cliOrId")(data, clientid.New("seed", 5))
	if err != nil {
		t.Fatal(err)
	}
	items := v.([]any)
	if len(items) != 2 || items[1] != nil {
		t.Fatalf("unexpected items %#v", items)
	}
	item := items[0].(map[string]any)
	if want := clientid.New("seed", 5).Next(); item["cliOrId"] != want {
		t.Fatalf("want derived id %s, got %v", want, item["cliOrId"])
	}
	if item["price"] != json.Number("10000") || item["baseQuantity"] != json.Number("0.001") {
		t.Fatalf("unexpected numbers %v %v", item["price"], item["baseQuantity"])
	}
}

func TestFillRejectsBadPayloads(t *testing.T) {
	seq := clientid.New("seed", 0)
	if _, err := fillOrders("clientOrderId")([]byte(`[]`), seq); err == nil {
		t.Fatalf("want error for a list where an object is expected")
	}
	if _, err := fillOrders("clientOrderId")([]byte(`{"orders":{}}`), seq); err == nil {
		t.Fatalf("want error for a payload without an orders list")
	}
	if _, err := fillItems("cliOrId")([]byte(`{}`), seq); err == nil {
		t.Fatalf("want error for an object where a list is expected")
	}
	if _, err := fillItems("cliOrId")([]byte(`[] []`), seq); err == nil {
		t.Fatalf("want error for trailing data")
	}
}

func TestCommandNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, cmd := range Commands() {
		name, fset, fn := cmd.Command()
		if fn == nil || fset == nil || fset.Name() != name {
			t.Fatalf("%s: invalid command", name)
		}
		if seen[name] {
			t.Fatalf("duplicate command %s", name)
		}
		seen[name] = true
	}
	if len(seen) != 7 {
		t.Fatalf("want 7 batch commands, got %d", len(seen))
	}
}
