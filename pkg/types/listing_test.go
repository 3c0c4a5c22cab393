package types

import (
	"testing"

	json "github.com/goccy/go-json"
)

func TestCurrencyOpenSum(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Currency
		isEth bool
	}{
		{name: "eth", input: `"ETH"`, want: CurrencyEth, isEth: true},
		{name: "usd", input: `"USD"`, want: Currency("USD")},
		{name: "wrapped eth", input: `"WETH"`, want: Currency("WETH")},
		{name: "lowercase eth is not native", input: `"eth"`, want: Currency("eth")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Currency
			if err := json.Unmarshal([]byte(tt.input), &c); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.input, err)
			}
			if c != tt.want {
				t.Errorf("got %q, want %q", c, tt.want)
			}
			if c.IsEth() != tt.isEth {
				t.Errorf("IsEth() = %v, want %v", c.IsEth(), tt.isEth)
			}

			encoded, err := json.Marshal(c)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(encoded) != tt.input {
				t.Errorf("round trip %s, want %s", encoded, tt.input)
			}
		})
	}
}

func TestCurrencyRejectsEmpty(t *testing.T) {
	var c Currency
	if err := json.Unmarshal([]byte(`""`), &c); err == nil {
		t.Error("expected error for empty currency")
	}
	if err := json.Unmarshal([]byte(`7`), &c); err == nil {
		t.Error("expected error for numeric currency")
	}
}

func TestItemListingDecode(t *testing.T) {
	raw := `{
		"order_hash": "0x541a9eb3962494caffeda36a495cc978c7ecc21c6b714aaabc678187d3da9ac7",
		"chain": "ethereum",
		"type": "basic",
		"price": {
			"current": {
				"currency": "USD",
				"decimals": 18,
				"value": "25000000000000000000"
			}
		},
		"protocol_data": {
			"parameters": {
				"offerer": "0x193d3eda0dbabd55453de814ef08a6255446c911",
				"offer": [],
				"consideration": [],
				"startTime": "1698555026",
				"endTime": "1706331026",
				"orderType": 0,
				"zone": "0x004C00500000aD104D7DBd00e3ae0A5C00560C00",
				"zoneHash": "0x0000000000000000000000000000000000000000000000000000000000000000",
				"salt": "0x360c6ebe00000000000000000000000000000000000000004714bb2cbdfa0b8f",
				"conduitKey": "0x0000007b02230091a7ed01230072f7006a004d60a8d4e71d599b8104250f0000",
				"totalOriginalConsiderationItems": 0,
				"counter": 0
			},
			"signature": null
		},
		"protocol_address": "0x00000000000000adc04c56bf30ac9d3c0aaf14dc"
	}`

	var listing ItemListing
	if err := json.Unmarshal([]byte(raw), &listing); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if listing.OrderHash != "0x541a9eb3962494caffeda36a495cc978c7ecc21c6b714aaabc678187d3da9ac7" {
		t.Errorf("order hash = %s", listing.OrderHash)
	}
	if listing.Chain != ChainEthereum {
		t.Errorf("chain = %v", listing.Chain)
	}
	if listing.Type != OrderTypeBasic {
		t.Errorf("type = %v", listing.Type)
	}
	if listing.Price.Current.Currency != Currency("USD") {
		t.Errorf("currency = %v", listing.Price.Current.Currency)
	}
	if listing.Price.Current.Value != "25000000000000000000" {
		t.Errorf("value = %s", listing.Price.Current.Value)
	}

	// A USD-denominated listing must survive a full round trip.
	encoded, err := json.Marshal(listing)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var again ItemListing
	if err := json.Unmarshal(encoded, &again); err != nil {
		t.Fatalf("second unmarshal: %v", err)
	}
	if again.Price.Current.Currency != Currency("USD") {
		t.Errorf("currency after round trip = %v", again.Price.Current.Currency)
	}
}
