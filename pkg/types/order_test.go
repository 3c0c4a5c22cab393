package types

import (
	"os"
	"testing"

	json "github.com/goccy/go-json"
)

func TestUserIDNormalizes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  UserID
	}{
		{name: "number", input: `14210173`, want: UserID("14210173")},
		{name: "string", input: `"14210173"`, want: UserID("14210173")},
		{name: "username", input: `"ape_holder"`, want: UserID("ape_holder")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id UserID
			if err := json.Unmarshal([]byte(tt.input), &id); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.input, err)
			}
			if id != tt.want {
				t.Errorf("got %q, want %q", id, tt.want)
			}

			encoded, err := json.Marshal(id)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(encoded) != `"`+string(tt.want)+`"` {
				t.Errorf("re-encoded %s, want quoted %q", encoded, tt.want)
			}
		})
	}
}

func TestUserIDRejectsOtherShapes(t *testing.T) {
	for _, input := range []string{`true`, `[1]`, `{"id":1}`} {
		var id UserID
		if err := json.Unmarshal([]byte(input), &id); err == nil {
			t.Errorf("expected error for %s", input)
		}
	}
}

func TestOrderFeeDecode(t *testing.T) {
	raw := `{
		"account": {
			"user": 14210173,
			"profile_img_url": "https://storage.googleapis.com/opensea-static/opensea-profile/25.png",
			"address": "0x193d3eda0dbabd55453de814ef08a6255446c911",
			"config": ""
		},
		"basis_points": "600"
	}`

	var fee OrderFee
	if err := json.Unmarshal([]byte(raw), &fee); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if fee.Account.User == nil || *fee.Account.User != UserID("14210173") {
		t.Errorf("user = %v, want 14210173", fee.Account.User)
	}
	if fee.BasisPoints != "600" {
		t.Errorf("basis_points = %s, want 600", fee.BasisPoints)
	}
}

func TestOrderSideStrict(t *testing.T) {
	var side OrderSide
	if err := json.Unmarshal([]byte(`"ask"`), &side); err != nil {
		t.Fatalf("unmarshal ask: %v", err)
	}
	if side != SideAsk {
		t.Errorf("got %v", side)
	}
	if err := json.Unmarshal([]byte(`"short"`), &side); err == nil {
		t.Error("expected error for unknown side")
	}
}

func TestOrderTypeStrict(t *testing.T) {
	for _, tt := range []struct {
		input string
		want  OrderType
	}{
		{`"basic"`, OrderTypeBasic},
		{`"dutch"`, OrderTypeDutch},
		{`"english"`, OrderTypeEnglish},
		{`"criteria"`, OrderTypeCriteria},
	} {
		var ot OrderType
		if err := json.Unmarshal([]byte(tt.input), &ot); err != nil {
			t.Fatalf("unmarshal %s: %v", tt.input, err)
		}
		if ot != tt.want {
			t.Errorf("got %v, want %v", ot, tt.want)
		}
	}

	var ot OrderType
	if err := json.Unmarshal([]byte(`"vickrey"`), &ot); err == nil {
		t.Error("expected error for unknown order type")
	}
}

func TestOrderDecodeFixture(t *testing.T) {
	raw, err := os.ReadFile("testdata/order.json")
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	var order Order
	if err := json.Unmarshal(raw, &order); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if order.Hash() != "0x3beca9d3d65e2ea0b96652e55d3a78b74ba4b0ea7d8a7c28b24eb2b36510e6fa" {
		t.Errorf("order hash = %s", order.Hash())
	}
	if order.CurrentPrice.String() != "15800000000000000000" {
		t.Errorf("current price = %s", order.CurrentPrice.String())
	}
	if order.Side != SideAsk {
		t.Errorf("side = %v", order.Side)
	}
	if order.OrderType != OrderTypeBasic {
		t.Errorf("order type = %v", order.OrderType)
	}
	if order.Maker.User == nil || *order.Maker.User != UserID("14210173") {
		t.Errorf("maker user = %v", order.Maker.User)
	}
	if order.Taker != nil {
		t.Errorf("taker = %+v, want nil", order.Taker)
	}
	if len(order.MakerFees) != 1 || order.MakerFees[0].BasisPoints != "250" {
		t.Errorf("maker fees = %+v", order.MakerFees)
	}
	if !order.IsFillable() {
		t.Error("IsFillable() = false for open order")
	}

	params := order.ProtocolData.Parameters
	if uint64(len(params.Consideration)) != params.TotalOriginalConsiderationItems {
		t.Errorf("consideration count %d != total %d",
			len(params.Consideration), params.TotalOriginalConsiderationItems)
	}
	if params.Counter != CounterNumber(0) {
		t.Errorf("counter = %+v", params.Counter)
	}
	if params.Offer[0].StartAmount.String() != "1" {
		t.Errorf("offer amount = %s", params.Offer[0].StartAmount.String())
	}

	if order.MakerAssetBundle == nil || len(order.MakerAssetBundle.Assets) != 1 {
		t.Fatalf("maker bundle = %+v", order.MakerAssetBundle)
	}
	asset := order.MakerAssetBundle.Assets[0]
	if asset.TokenID != "5465" {
		t.Errorf("token id = %s", asset.TokenID)
	}
	if asset.AssetContract.SchemaName != "ERC721" {
		t.Errorf("schema = %s", asset.AssetContract.SchemaName)
	}
	if asset.Collection.Slug != "boredapeyachtclub" {
		t.Errorf("collection slug = %s", asset.Collection.Slug)
	}
	if len(order.TakerAssetBundle.Assets) != 0 {
		t.Errorf("taker bundle assets = %d", len(order.TakerAssetBundle.Assets))
	}
}

func TestOrderIsFillable(t *testing.T) {
	tests := []struct {
		name  string
		order Order
		want  bool
	}{
		{name: "open", order: Order{RemainingQuantity: 1}, want: true},
		{name: "cancelled", order: Order{Cancelled: true, RemainingQuantity: 1}, want: false},
		{name: "finalized", order: Order{Finalized: true, RemainingQuantity: 1}, want: false},
		{name: "marked invalid", order: Order{MarkedInvalid: true, RemainingQuantity: 1}, want: false},
		{name: "exhausted", order: Order{RemainingQuantity: 0}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.order.IsFillable(); got != tt.want {
				t.Errorf("IsFillable() = %v, want %v", got, tt.want)
			}
		})
	}
}
