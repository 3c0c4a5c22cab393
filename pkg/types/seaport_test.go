package types

import (
	"testing"
	"time"

	json "github.com/goccy/go-json"
)

func TestCounterShapePreserved(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     Counter
		reissued string
	}{
		{name: "bare zero", input: `0`, want: CounterNumber(0), reissued: `0`},
		{name: "quoted zero", input: `"0"`, want: CounterText("0"), reissued: `"0"`},
		{name: "bare nonce", input: `12`, want: CounterNumber(12), reissued: `12`},
		{
			name:     "huge quoted nonce",
			input:    `"57468249765596947104003436673698306097225425700925600050064791387425512478121"`,
			want:     CounterText("57468249765596947104003436673698306097225425700925600050064791387425512478121"),
			reissued: `"57468249765596947104003436673698306097225425700925600050064791387425512478121"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Counter
			if err := json.Unmarshal([]byte(tt.input), &c); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.input, err)
			}
			if c != tt.want {
				t.Errorf("decoded %+v, want %+v", c, tt.want)
			}

			encoded, err := json.Marshal(c)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(encoded) != tt.reissued {
				t.Errorf("re-encoded %s, want %s", encoded, tt.reissued)
			}
		})
	}
}

func TestCounterRejectsOtherShapes(t *testing.T) {
	for _, input := range []string{`true`, `[0]`, `{"n":0}`} {
		var c Counter
		if err := json.Unmarshal([]byte(input), &c); err == nil {
			t.Errorf("expected error for %s", input)
		}
	}
}

func TestItemTypeRange(t *testing.T) {
	tests := []struct {
		input   string
		want    ItemType
		wantErr bool
	}{
		{input: `0`, want: ItemTypeNative},
		{input: `1`, want: ItemTypeERC20},
		{input: `2`, want: ItemTypeERC721},
		{input: `3`, want: ItemTypeERC1155},
		{input: `4`, want: ItemTypeERC721WithCriteria},
		{input: `5`, want: ItemTypeERC1155WithCriteria},
		{input: `6`, wantErr: true},
		{input: `-1`, wantErr: true},
		{input: `"2"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var it ItemType
			err := json.Unmarshal([]byte(tt.input), &it)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal %s: %v", tt.input, err)
			}
			if it != tt.want {
				t.Errorf("got %v, want %v", it, tt.want)
			}
		})
	}
}

func TestProtocolOrderTypeRange(t *testing.T) {
	tests := []struct {
		input   string
		want    ProtocolOrderType
		wantErr bool
	}{
		{input: `0`, want: OrderFullOpen},
		{input: `1`, want: OrderPartialOpen},
		{input: `2`, want: OrderFullRestricted},
		{input: `3`, want: OrderPartialRestricted},
		{input: `4`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var ot ProtocolOrderType
			err := json.Unmarshal([]byte(tt.input), &ot)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal %s: %v", tt.input, err)
			}
			if ot != tt.want {
				t.Errorf("got %v, want %v", ot, tt.want)
			}
		})
	}
}

func TestSeaportOrderParametersDecode(t *testing.T) {
	raw := `{
		"offerer": "0x193d3eda0dbabd55453de814ef08a6255446c911",
		"offer": [
			{
				"itemType": 2,
				"token": "0xBC4CA0EdA7647A8aB7C2061c2E118A18a936f13D",
				"identifierOrCriteria": "5465",
				"startAmount": "1",
				"endAmount": "1"
			}
		],
		"consideration": [
			{
				"itemType": 0,
				"token": "0x0000000000000000000000000000000000000000",
				"identifierOrCriteria": "0",
				"startAmount": "15405000000000000000",
				"endAmount": "15405000000000000000",
				"recipient": "0x193d3eda0dbabd55453de814ef08a6255446c911"
			},
			{
				"itemType": 0,
				"token": "0x0000000000000000000000000000000000000000",
				"identifierOrCriteria": "0",
				"startAmount": "395000000000000000",
				"endAmount": "395000000000000000",
				"recipient": "0x0000a26b00c1F0DF003000390027140000fAa719"
			}
		],
		"startTime": "1698555026",
		"endTime": "1706378891",
		"orderType": 0,
		"zone": "0x004C00500000aD104D7DBd00e3ae0A5C00560C00",
		"zoneHash": "0x0000000000000000000000000000000000000000000000000000000000000000",
		"salt": "0x360c6ebe0000000000000000000000000000000000000000e80d5d4e6e9b3d57",
		"conduitKey": "0x0000007b02230091a7ed01230072f7006a004d60a8d4e71d599b8104250f0000",
		"totalOriginalConsiderationItems": 2,
		"counter": 0
	}`

	var params SeaportOrderParameters
	if err := json.Unmarshal([]byte(raw), &params); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if params.Offerer != "0x193d3eda0dbabd55453de814ef08a6255446c911" {
		t.Errorf("offerer = %s", params.Offerer)
	}
	want := time.Date(2023, time.October, 29, 4, 50, 26, 0, time.UTC)
	if !params.StartTime.Time().Equal(want) {
		t.Errorf("start time = %v, want %v", params.StartTime.Time(), want)
	}
	if params.OrderType != OrderFullOpen {
		t.Errorf("order type = %v", params.OrderType)
	}
	if len(params.Offer) != 1 {
		t.Fatalf("offer count = %d", len(params.Offer))
	}
	if params.Offer[0].ItemType != ItemTypeERC721 {
		t.Errorf("offer item type = %v", params.Offer[0].ItemType)
	}
	if params.Offer[0].IdentifierOrCriteria.String() != "5465" {
		t.Errorf("identifier = %s", params.Offer[0].IdentifierOrCriteria.String())
	}
	if uint64(len(params.Consideration)) != params.TotalOriginalConsiderationItems {
		t.Errorf("consideration count %d != total_original_consideration_items %d",
			len(params.Consideration), params.TotalOriginalConsiderationItems)
	}
	if params.Consideration[1].StartAmount.String() != "395000000000000000" {
		t.Errorf("fee amount = %s", params.Consideration[1].StartAmount.String())
	}
	if params.Counter != CounterNumber(0) {
		t.Errorf("counter = %+v, want number 0", params.Counter)
	}
	// The salt is not guaranteed to be decimal; it must survive untouched.
	if params.Salt != "0x360c6ebe0000000000000000000000000000000000000000e80d5d4e6e9b3d57" {
		t.Errorf("salt = %s", params.Salt)
	}
}
