package types

// FulfillListingResponse is the computed settlement call for one listing.
// Protocol names the revision the server settled on ("seaport1.5").
type FulfillListingResponse struct {
	Protocol        string          `json:"protocol"`
	FulfillmentData FulfillmentData `json:"fulfillment_data"`
}

// FulfillmentData wraps the ready-to-submit transaction.
type FulfillmentData struct {
	Transaction Transaction `json:"transaction"`
}

// Transaction is the call to submit on-chain. Value is the native-token
// amount to attach, carried as a bare JSON number.
type Transaction struct {
	Function  string    `json:"function"`
	Chain     uint64    `json:"chain"`
	To        Address   `json:"to"`
	Value     TxValue   `json:"value"`
	InputData InputData `json:"input_data"`
}

// InputData wraps the decoded call arguments.
type InputData struct {
	Parameters FulfillmentParameters `json:"parameters"`
}

// FulfillmentParameters mirrors the argument struct of the Seaport basic
// fulfillment call. These values are signed and submitted on-chain, so
// every integer keeps full 256-bit width and nothing is renamed.
type FulfillmentParameters struct {
	ConsiderationToken                Address               `json:"considerationToken"`
	ConsiderationIdentifier           U256                  `json:"considerationIdentifier"`
	ConsiderationAmount               U256                  `json:"considerationAmount"`
	Offerer                           Address               `json:"offerer"`
	Zone                              Address               `json:"zone"`
	OfferToken                        Address               `json:"offerToken"`
	OfferIdentifier                   U256                  `json:"offerIdentifier"`
	OfferAmount                       U256                  `json:"offerAmount"`
	BasicOrderType                    uint8                 `json:"basicOrderType"`
	StartTime                         U256                  `json:"startTime"`
	EndTime                           U256                  `json:"endTime"`
	ZoneHash                          Hash                  `json:"zoneHash"`
	Salt                              U256                  `json:"salt"`
	OffererConduitKey                 Hash                  `json:"offererConduitKey"`
	FulfillerConduitKey               Hash                  `json:"fulfillerConduitKey"`
	TotalOriginalAdditionalRecipients U256                  `json:"totalOriginalAdditionalRecipients"`
	AdditionalRecipients              []AdditionalRecipient `json:"additionalRecipients"`
	Signature                         Bytes                 `json:"signature"`
}

// AdditionalRecipient is one extra payout attached to the fulfillment,
// typically a fee or royalty.
type AdditionalRecipient struct {
	Amount    U256    `json:"amount"`
	Recipient Address `json:"recipient"`
}
