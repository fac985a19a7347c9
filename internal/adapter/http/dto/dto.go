package dto

// PayheroCallback is the request body the aggregator posts after a payment
// attempt settles. Field names follow the aggregator's wire format.
type PayheroCallback struct {
	Response PayheroCallbackData `json:"response"`
}

// PayheroCallbackData carries the settlement details. Amount is a
// FlexNumber because the aggregator sends it both quoted and unquoted.
type PayheroCallbackData struct {
	ExternalReference  string     `json:"ExternalReference"`
	Status             string     `json:"Status"`
	Amount             FlexNumber `json:"Amount"`
	MpesaReceiptNumber string     `json:"MpesaReceiptNumber"`
}

// FlexNumber holds a JSON number that may arrive quoted. The raw token is
// kept as-is; numeric validation happens downstream where unparseable
// values count as zero.
type FlexNumber string

// UnmarshalJSON strips surrounding quotes when present.
func (n *FlexNumber) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	*n = FlexNumber(s)
	return nil
}

func (n FlexNumber) String() string { return string(n) }

// CallbackAck is the body returned to the aggregator for every accepted
// callback, including ignored and duplicate ones.
type CallbackAck struct {
	Result string `json:"result"` // processed, ignored or duplicate
}

// ActivateChannelRequest is the request body for channel activation.
// Field presence is validated in the service so each miss maps to its own
// error message.
type ActivateChannelRequest struct {
	ShopID     string `json:"shop_id"`
	Type       string `json:"type"`
	ShortCode  string `json:"short_code"`
	TillNumber string `json:"till_number,omitempty"`
	ShopName   string `json:"shop_name,omitempty"`
}

// ActivateChannelResponse is the response body for successful activation.
type ActivateChannelResponse struct {
	Success   bool   `json:"success"`
	ChannelID string `json:"channel_id"`
}
