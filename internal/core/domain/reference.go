package domain

import "strings"

// Reference is the composite external reference linking an aggregator
// callback to a transaction type and shop: "TYPE|SHOP_ID[|...]".
type Reference struct {
	Type   string
	ShopID string
	Rest   []string
}

// ParseReference splits a raw reference on '|'. Segment 0 is the type
// token, segment 1 the shop id when present. The type is not validated
// against a closed set; unknown types take the generic wallet branch.
func ParseReference(raw string) Reference {
	parts := strings.Split(raw, "|")
	ref := Reference{Type: parts[0]}
	if len(parts) > 1 {
		ref.ShopID = parts[1]
	}
	if len(parts) > 2 {
		ref.Rest = parts[2:]
	}
	return ref
}

// String re-encodes the reference.
func (r Reference) String() string {
	parts := append([]string{r.Type, r.ShopID}, r.Rest...)
	return strings.Join(parts, "|")
}

// HasShop reports whether the reference carries a shop id. Without one,
// reconciliation records the payment status but touches no wallet.
func (r Reference) HasShop() bool {
	return r.ShopID != ""
}
