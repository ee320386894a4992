package entity

import "strings"

// WhitelistedToken is a user-curated subset of a TokenRecord.
// At most one entry may exist per (address-lowercased, network) pair.
type WhitelistedToken struct {
	Address string  `json:"address"`
	Name    string  `json:"name"`
	Symbol  string  `json:"symbol"`
	Network Network `json:"network"`
	AddedAt string  `json:"addedAt"`
}

// Matches reports whether the entry refers to the given address on the given
// network. Address comparison is case-insensitive.
func (w WhitelistedToken) Matches(address string, network Network) bool {
	return strings.EqualFold(w.Address, address) && w.Network == network
}
