package entity

// BoostedTokenPayload is one element of the DEX Screener latest token-boosts
// response. The endpoint returns a bare JSON array of these.
type BoostedTokenPayload struct {
	URL          string             `json:"url"`
	ChainID      string             `json:"chainId"`
	TokenAddress string             `json:"tokenAddress"`
	Icon         string             `json:"icon"`
	Name         string             `json:"name"`
	Symbol       string             `json:"symbol"`
	Description  string             `json:"description"`
	Links        []BoostLinkPayload `json:"links"`
	Amount       FlexString         `json:"amount"`
	TotalAmount  FlexString         `json:"totalAmount"`
}

// BoostLinkPayload is a social/info link attached to a boost entry.
type BoostLinkPayload struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	URL   string `json:"url"`
}
