package entity

// RecentToken describes one token from the recently-updated discovery list.
// Read-only, replaced wholesale on each fetch.
type RecentToken struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Symbol    string `json:"symbol"`
	Network   string `json:"network"`
	PriceUSD  string `json:"price_usd"`
	Volume24h string `json:"volume_24h"`
}

// TrendingEntry describes one pool from the trending-pools discovery list.
type TrendingEntry struct {
	ID                    string            `json:"id"`
	Name                  string            `json:"name"`
	Address               string            `json:"address"`
	BaseTokenPriceUSD     string            `json:"base_token_price_usd"`
	QuoteTokenPriceUSD    string            `json:"quote_token_price_usd"`
	MarketCapUSD          string            `json:"market_cap_usd"`
	PriceChangePercentage map[string]string `json:"price_change_percentage"`
	Volume24h             string            `json:"volume_24h"`
}

// BoostLink is a social/info link attached to a boosted token.
type BoostLink struct {
	Type  string `json:"type,omitempty"`
	Label string `json:"label,omitempty"`
	URL   string `json:"url"`
}

// BoostedToken describes one promotionally-boosted token from DEX Screener.
type BoostedToken struct {
	URL          string      `json:"url"`
	ChainID      string      `json:"chainId"`
	TokenAddress string      `json:"tokenAddress"`
	Icon         string      `json:"icon"`
	Name         string      `json:"name"`
	Symbol       string      `json:"symbol"`
	Description  string      `json:"description"`
	Links        []BoostLink `json:"links"`
	Amount       string      `json:"amount"`
	TotalAmount  string      `json:"totalAmount"`
}
