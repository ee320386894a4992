package entity

// NotAvailable is the sentinel used for scalar fields no upstream source provided.
const NotAvailable = "N/A"

// TokenRecord is the canonical, reconciled view of one token.
//
// Numeric quantities are kept as decimal strings because upstream precision
// exceeds the safe float64 range for several fields. Every field is always
// populated with either a real value, the NotAvailable sentinel, or an empty
// (non-nil) collection, so renderers never have to branch on absence.
type TokenRecord struct {
	Name              string   `json:"name"`
	Symbol            string   `json:"symbol"`
	Address           string   `json:"address"`
	Decimals          string   `json:"decimals"`
	ImageURL          string   `json:"image_url"`
	Websites          []string `json:"websites"`
	Description       string   `json:"description"`
	DiscordURL        string   `json:"discord_url"`
	TelegramHandle    string   `json:"telegram_handle"`
	TwitterHandle     string   `json:"twitter_handle"`
	CoingeckoCoinID   string   `json:"coingecko_coin_id"`
	GTScore           string   `json:"gt_score"`
	MetadataUpdatedAt string   `json:"metadata_updated_at"`
	TotalSupply       string   `json:"total_supply"`
	PriceUSD          string   `json:"price_usd"`
	FDVUSD            string   `json:"fdv_usd"`
	TotalReserveUSD   string   `json:"total_reserve_in_usd"`
	Volume24hUSD      string   `json:"volume_24h"`
	MarketCapUSD      string   `json:"market_cap_usd"`
	TopPools          []string `json:"top_pools"`
}
