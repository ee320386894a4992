package entity

// Wire types for the GeckoTerminal v2 API. Both the market-data endpoint
// (/networks/{network}/tokens/{address}) and the info endpoint (.../info)
// return partially-overlapping subsets of TokenAttributes; fields absent from
// a given endpoint simply decode to their zero values.

// TokenDetailResponse is the envelope of a single-token endpoint.
type TokenDetailResponse struct {
	Data *TokenData `json:"data"`
}

// TokenData is the "data" object of a single-token response.
type TokenData struct {
	ID            string             `json:"id"`
	Type          string             `json:"type"`
	Attributes    TokenAttributes    `json:"attributes"`
	Relationships TokenRelationships `json:"relationships"`
}

// TokenAttributes is the attribute set describing one token. Numeric market
// quantities arrive as decimal strings or native numbers depending on the
// endpoint, hence FlexString.
type TokenAttributes struct {
	Name              string          `json:"name"`
	Symbol            string          `json:"symbol"`
	Address           string          `json:"address"`
	Decimals          *int64          `json:"decimals"`
	ImageURL          string          `json:"image_url"`
	CoingeckoCoinID   string          `json:"coingecko_coin_id"`
	Websites          []string        `json:"websites"`
	Description       string          `json:"description"`
	GTScore           FlexString      `json:"gt_score"`
	DiscordURL        string          `json:"discord_url"`
	TelegramHandle    string          `json:"telegram_handle"`
	TwitterHandle     string          `json:"twitter_handle"`
	MetadataUpdatedAt string          `json:"metadata_updated_at"`
	TotalSupply       FlexString      `json:"total_supply"`
	PriceUSD          FlexString      `json:"price_usd"`
	FDVUSD            FlexString      `json:"fdv_usd"`
	TotalReserveInUSD FlexString      `json:"total_reserve_in_usd"`
	MarketCapUSD      FlexString      `json:"market_cap_usd"`
	VolumeUSD         TimeframeValues `json:"volume_usd"`
}

// TimeframeValues holds a quantity broken down by timeframe key.
type TimeframeValues struct {
	H24 FlexString `json:"h24"`
}

// TokenRelationships carries the related pool references of a token.
type TokenRelationships struct {
	TopPools RelationshipList `json:"top_pools"`
}

// RelationshipList is a JSON:API to-many relationship.
type RelationshipList struct {
	Data []RelationshipRef `json:"data"`
}

// RelationshipItem is a JSON:API to-one relationship.
type RelationshipItem struct {
	Data RelationshipRef `json:"data"`
}

// RelationshipRef is a JSON:API resource identifier.
type RelationshipRef struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// TopPoolIDs extracts the ordered pool identifiers of a token response.
func (r *TokenDetailResponse) TopPoolIDs() []string {
	if r == nil || r.Data == nil {
		return nil
	}
	refs := r.Data.Relationships.TopPools.Data
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.ID)
	}
	return ids
}

// TokenListResponse is the envelope of the recently-updated bulk endpoint.
type TokenListResponse struct {
	Data []TokenListItem `json:"data"`
}

// TokenListItem is one token of a bulk list response.
type TokenListItem struct {
	ID            string                `json:"id"`
	Attributes    TokenAttributes       `json:"attributes"`
	Relationships ListItemRelationships `json:"relationships"`
}

// ListItemRelationships carries the originating network of a list item.
type ListItemRelationships struct {
	Network RelationshipItem `json:"network"`
}

// PoolListResponse is the envelope of the trending-pools bulk endpoint.
type PoolListResponse struct {
	Data []PoolListItem `json:"data"`
}

// PoolListItem is one pool of the trending-pools response.
type PoolListItem struct {
	ID         string         `json:"id"`
	Attributes PoolAttributes `json:"attributes"`
}

// PoolAttributes is the attribute set describing one trending pool.
type PoolAttributes struct {
	Name                  string                `json:"name"`
	Address               string                `json:"address"`
	BaseTokenPriceUSD     FlexString            `json:"base_token_price_usd"`
	QuoteTokenPriceUSD    FlexString            `json:"quote_token_price_usd"`
	MarketCapUSD          FlexString            `json:"market_cap_usd"`
	PriceChangePercentage map[string]FlexString `json:"price_change_percentage"`
	VolumeUSD             TimeframeValues       `json:"volume_usd"`
}
