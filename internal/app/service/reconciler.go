package service

import (
	"strconv"
	"strings"

	domain "token_verifier/internal/domain/entity"
	"token_verifier/internal/entity"
)

// ReconcileToken merges the attribute objects of the market-data endpoint
// (primary) and the info endpoint (secondary) into one canonical TokenRecord.
//
// Each field is resolved by first-non-empty precedence: the primary source is
// consulted first and ties always resolve to it. Scalar fields with no usable
// value fall back to the N/A sentinel, list fields to an empty list; list
// fields are won wholesale by the first source providing a non-empty list and
// are never concatenated. The returned record has every field populated.
func ReconcileToken(address string, primary, secondary *entity.TokenAttributes, topPools []string) domain.TokenRecord {
	if primary == nil {
		primary = &entity.TokenAttributes{}
	}
	if secondary == nil {
		secondary = &entity.TokenAttributes{}
	}
	if topPools == nil {
		topPools = []string{}
	}

	return domain.TokenRecord{
		Name:              firstNonEmpty(domain.NotAvailable, primary.Name, secondary.Name),
		Symbol:            firstNonEmpty(domain.NotAvailable, primary.Symbol, secondary.Symbol),
		Address:           firstNonEmpty(address, primary.Address, secondary.Address),
		Decimals:          firstDecimals(primary.Decimals, secondary.Decimals),
		ImageURL:          firstNonEmpty("", primary.ImageURL, secondary.ImageURL),
		Websites:          firstNonEmptyList(primary.Websites, secondary.Websites),
		Description:       firstNonEmpty(domain.NotAvailable, primary.Description, secondary.Description),
		DiscordURL:        firstNonEmpty("", primary.DiscordURL, secondary.DiscordURL),
		TelegramHandle:    firstNonEmpty("", primary.TelegramHandle, secondary.TelegramHandle),
		TwitterHandle:     firstNonEmpty("", primary.TwitterHandle, secondary.TwitterHandle),
		CoingeckoCoinID:   firstNonEmpty("", primary.CoingeckoCoinID, secondary.CoingeckoCoinID),
		GTScore:           firstUsableNumber(primary.GTScore, secondary.GTScore),
		MetadataUpdatedAt: firstNonEmpty(domain.NotAvailable, primary.MetadataUpdatedAt, secondary.MetadataUpdatedAt),
		TotalSupply:       firstUsableNumber(primary.TotalSupply, secondary.TotalSupply),
		PriceUSD:          firstUsableNumber(primary.PriceUSD, secondary.PriceUSD),
		FDVUSD:            firstUsableNumber(primary.FDVUSD, secondary.FDVUSD),
		TotalReserveUSD:   firstUsableNumber(primary.TotalReserveInUSD, secondary.TotalReserveInUSD),
		Volume24hUSD:      firstUsableNumber(primary.VolumeUSD.H24, secondary.VolumeUSD.H24),
		MarketCapUSD:      firstUsableNumber(primary.MarketCapUSD, secondary.MarketCapUSD),
		TopPools:          topPools,
	}
}

// firstNonEmpty returns the first candidate that is non-empty after trimming,
// or the fallback.
func firstNonEmpty(fallback string, candidates ...string) string {
	for _, v := range candidates {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return fallback
}

// firstUsableNumber returns the first candidate that parses as a number,
// preserving its upstream decimal text, or the N/A sentinel. A value that is
// present but not numeric is treated as absent rather than failing the record.
func firstUsableNumber(candidates ...entity.FlexString) string {
	for _, v := range candidates {
		s := strings.TrimSpace(string(v))
		if s == "" {
			continue
		}
		if _, err := strconv.ParseFloat(s, 64); err == nil {
			return s
		}
	}
	return domain.NotAvailable
}

// firstDecimals converts the first present decimals value to its string
// representation, or the N/A sentinel.
func firstDecimals(candidates ...*int64) string {
	for _, v := range candidates {
		if v != nil {
			return strconv.FormatInt(*v, 10)
		}
	}
	return domain.NotAvailable
}

// firstNonEmptyList returns the first non-empty list, or an empty list.
// Lists are never merged element-wise across sources.
func firstNonEmptyList(candidates ...[]string) []string {
	for _, l := range candidates {
		if len(l) > 0 {
			return l
		}
	}
	return []string{}
}

// textOrNA normalizes a flexible upstream value for list rows: empty becomes
// the N/A sentinel, anything else keeps its upstream text.
func textOrNA(v entity.FlexString) string {
	if strings.TrimSpace(string(v)) == "" {
		return domain.NotAvailable
	}
	return string(v)
}
