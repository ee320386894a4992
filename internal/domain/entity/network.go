package entity

import "strings"

// Network is the identifier of a supported blockchain network.
// It is selected before a query and scopes which upstream endpoints may be called.
type Network string

const (
	NetworkTron   Network = "tron"
	NetworkSolana Network = "solana"
	NetworkTon    Network = "ton"
)

// TokenNetworks lists the networks available for token verification.
var TokenNetworks = []Network{NetworkTron, NetworkSolana, NetworkTon}

// AccountNetworks lists the networks available for account queries.
// Account data is currently served by Tronscan only.
var AccountNetworks = []Network{NetworkTron}

// ParseNetwork normalizes a user-supplied network identifier.
func ParseNetwork(s string) (Network, bool) {
	n := Network(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range TokenNetworks {
		if n == known {
			return n, true
		}
	}
	return "", false
}
