package entity

// VerificationStatus is the phase of the current verification attempt.
type VerificationStatus string

const (
	VerificationIdle      VerificationStatus = "idle"
	VerificationPending   VerificationStatus = "pending"
	VerificationSucceeded VerificationStatus = "succeeded"
	VerificationFailed    VerificationStatus = "failed"
)

// VerificationState is the orchestrator's per-attempt state. Exactly one
// status is active at a time; a new attempt supersedes the previous state
// without queuing.
type VerificationState struct {
	Status  VerificationStatus `json:"status"`
	Network Network            `json:"network,omitempty"`
	Address string             `json:"address,omitempty"`
	Record  *TokenRecord       `json:"record,omitempty"`
	Reason  string             `json:"reason,omitempty"`
}

// ResultView is a consistent snapshot of everything the verifier currently
// displays: the verification state plus the three discovery lists. At most one
// result category is populated at a time.
type ResultView struct {
	Verification   VerificationState `json:"verification"`
	RecentTokens   []RecentToken     `json:"recent_tokens"`
	TrendingPools  []TrendingEntry   `json:"trending_pools"`
	BoostedTokens  []BoostedToken    `json:"boosted_tokens"`
	DiscoveryError string            `json:"discovery_error,omitempty"`
}
