package session

import "time"

// UserProfile is the session-scoped merchant profile held by the edge after
// a successful verification. It mirrors what the backend knows about the
// user; the edge never mutates it beyond replacing the whole snapshot.
type UserProfile struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	Role     string `json:"role,omitempty"`
	Verified bool   `json:"verified"`

	Stores         []StoreRef      `json:"stores,omitempty"`
	PayoutAccounts []PayoutAccount `json:"payoutAccounts,omitempty"`

	Plan       string    `json:"plan,omitempty"`
	PlanStatus string    `json:"planStatus,omitempty"`
	IssuedAt   time.Time `json:"issuedAt,omitzero"`
}

// StoreRef points at a store the user owns. Current plans cap owners at one
// store; the profile still carries a list since the backend does.
type StoreRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	Slug string `json:"slug,omitempty"`
}

// PayoutAccount is a wallet/payout destination attached to the user.
type PayoutAccount struct {
	ID       string `json:"id"`
	Provider string `json:"provider,omitempty"`
	Verified bool   `json:"verified"`
}
