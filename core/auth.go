package core

import "time"

// Role identifies the organizational role an admin logs in as
type Role string

const (
	RoleNationalReserveCommittee   Role = "nrc"
	RoleProvincialReserveCommittee Role = "prc"
	RoleProvincialReserveBank      Role = "prb"
	RoleFullAdmin                  Role = "full"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleNationalReserveCommittee, RoleProvincialReserveCommittee, RoleProvincialReserveBank, RoleFullAdmin:
		return true
	}
	return false
}

// Scheme is the signature algorithm tag carried by a signed receipt
type Scheme string

const (
	SchemeSr25519 Scheme = "sr25519"
	SchemeEd25519 Scheme = "ed25519"
)

// Valid reports whether s is a supported signature scheme
func (s Scheme) Valid() bool {
	return s == SchemeSr25519 || s == SchemeEd25519
}

// OrganizationRegistryItem is one row of the static organization table
type OrganizationRegistryItem struct {
	Role             Role
	OrganizationName string
	Province         string // empty for national bodies
	AdminAddress     string // canonical address
}

// ChallengeBinding scopes a challenge to a single identity before signing
type ChallengeBinding struct {
	Role     Role
	Address  string // canonical address
	Province string
}

// LoginChallenge represents a single-use login challenge
type LoginChallenge struct {
	RequestID string            // Random request identifier, empty when the protocol does not use one
	Nonce     string            // Random value the signer must echo back
	IssuedAt  time.Time         // When the challenge was created, second precision
	ExpiresAt time.Time         // Last instant at which the challenge is still valid
	Binding   *ChallengeBinding // Identity the challenge is bound to, if any
}

// Expired reports whether the challenge is no longer valid at now.
// The expiry instant itself is still valid.
func (c LoginChallenge) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// SignedLoginPayload is the receipt produced by an external signer
type SignedLoginPayload struct {
	Tag       string
	Version   int
	RequestID string
	Signer    string // address as sent by the signer, not yet normalized
	Scheme    Scheme
	Nonce     string
	Signature string
	SignedAt  time.Time
}

// LoginSession represents an authenticated admin session
type LoginSession struct {
	ID               string    // Unique session identifier
	Role             Role      // Role resolved from the registry or fallback policy
	PublicKey        string    // Canonical address of the signer
	Province         string    // Province of the organization, if any
	OrganizationName string    // Organization the admin acts for
	IssuedAt         time.Time // When the session was created
}

// LoginState is the state of the login state machine
type LoginState string

const (
	StateNoChallenge     LoginState = "no_challenge"
	StateChallengeIssued LoginState = "challenge_issued"
	StateAccepted        LoginState = "accepted"
	StateRejected        LoginState = "rejected"
)
