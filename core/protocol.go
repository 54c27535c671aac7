package core

import (
	"fmt"
	"time"
)

// Variant names one of the supported login protocol profiles
type Variant string

const (
	// VariantWuminapp uses request ids with anti-replay and accepts unregistered signers as full admins
	VariantWuminapp Variant = "wuminapp-v1"
	// VariantFCRC binds each challenge to a registered admin before signing
	VariantFCRC Variant = "fcrc-v1"
	// VariantCitizenNode is the plain nonce protocol
	VariantCitizenNode Variant = "citizennode-v1"
)

// UnknownSignerPolicy decides what happens when a signer is not in the registry
type UnknownSignerPolicy string

const (
	PolicyReject   UnknownSignerPolicy = "reject"
	PolicyFallback UnknownSignerPolicy = "fallback"
)

// DefaultFallbackOrganization is the organization name given to fallback sessions
const DefaultFallbackOrganization = "全节点"

// Protocol is the full configuration of one login protocol profile
type Protocol struct {
	Variant              Variant
	Tag                  string // proto field carried by challenges and receipts
	Version              int
	TTL                  time.Duration
	RequestIDs           bool // challenges carry a request id the receipt must echo
	AntiReplay           bool // consumed request ids are rejected
	BindIdentity         bool // challenges are bound to an admin address up front
	UnknownSigner        UnknownSignerPolicy
	FallbackOrganization string
}

var protocols = map[Variant]Protocol{
	VariantWuminapp: {
		Variant:              VariantWuminapp,
		Tag:                  "WUMINAPP_LOGIN_V1",
		Version:              1,
		TTL:                  60 * time.Second,
		RequestIDs:           true,
		AntiReplay:           true,
		UnknownSigner:        PolicyFallback,
		FallbackOrganization: DefaultFallbackOrganization,
	},
	VariantFCRC: {
		Variant:       VariantFCRC,
		Tag:           "fcrc.login.v1",
		Version:       1,
		TTL:           120 * time.Second,
		BindIdentity:  true,
		UnknownSigner: PolicyReject,
	},
	VariantCitizenNode: {
		Variant:       VariantCitizenNode,
		Tag:           "citizennode.login.v1",
		Version:       1,
		TTL:           60 * time.Second,
		UnknownSigner: PolicyReject,
	},
}

// ProtocolFor returns the default profile for variant
func ProtocolFor(variant Variant) (Protocol, error) {
	p, ok := protocols[variant]
	if !ok {
		return Protocol{}, fmt.Errorf("%w: %q", ErrUnknownProtocol, variant)
	}
	return p, nil
}

// Validate checks that the profile is internally consistent
func (p Protocol) Validate() error {
	if p.Tag == "" {
		return fmt.Errorf("protocol %s: empty tag", p.Variant)
	}
	if p.Version <= 0 {
		return fmt.Errorf("protocol %s: version must be positive", p.Variant)
	}
	if p.TTL <= 0 {
		return fmt.Errorf("protocol %s: ttl must be positive", p.Variant)
	}
	if p.AntiReplay && !p.RequestIDs {
		return fmt.Errorf("protocol %s: anti-replay requires request ids", p.Variant)
	}
	switch p.UnknownSigner {
	case PolicyReject:
	case PolicyFallback:
		if p.FallbackOrganization == "" {
			return fmt.Errorf("protocol %s: fallback policy needs an organization name", p.Variant)
		}
	default:
		return fmt.Errorf("protocol %s: unknown signer policy %q", p.Variant, p.UnknownSigner)
	}
	return nil
}
