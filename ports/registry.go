package ports

import "github.com/citizenchain/citizenauth/core"

// Registry resolves admin addresses to their organization.
// A nil item with a nil error means the address is not registered.
type Registry interface {
	ResolveByAddress(address string) (*core.OrganizationRegistryItem, error)
}
