// Package registry holds the static organization registry and resolves admin
// addresses to the organization they act for.
//
// The table is generated by cmd/registrygen from the chain's node constants
// and is never modified at runtime.
package registry

//go:generate go run ../cmd/registrygen -primitives $PRIMITIVES_DIR -out table_gen.go

import (
	"fmt"
	"strings"

	"github.com/citizenchain/citizenauth/core"
)

const fullAdminDisplayName = "SFID 本地管理员"

// Registry is an immutable index of organization registry items keyed by
// canonical admin address
type Registry struct {
	items  []core.OrganizationRegistryItem
	byAddr map[string]core.OrganizationRegistryItem
}

// New builds a registry over items. Addresses are normalized; duplicates and
// malformed addresses are rejected.
func New(items []core.OrganizationRegistryItem) (*Registry, error) {
	r := &Registry{
		items:  make([]core.OrganizationRegistryItem, 0, len(items)),
		byAddr: make(map[string]core.OrganizationRegistryItem, len(items)),
	}

	for _, item := range items {
		if !item.Role.Valid() {
			return nil, fmt.Errorf("registry item %q: unknown role %q", item.OrganizationName, item.Role)
		}
		addr, err := core.NormalizeAddress(item.AdminAddress)
		if err != nil {
			return nil, fmt.Errorf("registry item %q: %w", item.OrganizationName, err)
		}
		if _, dup := r.byAddr[addr]; dup {
			return nil, fmt.Errorf("registry item %q: duplicate admin address %s", item.OrganizationName, addr)
		}
		item.AdminAddress = addr
		r.items = append(r.items, item)
		r.byAddr[addr] = item
	}

	return r, nil
}

// Default returns the registry built from the generated table
func Default() *Registry {
	r, err := New(table)
	if err != nil {
		panic(fmt.Sprintf("generated organization registry is invalid: %v", err))
	}
	return r
}

// ResolveByAddress normalizes address and returns the matching item.
// It returns (nil, nil) when the address is well-formed but not registered.
func (r *Registry) ResolveByAddress(address string) (*core.OrganizationRegistryItem, error) {
	canonical, err := core.NormalizeAddress(address)
	if err != nil {
		return nil, err
	}

	item, ok := r.byAddr[canonical]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

// Items returns a copy of all registry items in table order
func (r *Registry) Items() []core.OrganizationRegistryItem {
	out := make([]core.OrganizationRegistryItem, len(r.items))
	copy(out, r.items)
	return out
}

// Len returns the number of registered organizations
func (r *Registry) Len() int {
	return len(r.items)
}

// DisplayName returns the name shown for a logged-in node operator
func DisplayName(role core.Role, organizationName string) string {
	if role == core.RoleFullAdmin {
		return fullAdminDisplayName
	}
	if strings.HasSuffix(organizationName, "节点") {
		return organizationName
	}
	return organizationName + "节点"
}
