package permission

import (
	"fmt"

	"github.com/smmpanel/panel/internal/shared/authorization"
	"github.com/smmpanel/panel/internal/shared/constants"
)

// ProviderPolicies grants the admin role full access to provider management.
func ProviderPolicies() [][]string {
	admin := authorization.RoleAdmin.String()
	return [][]string{
		{admin, constants.ResourceProvider, constants.ActionRead},
		{admin, constants.ResourceProvider, constants.ActionWrite},
	}
}

// SeedProviderPermissions adds the provider policies that are missing and
// reports how many were new.
func SeedProviderPermissions(e *Enforcer) (int, error) {
	added := 0
	for _, policy := range ProviderPolicies() {
		ok, err := e.AddPolicy(policy[0], policy[1], policy[2])
		if err != nil {
			return added, fmt.Errorf("failed to add policy [%s, %s, %s]: %w", policy[0], policy[1], policy[2], err)
		}
		if ok {
			added++
		}
	}

	e.logger.Infow("provider permissions initialized", "added", added)
	return added, nil
}
