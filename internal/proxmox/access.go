package proxmox

import (
	"context"
)

// Users lists all users known to the cluster. Comma-joined group
// memberships are split into proper lists.
func (m *Manager) Users(ctx context.Context) (map[string]any, error) {
	data, err := m.api.Get(ctx, "/access/users", nil)
	if err != nil {
		return nil, err
	}

	users := make([]map[string]any, 0)
	for _, user := range toList(data) {
		users = append(users, map[string]any{
			"userid":    user["userid"],
			"enable":    fieldOr(user, "enable", 1),
			"expire":    fieldOr(user, "expire", 0),
			"firstname": fieldOr(user, "firstname", ""),
			"lastname":  fieldOr(user, "lastname", ""),
			"email":     fieldOr(user, "email", ""),
			"comment":   fieldOr(user, "comment", ""),
			"groups":    splitList(strField(user, "groups", "")),
			"tokens":    fieldOr(user, "tokens", []any{}),
		})
	}
	return map[string]any{"users": users, "count": len(users)}, nil
}

// Groups lists all groups, with member lists split out.
func (m *Manager) Groups(ctx context.Context) (map[string]any, error) {
	data, err := m.api.Get(ctx, "/access/groups", nil)
	if err != nil {
		return nil, err
	}

	groups := make([]map[string]any, 0)
	for _, group := range toList(data) {
		groups = append(groups, map[string]any{
			"groupid": group["groupid"],
			"comment": fieldOr(group, "comment", ""),
			"users":   splitList(strField(group, "users", "")),
		})
	}
	return map[string]any{"groups": groups, "count": len(groups)}, nil
}

// Roles lists all roles, with privilege lists split out.
func (m *Manager) Roles(ctx context.Context) (map[string]any, error) {
	data, err := m.api.Get(ctx, "/access/roles", nil)
	if err != nil {
		return nil, err
	}

	roles := make([]map[string]any, 0)
	for _, role := range toList(data) {
		roles = append(roles, map[string]any{
			"roleid":  role["roleid"],
			"privs":   splitList(strField(role, "privs", "")),
			"special": fieldOr(role, "special", 0),
		})
	}
	return map[string]any{"roles": roles, "count": len(roles)}, nil
}
