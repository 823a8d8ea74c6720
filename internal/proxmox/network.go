package proxmox

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// VMNetwork returns the network configuration of a VM or container, parsed
// from its net* config entries. For QEMU guests the live interface list is
// additionally fetched from the guest agent when it responds; agent_network
// is null when the agent is unavailable.
func (m *Manager) VMNetwork(ctx context.Context, node string, vmid int, vmType string) (map[string]any, error) {
	if vmType != GuestTypeQemu {
		vmType = GuestTypeLXC
	}

	data, err := m.api.Get(ctx, fmt.Sprintf("/nodes/%s/%s/%d/config", node, vmType, vmid), nil)
	if err != nil {
		return nil, err
	}
	config := toMap(data)

	interfaces := make([]map[string]any, 0)
	for _, key := range sortedKeys(config) {
		if !strings.HasPrefix(key, "net") {
			continue
		}
		iface := map[string]any{
			"name":   key,
			"config": config[key],
		}
		// net entries look like "virtio=AA:BB:...,bridge=vmbr0,firewall=1".
		if raw, ok := config[key].(string); ok {
			for _, part := range strings.Split(raw, ",") {
				if k, v, found := strings.Cut(part, "="); found {
					iface[k] = v
				}
			}
		}
		interfaces = append(interfaces, iface)
	}

	info := map[string]any{
		"vmid":       vmid,
		"node":       node,
		"type":       vmType,
		"interfaces": interfaces,
	}

	if vmType == GuestTypeQemu {
		info["agent_network"] = m.agentNetwork(ctx, node, vmid)
	}
	return info, nil
}

// agentNetwork queries the QEMU guest agent for live interface data.
// Best effort: any failure yields nil.
func (m *Manager) agentNetwork(ctx context.Context, node string, vmid int) any {
	data, err := m.api.Get(ctx, fmt.Sprintf("/nodes/%s/%s/%d/agent/network-get-interfaces", node, GuestTypeQemu, vmid), nil)
	if err != nil {
		return nil
	}
	result := toMap(data)
	if result == nil {
		return nil
	}
	return fieldOr(result, "result", []any{})
}

// FirewallStatus returns firewall options and rules for a node, or for one
// VM when vmid is greater than zero.
func (m *Manager) FirewallStatus(ctx context.Context, node string, vmid int) (map[string]any, error) {
	var optionsPath, rulesPath, target string
	if vmid > 0 {
		optionsPath = fmt.Sprintf("/nodes/%s/%s/%d/firewall/options", node, GuestTypeQemu, vmid)
		rulesPath = fmt.Sprintf("/nodes/%s/%s/%d/firewall/rules", node, GuestTypeQemu, vmid)
		target = fmt.Sprintf("VM %d", vmid)
	} else {
		optionsPath = fmt.Sprintf("/nodes/%s/firewall/options", node)
		rulesPath = fmt.Sprintf("/nodes/%s/firewall/rules", node)
		target = fmt.Sprintf("Node %s", node)
	}

	optionsData, err := m.api.Get(ctx, optionsPath, nil)
	if err != nil {
		return nil, err
	}
	rulesData, err := m.api.Get(ctx, rulesPath, nil)
	if err != nil {
		return nil, err
	}
	options := toMap(optionsData)

	rules := make([]map[string]any, 0)
	for _, rule := range toList(rulesData) {
		rules = append(rules, map[string]any{
			"pos":     rule["pos"],
			"type":    rule["type"],
			"action":  rule["action"],
			"enable":  fieldOr(rule, "enable", 1),
			"source":  fieldOr(rule, "source", "any"),
			"dest":    fieldOr(rule, "dest", "any"),
			"proto":   fieldOr(rule, "proto", "any"),
			"dport":   fieldOr(rule, "dport", ""),
			"sport":   fieldOr(rule, "sport", ""),
			"comment": fieldOr(rule, "comment", ""),
		})
	}

	return map[string]any{
		"target":     target,
		"enabled":    fieldOr(options, "enable", 0),
		"policy_in":  fieldOr(options, "policy_in", "ACCEPT"),
		"policy_out": fieldOr(options, "policy_out", "ACCEPT"),
		"log_level":  fieldOr(options, "log_level_in", "nolog"),
		"rules":      rules,
	}, nil
}

// sortedKeys returns the map's keys in a stable order so interface lists
// come out deterministic.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
