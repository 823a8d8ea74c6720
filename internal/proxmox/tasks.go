package proxmox

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// DefaultTaskLimit bounds get_recent_tasks when the caller passes none.
const DefaultTaskLimit = 20

// TaskStatus returns the status of one task identified by its UPID.
// A UPID is a colon-delimited string ("UPID:node:pid:..."); anything with
// fewer than three segments is rejected before hitting the API.
func (m *Manager) TaskStatus(ctx context.Context, node, upid string) (map[string]any, error) {
	if len(strings.Split(upid, ":")) < 3 {
		return nil, errors.New("Invalid UPID format")
	}

	data, err := m.api.Get(ctx, fmt.Sprintf("/nodes/%s/tasks/%s/status", node, upid), nil)
	if err != nil {
		return nil, err
	}
	status := toMap(data)
	if len(status) == 0 {
		return nil, errors.New("No task status returned")
	}
	return status, nil
}

// RecentTasks lists recent tasks. With a node set, only that node is asked.
// Otherwise the limit is split across all nodes, the per-node results are
// merged, sorted by start time descending, and truncated to the limit.
// Nodes that fail to answer are skipped.
func (m *Manager) RecentTasks(ctx context.Context, node string, limit int) (map[string]any, error) {
	if limit <= 0 {
		limit = DefaultTaskLimit
	}

	tasks := make([]map[string]any, 0)

	if node != "" {
		data, err := m.api.Get(ctx, fmt.Sprintf("/nodes/%s/tasks", node), taskQuery(limit))
		if err != nil {
			return nil, err
		}
		for _, task := range toList(data) {
			tasks = append(tasks, map[string]any{
				"upid":      task["upid"],
				"node":      task["node"],
				"pid":       task["pid"],
				"pstart":    task["pstart"],
				"type":      task["type"],
				"status":    fieldOr(task, "status", "running"),
				"user":      task["user"],
				"starttime": fieldOr(task, "starttime", 0),
				"endtime":   fieldOr(task, "endtime", 0),
			})
		}
	} else {
		names, err := m.nodeNames(ctx)
		if err != nil {
			return nil, err
		}
		nodeLimit := limit
		if len(names) > 0 {
			nodeLimit = limit / len(names)
		}
		for _, name := range names {
			data, err := m.api.Get(ctx, fmt.Sprintf("/nodes/%s/tasks", name), taskQuery(nodeLimit))
			if err != nil {
				m.warnSkip("could not list tasks on node", name, err)
				continue
			}
			for _, task := range toList(data) {
				tasks = append(tasks, map[string]any{
					"upid":      task["upid"],
					"node":      task["node"],
					"pid":       task["pid"],
					"type":      task["type"],
					"status":    fieldOr(task, "status", "running"),
					"user":      task["user"],
					"starttime": fieldOr(task, "starttime", 0),
					"endtime":   fieldOr(task, "endtime", 0),
				})
			}
		}
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		return numField(tasks[i], "starttime", 0) > numField(tasks[j], "starttime", 0)
	})
	if len(tasks) > limit {
		tasks = tasks[:limit]
	}
	return map[string]any{"tasks": tasks, "count": len(tasks)}, nil
}

func taskQuery(limit int) url.Values {
	return url.Values{"limit": {strconv.Itoa(limit)}}
}
