// Package tracker projects local assessment state onto the external
// issue tracker. The tracker itself is a black-box CLI: this package
// only shells out to its four verbs (create, comment, update, console
// snapshot) and parses their given output formats.
package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"wai/internal/runner"
)

// Issue is one entity in the tracker's console snapshot.
type Issue struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Parent    string `json:"parent"`
	CreatedAt string `json:"created_at"`
}

type snapshot struct {
	Issues []Issue `json:"issues"`
}

// createdIDRE pulls the new entity id out of create's stdout.
var createdIDRE = regexp.MustCompile(`ID: ([\w-]+)`)

// Client wraps the tracker CLI. All invocations go through the
// injected CommandRunner so tests can run against a fake.
type Client struct {
	binary string
	run    runner.CommandRunner
	log    *zap.Logger
}

// NewClient builds a tracker client for the given binary name.
func NewClient(binary string, run runner.CommandRunner, log *zap.Logger) *Client {
	return &Client{binary: binary, run: run, log: log}
}

// Create makes a new tracker entity and returns its identifier,
// resolved to the full form when the snapshot allows it. The tracker
// echoes a short id on create; the full id is recovered by matching
// title and parent against a fresh snapshot.
func (c *Client) Create(ctx context.Context, title, issueType, parent string) (string, error) {
	args := []string{"create", title, "--type", issueType}
	if parent != "" {
		args = append(args, "--parent", parent)
	}
	out, err := c.run.Run(ctx, c.binary, args...)
	if err != nil {
		return "", fmt.Errorf("tracker create failed: %w", err)
	}
	m := createdIDRE.FindStringSubmatch(out)
	if m == nil {
		return "", fmt.Errorf("tracker create: no id in output %q", strings.TrimSpace(out))
	}
	return c.Resolve(ctx, m[1], title, parent, nil), nil
}

// Comment posts text as a comment on an entity.
func (c *Client) Comment(ctx context.Context, id, text string) error {
	if _, err := c.run.Run(ctx, c.binary, "comment", id, text); err != nil {
		return fmt.Errorf("tracker comment failed: %w", err)
	}
	return nil
}

// UpdateStatus transitions an entity. The tracker reports "no updates
// requested" when the entity is already in the desired state; that is
// a no-op, not an error.
func (c *Client) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := c.run.Run(ctx, c.binary, "update", id, "--status", status)
	if err != nil {
		if strings.Contains(err.Error(), "no updates requested") {
			return nil
		}
		return fmt.Errorf("tracker update failed: %w", err)
	}
	return nil
}

// Snapshot fetches the current listing of all tracker entities.
func (c *Client) Snapshot(ctx context.Context) ([]Issue, error) {
	out, err := c.run.Run(ctx, c.binary, "console", "snapshot")
	if err != nil {
		return nil, fmt.Errorf("tracker snapshot failed: %w", err)
	}
	var snap snapshot
	if err := json.Unmarshal([]byte(out), &snap); err != nil {
		return nil, fmt.Errorf("tracker snapshot unparseable: %w", err)
	}
	return snap.Issues, nil
}
