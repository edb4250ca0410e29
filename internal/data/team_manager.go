// This file contains operations related to the team member list.
package data

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"prodreport/local-app/internal/event"
	"prodreport/local-app/internal/log"
	"prodreport/local-app/internal/storage"
)

// TeamManager handles all team-member-related operations.
type TeamManager struct {
	storage      *storage.Storage
	eventManager *event.EventManager
	logger       *log.Logger
}

// NewTeamManager creates a new TeamManager instance.
func NewTeamManager(store *storage.Storage, eventManager *event.EventManager, logger *log.Logger) *TeamManager {
	return &TeamManager{storage: store, eventManager: eventManager, logger: logger}
}

// TeamList returns the current team member list.
func (tm *TeamManager) TeamList() []string {
	return tm.storage.TeamGet()
}

// TeamAdd appends a new team member. Blank names and exact duplicates
// are rejected; nothing is persisted on failure.
func (tm *TeamManager) TeamAdd(name string) error {
	ctx := context.Background()
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("team member name cannot be empty")
	}

	members := tm.storage.TeamGet()
	if slices.Contains(members, name) {
		tm.logger.Warn(ctx, "Team member already exists", log.Fields{"name": name})
		return fmt.Errorf("team member '%s' already exists", name)
	}

	members = append(members, name)
	if err := tm.storage.TeamSave(members); err != nil {
		tm.logger.Error(ctx, "Failed to save team members", log.Fields{"error": err})
		return fmt.Errorf("failed to save team members: %w", err)
	}

	tm.eventManager.Publish(event.Event{Type: event.TeamChanged, Data: name})
	tm.logger.Info(ctx, "Team member added", log.Fields{"name": name})
	return nil
}

// TeamRemove deletes all exact-match occurrences of name (expected:
// exactly one) and returns how many were removed. Removing an absent
// name is a no-op.
func (tm *TeamManager) TeamRemove(name string) (int, error) {
	ctx := context.Background()

	members := tm.storage.TeamGet()
	kept := make([]string, 0, len(members))
	for _, member := range members {
		if member != name {
			kept = append(kept, member)
		}
	}

	removed := len(members) - len(kept)
	if removed == 0 {
		tm.logger.Debug(ctx, "Team member not found, nothing removed", log.Fields{"name": name})
		return 0, nil
	}

	if err := tm.storage.TeamSave(kept); err != nil {
		tm.logger.Error(ctx, "Failed to save team members", log.Fields{"error": err})
		return 0, fmt.Errorf("failed to save team members: %w", err)
	}

	tm.eventManager.Publish(event.Event{Type: event.TeamChanged, Data: name})
	tm.logger.Info(ctx, "Team member removed", log.Fields{"name": name, "removed": removed})
	return removed, nil
}
