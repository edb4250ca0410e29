package storage

import "prodreport/local-app/internal/model"

// TeamGet returns the persisted team member list, falling back to the
// built-in defaults on absence or corruption.
func (s *Storage) TeamGet() []string {
	var members []string
	if !s.readJSON(keyTeamMembers, &members) {
		return model.DefaultTeamMembers()
	}
	return members
}

// TeamSave persists the full team member list.
func (s *Storage) TeamSave(members []string) error {
	return s.writeJSON(keyTeamMembers, members)
}
