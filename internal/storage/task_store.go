package storage

import "prodreport/local-app/internal/model"

// TaskGet returns the persisted task catalog, falling back to the
// built-in defaults on absence or corruption.
func (s *Storage) TaskGet() []string {
	var tasks []string
	if !s.readJSON(keyTasks, &tasks) {
		return model.DefaultTasks()
	}
	return tasks
}

// TaskSave persists the full task catalog.
func (s *Storage) TaskSave(tasks []string) error {
	return s.writeJSON(keyTasks, tasks)
}
