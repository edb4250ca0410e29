package storage

import "prodreport/local-app/internal/model"

// StandardTimeGet returns the persisted standard-time table, falling
// back to the built-in defaults on absence or corruption.
func (s *Storage) StandardTimeGet() map[string]float64 {
	var times map[string]float64
	if !s.readJSON(keyStandardTimes, &times) {
		return model.DefaultStandardTimes()
	}
	if times == nil {
		times = make(map[string]float64)
	}
	return times
}

// StandardTimeSave persists the full standard-time table.
func (s *Storage) StandardTimeSave(times map[string]float64) error {
	return s.writeJSON(keyStandardTimes, times)
}
