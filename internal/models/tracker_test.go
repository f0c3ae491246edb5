package models

import (
	"testing"

	"github.com/bodhi-os/bodhi/internal/constants"
)

func TestHabitGetSetCoversEveryKey(t *testing.T) {
	for _, key := range constants.HabitKeys {
		var tr DailyTracker
		if tr.Habit(key) {
			t.Errorf("habit %q true on zero tracker", key)
		}
		if !tr.SetHabit(key, true) {
			t.Fatalf("SetHabit rejected known key %q", key)
		}
		if !tr.Habit(key) {
			t.Errorf("habit %q not set", key)
		}

		// Only the one flag should have changed.
		count := 0
		for _, other := range constants.HabitKeys {
			if tr.Habit(other) {
				count++
			}
		}
		if count != 1 {
			t.Errorf("setting %q toggled %d flags, want 1", key, count)
		}
	}
}

func TestSetHabitRejectsUnknownKey(t *testing.T) {
	var tr DailyTracker
	if tr.SetHabit("meditation", true) {
		t.Error("SetHabit accepted an unknown key")
	}
}
