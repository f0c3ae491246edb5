package constants

const (
	AppName = "bodhi"

	// DateFormat is the canonical calendar-day format (local timezone).
	DateFormat = "2006-01-02"

	// SessionCookie is the name of the cookie carrying the session token.
	SessionCookie = "bodhi_session"

	// SessionTTLHours is how long a session token stays valid.
	SessionTTLHours = 24 * 7

	// BcryptCost matches the cost the registration flow always used.
	BcryptCost = 10

	DefaultKeyringUser = "default"

	// Keyring entry names.
	KeyringSessionSecret = "session-secret"
	KeyringDatabaseURL   = "database-url"
)

// HabitsPerDay is the score denominator for daily and weekly habit
// scores. The tracker stores seven flags but the score has always been
// computed over six, leaving out the wake-5:30 flag. Whether wake-5:30
// should count toward the score is an open product question; until that
// is settled every score computation must consume this constant.
const HabitsPerDay = 6

// HabitKey identifies one of the tracked daily habits.
type HabitKey string

const (
	HabitDeepWork      HabitKey = "deepWork"
	HabitGym           HabitKey = "gym"
	HabitContent       HabitKey = "content"
	HabitEcommerce     HabitKey = "ecommerce"
	HabitPrinter       HabitKey = "printer"
	HabitSleepBefore11 HabitKey = "sleepBefore11"
	HabitWake530       HabitKey = "wake530"
)

// HabitKeys lists every tracked habit in display order.
var HabitKeys = []HabitKey{
	HabitDeepWork,
	HabitGym,
	HabitContent,
	HabitEcommerce,
	HabitPrinter,
	HabitSleepBefore11,
	HabitWake530,
}

// HabitName maps a habit key to its display name, used as the streak
// record key.
func HabitName(key HabitKey) string {
	switch key {
	case HabitDeepWork:
		return "Deep Work"
	case HabitGym:
		return "Gym"
	case HabitContent:
		return "Content"
	case HabitEcommerce:
		return "E-commerce"
	case HabitPrinter:
		return "3D Printing"
	case HabitSleepBefore11:
		return "Sleep Before 11"
	case HabitWake530:
		return "Wake 5:30"
	}
	return string(key)
}

// ValidHabitKey reports whether key names a tracked habit.
func ValidHabitKey(key HabitKey) bool {
	for _, k := range HabitKeys {
		if k == key {
			return true
		}
	}
	return false
}
