package core

// Cue is a notable outcome of a simulation step that the platform may turn
// into sound or log output. Games report cues, they never play them.
type Cue int

const (
	CueNone Cue = iota
	CuePickup
	CueShield
	CueShieldBreak
	CueHazardShot
	CueShot
	CueCrash
)

// String returns a short name for the cue.
func (c Cue) String() string {
	switch c {
	case CuePickup:
		return "pickup"
	case CueShield:
		return "shield"
	case CueShieldBreak:
		return "shield-break"
	case CueHazardShot:
		return "hazard-shot"
	case CueShot:
		return "shot"
	case CueCrash:
		return "crash"
	default:
		return "none"
	}
}
