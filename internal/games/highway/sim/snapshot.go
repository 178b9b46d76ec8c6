package sim

// Snapshot is a read-only copy of the state for renderers and hosts.
type Snapshot struct {
	Mode Mode

	PlayerX    float64
	PlayerZ    float64
	Lane       int
	Lanes      int
	LaneOffset float64
	Speed      float64
	Boosting   bool

	// Entities holds hazards, collectibles and power-ups; Projectiles the
	// auto-fire shots. Both keep registry order.
	Entities    []Entity
	Projectiles []Entity

	Shield         float64 // Seconds of shield left
	CrashIntensity float64 // Crash flash remaining/duration in [0, 1]

	Score     int
	Distance  int
	Collected int

	Cheat         bool
	AutoFire      bool
	Elapsed       float64
	SpawnInterval float64
}

// Snapshot returns the current state.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Mode:           s.mode,
		PlayerX:        s.player.LateralX,
		PlayerZ:        s.player.Z,
		Lane:           s.player.TargetLane,
		Lanes:          s.cfg.Track.Lanes,
		LaneOffset:     s.cfg.Track.LaneOffset,
		Speed:          s.player.Speed,
		Boosting:       s.player.Boosting,
		Shield:         s.shield.Remaining,
		CrashIntensity: s.flash.Fraction(),
		Score:          s.score.Total,
		Distance:       s.score.Distance,
		Collected:      s.score.Collected,
		Cheat:          s.cheat,
		AutoFire:       s.autoFire,
		Elapsed:        s.elapsed,
		SpawnInterval:  s.spawner.Interval(),
	}

	for _, e := range s.reg.Entities() {
		switch e.Kind {
		case KindProjectile:
			snap.Projectiles = append(snap.Projectiles, e)
		case KindHazard, KindCollectible, KindPowerUp:
			snap.Entities = append(snap.Entities, e)
		}
	}
	return snap
}

// LaneX returns the lateral center of lane i.
func (sn Snapshot) LaneX(i int) float64 {
	mid := float64(sn.Lanes-1) / 2
	return (mid - float64(i)) * sn.LaneOffset
}
