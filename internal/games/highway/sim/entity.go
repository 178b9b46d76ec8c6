package sim

// Kind is the closed set of world entity kinds.
type Kind uint8

const (
	KindHazard Kind = iota
	KindCollectible
	KindPowerUp
	KindProjectile
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindHazard:
		return "hazard"
	case KindCollectible:
		return "collectible"
	case KindPowerUp:
		return "power_up"
	case KindProjectile:
		return "projectile"
	}
	return "unknown"
}

// Variant picks the look of a hazard. Resolution never reads it.
type Variant uint8

const (
	VariantNone Variant = iota
	VariantCar
	VariantBarrier
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case VariantCar:
		return "car"
	case VariantBarrier:
		return "barrier"
	}
	return "none"
}

// Entity is anything on the track other than the player.
type Entity struct {
	Kind    Kind
	Variant Variant
	Lane    int
	Z       float64

	dead bool
}

// Registry is the ordered arena of live entities. Removal marks entries
// during a pass and Compact squeezes them out in place, keeping order.
type Registry struct {
	items []Entity
}

// NewRegistry creates an empty registry with room for capacity entities.
func NewRegistry(capacity int) *Registry {
	return &Registry{items: make([]Entity, 0, capacity)}
}

// Add appends an entity.
func (r *Registry) Add(e Entity) {
	e.dead = false
	r.items = append(r.items, e)
}

// Len returns the number of entities, including ones marked this pass.
func (r *Registry) Len() int {
	return len(r.items)
}

// At returns a pointer to the i-th entity.
func (r *Registry) At(i int) *Entity {
	return &r.items[i]
}

// Mark flags the i-th entity for removal by the next Compact.
func (r *Registry) Mark(i int) {
	r.items[i].dead = true
}

// Marked reports whether the i-th entity is flagged for removal.
func (r *Registry) Marked(i int) bool {
	return r.items[i].dead
}

// Compact removes marked entities without reallocating.
func (r *Registry) Compact() {
	live := r.items[:0]
	for _, e := range r.items {
		if !e.dead {
			live = append(live, e)
		}
	}
	clear(r.items[len(live):])
	r.items = live
}

// Clear removes every entity.
func (r *Registry) Clear() {
	clear(r.items)
	r.items = r.items[:0]
}

// Entities returns a copy of the live entities in order.
func (r *Registry) Entities() []Entity {
	out := make([]Entity, 0, len(r.items))
	for _, e := range r.items {
		if !e.dead {
			out = append(out, e)
		}
	}
	return out
}
