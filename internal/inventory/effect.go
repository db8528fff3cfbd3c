package inventory

// Effect is the gameplay consequence of using one unit of a resource.
type Effect int

const (
	EffectNone      Effect = iota
	EffectExtraLife        // one spare ship becomes a life
	EffectBomb             // all on-screen hazards are destroyed
	EffectShield           // temporary invulnerability
)

// String returns the effect name.
func (e Effect) String() string {
	switch e {
	case EffectExtraLife:
		return "extra-life"
	case EffectBomb:
		return "bomb"
	case EffectShield:
		return "shield"
	default:
		return "none"
	}
}

// ApplyUse maps a resource kind to its effect.
func ApplyUse(k Kind) Effect {
	switch k {
	case Ships:
		return EffectExtraLife
	case Tokens:
		return EffectBomb
	case Pills:
		return EffectShield
	default:
		return EffectNone
	}
}
