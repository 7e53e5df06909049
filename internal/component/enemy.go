// internal/component/enemy.go
package component

// Enemy представляет вражескую сущность.
type Enemy struct {
	Combatant
}

// Ghost is a captured enemy fighting for the player. It drains energy for
// as long as it is on the field.
type Ghost struct {
	Combatant
	EnergyDrain float64 // per second
}

// Active reports whether the ghost still takes part in combat.
func (g *Ghost) Active() bool {
	return !g.Anim.Despawning
}
