package entities

// PersonaID identifies a design-specialist persona. The set is closed and
// defined at process start; lookups are case-insensitive at the engine boundary.
type PersonaID string

const (
	PersonaArjun  PersonaID = "arjun"
	PersonaKavya  PersonaID = "kavya"
	PersonaMeera  PersonaID = "meera"
	PersonaVikram PersonaID = "vikram"
)

// Persona is a named design specialist archetype. Each persona biases pricing
// through a fixed multiplier and supplies the expertise blurb used to seed the
// assistant's system prompt.
type Persona struct {
	ID         PersonaID `json:"id"`
	Name       string    `json:"name"`
	Expertise  string    `json:"expertise"`
	Multiplier float64   `json:"multiplier"`
}
