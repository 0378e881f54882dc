package machine

// Reflector is a fixed involution with no fixed points. It is stateless and
// shared between machines.
type Reflector struct {
	table [letters]int
}

var reflectorB = newReflector(reflectorBWiring)

// ReflectorB returns the shared UKW-B reflector.
func ReflectorB() *Reflector { return reflectorB }

func newReflector(wiring string) *Reflector {
	r := &Reflector{}
	for i := 0; i < letters; i++ {
		r.table[i] = int(wiring[i] - 'A')
	}
	return r
}

// Reflect sends a contact back through the rotors.
func (r *Reflector) Reflect(c int) int { return r.table[c] }
