package dendrite

// Mode selects how much of a component the engine emits.
type Mode int

const (
	// ModeFull emits the component with its render method embedding the
	// rendered document body.
	ModeFull Mode = iota

	// ModeDeclarationOnly emits the class declaration and attributes with
	// an empty body. The markup renderer is never invoked.
	ModeDeclarationOnly
)

// String returns the mode label
func (m Mode) String() string {
	switch m {
	case ModeDeclarationOnly:
		return "declaration"
	default:
		return "full"
	}
}
