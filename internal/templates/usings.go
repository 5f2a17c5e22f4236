package templates

import (
	"sort"
	"strings"
)

// UsingSet accumulates the import names a generated component depends on
// and emits the using-directive block. Names are deduplicated; a name with
// the "static " prefix emits as a static using. Emission order is plain
// usings sorted, then static usings sorted, so output is stable regardless
// of insertion order.
type UsingSet struct {
	names map[string]bool
}

// NewUsingSet creates an empty using set
func NewUsingSet() *UsingSet {
	return &UsingSet{
		names: make(map[string]bool),
	}
}

// Add adds one import name to the set. Blank names are ignored.
func (us *UsingSet) Add(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	us.names[name] = true
}

// AddAll adds every name in the slice
func (us *UsingSet) AddAll(names []string) {
	for _, name := range names {
		us.Add(name)
	}
}

// Size returns the number of distinct names
func (us *UsingSet) Size() int {
	return len(us.names)
}

// Names returns the distinct names in emission order
func (us *UsingSet) Names() []string {
	var plain, static []string
	for name := range us.names {
		if strings.HasPrefix(name, "static ") {
			static = append(static, name)
		} else {
			plain = append(plain, name)
		}
	}
	sort.Strings(plain)
	sort.Strings(static)
	return append(plain, static...)
}

// GenerateUsings emits the using-directive block, one directive per line
// with the given indent. An empty set emits nothing.
func (us *UsingSet) GenerateUsings(indent string) string {
	names := us.Names()
	if len(names) == 0 {
		return ""
	}

	var builder strings.Builder
	for _, name := range names {
		builder.WriteString(indent)
		builder.WriteString("using ")
		builder.WriteString(name)
		builder.WriteString(";\n")
	}
	return builder.String()
}
