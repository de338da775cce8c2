package domain

// ServicesDocument is the in-memory form of the dashboard's services file.
// The committed on-disk schema is a flat `containers` sequence; any other
// top-level keys an operator keeps in the same file ride along untouched.
type ServicesDocument struct {
	Containers []ServiceDescriptor `yaml:"containers"`
	Extra      map[string]any      `yaml:",inline"`
}

// HasEntry reports whether an entry with the given name is already present.
func (d *ServicesDocument) HasEntry(name string) bool {
	for _, c := range d.Containers {
		if c.Name == name {
			return true
		}
	}
	return false
}
