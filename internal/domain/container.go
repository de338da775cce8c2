package domain

// PortBinding is one published port of a running container.
type PortBinding struct {
	ContainerPort uint16
	Proto         string
	HostPort      string
}

// ContainerInfo is the raw metadata of one running container as reported by
// the runtime: everything the descriptor extractor needs, nothing more.
type ContainerInfo struct {
	Id     string
	Name   string
	Image  string // full image reference, tag included
	Labels map[string]string
	Ports  []PortBinding
}
