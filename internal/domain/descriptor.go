package domain

import "fmt"

// PortNone is the sentinel port value for containers publishing no ports.
const PortNone = "N/A"

// DefaultCategory is the classification used when neither a label nor the
// category map yields one.
const DefaultCategory = "services"

// ServiceDescriptor is the normalized record derived from one running
// container. Name is the unique key within a services document.
type ServiceDescriptor struct {
	Name     string `yaml:"name"`
	Image    string `yaml:"image"`
	Category string `yaml:"category"`
	Port     string `yaml:"port"`
}

func (sd ServiceDescriptor) Render() string {
	return fmt.Sprintf("%s (image=%s, category=%s, port=%s)", sd.Name, sd.Image, sd.Category, sd.Port)
}
