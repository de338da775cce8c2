package extract

import (
	"testing"

	"github.com/auto-homepage/docker-homepage-sync/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestStripTag(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want string
	}{
		{"plain tag", "nginx:1.25", "nginx"},
		{"no tag", "nginx", "nginx"},
		{"repo path with tag", "linuxserver/radarr:latest", "linuxserver/radarr"},
		{"registry port no tag", "registry.local:5000/nginx", "registry.local:5000/nginx"},
		{"registry port with tag", "registry.local:5000/nginx:1.25", "registry.local:5000/nginx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripTag(tt.ref))
		})
	}
}

func TestDescriptorCategoryFromLabel(t *testing.T) {
	info := domain.ContainerInfo{
		Name:   "plex",
		Image:  "plex:latest",
		Labels: map[string]string{"homepage.group": "Media"},
	}
	// The label wins even though the category map would also match.
	sd := Descriptor(info, domain.DefaultCategories())
	assert.Equal(t, "media", sd.Category)
}

func TestDescriptorCategoryLabelKeySubstring(t *testing.T) {
	info := domain.ContainerInfo{
		Name:   "web",
		Image:  "nginx:1.25",
		Labels: map[string]string{"my.Homepage.Group.custom": "Tools"},
	}
	sd := Descriptor(info, nil)
	assert.Equal(t, "tools", sd.Category)
}

func TestDescriptorCategoryFromMap(t *testing.T) {
	info := domain.ContainerInfo{
		Name:  "grafana",
		Image: "grafana/grafana:10.2",
	}
	sd := Descriptor(info, domain.DefaultCategories())
	assert.Equal(t, "monitoring", sd.Category)
}

func TestDescriptorCategoryDefault(t *testing.T) {
	info := domain.ContainerInfo{
		Name:  "mystery",
		Image: "something-unknown:v2",
	}
	sd := Descriptor(info, domain.DefaultCategories())
	assert.Equal(t, "services", sd.Category)
}

func TestDescriptorPortLowestContainerPort(t *testing.T) {
	info := domain.ContainerInfo{
		Name:  "multi",
		Image: "multi:1",
		Ports: []domain.PortBinding{
			{ContainerPort: 9000, Proto: "tcp", HostPort: "19000"},
			{ContainerPort: 80, Proto: "tcp", HostPort: "8080"},
			{ContainerPort: 443, Proto: "tcp", HostPort: "8443"},
		},
	}
	sd := Descriptor(info, nil)
	assert.Equal(t, "8080", sd.Port)
}

func TestDescriptorPortProtocolTieBreak(t *testing.T) {
	info := domain.ContainerInfo{
		Name:  "dns",
		Image: "pihole:latest",
		Ports: []domain.PortBinding{
			{ContainerPort: 53, Proto: "udp", HostPort: "5353"},
			{ContainerPort: 53, Proto: "tcp", HostPort: "5053"},
		},
	}
	sd := Descriptor(info, nil)
	assert.Equal(t, "5053", sd.Port)
}

func TestDescriptorNoPublishedPorts(t *testing.T) {
	info := domain.ContainerInfo{
		Name:  "worker",
		Image: "worker:1",
	}
	sd := Descriptor(info, nil)
	assert.Equal(t, domain.PortNone, sd.Port)
}

func TestDescriptorFullDerivation(t *testing.T) {
	info := domain.ContainerInfo{
		Id:    "abc123",
		Name:  "web1",
		Image: "nginx:1.25",
		Ports: []domain.PortBinding{
			{ContainerPort: 80, Proto: "tcp", HostPort: "8080"},
		},
	}
	sd := Descriptor(info, domain.DefaultCategories())
	assert.Equal(t, domain.ServiceDescriptor{
		Name:     "web1",
		Image:    "nginx",
		Category: "services",
		Port:     "8080",
	}, sd)
}
