package core

import (
	"testing"

	"github.com/auto-homepage/docker-homepage-sync/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestMergeDescriptorsAppendsNewEntries(t *testing.T) {
	doc := &domain.ServicesDocument{
		Containers: []domain.ServiceDescriptor{
			{Name: "existing_service", Image: "existing_image", Category: "existing_category", Port: "9090"},
		},
	}
	added := MergeDescriptors(doc, []domain.ServiceDescriptor{
		{Name: "new_container", Image: "new_image", Category: "new_category", Port: "7070"},
	})

	assert.Len(t, added, 1)
	assert.Len(t, doc.Containers, 2)
	assert.Equal(t, "existing_service", doc.Containers[0].Name)
	assert.Equal(t, "new_container", doc.Containers[1].Name)
}

func TestMergeDescriptorsSkipsExistingByName(t *testing.T) {
	doc := &domain.ServicesDocument{
		Containers: []domain.ServiceDescriptor{
			{Name: "web1", Image: "nginx", Category: "services", Port: "8080"},
		},
	}
	// Same name with different fields: the existing entry stays untouched.
	added := MergeDescriptors(doc, []domain.ServiceDescriptor{
		{Name: "web1", Image: "caddy", Category: "proxy", Port: "9999"},
	})

	assert.Empty(t, added)
	assert.Len(t, doc.Containers, 1)
	assert.Equal(t, "nginx", doc.Containers[0].Image)
}

func TestMergeDescriptorsNeverDuplicatesWithinOneCall(t *testing.T) {
	doc := &domain.ServicesDocument{}
	added := MergeDescriptors(doc, []domain.ServiceDescriptor{
		{Name: "A", Image: "img1", Category: "services", Port: "1"},
		{Name: "A", Image: "img2", Category: "services", Port: "2"},
	})

	assert.Len(t, added, 1)
	assert.Len(t, doc.Containers, 1)
	assert.Equal(t, "img1", doc.Containers[0].Image)
}

func TestMergeDescriptorsIdempotent(t *testing.T) {
	descriptors := []domain.ServiceDescriptor{
		{Name: "plex", Image: "plex", Category: "media", Port: "32400"},
		{Name: "grafana", Image: "grafana", Category: "monitoring", Port: "3000"},
	}

	doc := &domain.ServicesDocument{}
	MergeDescriptors(doc, descriptors)
	once := append([]domain.ServiceDescriptor(nil), doc.Containers...)

	added := MergeDescriptors(doc, descriptors)
	assert.Empty(t, added)
	assert.Equal(t, once, doc.Containers)
}
