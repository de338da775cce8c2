// Package extract derives normalized service descriptors from raw container
// metadata. Everything in here is a pure function of its input.
package extract

import (
	"sort"
	"strings"

	"github.com/auto-homepage/docker-homepage-sync/internal/domain"
)

const groupLabelFragment = "homepage.group"

// Descriptor derives the dashboard entry for one running container.
func Descriptor(info domain.ContainerInfo, categories domain.CategoryMap) domain.ServiceDescriptor {
	image := stripTag(info.Image)
	return domain.ServiceDescriptor{
		Name:     info.Name,
		Image:    image,
		Category: category(info.Labels, image, categories),
		Port:     publishedPort(info.Ports),
	}
}

// stripTag removes the tag suffix from an image reference. A colon that is
// part of a registry host port (before the last path separator) is left alone.
func stripTag(ref string) string {
	colon := strings.LastIndex(ref, ":")
	if colon > strings.LastIndex(ref, "/") {
		return ref[:colon]
	}
	return ref
}

// category resolves the classification: a homepage.group label wins, then the
// static category map keyed on the lowercased image basename, then the
// default. Label keys are scanned in sorted order so that the result does not
// depend on map iteration order when several keys match.
func category(labels map[string]string, image string, categories domain.CategoryMap) string {
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if strings.Contains(strings.ToLower(k), groupLabelFragment) && labels[k] != "" {
			return strings.ToLower(labels[k])
		}
	}

	basename := image
	if idx := strings.LastIndex(basename, "/"); idx >= 0 {
		basename = basename[idx+1:]
	}
	if cat, ok := categories[strings.ToLower(basename)]; ok {
		return cat
	}
	return domain.DefaultCategory
}

// publishedPort picks the host port of the binding with the lowest
// container-side port number; ties between protocols break on protocol name.
// Containers publishing nothing get the sentinel value.
func publishedPort(bindings []domain.PortBinding) string {
	if len(bindings) == 0 {
		return domain.PortNone
	}
	sorted := make([]domain.PortBinding, len(bindings))
	copy(sorted, bindings)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].ContainerPort != sorted[j].ContainerPort {
			return sorted[i].ContainerPort < sorted[j].ContainerPort
		}
		return sorted[i].Proto < sorted[j].Proto
	})
	return sorted[0].HostPort
}
