package domain

// CategoryMap maps a lowercased image basename to a dashboard category. It is
// a fallback only: a homepage.group label on the container always wins.
type CategoryMap map[string]string

// DefaultCategories covers the usual homelab suspects. Deployments override or
// extend it through configuration.
func DefaultCategories() CategoryMap {
	return CategoryMap{
		"plex":           "media",
		"jellyfin":       "media",
		"radarr":         "media",
		"sonarr":         "media",
		"grafana":        "monitoring",
		"prometheus":     "monitoring",
		"pihole":         "network",
		"home_assistant": "home-automation",
		"traefik":        "services",
		"portainer":      "services",
		"nginx":          "services",
	}
}

// Merged returns a copy of the map with overrides applied on top.
func (cm CategoryMap) Merged(overrides map[string]string) CategoryMap {
	out := make(CategoryMap, len(cm)+len(overrides))
	for k, v := range cm {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}
