package docker

import (
	"strconv"
	"strings"
	"time"

	"github.com/auto-homepage/docker-homepage-sync/internal/domain"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/events"
)

func fromContainerSummary(c container.Summary) domain.ContainerInfo {
	name := ""
	if len(c.Names) > 0 {
		name = strings.TrimPrefix(c.Names[0], "/")
	}

	var bindings []domain.PortBinding
	for _, p := range c.Ports {
		// PublicPort zero means the port is exposed but not published.
		if p.PublicPort == 0 {
			continue
		}
		bindings = append(bindings, domain.PortBinding{
			ContainerPort: p.PrivatePort,
			Proto:         p.Type,
			HostPort:      strconv.Itoa(int(p.PublicPort)),
		})
	}

	return domain.ContainerInfo{
		Id:     c.ID,
		Name:   name,
		Image:  c.Image,
		Labels: c.Labels,
		Ports:  bindings,
	}
}

func fromEventsMessage(msg events.Message) (domain.ContainerEvent, error) {
	ev := domain.ContainerEvent{
		ContainerId:   msg.Actor.ID,
		ContainerName: msg.Actor.Attributes["name"],
		Occurred:      time.Unix(0, msg.TimeNano),
		EventType:     domain.EventType(msg.Action),
	}
	if !ev.EventType.IsValid() {
		return domain.ContainerEvent{}, NewUnsupportedEventTypeError(ev.EventType)
	}
	return ev, nil
}
