package domain

import "time"

type EventType string

const (
	EventTypeContainerStarted   EventType = "start"
	EventTypeContainerDied      EventType = "die"
	EventTypeContainerDestroyed EventType = "destroy"
)

func (et EventType) IsValid() bool {
	switch et {
	case EventTypeContainerStarted,
		EventTypeContainerDied,
		EventTypeContainerDestroyed:
		return true
	}
	return false
}

// ContainerEvent is one lifecycle transition reported by the container runtime.
type ContainerEvent struct {
	ContainerId   string
	ContainerName string
	Occurred      time.Time
	EventType     EventType
}
