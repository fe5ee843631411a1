package callbacks

import "github.com/wippyai/task-bridge/bridge"

// Handle identifies a registered callback. Handle 0 is reserved and always
// invalid.
type Handle uint32

// Func receives one completion notification.
type Func func(token bridge.Token, status bridge.Status)

// EventType identifies a table lifecycle event.
type EventType uint8

const (
	EventRegistered EventType = iota
	EventReleased
)

func (e EventType) String() string {
	switch e {
	case EventRegistered:
		return "registered"
	case EventReleased:
		return "released"
	default:
		return "unknown"
	}
}

// Event describes a handle being registered or released.
type Event struct {
	Handle Handle
	Type   EventType
}

// Observer receives table lifecycle events. Observers run synchronously
// under the table's observer lock and must not call Subscribe or
// Unsubscribe.
type Observer interface {
	OnCallbackEvent(Event)
}
