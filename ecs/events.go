package ecs

// EventType identifies what happened during a frame.
type EventType string

const (
	EventEnemyDestroyed    EventType = "enemy_destroyed"
	EventEnemyEscaped      EventType = "enemy_escaped"
	EventPlayerHit         EventType = "player_hit"
	EventPlayerDestroyed   EventType = "player_destroyed"
	EventProjectileExpired EventType = "projectile_expired"
)

// Event is reported to the caller at the end of a frame. Data holds the
// payload struct matching Type.
type Event struct {
	Type EventType
	Data any
}

type EnemyDestroyed struct {
	Entity  Entity
	Species string
	Points  int
	X, Y    float64
	// Rammed is set when the enemy died colliding with the player.
	Rammed bool
}

type EnemyEscaped struct {
	Entity  Entity
	Species string
}

type PlayerHit struct {
	Damage int
	Health int
}

type PlayerDestroyed struct {
	X, Y float64
}

// RemovalReason says why a projectile left the registry.
type RemovalReason string

const (
	RemovedSpent     RemovalReason = "spent"
	RemovedOffScreen RemovalReason = "offscreen"
	RemovedExpired   RemovalReason = "expired"
)

type ProjectileExpired struct {
	Type   string
	Reason RemovalReason
}

// EventQueue is a FIFO of frame events.
type EventQueue struct {
	items []Event
}

func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
