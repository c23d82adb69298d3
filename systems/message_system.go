package systems

import (
	"fmt"

	"ebiten-asteroids/components"
	"ebiten-asteroids/ecs"
)

// MessageLog stores game messages
type MessageLog struct {
	Messages    []ColoredMessage
	MaxMessages int
}

// NewMessageLog creates a new message log
func NewMessageLog() *MessageLog {
	return &MessageLog{
		Messages:    []ColoredMessage{},
		MaxMessages: 100, // Store the last 100 messages
	}
}

// Add adds a normal message to the log
func (ml *MessageLog) Add(message string) {
	ml.AddTyped(message, MessageTypeNormal)
}

// AddTyped adds a message of the given type to the log
func (ml *MessageLog) AddTyped(message string, t MessageType) {
	ml.Messages = append(ml.Messages, ColoredMessage{Text: message, Type: t})

	// Truncate if we have too many messages
	if len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
	}
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []ColoredMessage {
	if n > len(ml.Messages) {
		n = len(ml.Messages)
	}

	result := make([]ColoredMessage, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Messages[len(ml.Messages)-1-i]
	}

	return result
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.Messages = []ColoredMessage{}
}

// Attach subscribes the log to world events
func (ml *MessageLog) Attach(world *ecs.World) {
	world.Events().Subscribe(ecs.EventSpawn, func(ev ecs.Event) {
		spawn := ev.(ecs.SpawnEvent)
		if spawn.Tags.Has(components.TagPlayer) {
			ml.AddTyped(fmt.Sprintf("Player ship launched as entity %d", spawn.Entity), MessageTypeSpawn)
		}
	})
	world.Events().Subscribe(ecs.EventFire, func(ecs.Event) {
		ml.AddTyped("Fire!", MessageTypeWeapon)
	})
}
