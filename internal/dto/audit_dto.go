package dto

import "github.com/google/uuid"

// PublishAuditMessage is the payload sent through the in-process audit
// pipeline; the consumer persists it as an audit log row.
type PublishAuditMessage struct {
	ActorId    *uuid.UUID             `json:"actor_id,omitempty"`
	Action     string                 `json:"action"`
	EntityType string                 `json:"entity_type"`
	EntityId   uuid.UUID              `json:"entity_id"`
	Details    map[string]interface{} `json:"details,omitempty"`
}
