package events

import (
	"encoding/json"
	"fmt"
	"time"

	"dub-server/internal/clients/kafka"

	"github.com/google/uuid"
)

// Event types published to the link-events topic
const (
	EventClickRecorded   = "click.recorded"
	EventPartnerBanned   = "partner.banned"
	EventPartnerUnbanned = "partner.unbanned"
)

// NewEvent builds an event whose data is the JSON form of payload
func NewEvent(eventType, workspaceID, key string, payload interface{}) (kafka.EventMessage, error) {
	data, err := toData(payload)
	if err != nil {
		return kafka.EventMessage{}, fmt.Errorf("failed to encode %s payload: %w", eventType, err)
	}
	return kafka.EventMessage{
		ID:          uuid.New().String(),
		Type:        eventType,
		WorkspaceID: workspaceID,
		Key:         key,
		Data:        data,
		Timestamp:   time.Now().UTC().Format(time.RFC3339Nano),
	}, nil
}

// DecodeData unmarshals event data into out
func DecodeData(event kafka.EventMessage, out interface{}) error {
	raw, err := json.Marshal(event.Data)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func toData(payload interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	data := make(map[string]interface{})
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// PartnerBannedData is the payload of partner.banned and partner.unbanned
type PartnerBannedData struct {
	ProgramID uuid.UUID `json:"program_id"`
	PartnerID uuid.UUID `json:"partner_id"`
	Reason    string    `json:"reason,omitempty"`
	LinkIDs   []string  `json:"link_ids"`
}
