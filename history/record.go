package history

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Record is one game action as stored in the action queue.
type Record struct {
	ID          uuid.UUID              `json:"id"`
	GameID      string                 `json:"game_id"`
	ActionIndex int64                  `json:"action_index"`
	ActionType  string                 `json:"action_type"`
	PlayerIndex *int                   `json:"player_index,omitempty"`
	Payload     map[string]interface{} `json:"action_payload"`
	Timestamp   int64                  `json:"timestamp"`
}

func NewRecord(gameID string, actionType string, payload map[string]interface{}) Record {
	return Record{
		ID:         uuid.New(),
		GameID:     gameID,
		ActionType: actionType,
		Payload:    payload,
		Timestamp:  time.Now().UnixMilli(),
	}
}

// ForPlayer attributes the record to a seat.
func (r Record) ForPlayer(playerIndex int) Record {
	r.PlayerIndex = &playerIndex
	return r
}

type Publisher interface {
	Publish(ctx context.Context, record Record) error
}
