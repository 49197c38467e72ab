package history_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/ratel-online/uno/history"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	mu      sync.Mutex
	records []history.Record
}

func (p *fakePublisher) Publish(ctx context.Context, record history.Record) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.records = append(p.records, record)
	return nil
}

func (p *fakePublisher) Records() []history.Record {
	p.mu.Lock()
	defer p.mu.Unlock()
	records := make([]history.Record, len(p.records))
	copy(records, p.records)
	return records
}

func TestRecorder(t *testing.T) {
	publisher := &fakePublisher{}
	recorder := history.NewRecorder("game-1", publisher, time.Second)
	bus := event.NewBus()
	bus.AddListener(recorder)

	bus.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{Card: card.NewNumberCard(color.Red, 4)})
	bus.CardPlayed.Emit(event.CardPlayedPayload{PlayerIndex: 1, PlayerName: "Zoe", Card: card.NewWildCard()})
	bus.ColorPicked.Emit(event.ColorPickedPayload{PlayerIndex: 1, PlayerName: "Zoe", Color: color.Green})
	recorder.Record("game_deleted", map[string]interface{}{})

	require.Eventually(t, func() bool {
		return len(publisher.Records()) == 4
	}, time.Second, 10*time.Millisecond)

	records := publisher.Records()
	require.Equal(t, "first_card_played", records[0].ActionType)
	require.Nil(t, records[0].PlayerIndex)
	require.Equal(t, "card_played", records[1].ActionType)
	require.Equal(t, 1, *records[1].PlayerIndex)
	require.Equal(t, "color_picked", records[2].ActionType)
	require.Equal(t, color.Green, records[2].Payload["color"])
	require.Equal(t, "game_deleted", records[3].ActionType)
	for index, record := range records {
		require.Equal(t, "game-1", record.GameID)
		require.Equal(t, int64(index+1), record.ActionIndex)
	}
}

func TestRecorderPublishesInOrder(t *testing.T) {
	publisher := &fakePublisher{}
	recorder := history.NewRecorder("game-1", publisher, time.Second)

	const total = 2000
	for index := 0; index < total; index++ {
		recorder.Record("card_played", map[string]interface{}{"n": index})
	}
	recorder.Close()

	require.Eventually(t, func() bool {
		return len(publisher.Records()) == total
	}, 5*time.Second, 10*time.Millisecond)
	for index, record := range publisher.Records() {
		require.Equal(t, int64(index+1), record.ActionIndex)
		require.Equal(t, index, record.Payload["n"])
	}
}

func TestRecorderClose(t *testing.T) {
	publisher := &fakePublisher{}
	recorder := history.NewRecorder("game-1", publisher, time.Second)
	recorder.Record("game_deleted", map[string]interface{}{})
	recorder.Close()
	recorder.Close()
	recorder.Record("card_played", map[string]interface{}{})

	require.Eventually(t, func() bool {
		return len(publisher.Records()) == 1
	}, time.Second, 10*time.Millisecond)
	require.Never(t, func() bool {
		return len(publisher.Records()) > 1
	}, 100*time.Millisecond, 10*time.Millisecond)
}

func TestRecordJSON(t *testing.T) {
	record := history.NewRecord("game-1", "card_played", map[string]interface{}{"card": card.NewDrawTwoCard(color.Blue)}).ForPlayer(2)
	data, err := json.Marshal(record)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, "game-1", decoded["game_id"])
	require.Equal(t, float64(2), decoded["player_index"])
	require.Equal(t, map[string]interface{}{"card": map[string]interface{}{"color": "blue", "rank": "draw_two"}}, decoded["action_payload"])
	require.NotEmpty(t, decoded["id"])
}
