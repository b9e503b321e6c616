package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedMessage reports a server message whose JSON did not decode or
// that carried neither a player list nor a game-over flag. Callers drop the
// message; the server is trusted but not infallible.
var ErrMalformedMessage = errors.New("malformed server message")

// PlayerSnapshot is one player's authoritative state for one tick, as pushed
// by the server. Coordinates are arena-normalized to [0,1].
type PlayerSnapshot struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Size      float64 `json:"size"`
	Ddx       float64 `json:"ddx"`
	Ddy       float64 `json:"ddy"`
	Alive     bool    `json:"alive"`
	IsMe      bool    `json:"is_me"`
	Fake      bool    `json:"fake"` // decoy/bot marker
	Name      string  `json:"name"`
	Score     float64 `json:"score"`
	BestScore float64 `json:"best_score"`
}

// Command is an outbound client→server message. Each implementation
// marshals to its own wire envelope, so a Command can be handed directly to
// wsjson.Write and goes out as one discrete text frame.
type Command interface {
	isCommand()
}

// Register announces the player's identity. Sent exactly once per
// connection, immediately on open.
type Register struct {
	ID   string
	Name string
}

// Input carries one clamped acceleration command.
type Input struct {
	Ddx float64
	Ddy float64
}

// Respawn asks the server to put the player back into play after game over.
type Respawn struct{}

func (Register) isCommand() {}
func (Input) isCommand()    {}
func (Respawn) isCommand()  {}

func (r Register) MarshalJSON() ([]byte, error) {
	type payload struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	type envelope struct {
		Register payload `json:"register"`
	}
	return json.Marshal(struct {
		Command envelope `json:"command"`
	}{Command: envelope{Register: payload{ID: r.ID, Name: r.Name}}})
}

func (i Input) MarshalJSON() ([]byte, error) {
	type payload struct {
		Ddx float64 `json:"ddx"`
		Ddy float64 `json:"ddy"`
	}
	return json.Marshal(struct {
		Input payload `json:"input"`
	}{Input: payload{Ddx: i.Ddx, Ddy: i.Ddy}})
}

func (Respawn) MarshalJSON() ([]byte, error) {
	type envelope struct {
		Respawn bool `json:"respawn"`
	}
	return json.Marshal(struct {
		Command envelope `json:"command"`
	}{Command: envelope{Respawn: true}})
}

// ServerMessage is the decoded form of one inbound frame: either a full
// player snapshot list or a game-over signal, never both.
type ServerMessage struct {
	Players  []PlayerSnapshot
	GameOver bool
}

// DecodeServerMessage parses one inbound text frame. Unknown or shapeless
// payloads fail with ErrMalformedMessage.
func DecodeServerMessage(data []byte) (ServerMessage, error) {
	var raw struct {
		Players  *[]PlayerSnapshot `json:"players"`
		GameOver bool              `json:"game_over"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return ServerMessage{}, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}
	if raw.GameOver {
		return ServerMessage{GameOver: true}, nil
	}
	if raw.Players == nil {
		return ServerMessage{}, fmt.Errorf("%w: no players and no game_over", ErrMalformedMessage)
	}
	return ServerMessage{Players: *raw.Players}, nil
}
