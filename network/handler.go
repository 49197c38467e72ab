package network

import (
	"net/http"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/service"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

type api struct {
	manager *service.Manager
}

type createGameRequest struct {
	NumPlayers int              `json:"num_players"`
	Seed       *int64           `json:"seed"`
	Strategy   string           `json:"strategy"`
	HouseRules *game.HouseRules `json:"house_rules"`
	Names      []string         `json:"names"`
}

type playerRequest struct {
	Player *int `json:"player"`
}

type playRequest struct {
	Player    *int `json:"player"`
	HandIndex *int `json:"hand_index"`
}

type drawRequest struct {
	Player *int `json:"player"`
	Count  *int `json:"count"`
}

type colorRequest struct {
	Player *int   `json:"player"`
	Color  string `json:"color"`
}

type playableRequest struct {
	Card         *card.Card   `json:"card"`
	TopCard      *card.Card   `json:"top_card"`
	CurrentColor *color.Color `json:"current_color"`
}

type createGameResponse struct {
	GameID string        `json:"game_id"`
	State  game.Snapshot `json:"state"`
}

type stateResponse struct {
	State game.Snapshot `json:"state"`
}

type turnResponse struct {
	State  game.Snapshot `json:"state"`
	Winner *int          `json:"winner,omitempty"`
	Scores map[int]int   `json:"scores,omitempty"`
}

type drawResponse struct {
	CardsDrawn []card.Card   `json:"cards_drawn"`
	State      game.Snapshot `json:"state"`
}

type scoreResponse struct {
	Scores map[int]int `json:"scores"`
}

type deleteResponse struct {
	OK bool `json:"ok"`
}

type playableResponse struct {
	Playable bool `json:"playable"`
}

func (a *api) createGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	gameID, state, err := a.manager.CreateGame(service.CreateOptions{
		Players:    req.NumPlayers,
		Seed:       req.Seed,
		Strategy:   req.Strategy,
		HouseRules: req.HouseRules,
		Names:      req.Names,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, createGameResponse{GameID: gameID, State: state})
}

func (a *api) getState(w http.ResponseWriter, r *http.Request) {
	state, err := a.manager.GetState(gameID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stateResponse{State: state})
}

func (a *api) deleteGame(w http.ResponseWriter, r *http.Request) {
	if err := a.manager.DeleteGame(gameID(r)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, deleteResponse{OK: true})
}

func (a *api) playTurn(w http.ResponseWriter, r *http.Request) {
	var req playRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	player, err := requirePlayer(req.Player)
	if err != nil {
		writeError(w, err)
		return
	}
	result, err := a.manager.PlayTurn(gameID(r), player, req.HandIndex)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, turnResponse{State: result.State, Winner: result.Winner, Scores: result.Scores})
}

func (a *api) drawCards(w http.ResponseWriter, r *http.Request) {
	var req drawRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	player, err := requirePlayer(req.Player)
	if err != nil {
		writeError(w, err)
		return
	}
	count := 1
	if req.Count != nil {
		count = *req.Count
	}
	result, err := a.manager.DrawCards(gameID(r), player, count)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, drawResponse{CardsDrawn: result.Cards, State: result.State})
}

func (a *api) drawForTurn(w http.ResponseWriter, r *http.Request) {
	var req playerRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	player, err := requirePlayer(req.Player)
	if err != nil {
		writeError(w, err)
		return
	}
	result, err := a.manager.DrawForTurn(gameID(r), player)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, drawResponse{CardsDrawn: result.Cards, State: result.State})
}

func (a *api) pass(w http.ResponseWriter, r *http.Request) {
	var req playerRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	player, err := requirePlayer(req.Player)
	if err != nil {
		writeError(w, err)
		return
	}
	state, err := a.manager.Pass(gameID(r), player)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stateResponse{State: state})
}

func (a *api) chooseColor(w http.ResponseWriter, r *http.Request) {
	var req colorRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	player, err := requirePlayer(req.Player)
	if err != nil {
		writeError(w, err)
		return
	}
	chosen, err := color.ByName(req.Color)
	if err != nil {
		writeError(w, consts.ErrorsInvalidArgument.Withf("%v", err))
		return
	}
	state, err := a.manager.ChooseColor(gameID(r), player, chosen)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stateResponse{State: state})
}

func (a *api) score(w http.ResponseWriter, r *http.Request) {
	scores, err := a.manager.CalculateScore(gameID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, scoreResponse{Scores: scores})
}

// playable answers whether card may go on top_card. Without current_color the
// top card's own color applies.
func (a *api) playable(w http.ResponseWriter, r *http.Request) {
	var req playableRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Card == nil || req.TopCard == nil {
		writeError(w, consts.ErrorsInvalidArgument.Withf("card and top_card are required"))
		return
	}
	currentColor := req.TopCard.Color
	if req.CurrentColor != nil {
		currentColor = *req.CurrentColor
	}
	writeJSON(w, http.StatusOK, playableResponse{Playable: game.Playable(*req.Card, *req.TopCard, currentColor)})
}
