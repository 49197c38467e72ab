package network

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/ratel-online/core/log"
	corejson "github.com/ratel-online/core/util/json"
	"github.com/ratel-online/uno/consts"
)

const kindInternal = "InternalError"

type errorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(corejson.Marshal(body)); err != nil {
		log.Error(err)
	}
}

// statusOf maps an engine error kind to its HTTP status.
func statusOf(err consts.Error) int {
	switch {
	case errors.Is(err, consts.ErrorsGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, consts.ErrorsInvalidStateTransition), errors.Is(err, consts.ErrorsNoCardsAvailable):
		return http.StatusConflict
	case errors.Is(err, consts.ErrorsCardNotPlayable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, consts.ErrorsInvalidArgument):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	var engineErr consts.Error
	if errors.As(err, &engineErr) {
		writeJSON(w, statusOf(engineErr), errorResponse{Error: errorBody{Kind: engineErr.Kind, Message: engineErr.Msg}})
		return
	}
	log.Error(err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: errorBody{Kind: kindInternal, Message: err.Error()}})
}

// decode reads a JSON request body. An empty body leaves v untouched.
func decode(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return nil
	}
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return consts.ErrorsInvalidArgument.Withf("read request body: %v", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := corejson.Unmarshal(data, v); err != nil {
		return consts.ErrorsInvalidArgument.Withf("malformed request body: %v", err)
	}
	return nil
}

func requirePlayer(player *int) (int, error) {
	if player == nil {
		return 0, consts.ErrorsInvalidArgument.Withf("player is required")
	}
	return *player, nil
}
