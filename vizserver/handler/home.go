package handler

import (
	"encoding/json"
	"net/http"

	"github.com/robomatch/robomatch/common/utils"
)

type homeResponse struct {
	MatchId string `json:"matchid"`
	Stream  string `json:"stream"`
}

func Home(matchid string) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := json.Marshal(homeResponse{
			MatchId: matchid,
			Stream:  "/ws",
		})
		utils.Check(err, "Failed to marshal response")

		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	}
}
