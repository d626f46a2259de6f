package vizserver

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	apphandler "github.com/robomatch/robomatch/vizserver/handler"
)

// VizService streams match frames to websocket watchers. It never reaches
// into the game; frames arrive through the viz:message notification topic.
type VizService struct {
	addr    string
	matchid string
}

func NewVizService(addr string, matchid string) *VizService {
	return &VizService{
		addr:    addr,
		matchid: matchid,
	}
}

func (viz *VizService) ListenAndServe() error {

	logger := os.Stdout
	router := mux.NewRouter()

	router.Handle("/", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.Home(viz.matchid)),
	)).Methods("GET")

	router.Handle("/ws", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.Websocket()),
	)).Methods("GET")

	log.Println("VIZ Listening on " + viz.addr)

	return http.ListenAndServe(viz.addr, router)
}
