package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	uuid "github.com/satori/go.uuid"

	"github.com/robomatch/robomatch/common/healthcheck"
	"github.com/robomatch/robomatch/common/types/fieldcontainer"
	"github.com/robomatch/robomatch/common/utils"
	"github.com/robomatch/robomatch/game/arena"
	"github.com/robomatch/robomatch/matchserver"
	"github.com/robomatch/robomatch/vizserver"
)

func main() {
	rand.Seed(time.Now().UnixNano())

	fieldpath := flag.String("field", "", "Path to the field JSON; required")
	tickspersec := flag.Int("tps", 10, "Ticks per second")
	maxticks := flag.Int("max-ticks", 0, "End the match after this many ticks; 0 for no limit")
	vizaddr := flag.String("viz-addr", ":8080", "Address serving the visualization stream")
	healthport := flag.String("health-port", "", "Port serving the healthcheck; empty to disable")
	strategyname := flag.String("strategy", "aimfire", "Robot strategy: donothing, spinfire or aimfire")

	flag.Parse()

	utils.Assert((*fieldpath) != "", "field must be set")

	field, err := fieldcontainer.LoadFieldFromFile(*fieldpath)
	if err != nil {
		utils.FailWith(err)
	}

	matchid := uuid.NewV4().String()
	log.Println("Robomatch Server ID#" + matchid)

	game := arena.NewGame(field, matchid)
	server := matchserver.NewServer(game, *tickspersec, *maxticks)

	for _, spawn := range field.Data.Spawns {
		server.RegisterRobot(spawn.Team, makeStrategy(*strategyname))
	}

	if *healthport != "" {
		hc := healthcheck.NewHealthCheckServer(*healthport)
		hc.Register("game", func() (err error, ok bool) {
			return nil, game.CountAliveRobots() >= 0
		})
		go hc.Listen()
	}

	viz := vizserver.NewVizService(*vizaddr, matchid)
	go func() {
		err := viz.ListenAndServe()
		utils.Check(err, "Could not serve visualization on "+*vizaddr)
	}()

	block := server.Start()

	go func() {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		<-sigs
		server.Stop()
	}()

	<-block

	log.Println("Match over after", game.Ticknum(), "ticks;", game.CountAliveRobots(), "robots still standing")
}

func makeStrategy(name string) arena.Strategy {
	switch name {
	case "donothing":
		return arena.DoNothingStrategy{}
	case "spinfire":
		return arena.SpinAndFireStrategy{}
	case "aimfire":
		return arena.AimAndFireStrategy{}
	}

	utils.Assert(false, "unknown strategy "+name)
	return nil
}
