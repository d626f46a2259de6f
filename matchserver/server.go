package matchserver

import (
	"fmt"
	"log"
	"sync"
	"time"

	notify "github.com/bitly/go-notify"
	"github.com/ttacon/chalk"

	"github.com/robomatch/robomatch/common/influxdb"
	"github.com/robomatch/robomatch/common/utils"
	"github.com/robomatch/robomatch/common/utils/rect"
	"github.com/robomatch/robomatch/common/utils/vector"
	"github.com/robomatch/robomatch/game/arena"
)

const debug = false

// Server drives the fixed-step match loop: one discrete tick at a time,
// every live robot acting exactly once per tick, every live bullet
// advancing exactly once. The match ends on a tick limit or when at most
// one team is left standing.
type Server struct {
	tickspersec int
	maxTicks    int

	stopticking chan struct{}
	stoponce    *sync.Once

	game *arena.Game

	currentturn      utils.Tickturn
	currentturnmutex *sync.Mutex

	metrics     *influxdb.Client
	tickCounter *influxdb.Counter

	spawned map[string]int // spawns consumed per team
}

func NewServer(game *arena.Game, tickspersec int, maxTicks int) *Server {
	metrics, err := influxdb.NewClient("matchserver")
	if err != nil {
		utils.WarnWith(err)
	}

	return &Server{
		tickspersec: tickspersec,
		maxTicks:    maxTicks,

		stopticking: make(chan struct{}),
		stoponce:    &sync.Once{},

		game: game,

		currentturnmutex: &sync.Mutex{},

		metrics:     metrics,
		tickCounter: influxdb.NewCounter(),

		spawned: make(map[string]int),
	}
}

func (server *Server) GetGame() *arena.Game {
	return server.game
}

func (server *Server) GetTicksPerSecond() int {
	return server.tickspersec
}

func (s *Server) SetTurn(turn utils.Tickturn) {
	s.currentturnmutex.Lock()
	s.currentturn = turn
	s.currentturnmutex.Unlock()
}

func (s *Server) GetTurn() utils.Tickturn {
	s.currentturnmutex.Lock()
	res := s.currentturn
	s.currentturnmutex.Unlock()
	return res
}

// RegisterRobot spawns a robot for the given team on its next free spawn
// pose, with the given decision function.
func (server *Server) RegisterRobot(teamName string, strategy arena.Strategy) {
	team := server.game.TeamByName(teamName)
	if team == nil {
		log.Panicln("Robot cannot spawn, unknown team " + teamName)
	}

	field := server.game.Field()

	index := 0
	for _, spawn := range field.Data.Spawns {
		if spawn.Team != teamName {
			continue
		}

		if index == server.spawned[teamName] {
			body := rect.MakeOrientedRect(
				vector.MakeVector2(spawn.Position.X, spawn.Position.Y),
				arena.RobotWidth,
				arena.RobotHeight,
				spawn.Angle,
			)

			server.game.NewEntityRobot(team, body, strategy)
			server.spawned[teamName]++
			return
		}

		index++
	}

	log.Panicln("Robot cannot spawn, no starting point left for team " + teamName)
}

// Start launches the tick loop and returns a channel closed by the match
// end notification.
func (server *Server) Start() chan interface{} {
	go server.loop()

	server.metrics.Loop(func() {
		server.metrics.WriteAppMetric("robomatch", map[string]interface{}{
			"ticks":        server.tickCounter.GetAndReset(),
			"robots-alive": server.game.CountAliveRobots(),
			"bullets":      server.game.CountLiveBullets(),
		})
	})

	block := make(chan interface{})
	notify.Start("app:stopticking", block)

	return block
}

func (server *Server) Stop() {
	server.stoponce.Do(func() {
		close(server.stopticking)
		notify.Post("app:stopticking", nil)
		server.metrics.TearDown()
	})
}

func (server *Server) loop() {
	tickduration := time.Duration((1000000000 / time.Duration(server.tickspersec)) * time.Nanosecond)
	ticker := time.NewTicker(tickduration)
	defer ticker.Stop()

	for {
		select {
		case <-server.stopticking:
			return
		case <-ticker.C:
			server.DoTick()
		}
	}
}

// DoTick advances the match one turn and publishes the frame.
func (server *Server) DoTick() {
	turn := server.GetTurn()
	server.SetTurn(turn.Next())

	dolog := (turn.GetSeq() % server.tickspersec) == 0

	if dolog {
		fmt.Print(chalk.Yellow)
		log.Println("######## Tick #####", turn, chalk.Reset)
	}

	server.game.Step(turn.GetSeq())
	server.tickCounter.Add(1)

	notify.Post("viz:message", string(server.game.VizFrameJSON()))

	if debug {
		log.Println("tick done", turn)
	}

	if server.maxTicks > 0 && turn.GetSeq()+1 >= server.maxTicks {
		fmt.Print(chalk.Cyan)
		log.Println("Max ticks reached, ending match", chalk.Reset)
		server.Stop()
		return
	}

	if server.game.AliveTeams() <= 1 {
		fmt.Print(chalk.Cyan)
		log.Println("At most one team left standing, ending match", chalk.Reset)
		server.Stop()
	}
}
