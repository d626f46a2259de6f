package handler

import (
	"log"
	"net/http"

	notify "github.com/bitly/go-notify"
	"github.com/gorilla/websocket"

	"github.com/robomatch/robomatch/common/utils"
)

type wsincomingmessage struct {
	messageType int
	p           []byte
	err         error
}

func Websocket() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {

		upgrader := websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		}

		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Print("upgrade:", err)
			return
		}

		defer c.Close()

		clientclosedsocket := make(chan bool)
		c.SetCloseHandler(func(code int, text string) error {
			clientclosedsocket <- true
			return nil
		})

		// Mandatory to notice when the websocket is closed client side
		incomingmsg := make(chan wsincomingmessage)
		go func(client *websocket.Conn, ch chan wsincomingmessage) {
			messageType, p, err := client.ReadMessage()
			ch <- wsincomingmessage{messageType, p, err}
		}(c, incomingmsg)

		vizmsgchan := make(chan interface{})
		notify.Start("viz:message", vizmsgchan)
		defer notify.Stop("viz:message", vizmsgchan)

		for {
			select {
			case <-clientclosedsocket:
				{
					log.Println("<-clientclosedsocket")
					return
				}
			case <-incomingmsg:
				{
					// consumed and ignored; watchers only listen
				}
			case vizmsg := <-vizmsgchan:
				{
					vizmsgString, ok := vizmsg.(string)
					utils.Assert(ok, "Failed to cast vizmessage into string")

					if err := c.WriteMessage(websocket.TextMessage, []byte(vizmsgString)); err != nil {
						log.Println("write:", err)
						return
					}
				}
			}
		}
	}
}
