package livefeed

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"campushub/rdx"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

const writeWait = 10 * time.Second

// WebSocketHandler subscribes a dashboard to the feed for one event
// (?slug=...) or to everything when no slug is given. The feed is a
// convenience stream; it carries no more than the public listings do, so
// there is no gate here.
func WebSocketHandler(hub *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		room := r.URL.Query().Get("slug")
		if room == "" {
			room = AllRoom
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("livefeed upgrade:", err)
			return
		}

		client := &Client{
			Send: make(chan []byte, 64),
			Room: room,
		}
		hub.Register(client)

		go writePump(conn, client)
		go readPump(conn, client, hub)
	}
}

func writePump(conn *websocket.Conn, c *Client) {
	defer conn.Close()
	for data := range c.Send {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
	conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// readPump exists to notice disconnects; clients never send anything.
func readPump(conn *websocket.Conn, c *Client, hub *Hub) {
	defer func() {
		hub.Unregister(c)
		conn.Close()
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// StartSignupWorker pipes Redis sign-up notices into the hub. It returns
// immediately when Redis is not configured; in that case handlers
// broadcast into the hub directly and only cross-process fan-out is lost.
func StartSignupWorker(ctx context.Context, hub *Hub) {
	sub := rdx.SubscribeSignups(ctx)
	if sub == nil {
		return
	}
	go func() {
		defer sub.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-sub.Channel():
				if !ok {
					return
				}
				var notice rdx.SignupNotice
				if err := json.Unmarshal([]byte(msg.Payload), &notice); err != nil {
					log.Printf("livefeed: bad notice payload: %v", err)
					continue
				}
				hub.Broadcast(notice.Slug, []byte(msg.Payload))
			}
		}
	}()
}

// Notify publishes a notice through Redis when available, otherwise
// straight into the local hub.
func Notify(ctx context.Context, hub *Hub, notice rdx.SignupNotice) {
	if rdx.Conn != nil {
		rdx.PublishSignup(ctx, notice)
		return
	}
	data, err := json.Marshal(notice)
	if err != nil {
		return
	}
	hub.Broadcast(notice.Slug, data)
}
