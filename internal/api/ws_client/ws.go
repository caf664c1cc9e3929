package main

import (
	"flag"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Dev client that prints account updates pushed over /api/ws.
func main() {
	addr := flag.String("addr", "ws://localhost:8080/api/ws", "websocket endpoint")
	initData := flag.String("init-data", `user=%7B%22id%22%3A1000001%2C%22first_name%22%3A%22Demo%22%2C%22username%22%3A%22demo%22%7D&auth_date=1700000000`, "telegram init data")
	interval := flag.Duration("ping", 15*time.Second, "application ping interval")
	flag.Parse()

	u, err := url.Parse(*addr)
	if err != nil {
		log.Fatal("parse addr:", err)
	}

	header := http.Header{}
	header.Add("Authorization", "Telegram "+*initData)

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), header)
	if err != nil {
		log.Fatal("dial:", err)
	}
	defer conn.Close()

	messageQueue := make(chan Message)

	go func() {
		defer close(messageQueue)
		for {
			_, p, err := conn.ReadMessage()
			if err != nil {
				log.Println("read error:", err)
				return
			}

			var msg Message
			if err := json.Unmarshal(p, &msg); err != nil {
				log.Println("json unmarshal error:", err)
				continue
			}
			messageQueue <- msg
		}
	}()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-messageQueue:
			if !ok {
				return
			}
			log.Printf("Received %s:\n%s\n", msg.Type, msg.Payload)

		case <-ticker.C:
			ping, _ := json.Marshal(Message{Type: "ping"})
			if err := conn.WriteMessage(websocket.TextMessage, ping); err != nil {
				log.Println("write error:", err)
				return
			}

		case <-interrupt:
			_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}
