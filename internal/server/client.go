package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/reddwarf405/TommysAdventure/internal/actions"
	"github.com/reddwarf405/TommysAdventure/internal/domain"
	"github.com/reddwarf405/TommysAdventure/internal/engine"
	"github.com/reddwarf405/TommysAdventure/pkg/api"
	"github.com/reddwarf405/TommysAdventure/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между Websocket и GameService
type Client struct {
	Game    *engine.GameService
	Conn    *websocket.Conn
	Session *engine.Session
	Send    chan api.ServerResponse

	log *logrus.Entry
}

func NewClient(game *engine.GameService, conn *websocket.Conn, session *engine.Session) *Client {
	return &Client{
		Game:    game,
		Conn:    conn,
		Session: session,
		Send:    game.Hub.Register(session.ID),
		log: logger.Log.WithFields(logrus.Fields{
			"component": "ws_client",
			"session":   session.ID,
		}),
	}
}

// readPump читает команды от клиента
func (c *Client) readPump() {
	defer func() {
		// Закрытие сессии снимает подписку: writePump отправит close frame
		if err := c.Game.CloseSession(c.Session.ID); err != nil {
			c.log.WithError(err).Warn("failed to close session")
		}
		c.log.Info("Client disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			c.log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	// 1. Первый снимок: клиенту есть что нарисовать до первой команды
	c.Game.Publish(c.Session)
	c.log.Info("Client connected")

	// 2. ЦИКЛ ЧТЕНИЯ КОМАНД
	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.WithError(err).Error("WS Error")
			}
			return
		}

		cmd, err := api.ParseCommand(raw)
		if err != nil {
			c.log.WithError(err).Warn("Rejected command")
			continue
		}

		action := domain.ParseAction(cmd.Action)
		if action == domain.ActionUnknown {
			c.log.WithField("action", cmd.Action).Warn("Unknown action")
			continue
		}

		err = c.Game.Execute(c.Session.ID, domain.InternalCommand{
			Action:  action,
			Token:   c.Session.Player.ID,
			Payload: cmd.Payload,
		})
		if errors.Is(err, actions.ErrEscape) {
			c.log.Info("Player escaped")
			return
		}
		if err != nil {
			c.log.WithError(err).WithField("action", cmd.Action).Warn("Command failed")
		}
	}
}

// writePump отправляет данные клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				closeMsg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session closed")
				if err := c.Conn.WriteMessage(websocket.CloseMessage, closeMsg); err != nil {
					c.log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				c.log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
