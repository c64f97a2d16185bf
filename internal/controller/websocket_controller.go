package controller

import (
	"encoding/json"
	"log"

	"github.com/gofiber/websocket/v2"

	chesserrors "chessd/internal/errors"
	"chessd/internal/service"
	"chessd/internal/ws"
)

// WebSocketController serves the websocket game stream.
type WebSocketController struct {
	gameService *service.GameService
}

// NewWebSocketController creates a controller around the service.
func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{gameService: gameService}
}

// HandleConnection runs one connection: subscribe to the game's state
// pushes, then serve incoming messages until the peer hangs up.
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")

	if err := wsc.gameService.Subscribe(gameID, c); err != nil {
		wsc.sendError(c, err)
		c.Close()
		return
	}
	defer wsc.gameService.Unsubscribe(gameID, c)

	for {
		messageType, data, err := c.ReadMessage()
		if err != nil {
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(data, &msg); err != nil {
			wsc.sendError(c, chesserrors.Wrap(err, "malformed message"))
			continue
		}
		if err := wsc.handleMessage(gameID, msg); err != nil {
			wsc.sendError(c, err)
		}
	}
}

// handleMessage dispatches one parsed envelope. Applied moves reach this
// connection through the hub broadcast, so success sends nothing here.
func (wsc *WebSocketController) handleMessage(gameID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move ws.MovePayload
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return chesserrors.Wrap(err, "malformed move payload")
		}
		_, err := wsc.gameService.AttemptMove(gameID, service.MoveRequest{
			From:      move.From,
			To:        move.To,
			Promotion: move.Promotion,
		})
		return err

	default:
		return chesserrors.Wrapf(chesserrors.ErrUnknownMessage, "%q", string(msg.Type))
	}
}

// sendError pushes an error payload to the offending connection.
func (wsc *WebSocketController) sendError(c *websocket.Conn, err error) {
	kind, _ := rejectionKind(err)
	msg, merr := ws.NewMessage(ws.MessageTypeError, ws.ErrorPayload{
		Error: err.Error(),
		Kind:  kind,
	})
	if merr != nil {
		log.Printf("ws: marshal error payload: %v", merr)
		return
	}
	if werr := c.WriteJSON(msg); werr != nil {
		log.Printf("ws: write error payload: %v", werr)
	}
}
