package controller

import (
	"encoding/json"
	"fmt"

	"github.com/benbeisheim/movegen-backend/internal/model"
	"github.com/benbeisheim/movegen-backend/internal/service"
	"github.com/benbeisheim/movegen-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
)

type WebSocketController struct {
	boardService *service.BoardService
}

func NewWebSocketController(boardService *service.BoardService) *WebSocketController {
	return &WebSocketController{
		boardService: boardService,
	}
}

type movesReply struct {
	From  model.Position `json:"from"`
	Moves []model.Move   `json:"moves"`
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	boardID, _ := c.Locals("wsBoardID").(string)
	clientID, _ := c.Locals("wsClientID").(string)

	session, err := wsc.boardService.Session(boardID)
	if err != nil {
		log.Warnf("websocket for board %s: %v", boardID, err)
		c.Close()
		return
	}
	if err := session.RegisterConnection(clientID, c); err != nil {
		log.Warnf("failed to register connection: %v", err)
		c.Close()
		return
	}
	defer session.UnregisterConnection(clientID, c)
	log.Debugf("client %s watching board %s (%d connections)", clientID, boardID, session.ConnectionCount())

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Debugf("read error: %v", err)
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			wsc.sendError(session, clientID, fmt.Errorf("parse message: %w", err))
			continue
		}

		reply, err := handleMessage(session, msg)
		if err != nil {
			wsc.sendError(session, clientID, err)
			continue
		}
		if reply != nil {
			if err := session.Send(clientID, reply.Type, reply.Payload); err != nil {
				log.Warnf("reply to %s: %v", clientID, err)
			}
		}
	}
}

// handleMessage applies msg to the session and returns the reply meant for
// the sender only. Mutations reach every client through the state broadcast.
func handleMessage(session *service.Session, msg ws.Message) (*ws.Message, error) {
	switch msg.Type {
	case ws.MessageTypeMoves:
		var pos model.Position
		if err := json.Unmarshal(msg.Payload, &pos); err != nil {
			return nil, err
		}
		moves, err := session.Moves(pos)
		if err != nil {
			return nil, err
		}
		reply, err := ws.NewMessage(ws.MessageTypeMoveList, movesReply{From: pos, Moves: moves})
		if err != nil {
			return nil, err
		}
		return &reply, nil

	case ws.MessageTypePlace:
		var sq model.Square
		if err := json.Unmarshal(msg.Payload, &sq); err != nil {
			return nil, err
		}
		return nil, session.Place(sq.Position, sq.Piece)

	case ws.MessageTypeClear:
		var pos model.Position
		if err := json.Unmarshal(msg.Payload, &pos); err != nil {
			return nil, err
		}
		return nil, session.Clear(pos)

	case ws.MessageTypeReset:
		session.Reset()
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

// Helper method to send error messages
func (wsc *WebSocketController) sendError(session *service.Session, clientID string, err error) {
	log.Debugf("websocket error for %s: %v", clientID, err)
	if sendErr := session.Send(clientID, ws.MessageTypeError, ws.ErrorPayload{Error: err.Error()}); sendErr != nil {
		log.Warnf("send error to %s: %v", clientID, sendErr)
	}
}
