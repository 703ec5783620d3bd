package service

import (
	"fmt"
	"sync"

	"github.com/benbeisheim/movegen-backend/internal/model"
	"github.com/benbeisheim/movegen-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
)

// Conn is the part of a websocket connection a session writes to.
type Conn interface {
	WriteJSON(v interface{}) error
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// The connections observing a specific board
type SessionConnections struct {
	connections map[string]Conn // clientID -> connection
	mu          sync.Mutex
}

// Session owns one board. Writers take the board lock; move generation runs
// on a copy so readers only hold the lock while copying. When both locks are
// needed, connections.mu is taken before mu.
type Session struct {
	ID          string
	mu          sync.RWMutex
	board       model.Board
	connections *SessionConnections
}

type BoardState struct {
	ID      string         `json:"id"`
	Squares []model.Square `json:"squares"`
}

func NewSession(id string, empty bool) *Session {
	s := &Session{
		ID:          id,
		connections: NewSessionConnections(),
	}
	if !empty {
		s.board.Reset()
	}
	return s
}

func NewSessionConnections() *SessionConnections {
	return &SessionConnections{
		connections: make(map[string]Conn),
	}
}

// Snapshot returns a copy of the board.
func (s *Session) Snapshot() model.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board
}

func (s *Session) State() BoardState {
	board := s.Snapshot()
	return BoardState{ID: s.ID, Squares: board.Pieces()}
}

func (s *Session) Reset() {
	s.mu.Lock()
	s.board.Reset()
	s.mu.Unlock()

	s.broadcastState()
}

func (s *Session) Place(pos model.Position, piece model.Piece) error {
	if !pos.OnBoard() {
		return fmt.Errorf("place at %v: %w", pos, ErrOffBoard)
	}
	if !piece.Type.Valid() || !piece.Color.Valid() {
		return fmt.Errorf("place %q %q: %w", piece.Color, piece.Type, ErrInvalidPiece)
	}

	s.mu.Lock()
	s.board.Place(pos, piece)
	s.mu.Unlock()

	s.broadcastState()
	return nil
}

func (s *Session) Clear(pos model.Position) error {
	if !pos.OnBoard() {
		return fmt.Errorf("clear %v: %w", pos, ErrOffBoard)
	}

	s.mu.Lock()
	s.board.Clear(pos)
	s.mu.Unlock()

	s.broadcastState()
	return nil
}

func (s *Session) PieceAt(pos model.Position) (model.Piece, bool, error) {
	if !pos.OnBoard() {
		return model.Piece{}, false, fmt.Errorf("lookup %v: %w", pos, ErrOffBoard)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	piece, ok := s.board.PieceAt(pos)
	return piece, ok, nil
}

// Moves returns the pseudo-legal moves of the piece at pos.
func (s *Session) Moves(pos model.Position) ([]model.Move, error) {
	if !pos.OnBoard() {
		return nil, fmt.Errorf("moves from %v: %w", pos, ErrOffBoard)
	}
	board := s.Snapshot()
	if _, ok := board.PieceAt(pos); !ok {
		return nil, fmt.Errorf("moves from %v: %w", pos, ErrEmptySquare)
	}
	return model.GenerateMoves(&board, pos), nil
}

func (s *Session) TeamMoves(color model.Color) ([]model.Move, error) {
	if !color.Valid() {
		return nil, fmt.Errorf("moves for %q: %w", color, ErrInvalidColor)
	}
	board := s.Snapshot()
	return model.GenerateTeamMoves(&board, color), nil
}

func (s *Session) RegisterConnection(clientID string, conn Conn) error {
	connID := fmt.Sprintf("%p", conn)
	log.Debugf("registering connection %s for client %s on board %s", connID, clientID, s.ID)

	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()

	if _, exists := s.connections.connections[clientID]; exists {
		// Keep the existing connection and reject the new one
		if err := conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(
				websocket.CloseNormalClosure,
				"Connection already exists",
			),
		); err != nil {
			log.Debugf("close frame to duplicate connection %s: %v", connID, err)
		}
		if err := conn.Close(); err != nil {
			log.Debugf("close duplicate connection %s: %v", connID, err)
		}
		return nil
	}
	s.connections.connections[clientID] = conn

	// Snapshot under the connections lock so no broadcast can overtake it.
	msg, err := ws.NewMessage(ws.MessageTypeBoardState, s.State())
	if err != nil {
		return err
	}
	if err := conn.WriteJSON(msg); err != nil {
		delete(s.connections.connections, clientID)
		return fmt.Errorf("send to %s: %w", clientID, err)
	}
	return nil
}

func (s *Session) UnregisterConnection(clientID string, conn Conn) {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()

	// Only unregister if this is still the current connection
	if current, exists := s.connections.connections[clientID]; exists && current == conn {
		log.Debugf("unregistering connection %p for client %s", conn, clientID)
		delete(s.connections.connections, clientID)
	}
}

func (s *Session) ConnectionCount() int {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()
	return len(s.connections.connections)
}

// Send writes one message to a single client. Writes are serialized through
// the connections lock since a websocket allows one writer at a time.
func (s *Session) Send(clientID string, msgType ws.MessageType, payload interface{}) error {
	msg, err := ws.NewMessage(msgType, payload)
	if err != nil {
		return err
	}

	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()

	conn, ok := s.connections.connections[clientID]
	if !ok {
		return nil
	}
	if err := conn.WriteJSON(msg); err != nil {
		delete(s.connections.connections, clientID)
		return fmt.Errorf("send to %s: %w", clientID, err)
	}
	return nil
}

// broadcastState sends the current board to every client. The snapshot is
// taken while holding the connections lock, so broadcasts go out in the
// order the board changed and the last one each client sees is current.
func (s *Session) broadcastState() {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()

	msg, err := ws.NewMessage(ws.MessageTypeBoardState, s.State())
	if err != nil {
		log.Errorf("marshal board state: %v", err)
		return
	}

	for clientID, conn := range s.connections.connections {
		if err := conn.WriteJSON(msg); err != nil {
			log.Warnf("failed to send state to client %s: %v", clientID, err)
			delete(s.connections.connections, clientID)
		}
	}
}
