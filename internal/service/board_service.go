package service

import (
	"fmt"

	"github.com/benbeisheim/movegen-backend/internal/model"
	"github.com/google/uuid"
)

type BoardService struct {
	boardManager *BoardManager
}

func NewBoardService(boardManager *BoardManager) *BoardService {
	return &BoardService{
		boardManager: boardManager,
	}
}

func (bs *BoardService) CreateBoard(empty bool) (string, error) {
	boardID := uuid.New().String()

	if _, err := bs.boardManager.CreateBoard(boardID, empty); err != nil {
		return "", fmt.Errorf("failed to create board: %w", err)
	}

	return boardID, nil
}

func (bs *BoardService) DeleteBoard(boardID string) error {
	return bs.boardManager.DeleteBoard(boardID)
}

func (bs *BoardService) Session(boardID string) (*Session, error) {
	return bs.boardManager.GetBoard(boardID)
}

func (bs *BoardService) GetBoardState(boardID string) (BoardState, error) {
	session, err := bs.boardManager.GetBoard(boardID)
	if err != nil {
		return BoardState{}, err
	}
	return session.State(), nil
}

func (bs *BoardService) BoardCount() int {
	return bs.boardManager.Count()
}

func (bs *BoardService) GetPiece(boardID string, pos model.Position) (model.Piece, bool, error) {
	session, err := bs.boardManager.GetBoard(boardID)
	if err != nil {
		return model.Piece{}, false, err
	}
	return session.PieceAt(pos)
}

func (bs *BoardService) ResetBoard(boardID string) error {
	session, err := bs.boardManager.GetBoard(boardID)
	if err != nil {
		return err
	}
	session.Reset()
	return nil
}

func (bs *BoardService) PlacePiece(boardID string, pos model.Position, piece model.Piece) error {
	session, err := bs.boardManager.GetBoard(boardID)
	if err != nil {
		return err
	}
	return session.Place(pos, piece)
}

func (bs *BoardService) ClearSquare(boardID string, pos model.Position) error {
	session, err := bs.boardManager.GetBoard(boardID)
	if err != nil {
		return err
	}
	return session.Clear(pos)
}

func (bs *BoardService) GetMoves(boardID string, pos model.Position) ([]model.Move, error) {
	session, err := bs.boardManager.GetBoard(boardID)
	if err != nil {
		return nil, err
	}
	return session.Moves(pos)
}

func (bs *BoardService) GetTeamMoves(boardID string, color model.Color) ([]model.Move, error) {
	session, err := bs.boardManager.GetBoard(boardID)
	if err != nil {
		return nil, err
	}
	return session.TeamMoves(color)
}

func (bs *BoardService) RegisterConnection(boardID string, clientID string, conn Conn) error {
	session, err := bs.boardManager.GetBoard(boardID)
	if err != nil {
		return err
	}
	return session.RegisterConnection(clientID, conn)
}

func (bs *BoardService) UnregisterConnection(boardID string, clientID string, conn Conn) {
	session, err := bs.boardManager.GetBoard(boardID)
	if err != nil {
		return
	}
	session.UnregisterConnection(clientID, conn)
}
