// service/board_manager.go
package service

import (
	"sync"

	"github.com/gofiber/fiber/v2/log"
)

type BoardManager struct {
	sessions map[string]*Session
	mu       sync.RWMutex
}

func NewBoardManager() *BoardManager {
	return &BoardManager{
		sessions: make(map[string]*Session),
	}
}

func (bm *BoardManager) CreateBoard(boardID string, empty bool) (*Session, error) {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if _, exists := bm.sessions[boardID]; exists {
		return nil, ErrBoardExists
	}

	session := NewSession(boardID, empty)
	bm.sessions[boardID] = session
	log.Infof("created board %s (empty=%t)", boardID, empty)
	return session, nil
}

func (bm *BoardManager) GetBoard(boardID string) (*Session, error) {
	bm.mu.RLock()
	defer bm.mu.RUnlock()

	session, exists := bm.sessions[boardID]
	if !exists {
		return nil, ErrBoardNotFound
	}
	return session, nil
}

func (bm *BoardManager) DeleteBoard(boardID string) error {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if _, exists := bm.sessions[boardID]; !exists {
		return ErrBoardNotFound
	}
	delete(bm.sessions, boardID)
	log.Infof("deleted board %s", boardID)
	return nil
}

func (bm *BoardManager) Count() int {
	bm.mu.RLock()
	defer bm.mu.RUnlock()
	return len(bm.sessions)
}
