package controller

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/benbeisheim/movegen-backend/internal/model"
	"github.com/benbeisheim/movegen-backend/internal/service"
	"github.com/benbeisheim/movegen-backend/internal/ws"
	"github.com/google/go-cmp/cmp"
)

func message(t *testing.T, msgType ws.MessageType, payload interface{}) ws.Message {
	t.Helper()
	msg, err := ws.NewMessage(msgType, payload)
	if err != nil {
		t.Fatalf("NewMessage: %v", err)
	}
	return msg
}

func TestHandleMessageMoves(t *testing.T) {
	session := service.NewSession("s", false)
	from := model.Position{Row: 1, Column: 7}

	reply, err := handleMessage(session, message(t, ws.MessageTypeMoves, from))
	if err != nil {
		t.Fatalf("handleMessage: %v", err)
	}
	if reply == nil || reply.Type != ws.MessageTypeMoveList {
		t.Fatalf("reply = %+v, want a move list", reply)
	}

	var got movesReply
	if err := json.Unmarshal(reply.Payload, &got); err != nil {
		t.Fatalf("decode reply: %v", err)
	}
	want := movesReply{
		From: from,
		Moves: []model.Move{
			{From: from, To: model.Position{Row: 3, Column: 8}},
			{From: from, To: model.Position{Row: 3, Column: 6}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("reply (-want +got):\n%s", diff)
	}
}

func TestHandleMessageMutations(t *testing.T) {
	session := service.NewSession("s", true)
	square := model.Square{
		Position: model.Position{Row: 5, Column: 5},
		Piece:    model.Piece{Type: model.Queen, Color: model.Black},
	}

	if reply, err := handleMessage(session, message(t, ws.MessageTypePlace, square)); err != nil || reply != nil {
		t.Fatalf("place: reply %v, err %v", reply, err)
	}
	if piece, ok, _ := session.PieceAt(square.Position); !ok || piece != square.Piece {
		t.Fatalf("queen not placed: %v %v", piece, ok)
	}

	if _, err := handleMessage(session, message(t, ws.MessageTypeClear, square.Position)); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok, _ := session.PieceAt(square.Position); ok {
		t.Fatal("square should be cleared")
	}

	if _, err := handleMessage(session, ws.Message{Type: ws.MessageTypeReset}); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if n := len(session.State().Squares); n != 32 {
		t.Errorf("after reset: %d pieces, want 32", n)
	}
}

func TestHandleMessageErrors(t *testing.T) {
	session := service.NewSession("s", true)

	if _, err := handleMessage(session, message(t, ws.MessageTypeMoves, model.Position{Row: 3, Column: 3})); !errors.Is(err, service.ErrEmptySquare) {
		t.Errorf("moves from empty square: got %v", err)
	}
	if _, err := handleMessage(session, ws.Message{Type: ws.MessageTypeMoves, Payload: json.RawMessage(`"e4"`)}); err == nil {
		t.Error("malformed payload should fail")
	}
	if _, err := handleMessage(session, ws.Message{Type: "resign"}); err == nil {
		t.Error("unknown message type should fail")
	}
}
