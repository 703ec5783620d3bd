package controller

import (
	"errors"

	"github.com/benbeisheim/movegen-backend/internal/model"
	"github.com/benbeisheim/movegen-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type BoardController struct {
	boardService *service.BoardService
}

func NewBoardController(boardService *service.BoardService) *BoardController {
	return &BoardController{boardService: boardService}
}

type placeRequest struct {
	Position model.Position `json:"position"`
	Piece    model.Piece    `json:"piece"`
}

func (bc *BoardController) CreateBoard(c *fiber.Ctx) error {
	boardID, err := bc.boardService.CreateBoard(c.QueryBool("empty"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Board created",
		"board_id": boardID,
	})
}

func (bc *BoardController) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"boards": bc.boardService.BoardCount(),
	})
}

func (bc *BoardController) GetBoard(c *fiber.Ctx) error {
	state, err := bc.boardService.GetBoardState(c.Params("boardId"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(state)
}

func (bc *BoardController) DeleteBoard(c *fiber.Ctx) error {
	if err := bc.boardService.DeleteBoard(c.Params("boardId")); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Board deleted",
	})
}

func (bc *BoardController) ResetBoard(c *fiber.Ctx) error {
	if err := bc.boardService.ResetBoard(c.Params("boardId")); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Board reset",
	})
}

func (bc *BoardController) PlacePiece(c *fiber.Ctx) error {
	var req placeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if err := bc.boardService.PlacePiece(c.Params("boardId"), req.Position, req.Piece); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Piece placed",
	})
}

func (bc *BoardController) GetSquare(c *fiber.Ctx) error {
	pos, err := positionParams(c)
	if err != nil {
		return errorResponse(c, err)
	}
	piece, ok, err := bc.boardService.GetPiece(c.Params("boardId"), pos)
	if err != nil {
		return errorResponse(c, err)
	}
	if !ok {
		return c.JSON(fiber.Map{
			"position": pos,
			"piece":    nil,
		})
	}
	return c.JSON(model.Square{Position: pos, Piece: piece})
}

func (bc *BoardController) ClearSquare(c *fiber.Ctx) error {
	pos, err := positionParams(c)
	if err != nil {
		return errorResponse(c, err)
	}
	if err := bc.boardService.ClearSquare(c.Params("boardId"), pos); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Square cleared",
	})
}

func (bc *BoardController) GetMoves(c *fiber.Ctx) error {
	pos, err := positionParams(c)
	if err != nil {
		return errorResponse(c, err)
	}
	moves, err := bc.boardService.GetMoves(c.Params("boardId"), pos)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"from":  pos,
		"moves": moves,
	})
}

func (bc *BoardController) GetTeamMoves(c *fiber.Ctx) error {
	color := model.Color(c.Query("color"))
	moves, err := bc.boardService.GetTeamMoves(c.Params("boardId"), color)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"color": color,
		"moves": moves,
	})
}

func positionParams(c *fiber.Ctx) (model.Position, error) {
	row, err := c.ParamsInt("row")
	if err != nil {
		return model.Position{}, service.ErrOffBoard
	}
	col, err := c.ParamsInt("column")
	if err != nil {
		return model.Position{}, service.ErrOffBoard
	}
	return model.Position{Row: row, Column: col}, nil
}

func errorResponse(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrBoardNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, service.ErrOffBoard),
		errors.Is(err, service.ErrInvalidPiece),
		errors.Is(err, service.ErrInvalidColor),
		errors.Is(err, service.ErrEmptySquare):
		status = fiber.StatusBadRequest
	default:
		log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
