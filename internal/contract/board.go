package contract

import "github.com/alexanderramin/cadence/internal/app"

type BoardRequest = app.BoardRequest

func NewBoardRequest() BoardRequest {
	return app.NewBoardRequest()
}

type ProjectView = app.ProjectView

type BoardResponse = app.BoardResponse

type AlertsRequest = app.AlertsRequest

type AlertsResponse = app.AlertsResponse

type BoardErrorCode = app.BoardErrorCode

const (
	BoardErrInvalidSort BoardErrorCode = app.BoardErrInvalidSort
)

type BoardError = app.BoardError

type ImportResult = app.ImportResult
