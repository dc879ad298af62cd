package http

import (
	"net/http"

	"approvalhub/internal/usecase/ingest"

	"github.com/labstack/echo/v4"
)

type IngestHandler struct{ uc *ingest.Usecase }

func NewIngestHandler(uc *ingest.Usecase) *IngestHandler { return &IngestHandler{uc: uc} }

// ImportData loads the seed workbooks into the store.
func (h *IngestHandler) ImportData(c echo.Context) error {
	res, err := h.uc.Run(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, res)
}
