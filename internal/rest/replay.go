package rest

import (
	"net/http"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"quiverArcade/business/levels"
	"quiverArcade/business/product"
	"quiverArcade/business/sim"
	"quiverArcade/internal/session"
	"quiverArcade/pkg/metrics"
	"quiverArcade/pkg/sharecode"
)

type (
	// ReplayHandler turns opaque replay codes back into live sessions, so a
	// shared run can be watched again with the exact same demand curves.
	ReplayHandler struct {
		validate *validator.Validate
		store    *session.Store
		codeKey  string
	}

	CreateReplayRequest struct {
		Code string `json:"code" validate:"required"`
	}

	// ReplayCodeRequest issues a code for an existing run definition.
	ReplayCodeRequest struct {
		ProductID string `json:"product_id" validate:"required"`
		LevelID   string `json:"level_id" validate:"required,oneof=level-1 level-2 level-3 level-3-quiver"`
		Seed      uint32 `json:"seed"`
	}
)

func NewReplayHandler(store *session.Store, codeKey string) *ReplayHandler {
	return &ReplayHandler{
		validate: validator.New(),
		store:    store,
		codeKey:  codeKey,
	}
}

// IssueCode wraps a product, level and seed into a shareable replay code.
func (h *ReplayHandler) IssueCode(c echo.Context) error {
	var request ReplayCodeRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&request); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if _, ok := product.ByID(request.ProductID); !ok {
		return c.JSON(http.StatusNotFound, ResponseError{Message: "product not found"})
	}

	code, err := sharecode.EncodeReplay(sharecode.Replay{
		ProductID: request.ProductID,
		LevelID:   request.LevelID,
		Seed:      request.Seed,
	}, h.codeKey)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "failed to issue replay code"})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(map[string]string{"code": code}))
}

// DecodeCode shows what a replay code contains without starting anything.
func (h *ReplayHandler) DecodeCode(c echo.Context) error {
	replay, err := sharecode.DecodeReplay(c.Param("code"), h.codeKey)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid replay code"})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(replay))
}

// CreateFromCode builds a session from a replay code and starts its level
// immediately. The deterministic generator guarantees the rebuilt scenario
// matches the original run segment for segment.
func (h *ReplayHandler) CreateFromCode(c echo.Context) error {
	var request CreateReplayRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&request); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	replay, err := sharecode.DecodeReplay(request.Code, h.codeKey)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid replay code"})
	}

	profile, ok := product.ByID(replay.ProductID)
	if !ok {
		return c.JSON(http.StatusNotFound, ResponseError{Message: "product not found"})
	}

	level, ok := levels.ByID(replay.LevelID, profile, replay.Seed)
	if !ok {
		return c.JSON(http.StatusNotFound, ResponseError{Message: "level not found"})
	}

	state := sim.Start(sim.SelectProduct(sim.NewGame(), profile), level, profile)
	created := h.store.Create(state, replay.Seed)
	metrics.SessionsStarted.Inc()

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(created))
}
