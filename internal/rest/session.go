package rest

import (
	"net/http"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"quiverArcade/business/levels"
	"quiverArcade/business/product"
	"quiverArcade/business/quiver"
	"quiverArcade/business/sim"
	"quiverArcade/domain"
	"quiverArcade/internal/session"
	"quiverArcade/pkg/logger"
	"quiverArcade/pkg/metrics"
	"quiverArcade/pkg/sharecode"
)

type (
	// SessionHandler drives the simulation core on behalf of the browser
	// front end: one session per visitor, one request per tick or command.
	SessionHandler struct {
		validate *validator.Validate
		store    *session.Store
		options  SessionOptions
	}

	SessionOptions struct {
		DefaultSeed     uint32
		TickCap         float64
		ScoreSigningKey string
	}

	CreateSessionRequest struct {
		ProductID string  `json:"product_id" validate:"required"`
		Seed      *uint32 `json:"seed,omitempty"`
	}

	StartLevelRequest struct {
		LevelID string `json:"level_id" validate:"required,oneof=level-1 level-2 level-3 level-3-quiver"`
	}

	TickRequest struct {
		Delta float64 `json:"delta" validate:"required,gt=0"`
	}

	PlaceOrderRequest struct {
		SKUID string `json:"sku_id" validate:"required"`
	}

	ClaimScoreRequest struct {
		LevelID string `json:"level_id" validate:"required"`
	}
)

func NewSessionHandler(store *session.Store, options SessionOptions) *SessionHandler {
	return &SessionHandler{
		validate: validator.New(),
		store:    store,
		options:  options,
	}
}

// CreateSession picks a product and hands out a fresh session id.
func (h *SessionHandler) CreateSession(c echo.Context) error {
	var request CreateSessionRequest
	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid create session body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&request); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	profile, ok := product.ByID(request.ProductID)
	if !ok {
		return c.JSON(http.StatusNotFound, ResponseError{Message: "product not found"})
	}

	seed := h.options.DefaultSeed
	if request.Seed != nil {
		seed = *request.Seed
	}

	state := sim.SelectProduct(sim.NewGame(), profile)
	created := h.store.Create(state, seed)
	metrics.SessionsStarted.Inc()

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(created))
}

// GetSession returns the full session snapshot.
func (h *SessionHandler) GetSession(c echo.Context) error {
	snapshot, err := h.store.Get(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ResponseError{Message: "session not found"})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(snapshot))
}

// StartLevel builds the named level from the session's seed and begins the
// run.
func (h *SessionHandler) StartLevel(c echo.Context) error {
	var request StartLevelRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&request); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	snapshot, err := h.store.Get(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ResponseError{Message: "session not found"})
	}
	if snapshot.State.SelectedProduct == nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "session has no product"})
	}

	level, ok := levels.ByID(request.LevelID, *snapshot.State.SelectedProduct, snapshot.Seed)
	if !ok {
		return c.JSON(http.StatusNotFound, ResponseError{Message: "level not found"})
	}

	updated, err := h.store.Mutate(snapshot.ID, func(state domain.GameState) domain.GameState {
		return sim.Start(state, level, *state.SelectedProduct)
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, ResponseError{Message: "session not found"})
	}

	logger.Info("Level started", "session", snapshot.ID, "level", level.ID)
	return c.JSON(http.StatusOK, fres.Response.StatusOK(updated))
}

// Tick advances the session by the request's elapsed time, clamped to the
// configured cap, then runs the quiver pass when the policy is on. The
// policy must see the post-tick state, and its orders must be visible to the
// very next tick; Mutate holds the store lock across both steps.
func (h *SessionHandler) Tick(c echo.Context) error {
	started := time.Now()

	var request TickRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&request); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	delta := request.Delta
	if delta > h.options.TickCap {
		delta = h.options.TickCap
	}

	updated, err := h.store.Mutate(c.Param("id"), func(state domain.GameState) domain.GameState {
		if state.Level == nil || state.SelectedProduct == nil {
			return state
		}

		level := *state.Level
		profile := *state.SelectedProduct

		next := sim.Tick(state, delta, level, profile)
		observeTick(state, next)

		if next.Status.IsPlaying() && next.QuiverEnabled {
			placed := sim.TotalOrderCount(next)
			next = quiver.Apply(next, level, profile)
			metrics.QuiverOrders.Add(float64(sim.TotalOrderCount(next) - placed))
		}

		return next
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, ResponseError{Message: "session not found"})
	}

	metrics.TickDuration.Observe(time.Since(started).Seconds())
	return c.JSON(http.StatusOK, fres.Response.StatusOK(updated))
}

// PlaceOrder places a manual order. Rejections come back as an unchanged
// state, never as an error.
func (h *SessionHandler) PlaceOrder(c echo.Context) error {
	var request PlaceOrderRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&request); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	updated, err := h.store.Mutate(c.Param("id"), func(state domain.GameState) domain.GameState {
		if state.SelectedProduct == nil {
			return state
		}

		before := sim.TotalOrderCount(state)
		next := sim.PlaceOrder(state, request.SKUID, *state.SelectedProduct)
		metrics.ManualOrders.Add(float64(sim.TotalOrderCount(next) - before))
		return next
	})
	if err != nil {
		return c.JSON(http.StatusNotFound, ResponseError{Message: "session not found"})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(updated))
}

// EnableQuiver switches the autonomous policy on for the session.
func (h *SessionHandler) EnableQuiver(c echo.Context) error {
	updated, err := h.store.Mutate(c.Param("id"), sim.EnableQuiver)
	if err != nil {
		return c.JSON(http.StatusNotFound, ResponseError{Message: "session not found"})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(updated))
}

// QuiverMetrics exposes the policy internals for one SKU, for the demo
// overlay.
func (h *SessionHandler) QuiverMetrics(c echo.Context) error {
	snapshot, err := h.store.Get(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ResponseError{Message: "session not found"})
	}
	if snapshot.State.Level == nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "session has no active level"})
	}

	quiverMetrics, ok := quiver.MetricsFor(snapshot.State, c.Param("skuID"), *snapshot.State.Level)
	if !ok {
		return c.JSON(http.StatusNotFound, ResponseError{Message: "sku not found"})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(quiverMetrics))
}

// GetScores returns every completed level score in the session.
func (h *SessionHandler) GetScores(c echo.Context) error {
	snapshot, err := h.store.Get(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ResponseError{Message: "session not found"})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(snapshot.State.LevelScores))
}

// ClaimScore signs the most recent score for the named level so the CTA
// flow can verify it later.
func (h *SessionHandler) ClaimScore(c echo.Context) error {
	var request ClaimScoreRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&request); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	snapshot, err := h.store.Get(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, ResponseError{Message: "session not found"})
	}
	if snapshot.State.SelectedProduct == nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "session has no product"})
	}

	var latest *domain.LevelScore
	for i := range snapshot.State.LevelScores {
		if snapshot.State.LevelScores[i].LevelID == request.LevelID {
			latest = &snapshot.State.LevelScores[i]
		}
	}
	if latest == nil {
		return c.JSON(http.StatusNotFound, ResponseError{Message: "no score for level"})
	}

	token, err := sharecode.SignScore(snapshot.State.SelectedProduct.ID, *latest, h.options.ScoreSigningKey)
	if err != nil {
		logger.Error("Failed to sign score claim", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "failed to sign score"})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(map[string]string{"token": token}))
}

// DeleteSession abandons a run; nothing is persisted.
func (h *SessionHandler) DeleteSession(c echo.Context) error {
	h.store.Delete(c.Param("id"))
	return c.JSON(http.StatusOK, fres.Response.StatusOK("session deleted"))
}

// observeTick feeds the stockout and completion counters from a state
// transition.
func observeTick(before, after domain.GameState) {
	if before.Status.IsPlaying() && !after.Status.IsPlaying() {
		metrics.LevelsCompleted.Inc()
	}

	for i := range after.SKUStates {
		if i < len(before.SKUStates) && !before.SKUStates[i].IsStockout && after.SKUStates[i].IsStockout {
			metrics.StockoutTransitions.Inc()
		}
	}
}
