// Package api serves the calculators as a JSON HTTP API.
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Simplici0/indcalc/internal/engine"
	"github.com/Simplici0/indcalc/internal/format"
	"github.com/Simplici0/indcalc/internal/metrics"
)

// Handler provides the calculator endpoints.
type Handler struct {
	logger   *zap.Logger
	metrics  *metrics.Recorder
	currency string
}

// NewHandler creates a Handler. A nil logger or recorder disables that concern.
func NewHandler(logger *zap.Logger, recorder *metrics.Recorder, currencySymbol string) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{logger: logger, metrics: recorder, currency: currencySymbol}
}

// RegisterRoutes sets up the calculator routes on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/lp", h.handleLP)
	r.Get("/eoq", h.handleEOQ)
	r.Get("/queue", h.handleQueue)
	r.Get("/bep", h.handleBEP)
}

type lpResponse struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Objective float64 `json:"objective"`
	Feasible  bool    `json:"feasible"`
}

type eoqResponse struct {
	Quantity float64 `json:"quantity"`
}

type queueResponse struct {
	Utilization  float64 `json:"utilization"`
	InSystem     float64 `json:"l"`
	InQueue      float64 `json:"lq"`
	TimeInSystem float64 `json:"w"`
	TimeInQueue  float64 `json:"wq"`
	Stable       bool    `json:"stable"`
}

type bepResponse struct {
	Units            float64 `json:"units"`
	Revenue          float64 `json:"revenue"`
	RevenueFormatted string  `json:"revenue_formatted"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func (h *Handler) handleLP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	res, err := engine.SolveProduction()
	if !h.observe(w, "lp", start, err) {
		return
	}

	res = res.Rounded()
	respondJSON(w, http.StatusOK, lpResponse{X: res.X, Y: res.Y, Objective: res.Objective, Feasible: res.Feasible})
}

func (h *Handler) handleEOQ(w http.ResponseWriter, r *http.Request) {
	q := queryParser{r: r}
	in := engine.EOQInput{
		Demand:       q.float("demand"),
		OrderingCost: q.float("ordering_cost"),
		HoldingCost:  q.float("holding_cost"),
	}
	if !h.checkQuery(w, "eoq", q) {
		return
	}

	start := time.Now()
	res, err := engine.EOQ(in)
	if !h.observe(w, "eoq", start, err) {
		return
	}

	respondJSON(w, http.StatusOK, eoqResponse{Quantity: res.Rounded().Quantity})
}

func (h *Handler) handleQueue(w http.ResponseWriter, r *http.Request) {
	q := queryParser{r: r}
	in := engine.QueueInput{
		ArrivalRate: q.float("arrival_rate"),
		ServiceRate: q.float("service_rate"),
	}
	if !h.checkQuery(w, "queue", q) {
		return
	}

	start := time.Now()
	res, err := engine.Queue(in)
	if !h.observe(w, "queue", start, err) {
		return
	}

	res = res.Rounded()
	respondJSON(w, http.StatusOK, queueResponse{
		Utilization:  res.Utilization,
		InSystem:     res.InSystem,
		InQueue:      res.InQueue,
		TimeInSystem: res.TimeInSystem,
		TimeInQueue:  res.TimeInQueue,
		Stable:       res.Stable,
	})
}

func (h *Handler) handleBEP(w http.ResponseWriter, r *http.Request) {
	q := queryParser{r: r}
	in := engine.BEPInput{
		FixedCost:    q.float("fixed_cost"),
		Price:        q.float("price"),
		VariableCost: q.float("variable_cost"),
	}
	if !h.checkQuery(w, "bep", q) {
		return
	}

	start := time.Now()
	res, err := engine.BreakEven(in)
	if !h.observe(w, "bep", start, err) {
		return
	}

	res = res.Rounded()
	respondJSON(w, http.StatusOK, bepResponse{
		Units:            res.Units,
		Revenue:          res.Revenue,
		RevenueFormatted: format.Currency(h.currency, res.Revenue),
	})
}

// checkQuery answers 400 when any query value failed to parse.
func (h *Handler) checkQuery(w http.ResponseWriter, calculator string, q queryParser) bool {
	if q.err == nil {
		return true
	}
	h.metrics.Observe(calculator, metrics.OutcomeInvalidInput, 0)
	respondError(w, http.StatusBadRequest, q.err.Error(), "")
	return false
}

// observe records the calculation and, when err is set, answers with the
// engine condition. It reports whether the caller should write a result.
func (h *Handler) observe(w http.ResponseWriter, calculator string, start time.Time, err error) bool {
	outcome := metrics.OutcomeOf(err)
	h.metrics.Observe(calculator, outcome, time.Since(start))
	if err == nil {
		h.logger.Debug("calculation served", zap.String("calculator", calculator))
		return true
	}

	h.logger.Info("calculation rejected",
		zap.String("calculator", calculator),
		zap.String("outcome", outcome),
		zap.Error(err),
	)
	if code := engine.Code(err); code != "" {
		respondError(w, http.StatusUnprocessableEntity, err.Error(), code)
		return false
	}
	respondError(w, http.StatusInternalServerError, "calculation failed", "")
	return false
}

// queryParser reads float query parameters, keeping the first failure.
type queryParser struct {
	r   *http.Request
	err error
}

func (q *queryParser) float(name string) float64 {
	if q.err != nil {
		return 0
	}
	raw := strings.TrimSpace(q.r.URL.Query().Get(name))
	if raw == "" {
		q.err = fmt.Errorf("%s is required", name)
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			q.err = fmt.Errorf("%s is out of range", name)
			return 0
		}
		q.err = fmt.Errorf("%s must be numeric", name)
		return 0
	}
	return v
}

// respondJSON sends a JSON response. The body is encoded before the status
// is written, so an unencodable value becomes a 500 instead of an empty 200.
func respondJSON(w http.ResponseWriter, status int, data any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		buf.Reset()
		status = http.StatusInternalServerError
		_ = json.NewEncoder(&buf).Encode(errorResponse{Error: "encode response: " + err.Error()})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message, code string) {
	respondJSON(w, status, errorResponse{Error: message, Code: code})
}
