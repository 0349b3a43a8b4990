package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Simplici0/indcalc/internal/engine"
	"github.com/Simplici0/indcalc/internal/format"
	"github.com/Simplici0/indcalc/internal/metrics"
	"github.com/Simplici0/indcalc/internal/presets"
)

const (
	msgInfeasible = "Tidak ditemukan solusi."
	msgUnstable   = "Sistem tidak stabil: λ ≥ μ"
	msgMargin     = "Harga jual harus lebih tinggi dari biaya variabel."
	msgDomain     = "Input di luar domain rumus."
	msgFailed     = "Perhitungan gagal."
)

type lpViewData struct {
	baseViewData
	Results []resultLine
}

type settingsViewData struct {
	baseViewData
	Fields []inputView
}

func (s *server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.renderTemplate(w, http.StatusOK, "home.html", baseViewData{Active: "home"})
}

func (s *server) handleLPForm(w http.ResponseWriter, r *http.Request) {
	s.renderTemplate(w, http.StatusOK, "lp.html", lpViewData{baseViewData: baseViewData{Active: "lp"}})
}

func (s *server) handleLPSubmit(w http.ResponseWriter, r *http.Request) {
	view := lpViewData{baseViewData: baseViewData{Active: "lp"}}

	start := time.Now()
	res, err := engine.SolveProduction()
	if s.observe("lp", start, err) {
		res = res.Rounded()
		view.SuccessMessage = "Solusi optimal ditemukan!"
		view.Results = []resultLine{
			{Label: "x", Value: format.Decimal2(res.X)},
			{Label: "y", Value: format.Decimal2(res.Y)},
			{Label: "Maksimum Z", Value: format.Decimal2(res.Objective)},
		}
	} else {
		view.ErrorMessage = conditionMessage(err)
	}

	s.renderTemplate(w, http.StatusOK, "lp.html", view)
}

func (s *server) handleEOQForm(w http.ResponseWriter, r *http.Request) {
	s.renderTemplate(w, http.StatusOK, "calc.html", eoqForm.view(s.loadDefaults(r.Context())))
}

func (s *server) handleEOQSubmit(w http.ResponseWriter, r *http.Request) {
	values, view, ok := s.parseCalcForm(w, r, "eoq", eoqForm)
	if !ok {
		return
	}

	start := time.Now()
	res, err := engine.EOQ(engine.EOQInput{
		Demand:       values[presets.EOQDemand],
		OrderingCost: values[presets.EOQOrderingCost],
		HoldingCost:  values[presets.EOQHoldingCost],
	})
	if s.observe("eoq", start, err) {
		view.SuccessMessage = fmt.Sprintf("EOQ = %s unit per pesanan", format.Decimal2(res.Quantity))
	} else {
		view.ErrorMessage = conditionMessage(err)
	}

	s.renderTemplate(w, http.StatusOK, "calc.html", view)
}

func (s *server) handleQueueForm(w http.ResponseWriter, r *http.Request) {
	s.renderTemplate(w, http.StatusOK, "calc.html", queueForm.view(s.loadDefaults(r.Context())))
}

func (s *server) handleQueueSubmit(w http.ResponseWriter, r *http.Request) {
	values, view, ok := s.parseCalcForm(w, r, "queue", queueForm)
	if !ok {
		return
	}

	start := time.Now()
	res, err := engine.Queue(engine.QueueInput{
		ArrivalRate: values[presets.QueueArrival],
		ServiceRate: values[presets.QueueService],
	})
	if s.observe("queue", start, err) {
		view.Results = []resultLine{
			{Label: "Utilisasi server (ρ)", Value: format.Decimal2(res.Utilization)},
			{Label: "Jumlah rata-rata pelanggan dalam sistem (L)", Value: format.Decimal2(res.InSystem)},
			{Label: "Jumlah rata-rata dalam antrian (Lq)", Value: format.Decimal2(res.InQueue)},
			{Label: "Waktu rata-rata dalam sistem (W)", Value: format.Decimal2(res.TimeInSystem)},
			{Label: "Waktu rata-rata dalam antrian (Wq)", Value: format.Decimal2(res.TimeInQueue)},
		}
	} else {
		view.ErrorMessage = conditionMessage(err)
	}

	s.renderTemplate(w, http.StatusOK, "calc.html", view)
}

func (s *server) handleBEPForm(w http.ResponseWriter, r *http.Request) {
	s.renderTemplate(w, http.StatusOK, "calc.html", bepForm.view(s.loadDefaults(r.Context())))
}

func (s *server) handleBEPSubmit(w http.ResponseWriter, r *http.Request) {
	values, view, ok := s.parseCalcForm(w, r, "bep", bepForm)
	if !ok {
		return
	}

	start := time.Now()
	res, err := engine.BreakEven(engine.BEPInput{
		FixedCost:    values[presets.BEPFixedCost],
		Price:        values[presets.BEPPrice],
		VariableCost: values[presets.BEPVariableCost],
	})
	if s.observe("bep", start, err) {
		view.Results = []resultLine{
			{Label: "BEP (unit)", Value: format.Decimal2(res.Units) + " unit"},
			{Label: "BEP (pendapatan)", Value: format.Currency(s.currency, res.Revenue)},
		}
	} else {
		view.ErrorMessage = conditionMessage(err)
	}

	s.renderTemplate(w, http.StatusOK, "calc.html", view)
}

func (s *server) handleSettingsForm(w http.ResponseWriter, r *http.Request) {
	s.renderTemplate(w, http.StatusOK, "settings.html", settingsView(s.loadDefaults(r.Context())))
}

func (s *server) handleSettingsSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	values := make(presets.Values, len(presets.Fields))
	view := settingsView(presets.Builtin())
	var firstErr error
	for i, field := range presets.Fields {
		raw := r.FormValue(field.Key)
		view.Fields[i].Value = raw
		v, err := parseMinFloat(raw, field)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		values[field.Key] = v
	}
	if firstErr != nil {
		view.ErrorMessage = firstErr.Error()
		s.renderTemplate(w, http.StatusBadRequest, "settings.html", view)
		return
	}

	if err := s.presets.Save(r.Context(), values); err != nil {
		s.logger.Error("failed to save input defaults", zap.Error(err))
		http.Error(w, "failed to save input defaults", http.StatusInternalServerError)
		return
	}

	view = settingsView(values)
	view.SuccessMessage = "Nilai awal berhasil disimpan."
	s.renderTemplate(w, http.StatusOK, "settings.html", view)
}

func settingsView(values presets.Values) settingsViewData {
	view := settingsViewData{baseViewData: baseViewData{Active: "settings"}}
	for _, field := range presets.Fields {
		view.Fields = append(view.Fields, inputView{
			Name:  field.Key,
			Label: field.Label,
			Value: formatInput(values.Get(field.Key)),
			Min:   formatInput(field.Min),
		})
	}
	return view
}

// parseCalcForm parses and validates a calculator form, answering 400 with
// the form shown again when validation fails.
func (s *server) parseCalcForm(w http.ResponseWriter, r *http.Request, calculator string, form calcForm) (presets.Values, calcViewData, bool) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return nil, calcViewData{}, false
	}

	values, view, err := form.parse(r)
	if err != nil {
		s.metrics.Observe(calculator, metrics.OutcomeInvalidInput, 0)
		view.ErrorMessage = err.Error()
		s.renderTemplate(w, http.StatusBadRequest, "calc.html", view)
		return nil, calcViewData{}, false
	}
	return values, view, true
}

// observe records a calculation and reports whether it succeeded.
func (s *server) observe(calculator string, start time.Time, err error) bool {
	outcome := metrics.OutcomeOf(err)
	s.metrics.Observe(calculator, outcome, time.Since(start))
	if err != nil {
		s.logger.Info("calculation rejected",
			zap.String("calculator", calculator),
			zap.String("outcome", outcome),
			zap.Error(err),
		)
		return false
	}
	s.logger.Debug("calculation served", zap.String("calculator", calculator))
	return true
}

func (s *server) loadDefaults(ctx context.Context) presets.Values {
	values, err := s.presets.All(ctx)
	if err != nil {
		s.logger.Warn("using built-in input defaults", zap.Error(err))
	}
	return values
}

func conditionMessage(err error) string {
	switch {
	case errors.Is(err, engine.ErrInfeasible):
		return msgInfeasible
	case errors.Is(err, engine.ErrInstability):
		return msgUnstable
	case errors.Is(err, engine.ErrMargin):
		return msgMargin
	case errors.Is(err, engine.ErrDomain):
		return msgDomain
	}
	return msgFailed
}
