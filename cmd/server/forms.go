package main

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/Simplici0/indcalc/internal/presets"
)

type baseViewData struct {
	Active         string
	ErrorMessage   string
	SuccessMessage string
}

type inputView struct {
	Name  string
	Label string
	Value string
	Min   string
}

type resultLine struct {
	Label string
	Value string
}

type calcViewData struct {
	baseViewData
	Title   string
	Action  string
	Submit  string
	Fields  []inputView
	Results []resultLine
}

// calcForm describes one calculator page and its numeric inputs.
type calcForm struct {
	active string
	title  string
	submit string
	fields []presets.Field
}

var (
	eoqForm = calcForm{
		active: "eoq",
		title:  "Model Persediaan - EOQ",
		submit: "Hitung EOQ",
		fields: fieldsOf(presets.EOQDemand, presets.EOQOrderingCost, presets.EOQHoldingCost),
	}
	queueForm = calcForm{
		active: "queue",
		title:  "Model Antrian - M/M/1",
		submit: "Hitung Antrian",
		fields: fieldsOf(presets.QueueArrival, presets.QueueService),
	}
	bepForm = calcForm{
		active: "bep",
		title:  "Analisis Titik Impas (Break Even Point)",
		submit: "Hitung BEP",
		fields: fieldsOf(presets.BEPFixedCost, presets.BEPPrice, presets.BEPVariableCost),
	}
)

func fieldsOf(keys ...string) []presets.Field {
	fields := make([]presets.Field, 0, len(keys))
	for _, k := range keys {
		f, ok := presets.Lookup(k)
		if !ok {
			panic("unknown preset key " + k)
		}
		fields = append(fields, f)
	}
	return fields
}

// formName is the HTML input name of a preset key: "eoq.demand" -> "demand".
func formName(key string) string {
	if i := strings.LastIndexByte(key, '.'); i >= 0 {
		return key[i+1:]
	}
	return key
}

func (f calcForm) view(values presets.Values) calcViewData {
	view := calcViewData{
		baseViewData: baseViewData{Active: f.active},
		Title:        f.title,
		Action:       "/" + f.active,
		Submit:       f.submit,
	}
	for _, field := range f.fields {
		view.Fields = append(view.Fields, inputView{
			Name:  formName(field.Key),
			Label: field.Label,
			Value: formatInput(values.Get(field.Key)),
			Min:   formatInput(field.Min),
		})
	}
	return view
}

// parse reads the submitted inputs. The returned view echoes what the user
// typed so a rejected form can be shown again unchanged.
func (f calcForm) parse(r *http.Request) (presets.Values, calcViewData, error) {
	view := f.view(presets.Builtin())
	values := make(presets.Values, len(f.fields))

	var firstErr error
	for i, field := range f.fields {
		raw := strings.TrimSpace(r.FormValue(view.Fields[i].Name))
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
	return values, view, firstErr
}

func parseMinFloat(raw string, field presets.Field) (float64, error) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%s harus berupa angka", field.Label)
	}
	if value < field.Min {
		return 0, fmt.Errorf("%s minimal %s", field.Label, formatInput(field.Min))
	}
	return value, nil
}

func formatInput(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
