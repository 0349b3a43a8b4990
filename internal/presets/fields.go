// Package presets stores the default values pre-filled in the calculator
// forms. Only form defaults are kept; calculation results are never stored.
package presets

// Keys of the stored form defaults.
const (
	EOQDemand       = "eoq.demand"
	EOQOrderingCost = "eoq.ordering_cost"
	EOQHoldingCost  = "eoq.holding_cost"
	QueueArrival    = "queue.arrival_rate"
	QueueService    = "queue.service_rate"
	BEPFixedCost    = "bep.fixed_cost"
	BEPPrice        = "bep.price"
	BEPVariableCost = "bep.variable_cost"
)

// Field describes one numeric form input.
type Field struct {
	Key     string
	Label   string
	Default float64
	Min     float64
}

// Fields lists every form input in display order.
var Fields = []Field{
	{Key: EOQDemand, Label: "Permintaan tahunan (D)", Default: 1000, Min: 1},
	{Key: EOQOrderingCost, Label: "Biaya pemesanan per pesanan (S)", Default: 500, Min: 1},
	{Key: EOQHoldingCost, Label: "Biaya penyimpanan per unit per tahun (H)", Default: 2, Min: 1},
	{Key: QueueArrival, Label: "Rata-rata kedatangan (λ)", Default: 5, Min: 0.01},
	{Key: QueueService, Label: "Rata-rata layanan (μ)", Default: 8, Min: 0.01},
	{Key: BEPFixedCost, Label: "Biaya Tetap (Fixed Cost)", Default: 10000, Min: 0},
	{Key: BEPPrice, Label: "Harga Jual per Unit", Default: 100, Min: 0.01},
	{Key: BEPVariableCost, Label: "Biaya Variabel per Unit", Default: 60, Min: 0.01},
}

// Lookup returns the field registered under key.
func Lookup(key string) (Field, bool) {
	for _, f := range Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Values maps field keys to form default values.
type Values map[string]float64

// Builtin returns the compiled-in defaults.
func Builtin() Values {
	v := make(Values, len(Fields))
	for _, f := range Fields {
		v[f.Key] = f.Default
	}
	return v
}

// Get returns the value for key, falling back to the built-in default.
func (v Values) Get(key string) float64 {
	if val, ok := v[key]; ok {
		return val
	}
	f, _ := Lookup(key)
	return f.Default
}
