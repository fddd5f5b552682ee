package core

import "github.com/huangsam/modelmeter/schema"

// Built-in metric descriptors. Callers can combine them with their own
// metrics built through the same constructors.
var (
	RMSE        = mustMetric(NewNumericMetric("rmse", rmse, schema.Minimize))
	MAE         = mustMetric(NewNumericMetric("mae", mae, schema.Minimize))
	RSQ         = mustMetric(NewNumericMetric("rsq", rsq, schema.Maximize))
	MAPE        = mustMetric(NewNumericMetric("mape", mape, schema.Minimize))
	Accuracy    = mustMetric(NewClassMetric("accuracy", accuracy, schema.Maximize))
	Precision   = mustMetric(NewClassMetric("precision", precision, schema.Maximize))
	Recall      = mustMetric(NewClassMetric("recall", recall, schema.Maximize))
	GainCapture = mustMetric(NewProbMetric("gain_capture", gainCapture, schema.Maximize))
	LogLoss     = mustMetric(NewProbMetric("mn_log_loss", logLoss, schema.Minimize))
)

// MetricInfo describes one catalog entry for display purposes.
type MetricInfo struct {
	Name      string            `json:"name"`
	Kind      schema.MetricKind `json:"kind"`
	Direction schema.Direction  `json:"direction"`
	Purpose   string            `json:"purpose"`
	Formula   string            `json:"formula"`
}

// catalogDocs holds the human-readable definitions shown by the metrics
// command, keyed by metric name.
var catalogDocs = map[string]struct{ purpose, formula string }{
	"rmse":         {"Typical magnitude of prediction error", "sqrt(mean((truth - estimate)^2))"},
	"mae":          {"Average absolute prediction error", "mean(|truth - estimate|)"},
	"rsq":          {"Proportion of variance captured by the model", "cor(truth, estimate)^2"},
	"mape":         {"Relative prediction error as a percentage", "mean(|truth - estimate| / |truth|) * 100"},
	"accuracy":     {"Fraction of correctly classified rows", "count(truth == estimate) / n"},
	"precision":    {"How trustworthy a positive prediction is", "TP / (TP + FP)"},
	"recall":       {"How many true events were captured", "TP / (TP + FN)"},
	"gain_capture": {"Area captured by the gain curve over a random baseline", "area(gain - baseline) / area(perfect - baseline)"},
	"mn_log_loss":  {"Penalty for confident wrong probabilities", "-mean(log(P(true class)))"},
}

// Catalog returns all built-in metrics in display order.
func Catalog() []*Metric {
	return []*Metric{RMSE, MAE, RSQ, MAPE, Accuracy, Precision, Recall, GainCapture, LogLoss}
}

// CatalogInfo returns display descriptions for every built-in metric.
func CatalogInfo() []MetricInfo {
	metrics := Catalog()
	out := make([]MetricInfo, len(metrics))
	for i, m := range metrics {
		doc := catalogDocs[m.Name()]
		out[i] = MetricInfo{
			Name:      m.Name(),
			Kind:      m.Kind(),
			Direction: m.Direction(),
			Purpose:   doc.purpose,
			Formula:   doc.formula,
		}
	}
	return out
}

// LookupMetric finds a built-in metric by name.
func LookupMetric(name string) (*Metric, bool) {
	for _, m := range Catalog() {
		if m.Name() == name {
			return m, true
		}
	}
	return nil, false
}

// mustMetric unwraps constructor results for the static catalog, where the
// inputs are known to be valid.
func mustMetric(m *Metric, err error) *Metric {
	if err != nil {
		panic(err)
	}
	return m
}
