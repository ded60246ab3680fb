package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestIncrementDocumentsSent(t *testing.T) {
	m := getTestMetrics()

	initialValue := getCounterValue(t, m.DocumentsSentTotal)

	m.IncrementDocumentsSent()

	newValue := getCounterValue(t, m.DocumentsSentTotal)
	if newValue <= initialValue {
		t.Errorf("Expected counter to increment, got %f -> %f", initialValue, newValue)
	}
}

func TestIncrementFieldsPlaced(t *testing.T) {
	m := getTestMetrics()

	initialValue := getCounterValue(t, m.FieldsPlacedTotal)

	m.IncrementFieldsPlaced()

	newValue := getCounterValue(t, m.FieldsPlacedTotal)
	if newValue <= initialValue {
		t.Errorf("Expected counter to increment, got %f -> %f", initialValue, newValue)
	}
}

func TestSetDocumentsTotal(t *testing.T) {
	m := getTestMetrics()

	tests := []struct {
		name  string
		count int64
	}{
		{"zero documents", 0},
		{"one document", 1},
		{"multiple documents", 42},
		{"large number", 1000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.SetDocumentsTotal(tt.count)
			value := getGaugeValue(t, m.DocumentsTotal)
			if value != float64(tt.count) {
				t.Errorf("Expected gauge value %d, got %f", tt.count, value)
			}
		})
	}
}

func TestSetEditorSessionsActive(t *testing.T) {
	m := getTestMetrics()

	tests := []struct {
		name  string
		count int64
	}{
		{"no sessions", 0},
		{"one session", 1},
		{"many sessions", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.SetEditorSessionsActive(tt.count)
			value := getGaugeValue(t, m.EditorSessionsActive)
			if value != float64(tt.count) {
				t.Errorf("Expected gauge value %d, got %f", tt.count, value)
			}
		})
	}
}

func TestBusinessMetricsIntegration(t *testing.T) {
	m := getTestMetrics()

	m.SetDocumentsTotal(10)
	m.SetEditorSessionsActive(3)

	if getGaugeValue(t, m.DocumentsTotal) != 10 {
		t.Error("Expected DocumentsTotal to be 10")
	}
	if getGaugeValue(t, m.EditorSessionsActive) != 3 {
		t.Error("Expected EditorSessionsActive to be 3")
	}

	initialSent := getCounterValue(t, m.DocumentsSentTotal)
	initialPlaced := getCounterValue(t, m.FieldsPlacedTotal)

	m.IncrementDocumentsSent()
	m.IncrementFieldsPlaced()
	m.IncrementFieldsPlaced()

	if getCounterValue(t, m.DocumentsSentTotal) <= initialSent {
		t.Error("Expected DocumentsSentTotal to increment")
	}
	if getCounterValue(t, m.FieldsPlacedTotal) <= initialPlaced {
		t.Error("Expected FieldsPlacedTotal to increment")
	}

	m.SetDocumentsTotal(11)
	m.SetEditorSessionsActive(2)

	if getGaugeValue(t, m.DocumentsTotal) != 11 {
		t.Error("Expected DocumentsTotal to be 11")
	}
	if getGaugeValue(t, m.EditorSessionsActive) != 2 {
		t.Error("Expected EditorSessionsActive to be 2")
	}
}

// Helper function to get counter value
func getCounterValue(t *testing.T, counter prometheus.Counter) float64 {
	t.Helper()
	metric := &dto.Metric{}
	if err := counter.Write(metric); err != nil {
		t.Fatalf("Failed to write counter metric: %v", err)
	}
	return metric.Counter.GetValue()
}

// Helper function to get gauge value
func getGaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	t.Helper()
	metric := &dto.Metric{}
	if err := gauge.Write(metric); err != nil {
		t.Fatalf("Failed to write gauge metric: %v", err)
	}
	return metric.Gauge.GetValue()
}
