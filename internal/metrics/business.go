package metrics

// IncrementDocumentsUploaded increments the uploaded-document counter
func (m *Metrics) IncrementDocumentsUploaded() {
	m.safeExecute("IncrementDocumentsUploaded", func() {
		m.DocumentsUploadedTotal.Inc()
	})
}

// IncrementDocumentsSent increments the sent-document counter
func (m *Metrics) IncrementDocumentsSent() {
	m.safeExecute("IncrementDocumentsSent", func() {
		m.DocumentsSentTotal.Inc()
	})
}

// IncrementFieldsPlaced increments the placed-field counter
func (m *Metrics) IncrementFieldsPlaced() {
	m.safeExecute("IncrementFieldsPlaced", func() {
		m.FieldsPlacedTotal.Inc()
	})
}

// SetDocumentsTotal sets the total documents gauge
func (m *Metrics) SetDocumentsTotal(count int64) {
	m.safeExecute("SetDocumentsTotal", func() {
		m.DocumentsTotal.Set(float64(count))
	})
}

// SetEditorSessionsActive sets the open editor sessions gauge
func (m *Metrics) SetEditorSessionsActive(count int64) {
	m.safeExecute("SetEditorSessionsActive", func() {
		m.EditorSessionsActive.Set(float64(count))
	})
}
