package metrics

// IncrementBoardCreated increments the board creation counter
func (m *Metrics) IncrementBoardCreated() {
	m.safeExecute("IncrementBoardCreated", func() {
		m.BoardCreatedTotal.Inc()
	})
}

// IncrementItemCreated increments the item creation counter for a type
func (m *Metrics) IncrementItemCreated(itemType string) {
	m.safeExecute("IncrementItemCreated", func() {
		m.ItemCreatedTotal.WithLabelValues(itemType).Inc()
	})
}

// IncrementPinConnected increments the pin connection counter
func (m *Metrics) IncrementPinConnected() {
	m.safeExecute("IncrementPinConnected", func() {
		m.PinConnectedTotal.Inc()
	})
}

// IncrementReportOpened increments the report submission counter
func (m *Metrics) IncrementReportOpened() {
	m.safeExecute("IncrementReportOpened", func() {
		m.ReportOpenedTotal.Inc()
	})
}

// IncrementReportResolved increments the report resolution counter
func (m *Metrics) IncrementReportResolved() {
	m.safeExecute("IncrementReportResolved", func() {
		m.ReportResolvedTotal.Inc()
	})
}

// IncrementPermissionDenied increments the denial counter for a resource
func (m *Metrics) IncrementPermissionDenied(resource string) {
	m.safeExecute("IncrementPermissionDenied", func() {
		m.PermissionDeniedTotal.WithLabelValues(resource).Inc()
	})
}

// IncrementRateLimitRejected increments the rate limit rejection counter
func (m *Metrics) IncrementRateLimitRejected(resource string) {
	m.safeExecute("IncrementRateLimitRejected", func() {
		m.RateLimitRejectedTotal.WithLabelValues(resource).Inc()
	})
}

// SetBoardsTotal sets the total boards gauge
func (m *Metrics) SetBoardsTotal(count int64) {
	m.safeExecute("SetBoardsTotal", func() {
		m.BoardsTotal.Set(float64(count))
	})
}

// SetItemsTotal sets the total items gauge
func (m *Metrics) SetItemsTotal(count int64) {
	m.safeExecute("SetItemsTotal", func() {
		m.ItemsTotal.Set(float64(count))
	})
}
