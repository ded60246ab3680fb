package metrics

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SessionCounter reports how many editor sessions are currently open
type SessionCounter interface {
	Len() int
}

// BusinessMetricsCollector collects business metrics periodically
type BusinessMetricsCollector struct {
	db       *gorm.DB
	sessions SessionCounter
	metrics  *Metrics
	logger   *zap.Logger
	ticker   *time.Ticker
	done     chan bool
}

// NewBusinessMetricsCollector creates a new collector
func NewBusinessMetricsCollector(db *gorm.DB, sessions SessionCounter, metrics *Metrics, logger *zap.Logger) *BusinessMetricsCollector {
	return &BusinessMetricsCollector{
		db:       db,
		sessions: sessions,
		metrics:  metrics,
		logger:   logger,
		ticker:   time.NewTicker(60 * time.Second),
		done:     make(chan bool),
	}
}

// Start begins collecting metrics
func (c *BusinessMetricsCollector) Start() {
	go func() {
		c.collect()

		for {
			select {
			case <-c.ticker.C:
				c.collect()
			case <-c.done:
				return
			}
		}
	}()
}

// Stop stops the collector
func (c *BusinessMetricsCollector) Stop() {
	c.ticker.Stop()
	c.done <- true
}

// collect gathers business metrics
func (c *BusinessMetricsCollector) collect() {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Panic in business metrics collection",
				zap.Any("panic", r),
			)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if c.db != nil {
		var documentCount int64
		if err := c.db.WithContext(ctx).Table("documents").Count(&documentCount).Error; err != nil {
			c.logger.Error("Failed to count documents", zap.Error(err))
		} else {
			c.metrics.SetDocumentsTotal(documentCount)
		}
	}

	if c.sessions != nil {
		c.metrics.SetEditorSessionsActive(int64(c.sessions.Len()))
	}
}
