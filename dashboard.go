package balancete

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/etnz/balancete/trace"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var (
	// ErrNoData is returned when an operation requires data and there is none.
	ErrNoData = errors.New("no dashboard data")
	// ErrInsightPending is returned when an insight request is already in flight.
	ErrInsightPending = errors.New("an insight request is already in progress")
	// ErrStale is returned when the data changed while the insight was being generated.
	ErrStale = errors.New("dashboard changed during the insight request")
	// ErrNoAdvisor is returned when the dashboard has no advisor.
	ErrNoAdvisor = errors.New("no insight service configured")
	// ErrNotPersisted is returned when the state changed in memory but not in the store.
	ErrNotPersisted = errors.New("dashboard not persisted")
)

// Advisor produces a human readable analysis of a dashboard.
//
// It never fails: errors are turned into a readable message by the advisor itself.
type Advisor interface {
	Insights(ctx context.Context, data *DashboardData) string
}

// Dashboard owns the current dashboard state.
//
// All mutations go through its methods, which are safe for concurrent use.
type Dashboard struct {
	store   *Store
	advisor Advisor
	log     logrus.FieldLogger
	now     func() time.Time

	// persist serializes a state change with its store write, so that
	// the store always ends with the last state set in memory.
	persist sync.Mutex

	mu         sync.Mutex
	data       *DashboardData
	insight    string
	loading    bool
	generation uint64 // incremented on every data change
}

// Option configures a Dashboard.
type Option func(*Dashboard)

// WithLogger sets the dashboard logger.
func WithLogger(log logrus.FieldLogger) Option { return func(d *Dashboard) { d.log = log } }

// WithClock sets the clock used to stamp uploads.
func WithClock(now func() time.Time) Option { return func(d *Dashboard) { d.now = now } }

// NewDashboard creates a Dashboard whose initial state is loaded from store.
//
// advisor may be nil, insight requests then fail with ErrNoAdvisor.
func NewDashboard(store *Store, advisor Advisor, opts ...Option) *Dashboard {
	d := &Dashboard{
		store:   store,
		advisor: advisor,
		log:     logrus.StandardLogger(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.data = store.Load()
	if d.data == nil {
		d.log.Info("no stored dashboard, waiting for an upload")
	} else {
		d.log.WithField("lastUpdated", d.data.LastUpdated).Info("dashboard restored")
	}
	return d
}

// Upload reads a sheet and replaces the current data with it.
//
// A sheet that cannot be read leaves the current data untouched. The new data
// is persisted, a persistence failure is returned but the new data stays
// current.
func (d *Dashboard) Upload(ctx context.Context, filename string, r io.Reader) error {
	_, span := trace.StartSpan(ctx, "dashboard.Upload")
	defer span.End()
	span.SetAttributes(attribute.String("filename", filename))

	rows, err := ReadRows(filename, r)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("cannot read %q: %w", filename, err)
	}
	assets, liabilities := MapRows(rows)
	data := &DashboardData{
		Assets:      assets,
		Liabilities: liabilities,
		KPIs:        DefaultKPIs(),
		LastUpdated: d.now().UTC(),
	}
	span.SetAttributes(
		attribute.Int("assets", len(assets)),
		attribute.Int("liabilities", len(liabilities)),
	)

	d.persist.Lock()
	defer d.persist.Unlock()

	d.mu.Lock()
	d.data = data
	d.insight = ""
	d.generation++
	d.mu.Unlock()

	log := d.log.WithFields(logrus.Fields{
		"file":        filename,
		"assets":      len(assets),
		"liabilities": len(liabilities),
	})
	for _, w := range Summarize(data).Warnings() {
		log.Warn(w)
	}
	log.Info("dashboard imported")

	if err := d.store.Save(data); err != nil {
		log.WithError(err).Error("dashboard not persisted")
		return fmt.Errorf("%w: %w", ErrNotPersisted, err)
	}
	return nil
}

// Reset forgets the current data, both in memory and in the store.
func (d *Dashboard) Reset() error {
	d.persist.Lock()
	defer d.persist.Unlock()

	d.mu.Lock()
	d.data = nil
	d.insight = ""
	d.generation++
	d.mu.Unlock()

	if err := d.store.Clear(); err != nil {
		d.log.WithError(err).Error("stored dashboard not cleared")
		return fmt.Errorf("%w: %w", ErrNotPersisted, err)
	}
	d.log.Info("dashboard reset")
	return nil
}

// RequestInsights asks the advisor for an analysis of the current data and keeps it.
//
// Only one request can be in flight at a time. If the data is replaced or reset
// while the advisor is working, its answer is discarded and ErrStale is returned.
func (d *Dashboard) RequestInsights(ctx context.Context) (string, error) {
	d.mu.Lock()
	switch {
	case d.data == nil:
		d.mu.Unlock()
		return "", ErrNoData
	case d.advisor == nil:
		d.mu.Unlock()
		return "", ErrNoAdvisor
	case d.loading:
		d.mu.Unlock()
		return "", ErrInsightPending
	}
	d.loading = true
	data, generation := d.data, d.generation
	d.mu.Unlock()
	defer func() {
		d.mu.Lock()
		d.loading = false
		d.mu.Unlock()
	}()

	text := d.advisor.Insights(ctx, data)

	d.mu.Lock()
	defer d.mu.Unlock()
	if generation != d.generation {
		d.log.Warn("dashboard changed during the insight request, discarding the answer")
		return "", ErrStale
	}
	d.insight = text
	return text, nil
}

// Data returns the current data, nil if there is none. It must not be modified.
func (d *Dashboard) Data() *DashboardData {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.data
}

// Summary returns the summary of the current data.
func (d *Dashboard) Summary() Summary { return Summarize(d.Data()) }

// Insight returns the last insight text, "" if there is none.
func (d *Dashboard) Insight() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.insight
}

// Loading reports whether an insight request is in flight.
func (d *Dashboard) Loading() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loading
}
