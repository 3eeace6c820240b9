// Package depot implements the depot service: it owns the customer queue, the
// parcel store and the processed records, and drives a customer request from
// the queue through fee calculation to removal, leaving a trail in the event
// log and the timestamped report.
//
// Service performs no locking. Share one instance between goroutines through
// Guarded.
package depot

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"depot/internal/core/domain/model/customer"
	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/parcel"
	"depot/internal/core/domain/model/record"
	"depot/internal/core/domain/model/report"
	"depot/internal/core/domain/services"
	"depot/internal/core/ports"
	"depot/internal/pkg/errs"
)

const (
	// NoCustomersPlaceholder is the customer listing of an empty queue.
	NoCustomersPlaceholder = "[No customers in queue]"
	// NoParcelsPlaceholder is the parcel listing of an empty store.
	NoParcelsPlaceholder   = "[No parcels loaded]"
	// NoProcessedPlaceholder is the processed listing before anything was released.
	NoProcessedPlaceholder = "[No parcels processed yet]"
)

// FeeCalculator prices a parcel. services.FeeCalculator is the default.
type FeeCalculator interface {
	CalculateFee(p *parcel.Parcel) float64
}

// Outcome is the result of one ProcessNextCustomer step.
type Outcome int

const (
	// QueueEmpty means there was no customer to serve; nothing changed.
	QueueEmpty Outcome = iota + 1

	// NotFound means the head customer was dequeued and discarded because
	// their parcel is not in the store.
	NotFound

	// Processed means the head customer received their parcel.
	Processed
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case QueueEmpty:
		return "QueueEmpty"
	case NotFound:
		return "NotFound"
	case Processed:
		return "Processed"
	default:
		return "Unknown"
	}
}

// ProcessResult describes one ProcessNextCustomer step. Customer is set unless
// the queue was empty; Record is set only for Processed.
type ProcessResult struct {
	Outcome  Outcome
	Customer customer.Customer
	Record   record.ProcessedRecord
}

// Service is the depot core.
type Service struct {
	store   ports.ParcelStore
	queue   ports.CustomerQueue
	events  ports.EventLog
	reports ports.ReportWriter

	fees    FeeCalculator
	metrics ports.Metrics
	logger  *slog.Logger
	now     func() time.Time

	processed []record.ProcessedRecord
	nextSeq   int
}

// Option customizes a Service.
type Option func(*Service)

// WithLogger sets the structured logger for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithClock sets the source of report timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithFeeCalculator replaces the default fee calculator.
func WithFeeCalculator(fees FeeCalculator) Option {
	return func(s *Service) { s.fees = fees }
}

// WithMetrics sets the sink for processing outcome metrics.
func WithMetrics(metrics ports.Metrics) Option {
	return func(s *Service) { s.metrics = metrics }
}

// NewService wires the depot core to its collaborators.
//
// Example:
//
//	svc := depot.NewService(
//	    memory.NewParcelStore(),
//	    memory.NewCustomerQueue(),
//	    eventlog.New(),
//	    reportfile.NewWriter("resources/report.txt"),
//	    depot.WithLogger(logger),
//	)
func NewService(
	store ports.ParcelStore,
	queue ports.CustomerQueue,
	events ports.EventLog,
	reports ports.ReportWriter,
	opts ...Option,
) *Service {
	s := &Service{
		store:   store,
		queue:   queue,
		events:  events,
		reports: reports,
		fees:    services.NewFeeCalculator(),
		metrics: noopMetrics{},
		logger:  slog.Default(),
		now:     time.Now,
		nextSeq: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "depot_service")
	return s
}

// ProcessNextCustomer serves the customer at the head of the queue.
//
// The customer is dequeued exactly once whatever happens next. When their parcel
// exists it is priced, removed from the store and recorded; when it does not,
// the customer is discarded and a failure is logged and reported. On an empty
// queue nothing changes apart from the log and report trail.
func (s *Service) ProcessNextCustomer(ctx context.Context) ProcessResult {
	c, ok := s.queue.Dequeue()
	if !ok {
		s.events.AddEntry("No customer left in queue to process.")
		s.logger.InfoContext(ctx, "No customer left in queue to process")
		s.writeReport(ctx, "Attempted to process parcel but no customers in queue.")
		s.metrics.QueueEmpty()
		return ProcessResult{Outcome: QueueEmpty}
	}
	s.logger.InfoContext(ctx, "Processing customer", "customer", c.String())

	id := c.ParcelID()
	p, found := s.store.Get(id)
	if !found {
		msg := "Parcel " + id.String() + " not found for " + c.Name()
		s.events.AddEntry(msg)
		s.logger.WarnContext(ctx, msg, "parcel_id", id.String(), "customer", c.Name())
		s.writeReport(ctx, "Failed to process Parcel ID "+id.String()+" for "+c.Name()+" - Parcel not found.")
		s.metrics.ParcelNotFound(record.Processed)
		return ProcessResult{Outcome: NotFound, Customer: c}
	}

	rec, err := s.release(ctx, record.Processed, p, c.Name())
	if err != nil {
		// Unreachable for constructed customers: their names are never blank.
		s.logger.ErrorContext(ctx, "Processing customer failed", "customer", c.String(), "error", err)
		return ProcessResult{Outcome: NotFound, Customer: c}
	}
	return ProcessResult{Outcome: Processed, Customer: c, Record: rec}
}

// CollectParcel releases a parcel directly to customerName, bypassing the queue.
// It returns false, after logging and reporting the failure, when the parcel is
// not in the store or customerName is blank.
func (s *Service) CollectParcel(ctx context.Context, customerName string, id kernel.ParcelID) bool {
	p, found := s.store.Get(id)
	if !found {
		msg := "Parcel " + id.String() + " not found for collection by " + customerName
		s.events.AddEntry(msg)
		s.logger.WarnContext(ctx, msg, "parcel_id", id.String(), "customer", customerName)
		s.writeReport(ctx, "Failed to collect Parcel ID "+id.String()+" by "+customerName+" - Parcel not found.")
		s.metrics.ParcelNotFound(record.Collected)
		return false
	}

	if _, err := s.release(ctx, record.Collected, p, customerName); err != nil {
		msg := "Parcel " + id.String() + " not collected - customer name is required"
		s.events.AddEntry(msg)
		s.logger.WarnContext(ctx, msg, "parcel_id", id.String(), "error", err)
		s.writeReport(ctx, "Failed to collect Parcel ID "+id.String()+" - Customer name is required.")
		return false
	}
	return true
}

// AddCustomer appends a customer who wants an existing parcel to the queue.
// It fails with errs.ObjectNotFoundError when the parcel is unknown and leaves
// the queue untouched on any error.
func (s *Service) AddCustomer(ctx context.Context, name string, id kernel.ParcelID) (customer.Customer, error) {
	if !s.store.Contains(id) {
		return customer.Customer{}, errs.NewObjectNotFoundError("parcel ID", id.String())
	}

	c, err := s.enqueue(name, id)
	if err != nil {
		return customer.Customer{}, err
	}

	s.events.AddEntry("Worker added new customer: " + c.String())
	s.logger.InfoContext(ctx, "Worker added new customer", "customer", c.String())
	return c, nil
}

// AddParcel inserts p, replacing any parcel with the same identifier.
func (s *Service) AddParcel(ctx context.Context, p *parcel.Parcel) error {
	if err := p.Validate(); err != nil {
		return err
	}

	s.store.Put(p)
	s.events.AddEntry("Worker added new parcel: " + p.String())
	s.logger.InfoContext(ctx, "Worker added new parcel", "parcel", p.String(), "well_formed_id", p.ID().IsWellFormed())
	return nil
}

// Parcel looks up a stored parcel. Parcels are immutable, so the returned
// value may be shared.
func (s *Service) Parcel(id kernel.ParcelID) (*parcel.Parcel, bool) {
	return s.store.Get(id)
}

// QuoteFee prices a stored parcel without releasing it.
func (s *Service) QuoteFee(id kernel.ParcelID) (float64, error) {
	p, found := s.store.Get(id)
	if !found {
		return 0, errs.NewObjectNotFoundError("parcel ID", id.String())
	}
	return s.fees.CalculateFee(p), nil
}

// QueueSize returns the number of customers waiting.
func (s *Service) QueueSize() int {
	return s.queue.Size()
}

// IsQueueEmpty reports whether no customer is waiting.
func (s *Service) IsQueueEmpty() bool {
	return s.queue.IsEmpty()
}

// PendingCustomers returns the queued customers, head first.
func (s *Service) PendingCustomers() []customer.Customer {
	return s.queue.Snapshot()
}

// Parcels returns the stored parcels in insertion order.
func (s *Service) Parcels() []*parcel.Parcel {
	return s.store.All()
}

// ProcessedRecords returns the processed and collected records in the order they happened.
func (s *Service) ProcessedRecords() []record.ProcessedRecord {
	return slices.Clone(s.processed)
}

// release prices p, removes it from the store and records the release.
// Removal happens only once the record is valid, so a rejected release leaves
// the store unchanged.
func (s *Service) release(ctx context.Context, kind record.Kind, p *parcel.Parcel, customerName string) (record.ProcessedRecord, error) {
	fee := s.fees.CalculateFee(p)
	s.logger.DebugContext(ctx, "Fee calculated", "parcel_id", p.ID().String(), "fee", fee)

	rec, err := record.NewProcessedRecord(kind, p.ID(), customerName, fee)
	if err != nil {
		return record.ProcessedRecord{}, err
	}

	s.store.Remove(p.ID())
	s.processed = append(s.processed, rec)
	s.events.AddEntry(rec.Text())
	s.logger.InfoContext(ctx, rec.Text(), "kind", kind.String(), "record_id", rec.ID().String())
	s.writeReport(ctx, rec.ReportText())
	s.metrics.ParcelReleased(kind, fee)
	return rec, nil
}

func (s *Service) enqueue(name string, id kernel.ParcelID) (customer.Customer, error) {
	c, err := customer.NewCustomer(s.nextSeq, name, id)
	if err != nil {
		return customer.Customer{}, err
	}
	s.queue.Enqueue(c)
	s.nextSeq++
	return c, nil
}

// writeReport stamps text with the current time and appends it to the report.
// A failed write is logged and otherwise ignored.
func (s *Service) writeReport(ctx context.Context, text string) {
	entry := report.NewEntry(s.now(), text)
	if err := s.reports.Append(ctx, entry); err != nil {
		s.logger.ErrorContext(ctx, "Error writing report entry", "entry", entry.Line(), "error", err)
		return
	}
	s.logger.DebugContext(ctx, "Report entry added", "entry", entry.Line())
}

type noopMetrics struct{}

func (noopMetrics) ParcelReleased(record.Kind, float64) {}
func (noopMetrics) ParcelNotFound(record.Kind)          {}
func (noopMetrics) QueueEmpty()                         {}
