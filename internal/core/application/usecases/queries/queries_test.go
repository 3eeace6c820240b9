package queries_test

import (
	"context"
	"strings"
	"testing"

	"depot/internal/adapters/out/eventlog"
	"depot/internal/adapters/out/memory"
	"depot/internal/core/application/depot"
	"depot/internal/core/application/usecases/queries"
	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/report"
	"depot/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type discardReport struct{}

func (discardReport) Append(context.Context, report.Entry) error { return nil }

type QueriesTestSuite struct {
	suite.Suite
	svc *depot.Service
}

func (s *QueriesTestSuite) SetupTest() {
	s.svc = depot.NewService(memory.NewParcelStore(), memory.NewCustomerQueue(), eventlog.New(), discardReport{})
}

func (s *QueriesTestSuite) load(parcels, customers string) {
	_, err := s.svc.LoadParcelsFrom(s.T().Context(), strings.NewReader(parcels))
	s.Require().NoError(err)
	_, err = s.svc.LoadCustomersFrom(s.T().Context(), strings.NewReader(customers))
	s.Require().NoError(err)
}

func (s *QueriesTestSuite) TestPendingCustomers_Empty_ReturnsPlaceholder() {
	handler := queries.NewGetPendingCustomersQueryHandler(s.svc)

	resp, err := handler.Handle(s.T().Context(), queries.NewGetPendingCustomersQuery())

	s.Require().NoError(err)
	s.NotNil(resp.Customers)
	s.Empty(resp.Customers)
	s.Equal(depot.NoCustomersPlaceholder, resp.Listing)
}

func (s *QueriesTestSuite) TestPendingCustomers_ReturnsQueueOrder() {
	s.load("X1,1,1,1,1,0", "Alice,X1\nBob,c2")
	handler := queries.NewGetPendingCustomersQueryHandler(s.svc)

	resp, err := handler.Handle(s.T().Context(), queries.NewGetPendingCustomersQuery())

	s.Require().NoError(err)
	s.Equal([]queries.PendingCustomer{
		{Seq: 1, Name: "Alice", ParcelID: "X1"},
		{Seq: 2, Name: "Bob", ParcelID: "C2"},
	}, resp.Customers)
	s.Equal(2, s.svc.QueueSize())
}

func (s *QueriesTestSuite) TestParcels_ReturnsInsertionOrder() {
	s.load("X2,1,2,3,4,5\nX1,1,1,1,1,0", "")
	handler := queries.NewGetParcelsQueryHandler(s.svc)

	resp, err := handler.Handle(s.T().Context(), queries.NewGetParcelsQuery())

	s.Require().NoError(err)
	s.Require().Len(resp.Parcels, 2)
	s.Equal("X2", resp.Parcels[0].ID)
	s.Equal(5, resp.Parcels[0].DaysInDepot)
	s.Equal("Parcel{ID='X2', LxWxH=1x2x3, weight=4, days=5}", resp.Parcels[0].Display)
	s.Equal(s.svc.ParcelListing(), resp.Listing)
}

func (s *QueriesTestSuite) TestParcel_QuotesFeeWithoutReleasing() {
	s.load("C200,1.5,2,2,4,10", "")
	query, err := queries.NewGetParcelQuery("c200")
	s.Require().NoError(err)

	resp, err := queries.NewGetParcelQueryHandler(s.svc).Handle(s.T().Context(), query)

	s.Require().NoError(err)
	s.InDelta(21.12, resp.Fee, 1e-9)
	s.True(resp.Discounted)
	s.True(resp.WellFormed)
	s.Len(s.svc.Parcels(), 1)
}

func (s *QueriesTestSuite) TestParcel_NotFound() {
	query, err := queries.NewGetParcelQuery("X404")
	s.Require().NoError(err)

	_, err = queries.NewGetParcelQueryHandler(s.svc).Handle(s.T().Context(), query)

	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *QueriesTestSuite) TestProcessedRecords_Empty_ReturnsPlaceholder() {
	resp, err := queries.NewGetProcessedRecordsQueryHandler(s.svc).
		Handle(s.T().Context(), queries.NewGetProcessedRecordsQuery())

	s.Require().NoError(err)
	s.Empty(resp.Records)
	s.Equal(depot.NoProcessedPlaceholder, resp.Listing)
}

func (s *QueriesTestSuite) TestProcessedRecords_ReturnsReleaseOrder() {
	s.load("X1,1,1,1,1,0\nX2,2,1,1,1,0", "Alice,X1")
	s.svc.ProcessNextCustomer(s.T().Context())
	s.svc.CollectParcel(s.T().Context(), "Dave", kernel.MustNewParcelID("X2"))

	resp, err := queries.NewGetProcessedRecordsQueryHandler(s.svc).
		Handle(s.T().Context(), queries.NewGetProcessedRecordsQuery())

	s.Require().NoError(err)
	s.Require().Len(resp.Records, 2)
	s.Equal("Processed", resp.Records[0].Kind)
	s.Equal("Processed Parcel ID X1 for Alice | Fee: $1.00", resp.Records[0].Text)
	s.Equal("Collected", resp.Records[1].Kind)
	s.Equal("Dave", resp.Records[1].CustomerName)
	s.NotEmpty(resp.Records[1].ID)
	s.Equal(
		"Processed Parcel ID X1 for Alice | Fee: $1.00\nCollected Parcel ID X2 by Dave | Fee: $2.00\n",
		resp.Listing,
	)
}

func (s *QueriesTestSuite) TestHandle_ZeroQueries_AreRejected() {
	ctx := s.T().Context()

	_, err := queries.NewGetPendingCustomersQueryHandler(s.svc).Handle(ctx, queries.GetPendingCustomersQuery{})
	s.Require().ErrorIs(err, queries.ErrGetPendingCustomersQueryIsNotConstructed)

	_, err = queries.NewGetParcelsQueryHandler(s.svc).Handle(ctx, queries.GetParcelsQuery{})
	s.Require().ErrorIs(err, queries.ErrGetParcelsQueryIsNotConstructed)

	_, err = queries.NewGetParcelQueryHandler(s.svc).Handle(ctx, queries.GetParcelQuery{})
	s.Require().ErrorIs(err, queries.ErrGetParcelQueryIsNotConstructed)

	_, err = queries.NewGetProcessedRecordsQueryHandler(s.svc).Handle(ctx, queries.GetProcessedRecordsQuery{})
	s.Require().ErrorIs(err, queries.ErrGetProcessedRecordsQueryIsNotConstructed)
}

func TestQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesTestSuite))
}
