package depot_test

import (
	"sync"
	"testing"

	"depot/internal/core/application/depot"
	"depot/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuarded_ProcessNextIfQueued(t *testing.T) {
	f := newFixture()
	f.loadParcels(t, "X1,1,1,1,1,0")
	f.loadCustomers(t, "Alice,X1")
	g := depot.NewGuarded(f.svc)

	result, ok := g.ProcessNextIfQueued(t.Context())
	require.True(t, ok)
	assert.Equal(t, depot.Processed, result.Outcome)

	_, ok = g.ProcessNextIfQueued(t.Context())
	assert.False(t, ok)
	assert.Len(t, f.reports.entries, 1)
}

func TestGuarded_ConcurrentCallers(t *testing.T) {
	f := newFixture()
	f.loadParcels(t, "X1,1,1,1,1,0", "X2,1,1,1,1,0", "X3,1,1,1,1,0", "X4,1,1,1,1,0")
	g := depot.NewGuarded(f.svc)

	var wg sync.WaitGroup
	for _, id := range []string{"X1", "X2", "X3", "X4"} {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := g.AddCustomer(t.Context(), "Alice", kernel.MustNewParcelID(id))
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			g.ProcessNextIfQueued(t.Context())
			_ = g.CustomerListing()
		}()
	}
	wg.Wait()

	for g.QueueSize() > 0 {
		g.ProcessNextCustomer(t.Context())
	}
	assert.Len(t, g.ProcessedRecords(), 4)
	assert.Empty(t, g.Parcels())
}
