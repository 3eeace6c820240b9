package report_test

import (
	"testing"
	"time"

	"depot/internal/core/domain/model/report"

	"github.com/stretchr/testify/assert"
)

func TestEntry_Line(t *testing.T) {
	at := time.Date(2025, time.March, 7, 9, 4, 5, 999, time.Local)

	e := report.NewEntry(at, "Attempted to process parcel but no customers in queue.")

	assert.Equal(t, "[2025-03-07 09:04:05] Attempted to process parcel but no customers in queue.", e.Line())
	assert.Equal(t, at, e.At())
	assert.Equal(t, "Attempted to process parcel but no customers in queue.", e.Text())
}
