package reportfile_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"depot/internal/adapters/out/reportfile"
	"depot/internal/core/domain/model/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_Append(t *testing.T) {
	at := time.Date(2025, time.January, 2, 3, 4, 5, 0, time.Local)

	t.Run("appends to existing content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "report.txt")
		require.NoError(t, os.WriteFile(path, []byte("[2024-12-31 23:59:59] earlier\n"), 0o600))

		w := reportfile.NewWriter(path)
		require.NoError(t, w.Append(t.Context(), report.NewEntry(at, "first")))
		require.NoError(t, w.Append(t.Context(), report.NewEntry(at, "second")))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t,
			"[2024-12-31 23:59:59] earlier\n[2025-01-02 03:04:05] first\n[2025-01-02 03:04:05] second\n",
			string(data))
		assert.Equal(t, path, w.Path())
	})

	t.Run("creates missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "report.txt")

		require.NoError(t, reportfile.NewWriter(path).Append(t.Context(), report.NewEntry(at, "only")))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[2025-01-02 03:04:05] only\n", string(data))
	})

	t.Run("reports unopenable destination", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "no-such-dir", "report.txt")

		err := reportfile.NewWriter(path).Append(t.Context(), report.NewEntry(at, "lost"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "append report")
	})
}
