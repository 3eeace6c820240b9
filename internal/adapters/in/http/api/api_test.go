package api_test

import (
	"testing"

	"depot/internal/adapters/in/http/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	doc, err := api.Load(t.Context())

	require.NoError(t, err)
	assert.Equal(t, "3.0.3", doc.OpenAPI)
	for _, path := range []string{"/customers", "/customers/next", "/parcels", "/parcels/{id}", "/collections", "/processed", "/report"} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}
	assert.NotNil(t, doc.Paths.Find("/customers").Post)
}
