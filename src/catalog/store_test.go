package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/wecare/backend/src/logger"
	"github.com/username/wecare/backend/src/models"
)

func TestMain(m *testing.M) {
	logger.InitLogger("error")
	os.Exit(m.Run())
}

func writeCatalog(t *testing.T, content string) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return NewStore(path)
}

func TestLoadMissingFileIsEmptyCatalog(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	assert.Empty(t, store.Load())
}

func TestLoadAssignsPositionalIDs(t *testing.T) {
	store := writeCatalog(t, "Soap,Acme,10,2.0,US\nBrush,OralB,5,1.5, Germany \n")
	products := store.Load()

	require.Len(t, products, 2)
	assert.Equal(t, models.Product{ID: 0, Name: "Soap", Brand: "Acme", Stock: 10, CostPrice: 2.0, Country: "US"}, products[0])
	assert.Equal(t, 1, products[1].ID)
	assert.Equal(t, "Germany", products[1].Country, "country must be trimmed")
}

func TestLoadSkipsMalformedRecords(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"too few fields", "Soap,Acme,10,2.0\n"},
		{"non-numeric stock", "Soap,Acme,abc,2.0,US\n"},
		{"non-numeric cost price", "Soap,Acme,10,cheap,US\n"},
		{"negative stock", "Soap,Acme,-3,2.0,US\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := writeCatalog(t, tt.content+"Brush,OralB,5,1.5,Germany\n")
			products := store.Load()

			// The skipped record must not consume an id.
			require.Len(t, products, 1)
			assert.Equal(t, 0, products[0].ID)
			assert.Equal(t, "Brush", products[0].Name)
		})
	}
}

func TestLoadSkipsBlankLines(t *testing.T) {
	store := writeCatalog(t, "Soap,Acme,10,2.0,US\n\n\nBrush,OralB,5,1.5,Germany\n")
	products := store.Load()

	require.Len(t, products, 2)
	assert.Equal(t, 1, products[1].ID)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	original := []models.Product{
		{ID: 0, Name: "Soap", Brand: "Acme", Stock: 10, CostPrice: 2.0, Country: "US"},
		{ID: 1, Name: "Brush", Brand: "OralB", Stock: 5, CostPrice: 1.55, Country: "Germany"},
		{ID: 2, Name: "Shampoo", Brand: "Dove", Stock: 0, CostPrice: 3.25, Country: "UK"},
	}

	store := NewStore(filepath.Join(t.TempDir(), "products.txt"))
	require.NoError(t, store.Save(original))

	assert.Equal(t, original, store.Load())
}

func TestSaveOverwritesWholeFile(t *testing.T) {
	store := writeCatalog(t, "Soap,Acme,10,2.0,US\nBrush,OralB,5,1.5,Germany\n")
	products := store.Load()
	require.Len(t, products, 2)

	require.NoError(t, store.Save(products[:1]))
	assert.Len(t, store.Load(), 1)
}

func TestSaveFailureReturnsError(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing-dir", "products.txt"))
	err := store.Save([]models.Product{{Name: "Soap"}})
	assert.Error(t, err)
}
