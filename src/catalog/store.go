// Package catalog persists the product list as a flat, comma-delimited file:
// one record per line, fields name,brand,stock,cost_price,country. Embedded
// delimiters inside a field are not supported.
package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/username/wecare/backend/src/logger"
	"github.com/username/wecare/backend/src/models"
)

const recordFields = 5

// Store reads and writes the catalog file at a fixed path.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load reads the catalog file and returns the accepted products in file
// order. Ids are assigned sequentially over accepted records only, so a
// skipped record never shifts the ids of the records after it. A missing
// file is a new empty database, not an error; any other I/O failure is
// logged and yields an empty catalog.
func (s *Store) Load() []models.Product {
	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.L.Warn("Catalog file not found, starting with an empty database", "path", s.path)
			return nil
		}
		logger.L.Error("Failed to open catalog file", "path", s.path, "error", err)
		return nil
	}
	defer file.Close()

	products := parseRecords(file)
	logger.L.Info("Catalog loaded", "path", s.path, "products", len(products))
	return products
}

func parseRecords(r io.Reader) []models.Product {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var products []models.Product
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.L.Warn("Skipping unreadable catalog record", "error", err)
			continue
		}
		// A lone empty field is what csv yields for a blank line.
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}
		if len(record) < recordFields {
			logger.L.Warn("Skipping catalog record with too few fields", "fields", len(record), "record", strings.Join(record, ","))
			continue
		}

		stock, err := strconv.Atoi(strings.TrimSpace(record[2]))
		if err != nil || stock < 0 {
			logger.L.Warn("Skipping catalog record with invalid stock", "value", record[2], "error", err)
			continue
		}
		costPrice, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
		if err != nil || costPrice < 0 {
			logger.L.Warn("Skipping catalog record with invalid cost price", "value", record[3], "error", err)
			continue
		}

		products = append(products, models.Product{
			ID:        len(products),
			Name:      record[0],
			Brand:     record[1],
			Stock:     stock,
			CostPrice: costPrice,
			Country:   strings.TrimSpace(record[4]),
		})
	}

	return products
}

// Save rewrites the whole catalog file from the given product list, one
// record per product in list order. On failure the error is logged and
// returned; whatever state the file was left in is the caller's accepted
// risk.
func (s *Store) Save(products []models.Product) error {
	file, err := os.Create(s.path)
	if err != nil {
		logger.L.Error("Failed to open catalog file for writing", "path", s.path, "error", err)
		return fmt.Errorf("opening catalog file %s: %w", s.path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	for _, p := range products {
		record := []string{
			p.Name,
			p.Brand,
			strconv.Itoa(p.Stock),
			strconv.FormatFloat(p.CostPrice, 'g', -1, 64),
			p.Country,
		}
		if err := writer.Write(record); err != nil {
			logger.L.Error("Failed to write catalog record", "path", s.path, "product", p.Name, "error", err)
			return fmt.Errorf("writing catalog record for %s: %w", p.Name, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		logger.L.Error("Failed to flush catalog file", "path", s.path, "error", err)
		return fmt.Errorf("flushing catalog file %s: %w", s.path, err)
	}

	logger.L.Debug("Catalog saved", "path", s.path, "products", len(products))
	return nil
}
