// Package invoice renders finalized transactions into the fixed-width
// invoice artifact and persists one file per transaction.
package invoice

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/username/wecare/backend/src/logger"
	"github.com/username/wecare/backend/src/models"
)

const (
	rule         = 100
	headerFormat = "%-5v %-25v %-25v %-15v %-15v %-15v"
	itemFormat   = "%-5d %-25s %-25s %-15d %-15.2f %-15.2f"
)

// Clock supplies the wall-clock time stamped onto invoices. Production code
// passes time.Now; tests pass a fixed instant.
type Clock func() time.Time

// Document is a rendered invoice: the text that goes into the file and the
// filename derived from counterparty and minute-precision timestamp.
type Document struct {
	Filename string
	Body     string
}

// Recorder writes invoice files into a fixed directory.
type Recorder struct {
	dir   string
	clock Clock
}

func NewRecorder(dir string, clock Clock) *Recorder {
	return &Recorder{dir: dir, clock: clock}
}

// Render builds the invoice document for a finalized transaction. The
// filename is invoice-{DD-MM-YYYY}-{HH-MM}-{counterparty}; two invoices for
// the same counterparty within the same minute share a name and the second
// overwrites the first.
func (r *Recorder) Render(tx *models.Transaction) Document {
	now := r.clock()
	date := now.Format("02-01-2006")
	timeOfDay := now.Format("15:04")

	var b strings.Builder
	b.WriteString("INVOICE\n")
	b.WriteString(strings.Repeat("-", rule) + "\n")
	if tx.Kind == models.KindSale {
		fmt.Fprintf(&b, "Customer Name: %s\n", tx.Counterparty)
		fmt.Fprintf(&b, "Phone Number: %s\n", tx.Phone)
	} else {
		fmt.Fprintf(&b, "Vendor Name: %s\n", tx.Counterparty)
	}
	fmt.Fprintf(&b, "Date: %s, %s\n", timeOfDay, date)
	b.WriteString(strings.Repeat("-", rule) + "\n")

	fmt.Fprintf(&b, headerFormat, "S.N", "Name", "Brand Name", "Total quantity", "Rate", "Total per item")
	b.WriteString("\n" + strings.Repeat("-", rule) + "\n")

	for i, line := range tx.Lines {
		fmt.Fprintf(&b, itemFormat, i+1, line.Name, line.Brand, line.TotalQty, line.UnitPrice, line.LineTotal)
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("-", rule) + "\n")
	fmt.Fprintf(&b, "Grand Total: %.2f\n", tx.GrandTotal)

	filename := fmt.Sprintf("invoice-%s-%s-%s", date, strings.ReplaceAll(timeOfDay, ":", "-"), tx.Counterparty)
	return Document{Filename: filename, Body: b.String()}
}

// Persist writes the document into the recorder's directory and returns the
// full path. Failure leaves the caller's in-memory state untouched.
func (r *Recorder) Persist(doc Document) (string, error) {
	path := filepath.Join(r.dir, doc.Filename)
	if err := os.WriteFile(path, []byte(doc.Body), 0o644); err != nil {
		logger.L.Error("Failed to save invoice to file", "path", path, "error", err)
		return "", fmt.Errorf("saving invoice %s: %w", doc.Filename, err)
	}
	logger.L.Info("Invoice saved", "path", path)
	return path, nil
}
