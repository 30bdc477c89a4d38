package picklist

import (
	"bytes"
	"fmt"
	"image/png"
	"time"

	"jacket-manager/core/reconcile"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"
)

// Layout constants in millimetres on a landscape A4 page.
const (
	marginLeft   = 14.0
	headerBottom = 185.0
	footerY      = 203.0
)

// Column x positions for the picklist table.
var columns = []struct {
	title string
	x     float64
}{
	{"Order No", 14},
	{"ISBN", 42},
	{"Title", 75},
	{"Qty", 155},
	{"Trim Size", 167},
	{"Treatment", 195},
	{"Jacket Route", 220},
	{"Barcode", 250},
}

// Input carries everything the picklist needs from a processing run.
// The renderer never re-derives matching or routing; it reads the jobs the
// engine produced, including their computed routes.
type Input struct {
	// JobNumber is the production job number for the whole sheet.
	JobNumber string

	// OrderDate is the customer order date, verbatim from the sheet.
	OrderDate string

	// GeneratedAt stamps the document.
	GeneratedAt time.Time

	// Jobs is the reconciled result set, in input order.
	Jobs []reconcile.Job

	// TotalQuantity is the summed jacket quantity across jobs.
	TotalQuantity int

	// Logger receives per-job barcode warnings. Optional.
	Logger *zap.Logger
}

// Render produces the printable picklist PDF: a header block, one
// barcode-bearing table line per job, repeated column headers on page
// breaks, and a page X of Y footer. A barcode that fails to encode is
// logged and skipped; the job's line is always printed.
func Render(in Input) ([]byte, error) {
	logger := in.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	orderDate := in.OrderDate
	if orderDate == "" {
		orderDate = in.GeneratedAt.Format("02/01/2006")
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetFont("Helvetica", "", 8)
		pdf.Text(marginLeft, footerY, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()))
	})
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Text(marginLeft, 20, "CUP Book Jacket Picklist")

	// Job details
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(marginLeft, 30, "Job Number: "+in.JobNumber)
	pdf.Text(marginLeft, 36, "Order Date: "+orderDate)
	pdf.Text(marginLeft, 42, "Generated: "+in.GeneratedAt.Format("02/01/2006 15:04:05"))
	pdf.Text(marginLeft, 48, fmt.Sprintf("Total Jacket Jobs: %d", len(in.Jobs)))
	pdf.Text(marginLeft, 54, fmt.Sprintf("Total Jackets Required: %d", in.TotalQuantity))

	y := 64.0
	writeTableHeader(pdf, y)
	y += 8

	for i, job := range in.Jobs {
		if y > headerBottom {
			pdf.AddPage()
			y = 20
			writeTableHeader(pdf, y)
			y += 8
		}

		pdf.SetFont("Helvetica", "", 9)
		pdf.Text(columns[0].x, y, orDefault(job.Row.Field(reconcile.FieldCustomerOrderNo).Trimmed(), "N/A"))
		pdf.Text(columns[1].x, y, orDefault(job.ISBN, "N/A"))
		pdf.Text(columns[2].x, y, truncate(orDefault(job.Title(), "N/A"), 50))
		pdf.Text(columns[3].x, y, fmt.Sprintf("%d", job.Quantity()))
		pdf.Text(columns[4].x, y, job.Record.TrimHeight.String()+"x"+job.Record.TrimWidth.String())
		pdf.Text(columns[5].x, y, truncate(orDefault(job.Record.CoverMediaTreatment, "N/A"), 12))

		pdf.SetFont("Helvetica", "B", 9)
		pdf.Text(columns[6].x, y, job.Route)

		// Barcode failure is isolated: the job line stays, only the symbol
		// is omitted.
		if img, err := barcodePNG(job.ISBN); err != nil {
			logger.Warn("Skipping barcode",
				zap.String("isbn", job.ISBN),
				zap.Error(err))
		} else {
			name := fmt.Sprintf("barcode-%d-%s", i, job.ISBN)
			opts := gofpdf.ImageOptions{ImageType: "PNG"}
			pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img))
			pdf.ImageOptions(name, 248, y-4, 25, 6, false, opts, 0, "")
		}

		y += 10
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render picklist: %w", err)
	}
	return buf.Bytes(), nil
}

// writeTableHeader draws the column titles and the separator line.
func writeTableHeader(pdf *gofpdf.Fpdf, y float64) {
	pdf.SetFont("Helvetica", "B", 9)
	for _, col := range columns {
		pdf.Text(col.x, y, col.title)
	}
	pdf.Line(marginLeft, y+2, 283, y+2)
}

// barcodePNG encodes text as a Code 128 symbol and returns PNG bytes.
func barcodePNG(text string) ([]byte, error) {
	symbol, err := code128.Encode(text)
	if err != nil {
		return nil, err
	}
	scaled, err := barcode.Scale(symbol, 200, 48)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// truncate shortens text to maxLen runes with a trailing ellipsis.
func truncate(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	return text[:maxLen-3] + "..."
}

// orDefault substitutes fallback for an empty value.
func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
