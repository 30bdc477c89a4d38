package descriptor

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"jacket-manager/core/catalog"
	"jacket-manager/core/cell"
	"jacket-manager/core/reconcile"

	"github.com/stretchr/testify/assert"
)

func sampleJob() reconcile.Job {
	return reconcile.Job{
		Row: reconcile.OrderRow{
			reconcile.FieldPaceJobNo:       cell.Text("J1001"),
			reconcile.FieldCustomerOrderNo: cell.Text("PO-17"),
			reconcile.FieldOrderDate:       cell.Text("01/09/2026"),
			reconcile.FieldQty:             cell.Text("3"),
		},
		Record: &catalog.Record{
			ISBN:                "9780521000001",
			HasJacket:           true,
			BookDescription:     "Applied Hydrology Cover",
			Customer:            "CUP",
			TrimHeight:          "280",
			TrimWidth:           "216",
			SpineSize:           "22",
			BindingType:         "Cased",
			Pagination:          "416",
			StockDescription:    "130gsm Gloss Art",
			WeightGSM:           "130",
			CoverMediaTreatment: "Gloss Laminate",
			PDFUrl:              "https://assets.example.com/9780521000001.pdf",
		},
		ISBN:  "9780521000001",
		Route: reconcile.RouteIndigo,
	}
}

func TestMarshal_Structure(t *testing.T) {
	doc, err := Marshal(sampleJob())
	assert.NoError(t, err)

	out := string(doc)
	assert.Contains(t, out, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, out, "<BookJacket>")
	assert.Contains(t, out, "<ISBN>9780521000001</ISBN>")
	assert.Contains(t, out, "<PaceJobNo>J1001</PaceJobNo>")
	assert.Contains(t, out, "<CustomerOrderNo>PO-17</CustomerOrderNo>")
	assert.Contains(t, out, "<Quantity>3</Quantity>")
	assert.Contains(t, out, "<Title>Applied Hydrology</Title>")
	assert.Contains(t, out, `<TrimHeight unit="mm">280</TrimHeight>`)
	assert.Contains(t, out, `<TrimWidth unit="mm">216</TrimWidth>`)
	assert.Contains(t, out, `<SpineSize unit="mm">22</SpineSize>`)
	assert.Contains(t, out, "<JacketRoute>Indigo</JacketRoute>")
	assert.Contains(t, out, "<WeightGSM>130</WeightGSM>")
	assert.Contains(t, out, "<PDFUrl>https://assets.example.com/9780521000001.pdf</PDFUrl>")
}

func TestMarshal_EscapesReservedCharacters(t *testing.T) {
	job := sampleJob()
	job.Record.BookDescription = `Physics & Chemistry <2nd> "Revised" 'Ed'`

	doc, err := Marshal(job)
	assert.NoError(t, err)

	out := string(doc)
	assert.Contains(t, out, "Physics &amp; Chemistry &lt;2nd&gt; &#34;Revised&#34; &#39;Ed&#39;")
	assert.NotContains(t, out, "Physics & Chemistry")
}

func TestMarshal_MissingTitleStaysEmpty(t *testing.T) {
	job := sampleJob()
	job.Record.BookDescription = ""
	delete(job.Row, reconcile.FieldTitle)

	doc, err := Marshal(job)
	assert.NoError(t, err)
	assert.Contains(t, string(doc), "<Title></Title>")
}

func TestArchive_OneEntryPerJob(t *testing.T) {
	first := sampleJob()
	second := sampleJob()
	second.ISBN = "9780521000002"
	second.Record = &catalog.Record{
		ISBN:       "9780521000002",
		HasJacket:  true,
		TrimHeight: "234",
		TrimWidth:  "156",
	}
	second.Route = reconcile.RouteRicoh

	data, err := Archive([]reconcile.Job{first, second})
	assert.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	assert.NoError(t, err)
	assert.Len(t, zr.File, 2)
	assert.Equal(t, "9780521000001_jacket.xml", zr.File[0].Name)
	assert.Equal(t, "9780521000002_jacket.xml", zr.File[1].Name)

	rc, err := zr.File[1].Open()
	assert.NoError(t, err)
	defer rc.Close()
	body, err := io.ReadAll(rc)
	assert.NoError(t, err)
	assert.Contains(t, string(body), "<JacketRoute>Ricoh</JacketRoute>")
}

func TestArchive_EmptyJobsYieldsEmptyArchive(t *testing.T) {
	data, err := Archive(nil)
	assert.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	assert.NoError(t, err)
	assert.Empty(t, zr.File)
}
