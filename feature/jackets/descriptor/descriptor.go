package descriptor

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"

	"jacket-manager/core/reconcile"
)

// BookJacket is the root of one machine-readable job descriptor.
// The XML marshaller escapes every reserved character in free-text fields,
// so catalog values like `Smith & Jones` embed safely.
type BookJacket struct {
	XMLName        xml.Name       `xml:"BookJacket"`
	JobInfo        JobInfo        `xml:"JobInfo"`
	BookDetails    BookDetails    `xml:"BookDetails"`
	Specifications Specifications `xml:"Specifications"`
	Materials      Materials      `xml:"Materials"`
	Files          Files          `xml:"Files"`
}

// JobInfo carries the order metadata for one job.
type JobInfo struct {
	ISBN            string `xml:"ISBN"`
	PaceJobNo       string `xml:"PaceJobNo"`
	CustomerOrderNo string `xml:"CustomerOrderNo"`
	OrderDate       string `xml:"OrderDate"`
	Quantity        int    `xml:"Quantity"`
}

// BookDetails describes the title being jacketed.
type BookDetails struct {
	Title       string `xml:"Title"`
	Customer    string `xml:"Customer"`
	BindingType string `xml:"BindingType"`
}

// Measurement is a dimension with its unit annotation.
type Measurement struct {
	Unit  string `xml:"unit,attr"`
	Value string `xml:",chardata"`
}

// Specifications carries the physical production parameters, including the
// computed manufacturing route.
type Specifications struct {
	TrimHeight  Measurement `xml:"TrimHeight"`
	TrimWidth   Measurement `xml:"TrimWidth"`
	SpineSize   Measurement `xml:"SpineSize"`
	Pagination  string      `xml:"Pagination"`
	JacketRoute string      `xml:"JacketRoute"`
}

// Materials describes the jacket stock.
type Materials struct {
	StockDescription    string `xml:"StockDescription"`
	WeightGSM           string `xml:"WeightGSM"`
	CoverMediaTreatment string `xml:"CoverMediaTreatment"`
}

// Files points at the source artwork.
type Files struct {
	PDFUrl string `xml:"PDFUrl"`
}

// mm annotates a measurement in millimetres.
func mm(value string) Measurement {
	return Measurement{Unit: "mm", Value: value}
}

// Build maps one reconciled job onto its descriptor document.
func Build(job reconcile.Job) BookJacket {
	rec := job.Record
	return BookJacket{
		JobInfo: JobInfo{
			ISBN:            rec.ISBN,
			PaceJobNo:       job.Row.Field(reconcile.FieldPaceJobNo).Trimmed(),
			CustomerOrderNo: job.Row.Field(reconcile.FieldCustomerOrderNo).Trimmed(),
			OrderDate:       job.Row.Field(reconcile.FieldOrderDate).Trimmed(),
			Quantity:        job.Quantity(),
		},
		BookDetails: BookDetails{
			Title:       job.Title(),
			Customer:    rec.Customer,
			BindingType: rec.BindingType,
		},
		Specifications: Specifications{
			TrimHeight:  mm(rec.TrimHeight.String()),
			TrimWidth:   mm(rec.TrimWidth.String()),
			SpineSize:   mm(rec.SpineSize.String()),
			Pagination:  rec.Pagination.String(),
			JacketRoute: job.Route,
		},
		Materials: Materials{
			StockDescription:    rec.StockDescription,
			WeightGSM:           rec.WeightGSM.String(),
			CoverMediaTreatment: rec.CoverMediaTreatment,
		},
		Files: Files{
			PDFUrl: rec.PDFUrl,
		},
	}
}

// Marshal renders one job descriptor as a standalone XML document.
func Marshal(job reconcile.Job) ([]byte, error) {
	body, err := xml.MarshalIndent(Build(job), "", "    ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal descriptor for %s: %w", job.ISBN, err)
	}
	return append([]byte(xml.Header), body...), nil
}

// Filename returns the descriptor filename for a job.
func Filename(job reconcile.Job) string {
	return job.ISBN + "_jacket.xml"
}

// Archive bundles one descriptor per job into a ZIP, in result-set order.
func Archive(jobs []reconcile.Job) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, job := range jobs {
		doc, err := Marshal(job)
		if err != nil {
			return nil, err
		}
		w, err := zw.Create(Filename(job))
		if err != nil {
			return nil, fmt.Errorf("failed to add %s to archive: %w", Filename(job), err)
		}
		if _, err := w.Write(doc); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", Filename(job), err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}
