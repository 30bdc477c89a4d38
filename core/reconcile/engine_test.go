package reconcile

import (
	"testing"

	"jacket-manager/core/catalog"
	"jacket-manager/core/cell"

	"github.com/stretchr/testify/assert"
)

func readyStore(records ...catalog.Record) *catalog.Store {
	store := catalog.NewStore()
	store.Populate(records)
	return store
}

func TestReconcile_MatchedAndIncluded(t *testing.T) {
	store := readyStore(catalog.Record{
		ISBN:       "111",
		HasJacket:  true,
		TrimHeight: "280",
		TrimWidth:  "216",
	})
	rows := []OrderRow{
		{FieldISBN: cell.Text("111"), FieldJacket: cell.Text("Yes"), FieldQty: cell.Text("2")},
	}

	res, err := Reconcile(rows, store)
	assert.NoError(t, err)
	assert.Len(t, res.Jobs, 1)
	assert.Equal(t, "111", res.Jobs[0].ISBN)
	assert.Equal(t, RouteIndigo, res.Jobs[0].Route)
	assert.Equal(t, 2, res.Jobs[0].Quantity())
	assert.Empty(t, res.Diagnostics)
	assert.Equal(t, Summary{TotalRows: 1, EligibleRows: 1, MatchedJobs: 1}, res.Summary)
}

func TestReconcile_Unmatched(t *testing.T) {
	store := readyStore(catalog.Record{ISBN: "111", HasJacket: true})
	rows := []OrderRow{
		{FieldISBN: cell.Text("999"), FieldJacket: cell.Bool(true), FieldTitle: cell.Text("Ghost Title")},
	}

	res, err := Reconcile(rows, store)
	assert.NoError(t, err)
	assert.Empty(t, res.Jobs)
	assert.Len(t, res.Diagnostics, 1)
	assert.Equal(t, DiagnosticUnmatched, res.Diagnostics[0].Kind)
	assert.Equal(t, "999", res.Diagnostics[0].ISBN)
	assert.Equal(t, "Ghost Title", res.Diagnostics[0].Title)
	assert.Equal(t, 1, res.Summary.EligibleRows)
	assert.Equal(t, 0, res.Summary.MatchedJobs)
}

func TestReconcile_ExcludedByCatalog(t *testing.T) {
	store := readyStore(catalog.Record{ISBN: "222", HasJacket: false})
	rows := []OrderRow{
		{FieldISBN: cell.Text("222"), FieldJacket: cell.Text("1")},
	}

	res, err := Reconcile(rows, store)
	assert.NoError(t, err)
	assert.Empty(t, res.Jobs)
	assert.Len(t, res.Diagnostics, 1)
	assert.Equal(t, DiagnosticExcludedByCatalog, res.Diagnostics[0].Kind)
	assert.Equal(t, "222", res.Diagnostics[0].ISBN)
}

func TestReconcile_NoEligibleRows(t *testing.T) {
	store := readyStore(catalog.Record{ISBN: "111", HasJacket: true})
	rows := []OrderRow{
		{FieldISBN: cell.Text("111"), FieldJacket: cell.Text("No")},
		{FieldISBN: cell.Text("111")},
	}

	res, err := Reconcile(rows, store)
	assert.NoError(t, err)
	assert.Equal(t, 0, res.Summary.EligibleRows)
	assert.Equal(t, 0, res.Summary.MatchedJobs)

	// Zero-eligible guidance must differ from the none-matched guidance.
	noEligible := res.Summary.Guidance()
	noneMatched := Summary{TotalRows: 2, EligibleRows: 2, MatchedJobs: 0}.Guidance()
	assert.NotEmpty(t, noEligible)
	assert.NotEmpty(t, noneMatched)
	assert.NotEqual(t, noEligible, noneMatched)
}

func TestReconcile_EveryJobHasJacket(t *testing.T) {
	store := readyStore(
		catalog.Record{ISBN: "1", HasJacket: true},
		catalog.Record{ISBN: "2", HasJacket: false},
		catalog.Record{ISBN: "3", HasJacket: true},
	)
	rows := []OrderRow{
		{FieldISBN: cell.Text("1"), FieldJacket: cell.Text("yes")},
		{FieldISBN: cell.Text("2"), FieldJacket: cell.Text("yes")},
		{FieldISBN: cell.Text("3"), FieldJacket: cell.Bool(true)},
		{FieldISBN: cell.Text("4"), FieldJacket: cell.Text("TRUE")},
	}

	res, err := Reconcile(rows, store)
	assert.NoError(t, err)
	for _, job := range res.Jobs {
		assert.True(t, job.Record.HasJacket)
	}
	assert.Len(t, res.Jobs, 2)
	assert.LessOrEqual(t, res.Summary.MatchedJobs, res.Summary.EligibleRows)
	assert.LessOrEqual(t, res.Summary.EligibleRows, res.Summary.TotalRows)
}

func TestReconcile_PreservesInputOrderAndDuplicates(t *testing.T) {
	store := readyStore(
		catalog.Record{ISBN: "a", HasJacket: true},
		catalog.Record{ISBN: "b", HasJacket: true},
	)
	rows := []OrderRow{
		{FieldISBN: cell.Text("b"), FieldJacket: cell.Text("yes")},
		{FieldISBN: cell.Text("a"), FieldJacket: cell.Text("yes")},
		{FieldISBN: cell.Text("b"), FieldJacket: cell.Text("yes")},
	}

	res, err := Reconcile(rows, store)
	assert.NoError(t, err)
	assert.Len(t, res.Jobs, 3)
	assert.Equal(t, "b", res.Jobs[0].ISBN)
	assert.Equal(t, "a", res.Jobs[1].ISBN)
	assert.Equal(t, "b", res.Jobs[2].ISBN)
}

func TestReconcile_Idempotent(t *testing.T) {
	store := readyStore(
		catalog.Record{ISBN: "111", HasJacket: true, TrimHeight: "280", TrimWidth: "216"},
		catalog.Record{ISBN: "222", HasJacket: false},
	)
	rows := []OrderRow{
		{FieldISBN: cell.Text("111"), FieldJacket: cell.Text("yes"), FieldQty: cell.Text("3")},
		{FieldISBN: cell.Text("222"), FieldJacket: cell.Text("yes")},
		{FieldISBN: cell.Text("333"), FieldJacket: cell.Text("yes")},
	}

	first, err := Reconcile(rows, store)
	assert.NoError(t, err)
	second, err := Reconcile(rows, store)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestReconcile_CatalogNotReady(t *testing.T) {
	store := catalog.NewStore()
	rows := []OrderRow{{FieldISBN: cell.Text("111"), FieldJacket: cell.Text("yes")}}

	_, err := Reconcile(rows, store)
	assert.ErrorIs(t, err, catalog.ErrUnavailable)

	store.Fail(assert.AnError)
	_, err = Reconcile(rows, store)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, catalog.ErrUnavailable)
}

func TestReconcile_FallsBackToCodeColumn(t *testing.T) {
	store := readyStore(catalog.Record{ISBN: "555", HasJacket: true})
	rows := []OrderRow{
		{FieldCode: cell.Text(" 555 "), FieldJacket: cell.Text("yes")},
	}

	res, err := Reconcile(rows, store)
	assert.NoError(t, err)
	assert.Len(t, res.Jobs, 1)
	assert.Equal(t, "555", res.Jobs[0].ISBN)
}
