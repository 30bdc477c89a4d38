package reconcile

import (
	"testing"

	"jacket-manager/core/cell"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeISBN(t *testing.T) {
	tests := []struct {
		name string
		row  OrderRow
		want string
	}{
		{"prefers ISBN", OrderRow{FieldISBN: cell.Text("111"), FieldCode: cell.Text("222")}, "111"},
		{"falls back to Code", OrderRow{FieldCode: cell.Text("222")}, "222"},
		{"empty ISBN falls back", OrderRow{FieldISBN: cell.Text(""), FieldCode: cell.Text("222")}, "222"},
		{"both absent", OrderRow{}, ""},
		{"trims whitespace", OrderRow{FieldISBN: cell.Text("  978123  ")}, "978123"},
		{"no hyphen stripping", OrderRow{FieldISBN: cell.Text("978-0-12")}, "978-0-12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeISBN(tt.row))
		})
	}
}

func TestIsJacketJob(t *testing.T) {
	tests := []struct {
		name string
		row  OrderRow
		want bool
	}{
		{"native true", OrderRow{FieldJacket: cell.Bool(true)}, true},
		{"native false", OrderRow{FieldJacket: cell.Bool(false)}, false},
		{"text yes", OrderRow{FieldJacket: cell.Text("yes")}, true},
		{"text Yes", OrderRow{FieldJacket: cell.Text("Yes")}, true},
		{"text TRUE", OrderRow{FieldJacket: cell.Text("TRUE")}, true},
		{"text 1", OrderRow{FieldJacket: cell.Text("1")}, true},
		{"text no", OrderRow{FieldJacket: cell.Text("no")}, false},
		{"text 0", OrderRow{FieldJacket: cell.Text("0")}, false},
		{"text y", OrderRow{FieldJacket: cell.Text("y")}, false},
		{"empty", OrderRow{FieldJacket: cell.Text("")}, false},
		{"absent", OrderRow{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsJacketJob(tt.row))
		})
	}
}

func TestRoute(t *testing.T) {
	tests := []struct {
		name   string
		height string
		width  string
		want   string
	}{
		{"indigo trim", "280", "216", RouteIndigo},
		{"near miss", "280", "217", RouteRicoh},
		{"missing", "", "", RouteRicoh},
		{"non numeric", "tall", "wide", RouteRicoh},
		{"float form", "280.0", "216.0", RouteIndigo},
		{"swapped", "216", "280", RouteRicoh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Route(tt.height, tt.width))
		})
	}
}

func TestCleanTitle(t *testing.T) {
	assert.Equal(t, "My Great Book", CleanTitle("My Great Book Cover"))
	assert.Equal(t, "My Great Book", CleanTitle("My Great Book"))
	assert.Equal(t, "My Great Book", CleanTitle("My Great Book COVER  "))
	assert.Equal(t, "Cover", CleanTitle("Cover"))
	assert.Equal(t, "", CleanTitle(""))
	assert.Equal(t, "Undercover Work", CleanTitle("Undercover Work"))
}
