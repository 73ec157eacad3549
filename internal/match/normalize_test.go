package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"occurrenceID", "occurrenceid"},
		{"occurrence_id", "occurrenceid"},
		{"occurrence-id", "occurrenceid"},
		{"OCCURRENCEID", "occurrenceid"},
		{"decimal Latitude", "decimallatitude"},
		{"dwc:decimalLatitude", "decimallatitude"},
		{"http://rs.tdwg.org/dwc/terms/decimalLatitude", "decimallatitude"},
		{"http://example.org/terms#basisOfRecord", "basisofrecord"},
		{"dc.license", "dclicense"},
		{"", ""},
		{"A", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeIdent(tt.input))
		})
	}
}

func TestTokenizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"decimalLatitude", []string{"decimal", "latitude"}},
		{"decimal_latitude", []string{"decimal", "latitude"}},
		{"occurrenceID", []string{"occurrence", "id"}},
		{"dwc:GBIFRecordID", []string{"gbif", "record", "id"}},
		{"XMLParser", []string{"xml", "parser"}},
		{"__x__", []string{"x"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, TokenizeIdent(tt.input))
		})
	}
}

func TestLocalName(t *testing.T) {
	assert.Equal(t, "eventDate", LocalName("dwc:eventDate"))
	assert.Equal(t, "eventDate", LocalName("http://rs.tdwg.org/dwc/terms/eventDate"))
	assert.Equal(t, "eventDate", LocalName("eventDate"))
	assert.Equal(t, "", LocalName("dwc:"))
}
