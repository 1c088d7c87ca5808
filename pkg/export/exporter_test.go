package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func advocateDataset() Dataset {
	return Dataset{
		Headers: []string{"ID", "First Name", "Last Name", "City", "Degree", "Specialties", "Years of Experience", "Phone Number"},
		Rows: []map[string]string{
			{
				"ID":                  "1",
				"First Name":          "Priya",
				"Last Name":           "Desai",
				"City":                "Denver",
				"Degree":              "PhD",
				"Specialties":         "Bipolar, PTSD",
				"Years of Experience": "12",
				"Phone Number":        "5559876543",
			},
			{
				"ID":                  "2",
				"First Name":          "John",
				"Last Name":           "Doe",
				"City":                "New York",
				"Degree":              "MD",
				"Specialties":         "LGBTQ",
				"Years of Experience": "10",
				"Phone Number":        "5551234567",
			},
		},
	}
}

func TestCSVExporterRender(t *testing.T) {
	exporter := NewCSVExporter()
	out, err := exporter.Render(advocateDataset())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "First Name", records[0][1])
	assert.Equal(t, "Desai", records[1][2])
	assert.Equal(t, "Bipolar, PTSD", records[1][5])
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	exporter := NewCSVExporter()
	_, err := exporter.Render(Dataset{})
	assert.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	exporter := NewPDFExporter()
	out, err := exporter.Render(advocateDataset(), "Advocate Directory")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestPDFExporterRequiresHeaders(t *testing.T) {
	exporter := NewPDFExporter()
	_, err := exporter.Render(Dataset{}, "empty")
	assert.Error(t, err)
}
