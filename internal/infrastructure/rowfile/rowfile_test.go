package rowfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brandyemurray/compare-and-save/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertScenario checks the Winco example used by every encoding below
func assertScenario(t *testing.T, rows []domain.ProductRow) {
	t.Helper()
	require.Len(t, rows, 3)

	assert.Equal(t, "Milk", rows[0].Name)
	assert.True(t, rows[0].ReferencePrice.Equal(decimal.RequireFromString("3.99")), "milk reference %s", rows[0].ReferencePrice)
	assert.True(t, rows[0].CompetitorPrice.Equal(decimal.RequireFromString("4.99")), "milk competitor %s", rows[0].CompetitorPrice)
	assert.Equal(t, domain.CarriesYes, rows[0].Carries)

	assert.Equal(t, "Eggs", rows[1].Name)
	assert.True(t, rows[1].CompetitorPrice.IsZero())
	assert.Equal(t, domain.CarriesYes, rows[1].Carries)

	assert.Equal(t, "Bread", rows[2].Name)
	assert.Equal(t, domain.CarriesDNC, rows[2].Carries)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
	}{
		{
			name:   "csv",
			format: FormatCSV,
			input: "name,referencePrice,competitorPrice,carries\n" +
				"Milk,3.99,4.99,Yes\n" +
				"Eggs,2.50,,Yes\n" +
				"Bread,4.00,3.00,DNC\n",
		},
		{
			name:   "csv with spreadsheet headers",
			format: FormatCSV,
			input: "\ufeffProduct Name, Store Price, Competitor Price, Carries?\n" +
				"Milk, $3.99, $4.99, yes\n" +
				"Eggs, 2.50, n/a, \n" +
				"Bread, 4.00, 3.00, Does Not Carry\n",
		},
		{
			name:   "json",
			format: FormatJSON,
			input: `[
				{"name": "Milk", "referencePrice": 3.99, "competitorPrice": "4.99", "carries": "Yes"},
				{"name": "Eggs", "referencePrice": "2.50", "competitorPrice": null},
				{"name": "Bread", "referencePrice": "4.00", "competitorPrice": "3.00", "carries": "DNC"}
			]`,
		},
		{
			name:   "yaml",
			format: FormatYAML,
			input: `
- name: Milk
  referencePrice: 3.99
  competitorPrice: "$4.99"
  carries: "Yes"
- name: Eggs
  referencePrice: 2.50
- name: Bread
  referencePrice: 4.00
  competitorPrice: 3.00
  carries: DNC
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := Decode(strings.NewReader(tt.input), tt.format)
			require.NoError(t, err)
			assertScenario(t, rows)
		})
	}
}

func TestDecode_Empty(t *testing.T) {
	for _, format := range []Format{FormatCSV, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			rows, err := Decode(strings.NewReader(""), format)
			require.NoError(t, err)
			assert.Empty(t, rows)
		})
	}
}

func TestDecode_SkipsBlankNames(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
	}{
		{
			name:   "csv filler row",
			format: FormatCSV,
			input:  "name,referencePrice,competitorPrice,carries\nMilk,3.99,4.99,Yes\n,,,N/A\n  ,1.00,2.00,Maybe\n",
		},
		{
			name:   "yaml entry without name",
			format: FormatYAML,
			input:  "- name: Milk\n  referencePrice: 3.99\n  competitorPrice: 4.99\n- carries: N/A\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := Decode(strings.NewReader(tt.input), tt.format)
			require.NoError(t, err)
			require.Len(t, rows, 1)
			assert.Equal(t, "Milk", rows[0].Name)
			assert.Equal(t, domain.CarriesYes, rows[0].Carries)
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		input   string
		wantErr error
		wantMsg string
	}{
		{
			name:    "unknown format",
			format:  Format("xml"),
			input:   "<rows/>",
			wantErr: domain.ErrUnsupportedFormat,
		},
		{
			name:    "csv without name column",
			format:  FormatCSV,
			input:   "price,carries\n1.00,Yes\n",
			wantErr: domain.ErrInvalidRequest,
			wantMsg: "missing name column",
		},
		{
			name:    "malformed json",
			format:  FormatJSON,
			input:   `[{"name": "Milk"`,
			wantErr: domain.ErrInvalidRequest,
		},
		{
			name:    "json object instead of list",
			format:  FormatJSON,
			input:   `{"name": "Milk"}`,
			wantErr: domain.ErrInvalidRequest,
		},
		{
			name:    "unknown carries value",
			format:  FormatCSV,
			input:   "name,carries\nMilk,Yes\nEggs,Sometimes\n",
			wantErr: domain.ErrInvalidRequest,
			wantMsg: "row 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input), tt.format)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{path: "rows.csv", want: FormatCSV},
		{path: "ROWS.CSV", want: FormatCSV},
		{path: "week/rows.json", want: FormatJSON},
		{path: "rows.yaml", want: FormatYAML},
		{path: "rows.yml", want: FormatYAML},
		{path: "rows.xlsx", wantErr: true},
		{path: "rows", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRead(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "week.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,referencePrice,competitorPrice,carries\nMilk,3.99,4.99,Yes\nEggs,2.50,0,Yes\nBread,4.00,3.00,DNC\n"), 0o644))

	rows, err := Read(path)
	require.NoError(t, err)
	assertScenario(t, rows)

	t.Run("missing file", func(t *testing.T) {
		_, err := Read(filepath.Join(dir, "missing.csv"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := Read(filepath.Join(dir, "week.txt"))
		assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	})
}
