// Package rowfile loads product rows from CSV, JSON or YAML files so card
// sheets can be produced without the web form.
package rowfile

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/brandyemurray/compare-and-save/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Format identifies a row file encoding
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, filepath.Ext(path))
}

// Read loads rows from a file, choosing the decoder by extension
func Read(path string) ([]domain.ProductRow, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open row file: %w", err)
	}
	defer f.Close()

	rows, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return rows, nil
}

// Decode reads rows in the given format. Rows without a name are skipped
// before any other field is read. Prices are parsed leniently and carries
// values go through domain.ParseCarries.
func Decode(r io.Reader, format Format) ([]domain.ProductRow, error) {
	var records []record
	var err error

	switch format {
	case FormatCSV:
		records, err = decodeCSV(r)
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&records)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&records)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s rows: %v", domain.ErrInvalidRequest, format, err)
	}

	rows := make([]domain.ProductRow, 0, len(records))
	for i, rec := range records {
		if strings.TrimSpace(rec.Name) == "" {
			continue
		}
		row, err := rec.toProductRow()
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// record is one row as it appears in a file
type record struct {
	Name            string `json:"name" yaml:"name"`
	ReferencePrice  price  `json:"referencePrice" yaml:"referencePrice"`
	CompetitorPrice price  `json:"competitorPrice" yaml:"competitorPrice"`
	Carries         string `json:"carries" yaml:"carries"`
}

func (r record) toProductRow() (domain.ProductRow, error) {
	carries, err := domain.ParseCarries(r.Carries)
	if err != nil {
		return domain.ProductRow{}, err
	}
	return domain.ProductRow{
		Name:            strings.TrimSpace(r.Name),
		ReferencePrice:  r.ReferencePrice.Decimal(),
		CompetitorPrice: r.CompetitorPrice.Decimal(),
		Carries:         carries,
	}, nil
}

// price accepts numbers or strings such as "$3.99". Anything unreadable is zero.
type price struct {
	value decimal.Decimal
}

func (p price) Decimal() decimal.Decimal {
	return p.value
}

func (p *price) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// Not a string: numbers and null
		s = string(data)
	}
	p.value = domain.ParsePrice(s)
	return nil
}

func (p *price) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		p.value = decimal.Zero
		return nil
	}
	p.value = domain.ParsePrice(node.Value)
	return nil
}

// CSV header aliases, compared after normalizeHeader
var csvColumns = map[string]string{
	"name":            "name",
	"product":         "name",
	"productname":     "name",
	"referenceprice":  "reference",
	"storeprice":      "reference",
	"ourprice":        "reference",
	"competitorprice": "competitor",
	"theirprice":      "competitor",
	"carries":         "carries",
	"carried":         "carries",
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-', '?':
			return -1
		}
		return r
	}, h)
}

func decodeCSV(r io.Reader) ([]record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	columns := make(map[string]int)
	for i, h := range header {
		h = strings.TrimPrefix(h, "\ufeff")
		if col, ok := csvColumns[normalizeHeader(h)]; ok {
			if _, seen := columns[col]; !seen {
				columns[col] = i
			}
		}
	}
	if _, ok := columns["name"]; !ok {
		return nil, fmt.Errorf("missing name column in header %q", strings.Join(header, ","))
	}

	field := func(fields []string, col string) string {
		i, ok := columns[col]
		if !ok || i >= len(fields) {
			return ""
		}
		return fields[i]
	}

	var records []record
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record{
			Name:            field(fields, "name"),
			ReferencePrice:  price{value: domain.ParsePrice(field(fields, "reference"))},
			CompetitorPrice: price{value: domain.ParsePrice(field(fields, "competitor"))},
			Carries:         field(fields, "carries"),
		})
	}
	return records, nil
}
