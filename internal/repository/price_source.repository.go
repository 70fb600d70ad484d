package repository

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"fundplanner/internal/domain"

	"github.com/gocarina/gocsv"
)

// PriceSourceRepository supplies raw closing price tables. Version
// changes whenever the underlying data changes
type PriceSourceRepository interface {
	Read() (*domain.RawTable, error)
	Version() (string, error)
}

func NewCsvPriceSourceRepository(path string) PriceSourceRepository {
	return csvPriceSourceRepositoryHandler{
		Path: path,
	}
}

type csvPriceSourceRepositoryHandler struct {
	Path string
}

func (h csvPriceSourceRepositoryHandler) Read() (*domain.RawTable, error) {
	data, err := os.ReadFile(h.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", h.Path, err)
	}

	return ParsePriceCsv(data)
}

func (h csvPriceSourceRepositoryHandler) Version() (string, error) {
	info, err := os.Stat(h.Path)
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", h.Path, err)
	}
	return fmt.Sprintf("%d-%d", info.ModTime().UnixNano(), info.Size()), nil
}

// ParsePriceCsv keeps header order alongside the row maps, since the
// maps alone lose column order
func ParsePriceCsv(data []byte) (*domain.RawTable, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	header, err := gocsv.DefaultCSVReader(bytes.NewReader(data)).Read()
	if errors.Is(err, io.EOF) {
		return &domain.RawTable{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	rows, err := gocsv.CSVToMaps(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to read csv rows: %w", err)
	}

	return &domain.RawTable{
		Columns: header,
		Rows:    rows,
	}, nil
}
