package l1_service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"fundplanner/internal/domain"
	"fundplanner/internal/logger"
	"fundplanner/internal/repository"
	"fundplanner/internal/util"
)

/**

the dataset is parsed once per source version. callers on the http side
hit Load on every request, so the parsed dataset is cached and only
rebuilt when the source reports a new version

*/

type DatasetService interface {
	Load(ctx context.Context) (*domain.PriceDataset, error)
}

type datasetServiceHandler struct {
	PriceSourceRepository repository.PriceSourceRepository

	mutex   *sync.RWMutex
	version string
	cached  *domain.PriceDataset
}

func NewDatasetService(priceSourceRepository repository.PriceSourceRepository) DatasetService {
	return &datasetServiceHandler{
		PriceSourceRepository: priceSourceRepository,
		mutex:                 &sync.RWMutex{},
	}
}

func (h *datasetServiceHandler) Load(ctx context.Context) (*domain.PriceDataset, error) {
	log := logger.FromContext(ctx)

	version, err := h.PriceSourceRepository.Version()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to check price source: %w", domain.ErrDataFormat, err)
	}

	h.mutex.RLock()
	if h.cached != nil && h.version == version {
		dataset := h.cached
		h.mutex.RUnlock()
		return dataset, nil
	}
	h.mutex.RUnlock()

	raw, err := h.PriceSourceRepository.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read price source: %w", domain.ErrDataFormat, err)
	}
	dataset, err := BuildDataset(raw)
	if err != nil {
		return nil, err
	}

	h.mutex.Lock()
	h.version = version
	h.cached = dataset
	h.mutex.Unlock()

	log.Infow("data loaded successfully",
		"instruments", len(dataset.Symbols),
		"rows", dataset.NumRows(),
		"version", version,
	)

	return dataset, nil
}

type parsedRow struct {
	date   time.Time
	prices map[string]*float64
}

// BuildDataset validates raw rows, orders them by date and forward fills
// each instrument column
func BuildDataset(raw *domain.RawTable) (*domain.PriceDataset, error) {
	if raw == nil || len(raw.Columns) == 0 || len(raw.Rows) == 0 {
		return nil, fmt.Errorf("%w: input is empty", domain.ErrDataFormat)
	}

	hasDate := false
	seen := map[string]bool{}
	symbols := []string{}
	for _, column := range raw.Columns {
		if seen[column] {
			return nil, fmt.Errorf("%w: duplicate column %q", domain.ErrDataFormat, column)
		}
		seen[column] = true
		if column == domain.DateColumn {
			hasDate = true
			continue
		}
		symbols = append(symbols, column)
	}
	if !hasDate {
		return nil, fmt.Errorf("%w: %s column not found", domain.ErrDataFormat, domain.DateColumn)
	}
	if len(symbols) == 0 {
		return nil, fmt.Errorf("%w: no instrument columns", domain.ErrDataFormat)
	}

	rows := []parsedRow{}
	for i, r := range raw.Rows {
		date, err := util.ParseDate(r[domain.DateColumn])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", domain.ErrDataFormat, i+1, err)
		}
		prices := map[string]*float64{}
		for _, symbol := range symbols {
			price, err := parsePrice(r[symbol])
			if err != nil {
				return nil, fmt.Errorf("%w: row %d, %s: %w", domain.ErrDataFormat, i+1, symbol, err)
			}
			prices[symbol] = price
		}
		rows = append(rows, parsedRow{
			date:   date,
			prices: prices,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].date.Before(rows[j].date)
	})

	dataset := domain.PriceDataset{
		Dates:   make([]time.Time, len(rows)),
		Symbols: symbols,
		Prices:  map[string][]*float64{},
	}
	for _, symbol := range symbols {
		dataset.Prices[symbol] = make([]*float64, len(rows))
	}
	for i, r := range rows {
		if i > 0 && r.date.Equal(rows[i-1].date) {
			return nil, fmt.Errorf("%w: duplicate date %s", domain.ErrDataFormat, util.FormatDate(r.date))
		}
		dataset.Dates[i] = r.date
		for _, symbol := range symbols {
			dataset.Prices[symbol][i] = r.prices[symbol]
		}
	}

	return ForwardFill(dataset), nil
}

var missingTokens = map[string]bool{
	"":     true,
	"na":   true,
	"n/a":  true,
	"nan":  true,
	"null": true,
	"none": true,
}

func parsePrice(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if missingTokens[strings.ToLower(s)] {
		return nil, nil
	}
	price, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q", s)
	}
	if math.IsInf(price, 0) || price < 0 {
		return nil, fmt.Errorf("price must be a non-negative number, got %q", s)
	}
	return &price, nil
}

// ForwardFill replaces each missing price with the closest earlier one.
// Leading gaps have nothing to fill from and stay missing. The input is
// left untouched
func ForwardFill(dataset domain.PriceDataset) *domain.PriceDataset {
	out := &domain.PriceDataset{
		Dates:   append([]time.Time{}, dataset.Dates...),
		Symbols: append([]string{}, dataset.Symbols...),
		Prices:  map[string][]*float64{},
	}
	for symbol, prices := range dataset.Prices {
		filled := make([]*float64, len(prices))
		var last *float64
		for i, p := range prices {
			if p != nil {
				v := *p
				last = &v
			}
			filled[i] = last
		}
		out.Prices[symbol] = filled
	}

	return out
}
