// Package input loads vendor catalogs and scenarios from JSON, YAML or
// HCL files and validates them before they reach the engine.
package input

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"support-cost/core/types"
	"support-cost/internal/errors"
	"support-cost/internal/logging"
)

// Format is an input file encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
)

// DetectFormat picks the decoder from the file extension
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".hcl":
		return FormatHCL, nil
	}
	return "", errors.NotSupported(fmt.Sprintf("input file type %q", filepath.Ext(path))).
		WithContext("path", path)
}

// Loader reads and validates input files
type Loader struct {
	validator       *Validator
	logger          *zap.Logger
	defaultCurrency types.Currency
}

// Option configures a Loader
type Option func(*Loader)

// WithLogger sets the loader's logger
func WithLogger(l *zap.Logger) Option {
	return func(ld *Loader) {
		ld.logger = l
	}
}

// WithDefaultCurrency sets the reporting currency for scenarios that omit one
func WithDefaultCurrency(c types.Currency) Option {
	return func(ld *Loader) {
		ld.defaultCurrency = c
	}
}

// NewLoader creates a loader
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		validator:       NewValidator(),
		logger:          logging.Logger,
		defaultCurrency: types.CurrencyUSD,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = zap.NewNop()
	}
	return l
}

// LoadVendors reads a vendor catalog. The file holds one vendor or a list.
func (l *Loader) LoadVendors(path string) ([]types.Vendor, error) {
	format, data, err := l.read(path)
	if err != nil {
		return nil, err
	}

	var vendors []types.Vendor
	switch format {
	case FormatJSON:
		vendors, err = decodeJSONList[types.Vendor](data)
	case FormatYAML:
		vendors, err = decodeYAMLList[types.Vendor](data)
	case FormatHCL:
		vendors, err = decodeHCLVendors(data, path)
	}
	if err != nil {
		return nil, annotate(err, path)
	}

	seen := make(map[string]bool, len(vendors))
	for i := range vendors {
		if err := l.validator.Struct(&vendors[i]); err != nil {
			return nil, annotate(err, path).WithContext("vendor", vendors[i].ID)
		}
		if seen[vendors[i].ID] {
			return nil, errors.Newf(errors.TypeInput, "duplicate vendor id %q", vendors[i].ID).
				WithContext("path", path)
		}
		seen[vendors[i].ID] = true
	}

	l.logger.Debug("loaded vendors",
		zap.String("path", path),
		zap.Int("count", len(vendors)),
	)
	return vendors, nil
}

// LoadScenarios reads scenarios. The file holds one scenario or a list.
func (l *Loader) LoadScenarios(path string) ([]types.Scenario, error) {
	format, data, err := l.read(path)
	if err != nil {
		return nil, err
	}

	var scenarios []types.Scenario
	switch format {
	case FormatJSON:
		scenarios, err = decodeJSONList[types.Scenario](data)
	case FormatYAML:
		scenarios, err = decodeYAMLList[types.Scenario](data)
	case FormatHCL:
		scenarios, err = decodeHCLScenarios(data, path)
	}
	if err != nil {
		return nil, annotate(err, path)
	}

	for i := range scenarios {
		s := &scenarios[i]
		if s.Currency == "" {
			s.Currency = l.defaultCurrency
		}
		if s.Name == "" {
			s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			if len(scenarios) > 1 {
				s.Name = fmt.Sprintf("%s #%d", s.Name, i+1)
			}
		}
		if err := l.validator.Struct(s); err != nil {
			return nil, annotate(err, path).WithContext("scenario", s.Name)
		}
	}

	l.logger.Debug("loaded scenarios",
		zap.String("path", path),
		zap.Int("count", len(scenarios)),
	)
	return scenarios, nil
}

func (l *Loader) read(path string) (Format, []byte, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return "", nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, errors.Wrap(errors.TypeInput, "failed to read input file", err).
			WithContext("path", path)
	}
	return format, data, nil
}

// annotate attaches the file path to err, converting foreign errors
func annotate(err error, path string) *errors.Error {
	var e *errors.Error
	if !stderrors.As(err, &e) {
		e = errors.Parsing("failed to decode input file", err)
	}
	return e.WithContext("path", path)
}
