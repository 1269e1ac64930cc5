package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"itinerary-route-service/internal/domain"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// dayFile is one day as read from disk. JSON and YAML share the field names.
type dayFile struct {
	TripID      string                         `json:"trip_id" yaml:"trip_id"`
	DayNumber   int                            `json:"day_number" yaml:"day_number"`
	Activities  []domain.Activity              `json:"activities" yaml:"activities"`
	Constraints domain.OptimizationConstraints `json:"constraints" yaml:"constraints"`
}

// readDayFile loads path, choosing the decoder from its extension.
func readDayFile(path string) (*dayFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read day file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseDayFile(data, "yaml")
	default:
		return parseDayFile(data, "json")
	}
}

// parseDayFile strictly decodes a single day. Unknown fields are rejected in both formats.
func parseDayFile(data []byte, format string) (*dayFile, error) {
	var f dayFile

	switch format {
	case "yaml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("parse day file: yaml: %w", err)
		}
	case "json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("parse day file: json: %w", err)
		}
		if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
			return nil, errors.New("parse day file: json: file must contain only one object")
		}
	default:
		return nil, fmt.Errorf("parse day file: unknown format %q", format)
	}

	return &f, nil
}
