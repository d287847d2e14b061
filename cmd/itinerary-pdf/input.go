package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/vigovia/itinerary-pdf/internal/domain"
)

// maxInputBytes matches the server's default body cap.
const maxInputBytes = 10 << 20

var errInput = errors.New("cannot read itinerary")

// readItinerary loads an itinerary from a JSON or YAML file. "-" reads stdin,
// which may hold either format. YAML goes through JSON so the same field
// names and numeric rules apply as on the HTTP API.
func readItinerary(path string, stdin io.Reader) (*domain.Itinerary, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(io.LimitReader(stdin, maxInputBytes+1))
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errInput, err)
	}
	if len(data) > maxInputBytes {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", errInput, path, maxInputBytes)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" || (path == "-" && !json.Valid(data)) {
		if data, err = yaml.YAMLToJSON(data); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", errInput, path, err)
		}
	}

	var doc *domain.Itinerary
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errInput, path, err)
	}
	return doc, nil
}
