package readme

import (
	"errors"
	"fmt"
	"strings"
)

// The marker pair delimiting the machine-written market region.
const (
	StartMarker = "<!-- MARKET:START -->"
	EndMarker   = "<!-- MARKET:END -->"
)

var (
	ErrMarkerMissing   = errors.New("marker missing")
	ErrMarkerDuplicate = errors.New("marker duplicated")
	ErrMarkerOrder     = errors.New("markers out of order")
)

// region is the byte span between the markers, exclusive: start sits
// just after StartMarker, end at the beginning of EndMarker.
type region struct {
	start int
	end   int
}

// findRegion locates the marker pair. Each marker must appear exactly
// once, start before end.
func findRegion(doc string) (region, error) {
	start, err := markerIndex(doc, StartMarker)
	if err != nil {
		return region{}, err
	}
	end, err := markerIndex(doc, EndMarker)
	if err != nil {
		return region{}, err
	}

	if end < start {
		return region{}, fmt.Errorf("%s before %s: %w", EndMarker, StartMarker, ErrMarkerOrder)
	}

	return region{start: start + len(StartMarker), end: end}, nil
}

func markerIndex(doc, marker string) (int, error) {
	idx := strings.Index(doc, marker)
	if idx < 0 {
		return 0, fmt.Errorf("%s: %w", marker, ErrMarkerMissing)
	}
	if strings.Contains(doc[idx+len(marker):], marker) {
		return 0, fmt.Errorf("%s: %w", marker, ErrMarkerDuplicate)
	}
	return idx, nil
}
