package naming

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arwhyte/locfetch/internal/config"
)

// indexWidth is the minimum digit count in image filenames. It is fixed
// regardless of a group's zero-fill width, which only affects the URL.
const indexWidth = 4

// ImageName returns the local filename for one retrieved image. Part is an
// optional group label ("" omits the segment).
func ImageName(spec config.NamingSpec, index int, part string) string {
	segments := baseSegments(spec)
	if part != "" {
		segments = append(segments, part)
	}
	segments = append(segments, fmt.Sprintf("%0*d", indexWidth, index))
	return strings.Join(segments, "-") + "." + spec.Extension
}

// LogName returns the filename for the run log: the base segments with a
// .log extension, no index and no part.
func LogName(spec config.NamingSpec) string {
	return strings.Join(baseSegments(spec), "-") + ".log"
}

// baseSegments copies the spec's segments and appends the optional year and
// volume. Both filename variants build on this so they cannot drift.
func baseSegments(spec config.NamingSpec) []string {
	segments := append([]string(nil), spec.Segments...)
	if spec.Year != 0 {
		segments = append(segments, strconv.Itoa(spec.Year))
	}
	if spec.Volume != "" {
		segments = append(segments, "vol_"+spec.Volume)
	}
	return segments
}
