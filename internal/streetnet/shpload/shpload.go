// Package shpload is an optional adapter that reads TIGER/Line-style road
// shapefiles into streetnet.ProviderSegment values. It is not part of the
// core StreetNetwork/Query contract: acquiring and shipping the shapefile
// itself is out of scope, but once one is on disk this package turns it
// into the provider shape streetnet.FromProvider expects.
package shpload

import (
	"strconv"
	"strings"

	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/wardrecon/boundary-engine/internal/geomath"
	"github.com/wardrecon/boundary-engine/internal/streetnet"
)

// NameField is the shapefile attribute column read as the canonical street
// name. TIGER/Line roads (edges) shapefiles call this FULLNAME.
const NameField = "FULLNAME"

// AltNameField is the shapefile attribute column read as an alternate name,
// when present. TIGER/Line edges carry both FULLNAME (the expanded,
// direction- and suffix-qualified name) and a bare NAME field that often
// differs from it only cosmetically but occasionally carries a genuinely
// distinct alias for the same centerline.
const AltNameField = "NAME"

// ClassField is the shapefile attribute column read as the road class.
// TIGER/Line edges tag every record with an MTFCC (MAF/TIGER Feature Class
// Code); S1100-S1400 cover the primary/secondary/local road hierarchy this
// package treats as HighwayClass.
const ClassField = "MTFCC"

// Load reads every PolyLine shape in path and returns one ProviderSegment
// per part, tagged with cityFIPS. Shapes with no populated NameField are
// skipped; their geometry carries no disambiguating street name the
// matcher could use. AltNameField and ClassField are read on a best-effort
// basis: a shapefile lacking either column still loads, just without
// alt-names or a highway class.
func Load(path, cityFIPS string) ([]streetnet.ProviderSegment, error) {
	reader, err := shp.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "shpload: open %s", path)
	}
	defer func() { _ = reader.Close() }()

	fields := reader.Fields()
	nameIdx := fieldIndex(fields, NameField)
	if nameIdx < 0 {
		return nil, eris.Errorf("shpload: %s has no %s field", path, NameField)
	}
	altNameIdx := fieldIndex(fields, AltNameField)
	classIdx := fieldIndex(fields, ClassField)

	var segments []streetnet.ProviderSegment
	var skipped int

	for reader.Next() {
		n, shape := reader.Shape()

		name := strings.TrimSpace(strings.TrimRight(reader.Attribute(nameIdx), "\x00"))
		if name == "" {
			skipped++
			continue
		}

		pl, ok := shape.(*shp.PolyLine)
		if !ok {
			skipped++
			continue
		}

		var altNames []string
		if altNameIdx >= 0 {
			if alt := strings.TrimSpace(strings.TrimRight(reader.Attribute(altNameIdx), "\x00")); alt != "" && !strings.EqualFold(alt, name) {
				altNames = []string{alt}
			}
		}
		highwayClass := ""
		if classIdx >= 0 {
			highwayClass = strings.TrimSpace(strings.TrimRight(reader.Attribute(classIdx), "\x00"))
		}

		for partIdx, line := range polyLineParts(pl) {
			if len(line) < 2 {
				continue
			}
			segments = append(segments, streetnet.ProviderSegment{
				ID:           shapeID(path, n, partIdx),
				Name:         name,
				AltNames:     altNames,
				StreetType:   streetTypeFromMTFCC(highwayClass),
				HighwayClass: highwayClass,
				Geometry:     line,
				CityFIPS:     cityFIPS,
			})
		}
	}

	if skipped > 0 {
		zap.L().Debug("shpload: skipped shapes with no usable name or geometry",
			zap.String("path", path), zap.Int("skipped", skipped))
	}

	if len(segments) == 0 {
		return nil, eris.Errorf("shpload: %s produced zero usable segments", path)
	}

	return segments, nil
}

func fieldIndex(fields []shp.Field, name string) int {
	for i, f := range fields {
		if strings.EqualFold(strings.TrimRight(f.String(), "\x00"), name) {
			return i
		}
	}
	return -1
}

// streetTypeFromMTFCC maps the road-hierarchy portion of a TIGER/Line MTFCC
// code to a coarse street type. Only the primary/secondary/local split
// (S1100/S1200/S1400) is distinguished; ramps, alleys, and the rest of the
// S1xxx range fall back to "road".
func streetTypeFromMTFCC(mtfcc string) string {
	switch mtfcc {
	case "S1100":
		return "primary"
	case "S1200":
		return "secondary"
	case "S1400":
		return "local"
	case "":
		return ""
	default:
		return "road"
	}
}

func polyLineParts(pl *shp.PolyLine) [][]geomath.Position {
	if pl == nil || pl.NumParts == 0 || len(pl.Points) == 0 {
		return nil
	}

	parts := make([][]geomath.Position, 0, pl.NumParts)
	for i := int32(0); i < pl.NumParts; i++ {
		start := pl.Parts[i]
		var end int32
		if i+1 < pl.NumParts {
			end = pl.Parts[i+1]
		} else {
			end = int32(len(pl.Points))
		}

		line := make([]geomath.Position, 0, end-start)
		for j := start; j < end; j++ {
			pt := pl.Points[j]
			line = append(line, geomath.Position{Lon: pt.X, Lat: pt.Y})
		}
		parts = append(parts, line)
	}
	return parts
}

func shapeID(path string, shapeNum, partIdx int) string {
	return strings.Join([]string{path, strconv.Itoa(shapeNum), strconv.Itoa(partIdx)}, "#")
}
