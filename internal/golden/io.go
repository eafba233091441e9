package golden

import (
	"encoding/json"

	"github.com/rotisserie/eris"

	"github.com/wardrecon/boundary-engine/internal/geojson"
	"github.com/wardrecon/boundary-engine/internal/legaldesc"
)

// goldenVectorDocument mirrors the stable, versioned golden-vector file
// format from spec.md §6.
type goldenVectorDocument struct {
	CityFIPS          string                          `json:"city_fips"`
	CityName          string                          `json:"city_name"`
	State             string                          `json:"state"`
	ExpectedWardCount int                              `json:"expected_ward_count"`
	LegalDescriptions []legaldesc.WardLegalDescription `json:"legal_descriptions"`
	ExpectedPolygons  json.RawMessage                  `json:"expected_polygons"`
	VerifiedAt        string                           `json:"verified_at"`
	VerificationSource string                          `json:"verification_source"`
	Notes             string                           `json:"notes,omitempty"`
	Metadata          *goldenVectorMetadataDocument     `json:"metadata,omitempty"`
}

type goldenVectorMetadataDocument struct {
	PrecisionLevel     PrecisionLevel     `json:"precision_level"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	DataQualityWarning string             `json:"data_quality_warning,omitempty"`
}

// LoadGoldenVector parses the spec.md §6 golden-vector JSON document.
// Deserialization fails fast if city_fips, city_name, or expected_polygons
// are missing, per spec.
func LoadGoldenVector(data []byte) (GoldenVector, []legaldesc.WardLegalDescription, error) {
	var doc goldenVectorDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return GoldenVector{}, nil, eris.Wrap(err, "golden: unmarshal golden-vector document")
	}

	if doc.CityFIPS == "" {
		return GoldenVector{}, nil, eris.New("golden: city_fips is required")
	}
	if doc.CityName == "" {
		return GoldenVector{}, nil, eris.New("golden: city_name is required")
	}
	if len(doc.ExpectedPolygons) == 0 {
		return GoldenVector{}, nil, eris.New("golden: expected_polygons is required")
	}

	rings, props, err := geojson.DecodeFeatureArray(doc.ExpectedPolygons)
	if err != nil {
		return GoldenVector{}, nil, eris.Wrap(err, "golden: decode expected_polygons")
	}

	expected := make([]ExpectedWardPolygon, len(rings))
	for i, ring := range rings {
		expected[i] = ExpectedWardPolygon{
			WardID:             props[i].WardID,
			VerifiedAt:         doc.VerifiedAt,
			VerificationSource: doc.VerificationSource,
			Notes:              doc.Notes,
			Ring:               ring,
		}
	}

	gv := GoldenVector{
		CityFIPS:          doc.CityFIPS,
		CityName:          doc.CityName,
		State:             doc.State,
		ExpectedWardCount: doc.ExpectedWardCount,
		ExpectedPolygons:  expected,
	}
	if doc.Metadata != nil {
		gv.Metadata = GoldenVectorMetadata{
			PrecisionLevel:     doc.Metadata.PrecisionLevel,
			VerificationStatus: doc.Metadata.VerificationStatus,
		}
	}

	return gv, doc.LegalDescriptions, nil
}
