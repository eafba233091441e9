// Package legaldesc tokenizes free-form legal descriptions of ward and
// district boundaries into an ordered list of structured boundary
// segments (spec.md §4.2), and defines the immutable value types that flow
// from a parsed description into the matcher.
package legaldesc

import (
	"time"

	"github.com/wardrecon/boundary-engine/internal/streetname"
)

// SourceDocumentType is the closed set of provenance tags for a legal
// description's origin document.
type SourceDocumentType string

const (
	SourcePDFRedistrictingPlan SourceDocumentType = "pdf_redistricting_plan"
	SourcePDFWardMap           SourceDocumentType = "pdf_ward_map"
	SourceOrdinanceText        SourceDocumentType = "ordinance_text"
	SourceResolutionText       SourceDocumentType = "resolution_text"
	SourceCharterSection       SourceDocumentType = "charter_section"
	SourceWebPage              SourceDocumentType = "web_page"
	SourceGISMetadata          SourceDocumentType = "gis_metadata"
)

// SourceDocument records where a legal description came from.
type SourceDocument struct {
	Type          SourceDocumentType `json:"type"`
	URI           string             `json:"uri"`
	Title         string             `json:"title"`
	EffectiveDate *time.Time         `json:"effective_date,omitempty"`
	RetrievedAt   time.Time          `json:"retrieved_at"`
	ContentHash   string             `json:"content_hash"`
	Notes         string             `json:"notes,omitempty"`
}

// ReferenceType is the closed set of boundary-segment kinds.
type ReferenceType string

const (
	ReferenceStreetCenterline  ReferenceType = "street_centerline"
	ReferenceStreetEdge        ReferenceType = "street_edge"
	ReferenceMunicipalBoundary ReferenceType = "municipal_boundary"
	ReferenceNaturalFeature    ReferenceType = "natural_feature"
	ReferenceRailroad          ReferenceType = "railroad"
	ReferencePropertyLine      ReferenceType = "property_line"
	ReferenceCreekStream       ReferenceType = "creek_stream"
	ReferenceHighway           ReferenceType = "highway"
	ReferenceCoordinate        ReferenceType = "coordinate"
)

// ParseConfidence is the closed set of per-segment confidence tiers.
type ParseConfidence string

const (
	ConfidenceHigh   ParseConfidence = "high"
	ConfidenceMedium ParseConfidence = "medium"
	ConfidenceLow    ParseConfidence = "low"
)

// BoundarySegmentDescription is one directed edge of a ward perimeter as
// described in legal prose. An intersection starting point is encoded with
// ReferenceType == ReferenceCoordinate and
// FeatureName == "intersection:STREET1:STREET2".
type BoundarySegmentDescription struct {
	Index           int                          `json:"index"`
	ReferenceType   ReferenceType                `json:"reference_type"`
	FeatureName     string                       `json:"feature_name"`
	Direction       streetname.CardinalDirection `json:"direction,omitempty"`
	From            string                       `json:"from,omitempty"`
	To              string                       `json:"to,omitempty"`
	RawText         string                       `json:"raw_text"`
	ParseConfidence ParseConfidence              `json:"parse_confidence"`
}

// WardLegalDescription is the full boundary description for one ward.
// Invariant: Segments[i].Index == i for all i.
type WardLegalDescription struct {
	CityFIPS   string                        `json:"city_fips"`
	CityName   string                        `json:"city_name"`
	State      string                        `json:"state"`
	WardID     string                        `json:"ward_id"`
	WardName   string                        `json:"ward_name"`
	Segments   []BoundarySegmentDescription  `json:"segments"`
	Source     SourceDocument                `json:"source"`
	Population *int                          `json:"population,omitempty"`
	Notes      string                        `json:"notes,omitempty"`
}
