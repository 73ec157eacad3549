// Package sssom reads the SSSOM (Simple Standard for Sharing Ontological
// Mappings) crosswalk files that define MIDS for each discipline.
//
// A discipline is described by two files sharing a stem:
//
//	v0.1_<discipline>.sssom.tsv   mapping rows, one per matcher
//	v0.1_<discipline>.sssom.yml   mapping set metadata, including curie_map
//
// Each TSV row links a MIDS element (subject_id) to a record term
// (object_id) through a predicate:
//
//	subject_id              predicate_id        object_id          subject_category  object_match_field
//	mids:PhysicalSpecimenId skos:exactMatch     dwc:catalogNumber  mids0
//	mids:QuantitativeLocation owl:intersectionOf dwc:decimalLatitude mids2           dwc:decimalLatitude|dwc:decimalLongitude
//
// The files for the shipped disciplines are embedded; see Embedded.
// This package only parses. Turning rows into matchers happens in the
// engine package.
package sssom
