package importer

import (
	"encoding/xml"
	"errors"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the syntax of a definitions file.
type Format string

const (
	FormatXML  Format = "xml"
	FormatYAML Format = "yaml"
)

// DetectFormat picks the format from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return FormatXML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// Parse reads definitions from r. Descriptions are returned as written; file
// references are resolved by the Importer.
func Parse(r io.Reader, f Format) ([]Definition, error) {
	var (
		raws []rawDefinition
		err  error
	)
	switch f {
	case FormatXML:
		raws, err = parseXML(r)
	case FormatYAML:
		raws, err = parseYAML(r)
	default:
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, err
	}

	defs := make([]Definition, 0, len(raws))
	for i, raw := range raws {
		d, err := raw.definition(i)
		if err != nil {
			return nil, err
		}
		defs = append(defs, d)
	}
	return defs, nil
}

type xmlGlossary struct {
	XMLName     xml.Name        `xml:"glossary"`
	Definitions []xmlDefinition `xml:"definition"`
}

// Markup inside a description must be wrapped in CDATA; child elements are
// not part of the text.
type xmlDefinition struct {
	Terms        []string `xml:"term"`
	SeqNums      []string `xml:"seq_num"`
	Slugs        []string `xml:"slug"`
	Descriptions []string `xml:"description"`
	SeeAlso      []string `xml:"see_also"`
}

func parseXML(r io.Reader) ([]rawDefinition, error) {
	var doc xmlGlossary
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Join(ErrFormat, err)
	}

	out := make([]rawDefinition, 0, len(doc.Definitions))
	for _, d := range doc.Definitions {
		out = append(out, rawDefinition(d))
	}
	return out, nil
}

type yamlGlossary struct {
	Definitions []yamlDefinition `yaml:"definitions"`
}

type yamlDefinition struct {
	SeqNum      *int     `yaml:"seq_num"`
	Slug        *string  `yaml:"slug"`
	Term        string   `yaml:"term"`
	Description string   `yaml:"description"`
	SeeAlso     []string `yaml:"see_also"`
}

func parseYAML(r io.Reader) ([]rawDefinition, error) {
	var doc yamlGlossary
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrFormat, err)
	}

	out := make([]rawDefinition, 0, len(doc.Definitions))
	for _, d := range doc.Definitions {
		var raw rawDefinition
		if d.Term != "" {
			raw.Terms = []string{d.Term}
		}
		if d.SeqNum != nil {
			raw.SeqNums = []string{strconv.Itoa(*d.SeqNum)}
		}
		if d.Slug != nil {
			raw.Slugs = []string{*d.Slug}
		}
		if d.Description != "" {
			raw.Descriptions = []string{d.Description}
		}
		raw.SeeAlso = d.SeeAlso
		out = append(out, raw)
	}
	return out, nil
}
