// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package metadata

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html/charset"
)

const samplesDir = "xmls/samples"

func isSamplesDir(p string) bool {
	p = filepath.ToSlash(p)
	return p == samplesDir || strings.HasSuffix(p, "/"+samplesDir)
}

// CollectSamples walks inputDir in lexical order and parses every regular
// file directly inside a directory ending in xmls/samples.
func (s *MetadataService) CollectSamples(ctx context.Context, inputDir string) ([]Sample, error) {
	var samples []Sample
	err := filepath.WalkDir(inputDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.IsDir() || !isSamplesDir(p) {
			return nil
		}

		entries, err := os.ReadDir(p)
		if err != nil {
			return err
		}
		for _, e := range entries {
			if !e.Type().IsRegular() {
				continue
			}
			file := filepath.Join(p, e.Name())
			parsed, err := parseSampleFile(file)
			if err != nil {
				return err
			}
			s.log.Debug().Str("file", file).Int("samples", len(parsed)).Msg("parsed sample file")
			samples = append(samples, parsed...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect samples: %w", err)
	}
	return samples, nil
}

func parseSampleFile(path string) ([]Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseSamples(f)
}

// ParseSamples reads one XML document; every child of its root element is a
// sample.
func ParseSamples(r io.Reader) ([]Sample, error) {
	var root xmlNode
	dec := xml.NewDecoder(r)
	// non UTF-8 declarations, e.g. ISO-8859-1
	dec.CharsetReader = charset.NewReaderLabel
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("invalid sample xml: %w", err)
	}

	samples := make([]Sample, 0, len(root.Nodes))
	for _, child := range root.Nodes {
		samples = append(samples, flatten(child))
	}
	return samples, nil
}

func flatten(n xmlNode) Sample {
	attrs := make(map[string]string, len(n.Attrs))
	for _, a := range n.Attrs {
		if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
			continue
		}
		attrs[a.Name.Local] = a.Value
	}

	for _, ident := range n.children("IDENTIFIERS") {
		if v, ok := ident.childText("PRIMARY_ID"); ok {
			attrs[KeyPrimaryID] = v
		}
		if v, ok := ident.childText("SUBMITTER_ID"); ok {
			attrs[KeySubmitterID] = v
		}
	}
	for _, name := range n.children("SAMPLE_NAME") {
		if v, ok := name.childText("COMMON_NAME"); ok {
			attrs[KeyOrganism] = v
		}
	}
	for _, group := range n.children("SAMPLE_ATTRIBUTES") {
		for _, attr := range group.children("SAMPLE_ATTRIBUTE") {
			tag, ok := attr.childText("TAG")
			if !ok || tag == "" {
				continue
			}
			val, _ := attr.childText("VALUE")
			attrs[tag] = val
		}
	}
	return Sample{Attributes: attrs}
}

func (n xmlNode) children(name string) []xmlNode {
	var out []xmlNode
	for _, c := range n.Nodes {
		if c.XMLName.Local == name {
			out = append(out, c)
		}
	}
	return out
}

// childText is the trimmed text of the first child called name.
func (n xmlNode) childText(name string) (string, bool) {
	for _, c := range n.Nodes {
		if c.XMLName.Local == name {
			return strings.TrimSpace(c.Text), true
		}
	}
	return "", false
}
