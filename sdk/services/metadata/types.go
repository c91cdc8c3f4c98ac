// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package metadata

import "encoding/xml"

const (
	KeyPrimaryID   = "Primary Identifier"
	KeySubmitterID = "Submitter ID"
	KeyOrganism    = "Organism"
	KeyFiles       = "files"

	// files cell separator
	FileSeparator = ";"
)

// SampleMapPath is the Sample_File map location relative to the input dir.
var SampleMapPath = []string{"delimited_maps", "Sample_File.map"}

type ReformatRequest struct {
	InputDir   string
	OutputFile string
}

type ReformatResult struct {
	OutputFile string   `json:"outputFile" yaml:"outputFile"`
	Samples    int      `json:"samples"    yaml:"samples"`
	Columns    []string `json:"columns"    yaml:"columns"`
	Joined     int      `json:"joined"     yaml:"joined"`
	Unmatched  int      `json:"unmatched"  yaml:"unmatched"`
}

// Sample is one flattened SAMPLE element.
type Sample struct {
	Attributes map[string]string
	Files      []FileEntry
}

// FileEntry is one Sample_File map line.
type FileEntry struct {
	SubmitterID     string `json:"Submitter ID"`
	SampleAccession string `json:"sample_accession"`
	FileName        string `json:"file_name"`
	FileAccession   string `json:"file_accession"`
}

type xmlNode struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Text    string     `xml:",chardata"`
	Nodes   []xmlNode  `xml:",any"`
}
