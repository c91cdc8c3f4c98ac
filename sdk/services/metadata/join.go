// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package metadata

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// JoinFiles appends each map line to the first sample with a matching
// Submitter ID. Blank lines are ignored, lines with fewer than four fields
// are logged and skipped. It returns the matched and unmatched line counts.
func (s *MetadataService) JoinFiles(samples []Sample, r io.Reader) (int, int, error) {
	joined, unmatched := 0, 0
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 4 {
			s.log.Warn().Int("line", line).Str("content", sc.Text()).Msg("skipping short Sample_File line")
			continue
		}
		entry := FileEntry{
			SubmitterID:     fields[0],
			SampleAccession: fields[1],
			FileName:        fields[2],
			FileAccession:   fields[3],
		}

		matched := false
		for i := range samples {
			if id, ok := samples[i].Attributes[KeySubmitterID]; ok && id == entry.SubmitterID {
				samples[i].Files = append(samples[i].Files, entry)
				matched = true
				break
			}
		}
		if matched {
			joined++
		} else {
			unmatched++
		}
	}
	if err := sc.Err(); err != nil {
		return joined, unmatched, fmt.Errorf("failed to read Sample_File map: %w", err)
	}
	return joined, unmatched, nil
}
