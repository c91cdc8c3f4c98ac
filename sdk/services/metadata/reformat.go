// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package metadata

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ega-tools/ega-cli-sdk/sdk/config"
)

// Reformat collects samples under InputDir, joins the Sample_File map when
// present and writes the CSV to OutputFile, creating its parent directory.
func (s *MetadataService) Reformat(ctx context.Context, req ReformatRequest) (ReformatResult, error) {
	if req.InputDir == "" {
		return ReformatResult{}, config.Validationf("input directory is required")
	}
	if req.OutputFile == "" {
		return ReformatResult{}, config.Validationf("output file is required")
	}
	if info, err := os.Stat(req.InputDir); err != nil || !info.IsDir() {
		return ReformatResult{}, config.Validationf("couldn't find the input directory: %s", req.InputDir)
	}

	samples, err := s.CollectSamples(ctx, req.InputDir)
	if err != nil {
		return ReformatResult{}, err
	}
	res := ReformatResult{OutputFile: req.OutputFile, Samples: len(samples)}

	mapFile := filepath.Join(append([]string{req.InputDir}, SampleMapPath...)...)
	if f, err := os.Open(mapFile); err == nil {
		res.Joined, res.Unmatched, err = s.JoinFiles(samples, f)
		f.Close()
		if err != nil {
			return res, err
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return res, fmt.Errorf("failed to open %s: %w", mapFile, err)
	}

	if dir := filepath.Dir(req.OutputFile); dir != "" {
		if err := os.MkdirAll(dir, 0o770); err != nil {
			return res, fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	out, err := os.Create(req.OutputFile)
	if err != nil {
		return res, fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	res.Columns = Columns(samples)
	if err := WriteCSV(out, res.Columns, samples); err != nil {
		return res, err
	}
	s.log.Info().Int("samples", res.Samples).Int("joined", res.Joined).Str("output", req.OutputFile).Msg("metadata reformatted")
	return res, out.Close()
}
