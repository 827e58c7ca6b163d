// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvpca/internal/dataset"
	"github.com/katalvlaran/lvpca/pca"
)

const trainCSV = `x,y
0,0
2,0
0,0
2,0
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()

	return out.String(), err
}

func TestFit_YAML(t *testing.T) {
	data := writeFile(t, "train.csv", trainCSV)
	out, err := run(t, "fit", "--data", data, "--format", "yaml", "--log-level", "error")
	require.NoError(t, err)

	var s summary
	require.NoError(t, yaml.Unmarshal([]byte(out), &s))
	require.Equal(t, 4, s.Samples)
	require.Equal(t, 2, s.InputDims)
	require.Equal(t, 1, s.OutputDims)
	require.Equal(t, []float64{1, 0}, s.Means)
	require.InDelta(t, 1.0, s.Eigenvalues[0], 1e-12)
	require.Equal(t, []string{"x", "y"}, s.ColumnLabels)
	require.Equal(t, "svd", s.Provider)
}

func TestFit_Table(t *testing.T) {
	data := writeFile(t, "train.csv", trainCSV)
	out, err := run(t, "fit", "--data", data, "--provider", "jacobi", "--normalization", "sample")
	require.NoError(t, err)
	require.Contains(t, out, "output dims")
	require.Contains(t, out, "jacobi")
	require.Contains(t, out, "[1.33333]")
}

func TestTransform_WritesCSV(t *testing.T) {
	data := writeFile(t, "train.csv", trainCSV)
	input := writeFile(t, "in.csv", "3,0\n1,0\n")
	outPath := filepath.Join(t.TempDir(), "out.csv")

	_, err := run(t, "transform", "--data", data, "--input", input, "--kind", "whitening", "--out", outPath)
	require.NoError(t, err)

	tab, err := dataset.ReadFile(outPath)
	require.NoError(t, err)
	require.Equal(t, []string{"pc0"}, tab.Header)
	r, c := tab.Data.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 1, c)
	require.InDelta(t, 2.0, abs(tab.Data.At(0, 0)), 1e-12)
	require.InDelta(t, 0.0, tab.Data.At(1, 0), 1e-12)
}

func TestTransform_Errors(t *testing.T) {
	data := writeFile(t, "train.csv", trainCSV)

	_, err := run(t, "transform", "--data", data, "--input", writeFile(t, "in.csv", "1,2,3\n"))
	require.ErrorIs(t, err, pca.ErrDimensionMismatch)

	_, err = run(t, "transform", "--data", data, "--input", writeFile(t, "in.csv", "1,2\n"), "--kind", "sphering")
	require.Error(t, err)
	require.Contains(t, err.Error(), "sphering")
}

func TestCheck(t *testing.T) {
	data := writeFile(t, "train.csv", trainCSV)
	input := writeFile(t, "pts.csv", "1,5\n1,0\n")
	out, err := run(t, "check", "--data", data, "--input", input)
	require.NoError(t, err)
	require.Equal(t, "row,belongs\n0,false\n1,true\n", out)
}

func TestConfigFileAndFlagPrecedence(t *testing.T) {
	data := writeFile(t, "train.csv", trainCSV)
	cfg := writeFile(t, "pcatool.yaml", "provider: eigensym\ncenter: false\n")

	out, err := run(t, "fit", "--config", cfg, "--data", data, "--format", "yaml", "--provider", "svd")
	require.NoError(t, err)
	var s summary
	require.NoError(t, yaml.Unmarshal([]byte(out), &s))
	require.Equal(t, "svd", s.Provider, "flags override the file")
	require.False(t, s.Centered, "file overrides defaults")

	_, err = run(t, "fit", "--config", writeFile(t, "bad.yaml", "provider: qr\n"), "--data", data)
	require.Error(t, err)
}

func TestMissingData(t *testing.T) {
	_, err := run(t, "fit")
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "data"))
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}

func TestTransform_NoRetainedDirections(t *testing.T) {
	data := writeFile(t, "train.csv", "4,5\n4,5\n4,5\n")
	input := writeFile(t, "in.csv", "1,2\n3,4\n")
	outPath := filepath.Join(t.TempDir(), "out.csv")

	_, err := run(t, "transform", "--data", data, "--input", input, "--out", outPath)
	require.ErrorIs(t, err, errNoDirections)
	require.NoFileExists(t, outPath)
}

func TestCreateAndWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	boom := errors.New("disk full")

	err := createAndWrite(path, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return boom
	})
	require.ErrorIs(t, err, boom)

	require.NoError(t, createAndWrite(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "ok\n")
		return err
	}))
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "ok\n", string(got))

	err = createAndWrite(filepath.Join(t.TempDir(), "missing", "out.csv"), func(io.Writer) error { return nil })
	require.ErrorIs(t, err, os.ErrNotExist)
}
