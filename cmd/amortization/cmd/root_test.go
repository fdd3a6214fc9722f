package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/microlead/loan-amortization/internal/metrics"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("OUTPUT_DIR", filepath.Join(t.TempDir(), "download"))
	t.Setenv("LOGO_PATH", "")
	t.Setenv("METRICS_ADDR", "")
	t.Setenv("OTEL_ENDPOINT", "")

	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestScheduleCommandTable(t *testing.T) {
	out, _, err := execute(t, "", "schedule", "--amount", "10000", "--rate", "5", "--years", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "Tableau d'Amortissement :")
	assert.Contains(t, out, "24   |           431 € |   433 € |       2 € |         431 € |            0 €")
}

func TestScheduleCommandJSON(t *testing.T) {
	out, _, err := execute(t, "", "schedule", "--amount", "10000", "--rate", "5", "--years", "2", "--format", "json")
	require.NoError(t, err)

	var decoded struct {
		Schedule []map[string]interface{} `json:"schedule"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Len(t, decoded.Schedule, 24)
}

func TestScheduleCommandPDF(t *testing.T) {
	_, stderr, err := execute(t, "", "schedule", "--amount", "10000", "--rate", "5", "--years", "2", "--pdf")
	require.NoError(t, err)

	path := filepath.Join(os.Getenv("OUTPUT_DIR"), "calcul_amortissement.pdf")
	assert.FileExists(t, path)
	assert.Contains(t, stderr, "Les résultats ont été exportés dans "+path)
}

func TestScheduleCommandRejectsInvalidInput(t *testing.T) {
	_, _, err := execute(t, "", "schedule", "--amount", "10000", "--rate", "0", "--years", "2")
	assert.Error(t, err)

	_, _, err = execute(t, "", "schedule", "--amount", "10000", "--rate", "5")
	assert.Error(t, err)
}

func TestScheduleCommandInfeasible(t *testing.T) {
	_, _, err := execute(t, "", "schedule", "--amount", "100", "--rate", "10", "--years", "10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inférieure à 10 euro")
}

func TestInteractiveRoot(t *testing.T) {
	out, _, err := execute(t, "10000\n5\n2\nN\nN\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Bienvenu chez Microlead")
	assert.Contains(t, out, "1    |         10000 € |   439 € |      42 € |         397 € |         9603 €")
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)
}

func TestScheduleCommandRejectsUnknownFormatBeforeComputing(t *testing.T) {
	before := testutil.ToFloat64(metrics.Simulations.WithLabelValues("success"))

	out, _, err := execute(t, "", "schedule", "--amount", "10000", "--rate", "5", "--years", "2", "--format", "xml")
	require.Error(t, err)

	assert.Contains(t, err.Error(), `unknown output format "xml"`)
	assert.Empty(t, out)
	assert.Equal(t, before, testutil.ToFloat64(metrics.Simulations.WithLabelValues("success")))
}
