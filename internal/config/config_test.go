package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gorebar/internal/detailing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
	assert.Equal(t, detailing.BendLengthDepthLimited, cfg.Policy.BendLength)
	assert.Equal(t, 150.0, cfg.Policy.CantileverOffset)
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "gorebar.yaml", `
policy:
  bend_length_policy: development
  cantilever_offset: 0
output:
  formats: xlsx
`)
	cfg, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, detailing.BendLengthDevelopment, cfg.Policy.BendLength)
	assert.Zero(t, cfg.Policy.CantileverOffset)
	assert.Equal(t, 300.0, cfg.Policy.DeadEndAllowance)
	assert.Equal(t, "xlsx", cfg.Output.Formats)
	assert.Equal(t, "rebar_report", cfg.Output.Base)
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "gorebar.yaml", `
policy:
  cantilever_offset: 100
  dead_end_allowance: 250
  stirrup_cover_deduction: 60
`)
	envFile := writeFile(t, dir, ".env", "GOREBAR_DEADEND_ALLOWANCE=275\nGOREBAR_STIRRUP_COVER=70\n")
	t.Setenv(EnvStirrupCover, "90")

	cfg, err := Load(path, envFile)
	require.NoError(t, err)
	assert.Equal(t, 100.0, cfg.Policy.CantileverOffset)     // file
	assert.Equal(t, 275.0, cfg.Policy.DeadEndAllowance)     // .env over file
	assert.Equal(t, 90.0, cfg.Policy.StirrupCoverDeduction) // env over .env
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "nope.yaml"), "")
	assert.Error(t, err)

	bad := writeFile(t, dir, "bad.yaml", "policy:\n  bend_length_policy: sideways\n")
	_, err = Load(bad, "")
	assert.Error(t, err)

	negative := writeFile(t, dir, "neg.yaml", "policy:\n  cantilever_offset: -5\n")
	_, err = Load(negative, "")
	assert.ErrorIs(t, err, detailing.ErrInvalidGeometry)

	t.Setenv(EnvCantileverOffset, "lots")
	_, err = Load("", "")
	assert.Error(t, err)
}

func TestLoad_EnvPolicy(t *testing.T) {
	t.Setenv(EnvBendPolicy, "ld")
	t.Setenv(EnvOutputFormats, "csv")
	cfg, err := Load("", "")
	require.NoError(t, err)
	assert.Equal(t, detailing.BendLengthDevelopment, cfg.Policy.BendLength)
	assert.Equal(t, "csv", cfg.Output.Formats)
}
