package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadBatchPoints(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"latitude": 23.3441, "longitude": 85.3096, "radius_km": 2},
		{"latitude": 20.2961, "longitude": 85.8245}
	]`), 0o644))

	points, err := readBatchPoints(path)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, 23.3441, points[0].Latitude)
	assert.Equal(t, 2.0, points[0].RadiusKM)
	assert.Zero(t, points[1].RadiusKM)
}

func TestReadBatchPoints_Missing(t *testing.T) {
	_, err := readBatchPoints(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read batch file")
}

func TestReadBatchPoints_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not": "an array"}`), 0o644))

	_, err := readBatchPoints(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse batch file")
}
