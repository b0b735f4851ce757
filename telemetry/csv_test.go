package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trackmap/models"
)

func TestReadSamples(t *testing.T) {
	t.Parallel()

	in := `Session_Time,Yaw,Speed,Lap_Dist_Pct,Track_ID,Track_Config
0.000,1.5708,42.5,0.25,252,Grand Prix
0.016,1.5700,42.6,0.2501,252,Grand Prix
0.033,oops,42.7,0.2502,252,Grand Prix
`
	samples, err := ReadSamples(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, samples, 3)

	assert.Equal(t, models.Sample{
		SessionTime: 0.016,
		Yaw:         1.57,
		Speed:       42.6,
		LapDistPct:  0.2501,
		TrackID:     252,
		TrackConfig: "Grand Prix",
	}, samples[1])
	assert.Zero(t, samples[2].Yaw, "unparsable values read as zero")
	assert.Equal(t, models.TrackIdentity{ID: 252, Config: "Grand Prix"}, samples[0].Identity())
}

func TestReadSamplesOptionalTrackColumns(t *testing.T) {
	t.Parallel()

	samples, err := ReadSamples(strings.NewReader("session_time,yaw,speed,lap_dist_pct\n1,0,10,0.5\n"))
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, models.TrackIdentity{}, samples[0].Identity())
	assert.Equal(t, float32(0.5), samples[0].LapDistPct)
}

func TestReadSamplesMissingColumn(t *testing.T) {
	t.Parallel()

	_, err := ReadSamples(strings.NewReader("session_time,yaw,speed\n1,0,10\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lap_dist_pct")

	_, err = ReadSamples(strings.NewReader(""))
	require.Error(t, err)
}

func TestLoadSamplesFromCSV(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.csv")
	require.NoError(t, os.WriteFile(path, []byte("session_time,yaw,speed,lap_dist_pct\n0,0,1,0\n0.1,0,1,0.01\n"), 0o644))

	samples, err := LoadSamplesFromCSV(path)
	require.NoError(t, err)
	assert.Len(t, samples, 2)

	_, err = LoadSamplesFromCSV(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
