package bind_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/proptree/pkg/bind"
	"github.com/aretw0/proptree/pkg/document"
	"github.com/aretw0/proptree/pkg/props"
	"github.com/mitchellh/mapstructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type GPS struct {
	Lat float64 `mapstructure:"lat"`
	Fix bool    `mapstructure:"fix"`
}

type Sensors struct {
	Name string `mapstructure:"name"`
	IMU  struct {
		Rate int `mapstructure:"rate"`
	} `mapstructure:"imu"`
	GPS  []GPS    `mapstructure:"gps"`
	Tags []string `mapstructure:"tags"`
}

func TestDecode_FromExportedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sensors.json")
	doc := `{
		"name": "rover",
		"imu": {"rate": "100"},
		"gps": [{"lat": "45.5", "fix": "true"}, {"lat": "-3"}],
		"tags": ["a", "b"]
	}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	root := props.NewNode()
	require.NoError(t, document.NewImporter().Load(path, root))

	var s Sensors
	require.NoError(t, bind.Decode(root, &s))

	assert.Equal(t, "rover", s.Name)
	assert.Equal(t, 100, s.IMU.Rate)
	assert.Equal(t, []GPS{{Lat: 45.5, Fix: true}, {Lat: -3}}, s.GPS)
	assert.Equal(t, []string{"a", "b"}, s.Tags)
}

func TestDecode_Unused(t *testing.T) {
	root := props.NewNode()
	require.NoError(t, root.Set("name", "rover"))
	require.NoError(t, root.Set("extra", 1))

	var md mapstructure.Metadata
	var s Sensors
	require.NoError(t, bind.Decode(root, &s, bind.Metadata(&md)))
	assert.Equal(t, []string{"extra"}, md.Unused)

	assert.Error(t, bind.Decode(root, &s, bind.ErrorUnused()))
}

func TestEncode_RoundTrip(t *testing.T) {
	in := Sensors{Name: "rover", GPS: []GPS{{Lat: 1.5}, {Lat: 2, Fix: true}}, Tags: []string{"x"}}
	in.IMU.Rate = 50

	root := props.NewNode()
	require.NoError(t, root.Set("keep", "me"))
	require.NoError(t, bind.Encode(in, root))

	assert.Equal(t, 2, root.Len("gps"))
	rate, ok := root.Child("imu", false).Scalar("rate")
	require.True(t, ok)
	assert.Equal(t, 50, rate)
	_, ok = root.Scalar("keep")
	assert.True(t, ok)

	var out Sensors
	require.NoError(t, bind.Decode(root, &out))
	assert.Equal(t, in, out)
}
