package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_SetDefaults(t *testing.T) {
	t.Parallel()

	var cfg Config

	assert.True(t, cfg.SetDefaults())
	assert.Equal(t, DefaultAddress, cfg.Address)
	assert.Equal(t, DefaultDir, cfg.Dir)
	assert.False(t, cfg.SetDefaults())

	custom := Config{Address: ":9000", Dir: "/srv/tiles"}
	assert.False(t, custom.SetDefaults())
	assert.Equal(t, ":9000", custom.Address)
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "tileset.json")
	require.NoError(t, os.WriteFile(file, []byte("{}"), 0o600))

	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{name: "valid", cfg: Config{Address: ":0", Dir: dir}},
		{name: "empty address", cfg: Config{Dir: dir}, wantErr: ErrEmptyAddress},
		{name: "missing dir", cfg: Config{Address: ":0", Dir: filepath.Join(dir, "absent")}, wantErr: ErrNotDirectory},
		{name: "file instead of dir", cfg: Config{Address: ":0", Dir: file}, wantErr: ErrNotDirectory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOptions(t *testing.T) {
	t.Parallel()

	var cfg Config

	WithAddress("127.0.0.1:0")(&cfg)
	WithDir("/srv/tiles")(&cfg)

	assert.Equal(t, Config{Address: "127.0.0.1:0", Dir: "/srv/tiles"}, cfg)
}
