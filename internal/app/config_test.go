package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     Config
		want    Config
		wantErr string
	}{
		{
			name: "defaults",
			cfg:  Config{},
			want: Config{LogLevel: "info", LogFormat: "text"},
		},
		{
			name: "explicit",
			cfg:  Config{LogLevel: "debug", LogFormat: "json", Locale: "de", Translations: "t.yaml", ClassCacheSize: 8},
			want: Config{LogLevel: "debug", LogFormat: "json", Locale: "de", Translations: "t.yaml", ClassCacheSize: 8},
		},
		{name: "bad level", cfg: Config{LogLevel: "verbose"}, wantErr: `invalid log level "verbose"`},
		{name: "bad format", cfg: Config{LogFormat: "xml"}, wantErr: `invalid log format "xml"`},
		{name: "negative cache", cfg: Config{ClassCacheSize: -1}, wantErr: "class cache size must not be negative"},
		{name: "translations without locale", cfg: Config{Translations: "t.yaml"}, wantErr: "no locale"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NewConfig(tc.cfg)
			if tc.wantErr != "" {
				assert.ErrorContains(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, *got)
		})
	}
}
