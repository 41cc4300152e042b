package logger

import (
	"testing"

	"github.com/MikeRez0/storykiosk/internal/adapter/config"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		conf    config.App
		wantErr bool
	}{
		{name: "develop", conf: config.App{LogLevel: "debug", Mode: config.AppModeDevelop}},
		{name: "production", conf: config.App{LogLevel: "info", Mode: config.AppModeProduction}},
		{name: "bad level", conf: config.App{LogLevel: "loud", Mode: config.AppModeDevelop}, wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			log, err := NewLogger(&test.conf)
			if test.wantErr {
				assert.Error(t, err)
				assert.Nil(t, log)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, log)
		})
	}
}
