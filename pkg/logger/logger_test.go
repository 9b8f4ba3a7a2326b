package logger

import (
	"testing"

	"github.com/ardiansah/digistore/internal/config"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name      string
		logLvl    string
		expectErr bool
	}{
		{name: "Valid info level", logLvl: "info", expectErr: false},
		{name: "Valid debug level", logLvl: "debug", expectErr: false},
		{name: "Valid error level", logLvl: "error", expectErr: false},
		{name: "Unsupported level", logLvl: "trace", expectErr: true},
		{name: "Empty level", logLvl: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InitLogger(&config.Config{LogLvl: tt.logLvl})
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, zap.L())
			}
		})
	}
}
