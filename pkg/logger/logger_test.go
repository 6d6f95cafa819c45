package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel_NivelesConocidos(t *testing.T) {
	casos := map[string]zerolog.Level{
		"trace": zerolog.TraceLevel,
		"debug": zerolog.DebugLevel,
		"info":  zerolog.InfoLevel,
		"warn":  zerolog.WarnLevel,
		"error": zerolog.ErrorLevel,
		"WARN":  zerolog.WarnLevel, // insensible a mayúsculas
		" info": zerolog.InfoLevel, // tolera espacios
	}
	for in, want := range casos {
		assert.Equal(t, want, parseLevel(in), "nivel %q", in)
	}
}

func TestParseLevel_VacioODesconocido_CaeAInfo(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("verboso"))
}

func TestNew_AplicaElNivelConfigurado(t *testing.T) {
	l := New(Config{Env: "production", Level: "warn"})
	assert.Equal(t, zerolog.WarnLevel, l.zl.GetLevel(),
		"el nivel del logger debe salir de la configuración, no de un valor fijo")
}
