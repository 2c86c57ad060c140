package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value form",
			args:    []string{"-a", "127.0.0.1:8343", "-k", "secret"},
			allowed: []string{"-a"},
			want:    []string{"-a", "127.0.0.1:8343"},
		},
		{
			name:    "equals form",
			args:    []string{"--config=larkstore.json", "-a", "127.0.0.1:8343"},
			allowed: []string{"-c", "--config"},
			want:    []string{"--config=larkstore.json"},
		},
		{
			name:    "disallowed flags dropped",
			args:    []string{"-x", "1", "--y=2", "positional"},
			allowed: []string{"-c", "--config"},
			want:    []string{},
		},
		{
			name:    "trailing flag without value kept alone",
			args:    []string{"-j"},
			allowed: []string{"-j"},
			want:    []string{"-j"},
		},
		{
			name:    "following flag is not consumed as a value",
			args:    []string{"-j", "-a", "127.0.0.1:8343"},
			allowed: []string{"-j", "-a"},
			want:    []string{"-j", "-a", "127.0.0.1:8343"},
		},
		{
			name:    "order and repeats preserved",
			args:    []string{"-c", "one.json", "-b", "sqlite", "-c", "two.json"},
			allowed: []string{"-c"},
			want:    []string{"-c", "one.json", "-c", "two.json"},
		},
		{
			name:    "empty args",
			args:    []string{},
			allowed: []string{"-c"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short form", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", "/etc/larkstore/cfg.json"}
		assert.Equal(t, "/etc/larkstore/cfg.json", JsonConfigFlags())
	})

	t.Run("long form", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", "cfg.json"}
		assert.Equal(t, "cfg.json", JsonConfigFlags())
	})

	t.Run("absent", func(t *testing.T) {
		os.Args = []string{"testbin", "-a", "127.0.0.1:9000"}
		assert.Empty(t, JsonConfigFlags())
	})

	t.Run("last occurrence wins", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", "one.json", "-config", "two.json"}
		assert.Equal(t, "two.json", JsonConfigFlags())
	})
}
