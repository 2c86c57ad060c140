package ctl

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptPassword_UsesSeam(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })
	readPassword = func(fd int) ([]byte, error) { return []byte("hunter2"), nil }

	errw := &bytes.Buffer{}
	a := &App{errw: errw}

	pw, err := a.promptPassword("Password: ")
	require.NoError(t, err)
	assert.Equal(t, []byte("hunter2"), pw)
	assert.Contains(t, errw.String(), "Password: ")
}

func TestPromptPassword_ReadError(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })
	readPassword = func(fd int) ([]byte, error) { return nil, errors.New("tty gone") }

	a := &App{errw: &bytes.Buffer{}}

	_, err := a.promptPassword("Password: ")
	require.ErrorContains(t, err, "tty gone")
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes", "y\n", true},
		{"yes_word", "yes\n", true},
		{"yes_upper", "Y\n", true},
		{"no", "n\n", false},
		{"empty", "\n", false},
		{"garbage", "maybe\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &App{errw: &bytes.Buffer{}, in: bufio.NewReader(strings.NewReader(tt.input))}
			got, err := a.confirm("Proceed?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
