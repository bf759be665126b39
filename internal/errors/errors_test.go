package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrConfig, "Config file not found", "Run 'kdash init' to create one")

	assert.Equal(t, ErrConfig, err.Code)
	assert.Equal(t, "Config file not found", err.Message)
	assert.Equal(t, "Run 'kdash init' to create one", err.Suggestion)
	assert.Nil(t, err.Cause)
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name:     "message only",
			err:      New(ErrExec, "Something broke", ""),
			contains: []string{"✗ Something broke"},
		},
		{
			name:     "message and suggestion",
			err:      New(ErrLaunch, "QEMU not found", "Install qemu-system-riscv64"),
			contains: []string{"✗ QEMU not found", "Install qemu-system-riscv64"},
		},
		{
			name:     "wrapped cause appears in output",
			err:      WrapWithCode(fmt.Errorf("exec: file not found"), ErrLaunch, "Couldn't start the kernel", "Build the kernel first"),
			contains: []string{"✗ Couldn't start the kernel", "exec: file not found", "Build the kernel first"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.contains {
				assert.Contains(t, msg, want)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("underlying problem")
	err := Wrap(cause, "wrapper")

	require.NotNil(t, err.Unwrap())
	assert.True(t, errors.Is(err, cause))
}

func TestIsCode(t *testing.T) {
	launchErr := New(ErrLaunch, "missing binary", "")
	wrapped := fmt.Errorf("outer: %w", launchErr)

	assert.True(t, IsCode(launchErr, ErrLaunch))
	assert.True(t, IsCode(wrapped, ErrLaunch))
	assert.False(t, IsCode(launchErr, ErrConfig))
	assert.False(t, IsCode(nil, ErrLaunch))
	assert.False(t, IsCode(fmt.Errorf("plain"), ErrLaunch))
}
