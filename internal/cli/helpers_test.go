package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleInterrupt(t *testing.T) {
	boom := errors.New("boom")
	joined := errors.Join(context.Canceled, context.Canceled)

	tests := []struct {
		name    string
		err     error
		sig     os.Signal
		wantErr error
		wantOut string
	}{
		{"No error", nil, os.Interrupt, nil, ""},
		{"Cancelled without signal", context.Canceled, nil, context.Canceled, ""},
		{"Other error with signal", boom, os.Interrupt, boom, ""},
		{"Ctrl+C", joined, os.Interrupt, nil, "[CTRL+C]\n>>> Interrupted.\n"},
		{"SIGTERM", fmt.Errorf("run: %w", context.Canceled), syscall.SIGTERM, nil, ">>> Terminated by terminated.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := HandleInterrupt(&out, tt.err, tt.sig)
			assert.Equal(t, tt.wantErr, err)
			assert.Equal(t, tt.wantOut, out.String())
		})
	}
}

func TestSignalContext_CancelWithoutSignal(t *testing.T) {
	sc := NewSignalContext(context.Background())
	sc.Cancel()

	<-sc.Done()
	assert.Nil(t, sc.Signal())
}
