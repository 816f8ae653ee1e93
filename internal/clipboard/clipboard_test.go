package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memBoard struct {
	content  string
	writeErr error
	readErr  error
	mangle   bool
}

func (m *memBoard) WriteAll(text string) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.content = text
	if m.mangle {
		m.content += "x"
	}
	return nil
}

func (m *memBoard) ReadAll() (string, error) {
	if m.readErr != nil {
		return "", m.readErr
	}
	return m.content, nil
}

func TestCopy(t *testing.T) {
	b := &memBoard{}
	require.NoError(t, Copy(b, "Aa1!Bb2@Cc3#"))
	assert.Equal(t, "Aa1!Bb2@Cc3#", b.content)
}

func TestCopyWriteError(t *testing.T) {
	err := Copy(&memBoard{writeErr: ErrUnavailable}, "secret")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestCopyReadError(t *testing.T) {
	readErr := errors.New("xclip missing")
	err := Copy(&memBoard{readErr: readErr}, "secret")
	require.Error(t, err)
	assert.ErrorIs(t, err, readErr)
	assert.Contains(t, err.Error(), "verifying clipboard")
}

func TestCopyVerifyMismatch(t *testing.T) {
	err := Copy(&memBoard{mangle: true}, "secret")
	assert.ErrorIs(t, err, ErrVerifyFailed)
}
