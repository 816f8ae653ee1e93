// Package clipboard copies passwords to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

var (
	ErrUnavailable  = errors.New("clipboard is not available on this system")
	ErrVerifyFailed = errors.New("clipboard contents do not match the copied text")
)

// Board is a readable and writable clipboard.
type Board interface {
	WriteAll(text string) error
	ReadAll() (string, error)
}

// System is the operating system clipboard.
type System struct{}

func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	return clipboard.WriteAll(text)
}

func (System) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnavailable
	}
	return clipboard.ReadAll()
}

// Copy writes text to b and reads it back to confirm the copy took effect.
func Copy(b Board, text string) error {
	if err := b.WriteAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}

	got, err := b.ReadAll()
	if err != nil {
		return fmt.Errorf("verifying clipboard: %w", err)
	}
	if got != text {
		return ErrVerifyFailed
	}
	return nil
}
