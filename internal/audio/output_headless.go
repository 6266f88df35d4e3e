//go:build headless

package audio

import (
	"errors"
	"io"
)

var errHeadless = errors.New("built without an audio device (headless)")

func platformStart(int, io.Reader) error { return errHeadless }
