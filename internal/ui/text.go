package ui

import (
	"bytes"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
)

var (
	faceSource *text.GoTextFaceSource
	faceOnce   sync.Once
	faceCache  = map[float64]text.Face{}
)

// face returns the bold UI face at size, or nil if the font failed to load.
func face(size float64) text.Face {
	faceOnce.Do(func() {
		s, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
		if err != nil {
			return
		}
		faceSource = s
	})
	if faceSource == nil {
		return nil
	}
	if f, ok := faceCache[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: faceSource, Size: size}
	faceCache[size] = f
	return f
}
