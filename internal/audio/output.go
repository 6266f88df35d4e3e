//go:build !headless

package audio

import (
	"fmt"
	"io"

	"github.com/ebitengine/oto/v3"
)

var player *oto.Player

func platformStart(rate int, r io.Reader) error {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   rate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return fmt.Errorf("open audio device: %w", err)
	}
	<-ready
	p := ctx.NewPlayer(r)
	p.SetBufferSize(bufferSizeBytes10ms)
	p.Play()
	player = p
	return nil
}
