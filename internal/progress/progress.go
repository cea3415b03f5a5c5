// Package progress renders a progress bar for the path rewrite phase, which
// touches every file in the bundle and is the slowest part of a build.
package progress

import (
	"io"

	"github.com/vbauerster/mpb/v7"
	"github.com/vbauerster/mpb/v7/decor"
)

type Progress struct {
	prg *mpb.Progress
	bar *mpb.Bar
}

// New creates a progress renderer writing to the given writer. Pass
// io.Discard for non-interactive or json output.
func New(w io.Writer, name string, total int64) *Progress {
	prg := mpb.New(mpb.WithWidth(40), mpb.WithOutput(w))

	if len(name) > 12 {
		name = name[0:12]
	}
	bar := prg.AddBar(total,
		mpb.BarFillerClearOnComplete(),
		mpb.PrependDecorators(
			decor.Name(name, decor.WCSyncSpaceR),
			decor.CountersNoUnit("%d / %d", decor.WCSyncSpace),
		),
		mpb.AppendDecorators(
			decor.OnComplete(decor.Percentage(decor.WC{W: 5}), ""),
		),
	)

	return &Progress{prg: prg, bar: bar}
}

func (p *Progress) Increment() {
	p.bar.Increment()
}

// Close completes the bar and waits for the renderer to flush
func (p *Progress) Close() {
	p.bar.SetTotal(0, true)
	p.prg.Wait()
}

// Abort drops the bar without marking it complete
func (p *Progress) Abort() {
	p.bar.Abort(true)
	p.prg.Wait()
}
