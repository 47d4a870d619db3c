// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"io"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// progressBar adapts stft progress reports to an mpb bar. The bar is
// created on the first report, once the frame count is known.
type progressBar struct {
	p   *mpb.Progress
	bar *mpb.Bar
}

func newProgressBar(w io.Writer) *progressBar {
	return &progressBar{p: mpb.New(mpb.WithOutput(w), mpb.WithWidth(64))}
}

func (b *progressBar) update(done, total int) {
	if b.bar == nil {
		b.bar = b.p.AddBar(int64(total),
			mpb.PrependDecorators(
				decor.Name("STFT: "),
				decor.CountersNoUnit("%d / %d"),
			),
			mpb.AppendDecorators(
				decor.Percentage(),
				decor.Elapsed(decor.ET_STYLE_GO, decor.WCSyncSpace),
			),
		)
	}
	if total == 0 {
		b.bar.SetTotal(0, true)
		return
	}
	b.bar.SetCurrent(int64(done))
}

// wait flushes the bar. A bar that did not reach its total is aborted so
// Wait cannot block.
func (b *progressBar) wait() {
	if b.bar != nil && !b.bar.Completed() {
		b.bar.Abort(false)
	}
	b.p.Wait()
}
