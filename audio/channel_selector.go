// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// ChannelSelector keeps a single channel of an interleaved source.
type ChannelSelector struct {
	src     Source
	channel int
	tmp     []float32
}

// NewChannelSelector returns a mono view of channel ch of src.
func NewChannelSelector(src Source, ch int) (*ChannelSelector, error) {
	if ch < 0 || ch >= src.Channels() {
		return nil, fmt.Errorf("%w: %d of %d", ErrInvalidChannel, ch, src.Channels())
	}
	return &ChannelSelector{
		src:     src,
		channel: ch,
		tmp:     make([]float32, 4096),
	}, nil
}

func (c *ChannelSelector) SampleRate() int { return c.src.SampleRate() }
func (c *ChannelSelector) Channels() int   { return 1 }
func (c *ChannelSelector) BufSize() int    { return c.src.BufSize() }

// Metadata reports the source metadata unchanged, so the signal kind still
// reflects the input file.
func (c *ChannelSelector) Metadata() Metadata { return c.src.Metadata() }

func (c *ChannelSelector) Close() error {
	if err := c.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (c *ChannelSelector) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	channels := c.src.Channels()
	if channels == 1 {
		return c.src.ReadSamples(dst)
	}

	need := len(dst) * channels
	if cap(c.tmp) < need {
		c.tmp = make([]float32, need)
	}
	c.tmp = c.tmp[:need]

	n, err := c.src.ReadSamples(c.tmp)
	if n == 0 {
		return 0, err
	}

	frames := n / channels
	for f := range frames {
		dst[f] = c.tmp[f*channels+c.channel]
	}
	return frames, err
}
