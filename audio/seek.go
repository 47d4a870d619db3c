// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Seeker is implemented by sources that can reposition. frame counts
// samples per channel from the start of the stream; the next ReadSamples
// returns data from that frame on.
type Seeker interface {
	Seek(frame uint64) error
}

// Seek repositions src when it implements Seeker.
func Seek(src Source, frame uint64) error {
	sk, ok := src.(Seeker)
	if !ok {
		return fmt.Errorf("%w: %T", ErrNotSeekable, src)
	}
	return sk.Seek(frame)
}

// Seek forwards to the wrapped source; the selector keeps no buffered
// samples between reads.
func (c *ChannelSelector) Seek(frame uint64) error { return Seek(c.src, frame) }

// Seek forwards to the wrapped source.
func (m *MonoMixer) Seek(frame uint64) error { return Seek(m.src, frame) }
