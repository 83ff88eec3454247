package deltargb

import "fmt"

// Per-sample code layout: a flag bit selects a literal code (flag 0,
// followed by the raw 8-bit value) or a delta code (flag 1, followed by a
// sign bit and deltaBits magnitude bits).
const (
	deltaBits = 3
	deltaMod  = 1 << deltaBits // magnitude modulus
	maxDelta  = deltaMod - 1
	minDelta  = -deltaMod

	literalCodeLen = 1 + 8
	deltaCodeLen   = 1 + 1 + deltaBits
)

// channelCoder carries the predictor state for one channel substream.
// The predictor is always the previous actual sample value, on both the
// encode and decode side, regardless of which code path was taken.
type channelCoder struct {
	predictor int
}

// reset prepares the coder for a new channel substream
func (cc *channelCoder) reset() {
	cc.predictor = 0
}

// encodeSample appends the code for one sample to bw. Deltas in
// [minDelta, maxDelta] use the 5-bit delta code; anything larger falls
// back to the 9-bit literal code, trading size for exactness.
func (cc *channelCoder) encodeSample(bw *BitWriter, sample int) error {
	if sample < 0 || sample > 255 {
		return fmt.Errorf("%w: %d (must be 0-255)", ErrSampleOutOfRange, sample)
	}

	delta := sample - cc.predictor
	cc.predictor = sample

	if delta < minDelta || delta > maxDelta {
		bw.WriteBit(0)
		bw.WriteBits(uint32(sample), 8)
		return nil
	}

	bw.WriteBit(1)
	if delta < 0 {
		bw.WriteBit(1)
	} else {
		bw.WriteBit(0)
	}
	// delta mod deltaMod with a result in [0, deltaMod): -1 maps to 7,
	// minDelta maps to 0. The sign bit disambiguates on decode.
	bw.WriteBits(uint32(delta&(deltaMod-1)), deltaBits)
	return nil
}

// decodeSample reads one code from br starting at cursor and returns the
// reconstructed sample together with the advanced cursor.
func (cc *channelCoder) decodeSample(br *BitReader, cursor int) (int, int, error) {
	flag, err := br.ReadBits(cursor, 1)
	if err != nil {
		return 0, cursor, err
	}
	cursor++

	if flag == 0 {
		value, err := br.ReadBits(cursor, 8)
		if err != nil {
			return 0, cursor, err
		}
		cursor += 8
		cc.predictor = int(value)
		return cc.predictor, cursor, nil
	}

	sign, err := br.ReadBits(cursor, 1)
	if err != nil {
		return 0, cursor, err
	}
	cursor++

	magnitude, err := br.ReadBits(cursor, deltaBits)
	if err != nil {
		return 0, cursor, err
	}
	cursor += deltaBits

	delta := int(magnitude)
	if sign == 1 {
		delta -= deltaMod
	}
	cc.predictor += delta
	return cc.predictor, cursor, nil
}
