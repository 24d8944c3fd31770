package simdfft

import "github.com/cwbudde/algo-fft-harness/internal/fftypes"

// ConvolveAccumulate multiplies two native-layout spectra pointwise and
// accumulates into acc: acc += scale * (a (*) b). In the real domain the
// first pair of block 0 carries the DC and Nyquist bins; both are purely
// real and are multiplied as real scalars instead of as a complex pair.
func (t *transform) ConvolveAccumulate(a, b, acc []float32, scale float32) {
	blocks := t.pairs / laneWidth

	for blk := 0; blk < blocks; blk++ {
		base := blk * 2 * laneWidth

		for lane := 0; lane < laneWidth; lane++ {
			ar := a[base+lane]
			ai := a[base+laneWidth+lane]
			br := b[base+lane]
			bi := b[base+laneWidth+lane]

			if blk == 0 && lane == 0 && t.domain == fftypes.DomainReal {
				// DC and Nyquist: real times real.
				acc[base] += scale * ar * br
				acc[base+laneWidth] += scale * ai * bi

				continue
			}

			acc[base+lane] += scale * (ar*br - ai*bi)
			acc[base+laneWidth+lane] += scale * (ar*bi + ai*br)
		}
	}
}
