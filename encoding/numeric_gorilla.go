package encoding

import (
	"encoding/binary"
	"iter"
	"math"
	"math/bits"

	"github.com/intlgo/icucore/internal/pool"
)

const (
	gorillaSmallSequenceThreshold = 64
)

// NumericGorillaEncoder implements Facebook's Gorilla compression algorithm
// for float64 sequences that repeat or drift only slightly from one entry
// to the next -- the shape of a zone transition table's offset-index
// column, where most entries share one of a handful of UTC offsets.
//
// The algorithm uses XOR-based compression with leading/trailing zero
// optimization:
//  1. Store the first value uncompressed (64 bits)
//  2. For subsequent values:
//     - XOR with previous value
//     - If XOR is 0 (value unchanged): store 1 bit (0)
//     - If XOR is non-zero:
//     a. Store control bit (1)
//     b. Calculate leading/trailing zeros
//     c. If same as previous block: store 1 bit (0) + meaningful bits
//     d. If different block: store 1 bit (1) + 5 bits (leading) + 6 bits (length) + meaningful bits
//
// See https://www.vldb.org/pvldb/vol8/p1816-teller.pdf for algorithm details.
type NumericGorillaEncoder struct {
	// Hot path fields (frequently accessed, keep together for cache locality)
	bitBuf        uint64 // Bit buffer for accumulating bits before writing to byte buffer
	prevValue     uint64 // Previous value (as uint64 bits)
	bitCount      int    // Number of valid bits in bitBuf
	count         int    // Number of values encoded
	prevLeading   int    // Leading zeros in previous XOR
	prevTrailing  int    // Trailing zeros in previous XOR
	prevBlockSize int    // Cached block size: 64 - prevLeading - prevTrailing
	firstValue    bool   // True if this is the first value

	// Offset: 64, cold path field, place one cache line away
	buf *pool.ByteBuffer
}

var _ ColumnarEncoder[float64] = (*NumericGorillaEncoder)(nil)

// NewNumericGorillaEncoder creates a new Gorilla encoder for float64 values.
//
// Memory efficiency:
//   - First value: 64 bits (uncompressed)
//   - Unchanged values: 1 bit
//   - Same block: 2 bits + meaningful bits (typically 12-20 bits)
//   - Different block: 2 + 5 + 6 + meaningful bits (typically 15-30 bits)
func NewNumericGorillaEncoder() *NumericGorillaEncoder {
	return &NumericGorillaEncoder{
		buf:        pool.GetBlobBuffer(),
		firstValue: true,
	}
}

// Write encodes a single float64 value using Gorilla compression.
func (e *NumericGorillaEncoder) Write(val float64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write values after Finish()")
	}

	e.count++
	valBits := math.Float64bits(val)

	if e.firstValue {
		e.firstValue = false
		e.prevValue = valBits
		e.writeBits(valBits, 64)

		return
	}

	e.writeValue(valBits)
}

// WriteSlice encodes a slice of float64 values using Gorilla compression.
func (e *NumericGorillaEncoder) WriteSlice(values []float64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write values after Finish()")
	}

	if len(values) == 0 {
		return
	}

	if e.firstValue {
		e.count++
		valBits := math.Float64bits(values[0])
		e.firstValue = false
		e.prevValue = valBits
		e.writeBits(valBits, 64)
		values = values[1:]
	}

	i := 0
	for i < len(values) {
		valBits := math.Float64bits(values[i])

		j := i + 1
		for j < len(values) && math.Float64bits(values[j]) == valBits {
			j++
		}

		runLength := j - i
		if runLength > 1 && valBits == e.prevValue {
			e.writeMultipleZeroBits(runLength)
			e.count += runLength
			i = j
		} else {
			e.count++
			e.writeValue(valBits)
			i++
		}
	}
}

func (e *NumericGorillaEncoder) writeMultipleZeroBits(count int) {
	for count > 0 {
		bitsToWrite := count
		if bitsToWrite > 64 {
			bitsToWrite = 64
		}
		e.writeBits(0, bitsToWrite)
		count -= bitsToWrite
	}
}

// Bytes returns the encoded byte slice containing all compressed values.
//
// The returned slice is valid until the next call to Write, WriteSlice,
// Reset, or Finish. The caller must not modify the returned slice.
func (e *NumericGorillaEncoder) Bytes() []byte {
	if e.buf == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}

	if e.bitCount > 0 {
		e.flushBits()
	}

	return e.buf.Bytes()
}

// Len returns the number of encoded float64 values.
func (e *NumericGorillaEncoder) Len() int {
	return e.count
}

// Size returns the size in bytes of the encoded data that has been
// flushed to the byte buffer. Pending bits in the bit buffer are not
// included; Bytes flushes them.
func (e *NumericGorillaEncoder) Size() int {
	if e.buf == nil {
		panic("encoder already finished - cannot access size after Finish()")
	}

	return e.buf.Len()
}

// Reset clears the encoder state for reuse while retaining accumulated data.
func (e *NumericGorillaEncoder) Reset() {
	e.bitBuf = 0
	e.bitCount = 0
	e.prevValue = 0
	e.prevLeading = 0
	e.prevTrailing = 0
	e.prevBlockSize = 0
	e.firstValue = true
}

// Finish returns the byte buffer to the pool. The encoder becomes
// single-use after calling Finish(); create a new encoder to encode more.
func (e *NumericGorillaEncoder) Finish() {
	if e.buf == nil {
		return
	}

	pool.PutBlobBuffer(e.buf)
	e.buf = nil
}

func (e *NumericGorillaEncoder) writeValue(valBits uint64) {
	xor := valBits ^ e.prevValue
	e.prevValue = valBits

	if xor == 0 {
		e.bitBuf = (e.bitBuf << 1)
		e.bitCount++
		if e.bitCount == 64 {
			e.flushBits()
		}

		return
	}

	e.writeBit(1)

	leading := bits.LeadingZeros64(xor)
	trailing := bits.TrailingZeros64(xor)

	if leading > 31 {
		adjustment := leading - 31
		leading = 31
		trailing -= adjustment
		if trailing < 0 {
			trailing = 0
		}
	}

	if e.count > 2 && e.prevBlockSize > 0 && leading >= e.prevLeading && trailing >= e.prevTrailing {
		e.writeBit(0)
		e.writeBits(xor>>e.prevTrailing, e.prevBlockSize)
	} else {
		blockSize := 64 - leading - trailing
		e.writeBit(1)

		e.write5Bits(uint64(leading))     //nolint:gosec // leading is always 0-31
		e.write6Bits(uint64(blockSize - 1)) //nolint:gosec // blockSize-1 is always 0-63
		e.writeBits(xor>>trailing, blockSize)

		e.prevLeading = leading
		e.prevTrailing = trailing
		e.prevBlockSize = blockSize
	}
}

func (e *NumericGorillaEncoder) writeBit(bit uint64) {
	e.bitBuf = (e.bitBuf << 1) | bit
	e.bitCount++

	if e.bitCount == 64 {
		e.flushBits()
	}
}

func (e *NumericGorillaEncoder) writeBits(value uint64, numBits int) {
	if numBits == 0 {
		return
	}

	if numBits < 64 {
		value &= (1 << numBits) - 1
	}

	available := 64 - e.bitCount

	if numBits <= available {
		e.bitBuf = (e.bitBuf << numBits) | value
		e.bitCount += numBits

		if e.bitCount == 64 {
			e.flushBits()
		}
	} else {
		highBits := numBits - available
		e.bitBuf = (e.bitBuf << available) | (value >> highBits)
		e.bitCount = 64
		e.flushBits()

		e.bitBuf = value & ((1 << highBits) - 1)
		e.bitCount = highBits
	}
}

func (e *NumericGorillaEncoder) write5Bits(value uint64) {
	value &= 0x1F
	available := 64 - e.bitCount
	if available >= 5 {
		e.bitBuf = (e.bitBuf << 5) | value
		e.bitCount += 5
		if e.bitCount >= 64 {
			e.flushBits()
		}
	} else {
		highBits := 5 - available
		e.bitBuf = (e.bitBuf << available) | (value >> highBits)
		e.bitCount = 64
		e.flushBits()

		e.bitBuf = value & ((1 << highBits) - 1)
		e.bitCount = highBits
	}
}

func (e *NumericGorillaEncoder) write6Bits(value uint64) {
	value &= 0x3F
	available := 64 - e.bitCount
	if available >= 6 {
		e.bitBuf = (e.bitBuf << 6) | value
		e.bitCount += 6
		if e.bitCount >= 64 {
			e.flushBits()
		}
	} else {
		highBits := 6 - available
		e.bitBuf = (e.bitBuf << available) | (value >> highBits)
		e.bitCount = 64
		e.flushBits()

		e.bitBuf = value & ((1 << highBits) - 1)
		e.bitCount = highBits
	}
}

func (e *NumericGorillaEncoder) flushBits() {
	if e.bitCount == 0 {
		return
	}

	numBytes := (e.bitCount + 7) / 8

	e.buf.Grow(numBytes)

	alignedBits := e.bitBuf << (64 - e.bitCount)

	startLen := e.buf.Len()
	e.buf.ExtendOrGrow(numBytes)

	bs := e.buf.Slice(startLen, startLen+numBytes)

	if numBytes == 8 {
		binary.BigEndian.PutUint64(bs, alignedBits)
	} else {
		for i := range numBytes {
			shift := 56 - (i * 8)
			bs[i] = byte(alignedBits >> shift)
		}
	}

	e.bitBuf = 0
	e.bitCount = 0
}

// NumericGorillaDecoder decodes float64 values compressed with the
// Gorilla algorithm. It is stateless and safe for concurrent use.
type NumericGorillaDecoder struct{}

var _ ColumnarDecoder[float64] = NumericGorillaDecoder{}

// NewNumericGorillaDecoder creates a new Gorilla decoder for float64 values.
func NewNumericGorillaDecoder() NumericGorillaDecoder {
	return NumericGorillaDecoder{}
}

// gorillaBlockState caches block metadata to support Gorilla decoder
// reuse logic across consecutive values in the same bit window.
type gorillaBlockState struct {
	trailing  int
	blockSize int
	valid     bool
}

func (s *gorillaBlockState) next(br *bitReader) (trailing int, blockSize int, ok bool) {
	blockControlBit, ok := br.readBit()
	if !ok {
		return 0, 0, false
	}

	if blockControlBit == 0 {
		if !s.valid {
			return 0, 0, false
		}

		return s.trailing, s.blockSize, true
	}

	leading, ok := br.read5Bits()
	if !ok {
		return 0, 0, false
	}

	blockSize, ok = br.read6Bits()
	if !ok {
		return 0, 0, false
	}
	blockSize++
	if blockSize < 1 || blockSize > 64 {
		return 0, 0, false
	}

	trailing = 64 - leading - blockSize
	if trailing < 0 || trailing > 64 {
		return 0, 0, false
	}

	s.trailing = trailing
	s.blockSize = blockSize
	s.valid = true

	return trailing, blockSize, true
}

// All decodes all float64 values from the Gorilla-compressed byte slice.
func (d NumericGorillaDecoder) All(data []byte, count int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if len(data) == 0 || count == 0 {
			return
		}

		br := newBitReader(data)

		firstBits, ok := br.readBits(64)
		if !ok {
			return
		}
		prevValue := firstBits
		prevFloat := math.Float64frombits(prevValue)
		if !yield(prevFloat) {
			return
		}

		if count == 1 {
			return
		}

		remaining := count - 1
		if remaining <= gorillaSmallSequenceThreshold {
			d.decodeAllSmall(br, prevValue, prevFloat, remaining, yield)
			return
		}

		d.decodeAllLarge(br, prevValue, prevFloat, remaining, yield)
	}
}

func (NumericGorillaDecoder) decodeAllSmall(br *bitReader, prevValue uint64, prevFloat float64, remaining int, yield func(float64) bool) {
	trailing := 0
	blockSize := 0
	blockValid := false

	for remaining > 0 {
		controlBit, ok := br.readBit()
		if !ok {
			return
		}

		if controlBit == 0 {
			if !yield(prevFloat) {
				return
			}
			remaining--

			continue
		}

		reuseBit, ok := br.readBit()
		if !ok {
			return
		}

		var trailingBits, blockSizeBits int
		if reuseBit == 0 {
			if !blockValid {
				return
			}
			trailingBits = trailing
			blockSizeBits = blockSize
		} else {
			leading, ok := br.read5Bits()
			if !ok {
				return
			}
			sizeBits, ok := br.read6Bits()
			if !ok {
				return
			}
			blockSizeBits = sizeBits + 1
			if blockSizeBits < 1 || blockSizeBits > 64 {
				return
			}
			trailingBits = 64 - leading - blockSizeBits
			if trailingBits < 0 || trailingBits > 64 {
				return
			}

			trailing = trailingBits
			blockSize = blockSizeBits
			blockValid = true
		}

		meaningful, ok := br.readBits(blockSizeBits)
		if !ok {
			return
		}

		shift := uint64(trailingBits) //nolint:gosec // trailingBits constrained to [0,64]
		prevValue ^= meaningful << shift
		prevFloat = math.Float64frombits(prevValue)
		if !yield(prevFloat) {
			return
		}
		remaining--
	}
}

func (NumericGorillaDecoder) decodeAllLarge(br *bitReader, prevValue uint64, prevFloat float64, remaining int, yield func(float64) bool) {
	if remaining <= 0 {
		return
	}

	state := gorillaBlockState{}
	produced := 0

	for produced < remaining {
		controlBit, ok := br.readBit()
		if !ok {
			return
		}

		if controlBit == 0 {
			if !yield(prevFloat) {
				return
			}
			produced++

			for produced < remaining {
				controlBit, ok = br.readBit()
				if !ok {
					return
				}
				if controlBit != 0 {
					break
				}

				if !yield(prevFloat) {
					return
				}
				produced++
			}

			if produced >= remaining {
				return
			}
		}

		trailing, blockSize, ok := state.next(br)
		if !ok {
			return
		}

		meaningfulBits, ok := br.readBits(blockSize)
		if !ok {
			return
		}

		shift := uint64(trailing) //nolint:gosec // trailing validated by gorillaBlockState
		prevValue ^= meaningfulBits << shift
		prevFloat = math.Float64frombits(prevValue)
		if !yield(prevFloat) {
			return
		}
		produced++
	}
}

func (NumericGorillaDecoder) decodeAtSmall(br *bitReader, prevValue uint64, target int) (float64, bool) {
	trailing := 0
	blockSize := 0
	blockValid := false
	prevFloat := math.Float64frombits(prevValue)

	for current := 1; current <= target; {
		controlBit, ok := br.readBit()
		if !ok {
			return 0, false
		}

		if controlBit == 0 {
			if current == target {
				return prevFloat, true
			}
			current++

			continue
		}

		reuseBit, ok := br.readBit()
		if !ok {
			return 0, false
		}

		var trailingBits, blockSizeBits int
		if reuseBit == 0 {
			if !blockValid {
				return 0, false
			}
			trailingBits = trailing
			blockSizeBits = blockSize
		} else {
			leading, ok := br.read5Bits()
			if !ok {
				return 0, false
			}
			sizeBits, ok := br.read6Bits()
			if !ok {
				return 0, false
			}
			blockSizeBits = sizeBits + 1
			if blockSizeBits < 1 || blockSizeBits > 64 {
				return 0, false
			}
			trailingBits = 64 - leading - blockSizeBits
			if trailingBits < 0 || trailingBits > 64 {
				return 0, false
			}

			trailing = trailingBits
			blockSize = blockSizeBits
			blockValid = true
		}

		meaningful, ok := br.readBits(blockSizeBits)
		if !ok {
			return 0, false
		}

		shift := uint64(trailingBits) //nolint:gosec // trailingBits constrained to [0,64]
		prevValue ^= meaningful << shift
		prevFloat = math.Float64frombits(prevValue)
		if current == target {
			return prevFloat, true
		}
		current++
	}

	return 0, false
}

// At retrieves the float64 value at the specified index from the
// Gorilla-compressed data, decoding sequentially up to that index.
func (d NumericGorillaDecoder) At(data []byte, index int, count int) (float64, bool) {
	if len(data) == 0 || index < 0 || index >= count {
		return 0, false
	}

	br := newBitReader(data)

	firstBits, ok := br.readBits(64)
	if !ok {
		return 0, false
	}

	prevValue := firstBits
	prevFloat := math.Float64frombits(prevValue)
	if index == 0 {
		return prevFloat, true
	}
	remaining := index
	if remaining <= gorillaSmallSequenceThreshold {
		return d.decodeAtSmall(br, prevValue, remaining)
	}

	state := gorillaBlockState{}

	for current := 1; current <= index; {
		controlBit, ok := br.readBit()
		if !ok {
			return 0, false
		}

		if controlBit == 0 {
			if current == index {
				return prevFloat, true
			}
			current++

			for current <= index {
				controlBit, ok = br.readBit()
				if !ok {
					return 0, false
				}
				if controlBit != 0 {
					break
				}
				if current == index {
					return prevFloat, true
				}
				current++
			}

			if controlBit == 0 {
				return 0, false
			}
		}

		trailing, blockSize, ok := state.next(br)
		if !ok {
			return 0, false
		}

		meaningfulBits, ok := br.readBits(blockSize)
		if !ok {
			return 0, false
		}

		shift := uint64(trailing) //nolint:gosec // trailing validated by gorillaBlockState
		prevValue ^= meaningfulBits << shift
		prevFloat = math.Float64frombits(prevValue)
		if current == index {
			return prevFloat, true
		}
		current++
	}

	return 0, false
}

// ByteLength calculates the number of bytes consumed by count
// Gorilla-encoded float64 values, used to find the byte boundary of one
// zone entry's offset-index column within a payload storing several.
func (d NumericGorillaDecoder) ByteLength(data []byte, count int) int {
	if len(data) == 0 || count <= 0 {
		return 0
	}

	br := newBitReader(data)

	if _, ok := br.readBits(64); !ok {
		return 0
	}

	if count == 1 {
		return 8
	}

	state := gorillaBlockState{}

	for i := 1; i < count; i++ {
		controlBit, ok := br.readBit()
		if !ok {
			return 0
		}

		if controlBit == 0 {
			continue
		}

		_, blockSize, ok := state.next(br)
		if !ok {
			return 0
		}

		if _, ok := br.readBits(blockSize); !ok {
			return 0
		}
	}

	totalBits := br.bytePos*8 - br.bitCount
	totalBytes := (totalBits + 7) / 8

	return totalBytes
}

// bitReader provides efficient bit-level reading from a byte slice.
type bitReader struct {
	data     []byte
	bytePos  int
	bitBuf   uint64
	bitCount int
}

func newBitReader(data []byte) *bitReader {
	return &bitReader{
		data: data,
	}
}

func (br *bitReader) readBit() (uint64, bool) {
	if br.bitCount == 0 {
		if !br.fillBuffer() {
			return 0, false
		}
	}

	bit := br.bitBuf >> 63
	br.bitBuf <<= 1
	br.bitCount--

	return bit, true
}

func (br *bitReader) read5Bits() (int, bool) {
	if br.bitCount >= 5 {
		br.bitCount -= 5
		val := int((br.bitBuf >> 59) & 0x1F) //nolint:gosec
		br.bitBuf <<= 5

		return val, true
	}

	val, ok := br.readBits(5)

	return int(val), ok //nolint:gosec
}

func (br *bitReader) read6Bits() (int, bool) {
	if br.bitCount >= 6 {
		br.bitCount -= 6
		val := int((br.bitBuf >> 58) & 0x3F) //nolint:gosec
		br.bitBuf <<= 6

		return val, true
	}

	val, ok := br.readBits(6)

	return int(val), ok //nolint:gosec
}

func (br *bitReader) readBits(numBits int) (uint64, bool) {
	if numBits == 0 {
		return 0, true
	}

	if numBits <= br.bitCount {
		shift := 64 - numBits
		result := br.bitBuf >> shift
		br.bitBuf <<= numBits
		br.bitCount -= numBits

		return result, true
	}

	var result uint64
	firstRead := true

	for numBits > 0 {
		if br.bitCount == 0 {
			if !br.fillBuffer() {
				return 0, false
			}
		}

		bitsToRead := numBits
		if bitsToRead > br.bitCount {
			bitsToRead = br.bitCount
		}

		shift := 64 - bitsToRead
		shiftedBits := br.bitBuf >> shift

		if firstRead {
			result = shiftedBits
			firstRead = false
		} else {
			result = (result << bitsToRead) | shiftedBits
		}

		br.bitBuf <<= bitsToRead
		br.bitCount -= bitsToRead
		numBits -= bitsToRead
	}

	return result, true
}

func (br *bitReader) fillBuffer() bool {
	if br.bytePos >= len(br.data) {
		return false
	}

	bytesAvailable := len(br.data) - br.bytePos
	bytesToRead := 8
	if bytesToRead > bytesAvailable {
		bytesToRead = bytesAvailable
	}

	if bytesToRead == 8 {
		br.bitBuf = binary.BigEndian.Uint64(br.data[br.bytePos : br.bytePos+8])
		br.bytePos += 8
		br.bitCount = 64

		return true
	}

	br.bitBuf = 0
	for i := 0; i < bytesToRead; i++ {
		br.bitBuf = (br.bitBuf << 8) | uint64(br.data[br.bytePos])
		br.bytePos++
	}

	br.bitBuf <<= (8 - bytesToRead) * 8
	br.bitCount = bytesToRead * 8

	return true
}
