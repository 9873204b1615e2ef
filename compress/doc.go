// Package compress provides compression and decompression codecs for
// exported data-provider artifacts.
//
// The export driver's "blob2" output format (spec.md §6.4) wraps each
// exported payload (one marker and identifier) in one of these codecs
// before it is written to the sink, trading CPU for the artifact's
// on-disk size.
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): no compression, fastest, largest.
//   - Zstd (format.CompressionZstd): best compression ratio, moderate
//     speed -- the default for cold-storage artifacts.
//   - S2 (format.CompressionS2): balanced speed and ratio.
//   - LZ4 (format.CompressionLZ4): fastest decompression, moderate
//     ratio -- good for read-heavy deployments that decompress an
//     artifact far more often than they produce one.
//
// # Thread Safety
//
// All codec implementations are safe for concurrent use; the export
// driver's one-marker-per-worker fan-out shares a single codec
// instance across workers.
package compress
