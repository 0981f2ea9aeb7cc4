package compress

import (
	"fmt"
	"testing"
)

func BenchmarkAllCodecs_Compress(b *testing.B) {
	for _, n := range []int{64, 1024, 8192} {
		payload := keyRunPayload(n)
		for name, codec := range getAllCodecs() {
			b.Run(fmt.Sprintf("%s/keys=%d", name, n), func(b *testing.B) {
				b.SetBytes(int64(len(payload)))
				b.ReportAllocs()
				for b.Loop() {
					_, _ = codec.Compress(payload)
				}
			})
		}
	}
}

func BenchmarkAllCodecs_Decompress(b *testing.B) {
	for _, n := range []int{64, 1024, 8192} {
		payload := keyRunPayload(n)
		for name, codec := range getAllCodecs() {
			packed, err := codec.Compress(payload)
			if err != nil {
				b.Fatal(err)
			}
			b.Run(fmt.Sprintf("%s/keys=%d", name, n), func(b *testing.B) {
				b.SetBytes(int64(len(payload)))
				b.ReportAllocs()
				for b.Loop() {
					_, _ = codec.Decompress(packed, len(payload))
				}
			})
		}
	}
}

func BenchmarkAllCodecs_Ratio(b *testing.B) {
	payload := keyRunPayload(4096)
	for name, codec := range getAllCodecs() {
		b.Run(name, func(b *testing.B) {
			var packed []byte
			for b.Loop() {
				packed, _ = codec.Compress(payload)
			}
			b.ReportMetric(float64(len(packed))/float64(len(payload)), "ratio")
		})
	}
}

func BenchmarkAllCodecs_Parallel(b *testing.B) {
	payload := keyRunPayload(1024)
	for name, codec := range getAllCodecs() {
		packed, _ := codec.Compress(payload)
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					_, _ = codec.Decompress(packed, len(payload))
				}
			})
		})
	}
}
