// Package keyblock stores a sorted run of lexkey keys in a compact,
// self-checking binary block.
//
// Keys that share a prefix, which is the normal case for composite keys
// grouped by tenant, table or entity, are prefix-compressed against their
// predecessor. The resulting payload can additionally be compressed with any
// codec from the compress package.
//
// # Block Layout
//
//	+----------------------+  offset 0
//	| header (16 bytes)    |  magic, version, compression, count, rawLen, payloadLen
//	+----------------------+  offset 16
//	| payload              |  compressed form of the raw payload below
//	+----------------------+
//	| xxHash64 (8 bytes)   |  over header and payload
//	+----------------------+
//
// The raw payload is:
//
//	entry*         uvarint shared | uvarint unshared | suffix
//	restart*       u32 offset of every restart entry
//	restartCount   u32
//
// Restart entries store their key in full (shared is 0), which lets Seek
// binary search the restart offsets before scanning forward. All fixed-width
// integers in the framing are little-endian.
//
// # Usage
//
//	w, err := keyblock.NewWriter(keyblock.WithCompression(format.CompressionS2))
//	for _, k := range sortedKeys {
//	    if err := w.Add(k); err != nil {
//	        return err
//	    }
//	}
//	data, err := w.Finish()
//
//	r, err := keyblock.Open(data)
//	for k := range r.Prefix([]byte("tenant-a")) {
//	    fmt.Println(k)
//	}
package keyblock
