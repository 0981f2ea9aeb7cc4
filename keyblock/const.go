package keyblock

const (
	// HeaderSize is the size of the fixed block header in bytes.
	HeaderSize = 16
	// TrailerSize is the size of the xxHash64 checksum trailer in bytes.
	TrailerSize = 8

	// Magic identifies a key block ("KB" little-endian).
	Magic uint16 = 0x424B
	// Version is the only block layout version written and accepted.
	Version uint8 = 1

	// DefaultRestartInterval is the number of keys between restart points.
	DefaultRestartInterval = 16
	// MaxRestartInterval bounds the linear scan performed after a restart lookup.
	MaxRestartInterval = 4096

	restartSize = 4
)
