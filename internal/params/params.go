package params

const (
	SecParam = 256
	SecBytes = SecParam / 8

	// BytesScalar is the length of the canonical big-endian scalar encoding.
	BytesScalar = 32
	// BytesPoint is the length of a compressed SEC1 point encoding.
	BytesPoint = 33
	// BytesSignature is the length of a Schnorr signature (R ‖ s).
	BytesSignature = BytesPoint + BytesScalar
)
