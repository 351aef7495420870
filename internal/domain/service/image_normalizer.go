package service

// ImageNormalizer converts uploaded pictures into the form printed on documents.
type ImageNormalizer interface {
	// Normalize decodes a JPEG, PNG or WebP image, shrinks it to fit the
	// configured bounds and re-encodes it as PNG.
	Normalize(data []byte) ([]byte, error)
}
