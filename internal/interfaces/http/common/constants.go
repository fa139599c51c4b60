package common

const (
	// MaxFormRequestBody limits urlencoded and multipart application form bodies.
	MaxFormRequestBody = 1 << 20
	// MaxMultipartMemory is the in-memory part of a multipart body before spilling to disk.
	MaxMultipartMemory = 1 << 20
)
