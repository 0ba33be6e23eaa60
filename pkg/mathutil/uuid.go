package mathutil

import (
	"github.com/google/uuid"
)

// GenerateUUID returns a random lowercase version 4 UUID string in the
// 8-4-4-4-12 layout.
func GenerateUUID() string {
	return uuid.NewString()
}

// UUIDFrom builds a version 4 UUID from draws of src, so a seeded Rand
// yields reproducible identifiers.
func UUIDFrom(src Source) string {
	// sourceReader never fails, so neither does NewRandomFromReader.
	id, _ := uuid.NewRandomFromReader(sourceReader{src})
	return id.String()
}

// sourceReader turns each draw of a Source into one byte.
type sourceReader struct {
	src Source
}

func (r sourceReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r.src.Float64() * 256)
	}
	return len(p), nil
}
