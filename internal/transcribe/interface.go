package transcribe

import "context"

// Transcriber converts one audio chunk to text.
type Transcriber interface {
	Transcribe(ctx context.Context, chunkPath string) (string, error)
}
