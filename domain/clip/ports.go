package clip

import "context"

// Extractor defines the interface for cutting a time window out of a video.
// This is a port that can be implemented by different infrastructure adapters.
type Extractor interface {
	// Extract writes the [window.Start, window.End] slice of sourcePath to outputPath.
	Extract(ctx context.Context, sourcePath string, window Window, outputPath string) error
}

// DurationProber reports a video's duration in seconds.
type DurationProber interface {
	Duration(ctx context.Context, path string) (float64, error)
}

// FileChecker defines the interface for checking file existence.
// This is used to validate that source videos exist before extraction.
type FileChecker interface {
	// Exists returns true if the file exists
	Exists(path string) bool
}
