package ffmpeg

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"move-clipper/domain/clip"
)

// mockRunner records commands instead of executing them
type mockRunner struct {
	runCalls  [][]string
	runErr    error
	output    []byte
	outputErr error
}

func (m *mockRunner) Run(ctx context.Context, name string, args ...string) error {
	m.runCalls = append(m.runCalls, append([]string{name}, args...))
	return m.runErr
}

func (m *mockRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return m.output, m.outputErr
}

func TestExtractBuildsCommand(t *testing.T) {
	runner := &mockRunner{}
	extractor := NewExtractor(WithCommandRunner(runner))

	window := clip.Window{Start: 4.1833333, End: 5.8166667}
	err := extractor.Extract(context.Background(), "videos/set1.mp4", window, "output/Ryu/Hadouken/Ryu_Hadouken_001.mp4")
	if err != nil {
		t.Fatalf("Extract() unexpected error: %v", err)
	}

	if len(runner.runCalls) != 1 {
		t.Fatalf("expected 1 ffmpeg invocation, got %d", len(runner.runCalls))
	}
	want := []string{
		"ffmpeg",
		"-i", "videos/set1.mp4",
		"-ss", "4.183",
		"-to", "5.817",
		"-c:v", "libx264",
		"-c:a", "aac",
		"-y",
		"output/Ryu/Hadouken/Ryu_Hadouken_001.mp4",
	}
	if !reflect.DeepEqual(runner.runCalls[0], want) {
		t.Errorf("ffmpeg args = %v, want %v", runner.runCalls[0], want)
	}
}

func TestExtractPropagatesFailure(t *testing.T) {
	runner := &mockRunner{runErr: errors.New("exit status 1")}
	extractor := NewExtractor(WithCommandRunner(runner))

	err := extractor.Extract(context.Background(), "in.mp4", clip.Window{Start: 0, End: 1}, "out.mp4")
	if err == nil {
		t.Fatal("Extract() expected error when ffmpeg fails")
	}
}

func TestVerifyInstalled(t *testing.T) {
	ok := NewExtractor(WithCommandRunner(&mockRunner{output: []byte("ffmpeg version 7.0")}))
	if err := ok.VerifyInstalled(context.Background()); err != nil {
		t.Errorf("VerifyInstalled() unexpected error: %v", err)
	}

	missing := NewExtractor(WithCommandRunner(&mockRunner{outputErr: errors.New("not found")}))
	if err := missing.VerifyInstalled(context.Background()); err == nil {
		t.Error("VerifyInstalled() expected error when ffmpeg is missing")
	}
}

func TestProberDuration(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		wantErr bool
		want    float64
	}{
		{
			name:   "plain duration",
			output: "125.04\n",
			want:   125.04,
		},
		{
			name:   "integer duration",
			output: "60",
			want:   60,
		},
		{
			name:    "unparsable output",
			output:  "N/A",
			wantErr: true,
		},
		{
			name:    "zero duration",
			output:  "0.0",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prober := NewProber(WithProberCommandRunner(&mockRunner{output: []byte(tt.output)}))
			got, err := prober.Duration(context.Background(), "videos/set1.mp4")

			if tt.wantErr {
				if err == nil {
					t.Fatalf("Duration() expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Duration() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Duration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProberDurationCommandFailure(t *testing.T) {
	prober := NewProber(WithProberCommandRunner(&mockRunner{outputErr: errors.New("no such file")}))
	if _, err := prober.Duration(context.Background(), "missing.mp4"); err == nil {
		t.Error("Duration() expected error when ffprobe fails")
	}
}
