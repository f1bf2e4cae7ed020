package workspace

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/meeting-scribe/internal/logger"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "standup", "standup"},
		{"spaces", "Weekly Standup", "weekly_standup"},
		{"punctuation", "Q3 review: budget!", "q3_review__budget_"},
		{"keeps dashes and underscores", "a-b_c", "a-b_c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeName(tt.in); got != tt.want {
				t.Errorf("SanitizeName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCreateAndCleanup(t *testing.T) {
	base := t.TempDir()
	outputDir := filepath.Join(base, "output")
	tempDir := filepath.Join(base, "temp")

	w, err := Create(outputDir, tempDir, "2024-06-01", "standup")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if w.RunID == "" {
		t.Error("RunID is empty")
	}

	persistent := []string{w.Transcriptions, w.Diarizations, w.MergedOutput, w.Summary, w.Figures}
	ephemeral := []string{w.TempWAV, w.TempChunks, w.TempTranscriptions}

	for _, dir := range append(append([]string{}, persistent...), ephemeral...) {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			t.Errorf("directory %s was not created: %v", dir, err)
		}
	}

	wantPrefix := filepath.Join(outputDir, "2024-06-01-standup")
	if !strings.HasPrefix(w.Transcriptions, wantPrefix) {
		t.Errorf("Transcriptions = %s, want under %s", w.Transcriptions, wantPrefix)
	}

	w.Cleanup(context.Background(), logger.New("error"))

	for _, dir := range ephemeral {
		if _, err := os.Stat(dir); !os.IsNotExist(err) {
			t.Errorf("ephemeral directory %s survived Cleanup", dir)
		}
	}
	for _, dir := range persistent {
		if _, err := os.Stat(dir); err != nil {
			t.Errorf("persistent directory %s removed by Cleanup", dir)
		}
	}

	// Cleanup is safe to run twice.
	w.Cleanup(context.Background(), logger.New("error"))
}

func TestCreateUniqueRunIDs(t *testing.T) {
	base := t.TempDir()

	a, err := Create(filepath.Join(base, "out"), filepath.Join(base, "tmp"), "2024-06-01", "m")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Create(filepath.Join(base, "out"), filepath.Join(base, "tmp"), "2024-06-01", "m")
	if err != nil {
		t.Fatal(err)
	}

	if a.RunID == b.RunID {
		t.Error("two workspaces share a RunID")
	}
	if a.TempChunks == b.TempChunks {
		t.Error("two workspaces share a temp chunks directory")
	}
}
