package video

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestProcessFileMalformedInput(t *testing.T) {
	dir := t.TempDir()
	jobFile := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(jobFile, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := NewProcessor(DefaultProfile(), t.TempDir())
	if err != nil {
		t.Fatalf("NewProcessor: %v", err)
	}

	err = p.ProcessFile(jobFile)
	if err == nil {
		t.Fatalf("ProcessFile accepted malformed input")
	}
	if !strings.Contains(err.Error(), "malformed job input") {
		t.Fatalf("error does not identify the stage: %v", err)
	}
}

func TestProcessMissingAudio(t *testing.T) {
	p, err := NewProcessor(DefaultProfile(), t.TempDir())
	if err != nil {
		t.Fatalf("NewProcessor: %v", err)
	}
	if err := p.Process(Job{Content: Content{Title: "t"}}); err == nil {
		t.Fatalf("Process accepted a job without audio")
	}
}

func TestIsURL(t *testing.T) {
	cases := map[string]bool{
		"https://cdn.example.com/a.mp3": true,
		"http://cdn.example.com/a.mp3":  true,
		"/tmp/a.mp3":                    false,
		"relative/a.mp3":                false,
	}
	for in, want := range cases {
		if got := isURL(in); got != want {
			t.Fatalf("isURL(%q) = %v; want %v", in, got, want)
		}
	}
}
