package compose

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

func TestTextDeliverySidecar(t *testing.T) {
	dir := t.TempDir()
	st := DefaultStyle()
	st.SidecarDir = dir

	d, err := newTextDelivery(st)
	if err != nil {
		t.Fatalf("newTextDelivery: %v", err)
	}

	kw := ffmpeg.KwArgs{}
	text := "RRSP vs TFSA: 100% honest\ntwo lines"
	if err := d.apply(kw, "caption_00.txt", text); err != nil {
		t.Fatalf("apply: %v", err)
	}

	// The file carries the raw text untouched; only the path is escaped.
	raw, err := os.ReadFile(filepath.Join(dir, "caption_00.txt"))
	if err != nil {
		t.Fatalf("sidecar not written: %v", err)
	}
	if string(raw) != text {
		t.Fatalf("sidecar content = %q; want %q", raw, text)
	}

	ref, ok := kw["textfile"].(string)
	if !ok {
		t.Fatalf("textfile option missing: %v", kw)
	}
	if strings.Contains(ref, ":") && !strings.Contains(ref, `\:`) {
		t.Fatalf("textfile path not escaped: %q", ref)
	}
	if _, ok := kw["text"]; ok {
		t.Fatalf("sidecar delivery must not also set inline text")
	}
}

func TestTextDeliverySidecarOverwrite(t *testing.T) {
	dir := t.TempDir()
	st := DefaultStyle()
	st.SidecarDir = dir

	d, err := newTextDelivery(st)
	if err != nil {
		t.Fatalf("newTextDelivery: %v", err)
	}

	// Leftovers from an aborted run are overwritten, not appended to.
	for _, text := range []string{"first run leftovers", "second"} {
		if err := d.apply(ffmpeg.KwArgs{}, "title.txt", text); err != nil {
			t.Fatalf("apply: %v", err)
		}
	}
	raw, _ := os.ReadFile(filepath.Join(dir, "title.txt"))
	if string(raw) != "second" {
		t.Fatalf("sidecar after rerun = %q; want %q", raw, "second")
	}
}

func TestTextDeliveryInline(t *testing.T) {
	st := DefaultStyle()
	st.InlineText = true

	d, err := newTextDelivery(st)
	if err != nil {
		t.Fatalf("newTextDelivery: %v", err)
	}

	kw := ffmpeg.KwArgs{}
	if err := d.apply(kw, "title.txt", "50% off: today, eh?"); err != nil {
		t.Fatalf("apply: %v", err)
	}
	got, ok := kw["text"].(string)
	if !ok {
		t.Fatalf("text option missing: %v", kw)
	}
	want := quote(`50\% off\: today\, eh?`)
	if got != want {
		t.Fatalf("inline text = %q; want %q", got, want)
	}
}
