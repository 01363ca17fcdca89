package mediadissect_test

import (
	"context"
	"errors"
	"testing"

	"github.com/simonhull/mediadissect"
)

func TestOpenMany_Cancellation(t *testing.T) {
	paths := make([]string, 5)
	for i := range paths {
		paths[i] = writeTempFile(t, "cancel*.m4a", buildM4A())
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	files, err := mediadissect.OpenMany(ctx, paths...)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if files != nil {
		t.Error("a failed batch must not hand back files")
	}
}

func TestOpenMany_PartialFailure(t *testing.T) {
	validPath := writeTempFile(t, "valid*.m4a", buildM4A())
	paths := []string{
		validPath,
		"/nonexistent/file.m4a",
		validPath,
	}

	files, err := mediadissect.OpenMany(context.Background(), paths...)
	if err == nil {
		t.Fatal("expected error from nonexistent file")
	}
	if files != nil {
		t.Error("a failed batch must not hand back files")
	}
}

func TestOpenMany_OrderPreserved(t *testing.T) {
	mp3Path := writeTempFile(t, "order*.mp3", buildID3v23(frameV23("TIT2", textPayload("First"))))
	m4aPath := writeTempFile(t, "order*.m4a", buildM4A())

	files, err := mediadissect.OpenMany(context.Background(), mp3Path, m4aPath)
	if err != nil {
		t.Fatalf("OpenMany failed: %v", err)
	}
	defer func() {
		for _, f := range files {
			f.Close()
		}
	}()

	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(files))
	}
	if files[0].Format != mediadissect.FormatID3v23 {
		t.Errorf("expected first result ID3v2.3, got %v", files[0].Format)
	}
	if files[1].Format != mediadissect.FormatISOBMFF {
		t.Errorf("expected second result ISOBMFF, got %v", files[1].Format)
	}
}

func TestOpenMany_Empty(t *testing.T) {
	files, err := mediadissect.OpenMany(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if files != nil {
		t.Errorf("expected nil result for no paths, got %v", files)
	}
}

func TestOpenContext_Cancelled(t *testing.T) {
	path := writeTempFile(t, "ctx*.m4a", buildM4A())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := mediadissect.OpenContext(ctx, path); err == nil {
		t.Error("expected error from cancelled context")
	}
}

func TestOpenContext_Valid(t *testing.T) {
	path := writeTempFile(t, "ctx*.m4a", buildM4A())

	file, err := mediadissect.OpenContext(context.Background(), path)
	if err != nil {
		t.Fatalf("OpenContext failed: %v", err)
	}
	defer file.Close()

	if file.Format != mediadissect.FormatISOBMFF {
		t.Errorf("expected FormatISOBMFF, got %v", file.Format)
	}
}
