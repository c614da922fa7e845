package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

var testData = []byte("NINTENDO GAME BOY CARTRIDGE")

func TestDecompress(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		got, err := Decompress("tetris.gb", testData)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got, testData) {
			t.Errorf("expected %q, got %q", testData, got)
		}
	})
	t.Run("gzip", func(t *testing.T) {
		var buf bytes.Buffer
		w := gzip.NewWriter(&buf)
		if _, err := w.Write(testData); err != nil {
			t.Fatal(err)
		}
		if err := w.Close(); err != nil {
			t.Fatal(err)
		}

		got, err := Decompress("tetris.gb.GZ", buf.Bytes())
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got, testData) {
			t.Errorf("expected %q, got %q", testData, got)
		}
	})
	t.Run("zip", func(t *testing.T) {
		var buf bytes.Buffer
		w := zip.NewWriter(&buf)
		f, err := w.Create("tetris.gb")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := f.Write(testData); err != nil {
			t.Fatal(err)
		}
		if err := w.Close(); err != nil {
			t.Fatal(err)
		}

		got, err := Decompress("tetris.zip", buf.Bytes())
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got, testData) {
			t.Errorf("expected %q, got %q", testData, got)
		}
	})
	t.Run("empty zip", func(t *testing.T) {
		var buf bytes.Buffer
		if err := zip.NewWriter(&buf).Close(); err != nil {
			t.Fatal(err)
		}
		if _, err := Decompress("empty.zip", buf.Bytes()); !errors.Is(err, ErrEmptyArchive) {
			t.Errorf("expected %v, got %v", ErrEmptyArchive, err)
		}
	})
	t.Run("corrupt gzip", func(t *testing.T) {
		if _, err := Decompress("bad.gz", testData); err == nil {
			t.Errorf("expected an error")
		}
	})
	t.Run("corrupt 7z", func(t *testing.T) {
		if _, err := Decompress("bad.7z", testData); err == nil {
			t.Errorf("expected an error")
		}
	})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rom.gb")
	if err := os.WriteFile(path, testData, 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, testData) {
		t.Errorf("expected %q, got %q", testData, got)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.gb")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected %v, got %v", os.ErrNotExist, err)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(1, 0, 10); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
	if got := Clamp(1, 11, 10); got != 10 {
		t.Errorf("expected 10, got %d", got)
	}
	if got := Clamp(0.5, 0.75, 1.0); got != 0.75 {
		t.Errorf("expected 0.75, got %f", got)
	}
	if got := Clamp[uint64](0, 5, 3); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
}

func TestBytes(t *testing.T) {
	if got := BytesToUint16(0x12, 0x34); got != 0x1234 {
		t.Errorf("expected 0x1234, got 0x%04X", got)
	}
	if upper, lower := Uint16ToBytes(0xBEEF); upper != 0xBE || lower != 0xEF {
		t.Errorf("expected (0xBE, 0xEF), got (0x%02X, 0x%02X)", upper, lower)
	}
}
