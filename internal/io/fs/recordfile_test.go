package fs

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/DataDog/zstd"

	"github.com/Cycloctane/xzspider2/internal/testutil"
)

func readRecordFile(t *testing.T, path string) string {
	t.Helper()

	reader, err := Open(path)
	testutil.AssertNoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	testutil.AssertNoError(t, err)
	return string(data)
}

func TestOpenPlainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.txt")
	testutil.AssertNoError(t, os.WriteFile(path, []byte("a\nb\n"), 0644))

	testutil.AssertEqual(t, "a\nb\n", readRecordFile(t, path))
}

func TestOpenGzipFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.txt.gz")

	fd, err := os.Create(path)
	testutil.AssertNoError(t, err)
	zw := gzip.NewWriter(fd)
	_, err = zw.Write([]byte("a\nb\n"))
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, zw.Close())
	testutil.AssertNoError(t, fd.Close())

	testutil.AssertEqual(t, "a\nb\n", readRecordFile(t, path))
}

func TestOpenZstdFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.txt.zst")

	compressed, err := zstd.Compress(nil, []byte("a\nb\n"))
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, os.WriteFile(path, compressed, 0644))

	testutil.AssertEqual(t, "a\nb\n", readRecordFile(t, path))
}

func TestOpenUnknownExtensionIsPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.dat")
	testutil.AssertNoError(t, os.WriteFile(path, []byte("raw"), 0644))

	testutil.AssertEqual(t, "raw", readRecordFile(t, path))
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestOpenCorruptGzipFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.txt.gz")
	testutil.AssertNoError(t, os.WriteFile(path, []byte("not gzip"), 0644))

	_, err := Open(path)
	if err == nil {
		t.Fatal("expected error for corrupt gzip header")
	}
}
