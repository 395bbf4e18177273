package fileio

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"
)

// ReadFile returns the entire contents of the file at path as a string.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", newIOError("read", path, err)
	}
	return string(data), nil
}

// WriteFile writes content to the file at path, creating it with mode 0644
// if missing and truncating it otherwise.
func WriteFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return newIOError("write", path, err)
	}
	return nil
}

// AppendToFile appends content to the file at path, creating it with mode
// 0644 if it does not exist.
func AppendToFile(path, content string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return newIOError("append", path, err)
	}
	_, err = f.WriteString(content)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return newIOError("append", path, err)
	}
	return nil
}

// readAllLines consumes lines from reader until EOF or, when limit >= 0,
// until limit lines have been read. Terminators ("\n" or "\r\n") are
// stripped; a trailing final newline yields no empty last element. Lines
// may be arbitrarily long.
func readAllLines(reader *bufio.Reader, limit int) ([]string, error) {
	var lines []string
	for limit < 0 || len(lines) < limit {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		atEOF := err == io.EOF
		if atEOF && line == "" {
			break
		}
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		lines = append(lines, line)
		if atEOF {
			break
		}
	}
	return lines, nil
}

// ReadLines returns the lines of the file at path without terminators.
// Both "\n" and "\r\n" endings are handled; a trailing final newline does
// not produce an empty last element. There is no limit on line length.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newIOError("read_lines", path, err)
	}
	defer f.Close()

	lines, err := readAllLines(bufio.NewReader(f), -1)
	if err != nil {
		return nil, newIOError("read_lines", path, err)
	}
	return lines, nil
}

// WriteLines writes lines joined with "\n" and no trailing newline,
// creating or truncating the file at path. ReadLines on the result returns
// the original slice.
func WriteLines(path string, lines []string) error {
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		return newIOError("write_lines", path, err)
	}
	return nil
}

// ReadFirstLines returns at most n leading lines of the file at path,
// fewer when the file is shorter; exceeding the line count is not an
// error. n <= 0 yields no lines.
func ReadFirstLines(path string, n int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newIOError("read_first_lines", path, err)
	}
	defer f.Close()

	if n <= 0 {
		return nil, nil
	}
	lines, err := readAllLines(bufio.NewReader(f), n)
	if err != nil {
		return nil, newIOError("read_first_lines", path, err)
	}
	return lines, nil
}

// FileExists reports whether path names an existing regular file.
// Directories and other non-regular entries are false.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// FileSize returns the size in bytes of the file at path.
func FileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, newIOError("stat", path, err)
	}
	return info.Size(), nil
}

// CreateDirAll creates the directory at path along with any missing
// parents, mode 0755. It succeeds when the directory already exists.
func CreateDirAll(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return newIOError("mkdir", path, err)
	}
	return nil
}

// CopyFile copies the regular file at src to dst, truncating dst if it
// exists, and returns the number of bytes copied. The source's permission
// bits are applied to dst.
func CopyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, newIOError("copy", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return 0, newIOError("copy", src, err)
	}
	perm := info.Mode().Perm()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return 0, newIOError("copy", dst, err)
	}
	n, err := io.Copy(out, in)
	if err == nil {
		// OpenFile's mode only applies when dst is created; an existing
		// dst keeps its old mode unless set explicitly.
		err = out.Chmod(perm)
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, newIOError("copy", copyErrPath(err, src, dst), err)
	}
	return n, nil
}

// copyErrPath attributes a mid-copy failure to the side that reported it.
// File read and write errors surface as *fs.PathError naming the failing
// file; anything unattributable is charged to dst.
func copyErrPath(err error, src, dst string) string {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) && pathErr.Path == src {
		return src
	}
	return dst
}

// DeleteFile removes the file at path. A missing file is an error
// (KindNotFound).
func DeleteFile(path string) error {
	if err := os.Remove(path); err != nil {
		return newIOError("delete", path, err)
	}
	return nil
}
