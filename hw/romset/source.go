package romset

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned by sources which do not contain a file.
var ErrNotFound = errors.New("rom file not found")

// A Source provides the content of ROM files.
type Source interface {
	ReadFile(name string) ([]byte, error)
	String() string
}

// DirSource reads ROM files from a directory.
type DirSource string

func (d DirSource) ReadFile(name string) ([]byte, error) {
	buf, err := os.ReadFile(filepath.Join(string(d), name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return buf, err
}

func (d DirSource) String() string { return string(d) }

// ZipSource reads ROM files from a zip archive. File names are matched case
// insensitively, ignoring directories inside the archive.
type ZipSource struct {
	path  string
	r     *zip.ReadCloser
	files map[string]*zip.File
}

func OpenZip(path string) (*ZipSource, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	z := &ZipSource{path: path, r: r, files: make(map[string]*zip.File, len(r.File))}
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		z.files[strings.ToLower(filepath.Base(f.Name))] = f
	}
	return z, nil
}

func (z *ZipSource) ReadFile(name string) ([]byte, error) {
	f, ok := z.files[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func (z *ZipSource) Close() error   { return z.r.Close() }
func (z *ZipSource) String() string { return z.path }

// Sources tries each source in turn. A clone is typically loaded from its
// own archive first, then from its parent's.
type Sources []Source

func (ss Sources) ReadFile(name string) ([]byte, error) {
	for _, s := range ss {
		buf, err := s.ReadFile(name)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		return buf, err
	}
	return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
}

func (ss Sources) String() string {
	strs := make([]string, len(ss))
	for i, s := range ss {
		strs[i] = s.String()
	}
	return strings.Join(strs, ",")
}

// Close closes all sources which need it.
func (ss Sources) Close() error {
	var errs []error
	for _, s := range ss {
		if c, ok := s.(io.Closer); ok {
			errs = append(errs, c.Close())
		}
	}
	return errors.Join(errs...)
}

// Find looks for the ROMs of the named sets in each directory of paths. Both
// <name>.zip archives and <name> directories are considered, in that order.
// The caller must close the returned sources.
func Find(paths []string, names ...string) (Sources, error) {
	var ss Sources
	for _, name := range names {
		for _, dir := range paths {
			zpath := filepath.Join(dir, name+".zip")
			if _, err := os.Stat(zpath); err == nil {
				z, err := OpenZip(zpath)
				if err != nil {
					ss.Close()
					return nil, err
				}
				ss = append(ss, z)
			}
			if fi, err := os.Stat(filepath.Join(dir, name)); err == nil && fi.IsDir() {
				ss = append(ss, DirSource(filepath.Join(dir, name)))
			}
		}
	}
	if len(ss) == 0 {
		return nil, fmt.Errorf("no rom archive or directory for %s in %s", strings.Join(names, ","), strings.Join(paths, ","))
	}
	return ss, nil
}
