package parser

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/theoremus-urban-solutions/gtfs-validator/notice"
)

// ErrCannotUnzip is returned by Open when the input is neither a directory
// nor a readable zip archive.
var ErrCannotUnzip = errors.New("cannot unzip input archive")

// Source is an opened feed.
type Source struct {
	path  string
	zr    *zip.ReadCloser
	files map[string]*zip.File // zip entries by base name
	dir   string
	names []string
	// folders are the directories found inside a zip archive, sorted.
	folders []string
}

// Open opens a feed from a directory or a zip archive.
func Open(p string) (*Source, error) {
	info, err := os.Stat(p)
	if err != nil {
		return nil, fmt.Errorf("open feed %s: %w", p, err)
	}
	if info.IsDir() {
		return openDir(p)
	}
	zr, err := zip.OpenReader(p)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrCannotUnzip, p, err)
	}
	s := &Source{path: p, zr: zr, files: map[string]*zip.File{}}
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "__MACOSX/") {
			continue
		}
		if f.FileInfo().IsDir() {
			s.addFolder(strings.TrimSuffix(f.Name, "/"))
			continue
		}
		if dir := path.Dir(f.Name); dir != "." {
			s.addFolder(dir)
		}
		name := path.Base(f.Name)
		if strings.HasPrefix(name, ".") {
			continue
		}
		if _, dup := s.files[name]; dup {
			continue
		}
		s.files[name] = f
		s.names = append(s.names, name)
	}
	slices.Sort(s.names)
	slices.Sort(s.folders)
	return s, nil
}

func (s *Source) addFolder(dir string) {
	if dir != "" && !slices.Contains(s.folders, dir) {
		s.folders = append(s.folders, dir)
	}
}

func openDir(dir string) (*Source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read feed directory %s: %w", dir, err)
	}
	s := &Source{path: dir, dir: dir}
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		s.names = append(s.names, e.Name())
	}
	return s, nil
}

// Path returns the path the source was opened from.
func (s *Source) Path() string { return s.path }

// Names returns the file names of the feed, sorted.
func (s *Source) Names() []string { return slices.Clone(s.names) }

// Folders returns the directories inside a zip archive. Their files are
// read as if they were at the archive root.
func (s *Source) Folders() []string { return slices.Clone(s.folders) }

func (s *Source) Has(name string) bool { return slices.Contains(s.names, name) }

func (s *Source) open(name string) (io.ReadCloser, error) {
	if s.zr != nil {
		f, ok := s.files[name]
		if !ok {
			return nil, fmt.Errorf("%s: %w", name, os.ErrNotExist)
		}
		return f.Open()
	}
	return os.Open(filepath.Join(s.dir, name))
}

func (s *Source) Close() error {
	if s.zr != nil {
		return s.zr.Close()
	}
	return nil
}

// CheckFiles reports folders inside the archive, required tables missing
// from the feed and files that are not part of GTFS. Excluded tables are not
// required.
func (s *Source) CheckFiles(tables []Table, excluded []string, sink notice.Sink) {
	for _, folder := range s.folders {
		sink.AddNotice(notice.NewInputZipContainsFolder(filepath.Base(s.path), folder))
	}
	for _, t := range tables {
		if t.Required && !s.Has(t.Name) && !slices.Contains(excluded, t.Name) {
			sink.AddNotice(notice.NewMissingRequiredFile(t.Name))
		}
	}
	for _, name := range s.names {
		if strings.HasSuffix(name, ".txt") && !knownFiles[name] {
			sink.AddNotice(notice.NewExtraFileFound(name))
		}
	}
}
