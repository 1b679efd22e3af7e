// Package catalog describes the templates available under a templates root.
package catalog

import (
	"bufio"
	stderrors "errors"
	"io"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/codec/pkg/errors"
	"github.com/arthur-debert/codec/pkg/filesystem"
	"github.com/arthur-debert/codec/pkg/logging"
	"github.com/arthur-debert/codec/pkg/template"
)

// Kind is the filesystem kind of a template.
type Kind int

const (
	KindFile Kind = iota
	KindDir
	KindLink
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "dir"
	case KindLink:
		return "link"
	default:
		return "other"
	}
}

// Entry is one template under the templates root.
type Entry struct {
	Name string
	Path string
	Kind Kind
}

// List returns the templates directly under root, sorted by name.
func List(fsys filesystem.FS, root string) ([]Entry, error) {
	log := logging.GetLogger("catalog")

	info, err := fsys.Stat(root)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, errors.ErrTemplateNotFound, "templates directory %s not found", root).
				WithDetail(errors.DetailPath, root)
		}
		return nil, errors.Wrapf(err, errors.ErrTemplateNotAccessible, "templates directory %s is not accessible", root).
			WithDetail(errors.DetailPath, root)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrTemplateNotValid, "templates path %s is not a directory", root).
			WithDetail(errors.DetailPath, root)
	}

	dirEntries, err := fsys.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrCouldNotRead, "could not read %s", root).
			WithDetail(errors.DetailPath, root)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		entries = append(entries, Entry{
			Name: de.Name(),
			Path: filepath.Join(root, de.Name()),
			Kind: kindOf(de.Type()),
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	log.Debug().Str("root", root).Int("templates", len(entries)).Msg("Listed templates")
	return entries, nil
}

// Names returns the names of the templates under root. Errors yield nil.
func Names(fsys filesystem.FS, root string) []string {
	entries, err := List(fsys, root)
	if err != nil {
		return nil
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

func kindOf(mode fs.FileMode) Kind {
	switch {
	case mode&fs.ModeSymlink != 0:
		return KindLink
	case mode.IsDir():
		return KindDir
	case mode.IsRegular():
		return KindFile
	default:
		return KindOther
	}
}

// Variables returns the distinct variables a template references in entry
// names below its root and in file contents, sorted. Symbolic links inside
// the template are skipped.
func Variables(fsys filesystem.FS, engine *template.Engine, path string) ([]string, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, errors.ErrTemplateNotFound, "template %s not found", path).
				WithDetail(errors.DetailPath, path)
		}
		return nil, errors.Wrapf(err, errors.ErrTemplateNotAccessible, "template %s is not accessible", path).
			WithDetail(errors.DetailPath, path)
	}

	seen := make(map[string]struct{})
	switch {
	case info.Mode().IsRegular():
		err = collectFile(fsys, engine, path, seen)
	case info.IsDir():
		err = collectDir(fsys, engine, path, seen)
	default:
		err = errors.Newf(errors.ErrTemplateNotValid, "template %s is neither a file nor a directory", path).
			WithDetail(errors.DetailPath, path)
	}
	if err != nil {
		return nil, err
	}

	vars := make([]string, 0, len(seen))
	for v := range seen {
		vars = append(vars, v)
	}
	sort.Strings(vars)
	return vars, nil
}

func collectDir(fsys filesystem.FS, engine *template.Engine, dir string, seen map[string]struct{}) error {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrCouldNotRead, "could not read directory %s", dir).
			WithDetail(errors.DetailPath, dir)
	}
	for _, entry := range entries {
		kind := kindOf(entry.Type())
		if kind == KindLink || kind == KindOther {
			continue
		}
		for _, v := range engine.Variables(entry.Name()) {
			seen[v] = struct{}{}
		}
		path := filepath.Join(dir, entry.Name())
		if kind == KindDir {
			err = collectDir(fsys, engine, path, seen)
		} else {
			err = collectFile(fsys, engine, path, seen)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func collectFile(fsys filesystem.FS, engine *template.Engine, path string, seen map[string]struct{}) error {
	f, err := fsys.Open(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrNotOpenable, "could not open %s", path).
			WithDetail(errors.DetailPath, path)
	}
	defer func() { _ = f.Close() }()

	r := bufio.NewReader(f)
	for {
		line, readErr := r.ReadString('\n')
		if line != "" {
			for _, v := range engine.Variables(strings.TrimRight(line, "\r\n")) {
				seen[v] = struct{}{}
			}
		}
		if readErr == io.EOF {
			return nil
		}
		if readErr != nil {
			return errors.Wrapf(readErr, errors.ErrCouldNotRead, "could not read %s", path).
				WithDetail(errors.DetailPath, path)
		}
	}
}
