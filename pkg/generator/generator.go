// Package generator turns a template into files.
//
// A template is a single file or a directory. A single file is rendered
// into the output path as is. A directory's entries are rendered into the
// output's parent directory, with every entry name substituted as well as
// every line of every file, so that a template entry "{(name)}.go"
// generated as "cmd/server" becomes "cmd/server.go".
package generator

import (
	"bufio"
	"context"
	stderrors "errors"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/codec/pkg/errors"
	"github.com/arthur-debert/codec/pkg/filesystem"
	"github.com/arthur-debert/codec/pkg/logging"
	"github.com/arthur-debert/codec/pkg/template"
)

const dirPerm = 0755

// Request describes one generation run.
type Request struct {
	// Template is the path of the template file or directory.
	Template string
	// Output is the path being generated. For directory templates its
	// parent receives the template's entries.
	Output string
	Vars   template.Bindings
}

// Result lists what a run wrote, in write order.
type Result struct {
	Files []string
	Dirs  []string
}

// Generator renders templates onto a filesystem.
type Generator struct {
	fs     filesystem.FS
	engine *template.Engine
}

// New returns a Generator writing to fsys. A nil engine uses the built-in
// pipes.
func New(fsys filesystem.FS, engine *template.Engine) *Generator {
	if engine == nil {
		engine = template.NewEngine(nil)
	}
	return &Generator{fs: fsys, engine: engine}
}

// Generate renders req.Template.
//
// The first failure stops the run. Files written before it stay where they
// are; Result is returned alongside the error so callers can report them.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	log := logging.GetLogger("generator")
	res := &Result{}

	info, err := g.fs.Stat(req.Template)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return res, errors.Wrapf(err, errors.ErrTemplateNotFound, "template %s not found", req.Template).
				WithDetail(errors.DetailPath, req.Template)
		}
		return res, errors.Wrapf(err, errors.ErrTemplateNotAccessible, "template %s is not accessible", req.Template).
			WithDetail(errors.DetailPath, req.Template)
	}

	switch {
	case info.Mode().IsRegular():
		log.Debug().Str("template", req.Template).Str("output", req.Output).Msg("Generating from file template")
		if err := g.mkdirAll(filepath.Dir(req.Output)); err != nil {
			return res, err
		}
		if err := g.renderFile(req.Template, req.Output, req.Vars); err != nil {
			return res, err
		}
		res.Files = append(res.Files, req.Output)

	case info.IsDir():
		dest := filepath.Dir(filepath.Clean(req.Output))
		log.Debug().Str("template", req.Template).Str("dest", dest).Msg("Generating from directory template")
		if err := g.mkdirAll(dest); err != nil {
			return res, err
		}
		if err := g.renderDir(ctx, req.Template, dest, req.Vars, res); err != nil {
			return res, err
		}

	default:
		return res, errors.Newf(errors.ErrTemplateNotValid, "template %s is neither a file nor a directory", req.Template).
			WithDetail(errors.DetailPath, req.Template)
	}

	log.Info().
		Str("template", req.Template).
		Int("files", len(res.Files)).
		Int("dirs", len(res.Dirs)).
		Msg("Generation finished")
	return res, nil
}

func (g *Generator) renderDir(ctx context.Context, src, dst string, vars template.Bindings, res *Result) error {
	log := logging.GetLogger("generator")

	entries, err := g.fs.ReadDir(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrCouldNotRead, "could not read directory %s", src).
			WithDetail(errors.DetailPath, src)
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return errors.Wrapf(err, errors.ErrInternal, "generation of %s interrupted", src).
				WithDetail(errors.DetailPath, src)
		}

		srcPath := filepath.Join(src, entry.Name())
		name, err := g.entryName(srcPath, entry.Name(), vars)
		if err != nil {
			return err
		}
		dstPath := filepath.Join(dst, name)

		switch {
		case entry.Type()&fs.ModeSymlink != 0:
			return errors.Newf(errors.ErrUnsupportedEntryKind, "symbolic link %s: links in templates are not supported", srcPath).
				WithDetail(errors.DetailPath, srcPath)

		case entry.IsDir():
			log.Trace().Str("dir", dstPath).Msg("Creating directory")
			if err := g.mkdirAll(dstPath); err != nil {
				return err
			}
			res.Dirs = append(res.Dirs, dstPath)
			if err := g.renderDir(ctx, srcPath, dstPath, vars, res); err != nil {
				return err
			}

		case entry.Type().IsRegular():
			if err := g.renderFile(srcPath, dstPath, vars); err != nil {
				return err
			}
			res.Files = append(res.Files, dstPath)

		default:
			return errors.Newf(errors.ErrUnsupportedEntryKind, "%s has unsupported type %s", srcPath, entry.Type()).
				WithDetail(errors.DetailPath, srcPath)
		}
	}
	return nil
}

// entryName renders a template entry's file name. The result must stay a
// single path segment so nothing is written outside the destination.
func (g *Generator) entryName(srcPath, raw string, vars template.Bindings) (string, error) {
	name, err := g.engine.Render(raw, vars)
	if err != nil {
		return "", withSource(err, srcPath, 0)
	}
	if name == "" || name == "." || name == ".." || strings.ContainsRune(name, filepath.Separator) || strings.ContainsRune(name, '/') {
		return "", errors.Newf(errors.ErrOutputNameInvalid, "entry %s renders to invalid name %q", srcPath, name).
			WithDetail(errors.DetailPath, srcPath)
	}
	return name, nil
}

// renderFile streams src into dst line by line. Every output line ends
// with "\n" whatever the template used.
func (g *Generator) renderFile(src, dst string, vars template.Bindings) (err error) {
	in, err := g.fs.Open(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrNotOpenable, "could not open %s", src).
			WithDetail(errors.DetailPath, src)
	}
	defer in.Close()

	out, err := g.fs.Create(dst)
	if err != nil {
		return errors.Wrapf(err, errors.ErrCouldNotWrite, "could not create %s", dst).
			WithDetail(errors.DetailPath, dst)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, errors.ErrCouldNotWrite, "could not close %s", dst).
				WithDetail(errors.DetailPath, dst)
		}
	}()

	r := bufio.NewReader(in)
	w := bufio.NewWriter(out)
	for lineNo := 1; ; lineNo++ {
		line, readErr := r.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return errors.Wrapf(readErr, errors.ErrCouldNotRead, "could not read %s", src).
				WithDetail(errors.DetailPath, src)
		}
		if line == "" && readErr == io.EOF {
			break
		}

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		rendered, err := g.engine.Render(line, vars)
		if err != nil {
			return withSource(err, src, lineNo)
		}
		if _, err := w.WriteString(rendered + "\n"); err != nil {
			return errors.Wrapf(err, errors.ErrCouldNotWrite, "could not write %s", dst).
				WithDetail(errors.DetailPath, dst)
		}

		if readErr == io.EOF {
			break
		}
	}

	if err := w.Flush(); err != nil {
		return errors.Wrapf(err, errors.ErrCouldNotWrite, "could not write %s", dst).
			WithDetail(errors.DetailPath, dst)
	}

	log := logging.GetLogger("generator")
	log.Debug().Str("template", src).Str("file", dst).Msg("Wrote file")
	return nil
}

func (g *Generator) mkdirAll(dir string) error {
	if err := g.fs.MkdirAll(dir, dirPerm); err != nil {
		return errors.Wrapf(err, errors.ErrCouldNotWrite, "could not create directory %s", dir).
			WithDetail(errors.DetailPath, dir)
	}
	return nil
}

// withSource records where a substitution error happened. Line 0 means the
// error is in an entry's file name.
func withSource(err error, source string, line int) error {
	var codecErr *errors.CodecError
	if stderrors.As(err, &codecErr) {
		codecErr.WithDetail(errors.DetailSource, source).WithDetail(errors.DetailLine, line)
	}
	return err
}
