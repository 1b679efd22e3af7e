package config

import (
	"bytes"
	stderrors "errors"
	"io/fs"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/codec/pkg/errors"
	"github.com/arthur-debert/codec/pkg/filesystem"
)

const starterHeader = `# codec configuration, created by "codec config init".
# See "codec help config" for every setting and where it can live.

`

// fileConfig is the on-disk shape of .codecrc.toml.
type fileConfig struct {
	TemplatesPath string            `toml:"templates_path"`
	Variables     map[string]string `toml:"variables"`
}

// StarterContent renders a configuration file pointing at templatesPath
// and carrying the default variables.
func StarterContent(templatesPath string) ([]byte, error) {
	var defaults fileConfig
	if err := toml.Unmarshal(defaultConfig, &defaults); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to decode embedded defaults")
	}
	defaults.TemplatesPath = templatesPath

	body, err := toml.Marshal(defaults)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode starter configuration")
	}

	var buf bytes.Buffer
	buf.WriteString(starterHeader)
	buf.Write(body)
	return buf.Bytes(), nil
}

// WriteStarter writes StarterContent to path. An existing file is only
// replaced when force is set.
func WriteStarter(fsys filesystem.FS, path, templatesPath string, force bool) error {
	if _, err := fsys.Stat(path); err == nil && !force {
		return errors.Newf(errors.ErrAlreadyExists, "%s already exists, use --force to replace it", path).
			WithDetail(errors.DetailPath, path)
	} else if err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return errors.Wrapf(err, errors.ErrCouldNotRead, "could not check %s", path).
			WithDetail(errors.DetailPath, path)
	}

	content, err := StarterContent(templatesPath)
	if err != nil {
		return err
	}

	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrCouldNotWrite, "could not create %s", filepath.Dir(path)).
			WithDetail(errors.DetailPath, filepath.Dir(path))
	}
	if err := fsys.WriteFile(path, content, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrCouldNotWrite, "could not write %s", path).
			WithDetail(errors.DetailPath, path)
	}
	return nil
}
