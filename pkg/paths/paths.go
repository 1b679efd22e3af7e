package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/codec/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the config directory for codec
	EnvConfigDir = "CODEC_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AppDirName is the directory name used under the XDG base directories
	AppDirName = "codec"

	// ConfigFileName is the configuration file searched in every config location
	ConfigFileName = ".codecrc.toml"
)

// Paths provides the locations codec reads and writes outside of templates.
type Paths interface {
	ConfigDir() string
	StateDir() string
	HomeDir() string
	ExecutableDir() string
	UserConfigFile() string
	ConfigSearchDirs() []string
}

type paths struct {
	configDir string
	stateDir  string
	homeDir   string
	exeDir    string
	workDir   string
}

// New resolves codec's directories from the environment.
func New() (Paths, error) {
	p := &paths{}

	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv(EnvHome)
	}
	p.homeDir = home

	switch {
	case os.Getenv(EnvConfigDir) != "":
		p.configDir = ExpandHome(os.Getenv(EnvConfigDir))
	case os.Getenv("XDG_CONFIG_HOME") != "":
		p.configDir = filepath.Join(os.Getenv("XDG_CONFIG_HOME"), AppDirName)
	default:
		p.configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		p.stateDir = filepath.Join(stateHome, AppDirName)
	} else {
		p.stateDir = filepath.Join(xdg.StateHome, AppDirName)
	}

	exe, err := Executable()
	if err == nil {
		p.exeDir = filepath.Dir(exe)
	}

	if wd, err := os.Getwd(); err == nil {
		p.workDir = wd
	} else {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to get current directory")
	}

	return p, nil
}

// ConfigDir returns the user config directory for codec
func (p *paths) ConfigDir() string {
	return p.configDir
}

// StateDir returns the state directory, where the log file lives
func (p *paths) StateDir() string {
	return p.stateDir
}

// HomeDir returns the user's home directory, or "" when unknown
func (p *paths) HomeDir() string {
	return p.homeDir
}

// ExecutableDir returns the directory holding the running binary
func (p *paths) ExecutableDir() string {
	return p.exeDir
}

// UserConfigFile is where `codec config init` writes the starter file
func (p *paths) UserConfigFile() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

// ConfigSearchDirs lists the directories searched for ConfigFileName, in
// load order: later directories override earlier ones. Empty and repeated
// entries are dropped.
func (p *paths) ConfigSearchDirs() []string {
	var dirs []string
	seen := make(map[string]bool)
	for _, dir := range []string{p.exeDir, p.configDir, p.homeDir, p.workDir} {
		if dir == "" {
			continue
		}
		clean := filepath.Clean(dir)
		if seen[clean] {
			continue
		}
		seen[clean] = true
		dirs = append(dirs, clean)
	}
	return dirs
}

// Executable returns the absolute path of the running binary with
// symbolic links resolved.
func Executable() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to locate executable")
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return exe, nil
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~user is left alone
	return path
}

// Expand expands $VAR and ${VAR} from the environment, then a leading ~.
// Referencing an unset variable is an error.
func Expand(path string) (string, error) {
	var missing []string
	expanded := os.Expand(path, func(name string) string {
		value, ok := os.LookupEnv(name)
		if !ok {
			missing = append(missing, name)
		}
		return value
	})
	if len(missing) > 0 {
		return "", errors.Newf(errors.ErrConfigInvalid, "undefined environment variable %s in %q",
			strings.Join(missing, ", "), path).WithDetail(errors.DetailPath, path)
	}
	return ExpandHome(expanded), nil
}
