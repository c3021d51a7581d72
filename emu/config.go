package emu

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"tunit/emu/log"
	"tunit/hw/input"
	"tunit/hw/nvram"

	"github.com/BurntSushi/toml"
	"github.com/kirsle/configdir"
)

type Config struct {
	General GeneralConfig `toml:"general"`
	ROMs    ROMConfig     `toml:"roms"`
	NVRAM   NVRAMConfig   `toml:"nvram"`

	// Dips holds dip switch settings per variant. The settings of a parent
	// apply to its clones, before their own.
	Dips map[string][]input.Assignment `toml:"dips"`
}

type GeneralConfig struct {
	Log      []string `toml:"log"`      // modules with debug logging enabled
	Overlays []string `toml:"overlays"` // YAML declaration files
}

type ROMConfig struct {
	Paths    []string `toml:"paths"`
	Parallel int      `toml:"parallel"`
}

type NVRAMConfig struct {
	Dir        string `toml:"dir"`
	Disabled   bool   `toml:"disabled"`
	StrictCMOS bool   `toml:"strict_cmos"`
}

// ConfigDir returns the tunit configuration directory.
func ConfigDir() string {
	return configdir.LocalConfig("tunit")
}

const cfgFilename = "config.toml"

// DefaultConfigPath returns the path of the configuration file in the
// configuration directory.
func DefaultConfigPath() string {
	return filepath.Join(ConfigDir(), cfgFilename)
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		ROMs: ROMConfig{Paths: []string{"roms"}},
		NVRAM: NVRAMConfig{
			Dir: filepath.Join(ConfigDir(), "nvram"),
		},
	}
}

// LoadConfig loads the configuration file at path, or the default one if
// path is empty. Keys missing from the file keep their default value. A
// missing default file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, err
	}
	for _, key := range md.Undecoded() {
		log.ModCfg.WarnZ("unknown configuration key").String("file", path).String("key", key.String()).End()
	}
	log.ModCfg.DebugZ("loaded configuration").String("file", path).End()
	return cfg, nil
}

// LoadConfigOrDefault loads the configuration from the tunit config
// directory, or provide a default one.
func LoadConfigOrDefault() Config {
	cfg, err := LoadConfig("")
	if err != nil {
		log.ModCfg.WarnZ("invalid configuration, using defaults").Error("err", err).End()
		return DefaultConfig()
	}
	return cfg
}

// SaveConfig writes cfg at path, or into the tunit config directory if path
// is empty.
func SaveConfig(path string, cfg Config) error {
	if path == "" {
		if err := configdir.MakePath(ConfigDir()); err != nil {
			return err
		}
		path = DefaultConfigPath()
	}

	buf, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0644)
}

// LogMask returns the mask of the modules listed in the configuration.
func (cfg *Config) LogMask() (log.ModuleMask, error) {
	return log.ParseModules(cfg.General.Log)
}

// NVRAMDir returns where CMOS content persists, empty if disabled.
func (cfg *Config) NVRAMDir() nvram.Dir {
	if cfg.NVRAM.Disabled {
		return ""
	}
	return nvram.Dir(cfg.NVRAM.Dir)
}

// DipsFor returns the dip settings of a variant, given its parent (empty
// for a parent variant).
func (cfg *Config) DipsFor(variant, parent string) []input.Assignment {
	var dips []input.Assignment
	if parent != "" {
		dips = append(dips, cfg.Dips[parent]...)
	}
	return append(dips, cfg.Dips[variant]...)
}
