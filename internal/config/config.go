// Package config holds the runtime settings shared by every stardrift
// command. Values come from defaults, then an optional .env file, then the
// process environment, then command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"stardrift/field"
	"stardrift/hal"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "STARDRIFT_"

var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Width  int
	Height int
	Zoom   int

	TimeScale float64
	Workers   int
	Encoding  string
	Format    string

	Hz        int
	Frames    uint64
	WallClock bool

	SnapshotDir   string
	SnapshotEvery uint64
	StatsEvery    uint64

	Verbose bool
}

func Default() Config {
	return Config{
		Width:      480,
		Height:     320,
		Zoom:       2,
		TimeScale:  1,
		Encoding:   field.EncodingSRGB.String(),
		Format:     hal.PixelFormatRGBA8888.String(),
		Hz:         60,
		StatsEvery: 300,
	}
}

// Load returns Default overridden by envFile (if non-empty) and then by the
// process environment.
func Load(envFile string) (Config, error) {
	cfg := Default()

	vars := map[string]string{}
	if envFile != "" {
		fileVars, err := godotenv.Read(envFile)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", envFile, err)
		}
		vars = fileVars
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from STARDRIFT_* variables returned by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	var errs []error
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			return "", false
		}
		return strings.TrimSpace(v), true
	}
	setInt := func(name string, dst *int) {
		if v, ok := get(name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%w: %s%s=%q: %v", ErrInvalid, EnvPrefix, name, v, err))
				return
			}
			*dst = n
		}
	}
	setUint := func(name string, dst *uint64) {
		if v, ok := get(name); ok {
			n, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("%w: %s%s=%q: %v", ErrInvalid, EnvPrefix, name, v, err))
				return
			}
			*dst = n
		}
	}
	setFloat := func(name string, dst *float64) {
		if v, ok := get(name); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("%w: %s%s=%q: %v", ErrInvalid, EnvPrefix, name, v, err))
				return
			}
			*dst = f
		}
	}
	setBool := func(name string, dst *bool) {
		if v, ok := get(name); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%w: %s%s=%q: %v", ErrInvalid, EnvPrefix, name, v, err))
				return
			}
			*dst = b
		}
	}
	setString := func(name string, dst *string) {
		if v, ok := get(name); ok {
			*dst = v
		}
	}

	setInt("WIDTH", &c.Width)
	setInt("HEIGHT", &c.Height)
	setInt("ZOOM", &c.Zoom)
	setFloat("TIME_SCALE", &c.TimeScale)
	setInt("WORKERS", &c.Workers)
	setString("ENCODING", &c.Encoding)
	setString("FORMAT", &c.Format)
	setInt("HZ", &c.Hz)
	setUint("FRAMES", &c.Frames)
	setBool("WALL_CLOCK", &c.WallClock)
	setString("SNAPSHOT_DIR", &c.SnapshotDir)
	setUint("SNAPSHOT_EVERY", &c.SnapshotEvery)
	setUint("STATS_EVERY", &c.StatsEvery)
	setBool("VERBOSE", &c.Verbose)

	return errors.Join(errs...)
}

// Validate checks every field and reports all problems at once.
func (c Config) Validate() error {
	var errs []error
	if err := c.Resolution().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalid, err))
	}
	if c.Zoom < 0 {
		errs = append(errs, fmt.Errorf("%w: zoom %d", ErrInvalid, c.Zoom))
	}
	if !(c.TimeScale > 0) {
		errs = append(errs, fmt.Errorf("%w: time scale %v", ErrInvalid, c.TimeScale))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("%w: workers %d", ErrInvalid, c.Workers))
	}
	if _, err := field.ParseEncoding(c.Encoding); err != nil {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalid, err))
	}
	if _, err := ParsePixelFormat(c.Format); err != nil {
		errs = append(errs, err)
	}
	if c.Hz <= 0 || c.Hz > 1000 {
		errs = append(errs, fmt.Errorf("%w: hz %d", ErrInvalid, c.Hz))
	}
	return errors.Join(errs...)
}

func (c Config) Resolution() field.Resolution {
	return field.Resolution{Width: c.Width, Height: c.Height}
}

// EncodingValue returns the parsed Encoding, defaulting to sRGB.
func (c Config) EncodingValue() field.Encoding {
	e, err := field.ParseEncoding(c.Encoding)
	if err != nil {
		return field.EncodingSRGB
	}
	return e
}

// PixelFormat returns the parsed framebuffer format, defaulting to RGBA8888.
func (c Config) PixelFormat() hal.PixelFormat {
	f, err := ParsePixelFormat(c.Format)
	if err != nil {
		return hal.PixelFormatRGBA8888
	}
	return f
}

// ParsePixelFormat accepts "rgba8888" or "rgb565".
func ParsePixelFormat(s string) (hal.PixelFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rgba8888", "rgba":
		return hal.PixelFormatRGBA8888, nil
	case "rgb565", "565":
		return hal.PixelFormatRGB565, nil
	}
	return 0, fmt.Errorf("%w: unknown pixel format %q", ErrInvalid, s)
}
