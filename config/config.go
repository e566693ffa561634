// Package config loads pair.Config from a settings file, BASEPAIR_*
// environment variables and command line flags, using Viper. Anything not
// set in one of those keeps its value from pair.DefaultConfig.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/TuftsBCB/basepair/pair"
)

// SettingsName is the base name of the settings file looked up in the
// current directory when no path is given, e.g., "basepair.yaml".
const SettingsName = "basepair"

// EnvPrefix prefixes environment variables, e.g., BASEPAIR_MIN_SCORE.
const EnvPrefix = "BASEPAIR"

// AddFlags defines flags for the settings most often changed from the
// command line. Their names match the settings file keys.
func AddFlags(flags *pflag.FlagSet) {
	def := pair.DefaultConfig()
	flags.Float64("max-c1-distance", def.MaxC1Distance,
		"Maximum C1'-C1' distance of a candidate pair.")
	flags.StringSlice("classes", def.Classes,
		"Leontis-Westhof classes to evaluate.")
	flags.Bool("canonical-only", def.CanonicalOnly,
		"Only consider Watson-Crick and wobble sequences.")
	flags.Float64("min-score", def.MinScore,
		"Minimum composite score of a valid pair.")
	flags.Float64("confidence-gap", def.ConfidenceGap,
		"Score gap between the two best classes that gives confidence 1.")
	flags.Bool("deterministic-ties", def.DeterministicTies,
		"Break score ties by residue identifier instead of input order.")
}

// Load reads the configuration. If path is empty, a settings file named
// SettingsName in the current directory is used when there is one. flags
// may be nil; otherwise every flag in it overrides the key of the same name
// when set on the command line.
func Load(path string, flags *pflag.FlagSet) (pair.Config, error) {
	v := viper.New()
	cfg := pair.DefaultConfig()
	setDefaults(v, cfg)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return cfg, err
		}
	}

	if len(path) > 0 {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(SettingsName)
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if len(path) > 0 || !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("Could not read settings: %w", err)
		}
	}

	// Keys not present anywhere leave the defaults in cfg alone. Classes
	// is cleared first: decoding into a longer slice overwrites its head
	// without truncating it. The "classes" default restores it when unset.
	cfg.Classes = nil
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("Could not decode settings: %w", err)
	}
	canonicalClasses(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("Invalid settings: %w", err)
	}
	return cfg, nil
}

// setDefaults registers every scalar key so that environment variables are
// picked up for it. Class ranges are only read from settings files.
func setDefaults(v *viper.Viper, cfg pair.Config) {
	v.SetDefault("max-c1-distance", cfg.MaxC1Distance)
	v.SetDefault("classes", cfg.Classes)
	v.SetDefault("canonical-only", cfg.CanonicalOnly)
	v.SetDefault("min-ring-atoms", cfg.MinRingAtoms)
	v.SetDefault("rmsd-good", cfg.RMSDGood)
	v.SetDefault("rmsd-bad", cfg.RMSDBad)
	v.SetDefault("angle-good", cfg.AngleGood)
	v.SetDefault("angle-bad", cfg.AngleBad)
	v.SetDefault("min-score", cfg.MinScore)
	v.SetDefault("min-matched", cfg.MinMatched)
	v.SetDefault("tight-rmsd", cfg.TightRMSD)
	v.SetDefault("tight-matched", cfg.TightMatched)
	v.SetDefault("confidence-gap", cfg.ConfidenceGap)
	v.SetDefault("deterministic-ties", cfg.DeterministicTies)
	for prefix, w := range map[string]pair.Weights{
		"validation":     cfg.Validation,
		"discrimination": cfg.Discrimination,
	} {
		v.SetDefault(prefix+".hbond", w.HBond)
		v.SetDefault(prefix+".rmsd", w.RMSD)
		v.SetDefault(prefix+".angle", w.Angle)
		v.SetDefault(prefix+".per-bond", w.PerBond)
	}
}

// canonicalClasses restores the case of class names. Viper lower cases map
// keys, so "cWW" in a settings file arrives as "cww".
func canonicalClasses(cfg *pair.Config) {
	for i, class := range cfg.Classes {
		cfg.Classes[i] = canonicalClass(class)
	}
	for name, r := range cfg.ClassRanges {
		if canon := canonicalClass(name); canon != name {
			delete(cfg.ClassRanges, name)
			cfg.ClassRanges[canon] = r
		}
	}
}

func canonicalClass(name string) string {
	for _, class := range pair.Classes {
		if strings.EqualFold(class, name) {
			return class
		}
	}
	return name
}
