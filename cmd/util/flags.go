package util

import (
	"log"
	"runtime"

	"github.com/spf13/pflag"
)

var (
	FlagCpu = runtime.NumCPU()

	FlagVerbose = false

	FlagTemplates = ""

	FlagSettings = ""
)

func init() {
	log.SetFlags(0)
}

type commonFlag struct {
	set  func(flags *pflag.FlagSet)
	init func()
	use  bool
}

var commonFlags = map[string]*commonFlag{
	"cpu": {
		set: func(flags *pflag.FlagSet) {
			flags.IntVar(&FlagCpu, "cpu", FlagCpu,
				"The max number of CPUs to use.")
		},
		init: func() {
			runtime.GOMAXPROCS(FlagCpu)
		},
	},
	"verbose": {
		set: func(flags *pflag.FlagSet) {
			flags.BoolVarP(&FlagVerbose, "verbose", "v", FlagVerbose,
				"When set, progress and extra information is printed to "+
					"stderr.")
		},
	},
	"templates": {
		set: func(flags *pflag.FlagSet) {
			flags.StringVarP(&FlagTemplates, "templates", "t", FlagTemplates,
				"A template library file (see 'templates'), or a directory\n"+
					"of idealized base pair PDB files.")
		},
	},
	"settings": {
		set: func(flags *pflag.FlagSet) {
			flags.StringVarP(&FlagSettings, "settings", "s", FlagSettings,
				"A YAML, TOML or JSON settings file. When empty,\n"+
					"basepair.yaml in the current directory is used if present.")
		},
	},
}

// FlagUse defines the common flags named on the flag set given.
func FlagUse(flags *pflag.FlagSet, names ...string) {
	for _, name := range names {
		fl := commonFlags[name]
		fl.use = true
		fl.set(flags)
	}
}

// FlagInit applies the common flags in use once flags have been parsed.
func FlagInit() {
	for _, fl := range commonFlags {
		if fl.use && fl.init != nil {
			fl.init()
		}
	}
}
