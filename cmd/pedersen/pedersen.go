package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/NethermindEth/pedersen/core/crypto"
	"github.com/NethermindEth/pedersen/core/crypto/pedersenhash"
	"github.com/NethermindEth/pedersen/core/felt"
	"github.com/NethermindEth/pedersen/utils"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var Version string

const (
	configF        = "config"
	logLevelF      = "log-level"
	colourF        = "colour"
	maxGoroutinesF = "max-goroutines"
	cacheSizeF     = "cache-size"

	defaultConfig        = ""
	defaultLogLevel      = utils.INFO
	defaultColour        = true
	defaultMaxGoroutines = 0
	defaultCacheSize     = crypto.DefaultCacheSize

	configFlagUsage    = "The yaml configuration file."
	logLevelFlagUsage  = "Options: debug, info, warn, error, fatal."
	colourUsage        = "Use --colour=false to disable colourized outputs (ANSI Escape Codes)."
	maxGoroutinesUsage = "Maximum number of goroutines used by the batch command. " +
		"0 uses GOMAXPROCS."
	cacheSizeUsage = "Number of pair hashes kept in the in-memory cache."

	feltSyntax = "Field elements are 0x-prefixed hex (0x1f) or decimal (31). " +
		"Decimal values with leading zeroes stay decimal, hex digits need the 0x prefix."
)

// app is the state shared by all subcommands once flags and config are resolved.
type app struct {
	cfg    *Config
	log    utils.SimpleLogger
	hasher *crypto.Hasher
}

// NewLoggerFn builds the logger once the configuration is resolved.
type NewLoggerFn func(cfg *Config) (utils.SimpleLogger, error)

// NewZapLogger is the NewLoggerFn used by the binary.
func NewZapLogger(cfg *Config) (utils.SimpleLogger, error) {
	log, err := utils.NewZapLogger(cfg.LogLevel, cfg.Colour)
	if err != nil {
		return nil, err
	}
	return log, nil
}

func NewCmd(newLoggerFn NewLoggerFn) *cobra.Command {
	a := new(app)
	var cfgFile string

	pedersenCmd := &cobra.Command{
		Use:           "pedersen [command]",
		Short:         "Starknet Pedersen hash over the STARK curve.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	logLevel := utils.NewLogLevel(defaultLogLevel)
	pedersenCmd.PersistentFlags().StringVar(&cfgFile, configF, defaultConfig, configFlagUsage)
	pedersenCmd.PersistentFlags().Var(logLevel, logLevelF, logLevelFlagUsage)
	pedersenCmd.PersistentFlags().Bool(colourF, defaultColour, colourUsage)
	pedersenCmd.PersistentFlags().Int(maxGoroutinesF, defaultMaxGoroutines, maxGoroutinesUsage)
	pedersenCmd.PersistentFlags().Int(cacheSizeF, defaultCacheSize, cacheSizeUsage)

	pedersenCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		v := viper.New()
		if cfgFile != "" {
			v.SetConfigType("yaml")
			v.SetConfigFile(cfgFile)
			if err := v.ReadInConfig(); err != nil {
				return errors.Wrap(err, "read config")
			}
		}

		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return err
		}

		cfg, err := loadConfig(v)
		if err != nil {
			return err
		}

		logger, err := newLoggerFn(cfg)
		if err != nil {
			return errors.Wrap(err, "create logger")
		}

		// the cache counter stays unregistered, a CLI run has no scrape endpoint
		hasher, err := crypto.NewHasher(cfg.CacheSize, nil)
		if err != nil {
			return err
		}

		a.cfg, a.log, a.hasher = cfg, logger, hasher
		return nil
	}

	pedersenCmd.AddCommand(
		a.hashCmd(),
		a.arrayCmd(),
		a.batchCmd(),
		a.constantsCmd(),
		a.configCmd(),
	)
	return pedersenCmd
}

func (a *app) hashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash <x> <y>",
		Short: "Hash two field elements.",
		Long:  "Hash two field elements. " + feltSyntax,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			elems, err := parseFelts(args)
			if err != nil {
				return err
			}
			res, err := a.hasher.Pedersen(elems[0], elems[1])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), res)
			return err
		},
	}
}

func (a *app) arrayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "array [elements...]",
		Short: "Hash a list of field elements, the list length included.",
		Long:  "Hash a list of field elements, the list length included. " + feltSyntax,
		RunE: func(cmd *cobra.Command, args []string) error {
			elems, err := parseFelts(args)
			if err != nil {
				return err
			}
			res, err := a.hasher.PedersenArray(elems...)
			if err != nil {
				return err
			}
			a.log.Debugw("Hashed array", "elements", utils.FeltArrToString(elems), "cached", a.hasher.Len())
			_, err = fmt.Fprintln(cmd.OutOrStdout(), res)
			return err
		},
	}
}

func (a *app) batchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch <x,y>...",
		Short: "Hash many pairs concurrently, printing one hash per line in input order.",
		Long:  "Hash many pairs concurrently, printing one hash per line in input order. " + feltSyntax,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs := make([]pedersenhash.Pair, len(args))
			for i, arg := range args {
				xs, ys, ok := strings.Cut(arg, ",")
				if !ok {
					return errors.Errorf("pair %d: expected <x,y>, got %q", i, arg)
				}
				elems, err := parseFelts([]string{xs, ys})
				if err != nil {
					return errors.Wrapf(err, "pair %d", i)
				}
				x, y := elems[0].Bytes(), elems[1].Bytes()
				pairs[i] = pedersenhash.Pair{X: x[:], Y: y[:]}
			}

			a.log.Debugw("Hashing batch", "pairs", len(pairs), "maxGoroutines", a.cfg.MaxGoroutines)
			hashes, err := pedersenhash.HashBatch(cmd.Context(), pairs, a.cfg.MaxGoroutines)
			if err != nil {
				return err
			}

			out := utils.Map(hashes, func(h [pedersenhash.InputSize]byte) felt.Felt {
				return felt.FromBytes(h[:])
			})
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(utils.Map(out, felt.Felt.String), "\n"))
			return err
		},
	}
}

func (a *app) constantsCmd() *cobra.Command {
	roles := map[int]string{
		pedersenhash.ShiftPointIndex: "shift point",
		pedersenhash.GeneratorIndex:  "generator",
		pedersenhash.P0Index:         "P0",
		pedersenhash.P1Index:         "P1",
		pedersenhash.P2Index:         "P2",
		pedersenhash.P3Index:         "P3",
	}
	return &cobra.Command{
		Use:   "constants",
		Short: "Print the constant points used by the hash.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			points := pedersenhash.ConstantPoints()

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Index", "Role", "X", "Y"})
			table.SetAutoWrapText(false)
			for _, i := range points.Indices() {
				p, _ := points.At(i)
				table.Append([]string{strconv.Itoa(i), roles[i], p.X().String(), p.Y().String()})
			}
			table.Render()
			return nil
		},
	}
}

func (a *app) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as yaml.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			if err := enc.Encode(a.cfg); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}

func parseFelts(args []string) ([]felt.Felt, error) {
	elems := make([]felt.Felt, len(args))
	for i, arg := range args {
		var err error
		if elems[i], err = felt.FromString(arg); err != nil {
			return nil, errors.Wrapf(err, "argument %d (%q)", i, arg)
		}
	}
	return elems, nil
}
