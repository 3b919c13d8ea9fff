package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	styledhelp "github.com/arran4/go-styledhelp"
	"github.com/arran4/go-styledhelp/internal/logfields"
)

// Keys of the global flags, also used as configuration file and environment
// variable names.
const (
	keyConfig      = "config"
	keyDebug       = "debug"
	keyLogFormat   = "log-format"
	keyDir         = "dir"
	keyDirective   = "directive"
	keyArgKey      = "arg-key"
	keyHelpKey     = "help-key"
	keyLongHelpKey = "long-help-key"
	keyStyleKey    = "style-key"
	keyStyleName   = "style-name"
	keyAll         = "all"
	keyRecursive   = "recursive"
	keyExclude     = "exclude"
)

var log = logrus.WithField(logfields.LogSubsys, "cli")

// app carries the state shared by every subcommand.
type app struct {
	vp  *viper.Viper
	fs  afero.Fs
	cfg *styledhelp.Config
}

func (a *app) dir() string {
	return a.vp.GetString(keyDir)
}

// NewRoot creates the styledhelp command tree working on the OS filesystem.
func NewRoot(version, commit, date string) *cobra.Command {
	return newRoot(afero.NewOsFs(), version, commit, date)
}

func newRoot(fs afero.Fs, version, commit, date string) *cobra.Command {
	a := &app{vp: newViper(fs), fs: fs}
	rootCmd := &cobra.Command{
		Use:           "styledhelp",
		Short:         "styledhelp turns struct field doc comments into help tags",
		Long:          "styledhelp rewrites the doc comments of opted-in struct fields into help struct tags, marking styled text for the cstr formatter.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String(keyConfig, "", "Optional config file (default .styledhelp.yaml in the working directory)")
	flags.BoolP(keyDebug, "D", false, "Enable debug messages")
	flags.String(keyLogFormat, "text", "Log format, text or json")
	flags.StringP(keyDir, "C", ".", "Directory to process")
	flags.String(keyDirective, styledhelp.DefaultConfig().Directive, "Comment directive that opts a struct in")
	flags.String(keyArgKey, styledhelp.DefaultConfig().ArgKey, "Struct tag key of the argument definition")
	flags.String(keyHelpKey, styledhelp.DefaultConfig().HelpKey, "Struct tag key the help text is written to")
	flags.String(keyLongHelpKey, styledhelp.DefaultConfig().LongHelpKey, "Struct tag key of explicit long help")
	flags.String(keyStyleKey, styledhelp.DefaultConfig().StyleKey, "Struct tag key that marks styled help")
	flags.String(keyStyleName, styledhelp.DefaultConfig().StyleName, "Formatter name written to the style key")
	flags.Bool(keyAll, false, "Process every struct, not only opted-in ones")
	flags.Bool(keyRecursive, true, "Descend into subdirectories")
	flags.StringSlice(keyExclude, nil, "Glob patterns of files to skip")
	if err := a.vp.BindPFlags(flags); err != nil {
		log.WithError(err).Fatal("Unable to bind flags")
	}

	rootCmd.AddCommand(
		newRewriteCmd(a),
		newCheckCmd(a),
		newScanCmd(a),
		newWatchCmd(a),
		newRenderCmd(),
		newSyntaxCmd(),
		newVersionCmd(version, commit, date),
	)
	rootCmd.SetVersionTemplate("{{with .Name}}{{printf \"%s \" .}}{{end}}{{printf \"%s\" .Version}}\n")
	return rootCmd
}

func newViper(fs afero.Fs) *viper.Viper {
	vp := viper.New()
	vp.SetFs(fs)
	vp.SetEnvPrefix("styledhelp")
	vp.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vp.AutomaticEnv()
	styledhelp.SetDefaults(vp)
	return vp
}

// setup configures logging and loads the configuration once flags are parsed.
func (a *app) setup() error {
	if err := setupLogging(a.vp); err != nil {
		return err
	}
	if file := a.vp.GetString(keyConfig); file != "" {
		a.vp.SetConfigFile(file)
	} else {
		a.vp.SetConfigName(".styledhelp")
		a.vp.SetConfigType("yaml")
		a.vp.AddConfigPath(".")
	}
	if err := a.vp.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
		log.WithError(err).Debug("No config file found")
	} else {
		log.WithField(logfields.File, a.vp.ConfigFileUsed()).Debug("Loaded config file")
	}
	// The config file may change the log settings.
	if err := setupLogging(a.vp); err != nil {
		return err
	}
	cfg, err := styledhelp.LoadConfig(a.vp)
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

func setupLogging(vp *viper.Viper) error {
	logrus.SetOutput(os.Stderr)
	if vp.GetBool(keyDebug) {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
	switch format := vp.GetString(keyLogFormat); format {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	return nil
}
