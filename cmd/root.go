package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"gitid/internal/gitcfg"
	"gitid/internal/identity"
	logger "gitid/internal/logging"
)

var (
	verbose bool
	debug   bool
	jsonOut bool

	defineFlag    bool
	defineGPGFlag bool
	defineSSHFlag bool
	removeFlag    bool
	printFlag     bool
	settingsFlag  bool
	listFlag      bool
	listRawFlag   bool
	updateFlag    bool
	shellFlag     bool

	Logger logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "git-identity [<name>] [flags]",
	Short: "Manage named git identities and activate them per repository",
	Long: `git-identity keeps named identities (display name, email, optional GPG
signing key, optional SSH key) in your global git configuration and mirrors
one of them into the local configuration of the current repository.

Identities are stored under identity.<name>.* in ~/.gitconfig. Activating
one sets user.name, user.email, user.signingkey, commit.gpgsign and
core.sshCommand locally, and records the choice in user.identity.

Examples:
  # Define an identity with an SSH key and a GPG key
  git-identity --define work "Ada Lovelace" ada@example.com id_work ABCD1234

  # Activate it in the current repository
  git-identity work

  # Show the active identity
  git-identity

  # Re-sync local settings after editing the stored record
  git-identity --update

  # Run one command with the identity's SSH key
  git-identity -c work git push`,
	Args: cobra.ArbitraryArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		Logger = logger.Logger{Verbose: verbose, Debug: debug}
		Logger.Debugf("Initializing git-identity with verbose=%t, debug=%t", verbose, debug)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return dispatch(args)
	},
}

func init() {
	flags := rootCmd.Flags()
	// Stop flag parsing at the first positional so a trailing command for
	// --get-shell-command keeps its own flags.
	flags.SetInterspersed(false)

	flags.BoolVarP(&defineFlag, "define", "d", false, "define an identity: <name> <displayName> <email> [<sshkey>] [<gpgkey>]")
	flags.BoolVar(&defineGPGFlag, "define-gpg", false, "attach a GPG signing key: <name> <gpgkey>")
	flags.BoolVar(&defineSSHFlag, "define-ssh", false, "attach an SSH key: <name> <sshfile> [<verbosity>]")
	flags.BoolVarP(&removeFlag, "remove", "r", false, "remove an identity: <name>")
	flags.BoolVarP(&printFlag, "print", "p", false, "print an identity's summary: [<name>]")
	flags.BoolVarP(&settingsFlag, "get-settings", "s", false, "dump the active local identity settings")
	flags.BoolVarP(&listFlag, "list", "l", false, "list all identities")
	flags.BoolVarP(&listRawFlag, "list-raw", "R", false, "list identity names only")
	flags.BoolVarP(&updateFlag, "update", "u", false, "re-sync local settings to the active identity and print a diff")
	flags.BoolVarP(&shellFlag, "get-shell-command", "c", false, "print the SSH env override, or run a command with it: [<name>] [<command...>]")

	rootCmd.MarkFlagsMutuallyExclusive("define", "define-gpg", "define-ssh", "remove",
		"print", "get-settings", "list", "list-raw", "update", "get-shell-command")

	persistent := rootCmd.PersistentFlags()
	persistent.BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	persistent.BoolVar(&debug, "debug", false, "enable debug output")
	persistent.BoolVar(&jsonOut, "json", false, "output in JSON format where applicable")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// dispatch routes to the operation selected by the mode flags. With no mode
// flag, a single positional activates that identity and no arguments at all
// prints the current one.
func dispatch(args []string) error {
	switch {
	case defineFlag:
		return runDefine(args)
	case defineGPGFlag:
		return runDefineGPG(args)
	case defineSSHFlag:
		return runDefineSSH(args)
	case removeFlag:
		return runRemove(args)
	case listFlag:
		return runList()
	case listRawFlag:
		return runListRaw()
	case printFlag:
		return runPrint(args)
	case settingsFlag:
		return runSettings()
	case updateFlag:
		return runUpdate()
	case shellFlag:
		return runShellCommand(args)
	case len(args) == 0:
		return runCurrent()
	case len(args) == 1:
		return runUse(args[0])
	default:
		return fmt.Errorf("unexpected arguments: %s", strings.Join(args[1:], " "))
	}
}

// openStore loads git configuration and builds the identity store and
// activator over it.
func openStore() (*gitcfg.Config, *identity.Store, *identity.Activator, error) {
	cfg, err := gitcfg.Open("")
	if err != nil {
		return nil, nil, nil, Logger.ErrorfAndReturn("Failed to load git configuration: %v", err)
	}
	Logger.Debugf("Git directory: %q", cfg.GitDir())

	store := identity.NewStore(cfg)
	return cfg, store, identity.NewActivator(cfg, store), nil
}

// GetRootCmd returns the root command for testing.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

// ResetRootState resets all command global variables to their default values
// for testing.
func ResetRootState() {
	verbose = false
	debug = false
	jsonOut = false
	defineFlag = false
	defineGPGFlag = false
	defineSSHFlag = false
	removeFlag = false
	printFlag = false
	settingsFlag = false
	listFlag = false
	listRawFlag = false
	updateFlag = false
	shellFlag = false
	resetCobraFlagState()
}

// resetCobraFlagState clears the flag state to prevent test pollution.
func resetCobraFlagState() {
	if rootCmd != nil && rootCmd.Flags() != nil {
		rootCmd.Flags().VisitAll(func(flag *pflag.Flag) {
			flag.Changed = false
		})
	}
}
