package main

import (
	"fmt"
	"log"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tellerhq/teller"
	"github.com/tellerhq/teller/config"
)

// TellerCLI represents the CLI application, encapsulating the root Cobra command.
type TellerCLI struct {
	cmd *cobra.Command
}

// tellerInstance holds the directory built at startup and the loaded
// configuration, shared by the subcommands.
type tellerInstance struct {
	teller *teller.Teller
	cnf    *config.Configuration
}

// recoverPanic handles any panics during program execution and logs the error.
func recoverPanic() {
	if rec := recover(); rec != nil {
		logrus.Error(rec)
		os.Exit(1)
	}
}

// preRun loads the configuration and builds the user directory before any
// subcommand executes.
func preRun(app *tellerInstance, configFile *string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := config.InitConfig(*configFile)
		if err != nil {
			log.Fatal("error loading config", err)
		}

		cnf, err := config.Fetch()
		if err != nil {
			return err
		}

		newTeller, err := teller.Bootstrap(cnf)
		if err != nil {
			return fmt.Errorf("error seeding users: %v", err)
		}

		app.teller = newTeller
		app.cnf = cnf

		return nil
	}
}

// NewCLI creates the command-line interface for the teller application.
func NewCLI() *TellerCLI {
	var configFile string
	b := &tellerInstance{}

	var rootCmd = &cobra.Command{
		Use:   "teller",
		Short: "In-memory ATM session",
		Run:   func(cmd *cobra.Command, args []string) {},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "./teller.json", "Configuration file for the teller session")
	rootCmd.PersistentPreRunE = preRun(b, &configFile)

	rootCmd.AddCommand(startCommands(b))

	return &TellerCLI{cmd: rootCmd}
}

// executeCLI runs the root command, handling any errors that occur during execution.
func (w TellerCLI) executeCLI() {
	if err := w.cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	defer recoverPanic()

	cli := NewCLI()
	cli.executeCLI()
}
