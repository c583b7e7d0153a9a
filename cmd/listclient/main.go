package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"

	"dllist/client"
	"dllist/config"
)

var (
	Stderr io.Writer = os.Stderr

	opts struct {
		Config string `short:"c" long:"config" default:"config.yaml" description:"path to the YAML config"`
		Input  string `short:"i" long:"input" description:"read client actions from this file instead of stdin"`
	}
	parser *flags.Parser = flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
)

const (
	shortHelp = "Send list commands to an SQS queue"
	longHelp  = `
listclient reads lines of the form <clientId> <json item> and sends
each item to the list queue on behalf of that client.
`
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	parser.ShortDescription = shortHelp
	parser.LongDescription = longHelp
	if _, err := parser.ParseArgs(args); err != nil {
		return err
	}

	conf, err := config.LoadConfig(opts.Config)
	if err != nil {
		return err
	}
	if opts.Input != "" {
		conf.ClientsInputPath = opts.Input
	}

	manager, err := client.NewClientsManager(conf)
	if err != nil {
		return err
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		manager.Cancel()
	}()

	return manager.ListenClientActions()
}
