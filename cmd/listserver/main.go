package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"

	"dllist/config"
	"dllist/server"
)

var (
	Stderr io.Writer = os.Stderr

	opts struct {
		Config string `short:"c" long:"config" default:"config.yaml" description:"path to the YAML config"`
	}
	parser *flags.Parser = flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
)

const (
	shortHelp = "Serve named lists from an SQS queue"
	longHelp  = `
listserver reads list commands from an SQS queue and applies them
to in-memory doubly linked lists, logging every result.
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

	srv, err := server.NewServer(conf)
	if err != nil {
		return err
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		srv.Cancel()
	}()

	return srv.StartServer()
}
