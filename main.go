package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"travlist/config"
	"travlist/datastruct/travlist"
	"travlist/logger"
	"travlist/pkg/util"
	"travlist/replay"
)

const usage = `usage: travlist [-c file] [-store kind] [-cap n] [-check] [script]

Replays a traversable list script read from the file or from stdin.
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("travlist", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	cfPath := fs.String("c", "", "config file")
	store := fs.String("store", "", "backing store: simple, stack or linked")
	capacity := fs.Int("cap", 0, "capacity of lists created without one")
	check := fs.Bool("check", false, "replay on every store and compare the transcripts")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return 2
	}

	props, err := setUpProperties(*cfPath, *store, *capacity)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	level, _ := props.Level()
	err = logger.Configure(&logger.Configuration{
		Level:         level,
		TimeFormat:    props.TimeFormat,
		LogPath:       props.LogPath,
		EnableFileLog: props.FileLog,
	})
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	logger.SetOutput(stderr)

	cmds, err := readScript(fs.Arg(0), stdin)
	if err != nil {
		logger.ErrorF("%v", err)
		return 1
	}
	if *check {
		return runCheck(cmds, props, stdout)
	}
	return runSession(cmds, props, stdout)
}

// setUpProperties loads the config file, if any, and applies flag overrides.
func setUpProperties(cfPath, store string, capacity int) (*config.AppProperties, error) {
	if cfPath != "" {
		if err := config.SetUpConfig(cfPath); err != nil {
			return nil, err
		}
	}
	props := *config.Properties
	if store != "" {
		props.Store = store
	}
	if capacity != 0 {
		props.Capacity = capacity
	}
	if err := props.Validate(); err != nil {
		return nil, err
	}
	return &props, nil
}

func readScript(filename string, stdin io.Reader) ([]replay.Command, error) {
	if filename == "" || filename == "-" {
		return replay.Parse(stdin)
	}
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer util.Close(file)
	return replay.Parse(file)
}

func runSession(cmds []replay.Command, props *config.AppProperties, stdout io.Writer) int {
	session, err := replay.NewSession(replay.Config{
		Kind:     props.Kind(),
		Capacity: props.Capacity,
		Strict:   props.Strict,
	}, stdout)
	if err != nil {
		logger.ErrorF("%v", err)
		return 1
	}
	for _, name := range props.Lists {
		if name == "" || name == replay.DefaultList {
			continue
		}
		if err := session.Exec(replay.Command{Name: "new", Args: []string{name}}); err != nil {
			logger.ErrorF("%v", err)
			return 1
		}
	}
	logger.InfoF("replaying %d commands on %s lists of capacity %d", len(cmds), props.Kind(), props.Capacity)
	if err := session.Run(cmds); err != nil {
		logger.ErrorF("replay stopped: %v", err)
		return 1
	}
	return 0
}

func runCheck(cmds []replay.Command, props *config.AppProperties, stdout io.Writer) int {
	report, err := replay.Equivalent(cmds, props.Capacity)
	if err != nil {
		logger.ErrorF("%v", err)
		return 1
	}
	if report.Equal() {
		fmt.Fprintf(stdout, "all stores agree on %d commands\n", len(cmds))
		return 0
	}
	diverging := make([]string, 0, len(report.Diverging))
	for _, kind := range report.Diverging {
		diverging = append(diverging, string(kind))
	}
	fmt.Fprintf(stdout, "diverging from %s: %s\n", travlist.Kinds[0], strings.Join(diverging, ", "))
	for _, kind := range travlist.Kinds {
		fmt.Fprintf(stdout, "--- %s\n%s", kind, report.Transcripts[kind])
	}
	return 1
}
