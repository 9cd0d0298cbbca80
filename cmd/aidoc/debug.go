package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/aidoctool/aidoc/pkg/config"
)

// runDebug dispatches the troubleshooting subcommands.
func runDebug(args []string) error {
	if len(args) == 0 {
		usage()
		return errors.New("missing debug subcommand")
	}

	switch args[0] {
	case "config":
		return runDebugConfig(args[1:])
	case "info":
		return runDebugInfo(args[1:])
	default:
		usage()
		return fmt.Errorf("unknown debug subcommand %q", args[0])
	}
}

// runDebugConfig prints the loaded document with API keys masked unless
// -verbose is given, then reports where the backing file lives.
func runDebugConfig(args []string) error {
	fs := flag.NewFlagSet("debug config", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: aidoc debug config [flags]\n\nDisplay the current configuration.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	sf := addSourceFlags(fs)
	verbose := fs.Bool("verbose", false, "show sensitive values such as API keys")
	_ = fs.Parse(args)

	mgr, dir, err := sf.newManager()
	if err != nil {
		return err
	}

	doc, err := mgr.GetConfig()
	if err != nil {
		return err
	}

	view := doc
	if !*verbose {
		view = doc.Redacted()
	}

	rendered, err := view.Dump()
	if err != nil {
		return err
	}

	fmt.Printf("Current configuration:\n%s\n", rendered)

	path := dir.ConfigPath()
	if _, statErr := os.Stat(path); statErr == nil {
		fmt.Println(dimStyle.Render("Config file found at: " + path))
	} else {
		fmt.Println(warnStyle.Render("Config file not found at: " + path))
	}
	fmt.Println(dimStyle.Render("Config directory: " + dir.Root()))

	return nil
}

// runDebugInfo prints platform details and the environment variables aidoc
// consumes, masking the API key unless -verbose is given.
func runDebugInfo(args []string) error {
	fs := flag.NewFlagSet("debug info", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: aidoc debug info [flags]\n\nDisplay platform and environment details.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	verbose := fs.Bool("verbose", false, "show sensitive values such as API keys")
	_ = fs.Parse(args)

	fmt.Printf("aidoc on %s/%s (%s)\n\n", runtime.GOOS, runtime.GOARCH, runtime.Version())

	fmt.Println("Environment:")
	for _, line := range envReport(*verbose) {
		fmt.Println("  " + line)
	}

	return nil
}

// envReport lists the fixed environment variables of the env-backed source,
// one name=value line each. Secret values are masked unless verbose is set;
// unset variables are reported as such.
func envReport(verbose bool) []string {
	names := []string{config.EnvProvider, config.EnvModel, config.EnvAPIKey}

	lines := make([]string, 0, len(names))
	for _, name := range names {
		v, ok := os.LookupEnv(name)
		switch {
		case !ok:
			lines = append(lines, name+" (unset)")
		case name == config.EnvAPIKey && v != "" && !verbose:
			lines = append(lines, name+"=sk-***")
		default:
			lines = append(lines, name+"="+v)
		}
	}

	return lines
}
