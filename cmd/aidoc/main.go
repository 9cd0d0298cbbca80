// Aidoc manages named AI provider profiles (provider/model/API-key tuples)
// from the command line. Profiles live in a YAML file under ~/.aidoc/ by
// default, or can be derived read-only from environment variables with
// --config-source env.
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error

	switch os.Args[1] {
	case "config":
		err = runConfig(os.Args[2:])
	case "debug":
		err = runDebug(os.Args[2:])
	case "help", "-h", "--help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: aidoc <command> [flags]

Commands:
  config add <name>      Add a new profile
  config edit <name>     Edit an existing profile
  config delete <name>   Delete a profile
  config default <name>  Set the default profile
  debug config           Display the current configuration
  debug info             Display platform and environment details

Run "aidoc config <subcommand> -h" for details on a subcommand.
`)
}
