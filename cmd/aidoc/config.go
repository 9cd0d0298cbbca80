package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/aidoctool/aidoc/pkg/config"
	"github.com/aidoctool/aidoc/pkg/configdir"
)

// runConfig dispatches the profile CRUD subcommands. "Not found" on edit,
// delete, and default is reported as plain output with a zero exit code;
// a duplicate name on add fails the process.
func runConfig(args []string) error {
	if len(args) == 0 {
		usage()
		return errors.New("missing config subcommand")
	}

	switch args[0] {
	case "add":
		return runConfigAdd(args[1:])
	case "edit":
		return runConfigEdit(args[1:])
	case "delete":
		return runConfigDelete(args[1:])
	case "default":
		return runConfigDefault(args[1:])
	default:
		usage()
		return fmt.Errorf("unknown config subcommand %q", args[0])
	}
}

// sourceFlags are the flags every subcommand shares for selecting the config
// source and location.
type sourceFlags struct {
	source  string
	dir     string
	envFile string
}

func addSourceFlags(fs *flag.FlagSet) *sourceFlags {
	sf := &sourceFlags{}
	fs.StringVar(&sf.source, "config-source", "yaml", "config source: yaml or env")
	fs.StringVar(&sf.dir, "config-dir", "", "path to the config directory (default ~/"+configdir.DirName+")")
	fs.StringVar(&sf.envFile, "env", "", "path to the .env file for the env source (default ~/.env)")

	return sf
}

func (sf *sourceFlags) resolveDir() (configdir.Dir, error) {
	if sf.dir != "" {
		return configdir.New(sf.dir), nil
	}

	return configdir.Default()
}

// newManager selects the loader for the configured source and wraps it in a
// mutable or read-only manager depending on the loader's save capability.
func (sf *sourceFlags) newManager() (config.ProfileManager, configdir.Dir, error) {
	dir, err := sf.resolveDir()
	if err != nil {
		return nil, configdir.Dir{}, err
	}

	var loader config.Loader
	if config.Source(sf.source) == config.SourceEnv && sf.envFile != "" {
		loader = config.NewEnvLoaderFromFile(sf.envFile)
	} else {
		loader, err = config.NewLoader(config.Source(sf.source), dir)
		if err != nil {
			return nil, configdir.Dir{}, err
		}
	}

	if loader.Writable() {
		return config.NewManager(loader), dir, nil
	}

	return config.NewReadOnlyManager(loader), dir, nil
}

// profileName pulls the positional <name> argument off the front of args.
func profileName(args []string, fs *flag.FlagSet) (string, []string, error) {
	if len(args) == 0 || len(args[0]) == 0 || args[0][0] == '-' {
		fs.Usage()
		return "", nil, errors.New("missing profile name")
	}

	return args[0], args[1:], nil
}

func runConfigAdd(args []string) error {
	fs := flag.NewFlagSet("config add", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: aidoc config add <name> [flags]\n\nAdd a new profile. Missing fields are prompted for.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	sf := addSourceFlags(fs)
	provider := fs.String("provider", "", "provider name (e.g. anthropic, openai, grok)")
	model := fs.String("model", "", "model name (e.g. claude-sonnet-4-20250514, gpt-4o-mini)")
	apiKey := fs.String("api-key", "", "API key or ${VAR} reference for the provider")
	params := paramFlag{}
	fs.Var(params, "param", "extra profile parameter as key=value (repeatable)")

	name, rest, err := profileName(args, fs)
	if err != nil {
		return err
	}
	_ = fs.Parse(rest)

	mgr, _, err := sf.newManager()
	if err != nil {
		return err
	}

	in := profileInput{Provider: *provider, Model: *model, APIKey: *apiKey}
	if err := promptMissing(&in); err != nil {
		return err
	}

	if err := mgr.AddProfile(name, in.Provider, in.Model, in.APIKey, params); err != nil {
		return err
	}

	fmt.Printf("Profile %q added.\n", name)

	return nil
}

func runConfigEdit(args []string) error {
	fs := flag.NewFlagSet("config edit", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: aidoc config edit <name> [flags]\n\nEdit an existing profile. With no field flags, opens an interactive form\npre-filled with the current values; otherwise only the given fields change.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	sf := addSourceFlags(fs)
	provider := fs.String("provider", "", "new provider name")
	model := fs.String("model", "", "new model name")
	apiKey := fs.String("api-key", "", "new API key or ${VAR} reference")
	params := paramFlag{}
	fs.Var(params, "param", "replacement profile parameter as key=value (repeatable)")

	name, rest, err := profileName(args, fs)
	if err != nil {
		return err
	}
	_ = fs.Parse(rest)

	mgr, _, err := sf.newManager()
	if err != nil {
		return err
	}

	var upd config.ProfileUpdate
	fieldsGiven := false
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "provider":
			upd.Provider = provider
			fieldsGiven = true
		case "model":
			upd.Model = model
			fieldsGiven = true
		case "api-key":
			upd.APIKey = apiKey
			fieldsGiven = true
		case "param":
			upd.Params = params
			fieldsGiven = true
		}
	})

	if !fieldsGiven {
		doc, err := mgr.GetConfig()
		if err != nil {
			return err
		}

		current, ok := doc.Profiles[name]
		if !ok {
			fmt.Printf("Profile %q not found.\n", name)
			return nil
		}

		upd, err = promptEdit(current)
		if err != nil {
			return err
		}
	}

	err = mgr.EditProfile(name, upd)
	if errors.Is(err, config.ErrProfileNotFound) {
		fmt.Printf("Profile %q not found.\n", name)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Profile %q updated.\n", name)

	return nil
}

func runConfigDelete(args []string) error {
	fs := flag.NewFlagSet("config delete", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: aidoc config delete <name> [flags]\n\nDelete a profile after confirmation.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	sf := addSourceFlags(fs)
	yes := fs.Bool("yes", false, "skip the confirmation prompt")

	name, rest, err := profileName(args, fs)
	if err != nil {
		return err
	}
	_ = fs.Parse(rest)

	mgr, _, err := sf.newManager()
	if err != nil {
		return err
	}

	doc, err := mgr.GetConfig()
	if err != nil {
		return err
	}

	if _, ok := doc.Profiles[name]; !ok {
		fmt.Printf("Profile %q not found.\n", name)
		return nil
	}

	if !*yes {
		var confirm bool
		if err := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().Title(fmt.Sprintf("Delete profile %q?", name)).Value(&confirm),
		)).Run(); err != nil {
			return err
		}

		if !confirm {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := mgr.DeleteProfile(name); err != nil {
		return err
	}

	fmt.Printf("Profile %q deleted.\n", name)

	return nil
}

func runConfigDefault(args []string) error {
	fs := flag.NewFlagSet("config default", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: aidoc config default <name> [flags]\n\nSet the default profile.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	sf := addSourceFlags(fs)

	name, rest, err := profileName(args, fs)
	if err != nil {
		return err
	}
	_ = fs.Parse(rest)

	mgr, _, err := sf.newManager()
	if err != nil {
		return err
	}

	err = mgr.SetDefault(name)
	if errors.Is(err, config.ErrProfileNotFound) {
		fmt.Printf("Profile %q not found.\n", name)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Default profile set to %q.\n", name)

	return nil
}
