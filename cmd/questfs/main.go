package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"questfs/internal/server/challenge"
	"questfs/internal/shell"
)

func main() {
	challengesDir := flag.String("challenges", "", "directory of challenge JSON files")
	challengeID := flag.String("challenge", "", "challenge to play (default: first available)")
	flag.Parse()

	registry := challenge.NewRegistry()
	if err := registry.Register(challenge.Default()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *challengesDir != "" {
		loaded, err := challenge.LoadDir(*challengesDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading challenges: %v\n", err)
			os.Exit(1)
		}
		for _, ch := range loaded {
			if err := registry.Register(ch); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}
	}

	ch := registry.Default()
	if *challengeID != "" {
		var ok bool
		ch, ok = registry.Get(*challengeID)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown challenge %q\n", *challengeID)
			os.Exit(1)
		}
	}

	tree, err := ch.NewTree()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	dispatcher := shell.New(tree)

	fmt.Printf("=== %s ===\n\n%s\n\nType 'help' for commands, 'hint' if stuck, 'exit' to give up.\n\n",
		ch.Name, ch.Description)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("questfs:%s$ ", tree.WorkingDirectory())
		if !scanner.Scan() {
			fmt.Println()
			return
		}

		name, args := shell.Split(scanner.Text())
		switch name {
		case "":
			continue
		case "exit", "quit":
			return
		case "hint":
			fmt.Println(ch.Hint)
		case "solve":
			if len(args) != 1 {
				fmt.Println("usage: solve <secret>")
				continue
			}
			if ch.VerifySecret(args[0]) {
				fmt.Println("\n✓ Correct! Challenge complete.")
				return
			}
			fmt.Println("That is not it. Keep looking.")
		default:
			out, err := dispatcher.Exec(name, args)
			if err != nil {
				fmt.Println(err)
				continue
			}
			if out != "" {
				fmt.Println(out)
			}
		}
	}
}
