package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/showdown-games/showdown/pkg/commitment"
	gametypes "github.com/showdown-games/showdown/pkg/game/types"
)

// A commitment is computed locally so the secret never leaves the
// player's machine before reveal time.
func main() {
	choiceFlag := flag.String("choice", "", "Choice to commit to (rock, paper, scissors, lizard, spock)")
	secretFlag := flag.String("secret", "", "Secret to bind the choice to (generated if empty)")
	flag.Parse()

	choice, err := gametypes.ParseChoice(*choiceFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid choice %q: choose one of rock, paper, scissors, lizard, spock\n", *choiceFlag)
		os.Exit(1)
	}

	secret := *secretFlag
	if secret == "" {
		secret = uuid.NewString()
	}

	fmt.Printf("choice:     %s\n", choice)
	fmt.Printf("secret:     %s\n", secret)
	fmt.Printf("commitment: %s\n", commitment.Compute(choice, secret))
	fmt.Println("Keep the secret private until you reveal.")
}
