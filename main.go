// Command mizan is a Tunisian legal assistant grounded in the articles
// of the Tunisian legal codes.
package main

import (
	"os"

	"github.com/mizan-labs/mizan-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
