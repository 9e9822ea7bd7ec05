// Command imapcodecdemo is a minimal client/server pair exercising
// imapwire/imapframer over a real TCP connection. It is not part of the
// codec's core: the core (imapwire, imapframer) never touches the
// network, a file, or a logger. This binary is the integration sample
// that wires those layers to something that does.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	maxLiteralSize uint32
	crlfRelaxed    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "imapcodecdemo: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "imapcodecdemo",
	Short: "Demo client/server driving spilled.ink/imapcodec over TCP",
}

func init() {
	rootCmd.PersistentFlags().Uint32Var(&maxLiteralSize, "max-literal-size", 32<<20,
		"reject (server) or flag (client) literals longer than this many bytes")
	rootCmd.PersistentFlags().BoolVar(&crlfRelaxed, "crlf-relaxed", false,
		"accept a bare LF as a line terminator on input")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(clientCmd)
}
