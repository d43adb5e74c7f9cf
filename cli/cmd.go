package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "merklecli",
	Short: "Merklecli maintains a merkle tree over local data blocks and checks membership proofs",
}

// Init initiates commands
func Init() error {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "merkletree.db", "block store directory")

	rootCmd.AddCommand(appendCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(sizeCmd)
	rootCmd.AddCommand(rootHashCmd)
	rootCmd.AddCommand(proveCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(searchCmd)

	return nil
}

// Execute executes command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
