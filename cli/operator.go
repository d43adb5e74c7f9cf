package cli

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/frankonly/merkletree/crypto"
	"github.com/frankonly/merkletree/merkle"
	"github.com/frankonly/merkletree/storage"
)

// proofJSON is the caller-side wire shape of a proof:
// the leaf index and the sibling digests ordered leaf-level-first.
type proofJSON struct {
	Index    uint64   `json:"index"`
	Siblings []string `json:"siblings"`
}

func encodeProof(proof merkle.Proof) proofJSON {
	siblings := make([]string, len(proof.Siblings))
	for i, sibling := range proof.Siblings {
		siblings[i] = sibling.Hex()
	}

	return proofJSON{Index: proof.Index, Siblings: siblings}
}

func decodeProof(pj proofJSON) (merkle.Proof, error) {
	siblings := make([]crypto.Digest, len(pj.Siblings))
	for i, s := range pj.Siblings {
		digest, err := crypto.ParseDigest(s)
		if err != nil {
			return merkle.Proof{}, errors.Wrapf(err, "sibling %d", i)
		}
		siblings[i] = digest
	}

	return merkle.Proof{Index: pj.Index, Siblings: siblings}, nil
}

var (
	appendCmd = &cobra.Command{
		Use:   "append DATA [DATA...]",
		Short: "Append data blocks to the tree and print their indexes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(store storage.BlockStore) error {
				for _, arg := range args {
					id, err := store.Append([]byte(arg))
					if err != nil {
						return err
					}
					fmt.Println(id)
				}

				return nil
			})
		},
	}

	getCmd = &cobra.Command{
		Use:   "get ID",
		Short: "Get the data block at the given index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %s: %w", args[0], err)
			}

			return withStore(func(store storage.BlockStore) error {
				block, err := store.Get(id)
				if err != nil {
					return err
				}

				fmt.Printf("%s\n", block)
				return nil
			})
		},
	}

	sizeCmd = &cobra.Command{
		Use:   "size",
		Short: "Print the number of stored blocks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(store storage.BlockStore) error {
				fmt.Println(store.Size())
				return nil
			})
		},
	}

	rootHashCmd = &cobra.Command{
		Use:   "root",
		Short: "Print the merkle root over all stored blocks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(store storage.BlockStore) error {
				root, ok := store.Root()
				if !ok {
					return fmt.Errorf("the store holds no blocks yet")
				}

				fmt.Println(root.Hex())
				return nil
			})
		},
	}

	proveCmd = &cobra.Command{
		Use:   "prove ID",
		Short: "Print the membership proof for the block at the given index as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %s: %w", args[0], err)
			}

			return withStore(func(store storage.BlockStore) error {
				proof, err := store.Prove(id)
				if err != nil {
					return err
				}

				out, err := json.Marshal(encodeProof(proof))
				if err != nil {
					return err
				}

				fmt.Println(string(out))
				return nil
			})
		},
	}

	proofFile string

	verifyCmd = &cobra.Command{
		Use:   "verify DATA ROOT",
		Short: "Verify a membership proof for DATA against the hex ROOT digest",
		Long: `Verify reads a JSON proof ({"index": n, "siblings": [hex...]}) from the
file given by --proof, or from stdin, and checks that DATA belongs to the
tree with the given root. It prints "valid" or "invalid" and needs no
access to the block store.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := crypto.ParseDigest(args[1])
			if err != nil {
				return err
			}

			raw, err := readProofInput()
			if err != nil {
				return err
			}

			var pj proofJSON
			if err := json.Unmarshal(raw, &pj); err != nil {
				return errors.Wrap(err, "invalid proof encoding")
			}

			proof, err := decodeProof(pj)
			if err != nil {
				return err
			}

			if !merkle.VerifyProof(crypto.SHA256Hasher{}, []byte(args[0]), proof, root) {
				fmt.Println("invalid")
				os.Exit(1)
			}

			fmt.Println("valid")
			return nil
		},
	}

	searchCmd = &cobra.Command{
		Use:   "search DIGEST",
		Short: "Print the index of the block with the given hex leaf digest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			digest, err := crypto.ParseDigest(args[0])
			if err != nil {
				return err
			}

			return withStore(func(store storage.BlockStore) error {
				id, err := store.Search(digest)
				if err != nil {
					return err
				}

				fmt.Println(id)
				return nil
			})
		},
	}
)

func init() {
	verifyCmd.Flags().StringVar(&proofFile, "proof", "", "file holding the JSON proof (stdin when omitted)")
}

func readProofInput() ([]byte, error) {
	if proofFile == "" {
		return ioutil.ReadAll(os.Stdin)
	}

	raw, err := ioutil.ReadFile(proofFile)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read proof from %s", proofFile)
	}

	return raw, nil
}
