// Command dmxcheck walks directories of DMX files and verifies that each one
// decodes through both the slice and stream entry points and materializes
// into a generic value tree. It reports per-file failures and exits non-zero
// if any file fails.
package main

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leops/dmxparser"
	"github.com/leops/dmxparser/compress"
)

var (
	extensions []string
	skipAny    bool
)

func main() {
	root := &cobra.Command{
		Use:   "dmxcheck [paths...]",
		Short: "Decode and materialize DMX files, reporting per-file failures",
		Args:  cobra.MinimumNArgs(1),
		RunE:  run,
	}

	root.Flags().StringSliceVar(&extensions, "ext", []string{".dmx", ".vmap"},
		"file extensions to check when walking directories")
	root.Flags().BoolVar(&skipAny, "skip-materialize", false,
		"only decode, skip the generic materialization pass")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	var checked, failed int

	for _, path := range args {
		err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() || !matchesExt(p) {
				return nil
			}

			checked++
			if err := checkFile(p); err != nil {
				failed++
				fmt.Fprintf(cmd.ErrOrStderr(), "FAIL %s: %v\n", p, err)
			}

			return nil
		})
		if err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "checked %d files, %d failed\n", checked, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, checked)
	}

	return nil
}

func matchesExt(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range extensions {
		if ext == want {
			return true
		}
	}

	return false
}

// checkFile runs both decode modes over one file and compares them through
// the generic materialization.
func checkFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	plain, err := compress.Decompress(data)
	if err != nil {
		return err
	}

	sliceDoc, err := dmxparser.FromSlice(plain)
	if err != nil {
		return fmt.Errorf("from_slice: %w", err)
	}

	streamDoc, err := dmxparser.FromReader(bytes.NewReader(plain))
	if err != nil {
		return fmt.Errorf("from_reader: %w", err)
	}

	if skipAny {
		return nil
	}

	if _, err := dmxparser.AsAny(sliceDoc); err != nil {
		return fmt.Errorf("materialize (slice): %w", err)
	}

	if _, err := dmxparser.AsAny(streamDoc); err != nil {
		return fmt.Errorf("materialize (stream): %w", err)
	}

	return nil
}
