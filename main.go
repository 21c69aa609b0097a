// bsdelta computes rsync-style block deltas from precomputed checksum files.
//
// Exit status: 0 on success, otherwise one of the codes documented in
// bsync/errors.go (configuration 2, open 3, header read 4, header write 5,
// version/block size/total size/type mismatch 6-9, truncated checksum
// stream 10, block read 11, checksum validation 12, write 13, publish 14).
package main

import (
	"fmt"
	"os"

	"github.com/kaiakz/bsdelta/bsync"
)

func run(args []string) error {
	root := newRootCmd(os.Stdout)
	root.SetArgs(args)
	return root.Execute()
}

func main() {
	err := run(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "bsdelta:", err)
	}
	os.Exit(bsync.ExitCode(err))
}
