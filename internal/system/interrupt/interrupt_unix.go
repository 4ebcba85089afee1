// Released under an MIT license. See LICENSE.

//go:build unix

package interrupt

import (
	"os"

	"golang.org/x/sys/unix"
)

func signals() []os.Signal {
	return []os.Signal{unix.SIGINT}
}
