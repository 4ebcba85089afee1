// Released under an MIT license. See LICENSE.

//go:build !unix

package interrupt

import "os"

func signals() []os.Signal {
	return []os.Signal{os.Interrupt}
}
