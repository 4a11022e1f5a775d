package util

import (
	"io"
	"log"
)

// Close closes closer, logging instead of returning a failure.
func Close(closer io.Closer) {
	err := closer.Close()
	if err != nil {
		log.Printf("close failed with error: %v\n", err)
	}
}
