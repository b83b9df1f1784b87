package internal

import (
	"fmt"
	"os"
)

// IsPipedInput reports whether stdin is not a terminal, meaning labels may be arriving on a pipe.
func IsPipedInput() (bool, error) {
	return isPiped(os.Stdin)
}

func isPiped(f *os.File) (bool, error) {
	fi, err := f.Stat()
	if err != nil {
		return false, fmt.Errorf("unable to determine if there is piped input: %w", err)
	}

	return fi.Mode()&os.ModeCharDevice == 0, nil
}
