package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// asks before files are modified. An empty first answer counts as yes; any
// unrecognized answer asks again. End of input counts as no.
func confirm(in io.Reader, out io.Writer) (bool, error) {
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(out, "Are you sure? [Yes/No]")
	first := true
	for scanner.Scan() {
		answer := strings.TrimRight(scanner.Text(), "\r")
		if first && answer == "" {
			answer = "Yes"
		}
		first = false

		switch answer {
		case "Yes", "yes", "Y", "y":
			return true, nil
		case "No", "no", "N", "n":
			return false, nil
		}
		fmt.Fprintln(out, "Type Yes or No")
	}

	return false, scanner.Err()
}
