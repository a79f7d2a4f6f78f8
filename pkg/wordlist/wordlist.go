// Package wordlist loads the static suggestion candidates.
package wordlist

import (
	"bufio"
	"os"
	"strings"
)

// Load reads one word per line, skipping blanks. A missing file is not
// an error: suggestions simply stay empty for the life of the process.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	return words, scanner.Err()
}
