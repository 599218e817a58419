package textsource

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadPassages reads one passage per non-empty line from path.
func LoadPassages(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only passage file.
			_ = cerr
		}
	}()

	var passages []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.Join(strings.Fields(scanner.Text()), " ")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		passages = append(passages, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(passages) == 0 {
		return nil, fmt.Errorf("passage file %s is empty", path)
	}
	return passages, nil
}

// Vocabulary splits passages into lowercase words stripped of punctuation,
// keeping the first occurrence order.
func Vocabulary(passages []string) []string {
	seen := map[string]struct{}{}
	var words []string
	for _, passage := range passages {
		for _, field := range strings.Fields(passage) {
			word := strings.ToLower(strings.TrimFunc(field, isPunct))
			if word == "" {
				continue
			}
			if _, ok := seen[word]; ok {
				continue
			}
			seen[word] = struct{}{}
			words = append(words, word)
		}
	}
	return words
}
