// Package wordlist turns caller supplied words into the canonical form the engine works with:
// trimmed, upper case, letters only and without duplicates.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/rocketscienceinc/wordsearch-backend/internal/apperror"
)

var (
	ErrEmptyWord   = errors.New("word is empty")
	ErrNotALetter  = errors.New("word contains a character that is not a letter")
	ErrNoWordsRead = errors.New("no words read")
)

// Normalize upper-cases and trims every word, dropping repeats while keeping first-seen order.
// A blank word or one with non-letters is an invalid request.
func Normalize(words []string) ([]string, error) {
	out := make([]string, 0, len(words))
	seen := make(map[string]struct{}, len(words))

	for i, raw := range words {
		word, err := normalizeWord(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: word %d %q: %w", apperror.ErrInvalidRequest, i, raw, err)
		}

		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		out = append(out, word)
	}

	return out, nil
}

func normalizeWord(raw string) (string, error) {
	word := strings.ToUpper(strings.TrimSpace(raw))
	if word == "" {
		return "", ErrEmptyWord
	}

	for _, r := range word {
		if !unicode.IsLetter(r) {
			return "", ErrNotALetter
		}
	}

	return word, nil
}

// Read loads one word per line. Blank lines and lines starting with '#' are skipped.
func Read(r io.Reader) ([]string, error) {
	var lines []string

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan words: %w", err)
	}

	words, err := Normalize(lines)
	if err != nil {
		return nil, err
	}

	if len(words) == 0 {
		return nil, ErrNoWordsRead
	}

	return words, nil
}

// Load reads a word file from disk.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("can't open word file: %w", err)
	}
	defer f.Close()

	words, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return words, nil
}
