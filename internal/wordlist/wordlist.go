// Package wordlist loads hint candidate lists from disk.
//
// Supported formats are chosen by file extension:
//
//	.txt      one candidate per line; blank lines and '#' comments are skipped
//	.toml     a top-level array: hints = ["a", "b"]
//	.msgpack  a msgpack array of strings
//
// Order and duplicates are preserved in every format.
package wordlist

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/vmihailenco/msgpack/v5"
)

var ErrUnsupportedFormat = errors.New("unsupported word list format")

//go:embed default.txt
var defaultList string

// Default returns the built-in JavaScript, TypeScript and React list.
func Default() []string {
	words, _ := ParseText(strings.NewReader(defaultList))
	return words
}

// Load reads a word list, picking the decoder by extension.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	var words []string
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".txt", "":
		words, err = ParseText(f)
	case ".toml":
		words, err = ParseTOML(f)
	case ".msgpack", ".mpk":
		words, err = ParseMsgpack(f)
	default:
		return nil, fmt.Errorf("%s: %w", ext, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("load word list %s: %w", path, err)
	}
	return words, nil
}

func ParseText(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

type tomlList struct {
	Hints []string `toml:"hints"`
}

func ParseTOML(r io.Reader) ([]string, error) {
	var doc tomlList
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	return doc.Hints, nil
}

func ParseMsgpack(r io.Reader) ([]string, error) {
	var words []string
	if err := msgpack.NewDecoder(r).Decode(&words); err != nil {
		return nil, err
	}
	return words, nil
}

// EncodeMsgpack writes words in the format ParseMsgpack reads.
func EncodeMsgpack(w io.Writer, words []string) error {
	return msgpack.NewEncoder(w).Encode(words)
}
