// Package stripper removes emoji from text files in place.
package stripper

import (
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Strip applies the phrase table and then deletes any remaining emoji runs.
// The table must run first: composite sequences such as "⚠️ " carry a
// variation selector that the range sweep alone would not turn into text.
func Strip(content string) string {
	for _, r := range Replacements {
		content = strings.ReplaceAll(content, r.Pattern, r.With)
	}
	return emojiPattern.ReplaceAllString(content, "")
}

// Stripper rewrites files on a filesystem with their emoji removed.
type Stripper struct {
	fs afero.Fs
}

// New creates a Stripper operating on fs.
func New(fs afero.Fs) *Stripper {
	return &Stripper{fs: fs}
}

// Process reads path, strips it and writes the result back over the original.
// Nothing is written unless the whole file was read and decoded.
func (s *Stripper) Process(path string) error {
	info, err := s.fs.Stat(path)
	if err != nil {
		return newPathError("stat", path, err)
	}

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return newPathError("read", path, err)
	}
	if !utf8.Valid(data) {
		return newPathError("decode", path, ErrDecoding)
	}

	out := Strip(string(data))
	log.Debug().Str("path", path).Int("bytes_before", len(data)).Int("bytes_after", len(out)).Msg("Stripped file content")

	if err := afero.WriteFile(s.fs, path, []byte(out), info.Mode().Perm()); err != nil {
		return newPathError("write", path, err)
	}
	return nil
}
