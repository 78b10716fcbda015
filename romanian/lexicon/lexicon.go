// Package lexicon loads the three word-list resources the Romanian
// tokenizer is grounded on (wordforms, MWEs, abbreviations) into an
// immutable, shareable value (spec §3, §4.1).
package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/racai-ai/ro-wordpiece-tokenizer/internal/rolog"
)

// initialMaxWordLen is the floor for Lexicon.MaxWordLen before any entry
// is loaded, per spec §3.
const initialMaxWordLen = 25

// Lexicon is an immutable, read-only-after-construction value object
// (spec §3, §5): once built by Load, it is safe to share across any
// number of Tokenizer/Normalizer instances and goroutines.
type Lexicon struct {
	wordforms map[string]struct{}
	mweSet    map[string]struct{}
	abbrSet   map[string]struct{}
	mweFirst  map[string]struct{}
	abbrFirst map[string]struct{}

	maxWordLen   int
	maxMWEParts  int
	maxAbbrParts int
}

// Files names the three lexicon resources expected under a lexicon
// directory (spec §6).
type Files struct {
	Wordforms string
	MWEs      string
	Abbrs     string
}

// DefaultFiles returns the conventional file names wordforms.txt,
// mwes.txt and abbrs.txt rooted at dir.
func DefaultFiles(dir string) Files {
	return Files{
		Wordforms: dir + "/wordforms.txt",
		MWEs:      dir + "/mwes.txt",
		Abbrs:     dir + "/abbrs.txt",
	}
}

// Load reads the three lexicon files from disk and builds a Lexicon. A
// missing or unreadable file is an initialization fatal error (spec §7).
func Load(files Files) (*Lexicon, error) {
	wf, err := os.Open(files.Wordforms)
	if err != nil {
		return nil, fmt.Errorf("lexicon: opening wordforms file: %w", err)
	}
	defer wf.Close()

	mf, err := os.Open(files.MWEs)
	if err != nil {
		return nil, fmt.Errorf("lexicon: opening mwes file: %w", err)
	}
	defer mf.Close()

	af, err := os.Open(files.Abbrs)
	if err != nil {
		return nil, fmt.Errorf("lexicon: opening abbrs file: %w", err)
	}
	defer af.Close()

	return LoadReaders(wf, mf, af)
}

// LoadReaders builds a Lexicon from three already-open UTF-8,
// line-delimited readers (wordforms, mwes, abbrs), in that order. This is
// the seam tests and embedders use to avoid the filesystem.
func LoadReaders(wordforms, mwes, abbrs io.Reader) (*Lexicon, error) {
	lex := &Lexicon{
		wordforms:    make(map[string]struct{}),
		mweSet:       make(map[string]struct{}),
		abbrSet:      make(map[string]struct{}),
		mweFirst:     make(map[string]struct{}),
		abbrFirst:    make(map[string]struct{}),
		maxWordLen:   initialMaxWordLen,
		maxMWEParts:  2,
		maxAbbrParts: 2,
	}

	n, err := lex.readWordforms(wordforms)
	if err != nil {
		return nil, err
	}
	rolog.L().Infow("lexicon: loaded wordforms", "count", n, "max_word_len", lex.maxWordLen)

	n, err = lex.readMWEs(mwes)
	if err != nil {
		return nil, err
	}
	rolog.L().Infow("lexicon: loaded mwes", "count", n, "max_parts", lex.maxMWEParts)

	n, err = lex.readAbbrs(abbrs)
	if err != nil {
		return nil, err
	}
	rolog.L().Infow("lexicon: loaded abbrs", "count", n, "max_parts", lex.maxAbbrParts)

	if len(lex.wordforms) == 0 {
		return nil, fmt.Errorf("lexicon: wordforms file produced zero entries")
	}

	return lex, nil
}

func (lex *Lexicon) readWordforms(r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	count := 0
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		lex.wordforms[word] = struct{}{}
		if n := len([]rune(word)); n > lex.maxWordLen {
			lex.maxWordLen = n
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("lexicon: reading wordforms: %w", err)
	}
	return count, nil
}

func (lex *Lexicon) readMWEs(r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	count := 0
	for scanner.Scan() {
		mwe := strings.TrimSpace(scanner.Text())
		if mwe == "" {
			continue
		}
		if strings.Contains(mwe, " ") {
			rolog.L().Warnw("lexicon: skipping mwe entry with a literal space", "entry", mwe)
			continue
		}
		parts := strings.Split(mwe, "_")
		if len(parts) > lex.maxMWEParts {
			lex.maxMWEParts = len(parts)
		}
		lex.mweFirst[parts[0]] = struct{}{}
		lex.mweSet[mwe] = struct{}{}
		lex.wordforms[mwe] = struct{}{}
		if n := len([]rune(mwe)); n > lex.maxWordLen {
			lex.maxWordLen = n
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("lexicon: reading mwes: %w", err)
	}
	return count, nil
}

func (lex *Lexicon) readAbbrs(r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	count := 0
	for scanner.Scan() {
		abbr := strings.TrimSpace(scanner.Text())
		if abbr == "" {
			continue
		}
		if strings.Contains(abbr, " ") {
			rolog.L().Warnw("lexicon: skipping abbr entry with a literal space", "entry", abbr)
			continue
		}
		parts := strings.Split(abbr, ".")
		if len(parts) > lex.maxAbbrParts {
			lex.maxAbbrParts = len(parts)
		}
		lex.abbrFirst[parts[0]] = struct{}{}
		lex.abbrSet[abbr] = struct{}{}
		lex.wordforms[abbr] = struct{}{}
		if n := len([]rune(abbr)); n > lex.maxWordLen {
			lex.maxWordLen = n
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("lexicon: reading abbrs: %w", err)
	}
	return count, nil
}

// HasWord reports whether word (as-is, or lowercased) is a known surface
// form: a wordform, MWE (canonical '_'-joined form) or ABBR (dotted
// form). This is the "is_lex_word" predicate from the original.
func (lex *Lexicon) HasWord(word string) bool {
	if _, ok := lex.wordforms[word]; ok {
		return true
	}
	_, ok := lex.wordforms[strings.ToLower(word)]
	return ok
}

// HasWordExact reports whether word is a known surface form, without the
// case-insensitive fallback.
func (lex *Lexicon) HasWordExact(word string) bool {
	_, ok := lex.wordforms[word]
	return ok
}

// IsMWEFirst reports whether word (as-is or lowercased) can start a
// multi-word expression.
func (lex *Lexicon) IsMWEFirst(word string) bool {
	if _, ok := lex.mweFirst[word]; ok {
		return true
	}
	_, ok := lex.mweFirst[strings.ToLower(word)]
	return ok
}

// IsAbbrFirst reports whether word (as-is or lowercased) can start an
// abbreviation.
func (lex *Lexicon) IsAbbrFirst(word string) bool {
	if _, ok := lex.abbrFirst[word]; ok {
		return true
	}
	_, ok := lex.abbrFirst[strings.ToLower(word)]
	return ok
}

// MaxWordLen is the maximum character length across wordforms ∪ mwe_set ∪
// abbr_set, floored at 25.
func (lex *Lexicon) MaxWordLen() int { return lex.maxWordLen }

// MaxMWEParts is the maximum number of parts in any MWE entry.
func (lex *Lexicon) MaxMWEParts() int { return lex.maxMWEParts }

// MaxAbbrParts is the maximum number of parts in any ABBR entry.
func (lex *Lexicon) MaxAbbrParts() int { return lex.maxAbbrParts }
