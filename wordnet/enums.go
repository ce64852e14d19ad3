package wordnet

import (
	"database/sql/driver"
	"fmt"

	"github.com/goliatone/go-wordnet-cache/sqlstore"
)

// Lang identifies the language of a word, sense or definition.
type Lang string

const (
	// LangEnglish is the primary language of the data set.
	LangEnglish Lang = "eng"
	// LangJapanese is the secondary language of the data set.
	LangJapanese Lang = "jpn"
)

// POS is a part of speech.
type POS string

const (
	POSNoun      POS = "n"
	POSVerb      POS = "v"
	POSAdjective POS = "a"
	POSAdverb    POS = "r"
)

// Link is the type of a directed relation between two synsets.
type Link string

const (
	LinkSeeAlso          Link = "also"
	LinkSynonym          Link = "syns"
	LinkHypernym         Link = "hype"
	LinkInstance         Link = "inst"
	LinkHyponym          Link = "hypo"
	LinkHasInstance      Link = "hasi"
	LinkMeronym          Link = "mero"
	LinkMemberMeronym    Link = "mmem"
	LinkSubstanceMeronym Link = "msub"
	LinkPartMeronym      Link = "mprt"
	LinkHolonym          Link = "holo"
	LinkMemberHolonym    Link = "hmem"
	LinkSubstanceHolonym Link = "hsub"
	LinkPartHolonym      Link = "hprt"
	LinkAttribute        Link = "attr"
	LinkSimilarTo        Link = "sim"
	LinkEntails          Link = "enta"
	LinkCauses           Link = "caus"
	LinkDomainCategory   Link = "dmnc"
	LinkDomainUsage      Link = "dmnu"
	LinkDomainRegion     Link = "dmnr"
	LinkInDomainCategory Link = "dmtc"
	LinkInDomainUsage    Link = "dmtu"
	LinkInDomainRegion   Link = "dmtr"
	LinkAntonym          Link = "ants"
)

var (
	langs = []Lang{LangEnglish, LangJapanese}
	poses = []POS{POSNoun, POSVerb, POSAdjective, POSAdverb}
	links = []Link{
		LinkSeeAlso, LinkSynonym, LinkHypernym, LinkInstance, LinkHyponym,
		LinkHasInstance, LinkMeronym, LinkMemberMeronym, LinkSubstanceMeronym,
		LinkPartMeronym, LinkHolonym, LinkMemberHolonym, LinkSubstanceHolonym,
		LinkPartHolonym, LinkAttribute, LinkSimilarTo, LinkEntails, LinkCauses,
		LinkDomainCategory, LinkDomainUsage, LinkDomainRegion,
		LinkInDomainCategory, LinkInDomainUsage, LinkInDomainRegion, LinkAntonym,
	}
)

// UnknownValueError is returned when a stored or supplied enum value is not a
// known member of its enum.
type UnknownValueError struct {
	Kind  string
	Value string
}

// Error implements the error interface.
func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("wordnet: unknown %s %q", e.Kind, e.Value)
}

// Is reports the error as undecodable so the store classifies scan failures
// caused by it as decode errors.
func (e *UnknownValueError) Is(target error) bool {
	return target == sqlstore.ErrUndecodable
}

// Langs returns every known language.
func Langs() []Lang { return append([]Lang(nil), langs...) }

// POSes returns every known part of speech.
func POSes() []POS { return append([]POS(nil), poses...) }

// Links returns every known relation type.
func Links() []Link { return append([]Link(nil), links...) }

// ParseLang parses the stored string form of a language.
func ParseLang(s string) (Lang, error) {
	for _, l := range langs {
		if string(l) == s {
			return l, nil
		}
	}
	return "", &UnknownValueError{Kind: "lang", Value: s}
}

// ParsePOS parses the stored string form of a part of speech.
func ParsePOS(s string) (POS, error) {
	for _, p := range poses {
		if string(p) == s {
			return p, nil
		}
	}
	return "", &UnknownValueError{Kind: "pos", Value: s}
}

// ParseLink parses the stored string form of a relation type.
func ParseLink(s string) (Link, error) {
	for _, l := range links {
		if string(l) == s {
			return l, nil
		}
	}
	return "", &UnknownValueError{Kind: "link", Value: s}
}

func (l Lang) String() string { return string(l) }

func (p POS) String() string { return string(p) }

func (l Link) String() string { return string(l) }

// Valid reports whether l is a known language.
func (l Lang) Valid() bool {
	_, err := ParseLang(string(l))
	return err == nil
}

// Valid reports whether p is a known part of speech.
func (p POS) Valid() bool {
	_, err := ParsePOS(string(p))
	return err == nil
}

// Valid reports whether l is a known relation type.
func (l Link) Valid() bool {
	_, err := ParseLink(string(l))
	return err == nil
}

// Scan implements sql.Scanner. NULL and unknown values are errors.
func (l *Lang) Scan(src any) error {
	s, err := scanString("lang", src)
	if err != nil {
		return err
	}
	parsed, err := ParseLang(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Scan implements sql.Scanner. NULL and unknown values are errors.
func (p *POS) Scan(src any) error {
	s, err := scanString("pos", src)
	if err != nil {
		return err
	}
	parsed, err := ParsePOS(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Scan implements sql.Scanner. NULL and unknown values are errors.
func (l *Link) Scan(src any) error {
	s, err := scanString("link", src)
	if err != nil {
		return err
	}
	parsed, err := ParseLink(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Value implements driver.Valuer.
func (l Lang) Value() (driver.Value, error) { return string(l), nil }

// Value implements driver.Valuer.
func (p POS) Value() (driver.Value, error) { return string(p), nil }

// Value implements driver.Valuer.
func (l Link) Value() (driver.Value, error) { return string(l), nil }

func scanString(kind string, src any) (string, error) {
	switch v := src.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case nil:
		return "", &UnknownValueError{Kind: kind, Value: "NULL"}
	default:
		return "", &UnknownValueError{Kind: kind, Value: fmt.Sprint(v)}
	}
}
