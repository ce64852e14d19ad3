package wordnet

// Word is a row of the word table.
type Word struct {
	ID            int64  `bun:"wordid" json:"id"`
	Lang          Lang   `bun:"lang" json:"lang"`
	Lemma         string `bun:"lemma" json:"lemma"`
	Pronunciation string `bun:"pron" json:"pronunciation,omitempty"`
	POS           POS    `bun:"pos" json:"pos"`
}

// Sense associates a word with a synset.
type Sense struct {
	SynsetID  string `bun:"synset" json:"synset_id"`
	WordID    int64  `bun:"wordid" json:"word_id"`
	Lang      Lang   `bun:"lang" json:"lang"`
	Rank      int    `bun:"rank" json:"rank"`
	LexicalID int    `bun:"lexid" json:"lexical_id"`
	Frequency int    `bun:"freq" json:"frequency"`
	Source    string `bun:"src" json:"source"`
}

// Synset is a set of words sharing one meaning, identified by ids such as
// "06142412-n".
type Synset struct {
	ID     string `bun:"synset" json:"id"`
	POS    POS    `bun:"pos" json:"pos"`
	Name   string `bun:"name" json:"name"`
	Source string `bun:"src" json:"source"`
}

// SynsetDefinition is the gloss of a synset in one language.
type SynsetDefinition struct {
	SynsetID   string `bun:"synset" json:"synset_id"`
	Lang       Lang   `bun:"lang" json:"lang"`
	Text       string `bun:"def" json:"text"`
	SequenceID int    `bun:"sid" json:"sequence_id"`
}

// SynsetLink is a directed semantic relation between two synsets.
type SynsetLink struct {
	FromSynsetID string `bun:"synset1" json:"from_synset_id"`
	ToSynsetID   string `bun:"synset2" json:"to_synset_id"`
	Relation     Link   `bun:"link" json:"relation"`
	Source       string `bun:"src" json:"source"`
}
