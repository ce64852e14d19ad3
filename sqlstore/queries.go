package sqlstore

import "fmt"

// QueryID names one of the fixed lookups the store can run.
type QueryID int

const (
	FindWordsByLemma QueryID = iota + 1
	FindWordsByLemmaAndPOS
	FindWordByID
	FindSensesBySynset
	FindSensesByWordID
	FindSensesBySynsetAndLang
	FindSynsetDefinitionBySynsetAndLang
	FindSynsetLinksBySynset
	FindSynsetLinksBySynsetAndLink
	FindSynsetByID
	FindSynsetsByName
	FindSynsetsByNameAndPOS
)

const (
	selectWord       = "SELECT wordid, lang, lemma, pron, pos FROM word"
	selectSense      = "SELECT synset, wordid, lang, rank, lexid, freq, src FROM sense"
	selectSynsetDef  = "SELECT synset, lang, def, sid FROM synset_def"
	selectSynsetLink = "SELECT synset1, synset2, link, src FROM synlink"
	selectSynset     = "SELECT synset, pos, name, src FROM synset"
	orderByRowID     = " ORDER BY rowid"
)

type queryDef struct {
	name string
	sql  string
}

var registry = map[QueryID]queryDef{
	FindWordsByLemma:                    {"FindWordsByLemma", selectWord + " WHERE lemma = ?" + orderByRowID},
	FindWordsByLemmaAndPOS:              {"FindWordsByLemmaAndPOS", selectWord + " WHERE lemma = ? AND pos = ?" + orderByRowID},
	FindWordByID:                        {"FindWordByID", selectWord + " WHERE wordid = ?" + orderByRowID},
	FindSensesBySynset:                  {"FindSensesBySynset", selectSense + " WHERE synset = ?" + orderByRowID},
	FindSensesByWordID:                  {"FindSensesByWordID", selectSense + " WHERE wordid = ?" + orderByRowID},
	FindSensesBySynsetAndLang:           {"FindSensesBySynsetAndLang", selectSense + " WHERE synset = ? AND lang = ?" + orderByRowID},
	FindSynsetDefinitionBySynsetAndLang: {"FindSynsetDefinitionBySynsetAndLang", selectSynsetDef + " WHERE synset = ? AND lang = ?" + orderByRowID},
	FindSynsetLinksBySynset:             {"FindSynsetLinksBySynset", selectSynsetLink + " WHERE synset1 = ?" + orderByRowID},
	FindSynsetLinksBySynsetAndLink:      {"FindSynsetLinksBySynsetAndLink", selectSynsetLink + " WHERE synset1 = ? AND link = ?" + orderByRowID},
	FindSynsetByID:                      {"FindSynsetByID", selectSynset + " WHERE synset = ?" + orderByRowID},
	FindSynsetsByName:                   {"FindSynsetsByName", selectSynset + " WHERE name = ?" + orderByRowID},
	FindSynsetsByNameAndPOS:             {"FindSynsetsByNameAndPOS", selectSynset + " WHERE name = ? AND pos = ?" + orderByRowID},
}

// Queries returns every registered query in declaration order.
func Queries() []QueryID {
	ids := make([]QueryID, 0, len(registry))
	for id := FindWordsByLemma; id <= FindSynsetsByNameAndPOS; id++ {
		ids = append(ids, id)
	}
	return ids
}

// Text returns the SQL for id. It panics when id is not registered.
func (id QueryID) Text() string {
	def, ok := registry[id]
	if !ok {
		panic(fmt.Sprintf("sqlstore: unregistered query id %d", int(id)))
	}
	return def.sql
}

func (id QueryID) String() string {
	if def, ok := registry[id]; ok {
		return def.name
	}
	return fmt.Sprintf("QueryID(%d)", int(id))
}

// Valid reports whether id is registered.
func (id QueryID) Valid() bool {
	_, ok := registry[id]
	return ok
}
