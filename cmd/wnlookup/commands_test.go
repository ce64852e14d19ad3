package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goliatone/go-wordnet-cache/cache"
	"github.com/goliatone/go-wordnet-cache/pkg/testsupport"
	"github.com/goliatone/go-wordnet-cache/wordnet"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestWordsCommand(t *testing.T) {
	db := testsupport.LexiconDB(t)

	out, _, err := execute(t, "--db", db, "words", "Natural Language Processing")
	if err != nil {
		t.Fatalf("words: %v", err)
	}

	var result map[string][]wordnet.Word
	testsupport.DecodeJSON(t, []byte(out), &result)

	words := result["Natural Language Processing"]
	if len(words) != 1 || words[0].Lemma != testsupport.NLPLemma || words[0].Lang != wordnet.LangEnglish {
		t.Errorf("unexpected words %+v", result)
	}
}

func TestWordsCommand_ByID(t *testing.T) {
	db := testsupport.LexiconDB(t)

	out, _, err := execute(t, "--db", db, "words", "--id", "201821")
	if err != nil {
		t.Fatalf("words --id: %v", err)
	}

	var word wordnet.Word
	testsupport.DecodeJSON(t, []byte(out), &word)
	if word.ID != testsupport.NLPJapaneseWordID || word.Lemma != testsupport.NLPJapaneseLemma {
		t.Errorf("unexpected word %+v", word)
	}
}

func TestWordsCommand_Stats(t *testing.T) {
	db := testsupport.LexiconDB(t)

	out, _, err := execute(t, "--db", db, "--stats", "words", "import", "IMPORT", testsupport.NLPLemma)
	if err != nil {
		t.Fatalf("words --stats: %v", err)
	}

	var envelope struct {
		Result map[string][]wordnet.Word `json:"result"`
		Stats  map[string]cache.Stats    `json:"stats"`
	}
	testsupport.DecodeJSON(t, []byte(out), &envelope)

	if len(envelope.Result["IMPORT"]) != len(envelope.Result["import"]) {
		t.Errorf("lemma case should not change the result: %+v", envelope.Result)
	}

	stats := envelope.Stats[wordnet.CacheWord]
	if stats.Misses != 2 || stats.Hits != 1 || stats.Entries != 2 {
		t.Errorf("expected two misses and one hit, got %+v", stats)
	}
	if len(envelope.Stats) != 5 {
		t.Errorf("expected stats for every cache, got %v", envelope.Stats)
	}
}

func TestLinksCommand(t *testing.T) {
	db := testsupport.LexiconDB(t)

	out, _, err := execute(t, "--db", db, "links", testsupport.NLPSynsetID, "--relation", "hype")
	if err != nil {
		t.Fatalf("links: %v", err)
	}

	var links []wordnet.SynsetLink
	testsupport.DecodeJSON(t, []byte(out), &links)
	if len(links) != testsupport.NLPHypernymCount || links[0].ToSynsetID != testsupport.ComputerScienceID {
		t.Errorf("unexpected links %+v", links)
	}
}

func TestSensesAndSynsetCommands(t *testing.T) {
	db := testsupport.LexiconDB(t)

	out, _, err := execute(t, "--db", db, "senses", testsupport.NLPSynsetID, "--lang", "eng")
	if err != nil {
		t.Fatalf("senses: %v", err)
	}
	var senses []wordnet.Sense
	testsupport.DecodeJSON(t, []byte(out), &senses)
	if len(senses) != testsupport.NLPEnglishSenses {
		t.Errorf("expected %d senses, got %+v", testsupport.NLPEnglishSenses, senses)
	}

	out, _, err = execute(t, "--db", db, "synset", "--name", "import", "--pos", "v")
	if err != nil {
		t.Fatalf("synset --name: %v", err)
	}
	var synsets []wordnet.Synset
	testsupport.DecodeJSON(t, []byte(out), &synsets)
	if len(synsets) != 1 || synsets[0].POS != wordnet.POSVerb {
		t.Errorf("unexpected synsets %+v", synsets)
	}
}

func TestDefinitionCommand_ConfigFile(t *testing.T) {
	db := testsupport.LexiconDB(t)
	cfgFile := testsupport.TempFile(t, "wordnet.yaml", []byte(
		"database:\n  path: "+db+"\n  strategy: unprepared\nlog:\n  level: error\n"))

	out, errOut, err := execute(t, "--config", cfgFile, "definition", testsupport.NLPSynsetID)
	if err != nil {
		t.Fatalf("definition: %v", err)
	}
	if strings.Contains(errOut, "store opened") {
		t.Error("info logs should be filtered at error level")
	}

	var def wordnet.SynsetDefinition
	testsupport.DecodeJSON(t, []byte(out), &def)
	if def.SynsetID != testsupport.NLPSynsetID || def.Lang != wordnet.LangEnglish || def.Text == "" {
		t.Errorf("unexpected definition %+v", def)
	}
}

func TestCommandErrors(t *testing.T) {
	db := testsupport.LexiconDB(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing lemma", []string{"--db", db, "words"}, "lemma"},
		{"unknown language", []string{"--db", db, "definition", testsupport.NLPSynsetID, "--lang", "fra"}, "fra"},
		{"unknown relation", []string{"--db", db, "links", testsupport.NLPSynsetID, "--relation", "HYPE"}, "HYPE"},
		{"missing synset", []string{"--db", db, "synset", testsupport.MissingSynsetID}, "not found"},
		{"missing database", []string{"--db", t.TempDir() + "/missing.db", "words", "import"}, "missing.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}
