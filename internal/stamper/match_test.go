package stamper

import (
	"testing"

	"github.com/indaco/stamper/internal/coordinate"
)

func TestFind(t *testing.T) {
	c := coordinate.New("com.example", "my-project", "1.0.1")

	tests := []struct {
		name      string
		doc       string
		wantFound bool
		wantToken string
	}{
		{
			name:      "gradle kotlin dsl",
			doc:       `implementation("com.example:my-project:1.0.0")`,
			wantFound: true,
			wantToken: "1.0.0",
		},
		{
			name:      "gradle groovy single quotes",
			doc:       `implementation 'com.example:my-project:2.3.4-SNAPSHOT'`,
			wantFound: true,
			wantToken: "2.3.4-SNAPSHOT",
		},
		{
			name:      "inline code span",
			doc:       "Add `com.example:my-project:0.9.0` to your build.",
			wantFound: true,
			wantToken: "0.9.0",
		},
		{
			name:      "token ends at whitespace",
			doc:       "com.example:my-project:1.2.3 is the latest",
			wantFound: true,
			wantToken: "1.2.3",
		},
		{
			name:      "token ends at newline",
			doc:       "dep com.example:my-project:1.2.3\nnext line",
			wantFound: true,
			wantToken: "1.2.3",
		},
		{
			name:      "token ends before bold markers",
			doc:       "Install **com.example:my-project:1.0.1** now",
			wantFound: true,
			wantToken: "1.0.1",
		},
		{
			name:      "token ends before closing parenthesis",
			doc:       "See (com.example:my-project:1.0.1) for details",
			wantFound: true,
			wantToken: "1.0.1",
		},
		{
			name:      "token ends at table cell border",
			doc:       "| com.example:my-project:1.0.1|",
			wantFound: true,
			wantToken: "1.0.1",
		},
		{
			name:      "token ends at xml closing tag",
			doc:       "<version>com.example:my-project:1.9.0</version>\n",
			wantFound: true,
			wantToken: "1.9.0",
		},
		{
			name:      "sentence period is not part of token",
			doc:       "Use com.example:my-project:1.0.0.",
			wantFound: true,
			wantToken: "1.0.0",
		},
		{
			name:      "token ends at comma and link bracket",
			doc:       "[com.example:my-project:2.0.0-rc.1+build.5](https://example.com), more",
			wantFound: true,
			wantToken: "2.0.0-rc.1+build.5",
		},
		{
			name:      "prefix followed only by markup is skipped",
			doc:       "com.example:my-project:**",
			wantFound: false,
		},
		{
			name:      "no reference",
			doc:       "# My Project\n\nThis is a sample project.",
			wantFound: false,
		},
		{
			name:      "prefix without token is skipped",
			doc:       "com.example:my-project: \ncom.example:my-project:4.0.0",
			wantFound: true,
			wantToken: "4.0.0",
		},
		{
			name:      "other artifact is ignored",
			doc:       `implementation("com.example:other:1.0.0")`,
			wantFound: false,
		},
		{
			name:      "dots in group are literal",
			doc:       `implementation("comXexample:my-project:1.0.0")`,
			wantFound: false,
		},
		{
			name:      "first occurrence wins",
			doc:       "com.example:my-project:1.0.0\ncom.example:my-project:0.1.0",
			wantFound: true,
			wantToken: "1.0.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Find([]byte(tt.doc), c)
			if m.Found != tt.wantFound {
				t.Fatalf("Find() found = %v, want %v", m.Found, tt.wantFound)
			}
			if !tt.wantFound {
				return
			}
			if m.Token != tt.wantToken {
				t.Errorf("Find() token = %q, want %q", m.Token, tt.wantToken)
			}
			if got := tt.doc[m.Start:m.End]; got != tt.wantToken {
				t.Errorf("doc[Start:End] = %q, want %q", got, tt.wantToken)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		match  Match
		target string
		want   State
	}{
		{"not found", Match{}, "1.0.1", NotFound},
		{"equal", Match{Found: true, Token: "1.0.1"}, "1.0.1", AlreadyCurrent},
		{"different", Match{Found: true, Token: "1.0.0"}, "1.0.1", Stale},
		{"no normalization", Match{Found: true, Token: "v1.0.1"}, "1.0.1", Stale},
		{"semver-equal is still stale", Match{Found: true, Token: "1.0.1+build"}, "1.0.1", Stale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.match, tt.target); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReplace_PreservesSurroundingBytes(t *testing.T) {
	c := coordinate.New("com.example", "my-project", "10.0.0-beta.1")
	doc := []byte("  \t```kotlin\n    implementation(\"com.example:my-project:1.0.0\")  \r\n```\n")

	m := Find(doc, c)
	got := string(Replace(doc, m, c.Version))
	want := "  \t```kotlin\n    implementation(\"com.example:my-project:10.0.0-beta.1\")  \r\n```\n"
	if got != want {
		t.Errorf("Replace() = %q, want %q", got, want)
	}
}

func TestReplace_NoMatchReturnsCopy(t *testing.T) {
	doc := []byte("unchanged")
	out := Replace(doc, Match{}, "1.0.0")
	if string(out) != "unchanged" {
		t.Errorf("Replace() = %q, want %q", out, "unchanged")
	}
	out[0] = 'X'
	if doc[0] != 'u' {
		t.Error("Replace() must not alias the input")
	}
}

func TestState_String(t *testing.T) {
	tests := map[State]string{
		NotFound:       "not-found",
		AlreadyCurrent: "already-current",
		Stale:          "stale",
		State(42):      "state(42)",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", int(s), got, want)
		}
	}
}
