package keywords

import (
	"regexp"
	"strings"
	"testing"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		limit    int
		expected []string
	}{
		{
			name:     "empty input",
			text:     "",
			limit:    40,
			expected: []string{},
		},
		{
			name:     "only stop words",
			text:     "the and for with that this",
			limit:    40,
			expected: []string{},
		},
		{
			name:     "only short tokens",
			text:     "go js c++ a b cd",
			limit:    40,
			expected: []string{},
		},
		{
			name:     "lowercases and deduplicates preserving order",
			text:     "Kubernetes DOCKER kubernetes docker Terraform",
			limit:    40,
			expected: []string{"kubernetes", "docker", "terraform"},
		},
		{
			name:     "punctuation splits tokens",
			text:     "backend/frontend, micro-services; python3",
			limit:    40,
			expected: []string{"backend", "frontend", "micro", "services", "python3"},
		},
		{
			name:     "diacritics are folded",
			text:     "résumé naïve café experience",
			limit:    40,
			expected: []string{"resume", "naive", "cafe", "experience"},
		},
		{
			name:     "limit truncates",
			text:     "alpha bravo charlie delta echo",
			limit:    3,
			expected: []string{"alpha", "bravo", "charlie"},
		},
		{
			name:     "filler verbs and qualifiers are stopped",
			text:     "able to deliver using kubernetes, made well there those very like",
			limit:    40,
			expected: []string{"deliver", "kubernetes"},
		},
		{
			name:     "prepositions outside the stop set survive",
			text:     "collaboration between teams during incidents under pressure",
			limit:    40,
			expected: []string{"collaboration", "between", "teams", "during", "incidents", "under", "pressure"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text, tt.limit)
			if len(got) != len(tt.expected) {
				t.Fatalf("Extract() = %v, expected %v", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("Extract()[%d] = %q, expected %q", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestExtractProperties(t *testing.T) {
	text := strings.Repeat("golang kubernetes docker the and a terraform postgres redis kafka grafana prometheus ", 5)
	got := Extract(text, DefaultLimit)

	if len(got) > DefaultLimit {
		t.Errorf("result length %d exceeds limit %d", len(got), DefaultLimit)
	}
	seen := make(map[string]struct{})
	for _, kw := range got {
		if _, dup := seen[kw]; dup {
			t.Errorf("duplicate keyword %q", kw)
		}
		seen[kw] = struct{}{}
		if len(kw) < MinTokenLength {
			t.Errorf("keyword %q shorter than %d", kw, MinTokenLength)
		}
		if _, stop := stopWords[kw]; stop {
			t.Errorf("stop word %q leaked into result", kw)
		}
		if kw != strings.ToLower(kw) {
			t.Errorf("keyword %q is not lowercase", kw)
		}
	}
}

func TestExtractDefaultLimit(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 100; i++ {
		sb.WriteString("word")
		sb.WriteByte('a' + byte(i%26))
		sb.WriteString("suffix ")
	}
	got := Extract(sb.String(), 0)
	if len(got) > DefaultLimit {
		t.Errorf("zero limit should fall back to %d, got %d keywords", DefaultLimit, len(got))
	}
}

func TestEscapeRegexp(t *testing.T) {
	inputs := []string{
		"plain",
		"c++",
		"price $100 (net)",
		"a.b*c+d?e^f${g}(h)|i[j]k\\l",
		".NET",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			escaped := EscapeRegexp(in)
			re, err := regexp.Compile(escaped)
			if err != nil {
				t.Fatalf("compiling escaped pattern %q: %v", escaped, err)
			}
			if !re.MatchString(in) {
				t.Errorf("escaped pattern %q does not match original %q", escaped, in)
			}
			if loc := re.FindString(in); loc != in {
				t.Errorf("escaped pattern matched %q, expected full literal %q", loc, in)
			}
		})
	}
}

func BenchmarkExtract(b *testing.B) {
	text := strings.Repeat("senior backend engineer with kubernetes docker terraform experience building distributed systems ", 20)
	for b.Loop() {
		Extract(text, DefaultLimit)
	}
}
