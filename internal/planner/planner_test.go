package planner

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coach-backend/internal/ai"
)

type stubCompleter struct {
	reply string
	err   error
	calls int
	last  string
}

func (s *stubCompleter) Complete(_ context.Context, prompt, _ string, _ []ai.Message) (string, error) {
	s.calls++
	s.last = prompt
	return s.reply, s.err
}

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestClassify(t *testing.T) {
	cases := map[string]Bucket{
		"Flutter ile uygulama": Mobile,
		"DART öğren":           Mobile,
		"learn python":         Learning,
		"Python öğrenmek":      Learning,
		"İngilizce kurs bitir": Learning,
		"KİTAP OKU":            Learning,
		"FastAPI backend yaz":  Backend,
		"Django ile blog":      Backend,
		"Evi toparla":          Generic,
		"":                     Generic,
		"Build an iOS app":     Mobile,
		"study for the exam":   Learning,
		"ANDROID app":          Mobile,
		"IOS uygulaması":       Mobile,
		"FASTAPI servisi":      Backend,
		"read 12 books":        Learning,
		"Get ready for summer": Generic,
		"Write test scenarios": Generic,
		"already done":         Generic,
	}
	for goal, want := range cases {
		assert.Equal(t, want, Classify(goal), goal)
	}
}

func TestFallbackSizes(t *testing.T) {
	p := New(nil, nil, seeded())
	for _, goal := range []string{"flutter", "python", "learn", "anything"} {
		pool := Pool(Classify(goal))
		for days := 0; days <= 12; days++ {
			tasks := p.Fallback(goal, days)
			assert.Len(t, tasks, min(days, len(pool)), "%s/%d", goal, days)
			assert.Subset(t, pool, tasks)

			seen := map[string]bool{}
			for _, task := range tasks {
				require.False(t, seen[task], "duplicate %q", task)
				seen[task] = true
			}
		}
	}
	assert.Empty(t, p.Fallback("x", -3))
}

func TestFallbackDoesNotMutatePool(t *testing.T) {
	before := Pool(Mobile)
	New(nil, nil, seeded()).Fallback("flutter", 10)
	assert.Equal(t, before, Pool(Mobile))
}

func TestGenerateUsesModel(t *testing.T) {
	llm := &stubCompleter{reply: "1. Kurulum yap\n- Ekranı çiz\n\n• Test yaz\nFazladan görev"}
	p := New(llm, ai.NewPrompts(""), seeded())

	tasks := p.Generate(context.Background(), "uygulama", 3)
	assert.Equal(t, []string{"Kurulum yap", "Ekranı çiz", "Test yaz"}, tasks)
	assert.Equal(t, 1, llm.calls)
	assert.Contains(t, llm.last, "tam olarak 3 adet")
}

func TestGenerateFallsBack(t *testing.T) {
	cases := []*stubCompleter{
		{err: ai.ErrNoAPIKey},
		{err: &ai.APIError{Message: "rate limited"}},
		{err: errors.New("dial tcp: refused")},
		{reply: "  \n - \n"},
	}
	for _, llm := range cases {
		p := New(llm, ai.NewPrompts(""), seeded())
		tasks := p.Generate(context.Background(), "learn python", 3)
		require.Len(t, tasks, 3)
		assert.Subset(t, Pool(Learning), tasks)
	}
}

func TestGenerateWithoutModel(t *testing.T) {
	p := New(nil, nil, seeded())
	tasks := p.Generate(context.Background(), "flutter app", 20)
	assert.Len(t, tasks, len(Pool(Mobile)))
}

func TestCleanTask(t *testing.T) {
	assert.Equal(t, "Kurulum", CleanTask("  12. Kurulum "))
	assert.Equal(t, "Kurulum", CleanTask("• Kurulum"))
	assert.Equal(t, "Kurulum", CleanTask("- Kurulum"))
	assert.Equal(t, "", CleanTask(" - . "))
	assert.Equal(t, "A", CleanTask("A"))
}

func TestParseLines(t *testing.T) {
	assert.Equal(t, []string{"A", "B"}, ParseLines("\nA\n\n2. B", 0))
	assert.Equal(t, []string{"A", "B", "C"}, ParseLines("A\nB\nC\nD", 3))
	assert.Nil(t, ParseLines("   \n", 5))
}
