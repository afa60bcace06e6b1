package planner

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"

	"coach-backend/internal/ai"
)

// Completer is the part of the completion service the planner needs.
type Completer interface {
	Complete(ctx context.Context, prompt, system string, history []ai.Message) (string, error)
}

// PromptSet renders the planner prompt pair.
type PromptSet interface {
	PlanPrompt(goal string, days int) string
	PlanSystem() string
}

type Planner struct {
	llm     Completer
	prompts PromptSet

	mu  sync.Mutex
	rnd *rand.Rand
}

// New builds a planner. llm may be nil, in which case only the fallback pools
// are used. rnd may be nil for a randomly seeded source.
func New(llm Completer, prompts PromptSet, rnd *rand.Rand) *Planner {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Planner{llm: llm, prompts: prompts, rnd: rnd}
}

// Generate returns up to days task names for goal. The model is tried first;
// any failure or an empty answer falls back to the keyword pools.
func (p *Planner) Generate(ctx context.Context, goal string, days int) []string {
	if p.llm != nil && p.prompts != nil && days > 0 {
		raw, err := p.llm.Complete(ctx, p.prompts.PlanPrompt(goal, days), p.prompts.PlanSystem(), nil)
		if err != nil {
			slog.Info("plan generation fell back to keyword pool", "error", err)
		} else if tasks := ParseLines(raw, days); len(tasks) > 0 {
			return tasks
		}
	}
	return p.Fallback(goal, days)
}

// Fallback shuffles the goal's pool and takes min(days, len(pool)) tasks.
func (p *Planner) Fallback(goal string, days int) []string {
	pool := Pool(Classify(goal))
	p.mu.Lock()
	p.rnd.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	p.mu.Unlock()

	if days < 0 {
		days = 0
	}
	if days > len(pool) {
		days = len(pool)
	}
	return pool[:days]
}

// ParseLines turns a one-task-per-line answer into task names, keeping at most
// limit entries. limit <= 0 keeps everything.
func ParseLines(raw string, limit int) []string {
	var tasks []string
	for _, line := range strings.Split(raw, "\n") {
		t := CleanTask(line)
		if t == "" {
			continue
		}
		tasks = append(tasks, t)
		if limit > 0 && len(tasks) == limit {
			break
		}
	}
	return tasks
}

// CleanTask strips surrounding space and any leading bullet or numbering.
func CleanTask(line string) string {
	t := strings.TrimSpace(line)
	t = strings.TrimLeft(t, "-•0123456789. ")
	return strings.TrimSpace(t)
}
