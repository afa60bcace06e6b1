package store

import (
	"encoding/json"
	"errors"
	"slices"
	"time"

	"coach-backend/internal/clock"
)

// ChatPlanGoal is the goal given to a project started from a chat task list
// when no project exists yet.
const ChatPlanGoal = "Chat'ten oluşturulan plan"

var (
	ErrNoProject        = errors.New("no active project")
	ErrTaskIndex        = errors.New("task index out of range")
	ErrAlreadyCompleted = errors.New("task already completed")
	ErrEmptyTasks       = errors.New("task list is empty")
)

// Document is the whole persisted application state.
type Document struct {
	Current     *Project            `json:"current"`
	DailyLogs   map[string]DailyLog `json:"daily_logs"`
	GroqAPIKey  string              `json:"groq_api_key"`
	ChatHistory []json.RawMessage   `json:"chat_history"`
}

type Project struct {
	Goal      string   `json:"goal"`
	Days      int      `json:"days"`
	Tasks     []string `json:"tasks"`
	Completed []string `json:"completed"`
	CreatedAt string   `json:"created_at"`
}

type DailyLog struct {
	Notes          []Note   `json:"notes"`
	CompletedTasks []string `json:"completed_tasks"`
}

type Note struct {
	Text string `json:"text"`
	Time string `json:"time"`
}

// NewDocument returns the empty state used when nothing has been persisted yet.
func NewDocument() *Document {
	return &Document{
		DailyLogs:   map[string]DailyLog{},
		ChatHistory: []json.RawMessage{},
	}
}

// normalize fills the nil collections an older or hand-edited file may lack.
func (d *Document) normalize() {
	if d.DailyLogs == nil {
		d.DailyLogs = map[string]DailyLog{}
	}
	if d.ChatHistory == nil {
		d.ChatHistory = []json.RawMessage{}
	}
	for day, log := range d.DailyLogs {
		if log.Notes == nil {
			log.Notes = []Note{}
		}
		if log.CompletedTasks == nil {
			log.CompletedTasks = []string{}
		}
		d.DailyLogs[day] = log
	}
	if p := d.Current; p != nil {
		if p.Tasks == nil {
			p.Tasks = []string{}
		}
		if p.Completed == nil {
			p.Completed = []string{}
		}
	}
}

// Clone returns a deep copy.
func (d *Document) Clone() *Document {
	c := &Document{
		GroqAPIKey:  d.GroqAPIKey,
		DailyLogs:   make(map[string]DailyLog, len(d.DailyLogs)),
		ChatHistory: slices.Clone(d.ChatHistory),
	}
	if c.ChatHistory == nil {
		c.ChatHistory = []json.RawMessage{}
	}
	for day, log := range d.DailyLogs {
		c.DailyLogs[day] = DailyLog{
			Notes:          slices.Clone(log.Notes),
			CompletedTasks: slices.Clone(log.CompletedTasks),
		}
	}
	if d.Current != nil {
		p := *d.Current
		p.Tasks = slices.Clone(d.Current.Tasks)
		p.Completed = slices.Clone(d.Current.Completed)
		c.Current = &p
	}
	return c
}

// Log returns the daily log for day, or an empty one.
func (d *Document) Log(day string) DailyLog {
	log, ok := d.DailyLogs[day]
	if !ok {
		return DailyLog{Notes: []Note{}, CompletedTasks: []string{}}
	}
	return log
}

func (d *Document) logFor(day string) DailyLog {
	if d.DailyLogs == nil {
		d.DailyLogs = map[string]DailyLog{}
	}
	return d.Log(day)
}

// ReplaceProject installs a new project, dropping the previous one.
func (d *Document) ReplaceProject(goal string, days int, tasks []string, now time.Time) {
	d.Current = &Project{
		Goal:      goal,
		Days:      days,
		Tasks:     slices.Clone(tasks),
		Completed: []string{},
		CreatedAt: clock.Day(now),
	}
	if d.DailyLogs == nil {
		d.DailyLogs = map[string]DailyLog{}
	}
}

// ReplaceTasks swaps in a task list from chat, keeping the current goal.
func (d *Document) ReplaceTasks(tasks []string, now time.Time) error {
	if len(tasks) == 0 {
		return ErrEmptyTasks
	}
	goal := ChatPlanGoal
	if d.Current != nil {
		goal = d.Current.Goal
	}
	d.ReplaceProject(goal, len(tasks), tasks, now)
	return nil
}

// CompleteTask marks tasks[index] done and records it in today's log.
// It returns the task name.
func (d *Document) CompleteTask(index int, now time.Time) (string, error) {
	p := d.Current
	if p == nil {
		return "", ErrNoProject
	}
	if index < 0 || index >= len(p.Tasks) {
		return "", ErrTaskIndex
	}
	task := p.Tasks[index]
	if slices.Contains(p.Completed, task) {
		return task, ErrAlreadyCompleted
	}
	p.Completed = append(p.Completed, task)

	day := clock.Day(now)
	log := d.logFor(day)
	log.CompletedTasks = append(log.CompletedTasks, task)
	d.DailyLogs[day] = log
	return task, nil
}

// AddNote appends a progress note to today's log.
func (d *Document) AddNote(text string, now time.Time) error {
	if d.Current == nil {
		return ErrNoProject
	}
	day := clock.Day(now)
	log := d.logFor(day)
	log.Notes = append(log.Notes, Note{Text: text, Time: now.Format(clock.TimeLayout)})
	d.DailyLogs[day] = log
	return nil
}
