package render

import (
	"bytes"
	"encoding/json"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/dori/crabd/internal/model"
	"github.com/dori/crabd/internal/ui/theme"
)

var now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newRenderer(buf *bytes.Buffer) *Renderer {
	return New(buf, Options{
		Theme:    theme.Nord,
		Width:    100,
		Color:    false,
		Now:      func() time.Time { return now },
		Location: time.UTC,
	})
}

type fixture struct {
	p               *model.Project
	todo, done      uint64
	ada, bob        uint64
	docs, ship, old uint64
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	var f fixture
	var err error
	f.p = model.NewProject("Demo",
		model.WithIDAllocator(model.NewIDAllocator(3)),
		model.WithClock(func() time.Time { return now }),
	)
	must := func(id uint64, err error) uint64 {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
		return id
	}
	f.todo = must(f.p.AddDefaultCategory("Todo"))
	f.done = must(f.p.AddCategory("Done"))
	email := "ada@example.com"
	f.ada = must(f.p.AddUser("Ada", &email))
	f.bob = must(f.p.AddUser("Bob", nil))
	f.docs = must(f.p.AddTask("Write docs", "First line\nsecond line"))
	f.ship = must(f.p.AddTask("Ship", ""))
	f.old = must(f.p.AddTask("Old", ""))
	must(f.p.AddChecklistItem(f.docs, "outline"))
	must(f.p.AddChecklistItem(f.docs, "draft"))
	if err = f.p.SetChecklistItemChecked(f.docs, 1, true); err != nil {
		t.Fatal(err)
	}
	if err = f.p.AssignTask(f.ada, f.docs); err != nil {
		t.Fatal(err)
	}
	if err = f.p.SetTaskDueDate(f.docs, now.Add(3*24*time.Hour)); err != nil {
		t.Fatal(err)
	}
	if err = f.p.SetTaskDueDate(f.ship, now.Add(-2*time.Hour)); err != nil {
		t.Fatal(err)
	}
	if err = f.p.MoveTask(f.old, f.done); err != nil {
		t.Fatal(err)
	}
	if err = f.p.ArchiveTask(f.old); err != nil {
		t.Fatal(err)
	}
	return f
}

func assertContains(t *testing.T, out string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRelativeDue(t *testing.T) {
	tests := []struct {
		d       time.Duration
		want    string
		urgency Urgency
	}{
		{30 * time.Second, "30s", UrgencySoon},
		{59 * time.Minute, "59m", UrgencySoon},
		{5 * time.Hour, "5h", UrgencySoon},
		{3 * 24 * time.Hour, "3d", UrgencyLater},
		{15 * 24 * time.Hour, "2w", UrgencyLater},
		{800 * 24 * time.Hour, "2y", UrgencyLater},
		{-90 * time.Minute, "-1h", UrgencyOverdue},
		{-10 * 24 * time.Hour, "-1w", UrgencyOverdue},
		{0, "0s", UrgencySoon},
	}
	for _, tt := range tests {
		got, u := RelativeDue(tt.d)
		if got != tt.want || u != tt.urgency {
			t.Errorf("RelativeDue(%v) = %q, %v; want %q, %v", tt.d, got, u, tt.want, tt.urgency)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"much longer text", 8, "much lo…"},
		{"日本語テキスト", 6, "日本…"},
		{"x", 0, ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestWrap(t *testing.T) {
	got := Wrap("the quick brown fox jumps\n\nover", 10)
	want := []string{"the quick", "brown fox", "jumps", "", "over"}
	if !slices.Equal(got, want) {
		t.Errorf("Wrap() = %q, want %q", got, want)
	}
	if got := Wrap("supercalifragilistic", 5); len(got) != 1 {
		t.Errorf("Wrap(long word) = %q", got)
	}
}

func TestFirstLine(t *testing.T) {
	if got := FirstLine("one\ntwo"); got != "one …" {
		t.Errorf("FirstLine() = %q", got)
	}
	if got := FirstLine("  solo  \n\n"); got != "solo" {
		t.Errorf("FirstLine() = %q", got)
	}
}

func TestTaskTableNameFitsDefaultWidth(t *testing.T) {
	f := newFixture(t)
	id, err := f.p.AddTask("Refactor parser", "first draft")
	if err != nil {
		t.Fatal(err)
	}
	task, _ := f.p.Task(id)

	var buf bytes.Buffer
	r := New(&buf, Options{
		Theme:    theme.Nord,
		Width:    80,
		Now:      func() time.Time { return now },
		Location: time.UTC,
	})
	if err := r.TaskTable(f.p, []model.Task{task}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	assertContains(t, out, "Refactor parser", "first draft")
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if w := len([]rune(line)); w > 80 {
			t.Errorf("line wider than 80 columns (%d): %q", w, line)
		}
	}
}

func TestTaskTable(t *testing.T) {
	f := newFixture(t)
	var buf bytes.Buffer
	tasks := f.p.AllTasks()
	f.p.SortByCategory(tasks)
	if err := newRenderer(&buf).TaskTable(f.p, tasks); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	assertContains(t, out, "Name", "Assigned To", "Write docs", "First line", "Ada", "None", "3d", "-2h", "archived", "Done")
	if strings.Contains(out, "second line") {
		t.Errorf("table shows more than the first description line:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("color disabled but output has escape codes: %q", out)
	}
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if w := len([]rune(line)); w > 100 {
			t.Errorf("line wider than 100 columns (%d): %q", w, line)
		}
	}
}

func TestEmptyListings(t *testing.T) {
	p := model.NewProject("empty")
	var buf bytes.Buffer
	r := newRenderer(&buf)
	if err := r.TaskTable(p, nil); err != nil {
		t.Fatal(err)
	}
	if err := r.UsersList(p); err != nil {
		t.Fatal(err)
	}
	if err := r.CategoriesList(p); err != nil {
		t.Fatal(err)
	}
	if err := r.DueList(p, nil); err != nil {
		t.Fatal(err)
	}
	assertContains(t, buf.String(), "No tasks", "No users", "No categories", "Nothing due")
}

func TestTaskDetail(t *testing.T) {
	f := newFixture(t)
	d, err := f.p.TaskDetail(f.docs)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := newRenderer(&buf).TaskDetail(d); err != nil {
		t.Fatal(err)
	}
	assertContains(t, buf.String(),
		"Write docs", "second line", "Todo", "active", "2024-03-01 12:00",
		"2024-03-04 12:00", "3d", "Ada", "<ada@example.com>", "1/2 done", "[x]", "outline", "[ ]", "draft")
}

func TestTaskDetailUnassigned(t *testing.T) {
	f := newFixture(t)
	d, err := f.p.TaskDetail(f.old)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := newRenderer(&buf).TaskDetail(d); err != nil {
		t.Fatal(err)
	}
	assertContains(t, buf.String(), "archived", "No users assigned to task", "not set")
}

func TestCategoryView(t *testing.T) {
	f := newFixture(t)
	var buf bytes.Buffer
	r := newRenderer(&buf)
	if err := r.CategoryView(f.p, f.todo, false); err != nil {
		t.Fatal(err)
	}
	assertContains(t, buf.String(), "Todo", "(default)", "Write docs", "Ship")

	buf.Reset()
	if err := r.CategoryView(f.p, f.done, false); err != nil {
		t.Fatal(err)
	}
	assertContains(t, buf.String(), "Done", "No tasks in this category")

	buf.Reset()
	if err := r.CategoryView(f.p, f.done, true); err != nil {
		t.Fatal(err)
	}
	assertContains(t, buf.String(), "Old")

	if err := r.CategoryView(f.p, 1, false); !model.IsNotFound(err, model.KindCategory) {
		t.Errorf("CategoryView(unknown) error = %v", err)
	}
}

func TestCategoriesList(t *testing.T) {
	f := newFixture(t)
	var buf bytes.Buffer
	if err := newRenderer(&buf).CategoriesList(f.p); err != nil {
		t.Fatal(err)
	}
	assertContains(t, buf.String(), "Todo", "Done", "Default", "*")
}

func TestTasksJSON(t *testing.T) {
	f := newFixture(t)
	var buf bytes.Buffer
	if err := newRenderer(&buf).TasksJSON(f.p, f.p.AllTasks()); err != nil {
		t.Fatal(err)
	}
	var got []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if len(got) != 3 {
		t.Fatalf("got %d tasks", len(got))
	}
	docs := got[0]
	if docs["name"] != "Write docs" || docs["category"] != "Todo" {
		t.Errorf("task = %v", docs)
	}
	if docs["created_at_utc"] != "2024-03-01 12:00:00" || docs["created_at_utc_unix"] != float64(now.Unix()) {
		t.Errorf("created = %v / %v", docs["created_at_utc"], docs["created_at_utc_unix"])
	}
	if names, _ := docs["assigned_to"].([]any); len(names) != 1 || names[0] != "Ada" {
		t.Errorf("assigned_to = %v", docs["assigned_to"])
	}
	ship := got[1]
	if ship["archived_at_utc"] != "" || ship["archived_at_utc_unix"] != float64(0) {
		t.Errorf("unarchived task export = %v", ship)
	}
	if ids, _ := ship["assigned_to_ids"].([]any); ids == nil || len(ids) != 0 {
		t.Errorf("assigned_to_ids = %v, want []", ship["assigned_to_ids"])
	}
}

func TestUsers(t *testing.T) {
	f := newFixture(t)
	var buf bytes.Buffer
	r := newRenderer(&buf)
	if err := r.UsersList(f.p); err != nil {
		t.Fatal(err)
	}
	assertContains(t, buf.String(), "Ada", "ada@example.com", "Bob", "no email")

	buf.Reset()
	if err := r.UserDetail(f.p, f.ada); err != nil {
		t.Fatal(err)
	}
	assertContains(t, buf.String(), "Ada", "Write docs")

	buf.Reset()
	if err := r.UserDetail(f.p, f.bob); err != nil {
		t.Fatal(err)
	}
	assertContains(t, buf.String(), "No tasks assigned")

	buf.Reset()
	if err := r.UserStatus(f.p); err != nil {
		t.Fatal(err)
	}
	assertContains(t, buf.String(), "Active", "Overdue", "Ada", "Bob")
}

func TestProjectStatus(t *testing.T) {
	f := newFixture(t)
	var buf bytes.Buffer
	if err := newRenderer(&buf).ProjectStatus(f.p.Status()); err != nil {
		t.Fatal(err)
	}
	assertContains(t, buf.String(), "Demo", "Tasks", "3", "Overdue", "Todo *", "2 active, 0 archived", "0 active, 1 archived")
}

func TestDueList(t *testing.T) {
	f := newFixture(t)
	var buf bytes.Buffer
	tasks := f.p.TasksDueBefore(now.Add(7 * 24 * time.Hour))
	if err := newRenderer(&buf).DueList(f.p, tasks); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	assertContains(t, out, "Ship", "-2h", "Write docs", "3d")
	if strings.Index(out, "Ship") > strings.Index(out, "Write docs") {
		t.Errorf("due list not sorted by due date:\n%s", out)
	}
}
