package model

import (
	"encoding/json"
	"errors"
	"slices"
	"testing"
	"time"
)

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestProject(t *testing.T) *Project {
	t.Helper()
	clock := testNow
	return NewProject("Demo",
		WithIDAllocator(NewIDAllocator(42)),
		WithClock(func() time.Time {
			clock = clock.Add(time.Second)
			return clock
		}),
	)
}

// mustID unwraps an (id, error) result, failing the test on error:
// mustID(t)(p.AddTask("t", "")).
func mustID(t *testing.T) func(uint64, error) uint64 {
	t.Helper()
	return func(id uint64, err error) uint64 {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return id
	}
}

func TestIDsStayDistinct(t *testing.T) {
	p := newTestProject(t)
	mustID(t)(p.AddDefaultCategory("Todo"))
	for i := 0; i < 200; i++ {
		mustID(t)(p.AddCategory("c"))
		mustID(t)(p.AddTask("t", ""))
		mustID(t)(p.AddUser("u", nil))
	}

	check := func(kind string, ids []uint64) {
		seen := make(map[uint64]bool)
		for _, id := range ids {
			if id < MinID || id > MaxID {
				t.Errorf("%s id %d outside [%d, %d]", kind, id, MinID, MaxID)
			}
			if seen[id] {
				t.Errorf("duplicate %s id %d", kind, id)
			}
			seen[id] = true
		}
	}
	check("category", p.categoryIDs())
	var taskIDs, userIDs []uint64
	for _, task := range p.Tasks {
		taskIDs = append(taskIDs, task.ID)
	}
	for _, u := range p.Users {
		userIDs = append(userIDs, u.ID)
	}
	check("task", taskIDs)
	check("user", userIDs)

	if err := p.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestIDAllocatorDenseCollection(t *testing.T) {
	a := NewIDAllocator(1)
	var used []uint64
	for id := MinID; id <= MaxID; id++ {
		if id != 5000 {
			used = append(used, id)
		}
	}
	got, err := a.Next(used)
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if got != 5000 {
		t.Errorf("Next() = %d, want 5000", got)
	}

	used = append(used, 5000)
	if _, err := a.Next(used); !errors.Is(err, ErrIDSpaceExhausted) {
		t.Errorf("Next() on full range error = %v, want ErrIDSpaceExhausted", err)
	}
}

func TestAddTaskUsesDefaultCategory(t *testing.T) {
	p := newTestProject(t)
	if _, err := p.AddTask("orphan", ""); !errors.Is(err, ErrInvalidReference) {
		t.Fatalf("AddTask without default category error = %v, want ErrInvalidReference", err)
	}

	todo := mustID(t)(p.AddDefaultCategory("Todo"))
	id := mustID(t)(p.AddTask("Write docs", "details"))

	task, ok := p.Task(id)
	if !ok {
		t.Fatal("Task() not found")
	}
	if task.Category != todo {
		t.Errorf("Category = %d, want %d", task.Category, todo)
	}
	if task.Description != "details" {
		t.Errorf("Description = %q", task.Description)
	}
	if task.ArchivedAt != nil || task.DueDate != nil || len(task.AssignedTo) != 0 || len(task.CheckList) != 0 {
		t.Errorf("new task has unexpected optional state: %+v", task)
	}
	if !task.CreatedAt.Equal(task.UpdatedAt) {
		t.Errorf("CreatedAt %v != UpdatedAt %v", task.CreatedAt, task.UpdatedAt)
	}
}

func TestAssignTaskIdempotent(t *testing.T) {
	p := newTestProject(t)
	mustID(t)(p.AddDefaultCategory("Todo"))
	task := mustID(t)(p.AddTask("t", ""))
	email := "ada@example.com"
	user := mustID(t)(p.AddUser("Ada", &email))

	for i := 0; i < 2; i++ {
		if err := p.AssignTask(user, task); err != nil {
			t.Fatalf("AssignTask() error = %v", err)
		}
	}
	got, _ := p.Task(task)
	if !slices.Equal(got.AssignedTo, []uint64{user}) {
		t.Errorf("AssignedTo = %v, want [%d]", got.AssignedTo, user)
	}

	if err := p.AssignTask(1, task); !IsNotFound(err, KindUser) {
		t.Errorf("AssignTask(unknown user) error = %v, want user not found", err)
	}
	if err := p.AssignTask(user, 1); !IsNotFound(err, KindTask) {
		t.Errorf("AssignTask(unknown task) error = %v, want task not found", err)
	}
}

func TestUnassignTask(t *testing.T) {
	p := newTestProject(t)
	mustID(t)(p.AddDefaultCategory("Todo"))
	task := mustID(t)(p.AddTask("t", ""))
	a := mustID(t)(p.AddUser("A", nil))
	b := mustID(t)(p.AddUser("B", nil))

	if err := p.AssignTask(a, task); err != nil {
		t.Fatal(err)
	}
	if err := p.AssignTask(b, task); err != nil {
		t.Fatal(err)
	}
	if err := p.UnassignTask(a, task); err != nil {
		t.Fatalf("UnassignTask() error = %v", err)
	}
	got, _ := p.Task(task)
	if !slices.Equal(got.AssignedTo, []uint64{b}) {
		t.Errorf("AssignedTo = %v, want [%d]", got.AssignedTo, b)
	}

	// Not assigned: no-op, not an error.
	if err := p.UnassignTask(a, task); err != nil {
		t.Errorf("UnassignTask() of absent user error = %v", err)
	}
	if err := p.UnassignTask(b, task); err != nil {
		t.Fatal(err)
	}
	users, err := p.AssignedUsers(task)
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 0 {
		t.Errorf("AssignedUsers() = %v, want empty", users)
	}
}

func TestRemoveUserRetractsAssignments(t *testing.T) {
	p := newTestProject(t)
	mustID(t)(p.AddDefaultCategory("Todo"))
	keep := mustID(t)(p.AddUser("keep", nil))
	gone := mustID(t)(p.AddUser("gone", nil))
	var tasks []uint64
	for i := 0; i < 5; i++ {
		id := mustID(t)(p.AddTask("t", ""))
		tasks = append(tasks, id)
		if err := p.AssignTask(gone, id); err != nil {
			t.Fatal(err)
		}
		if i%2 == 0 {
			if err := p.AssignTask(keep, id); err != nil {
				t.Fatal(err)
			}
		}
	}
	if err := p.ArchiveTask(tasks[1]); err != nil {
		t.Fatal(err)
	}

	if err := p.RemoveUser(gone); err != nil {
		t.Fatalf("RemoveUser() error = %v", err)
	}
	for _, task := range p.Tasks {
		if task.IsAssignedTo(gone) {
			t.Errorf("task %d still assigned to removed user", task.ID)
		}
	}
	if _, ok := p.User(gone); ok {
		t.Error("removed user still present")
	}
	if got := len(p.TasksForUser(keep)); got != 3 {
		t.Errorf("TasksForUser(keep) = %d tasks, want 3", got)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}

	if err := p.RemoveUser(gone); !IsNotFound(err, KindUser) {
		t.Errorf("second RemoveUser() error = %v, want not found", err)
	}
}

func TestChecklistIndicesNeverReused(t *testing.T) {
	p := newTestProject(t)
	mustID(t)(p.AddDefaultCategory("Todo"))
	task := mustID(t)(p.AddTask("t", ""))

	mustID(t)(p.AddChecklistItem(task, "a"))
	mustID(t)(p.AddChecklistItem(task, "b"))
	if err := p.RemoveChecklistItem(task, 1); err != nil {
		t.Fatalf("RemoveChecklistItem() error = %v", err)
	}
	c := mustID(t)(p.AddChecklistItem(task, "c"))
	if c != 3 {
		t.Errorf("index of c = %d, want 3", c)
	}

	items, err := p.TaskChecklist(task)
	if err != nil {
		t.Fatal(err)
	}
	var indices []uint64
	for _, it := range items {
		indices = append(indices, it.Index)
	}
	if !slices.Equal(indices, []uint64{2, 3}) {
		t.Errorf("indices = %v, want [2 3]", indices)
	}

	// Removing the newest item still leaves the counter where it was.
	if err := p.RemoveChecklistItem(task, 3); err != nil {
		t.Fatal(err)
	}
	d := mustID(t)(p.AddChecklistItem(task, "d"))
	if d != 4 {
		t.Errorf("index of d = %d, want 4", d)
	}

	if err := p.RemoveChecklistItem(task, 1); !IsNotFound(err, KindChecklistItem) {
		t.Errorf("RemoveChecklistItem(removed) error = %v, want not found", err)
	}
	if err := p.SetChecklistItemChecked(task, 2, true); err != nil {
		t.Fatal(err)
	}
	items, _ = p.TaskChecklist(task)
	if !items[0].Checked {
		t.Errorf("item 2 not checked: %+v", items[0])
	}
}

func TestArchiveExcludesFromUnarchived(t *testing.T) {
	p := newTestProject(t)
	mustID(t)(p.AddDefaultCategory("Todo"))
	a := mustID(t)(p.AddTask("a", ""))
	b := mustID(t)(p.AddTask("b", ""))

	if err := p.ArchiveTask(a); err != nil {
		t.Fatal(err)
	}
	for _, task := range p.UnarchivedTasks() {
		if task.ID == a {
			t.Error("archived task listed as unarchived")
		}
	}
	if got := len(p.UnarchivedTasks()); got != 1 {
		t.Errorf("UnarchivedTasks() = %d, want 1", got)
	}
	task, ok := p.Task(a)
	if !ok || task.ArchivedAt == nil {
		t.Errorf("archived task not retrievable by id: %+v, %v", task, ok)
	}

	first := *task.ArchivedAt
	if err := p.ArchiveTask(a); err != nil {
		t.Fatalf("re-archive error = %v", err)
	}
	task, _ = p.Task(a)
	if !task.ArchivedAt.After(first) {
		t.Errorf("re-archive did not refresh timestamp: %v vs %v", task.ArchivedAt, first)
	}

	if err := p.UnarchiveTask(a); err != nil {
		t.Fatal(err)
	}
	if got := len(p.UnarchivedTasks()); got != 2 {
		t.Errorf("UnarchivedTasks() after unarchive = %d, want 2", got)
	}
	if err := p.ArchiveTask(b + 100000); !IsNotFound(err, KindTask) {
		t.Errorf("ArchiveTask(unknown) error = %v", err)
	}
}

func TestScenarioMoveAssignArchive(t *testing.T) {
	p := newTestProject(t)
	todo := mustID(t)(p.AddDefaultCategory("Todo"))
	done := mustID(t)(p.AddCategory("Done"))
	task := mustID(t)(p.AddTask("Write docs", ""))
	user := mustID(t)(p.AddUser("Ada", nil))

	if got, _ := p.Task(task); got.Category != todo {
		t.Fatalf("Category = %d, want %d", got.Category, todo)
	}
	if err := p.AssignTask(user, task); err != nil {
		t.Fatal(err)
	}
	if err := p.MoveTask(task, done); err != nil {
		t.Fatal(err)
	}
	if err := p.ArchiveTask(task); err != nil {
		t.Fatal(err)
	}

	got, _ := p.Task(task)
	if got.Category != done {
		t.Errorf("Category = %d, want %d", got.Category, done)
	}
	if !slices.Equal(got.AssignedTo, []uint64{user}) {
		t.Errorf("AssignedTo = %v, want [%d]", got.AssignedTo, user)
	}
	if got.ArchivedAt == nil {
		t.Error("ArchivedAt not set")
	}
	users, err := p.AssignedUsers(task)
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 1 || users[0].ID != user {
		t.Errorf("AssignedUsers() = %v", users)
	}
	if len(p.UnarchivedTasks()) != 0 {
		t.Errorf("UnarchivedTasks() = %v, want none", p.UnarchivedTasks())
	}
}

func TestMoveTaskValidatesCategory(t *testing.T) {
	p := newTestProject(t)
	todo := mustID(t)(p.AddDefaultCategory("Todo"))
	task := mustID(t)(p.AddTask("t", ""))
	before, _ := p.Task(task)

	err := p.MoveTask(task, 1)
	var ref *InvalidReferenceError
	if !errors.As(err, &ref) || ref.ID != 1 {
		t.Fatalf("MoveTask(missing category) error = %v, want InvalidReferenceError", err)
	}
	after, _ := p.Task(task)
	if after.Category != todo || !after.UpdatedAt.Equal(before.UpdatedAt) {
		t.Errorf("failed MoveTask changed the task: %+v", after)
	}
}

func TestRemoveCategoryRefusesReferencedCategory(t *testing.T) {
	p := newTestProject(t)
	todo := mustID(t)(p.AddDefaultCategory("Todo"))
	doing := mustID(t)(p.AddCategory("Doing"))
	empty := mustID(t)(p.AddCategory("Empty"))
	task := mustID(t)(p.AddTask("t", ""))
	if err := p.MoveTask(task, doing); err != nil {
		t.Fatal(err)
	}

	if err := p.RemoveCategory(doing); !errors.Is(err, ErrInvalidReference) {
		t.Errorf("RemoveCategory(in use) error = %v, want ErrInvalidReference", err)
	}
	if err := p.RemoveCategory(todo); !errors.Is(err, ErrInvalidReference) {
		t.Errorf("RemoveCategory(default) error = %v, want ErrInvalidReference", err)
	}
	if err := p.RemoveCategory(empty); err != nil {
		t.Errorf("RemoveCategory(empty) error = %v", err)
	}
	if err := p.RemoveCategory(empty); !IsNotFound(err, KindCategory) {
		t.Errorf("RemoveCategory(removed) error = %v, want not found", err)
	}

	// Archived tasks still hold their category.
	if err := p.ArchiveTask(task); err != nil {
		t.Fatal(err)
	}
	if err := p.RemoveCategory(doing); !errors.Is(err, ErrInvalidReference) {
		t.Errorf("RemoveCategory(archived tasks) error = %v, want ErrInvalidReference", err)
	}

	if err := p.SetDefaultCategory(doing); err != nil {
		t.Fatal(err)
	}
	if err := p.RemoveCategory(todo); err != nil {
		t.Errorf("RemoveCategory(former default) error = %v", err)
	}
	if len(p.Categories) != 1 {
		t.Errorf("Categories = %v", p.Categories)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestEditOperationsRefreshUpdatedAt(t *testing.T) {
	p := newTestProject(t)
	mustID(t)(p.AddDefaultCategory("Todo"))
	task := mustID(t)(p.AddTask("old", ""))
	created, _ := p.Task(task)

	steps := []struct {
		name string
		fn   func() error
	}{
		{"name", func() error { return p.EditTaskName(task, "new") }},
		{"description", func() error { return p.EditTaskDescription(task, "desc") }},
		{"due", func() error { return p.SetTaskDueDate(task, testNow.Add(48*time.Hour)) }},
		{"clear due", func() error { return p.ClearTaskDueDate(task) }},
	}
	last := created.UpdatedAt
	for _, step := range steps {
		if err := step.fn(); err != nil {
			t.Fatalf("%s: %v", step.name, err)
		}
		got, _ := p.Task(task)
		if !got.UpdatedAt.After(last) {
			t.Errorf("%s: UpdatedAt %v not after %v", step.name, got.UpdatedAt, last)
		}
		if !got.CreatedAt.Equal(created.CreatedAt) {
			t.Errorf("%s: CreatedAt changed", step.name)
		}
		last = got.UpdatedAt
	}

	got, _ := p.Task(task)
	if got.Name != "new" || got.Description != "desc" || got.DueDate != nil {
		t.Errorf("task = %+v", got)
	}
	if err := p.EditTaskName(1, "x"); !IsNotFound(err, KindTask) {
		t.Errorf("EditTaskName(unknown) error = %v", err)
	}
}

func TestDueDates(t *testing.T) {
	p := newTestProject(t)
	mustID(t)(p.AddDefaultCategory("Todo"))
	soon := mustID(t)(p.AddTask("soon", ""))
	later := mustID(t)(p.AddTask("later", ""))
	mustID(t)(p.AddTask("never", ""))

	local := time.FixedZone("X", 3*3600)
	if err := p.SetTaskDueDate(later, testNow.Add(72*time.Hour).In(local)); err != nil {
		t.Fatal(err)
	}
	if err := p.SetTaskDueDate(soon, testNow.Add(time.Hour)); err != nil {
		t.Fatal(err)
	}
	due, err := p.TaskDueDate(later)
	if err != nil {
		t.Fatal(err)
	}
	if due.Location() != time.UTC {
		t.Errorf("due date stored in %v, want UTC", due.Location())
	}

	got := p.TasksDueBefore(testNow.Add(96 * time.Hour))
	if len(got) != 2 || got[0].ID != soon || got[1].ID != later {
		t.Errorf("TasksDueBefore() = %v", got)
	}
	if got := p.TasksDueBefore(testNow.Add(2 * time.Hour)); len(got) != 1 {
		t.Errorf("TasksDueBefore(2h) = %d tasks, want 1", len(got))
	}
}

func TestUserLookups(t *testing.T) {
	p := newTestProject(t)
	email := "Ada@Example.com"
	mustID(t)(p.AddUser("nobody", nil))
	ada := mustID(t)(p.AddUser("Ada", &email))

	email = "changed@example.com" // AddUser must not alias the caller's string
	u, ok := p.UserByEmail("ada@example.com")
	if !ok || u.ID != ada {
		t.Fatalf("UserByEmail() = %+v, %v", u, ok)
	}
	if _, ok := p.UserByEmail(""); ok {
		t.Error("UserByEmail(\"\") matched")
	}

	if err := p.EditUser(ada, "Ada L.", nil); err != nil {
		t.Fatal(err)
	}
	u, _ = p.User(ada)
	if u.Name != "Ada L." || u.GitEmail != nil {
		t.Errorf("EditUser() result = %+v", u)
	}
	if _, ok := p.UserByEmail("ada@example.com"); ok {
		t.Error("UserByEmail() matched a cleared email")
	}
	if err := p.EditUser(1, "x", nil); !IsNotFound(err, KindUser) {
		t.Errorf("EditUser(unknown) error = %v", err)
	}
	if got := len(p.ListUsers()); got != 2 {
		t.Errorf("ListUsers() = %d users", got)
	}
}

func TestStatusAndWorkloads(t *testing.T) {
	p := newTestProject(t)
	todo := mustID(t)(p.AddDefaultCategory("Todo"))
	done := mustID(t)(p.AddCategory("Done"))
	u := mustID(t)(p.AddUser("u", nil))

	a := mustID(t)(p.AddTask("a", ""))
	b := mustID(t)(p.AddTask("b", ""))
	c := mustID(t)(p.AddTask("c", ""))
	if err := p.AssignTask(u, a); err != nil {
		t.Fatal(err)
	}
	if err := p.AssignTask(u, b); err != nil {
		t.Fatal(err)
	}
	if err := p.SetTaskDueDate(a, testNow.Add(-time.Hour)); err != nil {
		t.Fatal(err)
	}
	if err := p.MoveTask(b, done); err != nil {
		t.Fatal(err)
	}
	if err := p.ArchiveTask(b); err != nil {
		t.Fatal(err)
	}

	s := p.Status()
	if s.Total != 3 || s.Active != 2 || s.Archived != 1 || s.Unassigned != 1 || s.Overdue != 1 || s.Users != 1 {
		t.Errorf("Status() = %+v", s)
	}
	if len(s.Categories) != 2 {
		t.Fatalf("Categories = %v", s.Categories)
	}
	if s.Categories[0].Category.ID != todo || s.Categories[0].Total != 2 || !s.Categories[0].IsDefault {
		t.Errorf("todo summary = %+v", s.Categories[0])
	}
	if s.Categories[1].Archived != 1 || s.Categories[1].Active != 0 {
		t.Errorf("done summary = %+v", s.Categories[1])
	}

	w := p.UserWorkloads()
	if len(w) != 1 || w[0].Active != 1 || w[0].Archived != 1 || w[0].Overdue != 1 {
		t.Errorf("UserWorkloads() = %+v", w)
	}

	if err := p.MoveTask(c, done); err != nil {
		t.Fatal(err)
	}
	tasks := p.AllTasks()
	p.SortByCategory(tasks)
	if tasks[0].ID != a || tasks[1].ID != b || tasks[2].ID != c {
		t.Errorf("SortByCategory() order = %d %d %d", tasks[0].ID, tasks[1].ID, tasks[2].ID)
	}
}

func TestReturnedTasksDoNotAlias(t *testing.T) {
	p := newTestProject(t)
	mustID(t)(p.AddDefaultCategory("Todo"))
	task := mustID(t)(p.AddTask("t", ""))
	u := mustID(t)(p.AddUser("u", nil))
	if err := p.AssignTask(u, task); err != nil {
		t.Fatal(err)
	}

	got, _ := p.Task(task)
	got.AssignedTo[0] = 1
	again, _ := p.Task(task)
	if again.AssignedTo[0] != u {
		t.Error("Task() returned a slice aliasing project state")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	p := newTestProject(t)
	mustID(t)(p.AddDefaultCategory("Todo"))
	done := mustID(t)(p.AddCategory("Done"))
	email := "ada@example.com"
	u := mustID(t)(p.AddUser("Ada", &email))
	mustID(t)(p.AddUser("Bob", nil))
	task := mustID(t)(p.AddTask("Write docs", "multi\nline"))
	mustID(t)(p.AddTask("Other", ""))
	mustID(t)(p.AddChecklistItem(task, "a"))
	mustID(t)(p.AddChecklistItem(task, "b"))
	if err := p.RemoveChecklistItem(task, 1); err != nil {
		t.Fatal(err)
	}
	if err := p.AssignTask(u, task); err != nil {
		t.Fatal(err)
	}
	if err := p.SetTaskDueDate(task, testNow.Add(24*time.Hour)); err != nil {
		t.Fatal(err)
	}
	if err := p.MoveTask(task, done); err != nil {
		t.Fatal(err)
	}
	if err := p.ArchiveTask(task); err != nil {
		t.Fatal(err)
	}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var loaded Project
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if err := loaded.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
	assertProjectsEqual(t, p, &loaded)
}

func TestUnmarshalLegacyDocument(t *testing.T) {
	doc := `{"name":"old","default_category":0,"categories":[],
		"tasks":[{"id":1234,"name":"t","description":"","category":0,
		"created_at_utc":1700000000,"updated_at_utc":1700000000,"archived_at_utc":null,"assigned_to":[]}],
		"users":[{"id":2000,"git_email":null,"name":"x"}]}`
	var p Project
	if err := json.Unmarshal([]byte(doc), &p); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if p.DefaultCategory != nil {
		t.Errorf("DefaultCategory = %v, want nil", *p.DefaultCategory)
	}
	if got := p.Tasks[0].CreatedAt; !got.Equal(time.Unix(1700000000, 0)) {
		t.Errorf("CreatedAt = %v", got)
	}
	if p.Tasks[0].CheckList != nil || p.Tasks[0].DueDate != nil {
		t.Errorf("task = %+v", p.Tasks[0])
	}
	if err := p.Validate(); !errors.Is(err, ErrInvalidReference) {
		t.Errorf("Validate() = %v, want ErrInvalidReference for category 0", err)
	}
}

func TestValidateReportsViolations(t *testing.T) {
	cat := uint64(1000)
	p := &Project{
		DefaultCategory: &cat,
		Categories:      []Category{{ID: 1000, Name: "a"}, {ID: 1000, Name: "b"}},
		Tasks: []Task{{
			ID: 2000, Category: 1000, AssignedTo: []uint64{3000, 3000},
			CheckList: []CheckListItem{{Index: 5}}, LastCheckListIndex: 1,
		}},
	}
	err := p.Validate()
	if !errors.Is(err, ErrDuplicateID) {
		t.Errorf("Validate() = %v, want ErrDuplicateID", err)
	}
	if !errors.Is(err, ErrInvalidReference) {
		t.Errorf("Validate() = %v, want ErrInvalidReference", err)
	}
}

func assertProjectsEqual(t *testing.T, want, got *Project) {
	t.Helper()
	if got.Name != want.Name {
		t.Errorf("Name = %q, want %q", got.Name, want.Name)
	}
	if (got.DefaultCategory == nil) != (want.DefaultCategory == nil) ||
		(got.DefaultCategory != nil && *got.DefaultCategory != *want.DefaultCategory) {
		t.Errorf("DefaultCategory = %v, want %v", got.DefaultCategory, want.DefaultCategory)
	}
	if !slices.Equal(got.Categories, want.Categories) {
		t.Errorf("Categories = %v, want %v", got.Categories, want.Categories)
	}
	if len(got.Users) != len(want.Users) {
		t.Fatalf("Users = %v, want %v", got.Users, want.Users)
	}
	for i := range want.Users {
		w, g := want.Users[i], got.Users[i]
		if g.ID != w.ID || g.Name != w.Name || g.Email() != w.Email() || (g.GitEmail == nil) != (w.GitEmail == nil) {
			t.Errorf("Users[%d] = %+v, want %+v", i, g, w)
		}
	}
	if len(got.Tasks) != len(want.Tasks) {
		t.Fatalf("Tasks = %v, want %v", got.Tasks, want.Tasks)
	}
	timesEqual := func(a, b *time.Time) bool {
		if a == nil || b == nil {
			return a == b
		}
		return a.Equal(*b)
	}
	for i := range want.Tasks {
		w, g := want.Tasks[i], got.Tasks[i]
		if g.ID != w.ID || g.Name != w.Name || g.Description != w.Description || g.Category != w.Category ||
			!g.CreatedAt.Equal(w.CreatedAt) || !g.UpdatedAt.Equal(w.UpdatedAt) ||
			!timesEqual(g.ArchivedAt, w.ArchivedAt) || !timesEqual(g.DueDate, w.DueDate) ||
			!slices.Equal(g.AssignedTo, w.AssignedTo) || !slices.Equal(g.CheckList, w.CheckList) ||
			g.LastCheckListIndex != w.LastCheckListIndex {
			t.Errorf("Tasks[%d] = %+v, want %+v", i, g, w)
		}
	}
}
