package render

import (
	"strconv"

	"github.com/dori/crabd/internal/model"
)

// CategoriesList prints every category with its task counts.
func (r *Renderer) CategoriesList(p *model.Project) error {
	summaries := p.CategorySummaries()
	if len(summaries) == 0 {
		return r.Info("No categories")
	}
	nameW := r.columns([]int{4, 6, 6, 8, 7}, 1)[0]
	rows := make([][]string, len(summaries))
	for i, c := range summaries {
		def := ""
		if c.IsDefault {
			def = r.styles.Default.Render("*")
		}
		rows[i] = []string{
			strconv.FormatUint(c.Category.ID, 10),
			Truncate(c.Category.Name, nameW),
			strconv.Itoa(c.Total),
			strconv.Itoa(c.Active),
			strconv.Itoa(c.Archived),
			def,
		}
	}
	return r.println(r.table([]string{"ID", "Name", "Tasks", "Active", "Archived", "Default"}, rows, nil))
}

// CategoryView prints a category heading followed by its tasks. Archived
// tasks are left out unless includeArchived is set.
func (r *Renderer) CategoryView(p *model.Project, categoryID uint64, includeArchived bool) error {
	c, ok := p.Category(categoryID)
	if !ok {
		return &model.NotFoundError{Kind: model.KindCategory, ID: categoryID}
	}
	heading := r.styles.Title.Render(c.Name)
	if p.IsDefaultCategory(c.ID) {
		heading += " " + r.styles.Default.Render("(default)")
	}
	if err := r.println(heading); err != nil {
		return err
	}

	var tasks []model.Task
	for _, t := range p.TasksInCategory(categoryID) {
		if includeArchived || !t.IsArchived() {
			tasks = append(tasks, t)
		}
	}
	if len(tasks) == 0 {
		return r.Info("No tasks in this category")
	}
	return r.TaskTable(p, tasks)
}
