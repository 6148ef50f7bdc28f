// Package model holds the crabd entity graph and the only API that mutates it.
//
// A Project owns its categories, tasks and users. Tasks refer to their
// category and assignees by id; the Project methods keep those references
// resolvable:
//
//   - ids are unique within each collection and drawn from [MinID, MaxID]
//   - a task's category always exists, and so does the default category once set
//   - a category with tasks, or the default category, cannot be removed
//   - removing a user first retracts it from every task
//   - checklist indices grow monotonically and are never reused
//
// Operations that address a missing id return a *NotFoundError; operations
// that would leave a dangling reference return an *InvalidReferenceError.
// A failing call leaves the project unchanged.
package model
