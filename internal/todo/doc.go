// Package todo holds the task model, the pure list operations, and seed files.
//
// Every operation takes a task slice and returns a new one; the input is never
// modified. An operation whose target id is not present returns its input
// unchanged, so callers can compare results by identity to detect no-ops.
//
// # Seed File Format
//
// The initial task list is read from a seed file (tasks.json by default):
//
//	{
//	  "schema_version": 1,
//	  "tasks": [
//	    {"id": "todo-0", "name": "Eat", "completed": true},
//	    {"id": "todo-1", "name": "Sleep", "completed": false, "inProgress": true}
//	  ]
//	}
//
// A bare top-level array of tasks is accepted as well. Files ending in .yaml or
// .yml are decoded as YAML with the same keys.
//
// # Validation
//
// Seed files are validated against an embedded JSON Schema (or a schema file
// given by path) and then by minimal checks that the schema cannot express,
// such as id uniqueness.
//
// # Filters
//
//   - All: every task
//   - Active: tasks not completed
//   - InProgress: tasks marked in progress
//   - Completed: completed tasks
package todo
