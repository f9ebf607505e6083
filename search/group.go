package search

import (
	"strings"

	"github.com/dev-mohitbeniwal/docflow/model"
	"github.com/dev-mohitbeniwal/docflow/model/neo4j/style"
)

// GroupByDepartment partitions docs by department path in order of first
// occurrence and attaches the matching (or synthesized) department record.
func GroupByDepartment(docs []model.Document, departments []model.Department) []model.DepartmentGroup {
	index := map[string]int{}
	groups := []model.DepartmentGroup{}
	for _, doc := range docs {
		i, ok := index[doc.Department]
		if !ok {
			i = len(groups)
			index[doc.Department] = i
			groups = append(groups, model.DepartmentGroup{
				Department: ResolveDepartment(departments, doc.Department),
			})
		}
		groups[i].Documents = append(groups[i].Documents, doc)
	}
	return groups
}

// Flatten concatenates the documents of every group.
func Flatten(groups []model.DepartmentGroup) []model.Document {
	var out []model.Document
	for _, g := range groups {
		out = append(out, g.Documents...)
	}
	return out
}

// FindDepartmentByPath searches the tree depth-first. Departments without a
// path are matched on their name.
func FindDepartmentByPath(departments []model.Department, path string) (model.Department, bool) {
	for _, d := range departments {
		if d.Path == path || (d.Path == "" && d.Name == path) {
			return d.Clone(), true
		}
		if found, ok := FindDepartmentByPath(d.Children, path); ok {
			return found, true
		}
	}
	return model.Department{}, false
}

// ResolveDepartment returns the department at path, synthesizing a virtual
// one when no record exists.
func ResolveDepartment(departments []model.Department, path string) model.Department {
	if d, ok := FindDepartmentByPath(departments, path); ok {
		return d
	}
	return SynthesizeDepartment(path)
}

func SynthesizeDepartment(path string) model.Department {
	name := path
	if i := strings.LastIndex(path, "/"); i >= 0 {
		name = path[i+1:]
	}
	return model.Department{
		ID:    DepartmentID(path),
		Name:  name,
		Color: style.DefaultDepartmentColor,
		Path:  path,
	}
}

// DepartmentID derives the deterministic id used for synthesized departments.
func DepartmentID(path string) string {
	return strings.ReplaceAll(strings.ToLower(path), "/", "-")
}
