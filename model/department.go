package model

import "time"

type Department struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Color         string       `json:"color"`
	DocumentCount int          `json:"documentCount"`
	Path          string       `json:"path,omitempty"`
	ParentID      string       `json:"parentId,omitempty"`
	Children      []Department `json:"children,omitempty"`
	CreatedAt     time.Time    `json:"createdAt,omitempty"`
}

// Clone deep-copies the department subtree.
func (d Department) Clone() Department {
	c := d
	if d.Children != nil {
		c.Children = CloneDepartments(d.Children)
	}
	return c
}

func CloneDepartments(depts []Department) []Department {
	if depts == nil {
		return nil
	}
	out := make([]Department, len(depts))
	for i, d := range depts {
		out[i] = d.Clone()
	}
	return out
}

type CreateDepartmentRequest struct {
	Name     string `json:"name" validate:"required,max=120"`
	ParentID string `json:"parentId,omitempty"`
	Color    string `json:"color,omitempty" validate:"omitempty,hexcolor"`
}
